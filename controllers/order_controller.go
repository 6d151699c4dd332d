package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	Amount   *int64          `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
	Notes    json.RawMessage `json:"notes"`
}

// CreateOrder handles POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")
	merchant := c.MustGet("merchant").(models.Merchant)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order payload for merchant %s: %v", merchant.ID, err)
		utils.BadRequest(c, "amount must be at least 100")
		return
	}

	if req.Amount == nil || *req.Amount < models.MinOrderAmount {
		utils.LogError("Order amount below minimum for merchant %s", merchant.ID)
		utils.BadRequest(c, "amount must be at least 100")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	// Notes are opaque to the gateway: any JSON value is stored as is,
	// objects and arrays alike.
	notes := ""
	if len(req.Notes) > 0 && string(req.Notes) != "null" {
		notes = string(req.Notes)
	}

	order := models.Order{
		ID:         utils.GenerateOrderID(),
		MerchantID: merchant.ID,
		Amount:     *req.Amount,
		Currency:   currency,
		Receipt:    req.Receipt,
		Notes:      notes,
		Status:     models.OrderStatusCreated,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.RecordOrderCreated()
	utils.LogInfo("Order %s created for merchant %s", order.ID, merchant.ID)
	c.JSON(http.StatusCreated, orderJSON(order, false))
}

// GetOrder handles GET /api/v1/orders/:orderId (merchant scoped)
func GetOrder(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	orderID := c.Param("orderId")

	var order models.Order
	err := config.DB.
		Where("id = ? AND merchant_id = ?", orderID, merchant.ID).
		First(&order).Error
	if err != nil {
		utils.LogDebug("Order %s not found for merchant %s", orderID, merchant.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	c.JSON(http.StatusOK, orderJSON(order, true))
}

// GetOrderPublic handles GET /api/v1/orders/:orderId/public. No auth;
// only the fields the checkout page needs.
func GetOrderPublic(c *gin.Context) {
	orderID := c.Param("orderId")

	var order models.Order
	if err := config.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		utils.LogDebug("Public order lookup missed for %s", orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"status":   order.Status,
	})
}

func orderNotes(order models.Order) interface{} {
	if order.Notes == "" {
		return map[string]interface{}{}
	}
	var notes interface{}
	if err := json.Unmarshal([]byte(order.Notes), &notes); err != nil {
		utils.LogError("Corrupt notes on order %s: %v", order.ID, err)
		return map[string]interface{}{}
	}
	return notes
}

func orderJSON(order models.Order, includeUpdatedAt bool) gin.H {
	resp := gin.H{
		"id":          order.ID,
		"merchant_id": order.MerchantID,
		"amount":      order.Amount,
		"currency":    order.Currency,
		"receipt":     order.Receipt,
		"notes":       orderNotes(order),
		"status":      order.Status,
		"created_at":  order.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeUpdatedAt {
		resp["updated_at"] = order.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
