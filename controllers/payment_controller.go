package controllers

import (
	"net/http"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/gin-gonic/gin"
)

type cardDetails struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type createPaymentRequest struct {
	OrderID string       `json:"order_id"`
	Method  string       `json:"method"`
	VPA     string       `json:"vpa"`
	Card    *cardDetails `json:"card"`
}

// CreatePayment handles POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	utils.LogInfo("CreatePayment called")
	merchant := c.MustGet("merchant").(models.Merchant)

	req, ok := bindPaymentRequest(c)
	if !ok {
		return
	}

	var order models.Order
	err := config.DB.
		Where("id = ? AND merchant_id = ?", req.OrderID, merchant.ID).
		First(&order).Error
	if err != nil {
		utils.LogDebug("Order %s not found for merchant %s", req.OrderID, merchant.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	if !validatePaymentInstrument(c, req) {
		return
	}
	createPaymentForOrder(c, order, req)
}

// CreatePaymentPublic handles POST /api/v1/payments/public for the
// hosted checkout flow; the order id is the only scope.
func CreatePaymentPublic(c *gin.Context) {
	utils.LogInfo("CreatePaymentPublic called")

	req, ok := bindPaymentRequest(c)
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ?", req.OrderID).First(&order).Error; err != nil {
		utils.LogDebug("Public order lookup missed for %s", req.OrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	if !validatePaymentInstrument(c, req) {
		return
	}
	createPaymentForOrder(c, order, req)
}

// ListPayments handles GET /api/v1/payments, newest first
func ListPayments(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	window := utils.NewListWindow(c)

	var payments []models.Payment
	err := window.Apply(
		config.DB.Where("merchant_id = ?", merchant.ID).Order("created_at DESC"),
	).Find(&payments).Error
	if err != nil {
		utils.LogError("Failed to list payments for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c)
		return
	}

	result := make([]gin.H, 0, len(payments))
	for _, payment := range payments {
		result = append(result, paymentJSON(payment, true))
	}
	c.JSON(http.StatusOK, result)
}

// GetPayment handles GET /api/v1/payments/:paymentId (merchant scoped)
func GetPayment(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	paymentID := c.Param("paymentId")

	var payment models.Payment
	err := config.DB.
		Where("id = ? AND merchant_id = ?", paymentID, merchant.ID).
		First(&payment).Error
	if err != nil {
		utils.LogDebug("Payment %s not found for merchant %s", paymentID, merchant.ID)
		utils.NotFound(c, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, paymentJSON(payment, true))
}

// GetPaymentPublic handles GET /api/v1/payments/:paymentId/public. The
// checkout page polls this until the status leaves processing.
func GetPaymentPublic(c *gin.Context) {
	paymentID := c.Param("paymentId")

	var payment models.Payment
	if err := config.DB.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		utils.LogDebug("Public payment lookup missed for %s", paymentID)
		utils.NotFound(c, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, paymentJSON(payment, true))
}

func bindPaymentRequest(c *gin.Context) (createPaymentRequest, bool) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment payload: %v", err)
		utils.BadRequest(c, "invalid request body")
		return req, false
	}
	if req.OrderID == "" {
		utils.BadRequest(c, "order_id is required")
		return req, false
	}
	if req.Method == "" {
		utils.BadRequest(c, "method is required")
		return req, false
	}
	return req, true
}

// validatePaymentInstrument checks the method-specific fields and
// answers with the matching error code on failure.
func validatePaymentInstrument(c *gin.Context, req createPaymentRequest) bool {
	switch req.Method {
	case models.PaymentMethodUPI:
		if req.VPA == "" {
			utils.BadRequest(c, "vpa is required for UPI payments")
			return false
		}
		if !utils.ValidateVPA(req.VPA) {
			utils.Error(c, http.StatusBadRequest, utils.CodeInvalidVPA, "Invalid VPA format")
			return false
		}
	case models.PaymentMethodCard:
		card := req.Card
		if card == nil || card.Number == "" || card.ExpiryMonth == "" ||
			card.ExpiryYear == "" || card.CVV == "" || card.HolderName == "" {
			utils.BadRequest(c, "card object must contain number, expiry_month, expiry_year, cvv, and holder_name")
			return false
		}
		if !utils.ValidateCardNumber(card.Number) {
			utils.Error(c, http.StatusBadRequest, utils.CodeInvalidCard, "Invalid card number")
			return false
		}
		if !utils.ValidateExpiry(card.ExpiryMonth, card.ExpiryYear) {
			utils.Error(c, http.StatusBadRequest, utils.CodeExpiredCard, "Card expiry date is invalid or in the past")
			return false
		}
	default:
		utils.BadRequest(c, "Invalid payment method")
		return false
	}
	return true
}

// createPaymentForOrder persists the payment in processing and
// schedules its one-shot resolution. Amount and currency always come
// from the order, never from the caller.
func createPaymentForOrder(c *gin.Context, order models.Order, req createPaymentRequest) {
	payment := models.Payment{
		ID:         utils.GeneratePaymentID(),
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Method:     req.Method,
		Status:     models.PaymentStatusProcessing,
	}

	cardNumber := ""
	vpa := ""
	if req.Method == models.PaymentMethodUPI {
		payment.VPA = req.VPA
		vpa = req.VPA
	} else {
		cleaned := utils.CleanCardNumber(req.Card.Number)
		payment.CardNetwork = utils.DetectCardNetwork(req.Card.Number)
		payment.CardLast4 = cleaned[len(cleaned)-4:]
		cardNumber = req.Card.Number
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to create payment for order %s: %v", order.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.RecordPaymentCreated(payment.Method)
	Processor.Schedule(payment.ID, payment.Method, cardNumber, vpa)
	utils.LogInfo("Payment %s created for order %s in status %s", payment.ID, order.ID, payment.Status)

	c.JSON(http.StatusCreated, paymentJSON(payment, false))
}

func paymentJSON(payment models.Payment, includeUpdatedAt bool) gin.H {
	resp := gin.H{
		"id":         payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"currency":   payment.Currency,
		"method":     payment.Method,
		"status":     payment.Status,
		"created_at": payment.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeUpdatedAt {
		resp["updated_at"] = payment.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if payment.VPA != "" {
		resp["vpa"] = payment.VPA
	}
	if payment.CardNetwork != "" {
		resp["card_network"] = payment.CardNetwork
		resp["card_last4"] = payment.CardLast4
	}
	if payment.ErrorCode != "" {
		resp["error_code"] = payment.ErrorCode
		resp["error_description"] = payment.ErrorDescription
	}
	return resp
}
