package controllers

import (
	"net/http"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/gin-gonic/gin"
)

// testMerchantID is the fixed id of the seeded demo merchant so the
// dashboard and checkout apps can rely on it across resets.
const testMerchantID = "550e8400-e29b-41d4-a716-446655440000"

// CreateTestMerchant seeds the demo merchant used by the dashboard and
// checkout apps. Safe to call on every boot.
func CreateTestMerchant() error {
	cfg := config.App

	merchant := models.Merchant{
		ID:        testMerchantID,
		Name:      "Test Merchant",
		Email:     cfg.TestMerchantEmail,
		APIKey:    cfg.TestAPIKey,
		APISecret: cfg.TestAPISecret,
		IsActive:  true,
	}

	return config.DB.FirstOrCreate(&merchant, models.Merchant{Email: merchant.Email}).Error
}

// GetTestMerchant handles GET /api/v1/test/merchant; the demo frontends
// fetch the seeded key from here.
func GetTestMerchant(c *gin.Context) {
	var merchant models.Merchant
	err := config.DB.
		Where("email = ?", config.App.TestMerchantEmail).
		First(&merchant).Error
	if err != nil {
		utils.LogError("Test merchant lookup failed: %v", err)
		utils.NotFound(c, "Test merchant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      merchant.ID,
		"email":   merchant.Email,
		"api_key": merchant.APIKey,
		"seeded":  true,
	})
}
