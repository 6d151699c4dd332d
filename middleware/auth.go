package middleware

import (
	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/gin-gonic/gin"
)

// Header names for merchant API credentials.
const (
	APIKeyHeader    = "X-Api-Key"
	APISecretHeader = "X-Api-Secret"
)

// MerchantAuth authenticates API calls via the key/secret header pair.
// The lookup is an exact match against an active merchant row; the
// merchant ends up in the request context under "merchant".
func MerchantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		apiSecret := c.GetHeader(APISecretHeader)

		if apiKey == "" || apiSecret == "" {
			utils.LogError("Missing API credentials for %s %s", c.Request.Method, c.Request.URL.Path)
			utils.AuthenticationError(c)
			c.Abort()
			return
		}

		var merchant models.Merchant
		err := config.DB.
			Where("api_key = ? AND api_secret = ? AND is_active = ?", apiKey, apiSecret, true).
			First(&merchant).Error
		if err != nil {
			utils.LogError("Merchant authentication failed: %v", err)
			utils.AuthenticationError(c)
			c.Abort()
			return
		}

		c.Set("merchant", merchant)
		utils.LogDebug("Merchant %s authenticated", merchant.ID)
		c.Next()
	}
}
