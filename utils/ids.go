package utils

import (
	"crypto/rand"
	"encoding/hex"
)

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// GenerateOrderID returns an opaque identifier such as order_1a2b3c4d5e6f7081.
func GenerateOrderID() string {
	return "order_" + randomHex(8)
}

// GeneratePaymentID returns an opaque identifier such as pay_1a2b3c4d5e6f7081.
func GeneratePaymentID() string {
	return "pay_" + randomHex(8)
}
