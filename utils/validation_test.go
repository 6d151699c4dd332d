package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	// Known Luhn-valid numbers
	assert.True(t, ValidateCardNumber("4532015112830366"))
	assert.True(t, ValidateCardNumber("5500000000000004"))
	assert.True(t, ValidateCardNumber("340000000000009"))

	// Separators are stripped before validation
	assert.True(t, ValidateCardNumber("4532 0151 1283 0366"))
	assert.True(t, ValidateCardNumber("4532-0151-1283-0366"))

	// A checksum-breaking mutation of the last digit
	assert.False(t, ValidateCardNumber("4532015112830367"))

	// Length bounds
	assert.False(t, ValidateCardNumber("411111111111"))         // 12 digits
	assert.False(t, ValidateCardNumber("45320151128303660000")) // 20 digits

	// Non-digits
	assert.False(t, ValidateCardNumber("4532015112x30366"))
	assert.False(t, ValidateCardNumber(""))
}

func TestValidateCardNumberMutations(t *testing.T) {
	// Flipping a digit by anything that changes the sum mod 10 must
	// break the checksum. +1 on an undoubled digit always does.
	valid := "4532015112830366"
	assert.True(t, ValidateCardNumber(valid))

	mutated := []byte(valid)
	last := len(mutated) - 1
	mutated[last] = '0' + (mutated[last]-'0'+1)%10
	assert.False(t, ValidateCardNumber(string(mutated)))
}

func TestDetectCardNetwork(t *testing.T) {
	tests := []struct {
		number  string
		network string
	}{
		{"4532015112830366", "visa"},
		{"4000000000000002", "visa"},
		{"5500000000000004", "mastercard"},
		{"5100000000000000", "mastercard"},
		{"340000000000009", "amex"},
		{"370000000000002", "amex"},
		{"6011000000000004", "rupay"}, // 60 prefix maps to rupay
		{"6500000000000000", "rupay"},
		{"8100000000000000", "rupay"},
		{"8900000000000000", "rupay"},
		{"7000000000000000", "unknown"},
		{"3000000000000000", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.network, DetectCardNetwork(tt.number), "number %s", tt.number)
	}
}

func TestDetectCardNetworkShortInput(t *testing.T) {
	assert.Equal(t, "unknown", DetectCardNetwork(""))
	assert.Equal(t, "unknown", DetectCardNetwork("5"))
	assert.Equal(t, "visa", DetectCardNetwork("4"))
}

func TestValidateVPA(t *testing.T) {
	assert.True(t, ValidateVPA("username@bank"))
	assert.True(t, ValidateVPA("user.name_1@bank"))
	assert.True(t, ValidateVPA("user-name@okhdfc"))

	assert.False(t, ValidateVPA("user@@bank"))
	assert.False(t, ValidateVPA("user@"))
	assert.False(t, ValidateVPA("@bank"))
	assert.False(t, ValidateVPA("user@bank.name"))
	assert.False(t, ValidateVPA("plainstring"))
	assert.False(t, ValidateVPA(""))
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now()

	// Current month is still valid
	assert.True(t, ValidateExpiry(
		fmt.Sprintf("%d", int(now.Month())),
		fmt.Sprintf("%d", now.Year()),
	))

	// One month in the past is not
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := firstOfMonth.AddDate(0, -1, 0)
	assert.False(t, ValidateExpiry(
		fmt.Sprintf("%d", int(prev.Month())),
		fmt.Sprintf("%d", prev.Year()),
	))

	// Two-digit years read as 2000+yy
	assert.True(t, ValidateExpiry("12", "99")) // 2099
	assert.True(t, ValidateExpiry("1", fmt.Sprintf("%d", now.Year()+1)))

	// Month bounds apply regardless of year
	assert.False(t, ValidateExpiry("0", "2099"))
	assert.False(t, ValidateExpiry("13", "2099"))
	assert.False(t, ValidateExpiry("", "2099"))
	assert.False(t, ValidateExpiry("1", ""))
}

func TestCleanCardNumber(t *testing.T) {
	assert.Equal(t, "4532015112830366", CleanCardNumber("4532 0151-1283 0366"))
	assert.Equal(t, "", CleanCardNumber(" - "))
}
