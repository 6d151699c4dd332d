package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	vpaRegex        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardDigitsRegex = regexp.MustCompile(`^[0-9]+$`)
)

// CleanCardNumber strips the spaces and hyphens allowed in card input.
func CleanCardNumber(cardNumber string) string {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	return strings.ReplaceAll(cleaned, "-", "")
}

// ValidateVPA checks the local-part@handle shape of a UPI address. The
// check is purely syntactic; there is no registry lookup.
func ValidateVPA(vpa string) bool {
	return vpaRegex.MatchString(vpa)
}

// ValidateCardNumber runs the Luhn checksum after stripping separators.
// Length must be between 13 and 19 digits.
func ValidateCardNumber(cardNumber string) bool {
	cleaned := CleanCardNumber(cardNumber)
	if !cardDigitsRegex.MatchString(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// DetectCardNetwork infers the scheme from the leading digits. The
// result is display-only and never affects validity.
func DetectCardNetwork(cardNumber string) string {
	cleaned := CleanCardNumber(cardNumber)

	if strings.HasPrefix(cleaned, "4") {
		return "visa"
	}
	if len(cleaned) < 2 {
		return "unknown"
	}

	twoDigit := cleaned[:2]
	switch twoDigit {
	case "51", "52", "53", "54", "55":
		return "mastercard"
	case "34", "37":
		return "amex"
	case "60", "65":
		return "rupay"
	}

	if n, err := strconv.Atoi(twoDigit); err == nil && n >= 81 && n <= 89 {
		return "rupay"
	}

	return "unknown"
}

// ValidateExpiry accepts a 1-12 month and a 2- or 4-digit year. A
// 2-digit year reads as 2000+year. The current month is still valid.
func ValidateExpiry(month, year string) bool {
	parsedMonth, err := strconv.Atoi(month)
	if err != nil || parsedMonth < 1 || parsedMonth > 12 {
		return false
	}

	parsedYear, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	if len(year) == 2 {
		parsedYear += 2000
	}

	now := time.Now()
	if parsedYear > now.Year() {
		return true
	}
	return parsedYear == now.Year() && parsedMonth >= int(now.Month())
}
