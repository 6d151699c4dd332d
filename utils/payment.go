package utils

import (
	"math/rand"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
)

// ProcessingDelay returns how long a payment stays in processing before
// it resolves. Test configurations get a fixed delay; otherwise the
// delay is a uniform draw between the configured bounds, inclusive.
func ProcessingDelay(cfg *config.Config, rng *rand.Rand) time.Duration {
	if cfg.TestMode {
		return time.Duration(cfg.TestProcessingDelay) * time.Millisecond
	}
	spread := cfg.ProcessingDelayMax - cfg.ProcessingDelayMin + 1
	if spread < 1 {
		// Inverted bounds collapse to the minimum; rand.Intn panics on
		// a non-positive argument.
		spread = 1
	}
	return time.Duration(cfg.ProcessingDelayMin+rng.Intn(spread)) * time.Millisecond
}

// DeterminePaymentSuccess decides the terminal status for a payment.
// The random source is explicit so callers can pin the draw in tests.
func DeterminePaymentSuccess(cfg *config.Config, rng *rand.Rand, method, cardNumber, vpa string) bool {
	if cfg.TestMode {
		return cfg.TestPaymentSuccess
	}

	switch method {
	case models.PaymentMethodUPI:
		// Only the sentinel VPA succeeds outside test mode.
		return vpa == cfg.UPISuccessVPA
	case models.PaymentMethodCard:
		if CleanCardNumber(cardNumber) == cfg.CardDeclineNumber {
			return false
		}
		return rng.Float64() < cfg.CardSuccessRate
	}

	return false
}

// PaymentFailureDetails returns the error code and description stamped
// on a failed payment.
func PaymentFailureDetails(method string) (string, string) {
	switch method {
	case models.PaymentMethodUPI:
		return CodePaymentFailed, "UPI payment failed"
	case models.PaymentMethodCard:
		return CodePaymentFailed, "Card payment failed"
	}
	return CodePaymentFailed, "Payment processing failed"
}
