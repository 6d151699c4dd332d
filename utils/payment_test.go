package utils

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		TestProcessingDelay: 250,
		ProcessingDelayMin:  5000,
		ProcessingDelayMax:  10000,
		CardSuccessRate:     0.95,
		UPISuccessVPA:       "username@bank",
		CardDeclineNumber:   "4000000000000002",
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestDeterminePaymentSuccessTestMode(t *testing.T) {
	cfg := testConfig()
	cfg.TestMode = true

	cfg.TestPaymentSuccess = true
	assert.True(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodUPI, "", "nobody@nowhere"))
	assert.True(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodCard, "4000000000000002", ""))

	cfg.TestPaymentSuccess = false
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodUPI, "", "username@bank"))
}

func TestDeterminePaymentSuccessUPI(t *testing.T) {
	cfg := testConfig()

	assert.True(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodUPI, "", "username@bank"))
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodUPI, "", "someone@else"))
}

func TestDeterminePaymentSuccessCard(t *testing.T) {
	cfg := testConfig()

	// The decline card always fails, whatever the success rate
	cfg.CardSuccessRate = 1.0
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodCard, "4000000000000002", ""))
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodCard, "4000 0000 0000 0002", ""))

	// Rate 1.0 always succeeds for other cards, 0.0 never does
	assert.True(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodCard, "4532015112830366", ""))
	cfg.CardSuccessRate = 0.0
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), models.PaymentMethodCard, "4532015112830366", ""))
}

func TestDeterminePaymentSuccessUnknownMethod(t *testing.T) {
	cfg := testConfig()
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), "wallet", "", ""))
	assert.False(t, DeterminePaymentSuccess(cfg, testRand(), "", "", ""))
}

func TestProcessingDelayTestMode(t *testing.T) {
	cfg := testConfig()
	cfg.TestMode = true

	assert.Equal(t, 250*time.Millisecond, ProcessingDelay(cfg, testRand()))
}

func TestProcessingDelayBounds(t *testing.T) {
	cfg := testConfig()
	minDelay := time.Duration(cfg.ProcessingDelayMin) * time.Millisecond
	maxDelay := time.Duration(cfg.ProcessingDelayMax) * time.Millisecond

	rng := testRand()
	for i := 0; i < 1000; i++ {
		delay := ProcessingDelay(cfg, rng)
		assert.GreaterOrEqual(t, delay, minDelay)
		assert.LessOrEqual(t, delay, maxDelay)
	}
}

func TestProcessingDelayFixedBounds(t *testing.T) {
	cfg := testConfig()
	cfg.ProcessingDelayMin = 3000
	cfg.ProcessingDelayMax = 3000

	assert.Equal(t, 3*time.Second, ProcessingDelay(cfg, testRand()))
}

func TestProcessingDelayInvertedBounds(t *testing.T) {
	cfg := testConfig()
	cfg.ProcessingDelayMin = 6000
	cfg.ProcessingDelayMax = 5000

	// Must not panic; the draw collapses to the minimum.
	rng := testRand()
	for i := 0; i < 100; i++ {
		assert.Equal(t, 6*time.Second, ProcessingDelay(cfg, rng))
	}
}

func TestPaymentFailureDetails(t *testing.T) {
	code, description := PaymentFailureDetails(models.PaymentMethodUPI)
	assert.Equal(t, CodePaymentFailed, code)
	assert.Equal(t, "UPI payment failed", description)

	code, description = PaymentFailureDetails(models.PaymentMethodCard)
	assert.Equal(t, CodePaymentFailed, code)
	assert.Equal(t, "Card payment failed", description)

	code, description = PaymentFailureDetails("wallet")
	assert.Equal(t, CodePaymentFailed, code)
	assert.Equal(t, "Payment processing failed", description)
}
