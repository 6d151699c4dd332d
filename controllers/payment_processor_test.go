package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestStore points config.DB at a fresh in-memory database. The
// DSN is keyed by test name so parallel packages never share state.
func openTestStore(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Merchant{}, &models.Order{}, &models.Payment{}))
	config.DB = db
}

func seedTestOrder(t *testing.T, amount int64) models.Order {
	t.Helper()
	merchant := models.Merchant{
		ID:        "merchant-test",
		Name:      "Test Merchant",
		Email:     "merchant@example.com",
		APIKey:    "key_test_abc123",
		APISecret: "secret_test_xyz789",
		IsActive:  true,
	}
	require.NoError(t, config.DB.Create(&merchant).Error)

	order := models.Order{
		ID:         utils.GenerateOrderID(),
		MerchantID: merchant.ID,
		Amount:     amount,
		Currency:   "INR",
		Status:     models.OrderStatusCreated,
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func seedProcessingPayment(t *testing.T, order models.Order, method, vpa string) models.Payment {
	t.Helper()
	payment := models.Payment{
		ID:         utils.GeneratePaymentID(),
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Method:     method,
		Status:     models.PaymentStatusProcessing,
		VPA:        vpa,
	}
	require.NoError(t, config.DB.Create(&payment).Error)
	return payment
}

func processorConfig(success bool, delayMS int) *config.Config {
	return &config.Config{
		TestMode:            true,
		TestPaymentSuccess:  success,
		TestProcessingDelay: delayMS,
	}
}

func stopPendingTimers(p *PaymentProcessor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, timer := range p.pending {
		timer.Stop()
		delete(p.pending, id)
	}
}

func reloadPayment(t *testing.T, id string) models.Payment {
	t.Helper()
	var payment models.Payment
	require.NoError(t, config.DB.Where("id = ?", id).First(&payment).Error)
	return payment
}

func TestScheduleWhileTimerPendingIsNoOp(t *testing.T) {
	openTestStore(t)
	order := seedTestOrder(t, 50000)
	payment := seedProcessingPayment(t, order, models.PaymentMethodUPI, "username@bank")

	p := NewPaymentProcessor(processorConfig(true, 60000))
	defer stopPendingTimers(p)

	p.Schedule(payment.ID, payment.Method, "", payment.VPA)
	p.Schedule(payment.ID, payment.Method, "", payment.VPA)

	p.mu.Lock()
	assert.Len(t, p.pending, 1)
	p.mu.Unlock()
}

func TestResolveRunsAtMostOnce(t *testing.T) {
	openTestStore(t)
	order := seedTestOrder(t, 50000)
	payment := seedProcessingPayment(t, order, models.PaymentMethodUPI, "username@bank")

	failing := NewPaymentProcessor(processorConfig(false, 1))
	failing.resolve(payment.ID, payment.Method, "", payment.VPA)

	resolved := reloadPayment(t, payment.ID)
	assert.Equal(t, models.PaymentStatusFailed, resolved.Status)
	assert.Equal(t, utils.CodePaymentFailed, resolved.ErrorCode)
	assert.Equal(t, "UPI payment failed", resolved.ErrorDescription)

	// A stale timer firing after the payment is terminal changes
	// nothing, even when its draw disagrees.
	succeeding := NewPaymentProcessor(processorConfig(true, 1))
	succeeding.resolve(payment.ID, payment.Method, "", payment.VPA)

	again := reloadPayment(t, payment.ID)
	assert.Equal(t, models.PaymentStatusFailed, again.Status)
	assert.Equal(t, resolved.ErrorCode, again.ErrorCode)
	assert.Equal(t, resolved.ErrorDescription, again.ErrorDescription)
}

func TestScheduledPaymentResolves(t *testing.T) {
	openTestStore(t)
	order := seedTestOrder(t, 50000)
	payment := seedProcessingPayment(t, order, models.PaymentMethodUPI, "username@bank")

	p := NewPaymentProcessor(processorConfig(true, 1))
	p.Schedule(payment.ID, payment.Method, "", payment.VPA)

	require.Eventually(t, func() bool {
		var current models.Payment
		if err := config.DB.Where("id = ?", payment.ID).First(&current).Error; err != nil {
			return false
		}
		return current.Status == models.PaymentStatusSuccess
	}, 2*time.Second, 5*time.Millisecond)

	resolved := reloadPayment(t, payment.ID)
	assert.Empty(t, resolved.ErrorCode)
	assert.Empty(t, resolved.ErrorDescription)
}

func TestRequeuePendingPaymentsSchedulesOnlyProcessing(t *testing.T) {
	openTestStore(t)
	order := seedTestOrder(t, 50000)
	pending := seedProcessingPayment(t, order, models.PaymentMethodUPI, "username@bank")

	done := models.Payment{
		ID:         utils.GeneratePaymentID(),
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Method:     models.PaymentMethodUPI,
		Status:     models.PaymentStatusSuccess,
		VPA:        "username@bank",
	}
	require.NoError(t, config.DB.Create(&done).Error)

	p := NewPaymentProcessor(processorConfig(true, 60000))
	defer stopPendingTimers(p)

	require.NoError(t, p.RequeuePendingPayments())

	p.mu.Lock()
	assert.Len(t, p.pending, 1)
	_, scheduled := p.pending[pending.ID]
	p.mu.Unlock()
	assert.True(t, scheduled)
}

func TestCreatePaymentCopiesAmountFromOrder(t *testing.T) {
	openTestStore(t)
	order := seedTestOrder(t, 50000)

	Processor = NewPaymentProcessor(processorConfig(true, 60000))
	defer stopPendingTimers(Processor)

	// Caller-supplied amount and currency are ignored.
	c, w := paymentTestContext(t, map[string]interface{}{
		"order_id": order.ID,
		"method":   "upi",
		"vpa":      "username@bank",
		"amount":   1,
		"currency": "USD",
	})
	CreatePaymentPublic(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(order.Amount), resp["amount"])
	assert.Equal(t, order.Currency, resp["currency"])
	assert.Equal(t, models.PaymentStatusProcessing, resp["status"])

	stored := reloadPayment(t, resp["id"].(string))
	assert.Equal(t, order.Amount, stored.Amount)
	assert.Equal(t, order.Currency, stored.Currency)
}
