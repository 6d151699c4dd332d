package controllers

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
)

// Processor is the process-wide payment processor, wired up in main.
var Processor *PaymentProcessor

// PaymentProcessor resolves payments after their processing delay. One
// timer per payment id; the status-guarded update keeps the transition
// exactly-once even when a requeue races a live timer.
type PaymentProcessor struct {
	cfg *config.Config

	mu      sync.Mutex
	rng     *rand.Rand
	pending map[string]*time.Timer
}

func NewPaymentProcessor(cfg *config.Config) *PaymentProcessor {
	return &PaymentProcessor{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		pending: make(map[string]*time.Timer),
	}
}

// Schedule queues the one-shot status transition for a payment. A
// second call for the same id while a timer is live is a no-op.
func (p *PaymentProcessor) Schedule(paymentID, method, cardNumber, vpa string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.pending[paymentID]; exists {
		return
	}

	delay := utils.ProcessingDelay(p.cfg, p.rng)
	utils.LogDebug("Payment %s scheduled to resolve in %v", paymentID, delay)

	p.pending[paymentID] = time.AfterFunc(delay, func() {
		p.resolve(paymentID, method, cardNumber, vpa)
	})
}

func (p *PaymentProcessor) resolve(paymentID, method, cardNumber, vpa string) {
	p.mu.Lock()
	delete(p.pending, paymentID)
	success := utils.DeterminePaymentSuccess(p.cfg, p.rng, method, cardNumber, vpa)
	p.mu.Unlock()

	updates := map[string]interface{}{
		"status":     models.PaymentStatusSuccess,
		"updated_at": time.Now(),
	}
	if !success {
		code, description := utils.PaymentFailureDetails(method)
		updates["status"] = models.PaymentStatusFailed
		updates["error_code"] = code
		updates["error_description"] = description
	}

	// Single guarded UPDATE: a concurrent reader sees either processing
	// or the fully populated terminal state, and a stale timer for an
	// already-resolved payment changes nothing.
	res := config.DB.Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.PaymentStatusProcessing).
		Updates(updates)
	if res.Error != nil {
		// The payment stays in processing; callers resubmit.
		utils.LogError("Failed to resolve payment %s: %v", paymentID, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.LogDebug("Payment %s already resolved", paymentID)
		return
	}

	status := updates["status"].(string)
	utils.RecordPaymentOutcome(status)
	utils.LogInfo("Payment %s resolved to %s", paymentID, status)
}

// RequeuePendingPayments reschedules payments a previous run left in
// processing. Due times are not persisted, so each gets a fresh delay.
func (p *PaymentProcessor) RequeuePendingPayments() error {
	var payments []models.Payment
	err := config.DB.
		Where("status = ?", models.PaymentStatusProcessing).
		Find(&payments).Error
	if err != nil {
		return err
	}

	for _, payment := range payments {
		// Only what the record carries survives a restart: the VPA is
		// stored in full, a card number is not, so requeued card
		// payments ride on the success-rate draw alone.
		p.Schedule(payment.ID, payment.Method, "", payment.VPA)
	}

	if len(payments) > 0 {
		utils.LogInfo("Requeued %d pending payments", len(payments))
	}
	return nil
}
