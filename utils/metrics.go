package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payorbit_orders_created_total",
		Help: "Orders created through the API.",
	})

	paymentsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payorbit_payments_created_total",
		Help: "Payments accepted for processing, by method.",
	}, []string{"method"})

	paymentOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payorbit_payment_outcomes_total",
		Help: "Resolved payment outcomes, by terminal status.",
	}, []string{"status"})
)

// RecordOrderCreated counts a persisted order
func RecordOrderCreated() {
	ordersCreatedTotal.Inc()
}

// RecordPaymentCreated counts a payment accepted for processing
func RecordPaymentCreated(method string) {
	paymentsCreatedTotal.WithLabelValues(method).Inc()
}

// RecordPaymentOutcome counts a resolved terminal status
func RecordPaymentOutcome(status string) {
	paymentOutcomesTotal.WithLabelValues(status).Inc()
}
