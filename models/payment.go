package models

import (
	"time"
)

// Payment status constants. Processing is the only non-terminal state;
// exactly one deferred transition moves a payment out of it.
const (
	PaymentStatusProcessing = "processing"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
)

// Payment method constants
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
)

type Payment struct {
	ID         string `gorm:"primaryKey" json:"id"`
	OrderID    string `json:"order_id" gorm:"index;not null"`
	MerchantID string `json:"-" gorm:"index;not null"`
	// Amount and currency are always copied from the order at creation
	// time, never taken from the caller.
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	VPA              string    `json:"vpa,omitempty" gorm:"column:vpa"`
	CardNetwork      string    `json:"card_network,omitempty"`
	CardLast4        string    `json:"card_last4,omitempty"`
	ErrorCode        string    `json:"error_code,omitempty"`
	ErrorDescription string    `json:"error_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
