package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusCreated = "created"
)

// MinOrderAmount is the smallest accepted order amount in minor
// currency units (paise for INR).
const MinOrderAmount = 100

type Order struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	MerchantID string    `json:"merchant_id" gorm:"index;not null"`
	Merchant   Merchant  `json:"-" gorm:"foreignKey:MerchantID"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency" gorm:"default:'INR'"`
	Receipt    string    `json:"receipt,omitempty"`
	Notes      string    `json:"-"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Payments   []Payment `json:"-" gorm:"foreignKey:OrderID"`
}
