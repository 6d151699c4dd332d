package models

import (
	"time"
)

// Merchant represents an API consumer of the gateway. Credentials are
// seeded once and matched by exact equality on every request.
type Merchant struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	APIKey    string    `json:"api_key" gorm:"column:api_key;uniqueIndex;not null"`
	APISecret string    `json:"-" gorm:"column:api_secret;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
