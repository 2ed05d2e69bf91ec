package models

import (
	"fmt"
	"time"
)

type GiftCard struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Code              string    `json:"code" gorm:"unique;not null"`
	InitialAmount     float64   `json:"initial_amount" gorm:"type:numeric(10,2)"`
	CurrentBalance    float64   `json:"current_balance" gorm:"type:numeric(10,2)"`
	ExpiryDate        string    `json:"expiry_date" gorm:"size:10"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	PurchasedByUserID *string   `json:"purchased_by_user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Expired reports whether the card's expiry date lies before the given day.
func (g *GiftCard) Expired(today string) bool {
	return g.ExpiryDate != "" && g.ExpiryDate < today
}

// Redeem deducts amount from the card balance. A card that reaches a zero
// balance is deactivated.
func (g *GiftCard) Redeem(amount float64, today string) error {
	if !g.IsActive || g.Expired(today) {
		return fmt.Errorf("gift card is inactive or expired")
	}
	if g.CurrentBalance < amount {
		return fmt.Errorf("insufficient balance on gift card")
	}
	g.CurrentBalance -= amount
	if g.CurrentBalance == 0 {
		g.IsActive = false
	}
	return nil
}
