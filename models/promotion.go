package models

import (
	"fmt"
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToUpper(s)) {
	case DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixedAmount:
		return DiscountFixedAmount, nil
	default:
		return "", fmt.Errorf("invalid discount type: %s", s)
	}
}

type Promotion struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Name          string       `json:"name"`
	Description   string       `json:"description" gorm:"size:500"`
	PromoCode     string       `json:"promo_code" gorm:"unique"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value" gorm:"type:numeric(10,2)"`
	StartDate     string       `json:"start_date" gorm:"size:10"`
	EndDate       string       `json:"end_date" gorm:"size:10"`
	IsActive      bool         `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Expired reports whether the promotion's end date lies before the given day.
func (p *Promotion) Expired(today string) bool {
	return p.EndDate != "" && p.EndDate < today
}

// Apply returns the price after this promotion's discount.
func (p *Promotion) Apply(amount float64) float64 {
	var discounted float64
	switch p.DiscountType {
	case DiscountPercentage:
		discounted = amount - amount*p.DiscountValue/100
	case DiscountFixedAmount:
		discounted = amount - p.DiscountValue
	default:
		return amount
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}
