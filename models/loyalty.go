package models

import (
	"fmt"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionEarned   TransactionType = "EARNED"
	TransactionRedeemed TransactionType = "REDEEMED"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(s)) {
	case TransactionEarned:
		return TransactionEarned, nil
	case TransactionRedeemed:
		return TransactionRedeemed, nil
	default:
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
}

type RedemptionMethod string

const (
	RedeemGiftCard   RedemptionMethod = "GIFT_CARD"
	RedeemBankCredit RedemptionMethod = "BANK_CREDIT"
)

func ParseRedemptionMethod(s string) (RedemptionMethod, error) {
	switch RedemptionMethod(strings.ToUpper(s)) {
	case RedeemGiftCard:
		return RedeemGiftCard, nil
	case RedeemBankCredit:
		return RedeemBankCredit, nil
	default:
		return "", fmt.Errorf("invalid redemption method: %s", s)
	}
}

// LoyaltyPoint is one entry in the loyalty ledger. A user's balance is the
// sum of EARNED points minus the sum of REDEEMED points.
type LoyaltyPoint struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	UserID           string           `json:"user_id" gorm:"size:255;not null"`
	User             *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TransactionType  TransactionType  `json:"transaction_type" gorm:"not null"`
	Points           int              `json:"points" gorm:"not null"`
	Description      string           `json:"description" gorm:"size:500"`
	AppointmentID    *uint            `json:"appointment_id"`
	Appointment      *Appointment     `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	RedemptionMethod RedemptionMethod `json:"redemption_method,omitempty"`
	BankAccount      string           `json:"bank_account,omitempty"`
	RoutingNumber    string           `json:"routing_number,omitempty"`
	RedemptionValue  float64          `json:"redemption_value" gorm:"type:numeric(10,2)"`
	CreatedAt        time.Time        `json:"created_at"`
}

// LoyaltyTier maps a point balance to its tier name.
func LoyaltyTier(points int) string {
	switch {
	case points >= 5000:
		return "Diamond"
	case points >= 2000:
		return "Gold"
	case points >= 500:
		return "Silver"
	default:
		return "Bronze"
	}
}
