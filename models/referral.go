package models

import (
	"time"
)

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "PENDING"
	ReferralCompleted ReferralStatus = "COMPLETED"
	ReferralCancelled ReferralStatus = "CANCELLED"
)

type Referral struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	ReferrerUserID    string         `json:"referrer_user_id" gorm:"size:255;not null"`
	ReferralCode      string         `json:"referral_code" gorm:"unique;not null"`
	ReferredUserID    *string        `json:"referred_user_id"`
	ReferredUserEmail string         `json:"referred_user_email"`
	Status            ReferralStatus `json:"status"`
	GeneratedDate     time.Time      `json:"generated_date"`
	CompletedDate     *time.Time     `json:"completed_date"`
}
