package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromotionApplyPercentage(t *testing.T) {
	promo := Promotion{DiscountType: DiscountPercentage, DiscountValue: 20}

	assert.Equal(t, 80.0, promo.Apply(100))
	assert.Equal(t, 0.0, promo.Apply(0))
}

func TestPromotionApplyFixedAmount(t *testing.T) {
	promo := Promotion{DiscountType: DiscountFixedAmount, DiscountValue: 15}

	assert.Equal(t, 85.0, promo.Apply(100))
}

func TestPromotionApplyNeverNegative(t *testing.T) {
	promo := Promotion{DiscountType: DiscountFixedAmount, DiscountValue: 50}

	assert.Equal(t, 0.0, promo.Apply(30))
}

func TestPromotionApplyUnknownTypeIsNoop(t *testing.T) {
	promo := Promotion{DiscountValue: 50}

	assert.Equal(t, 30.0, promo.Apply(30))
}

func TestPromotionExpired(t *testing.T) {
	promo := Promotion{EndDate: "2026-08-31"}

	assert.False(t, promo.Expired("2026-08-31"))
	assert.True(t, promo.Expired("2026-09-01"))
}

func TestParseDiscountType(t *testing.T) {
	dt, err := ParseDiscountType("percentage")
	assert.NoError(t, err)
	assert.Equal(t, DiscountPercentage, dt)

	_, err = ParseDiscountType("BOGO")
	assert.Error(t, err)
}
