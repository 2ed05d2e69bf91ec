package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTP()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestGenerateGiftCardCode(t *testing.T) {
	a := GenerateGiftCardCode()
	b := GenerateGiftCardCode()

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestGenerateReferralCode(t *testing.T) {
	a := GenerateReferralCode()
	b := GenerateReferralCode()

	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
