package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftCardRedeem(t *testing.T) {
	card := GiftCard{Code: "ABC123", InitialAmount: 100, CurrentBalance: 100, ExpiryDate: "2027-01-01", IsActive: true}

	require.NoError(t, card.Redeem(30, "2026-08-31"))
	assert.Equal(t, 70.0, card.CurrentBalance)
	assert.True(t, card.IsActive)
}

func TestGiftCardRedeemInsufficientBalance(t *testing.T) {
	card := GiftCard{CurrentBalance: 20, ExpiryDate: "2027-01-01", IsActive: true}

	err := card.Redeem(30, "2026-08-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
	assert.Equal(t, 20.0, card.CurrentBalance)
}

func TestGiftCardRedeemToZeroDeactivates(t *testing.T) {
	card := GiftCard{CurrentBalance: 50, ExpiryDate: "2027-01-01", IsActive: true}

	require.NoError(t, card.Redeem(50, "2026-08-31"))
	assert.Equal(t, 0.0, card.CurrentBalance)
	assert.False(t, card.IsActive)
}

func TestGiftCardRedeemExpired(t *testing.T) {
	card := GiftCard{CurrentBalance: 50, ExpiryDate: "2026-01-01", IsActive: true}

	err := card.Redeem(10, "2026-08-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive or expired")
}

func TestGiftCardRedeemInactive(t *testing.T) {
	card := GiftCard{CurrentBalance: 50, ExpiryDate: "2027-01-01", IsActive: false}

	err := card.Redeem(10, "2026-08-31")
	require.Error(t, err)
}

func TestGiftCardExpiresOnDayAfter(t *testing.T) {
	card := GiftCard{ExpiryDate: "2026-08-31"}

	// Still usable on the expiry date itself
	assert.False(t, card.Expired("2026-08-31"))
	assert.True(t, card.Expired("2026-09-01"))
}
