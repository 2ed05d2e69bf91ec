package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("Customer")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	_, err = ParseRole("superuser")
	require.Error(t, err)
	assert.Equal(t, "invalid role specified: superuser", err.Error())
}

func TestParseAppointmentStatus(t *testing.T) {
	for input, want := range map[string]AppointmentStatus{
		"scheduled": StatusScheduled,
		"CONFIRMED": StatusConfirmed,
		"Completed": StatusCompleted,
		"cancelled": StatusCancelled,
		"paid":      StatusPaid,
	} {
		status, err := ParseAppointmentStatus(input)
		require.NoError(t, err)
		assert.Equal(t, want, status)
	}

	_, err := ParseAppointmentStatus("bogus")
	require.Error(t, err)
	assert.Equal(t, "Invalid appointment status: bogus", err.Error())
}

func TestParseServiceType(t *testing.T) {
	st, err := ParseServiceType("in_store")
	require.NoError(t, err)
	assert.Equal(t, ServiceInStore, st)

	// Hyphenated spelling is accepted too
	st, err = ParseServiceType("in-home")
	require.NoError(t, err)
	assert.Equal(t, ServiceInHome, st)

	_, err = ParseServiceType("virtual")
	require.Error(t, err)
}

func TestParseTransactionType(t *testing.T) {
	tt, err := ParseTransactionType("earned")
	require.NoError(t, err)
	assert.Equal(t, TransactionEarned, tt)

	_, err = ParseTransactionType("spent")
	require.Error(t, err)
}

func TestParseRedemptionMethod(t *testing.T) {
	m, err := ParseRedemptionMethod("gift_card")
	require.NoError(t, err)
	assert.Equal(t, RedeemGiftCard, m)

	_, err = ParseRedemptionMethod("cash")
	require.Error(t, err)
}

func TestLoyaltyTier(t *testing.T) {
	assert.Equal(t, "Bronze", LoyaltyTier(0))
	assert.Equal(t, "Bronze", LoyaltyTier(499))
	assert.Equal(t, "Silver", LoyaltyTier(500))
	assert.Equal(t, "Gold", LoyaltyTier(2000))
	assert.Equal(t, "Diamond", LoyaltyTier(5000))
}
