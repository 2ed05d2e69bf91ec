package otp

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func TestGenerateAndValidate(t *testing.T) {
	store, _ := newTestStore(t)

	code, err := store.Generate("jane@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	ok, err := store.Validate("jane@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateConsumesChallenge(t *testing.T) {
	store, _ := newTestStore(t)

	code, err := store.Generate("jane@example.com")
	require.NoError(t, err)

	ok, err := store.Validate("jane@example.com", code)
	require.NoError(t, err)
	require.True(t, ok)

	// Second use of the same code fails
	ok, err = store.Validate("jane@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateMismatchKeepsChallenge(t *testing.T) {
	store, _ := newTestStore(t)

	code, err := store.Generate("jane@example.com")
	require.NoError(t, err)

	ok, err := store.Validate("jane@example.com", "000000")
	require.NoError(t, err)
	require.False(t, ok)

	// The right code still works afterwards
	ok, err = store.Validate("jane@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateOverwritesOutstandingChallenge(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Generate("jane@example.com")
	require.NoError(t, err)
	second, err := store.Generate("jane@example.com")
	require.NoError(t, err)

	if first != second {
		ok, err := store.Validate("jane@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok, "stale code must not validate")
	}

	ok, err := store.Validate("jane@example.com", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChallengeExpires(t *testing.T) {
	store, mr := newTestStore(t)

	code, err := store.Generate("jane@example.com")
	require.NoError(t, err)

	mr.FastForward(Validity + 1)

	ok, err := store.Validate("jane@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChallengesAreScopedByAddress(t *testing.T) {
	store, _ := newTestStore(t)

	codeA, err := store.Generate("a@example.com")
	require.NoError(t, err)
	_, err = store.Generate("b@example.com")
	require.NoError(t, err)

	ok, err := store.Validate("b@example.com", codeA)
	require.NoError(t, err)
	assert.False(t, ok)
}
