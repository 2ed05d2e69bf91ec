// Package otp implements the one-time password challenge store on redis.
// Challenges are keyed by contact address, expire via TTL and are consumed
// atomically on successful validation, so concurrent attempts for the same
// address cannot both succeed.
package otp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/beautyplaza/beautyplaza-api/utils"
)

// Validity is the challenge lifetime.
const Validity = 5 * time.Minute

const keyPrefix = "otp:"

// checkAndConsume deletes the challenge only when the presented code matches,
// in a single redis round trip. A mismatch leaves the challenge in place.
var checkAndConsume = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

type Store struct {
	client *redis.Client
	ctx    context.Context
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ctx: context.Background()}
}

// Generate issues a fresh 6-digit code for the address, overwriting any
// outstanding challenge.
func (s *Store) Generate(email string) (string, error) {
	code := utils.GenerateOTP()
	if err := s.client.Set(s.ctx, keyPrefix+email, code, Validity).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Validate checks the presented code. A match consumes the challenge; the
// TTL has already removed expired ones.
func (s *Store) Validate(email, code string) (bool, error) {
	n, err := checkAndConsume.Run(s.ctx, s.client, []string{keyPrefix + email}, code).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
