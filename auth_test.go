package articlaw_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zoltlabs/articlaw"
)

func TestSession_NearExpiry(t *testing.T) {
	t.Parallel()

	t.Run("false well before expiry", func(t *testing.T) {
		t.Parallel()

		s := &articlaw.Session{ExpiresAt: time.Now().Add(time.Hour).Unix()}

		assert.False(t, s.NearExpiry(time.Minute))
	})

	t.Run("true inside the leeway window", func(t *testing.T) {
		t.Parallel()

		s := &articlaw.Session{ExpiresAt: time.Now().Add(30 * time.Second).Unix()}

		assert.True(t, s.NearExpiry(time.Minute))
	})

	t.Run("true after expiry", func(t *testing.T) {
		t.Parallel()

		s := &articlaw.Session{ExpiresAt: time.Now().Add(-time.Minute).Unix()}

		assert.True(t, s.NearExpiry(time.Minute))
	})

	t.Run("false without a recorded expiry", func(t *testing.T) {
		t.Parallel()

		s := &articlaw.Session{AccessToken: "token"}

		assert.False(t, s.NearExpiry(time.Minute))
	})
}
