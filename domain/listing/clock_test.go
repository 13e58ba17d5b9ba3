package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	left, expired := Remaining(now.Add(10*24*time.Hour), now)
	assert.False(t, expired)
	assert.Equal(t, 10*24*time.Hour, left)

	left, expired = Remaining(now.Add(-time.Second), now)
	assert.True(t, expired)
	assert.Zero(t, left)

	// the deadline instant itself already counts as expired
	left, expired = Remaining(now, now)
	assert.True(t, expired)
	assert.Zero(t, left)
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsExpired(now.Add(time.Millisecond), now))
	assert.True(t, IsExpired(now, now))
	assert.True(t, IsExpired(now.Add(-time.Hour), now))
}
