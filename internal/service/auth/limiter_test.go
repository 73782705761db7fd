package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLoginLimiter_PerClient(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	l := newLoginLimiter(rate.Every(time.Minute), 2)

	assert.True(t, l.allow("198.51.100.7", now))
	assert.True(t, l.allow("198.51.100.7", now))
	assert.False(t, l.allow("198.51.100.7", now))

	assert.True(t, l.allow("192.0.2.1", now))

	assert.True(t, l.allow("198.51.100.7", now.Add(time.Minute)))
}

func TestLoginLimiter_EvictsRefilledClients(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	l := newLoginLimiter(rate.Every(time.Minute), 2)
	l.maxClients = 2

	l.allow("a", now)
	l.allow("b", now.Add(time.Minute))

	l.allow("c", now.Add(2*time.Minute))
	assert.NotContains(t, l.clients, "a")
	assert.Contains(t, l.clients, "b")
	assert.Contains(t, l.clients, "c")
}

func TestLoginLimiter_KeepsThrottledClients(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	l := newLoginLimiter(rate.Every(time.Minute), 2)
	l.maxClients = 1

	l.allow("a", now)
	l.allow("a", now)
	l.allow("b", now.Add(30*time.Second))

	assert.Contains(t, l.clients, "a")
	assert.False(t, l.allow("a", now.Add(30*time.Second)))
}

func TestRefillTime(t *testing.T) {
	assert.Equal(t, 2*time.Minute, refillTime(rate.Every(time.Minute), 2))
	assert.Equal(t, time.Duration(0), refillTime(rate.Inf, 5))
	assert.Equal(t, time.Duration(-1), refillTime(0, 5))
}
