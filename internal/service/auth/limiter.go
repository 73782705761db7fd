package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedClients порог, после которого из карты вытесняются простаивающие клиенты
const maxTrackedClients = 1024

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiter отдельный token bucket на каждого клиента (IP)
type loginLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientBucket
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	maxClients int
}

func newLoginLimiter(limit rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		clients:    make(map[string]*clientBucket),
		limit:      limit,
		burst:      burst,
		idleTTL:    refillTime(limit, burst),
		maxClients: maxTrackedClients,
	}
}

// allow расходует попытку клиента key
func (l *loginLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= l.maxClients {
			l.evictIdle(now)
		}
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}

// evictIdle удаляет клиентов, чей bucket уже полностью восстановился
func (l *loginLimiter) evictIdle(now time.Time) {
	if l.idleTTL < 0 {
		return
	}
	for key, bucket := range l.clients {
		if now.Sub(bucket.lastSeen) >= l.idleTTL {
			delete(l.clients, key)
		}
	}
}

// refillTime время восстановления пустого bucket, -1 если токены не восстанавливаются
func refillTime(limit rate.Limit, burst int) time.Duration {
	switch {
	case limit == rate.Inf:
		return 0
	case limit <= 0:
		return -1
	}
	return time.Duration(float64(burst) / float64(limit) * float64(time.Second))
}
