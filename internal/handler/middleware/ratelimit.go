package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"foodshare/internal/handler/httperr"
	"foodshare/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle buckets are swept on a cron schedule.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger) (*RateLimiter, error) {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		idleTTL: cfg.IdleTTL,
		now:     time.Now,
		cron:    cron.New(),
		logger:  logger,
	}
	if _, err := rl.cron.AddFunc(cfg.SweepSchedule, func() { rl.Sweep() }); err != nil {
		return nil, err
	}
	return rl, nil
}

func (rl *RateLimiter) Start() {
	rl.cron.Start()
}

func (rl *RateLimiter) Stop() {
	<-rl.cron.Stop().Done()
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = rl.now()
	return cl.limiter.Allow()
}

// Sweep drops limiters idle for longer than the configured TTL and returns how many were removed.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	removed := 0
	for key, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	if removed > 0 {
		rl.logger.Debug("evicted idle rate limiters", "removed", removed, "remaining", len(rl.clients))
	}
	return removed
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
