//go:build unit

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodshare/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:       true,
		RPS:           0.001,
		Burst:         2,
		IdleTTL:       time.Minute,
		SweepSchedule: "@every 1m",
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl, err := NewRateLimiter(testRateLimitConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl, err := NewRateLimiter(testRateLimitConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.allow("idle")
	now = now.Add(2 * time.Minute)
	rl.allow("fresh")

	assert.Equal(t, 1, rl.Sweep())
	assert.Contains(t, rl.clients, "fresh")
	assert.NotContains(t, rl.clients, "idle")
}

func TestNewRateLimiter_BadSchedule(t *testing.T) {
	cfg := testRateLimitConfig()
	cfg.SweepSchedule = "not a schedule"

	_, err := NewRateLimiter(cfg, slog.Default())

	assert.Error(t, err)
}
