package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := newFakeClock()
	rl := NewRateLimiter(limit, window, WithRateLimiterClock(clock.Now))
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows a full burst then blocks", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)

		for i := range 3 {
			assert.True(t, rl.Allow("client"), "request %d", i+1)
		}
		assert.False(t, rl.Allow("client"))
		assert.Equal(t, 0, rl.Remaining("client"))
	})

	t.Run("separate buckets per key", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)

		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.True(t, rl.Allow("b"))
	})

	t.Run("refills one token per window slice", func(t *testing.T) {
		rl, clock := newTestLimiter(t, 2, time.Minute)

		assert.True(t, rl.Allow("client"))
		assert.True(t, rl.Allow("client"))
		assert.False(t, rl.Allow("client"))

		clock.Advance(30 * time.Second)
		assert.True(t, rl.Allow("client"))
		assert.False(t, rl.Allow("client"))
	})

	t.Run("remaining for an unseen key is the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 5, time.Minute)

		assert.Equal(t, 5, rl.Remaining("nobody"))
		rl.Allow("somebody")
		assert.Equal(t, 4, rl.Remaining("somebody"))
	})

	t.Run("non-positive arguments fall back to sane values", func(t *testing.T) {
		rl := NewRateLimiter(0, 0)
		defer rl.Stop()

		assert.Equal(t, 1, rl.Limit())
		assert.Equal(t, time.Minute, rl.window)
	})
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl, clock := newTestLimiter(t, 5, time.Minute)

	rl.Allow("old")
	clock.Advance(90 * time.Second)
	rl.Allow("recent")
	clock.Advance(45 * time.Second)

	rl.evictIdle()

	assert.Equal(t, 1, rl.size())
	assert.Equal(t, 4, rl.Remaining("recent"))
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl, _ := newTestLimiter(t, 50, time.Hour)

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), allowed.Load())
}

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	router := gin.New()
	router.Use(RequestID(), RateLimit(rl))
	router.GET("/test", okHandler)

	for i := range 2 {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, dto.ErrCodeRateLimited, body.Error.Code)
	assert.Equal(t, w.Header().Get(RequestIDHeader), body.Error.RequestID)
}

func TestRateLimitByKey(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)

	router := gin.New()
	router.Use(RateLimitByKey(rl, func(c *gin.Context) string {
		return c.GetHeader("X-Client")
	}))
	router.GET("/test", okHandler)

	request := func(clientKey string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Client", clientKey)
		return serve(router, req).Code
	}

	assert.Equal(t, http.StatusOK, request("a"))
	assert.Equal(t, http.StatusTooManyRequests, request("a"))
	assert.Equal(t, http.StatusOK, request("b"))
}
