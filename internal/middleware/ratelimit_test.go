package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return current }
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "ip-1", 2, time.Minute))
	assert.True(t, l.Allow(ctx, "ip-1", 2, time.Minute))
	assert.False(t, l.Allow(ctx, "ip-1", 2, time.Minute))

	// другой ключ считается отдельно
	assert.True(t, l.Allow(ctx, "ip-2", 2, time.Minute))

	current = current.Add(time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, "ip-1", 2, time.Minute))
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLimiter(rdb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "ratelimit:test:ip", 3, time.Minute), "call %d", i+1)
	}
	assert.False(t, l.Allow(ctx, "ratelimit:test:ip", 3, time.Minute))
	assert.True(t, mr.Exists("ratelimit:test:ip"))

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, "ratelimit:test:ip", 3, time.Minute))
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	l := NewRedisLimiter(rdb)

	mr.Close()
	assert.True(t, l.Allow(context.Background(), "ratelimit:test:ip", 1, time.Minute))
	assert.True(t, l.Allow(context.Background(), "ratelimit:test:ip", 1, time.Minute))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/limited", RateLimitMiddleware(NewMemoryLimiter(), "test", 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		return w
	}

	assert.Equal(t, http.StatusCreated, send().Code)
	assert.Equal(t, http.StatusCreated, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", RateLimitMiddleware(nil, "test", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
