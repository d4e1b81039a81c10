package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"financial-coach/config"
	"financial-coach/internal/auth"
	"financial-coach/pkg/log"
)

func newTestMiddleware(cfg *config.Config) Middleware {
	return New(log.NewNop(), auth.NewStaticVerifier(cfg.Auth.Tokens), cfg)
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.Any("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func do(r http.Handler, method, token string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	tokens := map[string]string{"tok-a": "alice"}

	t.Run("dev mode", func(t *testing.T) {
		mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{DevMode: true, Required: true}})
		w := do(newEngine(mw, mw.Auth()), http.MethodGet, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, auth.DevUserID, w.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{Required: true, Tokens: tokens}})
		w := do(newEngine(mw, mw.Auth()), http.MethodGet, "tok-a", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("required without token", func(t *testing.T) {
		mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{Required: true, Tokens: tokens}})
		w := do(newEngine(mw, mw.Auth()), http.MethodGet, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("optional without token", func(t *testing.T) {
		mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{Required: false, Tokens: tokens}})
		w := do(newEngine(mw, mw.Auth()), http.MethodGet, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("optional with bad token", func(t *testing.T) {
		mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{Required: false, Tokens: tokens}})
		w := do(newEngine(mw, mw.Auth()), http.MethodGet, "nope", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	mw := newTestMiddleware(&config.Config{
		Auth:      config.AuthConfig{Required: true, Tokens: map[string]string{"tok-a": "alice", "tok-b": "bob"}},
		RateLimit: config.RateLimitConfig{PerMin: 1},
	})
	r := newEngine(mw, mw.Auth(), mw.RateLimit())

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "tok-a", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "tok-a", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "tok-b", nil).Code)
}

func TestRateLimiter_ConcurrentFirstRequestsShareOneBucket(t *testing.T) {
	rl := newRateLimiter(60)
	require.NotNil(t, rl)

	var allowed int32
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if rl.Allow("carol") {
				atomic.AddInt32(&allowed, 1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(rl.burst), allowed)
	assert.Equal(t, 1, rl.limiters.Len())
}

func TestRateLimitDisabled(t *testing.T) {
	mw := newTestMiddleware(&config.Config{Auth: config.AuthConfig{DevMode: true}})
	r := newEngine(mw, mw.Auth(), mw.RateLimit())
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, do(r, http.MethodGet, "", nil).Code)
	}
}

func TestCORS(t *testing.T) {
	mw := newTestMiddleware(&config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}})
	r := newEngine(mw, mw.CORS())

	w := do(r, http.MethodGet, "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodOptions, "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	mw := newTestMiddleware(&config.Config{})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceIDFromContext(c.Request.Context()))
	})

	w := do(r, http.MethodGet, "", map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "", nil)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}
