package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/doualadrive/backend-go/internal/middleware"
)

type stubLimiter struct {
	allowed bool
	err     error
}

func (s *stubLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	return s.allowed, s.err
}

func (s *stubLimiter) Close() error { return nil }

func limitedRouter(limiter middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.GET("/public/vehicles", middleware.Limit(limiter, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name           string
		limiter        middleware.RateLimiter
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "allowed",
			limiter:        &stubLimiter{allowed: true},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "throttled",
			limiter:        &stubLimiter{allowed: false},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   "Trop de requêtes. Veuillez réessayer plus tard.",
		},
		{
			name:           "degraded_limiter_never_blocks",
			limiter:        &stubLimiter{allowed: false, err: errors.New("redis down")},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "noop_limiter_allows",
			limiter:        middleware.NewNoOpRateLimiter(slog.New(slog.NewTextHandler(io.Discard, nil))),
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := limitedRouter(tt.limiter)
			req := httptest.NewRequest(http.MethodGet, "/public/vehicles", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
