package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/doualadrive/backend-go/internal/config"
)

// RateLimiter throttles the unauthenticated public routes per client IP
// using Redis
type RateLimiter interface {
	// Allow reports whether the client may make another request inside the
	// current one-minute window
	Allow(ctx context.Context, clientIP string) (bool, error)

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisRateLimiter{
		client: client,
		limit:  cfg.PublicRateLimit,
		logger: logger,
	}, nil
}

// windowKey generates the Redis key for the current fixed window
// Format: rate:public:{ip}:{YYYY-MM-DDTHH:MM}
func windowKey(clientIP string) string {
	window := time.Now().UTC().Format("2006-01-02T15:04")
	return fmt.Sprintf("rate:public:%s:%s", clientIP, window)
}

func (r *redisRateLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	if r.limit <= 0 {
		return true, nil
	}

	key := windowKey(clientIP)

	pipe := r.client.Pipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count request", "error", err, "client_ip", clientIP)
		// On error, allow the request but log it
		return true, err
	}

	return count.Val() <= r.limit, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// NoOpRateLimiter is a rate limiter that always allows requests
// Used when Redis is not available
type NoOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a no-op rate limiter
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter - rate limiting is disabled")
	return &NoOpRateLimiter{logger: logger}
}

func (r *NoOpRateLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	return true, nil
}

func (r *NoOpRateLimiter) Close() error {
	return nil
}

// Limit wraps a RateLimiter as gin middleware for the public route group
func Limit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Degraded limiter never blocks traffic
			c.Next()
			return
		}
		if !allowed {
			logger.Warn("⚠️ [RateLimiter] Client throttled", "client_ip", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Trop de requêtes. Veuillez réessayer plus tard."})
			c.Abort()
			return
		}
		c.Next()
	}
}
