package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis is the app-wide sliding window limit. Counters live
// in Redis so every replica sees the same window.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return newLimiter(rdb, 20, 30*time.Second)
}

// NewBookingLimiter guards the unauthenticated booking endpoint. Guests can
// book without an account, so this window is the only brake on scripted
// slot hoarding.
func NewBookingLimiter(rdb *redis.Client) fiber.Handler {
	return newLimiter(rdb, 5, time.Minute)
}

func newLimiter(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
