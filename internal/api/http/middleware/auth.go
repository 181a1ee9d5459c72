package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
	"github.com/medera/medera_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token and checks the session in Redis.
// On success, stores *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims) and
// on the request context for code below the HTTP layer.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Validate session in Redis
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		attachClaims(c, claims)
		return c.Next()
	}
}

// AuthOptional attaches claims when a valid Bearer token is present but
// never rejects the request. Public routes use it so logged-in patients
// get their bookings linked to their account.
func AuthOptional(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return c.Next()
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil || claims.Type != pasetotoken.TokenTypeAccess {
			return c.Next()
		}

		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return c.Next()
			}
		}

		attachClaims(c, claims)
		return c.Next()
	}
}

func attachClaims(c fiber.Ctx, claims *pasetotoken.Claims) {
	c.Locals(pasetotoken.CtxKeyClaims, claims)
	c.SetContext(reqctx.WithClaims(c.Context(), claims))
}
