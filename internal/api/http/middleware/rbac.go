package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/pkg/authorize"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

// RequirePermission checks that the authenticated user holds the given
// permission in the hospital domain. Superadmins pass through the sys
// wildcard policy.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		subject, err := authorize.SubjectFromContext(c.Context())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainHospital, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfOrPermission allows the request when the :id path parameter
// matches the caller, and otherwise falls back to a permission check.
// Used for profile routes where users manage their own record.
func RequireSelfOrPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if c.Params("id") == claims.UserID.String() {
			return c.Next()
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainHospital, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
