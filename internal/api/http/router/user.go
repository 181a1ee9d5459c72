package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	selfOrPerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/me", h.Me)
	users.Patch("/me", h.UpdateMe)

	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	// Users may read their own record; anyone else needs user.read.
	users.Get("/:id", selfOrPerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	users.Patch("/:id/role", requirePerm(authorize.ResourceRBAC, authorize.ActionGrant), h.SetRole)
	users.Patch("/:id/active", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.SetActive)
	users.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)
}
