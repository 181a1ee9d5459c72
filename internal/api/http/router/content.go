package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/pkg/authorize"
)

func (r *Router) registerContentRoutes(
	api fiber.Router,
	h *handler.ContentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	content := api.Group("/content")

	// Public pages (FAQ, articles, facilities)
	content.Get("/", h.ListPublished)

	// Editorial surface. Registered before the slug wildcard so /all
	// does not resolve as a slug.
	content.Get("/all", authRequired, requirePerm(authorize.ResourceContent, authorize.ActionList), h.ListAll)
	content.Post("/", authRequired, requirePerm(authorize.ResourceContent, authorize.ActionCreate), h.Create)
	content.Patch("/:id", authRequired, requirePerm(authorize.ResourceContent, authorize.ActionUpdate), h.Update)
	content.Delete("/:id", authRequired, requirePerm(authorize.ResourceContent, authorize.ActionDelete), h.Delete)

	content.Get("/:slug", h.GetBySlug)
}
