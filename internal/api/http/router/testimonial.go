package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/pkg/authorize"
)

func (r *Router) registerTestimonialRoutes(
	api fiber.Router,
	h *handler.TestimonialHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	ts := api.Group("/testimonials")

	// Public surface
	ts.Get("/", h.ListPublic)
	ts.Get("/stats", h.Stats)
	ts.Post("/", h.Create)
	ts.Post("/:id/vote", h.Vote)

	// Moderation
	ts.Get("/all", authRequired, requirePerm(authorize.ResourceTestimonial, authorize.ActionList), h.ListAll)
	ts.Get("/:id", authRequired, requirePerm(authorize.ResourceTestimonial, authorize.ActionRead), h.GetByID)
	ts.Post("/:id/verify", authRequired, requirePerm(authorize.ResourceTestimonial, authorize.ActionVerify), h.Verify)
	ts.Patch("/:id/visibility", authRequired, requirePerm(authorize.ResourceTestimonial, authorize.ActionUpdate), h.SetPublic)
	ts.Delete("/:id", authRequired, requirePerm(authorize.ResourceTestimonial, authorize.ActionDelete), h.Delete)
}
