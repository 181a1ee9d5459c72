package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	h *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := api.Group("/doctors")

	// Public directory
	doctors.Get("/", h.List)
	doctors.Get("/specialties", h.Specialties)
	doctors.Get("/:id", h.GetByID)
	doctors.Get("/:id/slots", h.AvailableSlots)
	doctors.Get("/:id/photo", h.Photo)

	// Admin management
	doctors.Post("/", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), h.Create)
	doctors.Patch("/:id", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.Update)
	doctors.Patch("/:id/schedule", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.UpdateSchedule)
	doctors.Patch("/:id/availability", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.SetAvailability)
	doctors.Post("/:id/photo", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.UploadPhoto)
	doctors.Delete("/:id", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionDelete), h.Delete)
}
