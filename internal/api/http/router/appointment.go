package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/internal/api/http/middleware"
	"github.com/medera/medera_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	authOptional fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments")

	// Booking is open to guests; a valid token links the booking to the
	// caller's account.
	appts.Post("/", middleware.NewBookingLimiter(r.p.Redis), authOptional, ah.Book)
	appts.Get("/lookup", ah.Lookup)
	appts.Get("/availability", ah.Availability)

	// Staff views
	appts.Get("/", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Get("/stats", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Stats)
	appts.Get("/today", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.Today)
	appts.Get("/upcoming", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.Upcoming)
	appts.Get("/pending", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.Pending)

	a := appts.Group("/:id")
	a.Get("/", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Post("/confirm", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionTransit), ah.Confirm)
	a.Post("/complete", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionTransit), ah.Complete)
	a.Post("/cancel", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionTransit), ah.Cancel)
	a.Patch("/payment", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.UpdatePaymentStatus)
	a.Delete("/", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), ah.Delete)
	a.Post("/pay", ph.Initiate)
}
