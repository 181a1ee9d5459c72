package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/api/http/handler"
)

func (r *Router) registerPaymentRoutes(api fiber.Router, h *handler.PaymentHandler) {
	// The gateway redirects the payer here, so the route stays public.
	api.Get("/payments/callback", h.Callback)
}
