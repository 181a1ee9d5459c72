package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/service/appointment"
	"github.com/medera/medera_backend/internal/service/payment"
)

type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func mapPaymentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound),
		errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payment.ErrAlreadyPaid):
		return conflict(c, err.Error())
	case errors.Is(err, payment.ErrNotPayable),
		errors.Is(err, payment.ErrNothingToPay):
		return unprocessable(c, err.Error())
	case errors.Is(err, payment.ErrPaymentFailed):
		return unprocessable(c, err.Error())
	case errors.Is(err, payment.ErrZarinPalFailure):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return internalError(c)
	}
}

// POST /appointments/:id/pay
func (h *PaymentHandler) Initiate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	payURL, err := h.svc.InitiatePayment(c.Context(), id)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, fiber.Map{"pay_url": payURL})
}

// GET /payments/callback?Authority=...&Status=...
//
// ZarinPal redirects the payer here after the gateway session ends.
func (h *PaymentHandler) Callback(c fiber.Ctx) error {
	authority := c.Query("Authority")
	status := c.Query("Status")
	if authority == "" {
		return badRequest(c, "missing Authority parameter")
	}

	appt, err := h.svc.VerifyPayment(c.Context(), authority, status)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, appt)
}
