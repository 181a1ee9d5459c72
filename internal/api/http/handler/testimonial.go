package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/service/testimonial"
)

type TestimonialHandler struct {
	svc testimonial.Service
}

func NewTestimonialHandler(svc testimonial.Service) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

func mapTestimonialError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, testimonial.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, testimonial.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, testimonial.ErrAlreadyReviewed):
		return conflict(c, err.Error())
	case errors.Is(err, testimonial.ErrNotCompleted):
		return unprocessable(c, err.Error())
	case errors.Is(err, testimonial.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /testimonials
//
// Public listings only expose verified, public entries. Staff pass
// all=true to see the moderation queue.
func (h *TestimonialHandler) list(c fiber.Ctx, moderator bool) error {
	var q struct {
		DoctorID string `query:"doctor_id"`
		Sort     string `query:"sort"`
		All      bool   `query:"all"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := testimonial.ListRequest{
		Page:       q.Page,
		PerPage:    q.PerPage,
		Sort:       q.Sort,
		PublicOnly: !(moderator && q.All),
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return paginated(c, res.Data, res.Total, res.Page, res.PerPage, res.TotalPages)
}

// ListPublic serves the unauthenticated route.
func (h *TestimonialHandler) ListPublic(c fiber.Ctx) error {
	return h.list(c, false)
}

// ListAll serves the staff route.
func (h *TestimonialHandler) ListAll(c fiber.Ctx) error {
	return h.list(c, true)
}

// GET /testimonials/stats
func (h *TestimonialHandler) Stats(c fiber.Ctx) error {
	var doctorID *uuid.UUID
	if raw := c.Query("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		doctorID = &id
	}

	stats, err := h.svc.Stats(c.Context(), doctorID)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return ok(c, stats)
}

// GET /testimonials/:id
func (h *TestimonialHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	t, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return ok(c, t)
}

// POST /testimonials
func (h *TestimonialHandler) Create(c fiber.Ctx) error {
	var body struct {
		AppointmentID string  `json:"appointment_id"`
		Rating        int     `json:"rating"`
		Comment       string  `json:"comment"`
		TreatmentType *string `json:"treatment_type"`
		IsPublic      *bool   `json:"is_public"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	apptID, err := uuid.Parse(body.AppointmentID)
	if err != nil {
		return badRequest(c, "invalid appointment_id")
	}

	req := testimonial.CreateRequest{
		AppointmentID: apptID,
		Rating:        body.Rating,
		Comment:       body.Comment,
		TreatmentType: body.TreatmentType,
		IsPublic:      true,
	}
	if body.IsPublic != nil {
		req.IsPublic = *body.IsPublic
	}

	t, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return created(c, t)
}

// POST /testimonials/:id/verify
//
// An empty body verifies; {"is_verified": false} retracts a prior
// verification and pulls the entry off public surfaces.
func (h *TestimonialHandler) Verify(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	var body struct {
		IsVerified *bool `json:"is_verified"`
	}
	_ = c.Bind().JSON(&body)
	verified := true
	if body.IsVerified != nil {
		verified = *body.IsVerified
	}

	t, err := h.svc.Verify(c.Context(), id, verified)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return ok(c, t)
}

// POST /testimonials/:id/vote
func (h *TestimonialHandler) Vote(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	t, err := h.svc.Vote(c.Context(), id)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return ok(c, t)
}

// PATCH /testimonials/:id/visibility
func (h *TestimonialHandler) SetPublic(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	var body struct {
		IsPublic bool `json:"is_public"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.SetPublic(c.Context(), id, body.IsPublic)
	if err != nil {
		return mapTestimonialError(c, err)
	}

	return ok(c, t)
}

// DELETE /testimonials/:id
func (h *TestimonialHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapTestimonialError(c, err)
	}

	return noContent(c)
}
