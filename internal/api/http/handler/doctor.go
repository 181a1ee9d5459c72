package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrInvalidSchedule):
		return unprocessable(c, err.Error())
	case errors.Is(err, doctor.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, doctor.ErrNotAvailable):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrHasAppointments):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrUnsupportedImage):
		return unprocessable(c, err.Error())
	case errors.Is(err, doctor.ErrNoPhoto):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrStorageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		Specialty        string  `query:"specialty"`
		MinRating        float64 `query:"min_rating"`
		Available        bool    `query:"available"`
		ConsultationType string  `query:"consultation_type"`
		Search           string  `query:"search"`
		Sort             string  `query:"sort"`
		Order            string  `query:"order"`
		Page             int     `query:"page"`
		PerPage          int     `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := doctor.ListRequest{
		Page:          q.Page,
		PerPage:       q.PerPage,
		AvailableOnly: q.Available,
		Sort:          q.Sort,
		Order:         q.Order,
	}
	if q.Specialty != "" {
		req.Specialty = &q.Specialty
	}
	if q.MinRating > 0 {
		req.MinRating = &q.MinRating
	}
	if q.ConsultationType != "" {
		req.ConsultationType = &q.ConsultationType
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return paginated(c, res.Data, res.Total, res.Page, res.PerPage, res.TotalPages)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	doc, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doc)
}

// GET /doctors/specialties
func (h *DoctorHandler) Specialties(c fiber.Ctx) error {
	list, err := h.svc.Specialties(c.Context())
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, list)
}

// GET /doctors/:id/slots?date=YYYY-MM-DD
func (h *DoctorHandler) AvailableSlots(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	date := c.Query("date")
	if date == "" {
		return badRequest(c, "date query parameter is required")
	}

	slots, err := h.svc.AvailableSlots(c.Context(), id, date)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{"date": date, "slots": slots})
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID            string              `json:"user_id"`
		Name              string              `json:"name"`
		Specialty         string              `json:"specialty"`
		Bio               *string             `json:"bio"`
		ExperienceYears   int                 `json:"experience_years"`
		ConsultationFee   int64               `json:"consultation_fee"`
		Schedule          map[string][]string `json:"schedule"`
		ConsultationTypes []string            `json:"consultation_types"`
		ImageURL          *string             `json:"image_url"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Specialty == "" {
		return badRequest(c, "name and specialty are required")
	}

	req := doctor.CreateRequest{
		Name:              body.Name,
		Specialty:         body.Specialty,
		Bio:               body.Bio,
		ExperienceYears:   body.ExperienceYears,
		ConsultationFee:   body.ConsultationFee,
		Schedule:          body.Schedule,
		ConsultationTypes: body.ConsultationTypes,
		ImageURL:          body.ImageURL,
	}
	if body.UserID != "" {
		id, err := uuid.Parse(body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
	}

	doc, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, doc)
}

// PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body doctor.UpdateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doc, err := h.svc.Update(c.Context(), id, body)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doc)
}

// PATCH /doctors/:id/schedule
// Replaces the whole weekly template.
func (h *DoctorHandler) UpdateSchedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Schedule map[string][]string `json:"schedule"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Schedule) == 0 {
		return badRequest(c, "schedule is required")
	}

	doc, err := h.svc.Update(c.Context(), id, doctor.UpdateRequest{Schedule: body.Schedule})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, doc)
}

// PATCH /doctors/:id/availability
// Flips whether the doctor accepts new bookings. Existing appointments
// are untouched.
func (h *DoctorHandler) SetAvailability(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.IsAvailable == nil {
		return badRequest(c, "is_available is required")
	}

	doc, err := h.svc.Update(c.Context(), id, doctor.UpdateRequest{IsAvailable: body.IsAvailable})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, doc)
}

// POST /doctors/:id/photo
// Multipart upload under the "photo" field.
func (h *DoctorHandler) UploadPhoto(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "photo field is required")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	doc, err := h.svc.UploadPhoto(c.Context(), id, fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doc)
}

// GET /doctors/:id/photo
// Redirects to a presigned download URL.
func (h *DoctorHandler) Photo(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	url, err := h.svc.PhotoURL(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return c.Redirect().To(url)
}

// DELETE /doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}
