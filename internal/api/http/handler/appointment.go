package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/schema/schematype"
	"github.com/medera/medera_backend/internal/service/appointment"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrTooManyUpcoming):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrSlotNotInSchedule),
		errors.Is(err, appointment.ErrDoctorUnavailable),
		errors.Is(err, appointment.ErrDateInPast):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrInvalidContact),
		errors.Is(err, appointment.ErrInvalidPaymentStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Type      string `query:"type"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Type != "" {
		req.Type = &q.Type
	}
	if q.From != "" {
		req.FromDate = &q.From
	}
	if q.To != "" {
		req.ToDate = &q.To
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return paginated(c, res.Data, res.Total, res.Page, res.PerPage, res.TotalPages)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/lookup?contact=... or ?code=...
//
// Guest patients have no account, so they retrieve their bookings by the
// booking reference or the email or phone they booked with.
func (h *AppointmentHandler) Lookup(c fiber.Ctx) error {
	if code := c.Query("code"); code != "" {
		appt, err := h.svc.GetByCode(c.Context(), code)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, appt)
	}

	appts, err := h.svc.LookupByContact(c.Context(), c.Query("contact"))
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		DoctorID        string  `json:"doctor_id"`
		AppointmentDate string  `json:"appointment_date"`
		AppointmentTime string  `json:"appointment_time"`
		Type            string  `json:"type"`
		PatientName     string  `json:"patient_name"`
		PatientEmail    string  `json:"patient_email"`
		PatientPhone    string  `json:"patient_phone"`
		PatientAge      int     `json:"patient_age"`
		PatientGender   string  `json:"patient_gender"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	if body.PatientName == "" {
		return badRequest(c, "patient_name is required")
	}

	req := appointment.BookRequest{
		DoctorID:        doctorID,
		AppointmentDate: body.AppointmentDate,
		AppointmentTime: body.AppointmentTime,
		Type:            body.Type,
		Patient: schematype.PatientInfo{
			Name:   body.PatientName,
			Email:  body.PatientEmail,
			Phone:  body.PatientPhone,
			Age:    body.PatientAge,
			Gender: body.PatientGender,
		},
		Notes: body.Notes,
	}
	// Logged-in patients get the booking attached to their account.
	if claims, authed := pasetotoken.ClaimsFromFiber(c); authed {
		uid := claims.UserID
		req.PatientID = &uid
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// POST /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Confirm(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Notes *string `json:"notes"`
	}
	_ = c.Bind().JSON(&body)

	appt, err := h.svc.Complete(c.Context(), id, body.Notes)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	appt, err := h.svc.Cancel(c.Context(), id, appointment.CancelRequest{Reason: body.Reason})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/availability?doctor_id=...&date=...&time=...
func (h *AppointmentHandler) Availability(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if date == "" || timeOfDay == "" {
		return badRequest(c, "date and time query parameters are required")
	}

	available, err := h.svc.IsSlotAvailable(c.Context(), doctorID, date, timeOfDay)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{"available": available})
}

// GET /appointments/today?doctor_id=
func (h *AppointmentHandler) Today(c fiber.Ctx) error {
	doctorID, err := optionalUUIDQuery(c, "doctor_id")
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	appts, err := h.svc.Today(c.Context(), doctorID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/upcoming?patient_id=&doctor_id=
func (h *AppointmentHandler) Upcoming(c fiber.Ctx) error {
	patientID, err := optionalUUIDQuery(c, "patient_id")
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := optionalUUIDQuery(c, "doctor_id")
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	appts, err := h.svc.Upcoming(c.Context(), patientID, doctorID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/pending
func (h *AppointmentHandler) Pending(c fiber.Ctx) error {
	appts, err := h.svc.Pending(c.Context())
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// PATCH /appointments/:id/payment
func (h *AppointmentHandler) UpdatePaymentStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.UpdatePaymentStatus(c.Context(), id, body.PaymentStatus)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

func optionalUUIDQuery(c fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// GET /appointments/stats
func (h *AppointmentHandler) Stats(c fiber.Ctx) error {
	var q struct {
		DoctorID string `query:"doctor_id"`
		From     string `query:"from"`
		To       string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.StatsRequest{}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.From != "" {
		req.FromDate = &q.From
	}
	if q.To != "" {
		req.ToDate = &q.To
	}

	stats, err := h.svc.Stats(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, stats)
}
