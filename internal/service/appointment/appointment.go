package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	entdoctor "github.com/medera/medera_backend/internal/repo/doctor"
	"github.com/medera/medera_backend/internal/repo/predicate"
	"github.com/medera/medera_backend/internal/schema/schematype"
	svcdoctor "github.com/medera/medera_backend/internal/service/doctor"
	"github.com/medera/medera_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page      int
	PerPage   int
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	Type      *string
	FromDate  *string // inclusive, "YYYY-MM-DD"
	ToDate    *string // inclusive
}

type BookRequest struct {
	DoctorID        uuid.UUID
	PatientID       *uuid.UUID // nil for guest bookings
	AppointmentDate string     // "YYYY-MM-DD"
	AppointmentTime string     // "HH:MM"
	Type            string     // online | offline | emergency
	Patient         schematype.PatientInfo
	Notes           *string
}

type CancelRequest struct {
	Reason *string
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DoctorCount struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	Count    int       `json:"count"`
}

type Stats struct {
	Total     int           `json:"total"`
	Today     int           `json:"today"`
	ThisWeek  int           `json:"this_week"`  // ISO week, Monday through Sunday
	ThisMonth int           `json:"this_month"` // calendar month
	ByStatus  []StatusCount `json:"by_status"`
	ByDoctor  []DoctorCount `json:"by_doctor"`
}

type StatsRequest struct {
	FromDate *string
	ToDate   *string
	DoctorID *uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	LookupByContact(ctx context.Context, emailOrPhone string) ([]*repo.Appointment, error)
	GetByCode(ctx context.Context, code string) (*repo.Appointment, error)
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	Complete(ctx context.Context, id uuid.UUID, notes *string) (*repo.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*repo.Appointment, error)
	IsSlotAvailable(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (bool, error)
	Stats(ctx context.Context, req StatsRequest) (*Stats, error)

	// Dashboard views.
	Today(ctx context.Context, doctorID *uuid.UUID) ([]*repo.Appointment, error)
	Upcoming(ctx context.Context, patientID, doctorID *uuid.UUID) ([]*repo.Appointment, error)
	Pending(ctx context.Context) ([]*repo.Appointment, error)

	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*repo.Appointment, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg *config.Config
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &appointmentService{db: db, nc: nc, cfg: cfg}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.Type != nil {
		q = q.Where(entappt.TypeEQ(entappt.Type(*req.Type)))
	}
	if req.FromDate != nil {
		q = q.Where(entappt.AppointmentDateGTE(*req.FromDate))
	}
	if req.ToDate != nil {
		q = q.Where(entappt.AppointmentDateLTE(*req.ToDate))
	}

	q = q.Order(
		entappt.ByAppointmentDate(sql.OrderDesc()),
		entappt.ByAppointmentTime(sql.OrderDesc()),
	)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Appointment]{
		Data:       appts,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// LookupByContact finds bookings by the email or phone captured in the
// patient snapshot. This is how guests retrieve bookings made before
// they had an account.
func (s *appointmentService) LookupByContact(ctx context.Context, emailOrPhone string) ([]*repo.Appointment, error) {
	contact := strings.TrimSpace(emailOrPhone)
	if contact == "" {
		return nil, ErrInvalidContact
	}

	field := "phone"
	if strings.Contains(contact, "@") {
		field = "email"
		contact = strings.ToLower(contact)
	}

	appts, err := s.db.Appointment.Query().
		Where(predicate.Appointment(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(entappt.FieldPatientInfo, contact, sqljson.Path(field)))
		})).
		Order(
			entappt.ByAppointmentDate(sql.OrderDesc()),
			entappt.ByAppointmentTime(sql.OrderDesc()),
		).
		Limit(50).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup appointments: %w", err)
	}
	return appts, nil
}

// GetByCode resolves a booking reference as quoted by the patient.
func (s *appointmentService) GetByCode(ctx context.Context, code string) (*repo.Appointment, error) {
	code = codes.NormalizeBookingRef(code)
	if code == "" {
		return nil, ErrNotFound
	}

	appt, err := s.db.Appointment.Query().
		Where(entappt.BookingCode(code)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment by code: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	if _, err := time.Parse("2006-01-02", req.AppointmentDate); err != nil {
		return nil, ErrInvalidDate
	}
	// Compare calendar dates in local time; Truncate would round in UTC
	// and reject same-day bookings east of it.
	if req.AppointmentDate < time.Now().Format("2006-01-02") {
		return nil, ErrDateInPast
	}
	if req.Patient.Email == "" && req.Patient.Phone == "" {
		return nil, ErrInvalidContact
	}
	req.Patient.Email = strings.ToLower(strings.TrimSpace(req.Patient.Email))
	req.Patient.Phone = strings.TrimSpace(req.Patient.Phone)

	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(req.DoctorID), entdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	if !d.IsAvailable {
		return nil, ErrDoctorUnavailable
	}

	slots, err := svcdoctor.SlotsForDate(d.Schedule, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !containsSlot(slots, req.AppointmentTime) {
		return nil, ErrSlotNotInSchedule
	}

	if req.PatientID != nil {
		if err := s.checkUpcomingLimit(ctx, *req.PatientID); err != nil {
			return nil, err
		}
	}

	var appt *repo.Appointment
	for attempt := 0; ; attempt++ {
		code, err := codes.GenerateBookingRef()
		if err != nil {
			return nil, fmt.Errorf("generate booking reference: %w", err)
		}

		c := s.db.Appointment.Create().
			SetBookingCode(code).
			SetDoctorID(req.DoctorID).
			SetAppointmentDate(req.AppointmentDate).
			SetAppointmentTime(req.AppointmentTime).
			SetType(entappt.Type(req.Type)).
			SetPatientInfo(req.Patient).
			SetDoctorInfo(schematype.DoctorInfo{
				Name:            d.Name,
				Specialty:       d.Specialty,
				ConsultationFee: d.ConsultationFee,
			})

		if req.PatientID != nil {
			c = c.SetPatientID(*req.PatientID)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		appt, err = c.Save(ctx)
		if err == nil {
			break
		}
		// The partial unique index on (doctor, date, time) rejects the
		// second concurrent booking; there is no check-then-act window.
		// A clash on booking_code just means we drew a taken reference,
		// so draw again.
		if repo.IsConstraintError(err) {
			if isCodeCollision(err) && attempt < maxBookingRefAttempts {
				continue
			}
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.publish("created", appt.ID)
	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, entappt.StatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm appointment: %w", err)
	}

	s.publish("confirmed", updated.ID)
	return updated, nil
}

func (s *appointmentService) Complete(ctx context.Context, id uuid.UUID, notes *string) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, entappt.StatusCompleted) {
		return nil, ErrInvalidTransition
	}

	u := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now())
	if notes != nil {
		u = u.SetNotes(*notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete appointment: %w", err)
	}

	s.publish("completed", updated.ID)
	return updated, nil
}

func (s *appointmentService) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, entappt.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	u := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now())

	if req.Reason != nil {
		u = u.SetCancellationReason(*req.Reason)
	}
	if appt.PaymentStatus == entappt.PaymentStatusPaid {
		u = u.SetPaymentStatus(entappt.PaymentStatusRefunded)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish("cancelled", updated.ID)
	return updated, nil
}

// IsSlotAvailable is advisory; the unique index remains the authoritative
// guard at booking time.
func (s *appointmentService) IsSlotAvailable(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (bool, error) {
	exists, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.AppointmentDate(date),
			entappt.AppointmentTime(timeOfDay),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}
	return !exists, nil
}

func (s *appointmentService) Stats(ctx context.Context, req StatsRequest) (*Stats, error) {
	base := s.db.Appointment.Query()
	if req.FromDate != nil {
		base = base.Where(entappt.AppointmentDateGTE(*req.FromDate))
	}
	if req.ToDate != nil {
		base = base.Where(entappt.AppointmentDateLTE(*req.ToDate))
	}
	if req.DoctorID != nil {
		base = base.Where(entappt.DoctorID(*req.DoctorID))
	}

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	var byStatus []StatusCount
	err = base.Clone().
		GroupBy(entappt.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &byStatus)
	if err != nil {
		return nil, fmt.Errorf("group by status: %w", err)
	}

	var byDoctor []DoctorCount
	err = base.Clone().
		GroupBy(entappt.FieldDoctorID).
		Aggregate(repo.Count()).
		Scan(ctx, &byDoctor)
	if err != nil {
		return nil, fmt.Errorf("group by doctor: %w", err)
	}

	today, week, month, err := s.dateBuckets(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Total:     total,
		Today:     today,
		ThisWeek:  week,
		ThisMonth: month,
		ByStatus:  byStatus,
		ByDoctor:  byDoctor,
	}, nil
}

// dateBuckets counts appointments falling today, in the current ISO week
// and in the current calendar month, as three range counts pushed to the
// database.
func (s *appointmentService) dateBuckets(ctx context.Context, req StatsRequest) (today, week, month int, err error) {
	now := time.Now()

	count := func(from, to string) (int, error) {
		q := s.db.Appointment.Query().
			Where(entappt.AppointmentDateGTE(from), entappt.AppointmentDateLTE(to))
		if req.DoctorID != nil {
			q = q.Where(entappt.DoctorID(*req.DoctorID))
		}
		return q.Count(ctx)
	}

	day := now.Format("2006-01-02")
	if today, err = count(day, day); err != nil {
		return 0, 0, 0, fmt.Errorf("count today: %w", err)
	}

	// Monday of the ISO week.
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	if week, err = count(monday.Format("2006-01-02"), sunday.Format("2006-01-02")); err != nil {
		return 0, 0, 0, fmt.Errorf("count week: %w", err)
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	if month, err = count(first.Format("2006-01-02"), last.Format("2006-01-02")); err != nil {
		return 0, 0, 0, fmt.Errorf("count month: %w", err)
	}

	return today, week, month, nil
}

func (s *appointmentService) Today(ctx context.Context, doctorID *uuid.UUID) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(entappt.AppointmentDate(time.Now().Format("2006-01-02"))).
		Order(entappt.ByAppointmentTime(sql.OrderAsc()))
	if doctorID != nil {
		q = q.Where(entappt.DoctorID(*doctorID))
	}

	appts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list today's appointments: %w", err)
	}
	return appts, nil
}

// Upcoming lists open bookings from today onward, optionally scoped to a
// patient or doctor.
func (s *appointmentService) Upcoming(ctx context.Context, patientID, doctorID *uuid.UUID) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(
			entappt.AppointmentDateGTE(time.Now().Format("2006-01-02")),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Order(
			entappt.ByAppointmentDate(sql.OrderAsc()),
			entappt.ByAppointmentTime(sql.OrderAsc()),
		)
	if patientID != nil {
		q = q.Where(entappt.PatientID(*patientID))
	}
	if doctorID != nil {
		q = q.Where(entappt.DoctorID(*doctorID))
	}

	appts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}
	return appts, nil
}

// Pending lists bookings still waiting for staff confirmation, oldest first.
func (s *appointmentService) Pending(ctx context.Context) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.StatusEQ(entappt.StatusPending)).
		Order(
			entappt.ByAppointmentDate(sql.OrderAsc()),
			entappt.ByAppointmentTime(sql.OrderAsc()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending appointments: %w", err)
	}
	return appts, nil
}

// UpdatePaymentStatus is deliberately independent of the lifecycle state
// machine so staff can record refunds on cancelled appointments.
func (s *appointmentService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*repo.Appointment, error) {
	ps := entappt.PaymentStatus(status)
	switch ps {
	case entappt.PaymentStatusPending, entappt.PaymentStatusPaid, entappt.PaymentStatusRefunded:
	default:
		return nil, ErrInvalidPaymentStatus
	}

	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetPaymentStatus(ps).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	if ps == entappt.PaymentStatusPaid {
		s.publish("paid", id)
	}
	return updated, nil
}

// Delete removes the record entirely. Cancel is the normal path; this is
// for admin cleanup of junk bookings.
func (s *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Appointment.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// MarkPaid records a successful gateway payment. Called by the payment
// service after verification.
func (s *appointmentService) MarkPaid(ctx context.Context, id uuid.UUID) error {
	_, err := s.UpdatePaymentStatus(ctx, id, string(entappt.PaymentStatusPaid))
	return err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) checkUpcomingLimit(ctx context.Context, patientID uuid.UUID) error {
	limit := s.cfg.Booking.MaxUpcomingPerPatient
	if limit <= 0 {
		return nil
	}

	today := time.Now().Format("2006-01-02")
	open, err := s.db.Appointment.Query().
		Where(
			entappt.PatientID(patientID),
			entappt.AppointmentDateGTE(today),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count open bookings: %w", err)
	}
	if open >= limit {
		return ErrTooManyUpcoming
	}
	return nil
}

func (s *appointmentService) publish(event string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("medera.appointment.%s.%s", event, id.String())
	_ = s.nc.Publish(subject, []byte(id.String()))
}

// maxBookingRefAttempts caps how many fresh references Book draws when
// one clashes with an existing row.
const maxBookingRefAttempts = 3

// isCodeCollision reports whether a constraint error came from the
// booking_code unique index rather than the slot index. Both sqlite and
// postgres name the offending column or index in the message.
func isCodeCollision(err error) bool {
	return err != nil && strings.Contains(err.Error(), "booking_code")
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
