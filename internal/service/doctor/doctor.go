package doctor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	entdoctor "github.com/medera/medera_backend/internal/repo/doctor"
	s3pkg "github.com/medera/medera_backend/pkg/s3"
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
	Page             int
	PerPage          int
	Specialty        *string
	MinRating        *float64
	AvailableOnly    bool
	ConsultationType *string // online | offline | emergency
	Search           *string // matches name, specialty or bio, case-insensitive
	Sort             string  // rating | experience | fee
	Order            string  // asc | desc
}

type CreateRequest struct {
	UserID            *uuid.UUID
	Name              string
	Specialty         string
	Bio               *string
	ExperienceYears   int
	ConsultationFee   int64
	Schedule          map[string][]string
	ConsultationTypes []string
	ImageURL          *string
}

type UpdateRequest struct {
	Name              *string
	Specialty         *string
	Bio               *string
	ExperienceYears   *int
	ConsultationFee   *int64
	Schedule          map[string][]string
	IsAvailable       *bool
	ConsultationTypes []string
	ImageURL          *string
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Doctor], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Specialties(ctx context.Context) ([]SpecialtyCount, error)
	AvailableSlots(ctx context.Context, id uuid.UUID, date string) ([]string, error)
	UploadPhoto(ctx context.Context, id uuid.UUID, contentType string, body io.Reader, size int64) (*repo.Doctor, error)
	PhotoURL(ctx context.Context, id uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db    *repo.Client
	store *s3pkg.Client
}

func New(db *repo.Client, store *s3pkg.Client) Service {
	return &doctorService{db: db, store: store}
}

func (s *doctorService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Doctor], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil())

	if req.Specialty != nil {
		q = q.Where(entdoctor.SpecialtyEqualFold(*req.Specialty))
	}
	if req.MinRating != nil {
		q = q.Where(entdoctor.RatingGTE(*req.MinRating))
	}
	if req.AvailableOnly {
		q = q.Where(entdoctor.IsAvailable(true))
	}
	if req.ConsultationType != nil {
		q = q.Where(func(s *sql.Selector) {
			s.Where(sqljson.ValueContains(entdoctor.FieldConsultationTypes, *req.ConsultationType))
		})
	}
	if req.Search != nil && *req.Search != "" {
		q = q.Where(entdoctor.Or(
			entdoctor.NameContainsFold(*req.Search),
			entdoctor.SpecialtyContainsFold(*req.Search),
			entdoctor.BioContainsFold(*req.Search),
		))
	}

	order := sql.OrderDesc()
	if req.Order == "asc" {
		order = sql.OrderAsc()
	}
	switch req.Sort {
	case "experience":
		q = q.Order(entdoctor.ByExperienceYears(order))
	case "fee":
		q = q.Order(entdoctor.ByConsultationFee(order))
	default:
		q = q.Order(entdoctor.ByRating(order))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	doctors, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Doctor]{
		Data:       doctors,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *doctorService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(id), entdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	schedule, err := NormalizeSchedule(req.Schedule)
	if err != nil {
		return nil, err
	}

	c := s.db.Doctor.Create().
		SetName(req.Name).
		SetSpecialty(req.Specialty).
		SetExperienceYears(req.ExperienceYears).
		SetConsultationFee(req.ConsultationFee).
		SetSchedule(schedule)

	if req.UserID != nil {
		c = c.SetUserID(*req.UserID)
	}
	if req.Bio != nil {
		c = c.SetBio(*req.Bio)
	}
	if len(req.ConsultationTypes) > 0 {
		c = c.SetConsultationTypes(req.ConsultationTypes)
	}
	if req.ImageURL != nil {
		c = c.SetImageURL(*req.ImageURL)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Doctor, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Doctor.UpdateOne(d)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Specialty != nil {
		u = u.SetSpecialty(*req.Specialty)
	}
	if req.Bio != nil {
		u = u.SetBio(*req.Bio)
	}
	if req.ExperienceYears != nil {
		u = u.SetExperienceYears(*req.ExperienceYears)
	}
	if req.ConsultationFee != nil {
		u = u.SetConsultationFee(*req.ConsultationFee)
	}
	if req.Schedule != nil {
		schedule, err := NormalizeSchedule(req.Schedule)
		if err != nil {
			return nil, err
		}
		u = u.SetSchedule(schedule)
	}
	if req.IsAvailable != nil {
		u = u.SetIsAvailable(*req.IsAvailable)
	}
	if req.ConsultationTypes != nil {
		u = u.SetConsultationTypes(req.ConsultationTypes)
	}
	if req.ImageURL != nil {
		u = u.SetImageURL(*req.ImageURL)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes the profile and stops new bookings. Existing
// appointments keep their doctor_info snapshot and are not touched.
func (s *doctorService) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Open future bookings must be cancelled or completed first, so
	// patients never hold appointments with a doctor who no longer exists.
	open, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(id),
			entappt.AppointmentDateGTE(time.Now().Format("2006-01-02")),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count open appointments: %w", err)
	}
	if open > 0 {
		return ErrHasAppointments
	}

	err = s.db.Doctor.UpdateOne(d).
		SetDeletedAt(time.Now()).
		SetIsAvailable(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}

func (s *doctorService) Specialties(ctx context.Context) ([]SpecialtyCount, error) {
	var rows []SpecialtyCount
	err := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil()).
		GroupBy(entdoctor.FieldSpecialty).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group specialties: %w", err)
	}
	return rows, nil
}

// AvailableSlots returns the doctor's template slots for the date minus
// slots already held by a pending or confirmed appointment.
func (s *doctorService) AvailableSlots(ctx context.Context, id uuid.UUID, date string) ([]string, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.IsAvailable {
		return nil, ErrNotAvailable
	}

	slots, err := SlotsForDate(d.Schedule, date)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []string{}, nil
	}

	booked, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(id),
			entappt.AppointmentDate(date),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Select(entappt.FieldAppointmentTime).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query booked slots: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadPhoto stores the profile photo in object storage under a key
// derived from the doctor id and records that key on the profile.
func (s *doctorService) UploadPhoto(ctx context.Context, id uuid.UUID, contentType string, body io.Reader, size int64) (*repo.Doctor, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	ext, known := imageExtensions[strings.ToLower(contentType)]
	if !known {
		return nil, ErrUnsupportedImage
	}

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := "doctors/" + id.String() + ext
	if err := s.store.Upload(ctx, key, contentType, body, size); err != nil {
		return nil, fmt.Errorf("upload doctor photo: %w", err)
	}

	// Stale keys with a different extension are best-effort cleanup.
	if d.ImageURL != nil && *d.ImageURL != key {
		_ = s.store.Delete(ctx, *d.ImageURL)
	}

	updated, err := s.db.Doctor.UpdateOne(d).SetImageURL(key).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record doctor photo: %w", err)
	}
	return updated, nil
}

// PhotoURL returns a presigned download URL for the doctor's photo.
func (s *doctorService) PhotoURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.store == nil {
		return "", ErrStorageDisabled
	}

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if d.ImageURL == nil || *d.ImageURL == "" {
		return "", ErrNoPhoto
	}

	url, err := s.store.PresignDownload(ctx, *d.ImageURL)
	if err != nil {
		return "", fmt.Errorf("presign doctor photo: %w", err)
	}
	return url, nil
}
