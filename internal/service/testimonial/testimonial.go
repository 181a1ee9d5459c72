package testimonial

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	entdoctor "github.com/medera/medera_backend/internal/repo/doctor"
	enttestimonial "github.com/medera/medera_backend/internal/repo/testimonial"
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
	Page     int
	PerPage  int
	DoctorID *uuid.UUID
	// PublicOnly restricts results to verified, public entries. Handlers
	// force this on for unauthenticated listings.
	PublicOnly bool
	Sort       string // helpful | recent
}

type CreateRequest struct {
	AppointmentID uuid.UUID
	Rating        int
	Comment       string
	TreatmentType *string
	IsPublic      bool
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type TreatmentCount struct {
	TreatmentType string `json:"treatment_type"`
	Count         int    `json:"count"`
}

type Stats struct {
	Total          int              `json:"total"`
	AverageRating  float64          `json:"average_rating"`
	RatingCounts   []RatingCount    `json:"rating_counts"`
	TreatmentTypes []TreatmentCount `json:"treatment_types"`
	TotalVotes     int              `json:"total_votes"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Testimonial], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Testimonial, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Testimonial, error)
	Verify(ctx context.Context, id uuid.UUID, verified bool) (*repo.Testimonial, error)
	SetPublic(ctx context.Context, id uuid.UUID, public bool) (*repo.Testimonial, error)
	Vote(ctx context.Context, id uuid.UUID) (*repo.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, doctorID *uuid.UUID) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type testimonialService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &testimonialService{db: db}
}

func (s *testimonialService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Testimonial], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Testimonial.Query()

	if req.DoctorID != nil {
		q = q.Where(enttestimonial.DoctorID(*req.DoctorID))
	}
	if req.PublicOnly {
		q = q.Where(
			enttestimonial.IsPublic(true),
			enttestimonial.IsVerified(true),
		)
	}

	if req.Sort == "helpful" {
		q = q.Order(
			enttestimonial.ByHelpfulVotes(sql.OrderDesc()),
			enttestimonial.ByCreatedAt(sql.OrderDesc()),
		)
	} else {
		q = q.Order(enttestimonial.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count testimonials: %w", err)
	}

	items, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Testimonial]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *testimonialService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Testimonial, error) {
	t, err := s.db.Testimonial.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) Create(ctx context.Context, req CreateRequest) (*repo.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	appt, err := s.db.Appointment.Get(ctx, req.AppointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt.Status != entappt.StatusCompleted {
		return nil, ErrNotCompleted
	}

	c := s.db.Testimonial.Create().
		SetDoctorID(appt.DoctorID).
		SetAppointmentID(appt.ID).
		SetPatientName(appt.PatientInfo.Name).
		SetDoctorName(appt.DoctorInfo.Name).
		SetRating(req.Rating).
		SetComment(req.Comment).
		SetIsPublic(req.IsPublic)

	if req.TreatmentType != nil {
		c = c.SetTreatmentType(*req.TreatmentType)
	}

	t, err := c.Save(ctx)
	if err != nil {
		// unique appointment_id: one testimonial per visit
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

// Verify sets the moderation flag and folds the rating into, or out of,
// the doctor's public aggregate.
func (s *testimonialService) Verify(ctx context.Context, id uuid.UUID, verified bool) (*repo.Testimonial, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsVerified == verified {
		return t, nil
	}

	updated, err := s.db.Testimonial.UpdateOne(t).
		SetIsVerified(verified).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify testimonial: %w", err)
	}

	if err := s.recomputeDoctorRating(ctx, t.DoctorID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *testimonialService) SetPublic(ctx context.Context, id uuid.UUID, public bool) (*repo.Testimonial, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.Testimonial.UpdateOne(t).
		SetIsPublic(public).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update testimonial visibility: %w", err)
	}
	return updated, nil
}

// Vote increments helpful_votes in SQL so concurrent votes never lose
// an increment.
func (s *testimonialService) Vote(ctx context.Context, id uuid.UUID) (*repo.Testimonial, error) {
	updated, err := s.db.Testimonial.UpdateOneID(id).
		AddHelpfulVotes(1).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("vote testimonial: %w", err)
	}
	return updated, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.Testimonial.DeleteOne(t).Exec(ctx); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}

	if t.IsVerified {
		return s.recomputeDoctorRating(ctx, t.DoctorID)
	}
	return nil
}

// Stats aggregates the full testimonial set, optionally scoped to one
// doctor. All four figures are computed storage-side.
func (s *testimonialService) Stats(ctx context.Context, doctorID *uuid.UUID) (*Stats, error) {
	base := s.db.Testimonial.Query()
	if doctorID != nil {
		base = base.Where(enttestimonial.DoctorID(*doctorID))
	}

	// Mean and sum come back NULL over an empty set.
	var agg []struct {
		Mean  stdsql.NullFloat64 `json:"mean"`
		Sum   stdsql.NullInt64   `json:"sum"`
		Count int                `json:"count"`
	}
	err := base.Clone().
		Aggregate(
			repo.As(repo.Mean(enttestimonial.FieldRating), "mean"),
			repo.As(repo.Sum(enttestimonial.FieldHelpfulVotes), "sum"),
			repo.Count(),
		).
		Scan(ctx, &agg)
	if err != nil {
		return nil, fmt.Errorf("aggregate testimonials: %w", err)
	}

	stats := &Stats{}
	if len(agg) > 0 {
		stats.Total = agg[0].Count
		stats.AverageRating = agg[0].Mean.Float64
		stats.TotalVotes = int(agg[0].Sum.Int64)
	}

	err = base.Clone().
		GroupBy(enttestimonial.FieldRating).
		Aggregate(repo.Count()).
		Scan(ctx, &stats.RatingCounts)
	if err != nil {
		return nil, fmt.Errorf("group by rating: %w", err)
	}

	err = base.Clone().
		Where(enttestimonial.TreatmentTypeNotNil()).
		GroupBy(enttestimonial.FieldTreatmentType).
		Aggregate(repo.Count()).
		Scan(ctx, &stats.TreatmentTypes)
	if err != nil {
		return nil, fmt.Errorf("group by treatment type: %w", err)
	}

	return stats, nil
}

// recomputeDoctorRating rewrites the doctor's rating and review_count from
// verified testimonials. These two columns are owned by this service.
func (s *testimonialService) recomputeDoctorRating(ctx context.Context, doctorID uuid.UUID) error {
	var rows []struct {
		Mean  stdsql.NullFloat64 `json:"mean"`
		Count int                `json:"count"`
	}
	err := s.db.Testimonial.Query().
		Where(
			enttestimonial.DoctorID(doctorID),
			enttestimonial.IsVerified(true),
		).
		Aggregate(
			repo.As(repo.Mean(enttestimonial.FieldRating), "mean"),
			repo.Count(),
		).
		Scan(ctx, &rows)
	if err != nil {
		return fmt.Errorf("aggregate ratings: %w", err)
	}

	rating := 0.0
	count := 0
	if len(rows) > 0 {
		rating = rows[0].Mean.Float64
		count = rows[0].Count
	}

	err = s.db.Doctor.Update().
		Where(entdoctor.ID(doctorID)).
		SetRating(rating).
		SetReviewCount(count).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update doctor rating: %w", err)
	}
	return nil
}
