package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/internal/service/appointment"
	zarinpalpkg "github.com/medera/medera_backend/pkg/zarinpal"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// InitiatePayment opens a gateway payment for the appointment's
	// consultation fee and returns the redirect URL.
	InitiatePayment(ctx context.Context, appointmentID uuid.UUID) (payURL string, err error)

	// VerifyPayment resolves the gateway callback. status is the literal
	// "Status" query parameter ZarinPal appends to the callback URL.
	VerifyPayment(ctx context.Context, authority string, status string) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type paymentService struct {
	db    *repo.Client
	zp    *zarinpalpkg.Client
	appts appointment.Service
	cfg   *config.Config
}

func New(db *repo.Client, zp *zarinpalpkg.Client, appts appointment.Service, cfg *config.Config) Service {
	return &paymentService{db: db, zp: zp, appts: appts, cfg: cfg}
}

func (s *paymentService) InitiatePayment(ctx context.Context, appointmentID uuid.UUID) (string, error) {
	appt, err := s.appts.GetByID(ctx, appointmentID)
	if err != nil {
		return "", err
	}

	if appt.PaymentStatus == entappt.PaymentStatusPaid {
		return "", ErrAlreadyPaid
	}
	if appt.Status != entappt.StatusPending && appt.Status != entappt.StatusConfirmed {
		return "", ErrNotPayable
	}

	amount := appt.DoctorInfo.ConsultationFee
	if amount <= 0 {
		return "", ErrNothingToPay
	}

	desc := fmt.Sprintf("Consultation with %s on %s %s",
		appt.DoctorInfo.Name, appt.AppointmentDate, appt.AppointmentTime)

	authority, payURL, err := s.zp.RequestPayment(ctx, amount, "IRR", desc, s.cfg.ZarinPal.CallbackURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrZarinPalFailure, err)
	}

	err = s.db.Appointment.UpdateOneID(appt.ID).
		SetPaymentAuthority(authority).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("store authority: %w", err)
	}

	return payURL, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, authority string, status string) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.PaymentAuthority(authority)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment request: %w", err)
	}

	if status != "OK" {
		// Cancelled at the gateway; drop the authority so a new attempt
		// can be started.
		_ = s.db.Appointment.UpdateOne(appt).
			ClearPaymentAuthority().
			Exec(ctx)
		return nil, ErrPaymentFailed
	}

	amount := appt.DoctorInfo.ConsultationFee
	refID, _, alreadyVerified, err := s.zp.VerifyPayment(ctx, authority, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrZarinPalFailure, err)
	}
	if alreadyVerified {
		slog.Info("payment already verified", "appointment_id", appt.ID, "ref_id", refID)
	}

	if err := s.appts.MarkPaid(ctx, appt.ID); err != nil {
		return nil, err
	}

	slog.Info("payment verified",
		"appointment_id", appt.ID,
		"amount", amount,
		"ref_id", strconv.FormatInt(refID, 10),
	)

	return s.appts.GetByID(ctx, appt.ID)
}
