package payment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/internal/repo/enttest"
	"github.com/medera/medera_backend/internal/schema/schematype"
	"github.com/medera/medera_backend/internal/service/appointment"
)

// Gateway round trips are covered in pkg/zarinpal; these tests exercise
// the paths that resolve before the gateway is contacted.

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func testService(client *repo.Client) Service {
	cfg := &config.Config{}
	return New(client, nil, appointment.New(client, nil, cfg), cfg)
}

type seedOpts struct {
	status        entappt.Status
	paymentStatus entappt.PaymentStatus
	authority     string
	fee           int64
}

func seedAppointment(t *testing.T, client *repo.Client, opts seedOpts) *repo.Appointment {
	t.Helper()
	ctx := context.Background()

	d, err := client.Doctor.Create().
		SetName("Dr. Sara Ahmadi").
		SetSpecialty("Cardiology").
		SetConsultationFee(opts.fee).
		SetSchedule(map[string][]string{"monday": {"09:00"}}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	create := client.Appointment.Create().
		SetBookingCode(fmt.Sprintf("P%.11s", uuid.NewString())).
		SetDoctorID(d.ID).
		SetAppointmentDate("2030-01-07").
		SetAppointmentTime("09:00").
		SetType(entappt.TypeOffline).
		SetStatus(opts.status).
		SetPaymentStatus(opts.paymentStatus).
		SetPatientInfo(schematype.PatientInfo{Name: "Reza Karimi", Phone: "+989121234567"}).
		SetDoctorInfo(schematype.DoctorInfo{Name: d.Name, Specialty: d.Specialty, ConsultationFee: opts.fee})
	if opts.authority != "" {
		create = create.SetPaymentAuthority(opts.authority)
	}

	appt, err := create.Save(ctx)
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return appt
}

func TestInitiatePayment_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown appointment", func(t *testing.T) {
		svc := testService(openTestClient(t))
		_, err := svc.InitiatePayment(ctx, uuid.Must(uuid.NewV7()))
		if !errors.Is(err, appointment.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		client := openTestClient(t)
		appt := seedAppointment(t, client, seedOpts{
			status: entappt.StatusConfirmed, paymentStatus: entappt.PaymentStatusPaid, fee: 500000,
		})
		_, err := testService(client).InitiatePayment(ctx, appt.ID)
		if !errors.Is(err, ErrAlreadyPaid) {
			t.Errorf("err = %v, want ErrAlreadyPaid", err)
		}
	})

	t.Run("cancelled appointment", func(t *testing.T) {
		client := openTestClient(t)
		appt := seedAppointment(t, client, seedOpts{
			status: entappt.StatusCancelled, paymentStatus: entappt.PaymentStatusPending, fee: 500000,
		})
		_, err := testService(client).InitiatePayment(ctx, appt.ID)
		if !errors.Is(err, ErrNotPayable) {
			t.Errorf("err = %v, want ErrNotPayable", err)
		}
	})

	t.Run("zero fee", func(t *testing.T) {
		client := openTestClient(t)
		appt := seedAppointment(t, client, seedOpts{
			status: entappt.StatusPending, paymentStatus: entappt.PaymentStatusPending, fee: 0,
		})
		_, err := testService(client).InitiatePayment(ctx, appt.ID)
		if !errors.Is(err, ErrNothingToPay) {
			t.Errorf("err = %v, want ErrNothingToPay", err)
		}
	})
}

func TestVerifyPayment_UnknownAuthority(t *testing.T) {
	svc := testService(openTestClient(t))
	_, err := svc.VerifyPayment(context.Background(), "A-nope", "OK")
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("err = %v, want ErrPaymentNotFound", err)
	}
}

func TestVerifyPayment_CancelledAtGateway(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	appt := seedAppointment(t, client, seedOpts{
		status: entappt.StatusConfirmed, paymentStatus: entappt.PaymentStatusPending,
		authority: "A0001", fee: 500000,
	})

	_, err := svc.VerifyPayment(ctx, "A0001", "NOK")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("err = %v, want ErrPaymentFailed", err)
	}

	// The authority must be cleared so the patient can retry.
	got, err := client.Appointment.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if got.PaymentAuthority != nil {
		t.Errorf("payment_authority = %q, want cleared", *got.PaymentAuthority)
	}
	if got.PaymentStatus != entappt.PaymentStatusPending {
		t.Errorf("payment_status = %s, want pending", got.PaymentStatus)
	}
}
