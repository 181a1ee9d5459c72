package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/internal/repo/enttest"
	"github.com/medera/medera_backend/internal/schema/schematype"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

// futureDate returns a date one week out and a schedule that has slots on
// that weekday, so bookings in tests always hit the template.
func futureDate() (string, map[string][]string) {
	d := time.Now().AddDate(0, 0, 7)
	day := strings.ToLower(d.Weekday().String())
	return d.Format("2006-01-02"), map[string][]string{
		day: {"09:00", "10:00", "11:00"},
	}
}

func seedDoctor(t *testing.T, client *repo.Client, schedule map[string][]string) *repo.Doctor {
	t.Helper()
	d, err := client.Doctor.Create().
		SetName("Dr. Sara Ahmadi").
		SetSpecialty("Cardiology").
		SetConsultationFee(500000).
		SetSchedule(schedule).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

func testService(client *repo.Client) Service {
	return New(client, nil, &config.Config{})
}

func testPatient() schematype.PatientInfo {
	return schematype.PatientInfo{
		Name:  "Reza Karimi",
		Email: "reza@example.com",
		Phone: "+989121234567",
		Age:   34,
	}
}

func TestBook(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	appt, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if appt.Status != entappt.StatusPending {
		t.Errorf("new booking status = %s, want pending", appt.Status)
	}
	if appt.DoctorInfo.Name != "Dr. Sara Ahmadi" {
		t.Errorf("doctor snapshot not captured: %+v", appt.DoctorInfo)
	}
	if appt.DoctorInfo.ConsultationFee != 500000 {
		t.Errorf("fee snapshot = %d, want 500000", appt.DoctorInfo.ConsultationFee)
	}
	if appt.PatientInfo.Email != "reza@example.com" {
		t.Errorf("patient snapshot not captured: %+v", appt.PatientInfo)
	}
	if len(appt.BookingCode) != 8 {
		t.Errorf("booking code = %q, want 8 characters", appt.BookingCode)
	}

	found, err := svc.GetByCode(ctx, strings.ToLower(appt.BookingCode[:4]+"-"+appt.BookingCode[4:]))
	if err != nil {
		t.Fatalf("GetByCode with formatted input failed: %v", err)
	}
	if found.ID != appt.ID {
		t.Errorf("GetByCode returned %s, want %s", found.ID, appt.ID)
	}

	if _, err := svc.GetByCode(ctx, "NOPE1234"); err != ErrNotFound {
		t.Errorf("GetByCode unknown = %v, want ErrNotFound", err)
	}
}

func TestBook_SlotConflict(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	req := BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	}

	first, err := svc.Book(ctx, req)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Same slot again must hit the unique index.
	if _, err := svc.Book(ctx, req); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second booking err = %v, want ErrSlotTaken", err)
	}

	// Cancelling frees the slot for a new booking.
	if _, err := svc.Cancel(ctx, first.ID, CancelRequest{}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.Book(ctx, req); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}

// openSerializedClient opens an in-memory database capped at one
// connection, so concurrent bookings queue on the pool instead of
// tripping sqlite table locks.
func openSerializedClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		t.Fatalf("open driver: %v", err)
	}
	drv.DB().SetMaxOpenConns(1)
	client := repo.NewClient(repo.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestBook_ConcurrentBurst(t *testing.T) {
	client := openSerializedClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, BookRequest{
				DoctorID:        d.ID,
				AppointmentDate: date,
				AppointmentTime: "09:00",
				Type:            "offline",
				Patient:         testPatient(),
			})
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("successful bookings = %d, want exactly 1", won)
	}

	open, err := client.Appointment.Query().
		Where(
			entappt.DoctorID(d.ID),
			entappt.AppointmentDate(date),
			entappt.AppointmentTime("09:00"),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count survivors: %v", err)
	}
	if open != 1 {
		t.Errorf("open bookings for the slot = %d, want 1", open)
	}
}

func TestBook_SameDay(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	now := time.Now()
	today := strings.ToLower(now.Weekday().String())
	d := seedDoctor(t, client, map[string][]string{today: {"09:00"}})

	// Booking for today's date is not "in the past".
	if _, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: now.Format("2006-01-02"),
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	}); err != nil {
		t.Fatalf("same-day booking failed: %v", err)
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: yesterday,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	}); !errors.Is(err, ErrDateInPast) {
		t.Errorf("yesterday err = %v, want ErrDateInPast", err)
	}
}

func TestIsCodeCollision(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "sqlite booking_code",
			err:  errors.New(`insert node to table "appointments": UNIQUE constraint failed: appointments.booking_code`),
			want: true,
		},
		{
			name: "postgres booking_code",
			err:  errors.New(`pq: duplicate key value violates unique constraint "appointments_booking_code_key"`),
			want: true,
		},
		{
			name: "slot index",
			err:  errors.New(`insert node to table "appointments": UNIQUE constraint failed: appointments.doctor_id, appointments.appointment_date, appointments.appointment_time`),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCodeCollision(tt.err); got != tt.want {
				t.Errorf("isCodeCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBook_Validation(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	t.Run("slot outside schedule", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: date,
			AppointmentTime: "23:00",
			Type:            "offline",
			Patient:         testPatient(),
		})
		if !errors.Is(err, ErrSlotNotInSchedule) {
			t.Errorf("err = %v, want ErrSlotNotInSchedule", err)
		}
	})

	t.Run("date in the past", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: "2020-01-06",
			AppointmentTime: "09:00",
			Type:            "offline",
			Patient:         testPatient(),
		})
		if !errors.Is(err, ErrDateInPast) {
			t.Errorf("err = %v, want ErrDateInPast", err)
		}
	})

	t.Run("missing contact", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: date,
			AppointmentTime: "09:00",
			Type:            "offline",
			Patient:         schematype.PatientInfo{Name: "Anon"},
		})
		if !errors.Is(err, ErrInvalidContact) {
			t.Errorf("err = %v, want ErrInvalidContact", err)
		}
	})

	t.Run("unavailable doctor", func(t *testing.T) {
		if err := client.Doctor.UpdateOne(d).SetIsAvailable(false).Exec(ctx); err != nil {
			t.Fatalf("update doctor: %v", err)
		}
		_, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: date,
			AppointmentTime: "10:00",
			Type:            "offline",
			Patient:         testPatient(),
		})
		if !errors.Is(err, ErrDoctorUnavailable) {
			t.Errorf("err = %v, want ErrDoctorUnavailable", err)
		}
	})
}

func TestLifecycle(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	book := func(t *testing.T, slot string) *repo.Appointment {
		t.Helper()
		appt, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: date,
			AppointmentTime: slot,
			Type:            "online",
			Patient:         testPatient(),
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		return appt
	}

	t.Run("confirm then complete", func(t *testing.T) {
		appt := book(t, "09:00")

		confirmed, err := svc.Confirm(ctx, appt.ID)
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if confirmed.Status != entappt.StatusConfirmed {
			t.Errorf("status = %s, want confirmed", confirmed.Status)
		}

		notes := "prescribed rest"
		completed, err := svc.Complete(ctx, appt.ID, &notes)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if completed.Status != entappt.StatusCompleted {
			t.Errorf("status = %s, want completed", completed.Status)
		}
		if completed.CompletedAt == nil {
			t.Error("completed_at not set")
		}
		if completed.Notes == nil || *completed.Notes != notes {
			t.Errorf("notes = %v, want %q", completed.Notes, notes)
		}
	})

	t.Run("complete requires confirmation", func(t *testing.T) {
		appt := book(t, "10:00")
		if _, err := svc.Complete(ctx, appt.ID, nil); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("completing a pending appointment: err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("cancel records reason separately", func(t *testing.T) {
		appt := book(t, "11:00")
		reason := "patient travelling"
		cancelled, err := svc.Cancel(ctx, appt.ID, CancelRequest{Reason: &reason})
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if cancelled.CancellationReason == nil || *cancelled.CancellationReason != reason {
			t.Errorf("cancellation_reason = %v, want %q", cancelled.CancellationReason, reason)
		}
		if cancelled.Notes != nil {
			t.Errorf("clinical notes must stay untouched, got %v", cancelled.Notes)
		}
		if cancelled.CancelledAt == nil {
			t.Error("cancelled_at not set")
		}

		// Terminal: nothing else is allowed.
		if _, err := svc.Confirm(ctx, appt.ID); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("confirm after cancel: err = %v", err)
		}
		if _, err := svc.Cancel(ctx, appt.ID, CancelRequest{}); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("double cancel: err = %v", err)
		}
	})
}

func TestIsSlotAvailable(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	free, err := svc.IsSlotAvailable(ctx, d.ID, date, "09:00")
	if err != nil || !free {
		t.Fatalf("expected free slot, got free=%v err=%v", free, err)
	}

	appt, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	free, err = svc.IsSlotAvailable(ctx, d.ID, date, "09:00")
	if err != nil || free {
		t.Fatalf("expected taken slot, got free=%v err=%v", free, err)
	}

	if _, err := svc.Cancel(ctx, appt.ID, CancelRequest{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	free, err = svc.IsSlotAvailable(ctx, d.ID, date, "09:00")
	if err != nil || !free {
		t.Fatalf("cancelled slot should be free again, got free=%v err=%v", free, err)
	}
}

func TestStats(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	slots := []string{"09:00", "10:00", "11:00"}
	var appts []*repo.Appointment
	for _, slot := range slots {
		appt, err := svc.Book(ctx, BookRequest{
			DoctorID:        d.ID,
			AppointmentDate: date,
			AppointmentTime: slot,
			Type:            "offline",
			Patient:         testPatient(),
		})
		if err != nil {
			t.Fatalf("book %s: %v", slot, err)
		}
		appts = append(appts, appt)
	}

	if _, err := svc.Confirm(ctx, appts[0].ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := svc.Cancel(ctx, appts[1].ID, CancelRequest{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	stats, err := svc.Stats(ctx, StatsRequest{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}

	counts := map[string]int{}
	for _, row := range stats.ByStatus {
		counts[row.Status] = row.Count
	}
	want := map[string]int{"pending": 1, "confirmed": 1, "cancelled": 1}
	for status, n := range want {
		if counts[status] != n {
			t.Errorf("count[%s] = %d, want %d", status, counts[status], n)
		}
	}

	if len(stats.ByDoctor) != 1 || stats.ByDoctor[0].Count != 3 {
		t.Errorf("by doctor = %+v, want single doctor with 3", stats.ByDoctor)
	}
}

// seedRawAppointment inserts directly through the client, sidestepping
// Book's future-date and schedule checks so tests can plant historical
// and same-day records.
func seedRawAppointment(t *testing.T, client *repo.Client, d *repo.Doctor, date, timeOfDay string, status entappt.Status) *repo.Appointment {
	t.Helper()
	appt, err := client.Appointment.Create().
		SetBookingCode(fmt.Sprintf("T%s%s", strings.ReplaceAll(date, "-", "")[4:], strings.ReplaceAll(timeOfDay, ":", ""))).
		SetDoctorID(d.ID).
		SetAppointmentDate(date).
		SetAppointmentTime(timeOfDay).
		SetType(entappt.TypeOffline).
		SetStatus(status).
		SetPatientInfo(testPatient()).
		SetDoctorInfo(schematype.DoctorInfo{Name: d.Name, Specialty: d.Specialty, ConsultationFee: d.ConsultationFee}).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return appt
}

func TestDashboardViews(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	_, schedule := futureDate()
	d := seedDoctor(t, client, schedule)
	other := seedDoctor(t, client, schedule)

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	seedRawAppointment(t, client, d, today, "09:00", entappt.StatusPending)
	seedRawAppointment(t, client, d, tomorrow, "10:00", entappt.StatusConfirmed)
	seedRawAppointment(t, client, other, tomorrow, "11:00", entappt.StatusPending)
	seedRawAppointment(t, client, d, yesterday, "12:00", entappt.StatusCompleted)

	t.Run("today", func(t *testing.T) {
		appts, err := svc.Today(ctx, nil)
		if err != nil {
			t.Fatalf("Today: %v", err)
		}
		if len(appts) != 1 || appts[0].AppointmentDate != today {
			t.Errorf("got %d appointments, want 1 for %s", len(appts), today)
		}
	})

	t.Run("upcoming excludes past and terminal", func(t *testing.T) {
		appts, err := svc.Upcoming(ctx, nil, nil)
		if err != nil {
			t.Fatalf("Upcoming: %v", err)
		}
		if len(appts) != 3 {
			t.Fatalf("got %d appointments, want 3", len(appts))
		}
		// Ordered soonest first.
		if appts[0].AppointmentDate != today {
			t.Errorf("first upcoming = %s, want %s", appts[0].AppointmentDate, today)
		}
	})

	t.Run("upcoming scoped to doctor", func(t *testing.T) {
		appts, err := svc.Upcoming(ctx, nil, &other.ID)
		if err != nil {
			t.Fatalf("Upcoming: %v", err)
		}
		if len(appts) != 1 || appts[0].DoctorID != other.ID {
			t.Errorf("got %d appointments for other doctor, want 1", len(appts))
		}
	})

	t.Run("pending only", func(t *testing.T) {
		appts, err := svc.Pending(ctx)
		if err != nil {
			t.Fatalf("Pending: %v", err)
		}
		if len(appts) != 2 {
			t.Fatalf("got %d pending, want 2", len(appts))
		}
		for _, a := range appts {
			if a.Status != entappt.StatusPending {
				t.Errorf("status = %s, want pending", a.Status)
			}
		}
	})
}

func TestStats_DateBuckets(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	_, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	today := time.Now().Format("2006-01-02")
	seedRawAppointment(t, client, d, today, "09:00", entappt.StatusPending)
	seedRawAppointment(t, client, d, "2020-03-02", "10:00", entappt.StatusCompleted)

	stats, err := svc.Stats(ctx, StatsRequest{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Total != 2 {
		t.Errorf("total = %d, want 2", stats.Total)
	}
	if stats.Today != 1 {
		t.Errorf("today = %d, want 1", stats.Today)
	}
	// Today is always inside its own ISO week and calendar month; the 2020
	// record must fall outside both.
	if stats.ThisWeek != 1 {
		t.Errorf("this_week = %d, want 1", stats.ThisWeek)
	}
	if stats.ThisMonth != 1 {
		t.Errorf("this_month = %d, want 1", stats.ThisMonth)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	appt, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if _, err := svc.UpdatePaymentStatus(ctx, appt.ID, "maybe"); !errors.Is(err, ErrInvalidPaymentStatus) {
		t.Errorf("err = %v, want ErrInvalidPaymentStatus", err)
	}

	if err := svc.MarkPaid(ctx, appt.ID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	got, _ := svc.GetByID(ctx, appt.ID)
	if got.PaymentStatus != entappt.PaymentStatusPaid {
		t.Errorf("payment_status = %s, want paid", got.PaymentStatus)
	}

	// Refund is allowed at any lifecycle state.
	updated, err := svc.UpdatePaymentStatus(ctx, appt.ID, "refunded")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if updated.PaymentStatus != entappt.PaymentStatusRefunded {
		t.Errorf("payment_status = %s, want refunded", updated.PaymentStatus)
	}
}

func TestDelete(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	appt, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if err := svc.Delete(ctx, appt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, appt.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, appt.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}

func TestLookupByContact(t *testing.T) {
	client := openTestClient(t)
	svc := testService(client)
	ctx := context.Background()

	date, schedule := futureDate()
	d := seedDoctor(t, client, schedule)

	if _, err := svc.Book(ctx, BookRequest{
		DoctorID:        d.ID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
		Type:            "offline",
		Patient:         testPatient(),
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	t.Run("by email, case-insensitive", func(t *testing.T) {
		appts, err := svc.LookupByContact(ctx, "Reza@Example.com")
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if len(appts) != 1 {
			t.Fatalf("got %d appointments, want 1", len(appts))
		}
	})

	t.Run("by phone", func(t *testing.T) {
		appts, err := svc.LookupByContact(ctx, "+989121234567")
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if len(appts) != 1 {
			t.Fatalf("got %d appointments, want 1", len(appts))
		}
	})

	t.Run("unknown contact", func(t *testing.T) {
		appts, err := svc.LookupByContact(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if len(appts) != 0 {
			t.Fatalf("got %d appointments, want 0", len(appts))
		}
	})

	t.Run("empty contact", func(t *testing.T) {
		if _, err := svc.LookupByContact(ctx, "  "); !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("err = %v, want ErrInvalidContact", err)
		}
	})
}
