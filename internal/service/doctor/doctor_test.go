package doctor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/medera/medera_backend/internal/repo"
	entappt "github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/internal/repo/enttest"
	"github.com/medera/medera_backend/internal/schema/schematype"
	s3pkg "github.com/medera/medera_backend/pkg/s3"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCreateAndList(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	cardioBio := "Treats arrhythmia and hypertension."
	cardio, err := svc.Create(ctx, CreateRequest{
		Name:              "Dr. Sara Ahmadi",
		Specialty:         "Cardiology",
		Bio:               &cardioBio,
		ExperienceYears:   12,
		ConsultationFee:   600000,
		Schedule:          map[string][]string{"Monday": {"10:00", "09:00"}},
		ConsultationTypes: []string{"online", "offline"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	neuro, err := svc.Create(ctx, CreateRequest{
		Name:              "Dr. Kian Moradi",
		Specialty:         "Neurology",
		ExperienceYears:   5,
		ConsultationFee:   450000,
		Schedule:          map[string][]string{},
		ConsultationTypes: []string{"offline"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("filter by specialty", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Specialty: strPtr("cardiology")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Data[0].Name != "Dr. Sara Ahmadi" {
			t.Errorf("unexpected result: total=%d", res.Total)
		}
	})

	t.Run("search matches name and specialty", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Search: strPtr("neuro")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Data[0].ID != neuro.ID {
			t.Errorf("search missed the neurologist: total=%d", res.Total)
		}
	})

	t.Run("search matches bio", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Search: strPtr("arrhythmia")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Data[0].ID != cardio.ID {
			t.Errorf("bio search missed the cardiologist: total=%d", res.Total)
		}
	})

	t.Run("consultation type membership", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{ConsultationType: strPtr("online")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Data[0].ID != cardio.ID {
			t.Errorf("type filter: total=%d, want only the online cardiologist", res.Total)
		}
	})

	t.Run("minimum rating", func(t *testing.T) {
		// Ratings are owned by the testimonial service; write them directly.
		if err := client.Doctor.UpdateOneID(cardio.ID).SetRating(4.5).Exec(ctx); err != nil {
			t.Fatalf("set rating: %v", err)
		}
		if err := client.Doctor.UpdateOneID(neuro.ID).SetRating(3.0).Exec(ctx); err != nil {
			t.Fatalf("set rating: %v", err)
		}

		min := 4.0
		res, err := svc.List(ctx, ListRequest{MinRating: &min})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Data[0].ID != cardio.ID {
			t.Errorf("min rating filter: total=%d", res.Total)
		}
	})

	t.Run("available only hides paused doctors", func(t *testing.T) {
		if _, err := svc.Update(ctx, neuro.ID, UpdateRequest{IsAvailable: boolPtr(false)}); err != nil {
			t.Fatalf("update: %v", err)
		}
		res, err := svc.List(ctx, ListRequest{AvailableOnly: true})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 {
			t.Errorf("total = %d, want 1", res.Total)
		}
	})

	t.Run("schedule normalised on create", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Specialty: strPtr("Cardiology")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		got := res.Data[0].Schedule["monday"]
		if !reflect.DeepEqual(got, []string{"09:00", "10:00"}) {
			t.Errorf("schedule = %v", got)
		}
	})
}

func TestDelete(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Name:      "Dr. Nima Sadeghi",
		Specialty: "Orthopedics",
		Schedule:  map[string][]string{},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	appt, err := client.Appointment.Create().
		SetBookingCode("D0001").
		SetDoctorID(d.ID).
		SetAppointmentDate(time.Now().AddDate(0, 0, 7).Format("2006-01-02")).
		SetAppointmentTime("09:00").
		SetType(entappt.TypeOffline).
		SetStatus(entappt.StatusPending).
		SetPatientInfo(schematype.PatientInfo{Name: "x", Email: "x@example.com"}).
		SetDoctorInfo(schematype.DoctorInfo{Name: d.Name, Specialty: d.Specialty}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	if err := svc.Delete(ctx, d.ID); !errors.Is(err, ErrHasAppointments) {
		t.Fatalf("delete with open booking: err = %v, want ErrHasAppointments", err)
	}

	if _, err := client.Appointment.UpdateOne(appt).SetStatus(entappt.StatusCancelled).Save(ctx); err != nil {
		t.Fatalf("cancel appointment: %v", err)
	}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(ctx, d.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}

	res, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 0 {
		t.Errorf("soft-deleted doctor still listed")
	}
}

func TestSpecialties(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	for _, spec := range []string{"Cardiology", "Cardiology", "Neurology"} {
		if _, err := svc.Create(ctx, CreateRequest{
			Name:      "Dr. " + spec,
			Specialty: spec,
			Schedule:  map[string][]string{},
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := svc.Specialties(ctx)
	if err != nil {
		t.Fatalf("specialties: %v", err)
	}

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Specialty] = r.Count
	}
	if counts["Cardiology"] != 2 || counts["Neurology"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAvailableSlots(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	// 2026-09-07 is a Monday.
	const date = "2026-09-07"

	d, err := svc.Create(ctx, CreateRequest{
		Name:      "Dr. Sara Ahmadi",
		Specialty: "Cardiology",
		Schedule:  map[string][]string{"monday": {"09:00", "10:00", "11:00"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	book := func(t *testing.T, slot string, status entappt.Status) {
		t.Helper()
		_, err := client.Appointment.Create().
			SetBookingCode("C" + strings.ReplaceAll(slot, ":", "")).
			SetDoctorID(d.ID).
			SetAppointmentDate(date).
			SetAppointmentTime(slot).
			SetType(entappt.TypeOffline).
			SetStatus(status).
			SetPatientInfo(schematype.PatientInfo{Name: "x", Email: "x@example.com"}).
			SetDoctorInfo(schematype.DoctorInfo{Name: d.Name, Specialty: d.Specialty}).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}

	book(t, "09:00", entappt.StatusConfirmed)
	book(t, "10:00", entappt.StatusCancelled)

	slots, err := svc.AvailableSlots(ctx, d.ID, date)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}

	// 09:00 is held, 10:00 was cancelled so it is free again.
	if !reflect.DeepEqual(slots, []string{"10:00", "11:00"}) {
		t.Errorf("slots = %v, want [10:00 11:00]", slots)
	}

	t.Run("day off", func(t *testing.T) {
		// 2026-09-08 is a Tuesday.
		slots, err := svc.AvailableSlots(ctx, d.ID, "2026-09-08")
		if err != nil {
			t.Fatalf("available slots: %v", err)
		}
		if len(slots) != 0 {
			t.Errorf("slots = %v, want none", slots)
		}
	})

	t.Run("paused doctor", func(t *testing.T) {
		if _, err := svc.Update(ctx, d.ID, UpdateRequest{IsAvailable: boolPtr(false)}); err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, err := svc.AvailableSlots(ctx, d.ID, date); !errors.Is(err, ErrNotAvailable) {
			t.Errorf("err = %v, want ErrNotAvailable", err)
		}
	})
}

func TestPhotoURL_NoPhoto(t *testing.T) {
	client := openTestClient(t)
	// A zero-value store passes the storage-enabled gate; the photo
	// checks run before any storage call.
	svc := New(client, &s3pkg.Client{})
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Name:      "Dr. Nima Tavakoli",
		Specialty: "Radiology",
		Schedule:  map[string][]string{},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.PhotoURL(ctx, d.ID); !errors.Is(err, ErrNoPhoto) {
		t.Errorf("unset photo err = %v, want ErrNoPhoto", err)
	}

	if err := client.Doctor.UpdateOneID(d.ID).SetImageURL("").Exec(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.PhotoURL(ctx, d.ID); !errors.Is(err, ErrNoPhoto) {
		t.Errorf("empty photo key err = %v, want ErrNoPhoto", err)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
