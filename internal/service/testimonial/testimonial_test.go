package testimonial

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

type fixture struct {
	doctor *repo.Doctor
	appt   *repo.Appointment
}

// seedCompletedVisit creates a doctor plus one appointment in the given
// status, at a unique slot per call.
func seedVisit(t *testing.T, client *repo.Client, status entappt.Status, slot string) fixture {
	t.Helper()
	ctx := context.Background()

	d, err := client.Doctor.Create().
		SetName("Dr. Mina Rahimi").
		SetSpecialty("Dermatology").
		SetSchedule(map[string][]string{}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	c := client.Appointment.Create().
		SetBookingCode("V" + strings.ReplaceAll(slot, ":", "")).
		SetDoctorID(d.ID).
		SetAppointmentDate("2026-09-07").
		SetAppointmentTime(slot).
		SetType(entappt.TypeOffline).
		SetStatus(status).
		SetPatientInfo(schematype.PatientInfo{
			Name:  "Leila Hosseini",
			Email: "leila@example.com",
		}).
		SetDoctorInfo(schematype.DoctorInfo{
			Name:      d.Name,
			Specialty: d.Specialty,
		})
	if status == entappt.StatusCompleted {
		c = c.SetCompletedAt(time.Now())
	}

	appt, err := c.Save(ctx)
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return fixture{doctor: d, appt: appt}
}

func TestCreate(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusCompleted, "09:00")

	tmnl, err := svc.Create(ctx, CreateRequest{
		AppointmentID: fx.appt.ID,
		Rating:        5,
		Comment:       "Very thorough, explained everything.",
		IsPublic:      true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if tmnl.PatientName != "Leila Hosseini" {
		t.Errorf("patient name snapshot = %q", tmnl.PatientName)
	}
	if tmnl.DoctorName != "Dr. Mina Rahimi" {
		t.Errorf("doctor name snapshot = %q", tmnl.DoctorName)
	}
	if tmnl.IsVerified {
		t.Error("new testimonials must start unverified")
	}

	t.Run("duplicate per appointment rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			AppointmentID: fx.appt.ID,
			Rating:        4,
			Comment:       "second attempt",
		})
		if !errors.Is(err, ErrAlreadyReviewed) {
			t.Errorf("err = %v, want ErrAlreadyReviewed", err)
		}
	})
}

func TestCreate_RequiresCompletedVisit(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusConfirmed, "10:00")

	_, err := svc.Create(ctx, CreateRequest{
		AppointmentID: fx.appt.ID,
		Rating:        5,
		Comment:       "too early",
	})
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}
}

func TestCreate_RatingBounds(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusCompleted, "11:00")

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(ctx, CreateRequest{
			AppointmentID: fx.appt.ID,
			Rating:        rating,
			Comment:       "x",
		}); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestVerify_UpdatesDoctorAggregate(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx1 := seedVisit(t, client, entappt.StatusCompleted, "09:00")

	// Second visit for the same doctor.
	appt2, err := client.Appointment.Create().
		SetBookingCode("V20900").
		SetDoctorID(fx1.doctor.ID).
		SetAppointmentDate("2026-09-08").
		SetAppointmentTime("09:00").
		SetType(entappt.TypeOffline).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetPatientInfo(schematype.PatientInfo{Name: "Omid", Email: "omid@example.com"}).
		SetDoctorInfo(schematype.DoctorInfo{Name: fx1.doctor.Name, Specialty: fx1.doctor.Specialty}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed second appointment: %v", err)
	}

	t1, err := svc.Create(ctx, CreateRequest{AppointmentID: fx1.appt.ID, Rating: 5, Comment: "great", IsPublic: true})
	if err != nil {
		t.Fatalf("create 1: %v", err)
	}
	t2, err := svc.Create(ctx, CreateRequest{AppointmentID: appt2.ID, Rating: 3, Comment: "ok", IsPublic: true})
	if err != nil {
		t.Fatalf("create 2: %v", err)
	}

	// Unverified testimonials contribute nothing.
	d, _ := client.Doctor.Get(ctx, fx1.doctor.ID)
	if d.ReviewCount != 0 {
		t.Fatalf("review_count = %d before verification, want 0", d.ReviewCount)
	}

	if _, err := svc.Verify(ctx, t1.ID, true); err != nil {
		t.Fatalf("verify 1: %v", err)
	}
	if _, err := svc.Verify(ctx, t2.ID, true); err != nil {
		t.Fatalf("verify 2: %v", err)
	}

	d, _ = client.Doctor.Get(ctx, fx1.doctor.ID)
	if d.ReviewCount != 2 {
		t.Errorf("review_count = %d, want 2", d.ReviewCount)
	}
	if d.Rating != 4.0 {
		t.Errorf("rating = %v, want 4.0", d.Rating)
	}

	t.Run("deleting a verified entry recomputes", func(t *testing.T) {
		if err := svc.Delete(ctx, t2.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		d, _ := client.Doctor.Get(ctx, fx1.doctor.ID)
		if d.ReviewCount != 1 || d.Rating != 5.0 {
			t.Errorf("after delete: rating=%v count=%d, want 5.0/1", d.Rating, d.ReviewCount)
		}
	})

	t.Run("retracting verification recomputes", func(t *testing.T) {
		if _, err := svc.Verify(ctx, t1.ID, false); err != nil {
			t.Fatalf("un-verify: %v", err)
		}
		d, _ := client.Doctor.Get(ctx, fx1.doctor.ID)
		if d.ReviewCount != 0 || d.Rating != 0 {
			t.Errorf("after un-verify: rating=%v count=%d, want 0/0", d.Rating, d.ReviewCount)
		}
	})
}

func TestVote(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusCompleted, "09:00")
	tmnl, err := svc.Create(ctx, CreateRequest{AppointmentID: fx.appt.ID, Rating: 4, Comment: "helpful staff"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Vote(ctx, tmnl.ID); err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	got, err := svc.GetByID(ctx, tmnl.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HelpfulVotes != 3 {
		t.Errorf("helpful_votes = %d, want 3", got.HelpfulVotes)
	}
}

func TestVote_Concurrent(t *testing.T) {
	// One connection in the pool; voters queue there instead of
	// tripping sqlite table locks.
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

	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusCompleted, "09:00")
	tmnl, err := svc.Create(ctx, CreateRequest{AppointmentID: fx.appt.ID, Rating: 4, Comment: "helpful staff"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const voters = 10
	errs := make([]error, voters)
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Vote(ctx, tmnl.ID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	got, err := svc.GetByID(ctx, tmnl.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HelpfulVotes != voters {
		t.Errorf("helpful_votes = %d, want %d", got.HelpfulVotes, voters)
	}
}

func TestList_PublicOnly(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	fx := seedVisit(t, client, entappt.StatusCompleted, "09:00")
	tmnl, err := svc.Create(ctx, CreateRequest{
		AppointmentID: fx.appt.ID,
		Rating:        5,
		Comment:       "visible once verified",
		IsPublic:      true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.List(ctx, ListRequest{PublicOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("unverified entry leaked into public listing")
	}

	if _, err := svc.Verify(ctx, tmnl.ID, true); err != nil {
		t.Fatalf("verify: %v", err)
	}

	res, err = svc.List(ctx, ListRequest{PublicOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 1 {
		t.Fatalf("total = %d, want 1", res.Total)
	}

	t.Run("author can hide it again", func(t *testing.T) {
		if _, err := svc.SetPublic(ctx, tmnl.ID, false); err != nil {
			t.Fatalf("set public: %v", err)
		}
		res, err := svc.List(ctx, ListRequest{PublicOnly: true})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 0 {
			t.Fatalf("hidden entry still listed")
		}
	})

	t.Run("un-verifying hides it again", func(t *testing.T) {
		if _, err := svc.SetPublic(ctx, tmnl.ID, true); err != nil {
			t.Fatalf("set public: %v", err)
		}
		if _, err := svc.Verify(ctx, tmnl.ID, false); err != nil {
			t.Fatalf("un-verify: %v", err)
		}
		res, err := svc.List(ctx, ListRequest{PublicOnly: true})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 0 {
			t.Fatalf("un-verified entry still listed")
		}
	})
}

func TestStats(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	t.Run("empty dataset returns zeros", func(t *testing.T) {
		stats, err := svc.Stats(ctx, nil)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.Total != 0 || stats.AverageRating != 0 || stats.TotalVotes != 0 {
			t.Errorf("stats = %+v, want zeros", stats)
		}
	})

	fx1 := seedVisit(t, client, entappt.StatusCompleted, "09:00")
	fx2 := seedVisit(t, client, entappt.StatusCompleted, "10:00")

	surgery := "surgery"
	t1, err := svc.Create(ctx, CreateRequest{
		AppointmentID: fx1.appt.ID, Rating: 5, Comment: "great", TreatmentType: &surgery,
	})
	if err != nil {
		t.Fatalf("create 1: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{
		AppointmentID: fx2.appt.ID, Rating: 3, Comment: "ok", TreatmentType: &surgery,
	}); err != nil {
		t.Fatalf("create 2: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Vote(ctx, t1.ID); err != nil {
			t.Fatalf("vote: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Total != 2 {
		t.Errorf("total = %d, want 2", stats.Total)
	}
	if stats.AverageRating != 4.0 {
		t.Errorf("average_rating = %v, want 4.0", stats.AverageRating)
	}
	if stats.TotalVotes != 2 {
		t.Errorf("total_votes = %d, want 2", stats.TotalVotes)
	}

	ratings := map[int]int{}
	for _, rc := range stats.RatingCounts {
		ratings[rc.Rating] = rc.Count
	}
	if ratings[5] != 1 || ratings[3] != 1 {
		t.Errorf("rating histogram = %v", ratings)
	}

	if len(stats.TreatmentTypes) != 1 || stats.TreatmentTypes[0].Count != 2 {
		t.Errorf("treatment histogram = %v", stats.TreatmentTypes)
	}

	t.Run("scoped to one doctor", func(t *testing.T) {
		stats, err := svc.Stats(ctx, &fx1.doctor.ID)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.Total != 1 || stats.AverageRating != 5.0 {
			t.Errorf("stats = %+v, want total 1 rating 5.0", stats)
		}
	})
}
