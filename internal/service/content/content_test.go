package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/medera/medera_backend/internal/repo"
	"github.com/medera/medera_backend/internal/repo/enttest"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreate_Validation(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "uppercase slug rejected",
			req:     CreateRequest{Kind: "faq", Slug: "Visiting-Hours", Title: "Visiting hours"},
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "slug with spaces rejected",
			req:     CreateRequest{Kind: "faq", Slug: "visiting hours", Title: "Visiting hours"},
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "unknown kind rejected",
			req:     CreateRequest{Kind: "banner", Slug: "spring-checkup", Title: "Spring checkup"},
			wantErr: ErrInvalidKind,
		},
		{
			name: "valid faq",
			req:  CreateRequest{Kind: "faq", Slug: "visiting-hours", Title: "Visiting hours", Body: "Daily 8-20."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Kind: "article", Slug: "heart-health", Title: "Heart health"})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err = svc.Create(ctx, CreateRequest{Kind: "faq", Slug: "heart-health", Title: "Another"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Errorf("duplicate slug err = %v, want ErrSlugTaken", err)
	}
}

func TestGetBySlug_PublishedOnly(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Kind: "article", Slug: "new-mri-wing", Title: "New MRI wing"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Drafts stay invisible on the public surface.
	if _, err := svc.GetBySlug(ctx, "new-mri-wing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft via public lookup err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetBySlug(ctx, "new-mri-wing", false); err != nil {
		t.Errorf("draft via editorial lookup failed: %v", err)
	}
}

func TestList_OrderAndFilters(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	seed := []CreateRequest{
		{Kind: "faq", Slug: "parking", Title: "Parking", IsPublished: true, SortOrder: 2, Tags: []string{"visitors", "access"}},
		{Kind: "faq", Slug: "insurance", Title: "Insurance", IsPublished: true, SortOrder: 1, Tags: []string{"billing"}},
		{Kind: "faq", Slug: "wifi", Title: "WiFi", IsPublished: false, SortOrder: 0, Tags: []string{"visitors"}},
		{Kind: "facility", Slug: "icu", Title: "ICU", IsPublished: true},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed %s failed: %v", req.Slug, err)
		}
	}

	t.Run("published faq in sort order", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Kind: strPtr("faq"), PublishedOnly: true})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("Total = %d, want 2", res.Total)
		}
		if res.Data[0].Slug != "insurance" || res.Data[1].Slug != "parking" {
			t.Errorf("order = %s, %s; want insurance, parking", res.Data[0].Slug, res.Data[1].Slug)
		}
	})

	t.Run("editorial listing includes drafts", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Kind: strPtr("faq")})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 3 {
			t.Errorf("Total = %d, want 3", res.Total)
		}
	})

	t.Run("tag membership", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Kind: strPtr("faq"), Tag: strPtr("visitors")})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("Total = %d, want 2", res.Total)
		}
		for _, item := range res.Data {
			if item.Slug != "parking" && item.Slug != "wifi" {
				t.Errorf("unexpected slug %s for tag visitors", item.Slug)
			}
		}
	})

	t.Run("kind filter", func(t *testing.T) {
		res, err := svc.List(ctx, ListRequest{Kind: strPtr("facility"), PublishedOnly: true})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 1 || res.Data[0].Slug != "icu" {
			t.Errorf("facility listing = %+v", res.Data)
		}
	})
}

func TestUpdateAndDelete(t *testing.T) {
	client := openTestClient(t)
	svc := New(client)
	ctx := context.Background()

	item, err := svc.Create(ctx, CreateRequest{Kind: "article", Slug: "flu-season", Title: "Flu season"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, item.ID, UpdateRequest{
		Title:       strPtr("Flu season 2026"),
		IsPublished: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Flu season 2026" || !updated.IsPublished {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "flu-season", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted entry lookup err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}
