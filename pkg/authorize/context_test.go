package authorize

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medera/medera_backend/pkg/reqctx"
)

type mockClaims struct {
	userID uuid.UUID
}

func (m *mockClaims) GetUserID() uuid.UUID     { return m.userID }
func (m *mockClaims) GetSessionID() *uuid.UUID { return nil }
func (m *mockClaims) GetTokenType() string     { return "access" }
func (m *mockClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	id := uuid.New()

	t.Run("authenticated context", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: id})
		got, err := SubjectFromContext(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := GroupSubject(id.String()); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("no claims", func(t *testing.T) {
		if _, err := SubjectFromContext(context.Background()); !errors.Is(err, ErrNoSubjectInContext) {
			t.Errorf("want ErrNoSubjectInContext, got %v", err)
		}
	})

	t.Run("nil user id", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{})
		if _, err := SubjectFromContext(ctx); !errors.Is(err, ErrNoSubjectInContext) {
			t.Errorf("want ErrNoSubjectInContext, got %v", err)
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	id := uuid.New()

	ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: id})
	got, err := UserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("got %v, want %v", got, id)
	}

	if _, err := UserIDFromContext(context.Background()); !errors.Is(err, ErrNoSubjectInContext) {
		t.Errorf("want ErrNoSubjectInContext, got %v", err)
	}
}

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		domain Domain
		want   bool
	}{
		{DomainSys, true},
		{DomainHospital, true},
		{WildcardDomain, true},
		{UserDomain(uuid.NewString()), true},
		{Domain("user:not-a-uuid"), false},
		{Domain("ward:whatever"), false},
		{Domain(""), false},
	}

	for _, tt := range tests {
		if got := IsValidDomain(tt.domain); got != tt.want {
			t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}
