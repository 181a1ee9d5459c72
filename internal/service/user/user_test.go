package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medera/medera_backend/internal/repo"
	"github.com/medera/medera_backend/internal/repo/enttest"
	entuser "github.com/medera/medera_backend/internal/repo/user"
	"github.com/medera/medera_backend/pkg/authorize"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

// fakeAuthz records grouping changes so role mirroring can be asserted
// without a Casbin enforcer behind it.
type fakeAuthz struct {
	grants  []string
	revokes []string
}

func (f *fakeAuthz) Enforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) MustEnforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) error {
	return nil
}

func (f *fakeAuthz) AddRoleForUserInDomain(_ context.Context, subject authorize.GroupSubject, role authorize.Role, _ authorize.Domain) (bool, error) {
	f.grants = append(f.grants, string(subject)+":"+string(role))
	return true, nil
}

func (f *fakeAuthz) RemoveRoleForUserInDomain(_ context.Context, subject authorize.GroupSubject, role authorize.Role, _ authorize.Domain) (bool, error) {
	f.revokes = append(f.revokes, string(subject)+":"+string(role))
	return true, nil
}

func (f *fakeAuthz) GetRolesForUserInDomain(context.Context, authorize.GroupSubject, authorize.Domain) ([]authorize.Role, error) {
	return nil, nil
}

func (f *fakeAuthz) AddPermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) RemovePermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func seedUser(t *testing.T, client *repo.Client, first, last, email, role string, active bool) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(email).
		SetPasswordHash("x").
		SetRole(entuser.Role(role)).
		SetIsActive(active).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func TestGetByID(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, &fakeAuthz{})
	ctx := context.Background()

	u := seedUser(t, client, "Sara", "Karimi", "sara@example.com", "patient", true)

	got, err := svc.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "sara@example.com" {
		t.Errorf("Email = %q", got.Email)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown id err = %v, want ErrUserNotFound", err)
	}
}

func TestList_Filters(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, &fakeAuthz{})
	ctx := context.Background()

	seedUser(t, client, "Sara", "Karimi", "sara@example.com", "patient", true)
	seedUser(t, client, "Reza", "Moradi", "reza@example.com", "doctor", true)
	seedUser(t, client, "Nina", "Ahmadi", "nina@example.com", "patient", false)

	t.Run("by role", func(t *testing.T) {
		role := "patient"
		res, err := svc.List(ctx, ListRequest{Role: &role})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 2 {
			t.Errorf("Total = %d, want 2", res.Total)
		}
	})

	t.Run("by active", func(t *testing.T) {
		active := false
		res, err := svc.List(ctx, ListRequest{IsActive: &active})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 1 || res.Data[0].Email != "nina@example.com" {
			t.Errorf("inactive listing = %+v", res.Data)
		}
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		search := "KARIMI"
		res, err := svc.List(ctx, ListRequest{Search: &search})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if res.Total != 1 || res.Data[0].FirstName != "Sara" {
			t.Errorf("search listing = %+v", res.Data)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	client := openTestClient(t)
	svc := New(client, &fakeAuthz{})
	ctx := context.Background()

	u := seedUser(t, client, "Sara", "Karimi", "sara@example.com", "patient", true)

	last := "Karimi-Fard"
	phone := "09121234567"
	updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{LastName: &last, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.LastName != "Karimi-Fard" {
		t.Errorf("LastName = %q", updated.LastName)
	}
	if updated.Phone == nil || *updated.Phone != "+989121234567" {
		t.Errorf("Phone = %v, want normalized E.164", updated.Phone)
	}

	bad := "not-a-number"
	if _, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{Phone: &bad}); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("bad phone err = %v, want ErrInvalidPhone", err)
	}

	empty := ""
	cleared, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{Phone: &empty})
	if err != nil {
		t.Fatalf("clearing phone failed: %v", err)
	}
	if cleared.Phone != nil {
		t.Errorf("Phone = %v after clear, want nil", cleared.Phone)
	}
}

func TestSetRole(t *testing.T) {
	client := openTestClient(t)
	authz := &fakeAuthz{}
	svc := New(client, authz)
	ctx := context.Background()

	u := seedUser(t, client, "Reza", "Moradi", "reza@example.com", "patient", true)

	if _, err := svc.SetRole(ctx, u.ID, "superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("unknown role err = %v, want ErrInvalidRole", err)
	}

	updated, err := svc.SetRole(ctx, u.ID, "staff")
	if err != nil {
		t.Fatalf("SetRole failed: %v", err)
	}
	if updated.Role != entuser.RoleStaff {
		t.Errorf("Role = %s, want staff", updated.Role)
	}
	if len(authz.revokes) != 1 || len(authz.grants) != 1 {
		t.Fatalf("grouping calls = %d revokes, %d grants; want 1 each", len(authz.revokes), len(authz.grants))
	}

	// Same role again is a no-op and must not touch the groupings.
	if _, err := svc.SetRole(ctx, u.ID, "staff"); err != nil {
		t.Fatalf("idempotent SetRole failed: %v", err)
	}
	if len(authz.grants) != 1 {
		t.Errorf("grants = %d after no-op, want 1", len(authz.grants))
	}
}

func TestSetActiveAndDelete(t *testing.T) {
	client := openTestClient(t)
	authz := &fakeAuthz{}
	svc := New(client, authz)
	ctx := context.Background()

	u := seedUser(t, client, "Nina", "Ahmadi", "nina@example.com", "staff", true)

	deactivated, err := svc.SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if deactivated.IsActive {
		t.Error("user still active after SetActive(false)")
	}

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("deleted user lookup err = %v, want ErrUserNotFound", err)
	}
	if len(authz.revokes) != 1 {
		t.Errorf("revokes = %d after delete, want 1", len(authz.revokes))
	}
	if err := svc.Delete(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second Delete err = %v, want ErrUserNotFound", err)
	}
}
