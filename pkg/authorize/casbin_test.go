package authorize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// newTestAuthorization loads the shipped model file with an empty
// file-backed policy, so tests exercise the same matcher production uses.
func newTestAuthorization(t *testing.T) IAuthorization {
	t.Helper()

	policyPath := filepath.Join(t.TempDir(), "policy.csv")
	if err := os.WriteFile(policyPath, nil, 0o644); err != nil {
		t.Fatalf("writing policy file: %v", err)
	}

	e, err := casbin.NewDistributedEnforcer(
		filepath.Join("..", "..", "casbin_model.conf"),
		fileadapter.NewAdapter(policyPath),
	)
	if err != nil {
		t.Fatalf("creating enforcer: %v", err)
	}
	e.EnableAutoSave(false)

	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("creating authorization: %v", err)
	}
	return auth
}

func TestNewAuthorization_NilEnforcer(t *testing.T) {
	if _, err := NewAuthorization(nil); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("want ErrInvalidArgs, got %v", err)
	}
}

func TestEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	staff := GroupSubject("user-123")

	if _, err := auth.AddRoleForUserInDomain(ctx, staff, RoleStaff, DomainHospital); err != nil {
		t.Fatalf("adding role: %v", err)
	}
	if _, err := auth.AddPermission(ctx, RoleStaff, DomainHospital, ResourceAppointment, ActionManage, EffectAllow); err != nil {
		t.Fatalf("adding permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{"granted permission passes", staff, DomainHospital, ResourceAppointment, ActionManage, true, false},
		{"unrelated resource denied", staff, DomainHospital, ResourceUser, ActionDelete, false, false},
		{"empty subject rejected", "", DomainHospital, ResourceAppointment, ActionRead, false, true},
		{"bogus domain rejected", staff, Domain("invalid"), ResourceAppointment, ActionRead, false, true},
		{"bogus resource rejected", staff, DomainHospital, Resource("unknown"), ActionRead, false, true},
		{"bogus action rejected", staff, DomainHospital, ResourceAppointment, Action("unknown"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgs) {
					t.Errorf("want ErrInvalidArgs, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnforce_ManageImpliesCRUD(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	admin := GroupSubject("user-321")

	auth.AddRoleForUserInDomain(ctx, admin, RoleAdmin, DomainHospital)
	auth.AddPermission(ctx, RoleAdmin, DomainHospital, ResourceContent, ActionManage, EffectAllow)

	for _, act := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList} {
		allowed, err := auth.Enforce(ctx, admin, DomainHospital, ResourceContent, act)
		if err != nil {
			t.Fatalf("Enforce(%s): %v", act, err)
		}
		if !allowed {
			t.Errorf("manage grant should imply %s", act)
		}
	}

	// Non-CRUD actions still need their own grant.
	allowed, err := auth.Enforce(ctx, admin, DomainHospital, ResourceContent, ActionModerate)
	if err != nil {
		t.Fatalf("Enforce(moderate): %v", err)
	}
	if allowed {
		t.Error("manage grant must not imply moderate")
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	admin := GroupSubject("user-456")

	auth.AddRoleForUserInDomain(ctx, admin, RoleAdmin, DomainHospital)
	auth.AddPermission(ctx, RoleAdmin, DomainHospital, ResourceUser, ActionManage, EffectAllow)

	if err := auth.MustEnforce(ctx, admin, DomainHospital, ResourceUser, ActionManage); err != nil {
		t.Errorf("allowed check failed: %v", err)
	}
	if err := auth.MustEnforce(ctx, admin, DomainHospital, ResourceAudit, ActionDelete); !errors.Is(err, ErrForbidden) {
		t.Errorf("want ErrForbidden, got %v", err)
	}
}

func TestSuperAdminBypass(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	root := GroupSubject("sys-root")

	if _, err := auth.AddRoleForUserInDomain(ctx, root, RoleSysSuperAdmin, DomainSys); err != nil {
		t.Fatalf("adding superadmin role: %v", err)
	}

	// No explicit policy exists; the sys grouping alone must be enough.
	allowed, err := auth.Enforce(ctx, root, DomainHospital, ResourceUser, ActionDelete)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("superadmin should bypass policy lookups")
	}
}

func TestRoleLifecycle(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	subject := GroupSubject("user-789")

	added, err := auth.AddRoleForUserInDomain(ctx, subject, RolePatient, DomainHospital)
	if err != nil || !added {
		t.Fatalf("adding role: added=%v err=%v", added, err)
	}

	roles, err := auth.GetRolesForUserInDomain(ctx, subject, DomainHospital)
	if err != nil {
		t.Fatalf("getting roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != RolePatient {
		t.Fatalf("got roles %v, want [patient]", roles)
	}

	removed, err := auth.RemoveRoleForUserInDomain(ctx, subject, RolePatient, DomainHospital)
	if err != nil || !removed {
		t.Fatalf("removing role: removed=%v err=%v", removed, err)
	}
	if roles, _ := auth.GetRolesForUserInDomain(ctx, subject, DomainHospital); len(roles) != 0 {
		t.Errorf("roles remain after removal: %v", roles)
	}

	if _, err := auth.AddRoleForUserInDomain(ctx, subject, Role("made-up"), DomainHospital); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("want ErrInvalidArgs for unknown role, got %v", err)
	}
}

func TestPermissionLifecycle(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	added, err := auth.AddPermission(ctx, RoleDoctor, DomainHospital, ResourceTestimonial, ActionRead, EffectAllow)
	if err != nil || !added {
		t.Fatalf("adding permission: added=%v err=%v", added, err)
	}
	removed, err := auth.RemovePermission(ctx, RoleDoctor, DomainHospital, ResourceTestimonial, ActionRead, EffectAllow)
	if err != nil || !removed {
		t.Fatalf("removing permission: removed=%v err=%v", removed, err)
	}

	if _, err := auth.AddPermission(ctx, RoleAdmin, DomainHospital, ResourceUser, ActionRead, PolicyEffect("maybe")); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("want ErrInvalidArgs for unknown effect, got %v", err)
	}
}

func TestSeedDefaultPolicies(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies() error = %v", err)
	}

	// A seeded patient can book but cannot verify testimonials.
	patientID := "11111111-1111-1111-1111-111111111111"
	if err := AssignHospitalRole(ctx, auth, patientID, UserRolePatient); err != nil {
		t.Fatalf("AssignHospitalRole() error = %v", err)
	}

	allowed, err := auth.Enforce(ctx, GroupSubject(patientID), DomainHospital, ResourceAppointment, ActionCreate)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !allowed {
		t.Error("patient should be able to create appointments")
	}

	allowed, err = auth.Enforce(ctx, GroupSubject(patientID), DomainHospital, ResourceTestimonial, ActionVerify)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if allowed {
		t.Error("patient should not verify testimonials")
	}
}
