package authorize

import (
	"context"
	"errors"
	"fmt"

	casbin "github.com/casbin/casbin/v2"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidArgs = errors.New("invalid authorization arguments")
)

// IAuthorization is what services and middleware depend on. The concrete
// enforcer stays behind it so tests can swap in a fake.
type IAuthorization interface {
	// Enforce answers whether subject may perform action on object
	// inside domain.
	Enforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) (bool, error)

	// MustEnforce folds the boolean into ErrForbidden for callers that
	// only care about pass or fail.
	MustEnforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) error

	// Grouping policies: g, user_id, role, domain
	AddRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error)
	RemoveRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error)
	GetRolesForUserInDomain(ctx context.Context, subject GroupSubject, domain Domain) ([]Role, error)

	// Policies: p, role, domain, object, action, eft
	AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error)
	RemovePermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error)

	Raw() *casbin.DistributedEnforcer
}

// Authorization wraps the Casbin enforcer with the typed vocabulary from
// constants.go so callers cannot feed it free-form strings.
type Authorization struct {
	enforcer       *casbin.DistributedEnforcer
	superAdminRole Role
}

// NewAuthorization wraps an already configured enforcer and loads policy.
func NewAuthorization(e *casbin.DistributedEnforcer) (IAuthorization, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: enforcer is nil", ErrInvalidArgs)
	}

	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}

	return &Authorization{
		enforcer:       e,
		superAdminRole: RoleSysSuperAdmin,
	}, nil
}

// NewAuthorizationWithConfig is NewAuthorization plus the Config knobs.
// Disabling SuperadminBypass makes sys superadmins subject to the same
// policy lookups as everyone else.
func NewAuthorizationWithConfig(e *casbin.DistributedEnforcer, cfg Config) (IAuthorization, error) {
	auth, err := NewAuthorization(e)
	if err != nil {
		return nil, err
	}
	if !cfg.SuperadminBypass {
		auth.(*Authorization).superAdminRole = ""
	}
	return auth, nil
}

func (a *Authorization) Raw() *casbin.DistributedEnforcer { return a.enforcer }

func validSubject(s GroupSubject) error {
	if s == "" {
		return fmt.Errorf("%w: subject is empty", ErrInvalidArgs)
	}
	return nil
}

func validDomain(d Domain) error {
	if d == "" || !IsValidDomain(d) {
		return fmt.Errorf("%w: invalid domain: %q", ErrInvalidArgs, d)
	}
	return nil
}

func validRole(r Role) error {
	if r == "" {
		return fmt.Errorf("%w: role is empty", ErrInvalidArgs)
	}
	if _, ok := KnownRoles[r]; !ok && r != WildcardRole {
		return fmt.Errorf("%w: unknown role: %q", ErrInvalidArgs, r)
	}
	return nil
}

func validObjectAction(o Resource, act Action) error {
	if o == "" {
		return fmt.Errorf("%w: object is empty", ErrInvalidArgs)
	}
	if act == "" {
		return fmt.Errorf("%w: action is empty", ErrInvalidArgs)
	}
	if _, ok := KnownResources[o]; !ok && o != WildcardResource {
		return fmt.Errorf("%w: unknown resource: %q", ErrInvalidArgs, o)
	}
	if _, ok := KnownActions[act]; !ok && act != WildcardAction {
		return fmt.Errorf("%w: unknown action: %q", ErrInvalidArgs, act)
	}
	return nil
}

func (a *Authorization) Enforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) (bool, error) {
	_ = ctx // reserved for tracing

	if err := validSubject(subject); err != nil {
		return false, err
	}
	if err := validDomain(domain); err != nil {
		return false, err
	}
	if err := validObjectAction(object, action); err != nil {
		return false, err
	}

	// A sys superadmin grouping short-circuits every check.
	if a.superAdminRole != "" {
		if ok := a.enforcer.HasGroupingPolicy(string(subject), string(a.superAdminRole), string(DomainSys)); ok {
			return true, nil
		}
	}

	ok, err := a.enforcer.Enforce(string(subject), string(domain), string(object), string(action))
	if err != nil || ok {
		return ok, err
	}

	// A manage grant stands in for the five CRUD actions.
	if _, crud := manageImplied[action]; crud {
		return a.enforcer.Enforce(string(subject), string(domain), string(object), string(ActionManage))
	}
	return false, nil
}

var manageImplied = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
}

func (a *Authorization) MustEnforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) error {
	ok, err := a.Enforce(ctx, subject, domain, object, action)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (a *Authorization) AddRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	_ = ctx
	if err := validSubject(subject); err != nil {
		return false, err
	}
	if err := validRole(role); err != nil {
		return false, err
	}
	if err := validDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.AddGroupingPolicy(string(subject), string(role), string(domain))
}

func (a *Authorization) RemoveRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	_ = ctx
	if err := validSubject(subject); err != nil {
		return false, err
	}
	if role == "" {
		return false, fmt.Errorf("%w: role is empty", ErrInvalidArgs)
	}
	if err := validDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.RemoveGroupingPolicy(string(subject), string(role), string(domain))
}

func (a *Authorization) GetRolesForUserInDomain(ctx context.Context, subject GroupSubject, domain Domain) ([]Role, error) {
	_ = ctx
	if err := validSubject(subject); err != nil {
		return nil, err
	}
	if err := validDomain(domain); err != nil {
		return nil, err
	}
	roles := a.enforcer.GetRolesForUserInDomain(string(subject), string(domain))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, Role(r))
	}
	return out, nil
}

func (a *Authorization) AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if err := validRole(role); err != nil {
		return false, err
	}
	if err := validDomain(domain); err != nil {
		return false, err
	}
	if err := validObjectAction(object, action); err != nil {
		return false, err
	}
	if effect != EffectAllow && effect != EffectDeny {
		return false, fmt.Errorf("%w: invalid effect: %q", ErrInvalidArgs, effect)
	}

	return a.enforcer.AddPolicy(string(role), string(domain), string(object), string(action), string(effect))
}

func (a *Authorization) RemovePermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if role == "" || domain == "" || object == "" || action == "" || effect == "" {
		return false, fmt.Errorf("%w: empty permission fields", ErrInvalidArgs)
	}
	if err := validDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.RemovePolicy(string(role), string(domain), string(object), string(action), string(effect))
}
