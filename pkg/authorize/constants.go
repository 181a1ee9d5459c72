package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Domain actions
	ActionVerify   Action = "verify"   // testimonial verification
	ActionTransit  Action = "transit"  // appointment lifecycle transitions
	ActionModerate Action = "moderate" // content publish/unpublish

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionVerify: {}, ActionTransit: {}, ActionModerate: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Booking domain
	ResourceDoctor      Resource = "doctor"
	ResourceAppointment Resource = "appointment"
	ResourceTestimonial Resource = "testimonial"
	ResourcePayment     Resource = "payment"

	// Marketing surfaces
	ResourceContent Resource = "content"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceDoctor: {}, ResourceAppointment: {}, ResourceTestimonial: {}, ResourcePayment: {},
	ResourceContent: {},
	ResourceSystem:  {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Hospital roles (domain = hospital)
	RoleAdmin   Role = "role:hospital:admin"
	RoleStaff   Role = "role:hospital:staff"
	RoleDoctor  Role = "role:hospital:doctor"
	RolePatient Role = "role:hospital:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin: {},
	RoleAdmin:         {},
	RoleStaff:         {},
	RoleDoctor:        {},
	RolePatient:       {},
	RoleUserSelf:      {},
}

// User role strings (stored in DB users.role column)
const (
	UserRolePatient = "patient"
	UserRoleDoctor  = "doctor"
	UserRoleAdmin   = "admin"
	UserRoleStaff   = "staff"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRolePatient: RolePatient,
	UserRoleDoctor:  RoleDoctor,
	UserRoleAdmin:   RoleAdmin,
	UserRoleStaff:   RoleStaff,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys      Domain = "sys"
	DomainHospital Domain = "hospital"
)

// Domain prefix for per-user private domains
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainHospital || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
