package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Hospital-level policies (domain: hospital)
	hospitalPolicies := []PermissionPolicy{
		// Admin: everything inside the hospital, including RBAC grants
		{RoleAdmin, DomainHospital, ResourceUser, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceDoctor, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceAppointment, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceAppointment, ActionTransit, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceTestimonial, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceTestimonial, ActionVerify, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceContent, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceContent, ActionModerate, EffectAllow},
		{RoleAdmin, DomainHospital, ResourcePayment, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceAudit, ActionRead, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceRBAC, ActionRevoke, EffectAllow},

		// Staff: run the front desk, so manage appointments and read the rest
		{RoleStaff, DomainHospital, ResourceAppointment, ActionManage, EffectAllow},
		{RoleStaff, DomainHospital, ResourceAppointment, ActionTransit, EffectAllow},
		{RoleStaff, DomainHospital, ResourceDoctor, ActionRead, EffectAllow},
		{RoleStaff, DomainHospital, ResourceDoctor, ActionList, EffectAllow},
		{RoleStaff, DomainHospital, ResourceUser, ActionRead, EffectAllow},
		{RoleStaff, DomainHospital, ResourceTestimonial, ActionRead, EffectAllow},

		// Doctor: own schedule and appointment work
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionTransit, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceDoctor, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceTestimonial, ActionRead, EffectAllow},

		// Patient: book appointments, leave testimonials
		{RolePatient, DomainHospital, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainHospital, ResourceTestimonial, ActionCreate, EffectAllow},
		{RolePatient, DomainHospital, ResourcePayment, ActionCreate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAppointment, ActionRead, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, hospitalPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignHospitalRole mirrors the users.role column into a Casbin grouping.
// Call this at registration and whenever an admin changes a user's role.
func AssignHospitalRole(ctx context.Context, auth IAuthorization, userID, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainHospital)
	return err
}

// RevokeHospitalRole removes the Casbin grouping for a DB role value.
func RevokeHospitalRole(ctx context.Context, auth IAuthorization, userID, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainHospital)
	return err
}
