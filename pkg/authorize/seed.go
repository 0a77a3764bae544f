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
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic)
	clinicPolicies := []PermissionPolicy{
		// Doctor: full control over patient records. This is the verb side
		// of the grant; which patient an individual request may touch is
		// decided by the services.
		{RoleDoctor, DomainClinic, ResourcePatient, ActionManage, EffectAllow},
		{RoleDoctor, DomainClinic, ResourceMentalState, ActionManage, EffectAllow},
		{RoleDoctor, DomainClinic, ResourceMap, ActionManage, EffectAllow},
		{RoleDoctor, DomainClinic, ResourceCompound, ActionManage, EffectAllow},
		{RoleDoctor, DomainClinic, ResourcePreset, ActionRead, EffectAllow},
		{RoleDoctor, DomainClinic, ResourcePreset, ActionList, EffectAllow},
		{RoleDoctor, DomainClinic, ResourceDoctor, ActionRead, EffectAllow},
		{RoleDoctor, DomainClinic, ResourceDoctor, ActionUpdate, EffectAllow},

		// Patient: own records only. Services verify ownership by ID.
		{RolePatient, DomainClinic, ResourcePatient, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourcePatient, ActionUpdate, EffectAllow},
		{RolePatient, DomainClinic, ResourceMentalState, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceMentalState, ActionUpdate, EffectAllow},
		{RolePatient, DomainClinic, ResourceMap, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceMap, ActionUpdate, EffectAllow},
		{RolePatient, DomainClinic, ResourceCompound, ActionCreate, EffectAllow},
		{RolePatient, DomainClinic, ResourceCompound, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceCompound, ActionList, EffectAllow},
		{RolePatient, DomainClinic, ResourcePreset, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourcePreset, ActionList, EffectAllow},
	}

	allPolicies := append(sysPolicies, clinicPolicies...)

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

// AssignPatientRole assigns the patient role in the clinic domain.
// Call this when registering a new patient.
func AssignPatientRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RolePatient, DomainClinic)
	return err
}

// AssignDoctorRole assigns the doctor role in the clinic domain. The role
// carries the write grant over patient records, so a failure here leaves
// the doctor unable to edit anything but their own profile.
func AssignDoctorRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleDoctor, DomainClinic)
	return err
}

// RemoveClinicRole removes a clinic role from a user.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RolePatient, RoleDoctor:
	default:
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainClinic)
	return err
}
