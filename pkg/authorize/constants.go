package authorize

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

	// Power action: CRUD + list
	ActionManage Action = "manage"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Clinical records
	ResourcePatient     Resource = "patient"
	ResourceDoctor      Resource = "doctor"
	ResourceMentalState Resource = "mental_state"
	ResourceMap         Resource = "map"
	ResourceCompound    Resource = "compound"
	ResourcePreset      Resource = "preset"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourcePatient: {}, ResourceDoctor: {},
	ResourceMentalState: {}, ResourceMap: {}, ResourceCompound: {}, ResourcePreset: {},
}

// ----------------------------
// Roles
// ----------------------------

const (
	// RoleSysSuperAdmin bypasses all checks (assigned manually).
	RoleSysSuperAdmin Role = "sys:superadmin"

	// RolePatient is granted to every registered patient.
	RolePatient Role = "patient"

	// RoleDoctor carries the "can edit patients" capability.
	RoleDoctor Role = "doctor"
)

// ----------------------------
// Domains
// ----------------------------

const (
	// DomainSys is reserved for system-level roles.
	DomainSys Domain = "sys"

	// DomainClinic is the single clinic the application serves.
	DomainClinic Domain = "clinic"

	WildcardDomain Domain = "*"
)

func IsValidDomain(d Domain) bool {
	switch d {
	case DomainSys, DomainClinic, WildcardDomain:
		return true
	}
	return false
}

// ----------------------------
// Policy types
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject identifies the subject of a grouping policy (a user ID).
type GroupSubject string

// PermissionPolicy is one p-rule: role, domain, object, action, effect.
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
