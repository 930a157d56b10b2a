package common

type LabRole string

const (
	LabManager     LabRole = "lab_manager"
	ProjectManager LabRole = "project_manager"
	LabWorker      LabRole = "lab_worker"
)

var LabRoles = []LabRole{LabManager, ProjectManager, LabWorker}

func (r LabRole) Valid() bool {
	switch r {
	case LabManager, ProjectManager, LabWorker:
		return true
	}
	return false
}

// RoleSet holds the lab roles of one user. Roles are orthogonal, there is no hierarchy.
type RoleSet map[LabRole]struct{}

func NewRoleSet(roles ...LabRole) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		if r.Valid() {
			s[r] = struct{}{}
		}
	}
	return s
}

func (s RoleSet) Has(r LabRole) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) HasAny(roles ...LabRole) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// HasLabRole reports whether the set intersects the three lab roles.
func (s RoleSet) HasLabRole() bool {
	return s.HasAny(LabRoles...)
}

// List returns the roles in a stable order.
func (s RoleSet) List() []LabRole {
	out := make([]LabRole, 0, len(s))
	for _, r := range LabRoles {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
