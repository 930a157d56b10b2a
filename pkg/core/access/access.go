// Package access decides who may do what to which record.
//
// Every (resource, action) pair maps to one Rule in a single table. A decision is
// evaluated in a fixed order: missing caller, administrator override, the action
// allow-list, then the object-level predicate when a target is supplied. The first
// failing step decides; a pair absent from the table is denied.
package access

import (
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/model"
)

type Resource string

const (
	ResUser            Resource = "user"
	ResLaboratory      Resource = "laboratory"
	ResReagentField    Resource = "reagent_field"
	ResHazard          Resource = "hazard"
	ResReagent         Resource = "reagent"
	ResProject         Resource = "project_procedure"
	ResPersonalReagent Resource = "personal_reagent"
	ResReagentRequest  Resource = "reagent_request"
)

type Action string

const (
	ActList          Action = "list"
	ActRetrieve      Action = "retrieve"
	ActCreate        Action = "create"
	ActUpdate        Action = "update"
	ActPartialUpdate Action = "partial_update"
	ActDestroy       Action = "destroy"
	ActMe            Action = "me"
	ActHistory       Action = "history"
	ActChangeStatus  Action = "change_status"
	ActNotifications Action = "notifications"
	ActUsageRecord   Action = "usage_record"
	ActReport        Action = "report"
	ActCASLookup     Action = "cas_lookup"
)

// Caller is the authenticated identity a decision is made for.
type Caller struct {
	ID      int64
	IsStaff bool
	Roles   common.RoleSet
}

func FromUser(u *model.UserData) *Caller {
	if u == nil {
		return nil
	}
	roles := u.Roles
	if roles == nil {
		roles = common.NewRoleSet()
	}
	return &Caller{ID: u.ID, IsStaff: u.IsStaff, Roles: roles}
}

func (c *Caller) HasLabRole() bool {
	return c != nil && c.Roles.HasLabRole()
}

func (c *Caller) Is(role common.LabRole) bool {
	return c != nil && c.Roles.Has(role)
}

// Target carries the ownership facts of one record.
type Target struct {
	// OwnerID is the personal reagent owner, the responder of a request or the user record itself.
	OwnerID int64
	// ManagerID is the manager of the project procedure involved, if any.
	ManagerID int64
	// MemberIDs are the workers of the project procedure involved.
	MemberIDs []int64
	// RequesterID is set for reagent requests.
	RequesterID int64
	// Awaiting is true while a reagent request has not been answered.
	Awaiting bool
}

func (t *Target) isMember(id int64) bool {
	for _, m := range t.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

type Rule struct {
	Allow  func(c *Caller) bool
	Object func(c *Caller, t *Target) bool
	Shape  func(c *Caller, t *Target) Shape
}

type key struct {
	res Resource
	act Action
}

// Authorize returns nil, code.UnLogin or code.PermissionDenied. Pass a nil target for
// collection level checks; object predicates then do not run.
func Authorize(c *Caller, res Resource, act Action, t *Target) error {
	if c == nil {
		return code.UnLogin
	}
	if c.IsStaff {
		return nil
	}

	rule, ok := policy[key{res: res, act: act}]
	if !ok || rule.Allow == nil || !rule.Allow(c) {
		return code.PermissionDenied
	}
	if t != nil && rule.Object != nil && !rule.Object(c, t) {
		return code.PermissionDenied
	}
	return nil
}

func Can(c *Caller, res Resource, act Action, t *Target) bool {
	return Authorize(c, res, act, t) == nil
}

// SelectShape picks the serialization and validation rules for an allowed request.
func SelectShape(c *Caller, res Resource, act Action, t *Target) Shape {
	if c == nil {
		return ShapeDefault
	}
	if c.IsStaff {
		return ShapeAdmin
	}
	rule, ok := policy[key{res: res, act: act}]
	if !ok || rule.Shape == nil {
		return ShapeDefault
	}
	if t == nil {
		t = &Target{}
	}
	return rule.Shape(c, t)
}
