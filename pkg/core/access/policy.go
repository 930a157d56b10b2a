package access

import (
	"github.com/reagentlab/tracker/pkg/common"
)

func anyLabRole(c *Caller) bool { return c.HasLabRole() }

func adminOnly(*Caller) bool { return false }

func authenticated(*Caller) bool { return true }

func roleIn(roles ...common.LabRole) func(c *Caller) bool {
	return func(c *Caller) bool { return c.Roles.HasAny(roles...) }
}

func isOwner(c *Caller, t *Target) bool { return t.OwnerID != 0 && t.OwnerID == c.ID }

func isManager(c *Caller, t *Target) bool { return t.ManagerID != 0 && t.ManagerID == c.ID }

func contributorShape(*Caller, *Target) Shape { return ShapeContributor }

var readable = Rule{Allow: anyLabRole}

var adminWrite = Rule{Allow: adminOnly}

// contributed lookups: any lab role creates unvalidated rows, admins manage them
var contributed = map[Action]Rule{
	ActList:          readable,
	ActRetrieve:      readable,
	ActCreate:        {Allow: anyLabRole, Shape: contributorShape},
	ActUpdate:        adminWrite,
	ActPartialUpdate: adminWrite,
	ActDestroy:       adminWrite,
}

var adminManaged = map[Action]Rule{
	ActList:          readable,
	ActRetrieve:      readable,
	ActCreate:        adminWrite,
	ActUpdate:        adminWrite,
	ActPartialUpdate: adminWrite,
	ActDestroy:       adminWrite,
}

var policy = buildPolicy()

func buildPolicy() map[key]Rule {
	p := map[key]Rule{}
	add := func(res Resource, rules map[Action]Rule) {
		for act, rule := range rules {
			p[key{res: res, act: act}] = rule
		}
	}

	add(ResLaboratory, adminManaged)
	add(ResHazard, adminManaged)
	add(ResReagentField, contributed)
	add(ResReagent, contributed)
	p[key{ResReagent, ActCASLookup}] = readable

	add(ResUser, map[Action]Rule{
		ActList:     readable,
		ActRetrieve: readable,
		ActMe:       {Allow: authenticated},
		ActCreate:   adminWrite,
		ActUpdate: {
			Allow:  authenticated,
			Object: isOwner,
			Shape:  func(*Caller, *Target) Shape { return ShapeSelf },
		},
		ActPartialUpdate: {
			Allow:  authenticated,
			Object: isOwner,
			Shape:  func(*Caller, *Target) Shape { return ShapeSelf },
		},
		ActDestroy: adminWrite,
		ActHistory: adminWrite,
	})

	projectEdit := Rule{
		Allow: roleIn(common.LabManager, common.ProjectManager),
		Object: func(c *Caller, t *Target) bool {
			return c.Is(common.LabManager) || isManager(c, t)
		},
		Shape: func(c *Caller, _ *Target) Shape {
			if c.Is(common.LabManager) {
				return ShapeValidator
			}
			return ShapeContributor
		},
	}
	add(ResProject, map[Action]Rule{
		// non lab managers only see procedures they belong to, the listing filters on that
		ActList: readable,
		ActRetrieve: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return c.Is(common.LabManager) || isManager(c, t) || t.isMember(c.ID)
			},
		},
		ActCreate: {
			Allow: roleIn(common.LabManager, common.ProjectManager),
			Shape: projectEdit.Shape,
		},
		ActUpdate:        projectEdit,
		ActPartialUpdate: projectEdit,
		ActDestroy:       {Allow: roleIn(common.LabManager)},
		ActHistory:       {Allow: roleIn(common.LabManager)},
	})

	ownerShape := func(c *Caller, t *Target) Shape {
		if isOwner(c, t) || isManager(c, t) {
			return ShapeOwner
		}
		return ShapeManagerPatch
	}
	add(ResPersonalReagent, map[Action]Rule{
		ActList:     readable,
		ActRetrieve: readable,
		ActMe:       readable,
		ActCreate: {
			Allow: anyLabRole,
			Shape: func(*Caller, *Target) Shape { return ShapeOwner },
		},
		ActUpdate: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return isOwner(c, t) || isManager(c, t)
			},
			Shape: ownerShape,
		},
		ActPartialUpdate: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return isOwner(c, t) || isManager(c, t) || c.Is(common.LabManager)
			},
			Shape: ownerShape,
		},
		ActDestroy:     {Allow: anyLabRole, Object: isOwner},
		ActUsageRecord: {Allow: anyLabRole, Object: isOwner},
		ActReport:      {Allow: roleIn(common.LabManager)},
		ActHistory: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return isOwner(c, t) || c.Is(common.LabManager)
			},
		},
	})

	add(ResReagentRequest, map[Action]Rule{
		// listing is filtered to requests the caller takes part in
		ActList: readable,
		ActRetrieve: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return isOwner(c, t) || t.RequesterID == c.ID
			},
		},
		ActMe:            readable,
		ActNotifications: readable,
		ActCreate:        readable,
		// only the current owner of the requested stock answers, never the requester
		ActChangeStatus: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return isOwner(c, t) && t.RequesterID != c.ID
			},
		},
		ActDestroy: {
			Allow: anyLabRole,
			Object: func(c *Caller, t *Target) bool {
				return t.RequesterID == c.ID && t.Awaiting
			},
		},
	})

	for _, res := range []Resource{ResLaboratory, ResHazard, ResReagentField, ResReagent} {
		p[key{res, ActHistory}] = Rule{Allow: roleIn(common.LabManager)}
	}
	p[key{ResReagentRequest, ActHistory}] = Rule{Allow: roleIn(common.LabManager)}

	return p
}
