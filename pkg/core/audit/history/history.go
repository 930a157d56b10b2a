package history

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	core "github.com/reagentlab/tracker/pkg/core/audit"
	"github.com/reagentlab/tracker/pkg/core/personal"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoPersonal "github.com/reagentlab/tracker/pkg/repo/personal"
)

// resources maps history entities onto the resource whose history rule applies.
var resources = map[string]access.Resource{
	core.EntityUser:                   access.ResUser,
	core.EntityLaboratory:             access.ResLaboratory,
	core.EntityReagentField:           access.ResReagentField,
	core.EntityPictogram:              access.ResHazard,
	core.EntityClpClassification:      access.ResHazard,
	core.EntityHazardStatement:        access.ResHazard,
	core.EntityPrecautionaryStatement: access.ResHazard,
	core.EntityReagent:                access.ResReagent,
	core.EntityProjectProcedure:       access.ResProject,
	core.EntityPersonalReagent:        access.ResPersonalReagent,
	core.EntityReagentRequest:         access.ResReagentRequest,
}

type historyImpl struct {
	auditStore    repo.AuditRepo
	accountStore  repo.Account
	personalStore repo.PersonalReagentRepo
}

func New() core.HistoryService {
	return &historyImpl{
		auditStore:    repoAudit.New(),
		accountStore:  repoAccount.New(),
		personalStore: repoPersonal.New(),
	}
}

// target loads the ownership facts when the history rule depends on them. Deleted stock has no
// owner left, only lab managers may read it.
func (h *historyImpl) target(ctx context.Context, res access.Resource, id uuid.UUID) (*access.Target, error) {
	if res != access.ResPersonalReagent {
		return nil, nil
	}
	pr, err := h.personalStore.GetPersonalReagent(ctx, id)
	if err != nil {
		if code.Of(err) == code.RecordNotFound {
			return &access.Target{}, nil
		}
		return nil, err
	}
	return personal.Target(pr), nil
}

func (h *historyImpl) History(ctx context.Context, entity string, id uuid.UUID, req *core.HistoryReq) (*common.PageResp[[]*core.RecordResp], error) {
	c := access.Current(ctx)
	res, ok := resources[entity]
	if !ok {
		if c == nil {
			return nil, code.UnLogin
		}
		return nil, code.RecordNotFound
	}
	if err := access.Authorize(c, res, access.ActHistory, nil); err != nil {
		return nil, err
	}
	t, err := h.target(ctx, res, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, res, access.ActHistory, t); err != nil {
		return nil, err
	}

	req.Normalize()
	records, total, err := h.auditStore.History(ctx, entity, id, req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	actorIDs := make([]int64, 0, len(records))
	for _, r := range records {
		if r.ActorID != nil {
			actorIDs = append(actorIDs, *r.ActorID)
		}
	}
	actors := h.accountStore.ID2UUID(ctx, &model.User{}, actorIDs...)

	datas := make([]*core.RecordResp, 0, len(records))
	for _, r := range records {
		item := &core.RecordResp{
			ID:         r.ID,
			Entity:     r.Entity,
			EntityUUID: r.EntityUUID,
			ChangeType: r.ChangeType,
			Diff:       r.Diff,
			CreatedAt:  r.CreatedAt,
		}
		if r.ActorID != nil {
			if actor, ok := actors[*r.ActorID]; ok {
				item.Actor = &actor
			}
		}
		datas = append(datas, item)
	}
	return &common.PageResp[[]*core.RecordResp]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}
