package personal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	"github.com/reagentlab/tracker/pkg/core/document"
	"github.com/reagentlab/tracker/pkg/core/lifecycle"
	core "github.com/reagentlab/tracker/pkg/core/personal"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoPersonal "github.com/reagentlab/tracker/pkg/repo/personal"
	repoProject "github.com/reagentlab/tracker/pkg/repo/project"
	repoReagent "github.com/reagentlab/tracker/pkg/repo/reagent"
	repoReference "github.com/reagentlab/tracker/pkg/repo/reference"
)

type personalImpl struct {
	personalStore repo.PersonalReagentRepo
	reagentStore  repo.ReagentRepo
	projectStore  repo.ProjectRepo
	refStore      repo.ReferenceRepo
	accountStore  repo.Account
	recorder      *audit.Recorder
	renderer      document.Renderer
	// objects is nil when generated documents are not archived
	objects repo.ObjectStore
	now     func() time.Time
}

func New(renderer document.Renderer, objects repo.ObjectStore) core.Service {
	return &personalImpl{
		personalStore: repoPersonal.New(),
		reagentStore:  repoReagent.NewReagentRepo(),
		projectStore:  repoProject.New(),
		refStore:      repoReference.New(),
		accountStore:  repoAccount.New(),
		recorder:      audit.NewRecorder(repoAudit.New()),
		renderer:      renderer,
		objects:       objects,
		now:           time.Now,
	}
}

// idOf resolves a filter uuid. Unknown uuids resolve to an id no row has.
func (p *personalImpl) idOf(ctx context.Context, table any, id *uuid.UUID) *int64 {
	if id == nil {
		return nil
	}
	v, ok := p.personalStore.UUID2ID(ctx, table, *id)[*id]
	if !ok {
		v = -1
	}
	return &v
}

func (p *personalImpl) query(ctx context.Context, req *core.ListReq) (repo.PersonalReagentQuery, error) {
	q := repo.PersonalReagentQuery{
		OwnerID:      p.idOf(ctx, &model.User{}, req.MainOwner),
		ReagentID:    p.idOf(ctx, &model.Reagent{}, req.Reagent),
		ProjectID:    p.idOf(ctx, &model.ProjectProcedure{}, req.ProjectProcedure),
		LaboratoryID: p.idOf(ctx, &model.Laboratory{}, req.Laboratory),
		Archived:     req.IsArchived,
		Critical:     req.IsCritical,
		Search:       strings.TrimSpace(req.Search),
	}
	if req.ExpiresBefore != nil {
		q.ExpiresBefore = req.ExpiresBefore.Ptr()
	}
	if req.Ordering != "" {
		order, ok := core.Orderings[req.Ordering]
		if !ok {
			return q, code.ParamErr.WithField("ordering", fmt.Sprintf("unsupported ordering %q", req.Ordering))
		}
		q.OrderBy = order
	}
	return q, nil
}

func (p *personalImpl) page(ctx context.Context, req *core.ListReq, q repo.PersonalReagentQuery) (*common.PageResp[[]*core.PersonalReagentResp], error) {
	q.Offset = req.Offest()
	q.Limit = req.PageSize
	items, total, err := p.personalStore.ListPersonalReagents(ctx, q)
	if err != nil {
		return nil, err
	}
	datas := make([]*core.PersonalReagentResp, 0, len(items))
	for _, item := range items {
		datas = append(datas, core.ToResp(item))
	}
	return &common.PageResp[[]*core.PersonalReagentResp]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (p *personalImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.PersonalReagentResp], error) {
	if err := access.Authorize(access.Current(ctx), access.ResPersonalReagent, access.ActList, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	q, err := p.query(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.page(ctx, req, q)
}

func (p *personalImpl) Me(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.PersonalReagentResp], error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActMe, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	q, err := p.query(ctx, req)
	if err != nil {
		return nil, err
	}
	q.OwnerID = &c.ID
	return p.page(ctx, req, q)
}

func (p *personalImpl) Get(ctx context.Context, id uuid.UUID) (*core.PersonalReagentResp, error) {
	if err := access.Authorize(access.Current(ctx), access.ResPersonalReagent, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	data, err := p.personalStore.GetPersonalReagent(ctx, id)
	if err != nil {
		return nil, err
	}
	return core.ToResp(data), nil
}

// resolve looks up the associations the payload names, starting from the current ones.
func (p *personalImpl) resolve(ctx context.Context, cur *model.PersonalReagent, in *core.PersonalReagentReq, partial bool) (*refs, error) {
	r := &refs{
		reagentID:    cur.ReagentID,
		ownerID:      cur.MainOwnerID,
		laboratoryID: cur.LaboratoryID,
		project:      cur.ProjectProcedure,
	}
	errs := map[string]string{}
	missing := func(field string, err error) error {
		if code.Of(err) == code.RecordNotFound {
			errs[field] = "object does not exist"
			return nil
		}
		return err
	}

	if in.Reagent != nil {
		reagent, err := p.reagentStore.GetReagent(ctx, *in.Reagent)
		if err == nil {
			r.reagentID = reagent.ID
		} else if err := missing("reagent", err); err != nil {
			return nil, err
		}
	}
	if in.MainOwner != nil {
		owner, err := p.accountStore.GetUserByUUID(ctx, *in.MainOwner)
		if err == nil {
			r.ownerID = owner.ID
		} else if err := missing("main_owner", err); err != nil {
			return nil, err
		}
	}
	switch {
	case in.ProjectProcedure != nil:
		project, err := p.projectStore.GetProject(ctx, *in.ProjectProcedure)
		if err == nil {
			r.project = project
		} else if err := missing("project_procedure", err); err != nil {
			return nil, err
		}
	case !partial:
		r.project = nil
	}
	if in.Laboratory != nil {
		lab, err := p.refStore.GetLaboratory(ctx, *in.Laboratory)
		if err == nil {
			r.laboratoryID = lab.ID
		} else if err := missing("laboratory", err); err != nil {
			return nil, err
		}
	}
	if len(errs) > 0 {
		return nil, code.ValidationErr.WithFields(errs)
	}
	return r, nil
}

func (p *personalImpl) Create(ctx context.Context, req *core.PersonalReagentReq) (*core.PersonalReagentResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActCreate, nil); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResPersonalReagent, access.ActCreate, nil)
	in := filter(shape, req)
	cur := &model.PersonalReagent{MainOwnerID: c.ID}

	r, err := p.resolve(ctx, cur, in, false)
	if err != nil {
		return nil, err
	}
	data, _, err := apply(cur, in, r, false, config.Global().Rules.ProjectLocationPrefix, p.now())
	if err != nil {
		return nil, err
	}
	if err := p.personalStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := p.personalStore.CreateData(txCtx, data); err != nil {
			return err
		}
		fresh, err := p.personalStore.GetPersonalReagentByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		data = fresh
		return p.recorder.Created(txCtx, audit.EntityPersonalReagent, data.UUID, core.ToResp(data))
	}); err != nil {
		logger.Errorf(ctx, "create personal reagent err: %+v", err)
		return nil, err
	}
	return core.ToResp(data), nil
}

func (p *personalImpl) Update(ctx context.Context, id uuid.UUID, req *core.PersonalReagentReq, partial bool) (*core.PersonalReagentResp, error) {
	c := access.Current(ctx)
	act := access.ActUpdate
	if partial {
		act = access.ActPartialUpdate
	}
	if err := access.Authorize(c, access.ResPersonalReagent, act, nil); err != nil {
		return nil, err
	}
	row, err := p.personalStore.GetPersonalReagent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, access.ResPersonalReagent, act, core.Target(row)); err != nil {
		return nil, err
	}
	now := p.now()

	// the decision is taken again on the locked row, a transfer may have committed since the read above
	var fresh *model.PersonalReagent
	var transition lifecycle.ArchiveTransition
	if err := p.personalStore.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := p.personalStore.LockPersonalReagent(txCtx, row.ID); err != nil {
			return err
		}
		cur, err := p.personalStore.GetPersonalReagentByID(txCtx, row.ID)
		if err != nil {
			return err
		}
		t := core.Target(cur)
		if err := access.Authorize(c, access.ResPersonalReagent, act, t); err != nil {
			return err
		}
		in := filter(access.SelectShape(c, access.ResPersonalReagent, act, t), req)
		r, err := p.resolve(txCtx, cur, in, partial)
		if err != nil {
			return err
		}
		var next *model.PersonalReagent
		next, transition, err = apply(cur, in, r, partial, config.Global().Rules.ProjectLocationPrefix, now)
		if err != nil {
			return err
		}
		if err := p.personalStore.UpdatePersonalReagent(txCtx, cur.ID, columns(cur, next)); err != nil {
			return err
		}
		fresh, err = p.personalStore.GetPersonalReagentByID(txCtx, cur.ID)
		if err != nil {
			return err
		}
		return p.recorder.Updated(txCtx, audit.EntityPersonalReagent, cur.UUID,
			audit.Snapshot(core.ToResp(cur)), audit.Snapshot(core.ToResp(fresh)))
	}); err != nil {
		logger.Errorf(ctx, "update personal reagent: %s err: %+v", id, err)
		return nil, err
	}
	if transition != lifecycle.ArchiveNone {
		logger.Infof(ctx, "personal reagent %s archived: %t", id, fresh.IsArchived)
	}
	return core.ToResp(fresh), nil
}

func (p *personalImpl) Delete(ctx context.Context, id uuid.UUID) error {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActDestroy, nil); err != nil {
		return err
	}
	cur, err := p.personalStore.GetPersonalReagent(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActDestroy, core.Target(cur)); err != nil {
		return err
	}
	return p.personalStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := p.personalStore.DeletePersonalReagent(txCtx, cur.ID); err != nil {
			return err
		}
		return p.recorder.Deleted(txCtx, audit.EntityPersonalReagent, cur.UUID, core.ToResp(cur))
	})
}

func (p *personalImpl) UsageRecord(ctx context.Context, id uuid.UUID) (*document.Result, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActUsageRecord, nil); err != nil {
		return nil, err
	}
	cur, err := p.personalStore.GetPersonalReagent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActUsageRecord, core.Target(cur)); err != nil {
		return nil, err
	}
	if cur.Reagent == nil || !cur.Reagent.IsUsageRecordRequired {
		return nil, code.UsageRecordNotRequiredErr
	}

	now := p.now()
	res, err := p.renderer.Render(ctx, document.UsageRecord(cur, config.Global().Document.Institution, now))
	if err != nil {
		logger.Errorf(ctx, "render usage record: %s err: %+v", id, err)
		return nil, err
	}

	state := lifecycle.GenerateUsageRecord(lifecycle.StateOf(cur))
	if state.UsageRecordGenerated != cur.IsUsageRecordGenerated {
		if err := p.personalStore.ExecTx(ctx, func(txCtx context.Context) error {
			if err := p.personalStore.UpdatePersonalReagent(txCtx, cur.ID, map[string]any{
				"is_usage_record_generated": state.UsageRecordGenerated,
			}); err != nil {
				return err
			}
			return p.recorder.Updated(txCtx, audit.EntityPersonalReagent, cur.UUID,
				map[string]any{"is_usage_record_generated": cur.IsUsageRecordGenerated},
				map[string]any{"is_usage_record_generated": state.UsageRecordGenerated})
		}); err != nil {
			logger.Errorf(ctx, "mark usage record: %s err: %+v", id, err)
			return nil, err
		}
	}

	p.archive(ctx, fmt.Sprintf("usage-records/%s/%s", cur.UUID, res.Filename), res)
	return res, nil
}

// archive keeps a copy of a generated document. Failures are logged, the caller still gets the
// document.
func (p *personalImpl) archive(ctx context.Context, key string, res *document.Result) {
	if p.objects == nil {
		return
	}
	location, err := p.objects.PutObject(ctx, key, res.Data, res.MimeType)
	if err != nil {
		logger.Warnf(ctx, "archive document %s err: %+v", key, err)
		return
	}
	logger.Infof(ctx, "archived document at %s", location)
}

func (p *personalImpl) Report(ctx context.Context, req *core.ListReq) (*document.Result, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResPersonalReagent, access.ActReport, nil); err != nil {
		return nil, err
	}
	q, err := p.query(ctx, req)
	if err != nil {
		return nil, err
	}
	items, total, err := p.personalStore.ListPersonalReagents(ctx, q)
	if err != nil {
		return nil, err
	}
	requester := ""
	if u, err := p.accountStore.GetUserByID(ctx, c.ID); err == nil {
		requester = u.FullName()
	}

	now := p.now()
	doc := document.Report(items, total, describe(req), config.Global().Document.Institution, requester, now)
	res, err := p.renderer.Render(ctx, doc)
	if err != nil {
		logger.Errorf(ctx, "render report err: %+v", err)
		return nil, err
	}
	p.archive(ctx, fmt.Sprintf("reports/%s/%s", now.Format("2006-01-02"), res.Filename), res)
	return res, nil
}

// describe lists the filters a report was printed with.
func describe(req *core.ListReq) []document.Field {
	fields := make([]document.Field, 0, 8)
	add := func(label, value string) {
		fields = append(fields, document.Field{Label: label, Value: value})
	}
	if s := strings.TrimSpace(req.Search); s != "" {
		add("Search", s)
	}
	for _, f := range []struct {
		label string
		id    *uuid.UUID
	}{
		{"Reagent", req.Reagent},
		{"Project procedure", req.ProjectProcedure},
		{"Laboratory", req.Laboratory},
		{"Owner", req.MainOwner},
	} {
		if f.id != nil {
			add(f.label, f.id.String())
		}
	}
	if req.IsArchived != nil {
		add("Archived", fmt.Sprintf("%t", *req.IsArchived))
	}
	if req.IsCritical != nil {
		add("Critical", fmt.Sprintf("%t", *req.IsCritical))
	}
	if req.ExpiresBefore != nil && !req.ExpiresBefore.IsZero() {
		add("Expires before", req.ExpiresBefore.Format(common.DateLayout))
	}
	return fields
}
