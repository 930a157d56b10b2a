package project

import (
	"context"
	"strings"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	core "github.com/reagentlab/tracker/pkg/core/project"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoPersonal "github.com/reagentlab/tracker/pkg/repo/personal"
	repoProject "github.com/reagentlab/tracker/pkg/repo/project"
)

type projectImpl struct {
	projectStore  repo.ProjectRepo
	accountStore  repo.Account
	personalStore repo.PersonalReagentRepo
	recorder      *audit.Recorder
}

func New() core.Service {
	return &projectImpl{
		projectStore:  repoProject.New(),
		accountStore:  repoAccount.New(),
		personalStore: repoPersonal.New(),
		recorder:      audit.NewRecorder(repoAudit.New()),
	}
}

func target(p *model.ProjectProcedure) *access.Target {
	return &access.Target{ManagerID: p.ManagerID, MemberIDs: p.WorkerIDs()}
}

func (p *projectImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.ProjectResp], error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResProject, access.ActList, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	q := repo.ProjectQuery{
		Search:    strings.TrimSpace(req.Search),
		Validated: req.Validated,
		Offset:    req.Offest(),
		Limit:     req.PageSize,
	}
	if !c.IsStaff && !c.Is(common.LabManager) {
		q.MemberID = &c.ID
	}
	projects, total, err := p.projectStore.ListProjects(ctx, q)
	if err != nil {
		return nil, err
	}
	datas := make([]*core.ProjectResp, 0, len(projects))
	for _, item := range projects {
		datas = append(datas, core.ToResp(item))
	}
	return &common.PageResp[[]*core.ProjectResp]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (p *projectImpl) Get(ctx context.Context, id uuid.UUID) (*core.ProjectResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResProject, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	data, err := p.projectStore.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, access.ResProject, access.ActRetrieve, target(data)); err != nil {
		return nil, err
	}
	return core.ToResp(data), nil
}

func (p *projectImpl) Create(ctx context.Context, req *core.ProjectReq) (*core.ProjectResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResProject, access.ActCreate, nil); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResProject, access.ActCreate, nil)

	in := *req
	if shape == access.ShapeContributor {
		self, err := p.accountStore.GetUserByID(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if in.Manager != nil && *in.Manager != self.UUID {
			return nil, code.ValidationErr.WithField("manager", "project managers can only create procedures they manage")
		}
		in.Manager = &self.UUID
	}

	data, workers, err := p.resolve(ctx, shape, &model.ProjectProcedure{}, &in, false)
	if err != nil {
		return nil, err
	}
	if err := p.projectStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := p.projectStore.SaveProject(txCtx, data, workers); err != nil {
			return nameConflict(err)
		}
		fresh, err := p.projectStore.GetProjectByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		data = fresh
		return p.recorder.Created(txCtx, audit.EntityProjectProcedure, data.UUID, core.ToResp(data))
	}); err != nil {
		logger.Errorf(ctx, "create project procedure err: %+v", err)
		return nil, err
	}
	return core.ToResp(data), nil
}

func (p *projectImpl) Update(ctx context.Context, id uuid.UUID, req *core.ProjectReq, partial bool) (*core.ProjectResp, error) {
	c := access.Current(ctx)
	act := access.ActUpdate
	if partial {
		act = access.ActPartialUpdate
	}
	if err := access.Authorize(c, access.ResProject, act, nil); err != nil {
		return nil, err
	}
	cur, err := p.projectStore.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	t := target(cur)
	if err := access.Authorize(c, access.ResProject, act, t); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResProject, act, t)

	data, workers, err := p.resolve(ctx, shape, cur, req, partial)
	if err != nil {
		return nil, err
	}

	before := audit.Snapshot(core.ToResp(cur))
	if err := p.projectStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := p.checkStockOwners(txCtx, cur.ID, workers); err != nil {
			return err
		}
		if err := p.projectStore.SaveProject(txCtx, data, workers); err != nil {
			return nameConflict(err)
		}
		fresh, err := p.projectStore.GetProjectByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		data = fresh
		return p.recorder.Updated(txCtx, audit.EntityProjectProcedure, cur.UUID, before, audit.Snapshot(core.ToResp(fresh)))
	}); err != nil {
		logger.Errorf(ctx, "update project procedure %s err: %+v", id, err)
		return nil, err
	}
	return core.ToResp(data), nil
}

func (p *projectImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := access.Authorize(access.Current(ctx), access.ResProject, access.ActDestroy, nil); err != nil {
		return err
	}
	cur, err := p.projectStore.GetProject(ctx, id)
	if err != nil {
		return err
	}
	_, attached, err := p.personalStore.ListPersonalReagents(ctx, repo.PersonalReagentQuery{ProjectID: &cur.ID, Limit: 1})
	if err != nil {
		return err
	}
	if attached > 0 {
		return code.ValidationErr.WithMsgf("%d personal reagent(s) are still attached to this procedure", attached)
	}
	return p.projectStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := p.projectStore.DeleteProject(txCtx, cur.ID); err != nil {
			return err
		}
		return p.recorder.Deleted(txCtx, audit.EntityProjectProcedure, cur.UUID, core.ToResp(cur))
	})
}

// resolve merges req into a copy of cur and returns it with the full worker list. The manager is
// always part of the workers.
func (p *projectImpl) resolve(ctx context.Context, shape access.Shape, cur *model.ProjectProcedure, req *core.ProjectReq, partial bool) (*model.ProjectProcedure, []*model.User, error) {
	isNew := cur.ID == 0
	required := isNew || !partial
	next := *cur
	next.Manager, next.Workers = nil, nil
	workers := cur.Workers

	switch {
	case req.Name == nil && required:
		return nil, nil, code.ValidationErr.WithField("name", "this field is required")
	case req.Name != nil && strings.TrimSpace(*req.Name) == "":
		return nil, nil, code.ValidationErr.WithField("name", "this field may not be blank")
	case req.Name != nil:
		next.Name = strings.TrimSpace(*req.Name)
	}

	manager := cur.Manager
	switch {
	case req.Manager == nil && isNew:
		return nil, nil, code.ValidationErr.WithField("manager", "this field is required")
	case req.Manager != nil && !isNew && shape == access.ShapeContributor && *req.Manager != cur.Manager.UUID:
		return nil, nil, code.ValidationErr.WithField("manager", "only lab managers can hand a procedure over")
	case req.Manager != nil:
		u, err := p.accountStore.GetUserByUUID(ctx, *req.Manager)
		if err != nil {
			if code.Of(err) == code.RecordNotFound {
				return nil, nil, code.ValidationErr.WithField("manager", "unknown user")
			}
			return nil, nil, err
		}
		manager = u
	}
	if !manager.RoleSet().Has(common.ProjectManager) {
		return nil, nil, code.ValidationErr.WithField("manager", "the manager must hold the project manager role")
	}
	next.ManagerID = manager.ID

	if req.Workers != nil {
		found, err := p.accountStore.GetUsersByUUIDs(ctx, *req.Workers)
		if err != nil {
			return nil, nil, err
		}
		want := make(map[uuid.UUID]struct{}, len(*req.Workers))
		for _, id := range *req.Workers {
			want[id] = struct{}{}
		}
		if len(found) != len(want) {
			return nil, nil, code.ValidationErr.WithField("workers", "unknown user")
		}
		workers = found
	}
	hasManager := false
	for _, w := range workers {
		if w.ID == manager.ID {
			hasManager = true
			break
		}
	}
	if !hasManager {
		workers = append(append([]*model.User{}, workers...), manager)
	}

	switch {
	case shape == access.ShapeContributor && isNew:
		next.IsValidatedByAdmin = false
	case shape == access.ShapeContributor:
		// managers editing their own procedure keep the current flag
	case req.IsValidatedByAdmin != nil:
		next.IsValidatedByAdmin = *req.IsValidatedByAdmin
	case isNew:
		next.IsValidatedByAdmin = shape.Validated()
	}
	return &next, workers, nil
}

// checkStockOwners rejects worker lists that would strand stock attached by a removed worker.
func (p *projectImpl) checkStockOwners(ctx context.Context, projectID int64, workers []*model.User) error {
	ids := make([]int64, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}
	stranded, err := p.personalStore.CountForeignStock(ctx, projectID, ids)
	if err != nil {
		return err
	}
	if stranded > 0 {
		return code.PersonalReagentProjectErr.WithField("workers",
			"a removed worker still owns stock attached to this procedure")
	}
	return nil
}

func nameConflict(err error) error {
	if code.Of(err) == code.ConflictErr {
		return code.ValidationErr.WithField("name", "a procedure with this name already exists")
	}
	return err
}
