package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	core "github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/core/audit"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
)

type accountImpl struct {
	accountStore repo.Account
	recorder     *audit.Recorder
}

func New() core.Service {
	return &accountImpl{
		accountStore: repoAccount.New(),
		recorder:     audit.NewRecorder(repoAudit.New()),
	}
}

func (a *accountImpl) Me(ctx context.Context) (*core.UserResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResUser, access.ActMe, nil); err != nil {
		return nil, err
	}
	u, err := a.accountStore.GetUserByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return core.ToResp(u), nil
}

func (a *accountImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.UserResp], error) {
	if err := access.Authorize(access.Current(ctx), access.ResUser, access.ActList, nil); err != nil {
		return nil, err
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, code.ParamErr.WithField("role", fmt.Sprintf("unknown role %q", *req.Role))
	}
	req.Normalize()
	users, total, err := a.accountStore.ListUsers(ctx, repo.UserQuery{
		Search:   strings.TrimSpace(req.Search),
		Role:     req.Role,
		IsActive: req.IsActive,
		Offset:   req.Offest(),
		Limit:    req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	datas := make([]*core.UserResp, 0, len(users))
	for _, u := range users {
		datas = append(datas, core.ToResp(u))
	}
	return &common.PageResp[[]*core.UserResp]{
		Data:     datas,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (a *accountImpl) Get(ctx context.Context, id uuid.UUID) (*core.UserResp, error) {
	if err := access.Authorize(access.Current(ctx), access.ResUser, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	u, err := a.accountStore.GetUserByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	return core.ToResp(u), nil
}

func (a *accountImpl) Create(ctx context.Context, req *core.UserReq) (*core.UserResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResUser, access.ActCreate, nil); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResUser, access.ActCreate, nil)

	next, roles, err := applyUser(shape, &model.User{IsActive: true}, req, false)
	if err != nil {
		return nil, err
	}
	if err := a.checkUsername(ctx, next.Username, 0); err != nil {
		return nil, err
	}
	for _, r := range roles {
		next.Roles = append(next.Roles, &model.UserRole{Role: r})
	}

	if err := a.accountStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := a.accountStore.CreateData(txCtx, next); err != nil {
			return err
		}
		return a.recorder.Created(txCtx, audit.EntityUser, next.UUID, core.ToResp(next))
	}); err != nil {
		logger.Errorf(ctx, "create user %s err: %+v", next.Username, err)
		return nil, err
	}
	return core.ToResp(next), nil
}

func (a *accountImpl) Update(ctx context.Context, id uuid.UUID, req *core.UserReq, partial bool) (*core.UserResp, error) {
	c := access.Current(ctx)
	if c == nil {
		return nil, code.UnLogin
	}
	u, err := a.accountStore.GetUserByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	act := access.ActUpdate
	if partial {
		act = access.ActPartialUpdate
	}
	target := &access.Target{OwnerID: u.ID}
	if err := access.Authorize(c, access.ResUser, act, target); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResUser, act, target)

	next, roles, err := applyUser(shape, u, req, partial)
	if err != nil {
		return nil, err
	}
	if next.Username != u.Username {
		if err := a.checkUsername(ctx, next.Username, u.ID); err != nil {
			return nil, err
		}
	}
	before := common.NewRoleSet(u.RoleSet().List()...)
	after := common.NewRoleSet(roles...)

	snapshot := audit.Snapshot(core.ToResp(u))
	if err := a.accountStore.ExecTx(ctx, func(txCtx context.Context) error {
		if before.Has(common.ProjectManager) && !after.Has(common.ProjectManager) {
			count, err := a.accountStore.CountManagedProcedures(txCtx, u.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return code.ProjectManagerInUseErr.WithField("roles",
					fmt.Sprintf("user still manages %d project procedure(s)", count))
			}
		}
		if err := a.accountStore.UpdateData(txCtx, next, map[string]any{"id": u.ID},
			"username", "email", "first_name", "last_name", "is_staff", "is_active", "updated_at"); err != nil {
			return err
		}
		if !sameRoles(before, after) {
			if err := a.accountStore.ReplaceRoles(txCtx, u.ID, after.List()); err != nil {
				return err
			}
		}
		fresh, err := a.accountStore.GetUserByID(txCtx, u.ID)
		if err != nil {
			return err
		}
		next = fresh
		return a.recorder.Updated(txCtx, audit.EntityUser, u.UUID, snapshot, audit.Snapshot(core.ToResp(fresh)))
	}); err != nil {
		logger.Errorf(ctx, "update user %s err: %+v", u.UUID, err)
		return nil, err
	}
	return core.ToResp(next), nil
}

func (a *accountImpl) Delete(ctx context.Context, id uuid.UUID) error {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResUser, access.ActDestroy, nil); err != nil {
		return err
	}
	u, err := a.accountStore.GetUserByUUID(ctx, id)
	if err != nil {
		return err
	}
	if u.ID == c.ID {
		return code.ValidationErr.WithMsg("you cannot delete your own account")
	}
	count, err := a.accountStore.CountManagedProcedures(ctx, u.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return code.ProjectManagerInUseErr.WithMsgf("user still manages %d project procedure(s)", count)
	}
	return a.accountStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := a.accountStore.DeleteUser(txCtx, u.ID); err != nil {
			return err
		}
		return a.recorder.Deleted(txCtx, audit.EntityUser, u.UUID, core.ToResp(u))
	})
}

func (a *accountImpl) checkUsername(ctx context.Context, username string, selfID int64) error {
	other, err := a.accountStore.GetUserByUsername(ctx, username)
	switch {
	case code.Of(err) == code.RecordNotFound:
		return nil
	case err != nil:
		return err
	case other.ID != selfID:
		return code.ValidationErr.WithField("username", "a user with that username already exists")
	}
	return nil
}

// applyUser merges req into a copy of cur under shape and returns the resulting user and role
// set. cur and req are not modified.
func applyUser(shape access.Shape, cur *model.User, req *core.UserReq, partial bool) (*model.User, []common.LabRole, error) {
	next := *cur
	next.Roles = nil
	roles := cur.RoleSet().List()

	if !partial && req.Username == nil && shape != access.ShapeSelf {
		return nil, nil, code.ValidationErr.WithField("username", "this field is required")
	}

	if req.Username != nil && shape != access.ShapeSelf {
		name := strings.TrimSpace(*req.Username)
		if name == "" {
			return nil, nil, code.ValidationErr.WithField("username", "this field may not be blank")
		}
		next.Username = name
	}
	if req.Email != nil {
		next.Email = strings.TrimSpace(*req.Email)
	}
	if req.FirstName != nil {
		next.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		next.LastName = *req.LastName
	}
	if shape == access.ShapeAdmin {
		if req.IsStaff != nil {
			next.IsStaff = *req.IsStaff
		}
		if req.IsActive != nil {
			next.IsActive = *req.IsActive
		}
	}

	if req.Roles != nil {
		current := cur.RoleSet()
		for _, r := range *req.Roles {
			if !r.Valid() {
				return nil, nil, code.ValidationErr.WithField("roles", fmt.Sprintf("unknown role %q", r))
			}
			if shape == access.ShapeSelf && !current.Has(r) {
				return nil, nil, code.ValidationErr.WithField("roles", "only administrators can grant roles")
			}
		}
		roles = common.NewRoleSet(*req.Roles...).List()
	}

	if !next.IsStaff && len(roles) == 0 {
		return nil, nil, code.UserRoleErr.WithField("roles", "at least one lab role is required")
	}
	return &next, roles, nil
}

func sameRoles(a, b common.RoleSet) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if !b.Has(r) {
			return false
		}
	}
	return true
}
