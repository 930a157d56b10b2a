package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	core "github.com/reagentlab/tracker/pkg/core/reference"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoReference "github.com/reagentlab/tracker/pkg/repo/reference"
)

type referenceImpl struct {
	refStore repo.ReferenceRepo
	recorder *audit.Recorder
}

func New() core.Service {
	return &referenceImpl{
		refStore: repoReference.New(),
		recorder: audit.NewRecorder(repoAudit.New()),
	}
}

func checkKind(kind model.FieldKind) error {
	if !kind.Valid() {
		return code.RecordNotFound.WithMsgf("unknown reagent field kind %q", kind)
	}
	return nil
}

func (r *referenceImpl) ListFields(ctx context.Context, kind model.FieldKind, req *core.FieldListReq) (*common.PageResp[[]*model.ReagentField], error) {
	if err := access.Authorize(access.Current(ctx), access.ResReagentField, access.ActList, nil); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := r.refStore.ListFields(ctx, repo.FieldQuery{
		Kind:      kind,
		Search:    strings.TrimSpace(req.Search),
		Validated: req.Validated,
		Offset:    req.Offest(),
		Limit:     req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &common.PageResp[[]*model.ReagentField]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (r *referenceImpl) GetField(ctx context.Context, kind model.FieldKind, id uuid.UUID) (*model.ReagentField, error) {
	if err := access.Authorize(access.Current(ctx), access.ResReagentField, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return r.refStore.GetField(ctx, kind, id)
}

func (r *referenceImpl) CreateField(ctx context.Context, kind model.FieldKind, req *core.FieldReq) (*model.ReagentField, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentField, access.ActCreate, nil); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResReagentField, access.ActCreate, nil)

	data, err := applyField(shape, &model.ReagentField{Kind: kind}, req, false)
	if err != nil {
		return nil, err
	}
	if err := r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.CreateData(txCtx, data); err != nil {
			return fieldConflict(err)
		}
		return r.recorder.Created(txCtx, audit.EntityReagentField, data.UUID, data)
	}); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *referenceImpl) UpdateField(ctx context.Context, kind model.FieldKind, id uuid.UUID, req *core.FieldReq, partial bool) (*model.ReagentField, error) {
	c := access.Current(ctx)
	act := access.ActUpdate
	if partial {
		act = access.ActPartialUpdate
	}
	if err := access.Authorize(c, access.ResReagentField, act, nil); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	cur, err := r.refStore.GetField(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	next, err := applyField(access.SelectShape(c, access.ResReagentField, act, nil), cur, req, partial)
	if err != nil {
		return nil, err
	}
	if err := r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.UpdateData(txCtx, next, map[string]any{"id": cur.ID},
			"name", "abbreviation", "is_validated_by_admin", "updated_at"); err != nil {
			return fieldConflict(err)
		}
		return r.recorder.Updated(txCtx, audit.EntityReagentField, cur.UUID, audit.Snapshot(cur), audit.Snapshot(next))
	}); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *referenceImpl) DeleteField(ctx context.Context, kind model.FieldKind, id uuid.UUID) error {
	if err := access.Authorize(access.Current(ctx), access.ResReagentField, access.ActDestroy, nil); err != nil {
		return err
	}
	if err := checkKind(kind); err != nil {
		return err
	}
	cur, err := r.refStore.GetField(ctx, kind, id)
	if err != nil {
		return err
	}
	return r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.DelData(txCtx, &model.ReagentField{}, map[string]any{"id": cur.ID}); err != nil {
			return err
		}
		return r.recorder.Deleted(txCtx, audit.EntityReagentField, cur.UUID, cur)
	})
}

// applyField returns a copy of cur with req merged in. Contributors can never mark an entry
// validated, administrators validate by default.
func applyField(shape access.Shape, cur *model.ReagentField, req *core.FieldReq, partial bool) (*model.ReagentField, error) {
	next := *cur
	if req.Name == nil && (!partial || cur.ID == 0) {
		return nil, code.ValidationErr.WithField("name", "this field is required")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, code.ValidationErr.WithField("name", "this field may not be blank")
		}
		next.Name = name
	}
	if req.Abbreviation != nil {
		next.Abbreviation = req.Abbreviation
	}

	switch {
	case shape == access.ShapeContributor:
		next.IsValidatedByAdmin = false
	case req.IsValidatedByAdmin != nil:
		next.IsValidatedByAdmin = *req.IsValidatedByAdmin
	case cur.ID == 0:
		next.IsValidatedByAdmin = shape.Validated()
	}
	return &next, nil
}

func fieldConflict(err error) error {
	if code.Of(err) == code.ConflictErr {
		return code.ValidationErr.WithField("name", "an entry with this name already exists")
	}
	return err
}

func (r *referenceImpl) ListLaboratories(ctx context.Context, req *core.LabListReq) (*common.PageResp[[]*model.Laboratory], error) {
	if err := access.Authorize(access.Current(ctx), access.ResLaboratory, access.ActList, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := r.refStore.ListLaboratories(ctx, strings.TrimSpace(req.Search), req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return &common.PageResp[[]*model.Laboratory]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (r *referenceImpl) GetLaboratory(ctx context.Context, id uuid.UUID) (*model.Laboratory, error) {
	if err := access.Authorize(access.Current(ctx), access.ResLaboratory, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	return r.refStore.GetLaboratory(ctx, id)
}

func labName(req *core.LabReq) (string, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return "", code.ValidationErr.WithField("name", "this field is required")
	}
	return strings.TrimSpace(*req.Name), nil
}

func labConflict(err error, name string) error {
	if code.Of(err) == code.ConflictErr {
		return code.ValidationErr.WithField("name", fmt.Sprintf("laboratory %q already exists", name))
	}
	return err
}

func (r *referenceImpl) CreateLaboratory(ctx context.Context, req *core.LabReq) (*model.Laboratory, error) {
	if err := access.Authorize(access.Current(ctx), access.ResLaboratory, access.ActCreate, nil); err != nil {
		return nil, err
	}
	name, err := labName(req)
	if err != nil {
		return nil, err
	}
	data := &model.Laboratory{Name: name}
	if err := r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.CreateData(txCtx, data); err != nil {
			return labConflict(err, name)
		}
		return r.recorder.Created(txCtx, audit.EntityLaboratory, data.UUID, data)
	}); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *referenceImpl) UpdateLaboratory(ctx context.Context, id uuid.UUID, req *core.LabReq) (*model.Laboratory, error) {
	if err := access.Authorize(access.Current(ctx), access.ResLaboratory, access.ActUpdate, nil); err != nil {
		return nil, err
	}
	cur, err := r.refStore.GetLaboratory(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err := labName(req)
	if err != nil {
		return nil, err
	}
	next := *cur
	next.Name = name
	if err := r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.UpdateData(txCtx, &next, map[string]any{"id": cur.ID}, "name", "updated_at"); err != nil {
			return labConflict(err, name)
		}
		return r.recorder.Updated(txCtx, audit.EntityLaboratory, cur.UUID, audit.Snapshot(cur), audit.Snapshot(&next))
	}); err != nil {
		return nil, err
	}
	return &next, nil
}

func (r *referenceImpl) DeleteLaboratory(ctx context.Context, id uuid.UUID) error {
	if err := access.Authorize(access.Current(ctx), access.ResLaboratory, access.ActDestroy, nil); err != nil {
		return err
	}
	cur, err := r.refStore.GetLaboratory(ctx, id)
	if err != nil {
		return err
	}
	return r.refStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.refStore.DelData(txCtx, &model.Laboratory{}, map[string]any{"id": cur.ID}); err != nil {
			return err
		}
		return r.recorder.Deleted(txCtx, audit.EntityLaboratory, cur.UUID, cur)
	})
}
