package hazard

import (
	"context"
	"strings"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	core "github.com/reagentlab/tracker/pkg/core/hazard"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoHazard "github.com/reagentlab/tracker/pkg/repo/hazard"
)

type hazardImpl struct {
	hazardStore repo.HazardRepo
	recorder    *audit.Recorder
}

func New() core.Service {
	return &hazardImpl{
		hazardStore: repoHazard.New(),
		recorder:    audit.NewRecorder(repoAudit.New()),
	}
}

func (h *hazardImpl) authorize(ctx context.Context, act access.Action) error {
	return access.Authorize(access.Current(ctx), access.ResHazard, act, nil)
}

func updateAct(partial bool) access.Action {
	if partial {
		return access.ActPartialUpdate
	}
	return access.ActUpdate
}

func pageOf[T any](req *core.ListReq, datas []T, total int64) *common.PageResp[[]T] {
	return &common.PageResp[[]T]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}
}

// text resolves a string input, a missing value is an error when required.
func text(field string, cur string, v *string, required bool) (string, error) {
	if v == nil {
		if required {
			return "", code.ValidationErr.WithField(field, "this field is required")
		}
		return cur, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", code.ValidationErr.WithField(field, "this field may not be blank")
	}
	return s, nil
}

func uniqueOn(field string) func(error) error {
	return func(err error) error {
		if code.Of(err) == code.ConflictErr {
			return code.ValidationErr.WithField(field, "an entry with this value already exists")
		}
		return err
	}
}

func (h *hazardImpl) create(ctx context.Context, entity string, data model.BaseDBModel, conflict func(error) error) error {
	return h.hazardStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := h.hazardStore.CreateData(txCtx, data); err != nil {
			return conflict(err)
		}
		return h.recorder.Created(txCtx, entity, data.GetUUID(), data)
	})
}

func (h *hazardImpl) update(ctx context.Context, entity string, cur model.BaseDBModel, write any, after any,
	conflict func(error) error, keys ...string,
) error {
	before := audit.Snapshot(cur)
	return h.hazardStore.ExecTx(ctx, func(txCtx context.Context) error {
		keys = append(keys, "updated_at")
		if err := h.hazardStore.UpdateData(txCtx, write, map[string]any{"id": cur.GetID()}, keys...); err != nil {
			return conflict(err)
		}
		return h.recorder.Updated(txCtx, entity, cur.GetUUID(), before, audit.Snapshot(after))
	})
}

func (h *hazardImpl) remove(ctx context.Context, entity string, tableModel any, cur model.BaseDBModel) error {
	return h.hazardStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := h.hazardStore.DelData(txCtx, tableModel, map[string]any{"id": cur.GetID()}); err != nil {
			return err
		}
		return h.recorder.Deleted(txCtx, entity, cur.GetUUID(), cur)
	})
}

// pictograms

func (h *hazardImpl) ListPictograms(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*model.Pictogram], error) {
	if err := h.authorize(ctx, access.ActList); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := h.hazardStore.ListPictograms(ctx, req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return pageOf(req, datas, total), nil
}

func (h *hazardImpl) GetPictogram(ctx context.Context, id uuid.UUID) (*model.Pictogram, error) {
	if err := h.authorize(ctx, access.ActRetrieve); err != nil {
		return nil, err
	}
	return h.hazardStore.GetPictogram(ctx, id)
}

func applyPictogram(cur *model.Pictogram, req *core.PictogramReq, required bool) (*model.Pictogram, error) {
	next := *cur
	name, err := text("pictogram", cur.Pictogram, req.Pictogram, required)
	if err != nil {
		return nil, err
	}
	next.Pictogram = name
	if req.ReprImage != nil {
		next.ReprImage = req.ReprImage
	}
	return &next, nil
}

func (h *hazardImpl) CreatePictogram(ctx context.Context, req *core.PictogramReq) (*model.Pictogram, error) {
	if err := h.authorize(ctx, access.ActCreate); err != nil {
		return nil, err
	}
	data, err := applyPictogram(&model.Pictogram{}, req, true)
	if err != nil {
		return nil, err
	}
	if err := h.create(ctx, audit.EntityPictogram, data, uniqueOn("pictogram")); err != nil {
		return nil, err
	}
	return data, nil
}

func (h *hazardImpl) UpdatePictogram(ctx context.Context, id uuid.UUID, req *core.PictogramReq, partial bool) (*model.Pictogram, error) {
	if err := h.authorize(ctx, updateAct(partial)); err != nil {
		return nil, err
	}
	cur, err := h.hazardStore.GetPictogram(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := applyPictogram(cur, req, !partial)
	if err != nil {
		return nil, err
	}
	if err := h.update(ctx, audit.EntityPictogram, cur, next, next, uniqueOn("pictogram"),
		"pictogram", "repr_image"); err != nil {
		return nil, err
	}
	return next, nil
}

func (h *hazardImpl) DeletePictogram(ctx context.Context, id uuid.UUID) error {
	if err := h.authorize(ctx, access.ActDestroy); err != nil {
		return err
	}
	cur, err := h.hazardStore.GetPictogram(ctx, id)
	if err != nil {
		return err
	}
	return h.remove(ctx, audit.EntityPictogram, &model.Pictogram{}, cur)
}

// clp classifications

func (h *hazardImpl) ListClpClassifications(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*model.ClpClassification], error) {
	if err := h.authorize(ctx, access.ActList); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := h.hazardStore.ListClpClassifications(ctx, req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return pageOf(req, datas, total), nil
}

func (h *hazardImpl) GetClpClassification(ctx context.Context, id uuid.UUID) (*model.ClpClassification, error) {
	if err := h.authorize(ctx, access.ActRetrieve); err != nil {
		return nil, err
	}
	return h.hazardStore.GetClpClassification(ctx, id)
}

func (h *hazardImpl) applyClp(ctx context.Context, cur *model.ClpClassification, req *core.ClpClassificationReq, required bool) (*model.ClpClassification, error) {
	next := *cur
	name, err := text("classification", cur.Classification, req.Classification, required)
	if err != nil {
		return nil, err
	}
	next.Classification = name
	if req.ClpSymbol != nil {
		next.ClpSymbol = req.ClpSymbol
	}
	if req.Pictogram != nil {
		p, err := h.hazardStore.GetPictogram(ctx, *req.Pictogram)
		if err != nil {
			if code.Of(err) == code.RecordNotFound {
				return nil, code.ValidationErr.WithField("pictogram", "unknown pictogram")
			}
			return nil, err
		}
		next.PictogramID = &p.ID
		next.Pictogram = p
	}
	return &next, nil
}

func (h *hazardImpl) CreateClpClassification(ctx context.Context, req *core.ClpClassificationReq) (*model.ClpClassification, error) {
	if err := h.authorize(ctx, access.ActCreate); err != nil {
		return nil, err
	}
	data, err := h.applyClp(ctx, &model.ClpClassification{}, req, true)
	if err != nil {
		return nil, err
	}
	write := *data
	write.Pictogram = nil
	if err := h.create(ctx, audit.EntityClpClassification, &write, uniqueOn("classification")); err != nil {
		return nil, err
	}
	data.BaseModel = write.BaseModel
	return data, nil
}

func (h *hazardImpl) UpdateClpClassification(ctx context.Context, id uuid.UUID, req *core.ClpClassificationReq, partial bool) (*model.ClpClassification, error) {
	if err := h.authorize(ctx, updateAct(partial)); err != nil {
		return nil, err
	}
	cur, err := h.hazardStore.GetClpClassification(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := h.applyClp(ctx, cur, req, !partial)
	if err != nil {
		return nil, err
	}
	write := *next
	write.Pictogram = nil
	if err := h.update(ctx, audit.EntityClpClassification, cur, &write, next, uniqueOn("classification"),
		"classification", "clp_symbol", "pictogram_id"); err != nil {
		return nil, err
	}
	return next, nil
}

func (h *hazardImpl) DeleteClpClassification(ctx context.Context, id uuid.UUID) error {
	if err := h.authorize(ctx, access.ActDestroy); err != nil {
		return err
	}
	cur, err := h.hazardStore.GetClpClassification(ctx, id)
	if err != nil {
		return err
	}
	return h.remove(ctx, audit.EntityClpClassification, &model.ClpClassification{}, cur)
}

// hazard statements

func (h *hazardImpl) ListHazardStatements(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*model.HazardStatement], error) {
	if err := h.authorize(ctx, access.ActList); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := h.hazardStore.ListHazardStatements(ctx, strings.TrimSpace(req.Search), req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return pageOf(req, datas, total), nil
}

func (h *hazardImpl) GetHazardStatement(ctx context.Context, id uuid.UUID) (*model.HazardStatement, error) {
	if err := h.authorize(ctx, access.ActRetrieve); err != nil {
		return nil, err
	}
	return h.hazardStore.GetHazardStatement(ctx, id)
}

func (h *hazardImpl) applyStatement(ctx context.Context, cur *model.HazardStatement, req *core.HazardStatementReq, required bool) (*model.HazardStatement, error) {
	next := *cur
	var err error
	if next.Code, err = text("code", cur.Code, req.Code, required); err != nil {
		return nil, err
	}
	if next.Phrase, err = text("phrase", cur.Phrase, req.Phrase, required); err != nil {
		return nil, err
	}
	if req.SignalWord != nil {
		if !req.SignalWord.Valid() {
			return nil, code.ValidationErr.WithField("signal_word", "must be Warning, Danger or empty")
		}
		next.SignalWord = *req.SignalWord
	}
	if req.IsUsageRecordRequired != nil {
		next.IsUsageRecordRequired = *req.IsUsageRecordRequired
	}
	if req.ClpClassification != nil {
		clp, err := h.hazardStore.GetClpClassification(ctx, *req.ClpClassification)
		if err != nil {
			if code.Of(err) == code.RecordNotFound {
				return nil, code.ValidationErr.WithField("clp_classification", "unknown clp classification")
			}
			return nil, err
		}
		next.ClpClassificationID = &clp.ID
		next.ClpClassification = clp
	}
	return &next, nil
}

func (h *hazardImpl) CreateHazardStatement(ctx context.Context, req *core.HazardStatementReq) (*model.HazardStatement, error) {
	if err := h.authorize(ctx, access.ActCreate); err != nil {
		return nil, err
	}
	data, err := h.applyStatement(ctx, &model.HazardStatement{}, req, true)
	if err != nil {
		return nil, err
	}
	write := *data
	write.ClpClassification = nil
	if err := h.create(ctx, audit.EntityHazardStatement, &write, uniqueOn("code")); err != nil {
		return nil, err
	}
	data.BaseModel = write.BaseModel
	return data, nil
}

func (h *hazardImpl) UpdateHazardStatement(ctx context.Context, id uuid.UUID, req *core.HazardStatementReq, partial bool) (*model.HazardStatement, error) {
	if err := h.authorize(ctx, updateAct(partial)); err != nil {
		return nil, err
	}
	cur, err := h.hazardStore.GetHazardStatement(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := h.applyStatement(ctx, cur, req, !partial)
	if err != nil {
		return nil, err
	}
	write := *next
	write.ClpClassification = nil
	if err := h.hazardStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := h.update(txCtx, audit.EntityHazardStatement, cur, &write, next, uniqueOn("code"),
			"code", "phrase", "signal_word", "is_usage_record_required", "clp_classification_id"); err != nil {
			return err
		}
		if cur.IsUsageRecordRequired || !next.IsUsageRecordRequired {
			return nil
		}
		flagged, err := h.hazardStore.RequireUsageRecord(txCtx, cur.ID)
		if err != nil {
			return err
		}
		if flagged > 0 {
			logger.Infof(txCtx, "hazard statement %s now requires usage records, %d reagent(s) flagged", next.Code, flagged)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return next, nil
}

func (h *hazardImpl) DeleteHazardStatement(ctx context.Context, id uuid.UUID) error {
	if err := h.authorize(ctx, access.ActDestroy); err != nil {
		return err
	}
	cur, err := h.hazardStore.GetHazardStatement(ctx, id)
	if err != nil {
		return err
	}
	return h.remove(ctx, audit.EntityHazardStatement, &model.HazardStatement{}, cur)
}

// precautionary statements

func (h *hazardImpl) ListPrecautionaryStatements(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*model.PrecautionaryStatement], error) {
	if err := h.authorize(ctx, access.ActList); err != nil {
		return nil, err
	}
	req.Normalize()
	datas, total, err := h.hazardStore.ListPrecautionaryStatements(ctx, strings.TrimSpace(req.Search), req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return pageOf(req, datas, total), nil
}

func (h *hazardImpl) GetPrecautionaryStatement(ctx context.Context, id uuid.UUID) (*model.PrecautionaryStatement, error) {
	if err := h.authorize(ctx, access.ActRetrieve); err != nil {
		return nil, err
	}
	return h.hazardStore.GetPrecautionaryStatement(ctx, id)
}

func applyPrecautionary(cur *model.PrecautionaryStatement, req *core.PrecautionaryStatementReq, required bool) (*model.PrecautionaryStatement, error) {
	next := *cur
	var err error
	if next.Code, err = text("code", cur.Code, req.Code, required); err != nil {
		return nil, err
	}
	if next.Phrase, err = text("phrase", cur.Phrase, req.Phrase, required); err != nil {
		return nil, err
	}
	return &next, nil
}

func (h *hazardImpl) CreatePrecautionaryStatement(ctx context.Context, req *core.PrecautionaryStatementReq) (*model.PrecautionaryStatement, error) {
	if err := h.authorize(ctx, access.ActCreate); err != nil {
		return nil, err
	}
	data, err := applyPrecautionary(&model.PrecautionaryStatement{}, req, true)
	if err != nil {
		return nil, err
	}
	if err := h.create(ctx, audit.EntityPrecautionaryStatement, data, uniqueOn("code")); err != nil {
		return nil, err
	}
	return data, nil
}

func (h *hazardImpl) UpdatePrecautionaryStatement(ctx context.Context, id uuid.UUID, req *core.PrecautionaryStatementReq, partial bool) (*model.PrecautionaryStatement, error) {
	if err := h.authorize(ctx, updateAct(partial)); err != nil {
		return nil, err
	}
	cur, err := h.hazardStore.GetPrecautionaryStatement(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := applyPrecautionary(cur, req, !partial)
	if err != nil {
		return nil, err
	}
	if err := h.update(ctx, audit.EntityPrecautionaryStatement, cur, next, next, uniqueOn("code"),
		"code", "phrase"); err != nil {
		return nil, err
	}
	return next, nil
}

func (h *hazardImpl) DeletePrecautionaryStatement(ctx context.Context, id uuid.UUID) error {
	if err := h.authorize(ctx, access.ActDestroy); err != nil {
		return err
	}
	cur, err := h.hazardStore.GetPrecautionaryStatement(ctx, id)
	if err != nil {
		return err
	}
	return h.remove(ctx, audit.EntityPrecautionaryStatement, &model.PrecautionaryStatement{}, cur)
}
