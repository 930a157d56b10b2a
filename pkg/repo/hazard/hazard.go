package hazard

import (
	"context"

	"gorm.io/gorm"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type hazardImpl struct {
	*repo.BaseDB
}

func New() repo.HazardRepo {
	return &hazardImpl{BaseDB: repo.NewBaseDB()}
}

// page counts and loads one page of query into dest.
func page(query *gorm.DB, dest any, order string, offset, limit int) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	if err := query.Order(order).Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return total, nil
}

func first(query *gorm.DB, dest any, id uuid.UUID) error {
	if err := query.Where("uuid = ?", id).First(dest).Error; err != nil {
		return repo.TranslateErr(err, code.QueryRecordErr)
	}
	return nil
}

func (h *hazardImpl) ListPictograms(ctx context.Context, offset, limit int) ([]*model.Pictogram, int64, error) {
	datas := make([]*model.Pictogram, 0, limit)
	total, err := page(h.DBWithContext(ctx).Model(&model.Pictogram{}), &datas, "pictogram asc", offset, limit)
	return datas, total, err
}

func (h *hazardImpl) GetPictogram(ctx context.Context, id uuid.UUID) (*model.Pictogram, error) {
	data := &model.Pictogram{}
	return data, first(h.DBWithContext(ctx), data, id)
}

func (h *hazardImpl) ListClpClassifications(ctx context.Context, offset, limit int) ([]*model.ClpClassification, int64, error) {
	datas := make([]*model.ClpClassification, 0, limit)
	query := h.DBWithContext(ctx).Model(&model.ClpClassification{}).Preload("Pictogram")
	total, err := page(query, &datas, "classification asc", offset, limit)
	return datas, total, err
}

func (h *hazardImpl) GetClpClassification(ctx context.Context, id uuid.UUID) (*model.ClpClassification, error) {
	data := &model.ClpClassification{}
	return data, first(h.DBWithContext(ctx).Preload("Pictogram"), data, id)
}

func (h *hazardImpl) ListHazardStatements(ctx context.Context, search string, offset, limit int) ([]*model.HazardStatement, int64, error) {
	datas := make([]*model.HazardStatement, 0, limit)
	query := h.DBWithContext(ctx).Model(&model.HazardStatement{}).Preload("ClpClassification.Pictogram")
	if search != "" {
		query = query.Where("code LIKE ? OR phrase LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	total, err := page(query, &datas, "code asc", offset, limit)
	return datas, total, err
}

func (h *hazardImpl) GetHazardStatement(ctx context.Context, id uuid.UUID) (*model.HazardStatement, error) {
	data := &model.HazardStatement{}
	return data, first(h.DBWithContext(ctx).Preload("ClpClassification.Pictogram"), data, id)
}

func (h *hazardImpl) GetHazardStatements(ctx context.Context, ids []uuid.UUID) ([]*model.HazardStatement, error) {
	datas := make([]*model.HazardStatement, 0, len(ids))
	if len(ids) == 0 {
		return datas, nil
	}
	if err := h.DBWithContext(ctx).Preload("ClpClassification.Pictogram").
		Where("uuid IN ?", ids).Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func (h *hazardImpl) ListPrecautionaryStatements(ctx context.Context, search string, offset, limit int) ([]*model.PrecautionaryStatement, int64, error) {
	datas := make([]*model.PrecautionaryStatement, 0, limit)
	query := h.DBWithContext(ctx).Model(&model.PrecautionaryStatement{})
	if search != "" {
		query = query.Where("code LIKE ? OR phrase LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	total, err := page(query, &datas, "code asc", offset, limit)
	return datas, total, err
}

func (h *hazardImpl) GetPrecautionaryStatement(ctx context.Context, id uuid.UUID) (*model.PrecautionaryStatement, error) {
	data := &model.PrecautionaryStatement{}
	return data, first(h.DBWithContext(ctx), data, id)
}

func (h *hazardImpl) GetPrecautionaryStatements(ctx context.Context, ids []uuid.UUID) ([]*model.PrecautionaryStatement, error) {
	datas := make([]*model.PrecautionaryStatement, 0, len(ids))
	if len(ids) == 0 {
		return datas, nil
	}
	if err := h.DBWithContext(ctx).Where("uuid IN ?", ids).Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func (h *hazardImpl) RequireUsageRecord(ctx context.Context, statementID int64) (int64, error) {
	res := h.DBWithContext(ctx).Model(&model.Reagent{}).
		Where("is_usage_record_required = ?", false).
		Where("id IN (?)", h.DBWithContext(ctx).Table("reagent_hazard_statement").
			Select("reagent_id").Where("hazard_statement_id = ?", statementID)).
		UpdateColumn("is_usage_record_required", true)
	if res.Error != nil {
		return 0, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}
