package reference

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type referenceImpl struct {
	*repo.BaseDB
}

func New() repo.ReferenceRepo {
	return &referenceImpl{BaseDB: repo.NewBaseDB()}
}

func (r *referenceImpl) ListFields(ctx context.Context, q repo.FieldQuery) ([]*model.ReagentField, int64, error) {
	query := r.DBWithContext(ctx).Model(&model.ReagentField{}).Where("kind = ?", q.Kind)
	if q.Search != "" {
		query = query.Where("name LIKE ?", "%"+q.Search+"%")
	}
	if q.Validated != nil {
		query = query.Where("is_validated_by_admin = ?", *q.Validated)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	datas := make([]*model.ReagentField, 0, q.Limit)
	if err := query.Order("name asc").Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (r *referenceImpl) GetField(ctx context.Context, kind model.FieldKind, id uuid.UUID) (*model.ReagentField, error) {
	data := &model.ReagentField{}
	if err := r.DBWithContext(ctx).Where("kind = ? AND uuid = ?", kind, id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (r *referenceImpl) GetFieldsByUUIDs(ctx context.Context, kind model.FieldKind, ids []uuid.UUID) ([]*model.ReagentField, error) {
	datas := make([]*model.ReagentField, 0, len(ids))
	if len(ids) == 0 {
		return datas, nil
	}
	if err := r.DBWithContext(ctx).Where("kind = ? AND uuid IN ?", kind, ids).Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func (r *referenceImpl) ListLaboratories(ctx context.Context, search string, offset, limit int) ([]*model.Laboratory, int64, error) {
	query := r.DBWithContext(ctx).Model(&model.Laboratory{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	datas := make([]*model.Laboratory, 0, limit)
	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (r *referenceImpl) GetLaboratory(ctx context.Context, id uuid.UUID) (*model.Laboratory, error) {
	data := &model.Laboratory{}
	if err := r.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}
