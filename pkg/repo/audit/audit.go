package audit

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type auditImpl struct {
	*db.Datastore
}

func New() repo.AuditRepo {
	return &auditImpl{Datastore: db.DB()}
}

func (a *auditImpl) Append(ctx context.Context, records ...*model.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := a.DBWithContext(ctx).Create(&records).Error; err != nil {
		logger.Errorf(ctx, "append audit record err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (a *auditImpl) History(ctx context.Context, entity string, id uuid.UUID, offset, limit int) ([]*model.AuditRecord, int64, error) {
	query := a.DBWithContext(ctx).Model(&model.AuditRecord{}).
		Where("entity = ? AND entity_uuid = ?", entity, id)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	datas := make([]*model.AuditRecord, 0, limit)
	if err := query.Order("id desc").Offset(offset).Limit(limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}
