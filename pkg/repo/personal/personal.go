package personal

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type personalImpl struct {
	*repo.BaseDB
}

func New() repo.PersonalReagentRepo {
	return &personalImpl{BaseDB: repo.NewBaseDB()}
}

func withDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Reagent.Producer").
		Preload("Reagent.Unit").
		Preload("Reagent.HazardStatements.ClpClassification.Pictogram").
		Preload("MainOwner").
		Preload("ProjectProcedure.Workers").
		Preload("Laboratory")
}

func (p *personalImpl) ListPersonalReagents(ctx context.Context, q repo.PersonalReagentQuery) ([]*model.PersonalReagent, int64, error) {
	query := p.DBWithContext(ctx).Model(&model.PersonalReagent{})
	if q.OwnerID != nil {
		query = query.Where("main_owner_id = ?", *q.OwnerID)
	}
	if q.ReagentID != nil {
		query = query.Where("reagent_id = ?", *q.ReagentID)
	}
	if q.ProjectID != nil {
		query = query.Where("project_procedure_id = ?", *q.ProjectID)
	}
	if q.LaboratoryID != nil {
		query = query.Where("laboratory_id = ?", *q.LaboratoryID)
	}
	if q.Archived != nil {
		query = query.Where("is_archived = ?", *q.Archived)
	}
	if q.Critical != nil {
		query = query.Where("is_critical = ?", *q.Critical)
	}
	if q.ExpiresBefore != nil {
		query = query.Where("expiration_date IS NOT NULL AND expiration_date < ?", *q.ExpiresBefore)
	}
	if q.Search != "" {
		query = query.Where("reagent_id IN (?)",
			p.DBWithContext(ctx).Model(&model.Reagent{}).Select("id").Where("name LIKE ?", "%"+q.Search+"%"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	order := q.OrderBy
	if order == "" {
		order = "id desc"
	}
	datas := make([]*model.PersonalReagent, 0, q.Limit)
	query = withDetail(query).Order(order).Offset(q.Offset)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (p *personalImpl) GetPersonalReagent(ctx context.Context, id uuid.UUID) (*model.PersonalReagent, error) {
	data := &model.PersonalReagent{}
	if err := withDetail(p.DBWithContext(ctx)).Where("uuid = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (p *personalImpl) GetPersonalReagentByID(ctx context.Context, id int64) (*model.PersonalReagent, error) {
	data := &model.PersonalReagent{}
	if err := withDetail(p.DBWithContext(ctx)).Where("id = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (p *personalImpl) LockPersonalReagent(ctx context.Context, id int64) (*model.PersonalReagent, error) {
	data := &model.PersonalReagent{}
	query := p.DBWithContext(ctx)
	if query.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Where("id = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (p *personalImpl) UpdatePersonalReagent(ctx context.Context, id int64, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	res := p.DBWithContext(ctx).Model(&model.PersonalReagent{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		logger.Errorf(ctx, "UpdatePersonalReagent err: %+v", res.Error)
		return repo.TranslateErr(res.Error, code.UpdateDataErr)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}

func (p *personalImpl) CountForeignStock(ctx context.Context, projectID int64, ownerIDs []int64) (int64, error) {
	query := p.DBWithContext(ctx).Model(&model.PersonalReagent{}).Where("project_procedure_id = ?", projectID)
	if len(ownerIDs) > 0 {
		query = query.Where("main_owner_id NOT IN ?", ownerIDs)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return total, nil
}

func (p *personalImpl) DeletePersonalReagent(ctx context.Context, id int64) error {
	return p.ExecTx(ctx, func(txCtx context.Context) error {
		tx := p.DBWithContext(txCtx)
		if err := tx.Where("personal_reagent_id = ?", id).Delete(&model.ReagentRequest{}).Error; err != nil {
			return code.DeleteDataErr.WithErr(err)
		}
		res := tx.Delete(&model.PersonalReagent{}, id)
		if res.Error != nil {
			return repo.TranslateErr(res.Error, code.DeleteDataErr)
		}
		if res.RowsAffected == 0 {
			return code.RecordNotFound
		}
		return nil
	})
}
