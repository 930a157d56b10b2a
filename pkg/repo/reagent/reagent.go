package reagent

import (
	"context"

	"gorm.io/gorm"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type reagentImpl struct {
	*repo.BaseDB
}

func NewReagentRepo() repo.ReagentRepo {
	return &reagentImpl{BaseDB: repo.NewBaseDB()}
}

func withDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Producer").
		Preload("ReagentType").
		Preload("Unit").
		Preload("Concentration").
		Preload("PurityQuality").
		Preload("StorageConditions").
		Preload("HazardStatements.ClpClassification.Pictogram").
		Preload("PrecautionaryStatements")
}

func (r *reagentImpl) ListReagents(ctx context.Context, q repo.ReagentQuery) ([]*model.Reagent, int64, error) {
	query := r.DBWithContext(ctx).Model(&model.Reagent{})
	if q.NameLike != "" {
		query = query.Where("name LIKE ?", "%"+q.NameLike+"%")
	}
	if q.CAS != "" {
		query = query.Where("cas = ?", q.CAS)
	}
	if q.ProducerID != 0 {
		query = query.Where("producer_id = ?", q.ProducerID)
	}
	if q.Validated != nil {
		query = query.Where("is_validated_by_admin = ?", *q.Validated)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	order := q.OrderBy
	if order == "" {
		order = "id desc"
	}
	list := make([]*model.Reagent, 0, q.Limit)
	if err := withDetail(query).Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *reagentImpl) GetReagent(ctx context.Context, id uuid.UUID) (*model.Reagent, error) {
	data := &model.Reagent{}
	if err := withDetail(r.DBWithContext(ctx)).Where("uuid = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (r *reagentImpl) GetReagentByID(ctx context.Context, id int64) (*model.Reagent, error) {
	data := &model.Reagent{}
	if err := withDetail(r.DBWithContext(ctx)).Where("id = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (r *reagentImpl) SaveReagent(ctx context.Context, data *model.Reagent, links *repo.ReagentLinks) error {
	return r.ExecTx(ctx, func(txCtx context.Context) error {
		tx := r.DBWithContext(txCtx)
		// associations are written explicitly below
		if err := tx.Omit(
			"Producer", "ReagentType", "Unit", "Concentration", "PurityQuality",
			"StorageConditions", "HazardStatements", "PrecautionaryStatements",
		).Save(data).Error; err != nil {
			logger.Errorf(txCtx, "SaveReagent err: %+v", err)
			return repo.TranslateErr(err, code.CreateDataErr)
		}
		if links == nil {
			return nil
		}
		if err := tx.Model(data).Association("StorageConditions").Replace(links.StorageConditions); err != nil {
			return code.UpdateDataErr.WithErr(err)
		}
		if err := tx.Model(data).Association("HazardStatements").Replace(links.HazardStatements); err != nil {
			return code.UpdateDataErr.WithErr(err)
		}
		if err := tx.Model(data).Association("PrecautionaryStatements").Replace(links.PrecautionaryStatements); err != nil {
			return code.UpdateDataErr.WithErr(err)
		}
		return nil
	})
}

func (r *reagentImpl) DeleteReagent(ctx context.Context, id int64) error {
	return r.ExecTx(ctx, func(txCtx context.Context) error {
		tx := r.DBWithContext(txCtx)
		for _, table := range []string{"reagent_storage_condition", "reagent_hazard_statement", "reagent_precautionary_statement"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE reagent_id = ?", id).Error; err != nil {
				return code.DeleteDataErr.WithErr(err)
			}
		}
		res := tx.Delete(&model.Reagent{}, id)
		if res.Error != nil {
			return repo.TranslateErr(res.Error, code.DeleteDataErr)
		}
		if res.RowsAffected == 0 {
			return code.RecordNotFound
		}
		return nil
	})
}
