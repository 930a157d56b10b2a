package project

import (
	"context"

	"gorm.io/gorm"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type projectImpl struct {
	*repo.BaseDB
}

func New() repo.ProjectRepo {
	return &projectImpl{BaseDB: repo.NewBaseDB()}
}

func withDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Manager.Roles").Preload("Workers.Roles")
}

func (p *projectImpl) ListProjects(ctx context.Context, q repo.ProjectQuery) ([]*model.ProjectProcedure, int64, error) {
	query := p.DBWithContext(ctx).Model(&model.ProjectProcedure{})
	if q.MemberID != nil {
		query = query.Where("manager_id = ? OR id IN (?)", *q.MemberID,
			p.DBWithContext(ctx).Table("project_procedure_worker").
				Select("project_procedure_id").Where("user_id = ?", *q.MemberID))
	}
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
	datas := make([]*model.ProjectProcedure, 0, q.Limit)
	if err := withDetail(query).Order("name asc").Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (p *projectImpl) GetProject(ctx context.Context, id uuid.UUID) (*model.ProjectProcedure, error) {
	data := &model.ProjectProcedure{}
	if err := withDetail(p.DBWithContext(ctx)).Where("uuid = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (p *projectImpl) GetProjectByID(ctx context.Context, id int64) (*model.ProjectProcedure, error) {
	data := &model.ProjectProcedure{}
	if err := withDetail(p.DBWithContext(ctx)).Where("id = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (p *projectImpl) SaveProject(ctx context.Context, data *model.ProjectProcedure, workers []*model.User) error {
	return p.ExecTx(ctx, func(txCtx context.Context) error {
		tx := p.DBWithContext(txCtx)
		if err := tx.Omit("Manager", "Workers").Save(data).Error; err != nil {
			logger.Errorf(txCtx, "SaveProject err: %+v", err)
			return repo.TranslateErr(err, code.CreateDataErr)
		}
		if err := tx.Model(data).Association("Workers").Replace(workers); err != nil {
			logger.Errorf(txCtx, "SaveProject workers err: %+v", err)
			return code.UpdateDataErr.WithErr(err)
		}
		data.Workers = workers
		return nil
	})
}

func (p *projectImpl) DeleteProject(ctx context.Context, id int64) error {
	return p.ExecTx(ctx, func(txCtx context.Context) error {
		tx := p.DBWithContext(txCtx)
		if err := tx.Exec("DELETE FROM project_procedure_worker WHERE project_procedure_id = ?", id).Error; err != nil {
			return code.DeleteDataErr.WithErr(err)
		}
		res := tx.Delete(&model.ProjectProcedure{}, id)
		if res.Error != nil {
			return repo.TranslateErr(res.Error, code.DeleteDataErr)
		}
		if res.RowsAffected == 0 {
			return code.RecordNotFound
		}
		return nil
	})
}
