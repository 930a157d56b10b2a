package account

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type accountImpl struct {
	*repo.BaseDB
}

func New() repo.Account {
	return &accountImpl{BaseDB: repo.NewBaseDB()}
}

func (a *accountImpl) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return a.first(ctx, "id = ?", id)
}

func (a *accountImpl) GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return a.first(ctx, "uuid = ?", id)
}

func (a *accountImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return a.first(ctx, "username = ?", username)
}

func (a *accountImpl) first(ctx context.Context, query string, args ...any) (*model.User, error) {
	data := &model.User{}
	if err := a.DBWithContext(ctx).Preload("Roles").Where(query, args...).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (a *accountImpl) GetUsersByUUIDs(ctx context.Context, ids []uuid.UUID) ([]*model.User, error) {
	datas := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return datas, nil
	}
	if err := a.DBWithContext(ctx).Preload("Roles").Where("uuid IN ?", ids).Find(&datas).Error; err != nil {
		logger.Errorf(ctx, "GetUsersByUUIDs err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func (a *accountImpl) ListUsers(ctx context.Context, q repo.UserQuery) ([]*model.User, int64, error) {
	query := a.DBWithContext(ctx).Model(&model.User{})
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("username LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			like, like, like, like)
	}
	if q.Role != nil {
		query = query.Where("id IN (?)",
			a.DBWithContext(ctx).Model(&model.UserRole{}).Select("user_id").Where("role = ?", *q.Role))
	}
	if q.IsActive != nil {
		query = query.Where("is_active = ?", *q.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	datas := make([]*model.User, 0, q.Limit)
	if err := query.Preload("Roles").Order("username asc").
		Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (a *accountImpl) ReplaceRoles(ctx context.Context, userID int64, roles []common.LabRole) error {
	return a.ExecTx(ctx, func(txCtx context.Context) error {
		tx := a.DBWithContext(txCtx)
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
			logger.Errorf(txCtx, "ReplaceRoles delete err: %+v", err)
			return code.UpdateDataErr.WithErr(err)
		}
		if len(roles) == 0 {
			return nil
		}
		rows := make([]*model.UserRole, 0, len(roles))
		for _, r := range roles {
			rows = append(rows, &model.UserRole{UserID: userID, Role: r})
		}
		if err := tx.Create(&rows).Error; err != nil {
			logger.Errorf(txCtx, "ReplaceRoles create err: %+v", err)
			return code.UpdateDataErr.WithErr(err)
		}
		return nil
	})
}

func (a *accountImpl) CountManagedProcedures(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := a.DBWithContext(ctx).Model(&model.ProjectProcedure{}).
		Where("manager_id = ?", userID).Count(&count).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (a *accountImpl) DeleteUser(ctx context.Context, userID int64) error {
	return a.ExecTx(ctx, func(txCtx context.Context) error {
		tx := a.DBWithContext(txCtx)
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
			return code.DeleteDataErr.WithErr(err)
		}
		if err := tx.Exec("DELETE FROM project_procedure_worker WHERE user_id = ?", userID).Error; err != nil {
			return code.DeleteDataErr.WithErr(err)
		}
		res := tx.Delete(&model.User{}, userID)
		if res.Error != nil {
			return repo.TranslateErr(res.Error, code.DeleteDataErr)
		}
		if res.RowsAffected == 0 {
			return code.RecordNotFound
		}
		return nil
	})
}
