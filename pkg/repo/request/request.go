package request

import (
	"context"
	"time"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

type requestImpl struct {
	*repo.BaseDB
}

func New() repo.RequestRepo {
	return &requestImpl{BaseDB: repo.NewBaseDB()}
}

func (r *requestImpl) ListRequests(ctx context.Context, q repo.RequestQuery) ([]*model.ReagentRequest, int64, error) {
	query := r.DBWithContext(ctx).Model(&model.ReagentRequest{})
	owned := func(userID int64) any {
		return r.DBWithContext(ctx).Model(&model.PersonalReagent{}).Select("id").Where("main_owner_id = ?", userID)
	}
	if q.ParticipantID != nil {
		query = query.Where("requester_id = ? OR personal_reagent_id IN (?)", *q.ParticipantID, owned(*q.ParticipantID))
	}
	if q.RequesterID != nil {
		query = query.Where("requester_id = ?", *q.RequesterID)
	}
	if q.ResponderID != nil {
		query = query.Where("personal_reagent_id IN (?)", owned(*q.ResponderID))
	}
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	datas := make([]*model.ReagentRequest, 0, q.Limit)
	if err := query.Preload("PersonalReagent.Reagent").
		Preload("PersonalReagent.MainOwner").
		Preload("Requester").
		Order("change_status_date desc").
		Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (r *requestImpl) GetRequest(ctx context.Context, id uuid.UUID) (*model.ReagentRequest, error) {
	data := &model.ReagentRequest{}
	if err := r.DBWithContext(ctx).
		Preload("PersonalReagent.Reagent").
		Preload("PersonalReagent.MainOwner").
		Preload("Requester").
		Where("uuid = ?", id).First(data).Error; err != nil {
		return nil, repo.TranslateErr(err, code.QueryRecordErr)
	}
	return data, nil
}

func (r *requestImpl) CountAwaiting(ctx context.Context, personalReagentID int64) (int64, error) {
	var count int64
	if err := r.DBWithContext(ctx).Model(&model.ReagentRequest{}).
		Where("personal_reagent_id = ? AND status = ?", personalReagentID, model.RequestAwaiting).
		Count(&count).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (r *requestImpl) SetStatus(ctx context.Context, id int64, status model.RequestStatus, responderComment *string) (bool, error) {
	res := r.DBWithContext(ctx).Model(&model.ReagentRequest{}).
		Where("id = ? AND status = ?", id, model.RequestAwaiting).
		Updates(map[string]any{
			"status":             status,
			"responder_comment":  responderComment,
			"change_status_date": time.Now(),
		})
	if res.Error != nil {
		logger.Errorf(ctx, "SetStatus err: %+v", res.Error)
		return false, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *requestImpl) DeleteAwaiting(ctx context.Context, id int64) (bool, error) {
	res := r.DBWithContext(ctx).
		Where("id = ? AND status = ?", id, model.RequestAwaiting).
		Delete(&model.ReagentRequest{})
	if res.Error != nil {
		return false, code.DeleteDataErr.WithErr(res.Error)
	}
	return res.RowsAffected == 1, nil
}
