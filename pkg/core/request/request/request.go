package request

import (
	"context"
	"strings"
	"time"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	"github.com/reagentlab/tracker/pkg/core/lifecycle"
	"github.com/reagentlab/tracker/pkg/core/notify"
	core "github.com/reagentlab/tracker/pkg/core/request"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/middleware/metrics"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAccount "github.com/reagentlab/tracker/pkg/repo/account"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoPersonal "github.com/reagentlab/tracker/pkg/repo/personal"
	repoProject "github.com/reagentlab/tracker/pkg/repo/project"
	repoRequest "github.com/reagentlab/tracker/pkg/repo/request"
)

type requestImpl struct {
	requestStore  repo.RequestRepo
	personalStore repo.PersonalReagentRepo
	projectStore  repo.ProjectRepo
	accountStore  repo.Account
	recorder      *audit.Recorder
	center        notify.MsgCenter
}

func New(center notify.MsgCenter) core.Service {
	return &requestImpl{
		requestStore:  repoRequest.New(),
		personalStore: repoPersonal.New(),
		projectStore:  repoProject.New(),
		accountStore:  repoAccount.New(),
		recorder:      audit.NewRecorder(repoAudit.New()),
		center:        center,
	}
}

func (r *requestImpl) page(ctx context.Context, req *core.ListReq, q repo.RequestQuery) (*common.PageResp[[]*core.RequestResp], error) {
	q.Offset = req.Offest()
	q.Limit = req.PageSize
	items, total, err := r.requestStore.ListRequests(ctx, q)
	if err != nil {
		return nil, err
	}
	datas := make([]*core.RequestResp, 0, len(items))
	for _, item := range items {
		datas = append(datas, core.ToResp(item))
	}
	return &common.PageResp[[]*core.RequestResp]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (r *requestImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.RequestResp], error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActList, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	q := repo.RequestQuery{Status: req.Status}
	if !c.IsStaff {
		q.ParticipantID = &c.ID
	}
	return r.page(ctx, req, q)
}

func (r *requestImpl) Me(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.RequestResp], error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActMe, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	return r.page(ctx, req, repo.RequestQuery{RequesterID: &c.ID, Status: req.Status})
}

func (r *requestImpl) Notifications(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.RequestResp], error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActNotifications, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	awaiting := model.RequestAwaiting
	q := repo.RequestQuery{Status: &awaiting}
	if !c.IsStaff {
		q.ResponderID = &c.ID
	}
	return r.page(ctx, req, q)
}

func (r *requestImpl) Get(ctx context.Context, id uuid.UUID) (*core.RequestResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	data, err := r.requestStore.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, access.ResReagentRequest, access.ActRetrieve, core.Target(data)); err != nil {
		return nil, err
	}
	return core.ToResp(data), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (r *requestImpl) Create(ctx context.Context, req *core.RequestReq) (*core.RequestResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActCreate, nil); err != nil {
		return nil, err
	}
	if req.PersonalReagent == nil {
		return nil, code.ValidationErr.WithField("personal_reagent", "this field is required")
	}
	stock, err := r.personalStore.GetPersonalReagent(ctx, *req.PersonalReagent)
	if err != nil {
		if code.Of(err) == code.RecordNotFound {
			return nil, code.ValidationErr.WithField("personal_reagent", "object does not exist")
		}
		return nil, err
	}

	var data *model.ReagentRequest
	if err := r.requestStore.ExecTx(ctx, func(txCtx context.Context) error {
		locked, err := r.personalStore.LockPersonalReagent(txCtx, stock.ID)
		if err != nil {
			return err
		}
		if locked.IsArchived {
			return code.ValidationErr.WithField("personal_reagent", "archived stock cannot be requested")
		}
		awaiting, err := r.requestStore.CountAwaiting(txCtx, locked.ID)
		if err != nil {
			return err
		}
		if err := lifecycle.CanRequest(c.ID, locked.MainOwnerID, awaiting); err != nil {
			return err
		}

		row := &model.ReagentRequest{
			PersonalReagentID: locked.ID,
			RequesterID:       c.ID,
			Status:            model.RequestAwaiting,
			RequesterComment:  trimmed(req.RequesterComment),
			ChangeStatusDate:  time.Now(),
		}
		if err := r.requestStore.CreateData(txCtx, row); err != nil {
			if code.Of(err) == code.ConflictErr {
				return code.RequestDuplicateErr.WithField("personal_reagent", code.RequestDuplicateErr.String())
			}
			return err
		}
		if data, err = r.requestStore.GetRequest(txCtx, row.UUID); err != nil {
			return err
		}
		return r.recorder.Created(txCtx, audit.EntityReagentRequest, data.UUID, core.ToResp(data))
	}); err != nil {
		logger.Errorf(ctx, "create reagent request for %s err: %+v", req.PersonalReagent, err)
		return nil, err
	}

	resp := core.ToResp(data)
	if resp.PersonalReagent != nil && resp.PersonalReagent.MainOwner != nil {
		r.notify(ctx, notify.RequestCreated, resp, resp.PersonalReagent.MainOwner.UUID)
	}
	return resp, nil
}

func (r *requestImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req *core.ChangeStatusReq) (*core.RequestResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActChangeStatus, nil); err != nil {
		return nil, err
	}
	cur, err := r.requestStore.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(c, access.ResReagentRequest, access.ActChangeStatus, core.Target(cur)); err != nil {
		return nil, err
	}
	if err := lifecycle.ChangeStatus(cur.Status, req.Status); err != nil {
		return nil, err
	}

	var fresh *model.ReagentRequest
	if err := r.requestStore.ExecTx(ctx, func(txCtx context.Context) error {
		stock, err := r.personalStore.LockPersonalReagent(txCtx, cur.PersonalReagentID)
		if err != nil {
			return err
		}
		// the stock may have changed hands since the request was read
		t := core.Target(cur)
		t.OwnerID = stock.MainOwnerID
		if err := access.Authorize(c, access.ResReagentRequest, access.ActChangeStatus, t); err != nil {
			return err
		}

		ok, err := r.requestStore.SetStatus(txCtx, cur.ID, req.Status, trimmed(req.ResponderComment))
		if err != nil {
			return err
		}
		if !ok {
			return code.RequestStatusErr.WithField("status", "request was already answered")
		}
		if req.Status == model.RequestApproved {
			if err := r.transfer(txCtx, stock, cur.RequesterID); err != nil {
				return err
			}
		}

		if fresh, err = r.requestStore.GetRequest(txCtx, cur.UUID); err != nil {
			return err
		}
		return r.recorder.Updated(txCtx, audit.EntityReagentRequest, cur.UUID,
			audit.Snapshot(core.ToResp(cur)), audit.Snapshot(core.ToResp(fresh)))
	}); err != nil {
		logger.Errorf(ctx, "change request %s status to %s err: %+v", id, req.Status, err)
		return nil, err
	}

	metrics.RequestTransitions.WithLabelValues(string(req.Status)).Inc()
	resp := core.ToResp(fresh)
	if resp.Requester != nil {
		r.notify(ctx, notify.RequestAnswered, resp, resp.Requester.UUID)
	}
	return resp, nil
}

// transfer hands the stock to the requester. The project procedure is dropped when the new
// owner does not work in it.
func (r *requestImpl) transfer(ctx context.Context, stock *model.PersonalReagent, requesterID int64) error {
	users := r.accountStore.ID2UUID(ctx, &model.User{}, stock.MainOwnerID, requesterID)
	values := map[string]any{"main_owner_id": requesterID}
	before := map[string]any{"main_owner": users[stock.MainOwnerID]}
	after := map[string]any{"main_owner": users[requesterID]}
	if stock.ProjectProcedureID != nil {
		project, err := r.projectStore.GetProjectByID(ctx, *stock.ProjectProcedureID)
		if err != nil {
			return err
		}
		if !project.HasWorker(requesterID) {
			values["project_procedure_id"] = nil
			before["project_procedure"] = project.UUID
			after["project_procedure"] = nil
		}
	}
	if err := r.personalStore.UpdatePersonalReagent(ctx, stock.ID, values); err != nil {
		return err
	}
	return r.recorder.Updated(ctx, audit.EntityPersonalReagent, stock.UUID, before, after)
}

func (r *requestImpl) Delete(ctx context.Context, id uuid.UUID) error {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagentRequest, access.ActDestroy, nil); err != nil {
		return err
	}
	cur, err := r.requestStore.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(c, access.ResReagentRequest, access.ActDestroy, core.Target(cur)); err != nil {
		if cur.Status != model.RequestAwaiting && cur.RequesterID == c.ID {
			return code.RequestStatusErr.WithField("status", "answered requests cannot be withdrawn")
		}
		return err
	}

	if err := r.requestStore.ExecTx(ctx, func(txCtx context.Context) error {
		ok, err := r.requestStore.DeleteAwaiting(txCtx, cur.ID)
		if err != nil {
			return err
		}
		if !ok {
			return code.RequestStatusErr.WithField("status", "answered requests cannot be withdrawn")
		}
		return r.recorder.Deleted(txCtx, audit.EntityReagentRequest, cur.UUID, core.ToResp(cur))
	}); err != nil {
		return err
	}

	resp := core.ToResp(cur)
	if resp.PersonalReagent != nil && resp.PersonalReagent.MainOwner != nil {
		r.notify(ctx, notify.RequestWithdrawn, resp, resp.PersonalReagent.MainOwner.UUID)
	}
	return nil
}

// notify runs after commit. A lost notification never fails the request.
func (r *requestImpl) notify(ctx context.Context, event notify.Event, data *core.RequestResp, recipients ...uuid.UUID) {
	if r.center == nil {
		return
	}
	to := make([]string, 0, len(recipients))
	for _, id := range recipients {
		to = append(to, id.String())
	}
	if err := r.center.Broadcast(ctx, &notify.SendMsg{
		Channel:    notify.ReagentRequest,
		Event:      event,
		Recipients: to,
		Data:       data,
	}); err != nil {
		logger.Warnf(ctx, "notify %s for request %s err: %+v", event, data.UUID, err)
	}
}
