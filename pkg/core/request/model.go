package request

import (
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/model"
)

type ListReq struct {
	common.PageReq

	Status *model.RequestStatus `form:"status"`
}

type RequestReq struct {
	PersonalReagent  *uuid.UUID `json:"personal_reagent"`
	RequesterComment *string    `json:"requester_comment"`
}

type ChangeStatusReq struct {
	Status           model.RequestStatus `json:"status"`
	ResponderComment *string             `json:"responder_comment"`
}

// StockRef is the requested stock as shown on a request.
type StockRef struct {
	UUID      uuid.UUID         `json:"uuid"`
	Reagent   string            `json:"reagent"`
	MainOwner *account.UserResp `json:"main_owner"`
}

type RequestResp struct {
	*model.ReagentRequest

	PersonalReagent *StockRef         `json:"personal_reagent"`
	Requester       *account.UserResp `json:"requester"`
}

func ToResp(r *model.ReagentRequest) *RequestResp {
	if r == nil {
		return nil
	}
	resp := &RequestResp{ReagentRequest: r, Requester: account.ToResp(r.Requester)}
	if pr := r.PersonalReagent; pr != nil {
		resp.PersonalReagent = &StockRef{UUID: pr.UUID, MainOwner: account.ToResp(pr.MainOwner)}
		if pr.Reagent != nil {
			resp.PersonalReagent.Reagent = pr.Reagent.Name
		}
	}
	return resp
}

// Target is the ownership view of a request: the responder is the current stock owner.
func Target(r *model.ReagentRequest) *access.Target {
	t := &access.Target{RequesterID: r.RequesterID, Awaiting: r.Status == model.RequestAwaiting}
	if r.PersonalReagent != nil {
		t.OwnerID = r.PersonalReagent.MainOwnerID
	}
	return t
}
