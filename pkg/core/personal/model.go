package personal

import (
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/model"
)

// Orderings maps the accepted ListReq.Ordering values onto columns.
var Orderings = map[string]string{
	"expiration_date":        "expiration_date asc",
	"-expiration_date":       "expiration_date desc",
	"receipt_purchase_date":  "receipt_purchase_date asc",
	"-receipt_purchase_date": "receipt_purchase_date desc",
	"created_at":             "id asc",
	"-created_at":            "id desc",
}

type ListReq struct {
	common.PageReq

	Search           string       `form:"search"`
	Reagent          *uuid.UUID   `form:"reagent"`
	ProjectProcedure *uuid.UUID   `form:"project_procedure"`
	Laboratory       *uuid.UUID   `form:"laboratory"`
	MainOwner        *uuid.UUID   `form:"main_owner"`
	IsArchived       *bool        `form:"is_archived"`
	IsCritical       *bool        `form:"is_critical"`
	ExpiresBefore    *common.Date `form:"expires_before"`
	Ordering         string       `form:"ordering"`
}

// PersonalReagentReq is the create and update payload. A partial update only touches the fields
// present, a full update replaces every writable field so absent optional fields are cleared.
//
// The disposal date and the usage record flag are accepted for compatibility and ignored, both
// are derived by the server.
type PersonalReagentReq struct {
	Reagent                 *uuid.UUID   `json:"reagent"`
	MainOwner               *uuid.UUID   `json:"main_owner"`
	ProjectProcedure        *uuid.UUID   `json:"project_procedure"`
	Laboratory              *uuid.UUID   `json:"laboratory"`
	Room                    *string      `json:"room"`
	DetailedLocation        *string      `json:"detailed_location"`
	LotNo                   *string      `json:"lot_no"`
	ReceiptPurchaseDate     *common.Date `json:"receipt_purchase_date"`
	ExpirationDate          *common.Date `json:"expiration_date"`
	DisposalUtilizationDate *common.Date `json:"disposal_utilization_date"`
	Comment                 *string      `json:"comment"`
	IsCritical              *bool        `json:"is_critical"`
	IsArchived              *bool        `json:"is_archived"`
	IsUsageRecordGenerated  *bool        `json:"is_usage_record_generated"`
}

type ProjectRef struct {
	UUID uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

type PersonalReagentResp struct {
	*model.PersonalReagent

	MainOwner        *account.UserResp  `json:"main_owner"`
	ProjectProcedure *ProjectRef        `json:"project_procedure"`
	SignalWord       model.SignalWord   `json:"signal_word"`
	Pictograms       []*model.Pictogram `json:"pictograms"`
}

func ToResp(p *model.PersonalReagent) *PersonalReagentResp {
	if p == nil {
		return nil
	}
	resp := &PersonalReagentResp{
		PersonalReagent: p,
		MainOwner:       account.ToResp(p.MainOwner),
		Pictograms:      []*model.Pictogram{},
	}
	if p.ProjectProcedure != nil {
		resp.ProjectProcedure = &ProjectRef{UUID: p.ProjectProcedure.UUID, Name: p.ProjectProcedure.Name}
	}
	if p.Reagent != nil {
		resp.SignalWord = p.Reagent.SignalWord()
		resp.Pictograms = p.Reagent.Pictograms()
	}
	return resp
}

// Target is the ownership view of one stock item the access rules evaluate.
func Target(p *model.PersonalReagent) *access.Target {
	t := &access.Target{OwnerID: p.MainOwnerID}
	if p.ProjectProcedure != nil {
		t.ManagerID = p.ProjectProcedure.ManagerID
		t.MemberIDs = p.ProjectProcedure.WorkerIDs()
	}
	return t
}
