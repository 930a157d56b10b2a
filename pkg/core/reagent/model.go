package reagent

import (
	"github.com/shopspring/decimal"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

// Orderings maps the accepted ListReq.Ordering values onto columns.
var Orderings = map[string]string{
	"name":        "name asc",
	"-name":       "name desc",
	"catalog_no":  "catalog_no asc",
	"-catalog_no": "catalog_no desc",
	"created_at":  "id asc",
	"-created_at": "id desc",
}

type ListReq struct {
	common.PageReq

	Search    string     `form:"search"`
	CAS       string     `form:"cas_no"`
	Producer  *uuid.UUID `form:"producer"`
	Validated *bool      `form:"is_validated_by_admin"`
	Ordering  string     `form:"ordering"`
}

// ReagentReq is the create and update payload. Lookups are referenced by uuid.
type ReagentReq struct {
	Name                    *string          `json:"name"`
	Producer                *uuid.UUID       `json:"producer"`
	ReagentType             *uuid.UUID       `json:"reagent_type"`
	CatalogNo               *string          `json:"catalog_no"`
	Volume                  *decimal.Decimal `json:"volume"`
	Unit                    *uuid.UUID       `json:"unit"`
	Concentration           *uuid.UUID       `json:"concentration"`
	PurityQuality           *uuid.UUID       `json:"purity_quality"`
	StorageConditions       *[]uuid.UUID     `json:"storage_conditions"`
	HazardStatements        *[]uuid.UUID     `json:"hazard_statements"`
	PrecautionaryStatements *[]uuid.UUID     `json:"precautionary_statements"`
	CAS                     *string          `json:"cas_no"`
	SafetyDataSheet         *string          `json:"safety_data_sheet"`
	SafetyInstruction       *string          `json:"safety_instruction"`
	IsUsageRecordRequired   *bool            `json:"is_usage_record_required"`
	IsValidatedByAdmin      *bool            `json:"is_validated_by_admin"`
}

type ReagentResp struct {
	*model.Reagent

	SignalWord model.SignalWord   `json:"signal_word"`
	Pictograms []*model.Pictogram `json:"pictograms"`
}

func ToResp(r *model.Reagent) *ReagentResp {
	if r == nil {
		return nil
	}
	return &ReagentResp{Reagent: r, SignalWord: r.SignalWord(), Pictograms: r.Pictograms()}
}

type CasReq struct {
	CAS string `form:"cas" json:"cas" binding:"required"`
}

// CasResp joins the PubChem record with the catalogue entries already carrying the number.
type CasResp struct {
	CAS      string             `json:"cas"`
	Compound *repo.CompoundInfo `json:"compound"`
	Reagents []*ReagentResp     `json:"reagents"`
}
