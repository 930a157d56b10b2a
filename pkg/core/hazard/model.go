package hazard

import (
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type ListReq struct {
	common.PageReq

	Search string `form:"search"`
}

type PictogramReq struct {
	Pictogram *string `json:"pictogram"`
	ReprImage *string `json:"repr_image"`
}

type ClpClassificationReq struct {
	Classification *string    `json:"classification"`
	ClpSymbol      *string    `json:"clp_symbol"`
	Pictogram      *uuid.UUID `json:"pictogram"`
}

type HazardStatementReq struct {
	Code                  *string           `json:"code"`
	Phrase                *string           `json:"phrase"`
	SignalWord            *model.SignalWord `json:"signal_word"`
	IsUsageRecordRequired *bool             `json:"is_usage_record_required"`
	ClpClassification     *uuid.UUID        `json:"clp_classification"`
}

type PrecautionaryStatementReq struct {
	Code   *string `json:"code"`
	Phrase *string `json:"phrase"`
}
