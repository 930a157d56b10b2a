package reference

import (
	"github.com/reagentlab/tracker/pkg/common"
)

type FieldListReq struct {
	common.PageReq

	Search    string `form:"search"`
	Validated *bool  `form:"is_validated_by_admin"`
}

type FieldReq struct {
	Name               *string `json:"name"`
	Abbreviation       *string `json:"abbreviation"`
	IsValidatedByAdmin *bool   `json:"is_validated_by_admin"`
}

type LabListReq struct {
	common.PageReq

	Search string `form:"search"`
}

type LabReq struct {
	Name *string `json:"name"`
}
