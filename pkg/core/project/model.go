package project

import (
	"time"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/model"
)

type ListReq struct {
	common.PageReq

	Search    string `form:"search"`
	Validated *bool  `form:"is_validated_by_admin"`
}

type ProjectReq struct {
	Name               *string      `json:"name"`
	Manager            *uuid.UUID   `json:"manager"`
	Workers            *[]uuid.UUID `json:"workers"`
	IsValidatedByAdmin *bool        `json:"is_validated_by_admin"`
}

type ProjectResp struct {
	UUID               uuid.UUID           `json:"uuid"`
	Name               string              `json:"name"`
	Manager            *account.UserResp   `json:"manager"`
	Workers            []*account.UserResp `json:"workers"`
	IsValidatedByAdmin bool                `json:"is_validated_by_admin"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func ToResp(p *model.ProjectProcedure) *ProjectResp {
	if p == nil {
		return nil
	}
	workers := make([]*account.UserResp, 0, len(p.Workers))
	for _, w := range p.Workers {
		workers = append(workers, account.ToResp(w))
	}
	return &ProjectResp{
		UUID:               p.UUID,
		Name:               p.Name,
		Manager:            account.ToResp(p.Manager),
		Workers:            workers,
		IsValidatedByAdmin: p.IsValidatedByAdmin,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
