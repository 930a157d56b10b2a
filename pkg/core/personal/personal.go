package personal

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/document"
)

// Service 个人库存
type Service interface {
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*PersonalReagentResp], error)
	// Me lists the caller's own stock.
	Me(ctx context.Context, req *ListReq) (*common.PageResp[[]*PersonalReagentResp], error)
	Get(ctx context.Context, id uuid.UUID) (*PersonalReagentResp, error)
	// Create registers stock owned by the caller.
	Create(ctx context.Context, req *PersonalReagentReq) (*PersonalReagentResp, error)
	// Update applies an edit. Archiving sets the disposal date to today, restoring clears it.
	Update(ctx context.Context, id uuid.UUID, req *PersonalReagentReq, partial bool) (*PersonalReagentResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UsageRecord prints the usage record sheet and marks the stock as having one.
	UsageRecord(ctx context.Context, id uuid.UUID) (*document.Result, error)
	// Report prints the filtered stock list for lab managers.
	Report(ctx context.Context, req *ListReq) (*document.Result, error)
}
