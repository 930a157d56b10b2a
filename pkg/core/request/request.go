package request

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
)

// Service handles requests to take over another user's stock.
type Service interface {
	// List shows the requests the caller made or has to answer, administrators see all.
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*RequestResp], error)
	Me(ctx context.Context, req *ListReq) (*common.PageResp[[]*RequestResp], error)
	// Notifications are the awaiting requests for stock the caller owns.
	Notifications(ctx context.Context, req *ListReq) (*common.PageResp[[]*RequestResp], error)
	Get(ctx context.Context, id uuid.UUID) (*RequestResp, error)
	Create(ctx context.Context, req *RequestReq) (*RequestResp, error)
	// ChangeStatus answers an awaiting request. Approval moves the stock to the requester.
	ChangeStatus(ctx context.Context, id uuid.UUID, req *ChangeStatusReq) (*RequestResp, error)
	// Delete withdraws a request that is still awaiting.
	Delete(ctx context.Context, id uuid.UUID) error
}
