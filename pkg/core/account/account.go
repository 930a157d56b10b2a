package account

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
)

// Service manages user accounts and their lab roles.
type Service interface {
	// Me returns the caller's own account.
	Me(ctx context.Context) (*UserResp, error)
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*UserResp], error)
	Get(ctx context.Context, id uuid.UUID) (*UserResp, error)
	Create(ctx context.Context, req *UserReq) (*UserResp, error)
	// Update replaces the writable fields, partial only touches the fields present in req.
	Update(ctx context.Context, id uuid.UUID, req *UserReq, partial bool) (*UserResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
