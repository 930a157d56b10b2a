package project

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
)

// Service 科研项目
//
// A procedure is managed by one project manager who is always one of its workers. Stock can only
// be attached to a procedure its owner works in.
type Service interface {
	// List returns every procedure to lab managers, the caller's own procedures to everyone else.
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*ProjectResp], error)
	Get(ctx context.Context, id uuid.UUID) (*ProjectResp, error)
	Create(ctx context.Context, req *ProjectReq) (*ProjectResp, error)
	Update(ctx context.Context, id uuid.UUID, req *ProjectReq, partial bool) (*ProjectResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
