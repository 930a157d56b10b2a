package reagent

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
)

// Service 试剂目录
type Service interface {
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*ReagentResp], error)
	Get(ctx context.Context, id uuid.UUID) (*ReagentResp, error)
	// Create accepts submissions from every lab role, unvalidated unless made by an administrator.
	Create(ctx context.Context, req *ReagentReq) (*ReagentResp, error)
	Update(ctx context.Context, id uuid.UUID, req *ReagentReq, partial bool) (*ReagentResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// QueryCAS resolves a CAS registry number through PubChem.
	QueryCAS(ctx context.Context, req *CasReq) (*CasResp, error)
}
