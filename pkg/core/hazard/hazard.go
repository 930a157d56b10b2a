package hazard

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

// Service maintains the GHS catalogue: pictograms, CLP classifications and the hazard and
// precautionary statements reagents link to. Reads are open to lab roles, writes to
// administrators.
type Service interface {
	ListPictograms(ctx context.Context, req *ListReq) (*common.PageResp[[]*model.Pictogram], error)
	GetPictogram(ctx context.Context, id uuid.UUID) (*model.Pictogram, error)
	CreatePictogram(ctx context.Context, req *PictogramReq) (*model.Pictogram, error)
	UpdatePictogram(ctx context.Context, id uuid.UUID, req *PictogramReq, partial bool) (*model.Pictogram, error)
	DeletePictogram(ctx context.Context, id uuid.UUID) error

	ListClpClassifications(ctx context.Context, req *ListReq) (*common.PageResp[[]*model.ClpClassification], error)
	GetClpClassification(ctx context.Context, id uuid.UUID) (*model.ClpClassification, error)
	CreateClpClassification(ctx context.Context, req *ClpClassificationReq) (*model.ClpClassification, error)
	UpdateClpClassification(ctx context.Context, id uuid.UUID, req *ClpClassificationReq, partial bool) (*model.ClpClassification, error)
	DeleteClpClassification(ctx context.Context, id uuid.UUID) error

	ListHazardStatements(ctx context.Context, req *ListReq) (*common.PageResp[[]*model.HazardStatement], error)
	GetHazardStatement(ctx context.Context, id uuid.UUID) (*model.HazardStatement, error)
	CreateHazardStatement(ctx context.Context, req *HazardStatementReq) (*model.HazardStatement, error)
	// UpdateHazardStatement also flags linked reagents when the statement starts requiring a
	// usage record.
	UpdateHazardStatement(ctx context.Context, id uuid.UUID, req *HazardStatementReq, partial bool) (*model.HazardStatement, error)
	DeleteHazardStatement(ctx context.Context, id uuid.UUID) error

	ListPrecautionaryStatements(ctx context.Context, req *ListReq) (*common.PageResp[[]*model.PrecautionaryStatement], error)
	GetPrecautionaryStatement(ctx context.Context, id uuid.UUID) (*model.PrecautionaryStatement, error)
	CreatePrecautionaryStatement(ctx context.Context, req *PrecautionaryStatementReq) (*model.PrecautionaryStatement, error)
	UpdatePrecautionaryStatement(ctx context.Context, id uuid.UUID, req *PrecautionaryStatementReq, partial bool) (*model.PrecautionaryStatement, error)
	DeletePrecautionaryStatement(ctx context.Context, id uuid.UUID) error
}
