package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type HazardRepo interface {
	IDOrUUIDTranslate

	ListPictograms(ctx context.Context, offset, limit int) ([]*model.Pictogram, int64, error)
	GetPictogram(ctx context.Context, id uuid.UUID) (*model.Pictogram, error)
	ListClpClassifications(ctx context.Context, offset, limit int) ([]*model.ClpClassification, int64, error)
	GetClpClassification(ctx context.Context, id uuid.UUID) (*model.ClpClassification, error)
	ListHazardStatements(ctx context.Context, search string, offset, limit int) ([]*model.HazardStatement, int64, error)
	GetHazardStatement(ctx context.Context, id uuid.UUID) (*model.HazardStatement, error)
	// GetHazardStatements loads the statements with their classification and pictogram.
	GetHazardStatements(ctx context.Context, ids []uuid.UUID) ([]*model.HazardStatement, error)
	ListPrecautionaryStatements(ctx context.Context, search string, offset, limit int) ([]*model.PrecautionaryStatement, int64, error)
	GetPrecautionaryStatement(ctx context.Context, id uuid.UUID) (*model.PrecautionaryStatement, error)
	GetPrecautionaryStatements(ctx context.Context, ids []uuid.UUID) ([]*model.PrecautionaryStatement, error)
	// RequireUsageRecord flags every reagent linked to the statement as needing a usage record.
	RequireUsageRecord(ctx context.Context, statementID int64) (int64, error)
}
