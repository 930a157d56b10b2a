package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

// ReagentQuery 过滤条件
type ReagentQuery struct {
	NameLike   string
	CAS        string
	ProducerID int64
	Validated  *bool
	OrderBy    string
	Offset     int
	Limit      int
}

// ReagentLinks are the many to many sides of a reagent, replaced as a whole on save.
type ReagentLinks struct {
	StorageConditions       []*model.ReagentField
	HazardStatements        []*model.HazardStatement
	PrecautionaryStatements []*model.PrecautionaryStatement
}

type ReagentRepo interface {
	IDOrUUIDTranslate

	ListReagents(ctx context.Context, q ReagentQuery) ([]*model.Reagent, int64, error)
	GetReagent(ctx context.Context, id uuid.UUID) (*model.Reagent, error)
	GetReagentByID(ctx context.Context, id int64) (*model.Reagent, error)
	// SaveReagent creates or updates the row and replaces its links in one transaction.
	SaveReagent(ctx context.Context, data *model.Reagent, links *ReagentLinks) error
	DeleteReagent(ctx context.Context, id int64) error
}
