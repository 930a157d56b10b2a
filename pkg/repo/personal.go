package repo

import (
	"context"
	"time"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type PersonalReagentQuery struct {
	OwnerID       *int64
	ReagentID     *int64
	ProjectID     *int64
	LaboratoryID  *int64
	Archived      *bool
	Critical      *bool
	ExpiresBefore *time.Time
	Search        string
	OrderBy       string
	Offset        int
	Limit         int
}

type PersonalReagentRepo interface {
	IDOrUUIDTranslate

	ListPersonalReagents(ctx context.Context, q PersonalReagentQuery) ([]*model.PersonalReagent, int64, error)
	GetPersonalReagent(ctx context.Context, id uuid.UUID) (*model.PersonalReagent, error)
	GetPersonalReagentByID(ctx context.Context, id int64) (*model.PersonalReagent, error)
	// LockPersonalReagent re-reads the row with a row lock, callers must be inside ExecTx.
	LockPersonalReagent(ctx context.Context, id int64) (*model.PersonalReagent, error)
	UpdatePersonalReagent(ctx context.Context, id int64, values map[string]any) error
	// CountForeignStock counts stock attached to the project whose owner is not in ownerIDs.
	CountForeignStock(ctx context.Context, projectID int64, ownerIDs []int64) (int64, error)
	DeletePersonalReagent(ctx context.Context, id int64) error
}
