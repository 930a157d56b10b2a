package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type RequestQuery struct {
	// ParticipantID keeps requests the user either made or has to answer.
	ParticipantID *int64
	RequesterID   *int64
	// ResponderID keeps requests targeting stock the user currently owns.
	ResponderID *int64
	Status      *model.RequestStatus
	Offset      int
	Limit       int
}

type RequestRepo interface {
	IDOrUUIDTranslate

	ListRequests(ctx context.Context, q RequestQuery) ([]*model.ReagentRequest, int64, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*model.ReagentRequest, error)
	CountAwaiting(ctx context.Context, personalReagentID int64) (int64, error)
	// SetStatus moves a request out of the awaiting state. It reports false when the row was no
	// longer awaiting.
	SetStatus(ctx context.Context, id int64, status model.RequestStatus, responderComment *string) (bool, error)
	DeleteAwaiting(ctx context.Context, id int64) (bool, error)
}
