package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type ProjectQuery struct {
	// MemberID restricts the listing to procedures the user manages or works in.
	MemberID  *int64
	Search    string
	Validated *bool
	Offset    int
	Limit     int
}

type ProjectRepo interface {
	IDOrUUIDTranslate

	ListProjects(ctx context.Context, q ProjectQuery) ([]*model.ProjectProcedure, int64, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.ProjectProcedure, error)
	GetProjectByID(ctx context.Context, id int64) (*model.ProjectProcedure, error)
	// SaveProject creates or updates the row and replaces its workers.
	SaveProject(ctx context.Context, data *model.ProjectProcedure, workers []*model.User) error
	DeleteProject(ctx context.Context, id int64) error
}
