package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type UserQuery struct {
	Search   string
	Role     *common.LabRole
	IsActive *bool
	Offset   int
	Limit    int
}

type Account interface {
	IDOrUUIDTranslate

	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUsersByUUIDs(ctx context.Context, ids []uuid.UUID) ([]*model.User, error)
	ListUsers(ctx context.Context, q UserQuery) ([]*model.User, int64, error)
	// ReplaceRoles swaps the role rows of one user for the given set.
	ReplaceRoles(ctx context.Context, userID int64, roles []common.LabRole) error
	// CountManagedProcedures counts the project procedures the user is manager of.
	CountManagedProcedures(ctx context.Context, userID int64) (int64, error)
	DeleteUser(ctx context.Context, userID int64) error
}
