package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type FieldQuery struct {
	Kind      model.FieldKind
	Search    string
	Validated *bool
	Offset    int
	Limit     int
}

type ReferenceRepo interface {
	IDOrUUIDTranslate

	ListFields(ctx context.Context, q FieldQuery) ([]*model.ReagentField, int64, error)
	GetField(ctx context.Context, kind model.FieldKind, id uuid.UUID) (*model.ReagentField, error)
	GetFieldsByUUIDs(ctx context.Context, kind model.FieldKind, ids []uuid.UUID) ([]*model.ReagentField, error)

	ListLaboratories(ctx context.Context, search string, offset, limit int) ([]*model.Laboratory, int64, error)
	GetLaboratory(ctx context.Context, id uuid.UUID) (*model.Laboratory, error)
}
