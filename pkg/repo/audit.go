package repo

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type AuditRepo interface {
	Append(ctx context.Context, records ...*model.AuditRecord) error
	History(ctx context.Context, entity string, id uuid.UUID, offset, limit int) ([]*model.AuditRecord, int64, error)
}
