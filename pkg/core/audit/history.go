package audit

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type HistoryReq struct {
	common.PageReq
}

type RecordResp struct {
	ID         int64            `json:"id"`
	Entity     string           `json:"entity"`
	EntityUUID uuid.UUID        `json:"entity_uuid"`
	ChangeType model.ChangeType `json:"change_type"`
	// Actor is nil for changes made outside a user request, such as migrations.
	Actor     *uuid.UUID     `json:"actor"`
	Diff      datatypes.JSON `json:"diff"`
	CreatedAt time.Time      `json:"created_at"`
}

// HistoryService reads the change ledger of one record.
type HistoryService interface {
	History(ctx context.Context, entity string, id uuid.UUID, req *HistoryReq) (*common.PageResp[[]*RecordResp], error)
}
