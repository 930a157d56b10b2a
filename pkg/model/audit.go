package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/reagentlab/tracker/pkg/common/uuid"
)

type ChangeType string

const (
	ChangeCreate ChangeType = "+"
	ChangeUpdate ChangeType = "~"
	ChangeDelete ChangeType = "-"
)

// AuditRecord is one immutable entry of the history ledger. Rows are only ever inserted.
type AuditRecord struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Entity     string         `gorm:"type:varchar(64);not null;index:idx_audit_entity,priority:1" json:"entity"`
	EntityUUID uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_entity,priority:2" json:"entity_uuid"`
	ActorID    *int64         `gorm:"type:bigint" json:"actor_id"`
	ChangeType ChangeType     `gorm:"type:varchar(1);not null" json:"change_type"`
	Diff       datatypes.JSON `gorm:"type:jsonb" json:"diff"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_audit_created" json:"created_at"`
}

func (*AuditRecord) TableName() string {
	return "audit_record"
}
