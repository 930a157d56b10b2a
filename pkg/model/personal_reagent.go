package model

import (
	"time"
)

// 个人库存试剂
type PersonalReagent struct {
	BaseModel
	ReagentID               int64             `gorm:"type:bigint;not null;index:idx_pr_reagent" json:"-"`
	Reagent                 *Reagent          `gorm:"foreignKey:ReagentID" json:"reagent,omitempty"`
	MainOwnerID             int64             `gorm:"type:bigint;not null;index:idx_pr_owner" json:"-"`
	MainOwner               *User             `gorm:"foreignKey:MainOwnerID" json:"main_owner,omitempty"`
	ProjectProcedureID      *int64            `gorm:"type:bigint;index:idx_pr_project" json:"-"`
	ProjectProcedure        *ProjectProcedure `gorm:"foreignKey:ProjectProcedureID" json:"project_procedure,omitempty"`
	LaboratoryID            int64             `gorm:"type:bigint;not null;index:idx_pr_lab" json:"-"`
	Laboratory              *Laboratory       `gorm:"foreignKey:LaboratoryID" json:"laboratory,omitempty"`
	Room                    string            `gorm:"type:varchar(64);not null" json:"room"`
	DetailedLocation        *string           `gorm:"type:varchar(255)" json:"detailed_location"`
	LotNo                   *string           `gorm:"type:varchar(128)" json:"lot_no"`
	ReceiptPurchaseDate     time.Time         `gorm:"type:date;not null" json:"receipt_purchase_date"`
	ExpirationDate          *time.Time        `gorm:"type:date;index:idx_pr_expiration" json:"expiration_date"`
	DisposalUtilizationDate *time.Time        `gorm:"type:date" json:"disposal_utilization_date"`
	Comment                 *string           `gorm:"type:text" json:"comment"`
	IsUsageRecordGenerated  bool              `gorm:"not null;default:false" json:"is_usage_record_generated"`
	IsCritical              bool              `gorm:"not null;default:false" json:"is_critical"`
	IsArchived              bool              `gorm:"not null;default:false;index:idx_pr_archived" json:"is_archived"`
}

func (*PersonalReagent) TableName() string {
	return "personal_reagent"
}
