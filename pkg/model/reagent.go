package model

import (
	"github.com/shopspring/decimal"
)

// 试剂目录
type Reagent struct {
	BaseModel
	Name                    string                    `gorm:"type:varchar(255);not null;index:idx_reagent_name" json:"name"`
	ProducerID              int64                     `gorm:"type:bigint;not null;uniqueIndex:idx_reagent_producer_catalog,priority:1" json:"-"`
	Producer                *ReagentField             `gorm:"foreignKey:ProducerID" json:"producer,omitempty"`
	ReagentTypeID           int64                     `gorm:"type:bigint;not null" json:"-"`
	ReagentType             *ReagentField             `gorm:"foreignKey:ReagentTypeID" json:"reagent_type,omitempty"`
	CatalogNo               string                    `gorm:"type:varchar(128);not null;uniqueIndex:idx_reagent_producer_catalog,priority:2" json:"catalog_no"`
	Volume                  decimal.Decimal           `gorm:"type:numeric(12,3);not null;default:0" json:"volume"`
	UnitID                  int64                     `gorm:"type:bigint;not null" json:"-"`
	Unit                    *ReagentField             `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	ConcentrationID         *int64                    `gorm:"type:bigint" json:"-"`
	Concentration           *ReagentField             `gorm:"foreignKey:ConcentrationID" json:"concentration,omitempty"`
	PurityQualityID         *int64                    `gorm:"type:bigint" json:"-"`
	PurityQuality           *ReagentField             `gorm:"foreignKey:PurityQualityID" json:"purity_quality,omitempty"`
	CAS                     *string                   `gorm:"type:varchar(64);index:idx_reagent_cas" json:"cas_no"`
	SafetyDataSheet         *string                   `gorm:"type:varchar(512)" json:"safety_data_sheet"`
	SafetyInstruction       *string                   `gorm:"type:varchar(512)" json:"safety_instruction"`
	IsUsageRecordRequired   bool                      `gorm:"not null;default:false" json:"is_usage_record_required"`
	IsValidatedByAdmin      bool                      `gorm:"not null;default:false" json:"is_validated_by_admin"`
	StorageConditions       []*ReagentField           `gorm:"many2many:reagent_storage_condition" json:"storage_conditions"`
	HazardStatements        []*HazardStatement        `gorm:"many2many:reagent_hazard_statement" json:"hazard_statements"`
	PrecautionaryStatements []*PrecautionaryStatement `gorm:"many2many:reagent_precautionary_statement" json:"precautionary_statements"`
}

func (*Reagent) TableName() string {
	return "reagent"
}

// SignalWord is the strongest word over the linked hazard statements.
func (r *Reagent) SignalWord() SignalWord {
	word := SignalNone
	for _, h := range r.HazardStatements {
		word = word.Stronger(h.SignalWord)
	}
	return word
}

// Pictograms are derived from the clp classifications of the linked hazard statements.
func (r *Reagent) Pictograms() []*Pictogram {
	seen := map[int64]struct{}{}
	out := make([]*Pictogram, 0, len(r.HazardStatements))
	for _, h := range r.HazardStatements {
		if h.ClpClassification == nil || h.ClpClassification.Pictogram == nil {
			continue
		}
		p := h.ClpClassification.Pictogram
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// UsageRecordForced reports whether any hazard statement demands a usage record.
func UsageRecordForced(statements []*HazardStatement) bool {
	for _, h := range statements {
		if h.IsUsageRecordRequired {
			return true
		}
	}
	return false
}
