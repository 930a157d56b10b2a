package model

// FieldKind names the admin-validated lookup lists a reagent is described with.
type FieldKind string

const (
	FieldReagentType      FieldKind = "reagent_type"
	FieldProducer         FieldKind = "producer"
	FieldConcentration    FieldKind = "concentration"
	FieldUnit             FieldKind = "unit"
	FieldPurityQuality    FieldKind = "purity_quality"
	FieldStorageCondition FieldKind = "storage_condition"
)

var FieldKinds = []FieldKind{
	FieldReagentType, FieldProducer, FieldConcentration,
	FieldUnit, FieldPurityQuality, FieldStorageCondition,
}

func (k FieldKind) Valid() bool {
	for _, f := range FieldKinds {
		if f == k {
			return true
		}
	}
	return false
}

// 试剂字段字典
type ReagentField struct {
	BaseModel
	Kind               FieldKind `gorm:"type:varchar(40);not null;uniqueIndex:idx_rf_kind_name,priority:1" json:"kind"`
	Name               string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_rf_kind_name,priority:2" json:"name"`
	Abbreviation       *string   `gorm:"type:varchar(64)" json:"abbreviation"`
	IsValidatedByAdmin bool      `gorm:"not null;default:false" json:"is_validated_by_admin"`
}

func (*ReagentField) TableName() string {
	return "reagent_field"
}

type Laboratory struct {
	BaseModel
	Name string `gorm:"type:varchar(120);not null;uniqueIndex" json:"name"`
}

func (*Laboratory) TableName() string {
	return "laboratory"
}
