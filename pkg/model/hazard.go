package model

type SignalWord string

const (
	SignalNone    SignalWord = ""
	SignalWarning SignalWord = "Warning"
	SignalDanger  SignalWord = "Danger"
)

func (s SignalWord) Valid() bool {
	switch s {
	case SignalNone, SignalWarning, SignalDanger:
		return true
	}
	return false
}

// Stronger picks Danger over Warning over none.
func (s SignalWord) Stronger(o SignalWord) SignalWord {
	if s == SignalDanger || o == SignalDanger {
		return SignalDanger
	}
	if s == SignalWarning || o == SignalWarning {
		return SignalWarning
	}
	return SignalNone
}

type Pictogram struct {
	BaseModel
	Pictogram string  `gorm:"type:varchar(32);not null;uniqueIndex" json:"pictogram"`
	ReprImage *string `gorm:"type:varchar(512)" json:"repr_image"`
}

func (*Pictogram) TableName() string {
	return "pictogram"
}

type ClpClassification struct {
	BaseModel
	Classification string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"classification"`
	ClpSymbol      *string    `gorm:"type:varchar(32)" json:"clp_symbol"`
	PictogramID    *int64     `gorm:"type:bigint" json:"-"`
	Pictogram      *Pictogram `gorm:"foreignKey:PictogramID" json:"pictogram,omitempty"`
}

func (*ClpClassification) TableName() string {
	return "clp_classification"
}

type HazardStatement struct {
	BaseModel
	Code                  string             `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	Phrase                string             `gorm:"type:text;not null" json:"phrase"`
	SignalWord            SignalWord         `gorm:"type:varchar(16);not null;default:''" json:"signal_word"`
	IsUsageRecordRequired bool               `gorm:"not null;default:false" json:"is_usage_record_required"`
	ClpClassificationID   *int64             `gorm:"type:bigint" json:"-"`
	ClpClassification     *ClpClassification `gorm:"foreignKey:ClpClassificationID" json:"clp_classification,omitempty"`
}

func (*HazardStatement) TableName() string {
	return "hazard_statement"
}

type PrecautionaryStatement struct {
	BaseModel
	Code   string `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Phrase string `gorm:"type:text;not null" json:"phrase"`
}

func (*PrecautionaryStatement) TableName() string {
	return "precautionary_statement"
}
