package model

// 科研项目
type ProjectProcedure struct {
	BaseModel
	Name               string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	ManagerID          int64   `gorm:"type:bigint;not null;index:idx_pp_manager" json:"-"`
	Manager            *User   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Workers            []*User `gorm:"many2many:project_procedure_worker" json:"workers"`
	IsValidatedByAdmin bool    `gorm:"not null;default:false" json:"is_validated_by_admin"`
}

func (*ProjectProcedure) TableName() string {
	return "project_procedure"
}

func (p *ProjectProcedure) WorkerIDs() []int64 {
	ids := make([]int64, 0, len(p.Workers))
	for _, w := range p.Workers {
		ids = append(ids, w.ID)
	}
	return ids
}

func (p *ProjectProcedure) HasWorker(userID int64) bool {
	for _, w := range p.Workers {
		if w.ID == userID {
			return true
		}
	}
	return false
}
