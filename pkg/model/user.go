package model

import (
	"github.com/reagentlab/tracker/pkg/common"
)

type User struct {
	BaseModel
	Username  string      `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email     string      `gorm:"type:varchar(254);not null;default:''" json:"email"`
	FirstName string      `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName  string      `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	IsStaff   bool        `gorm:"not null;default:false" json:"is_staff"`
	IsActive  bool        `gorm:"not null" json:"is_active"`
	Roles     []*UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"roles"`
}

func (*User) TableName() string {
	return "users"
}

func (u *User) RoleSet() common.RoleSet {
	roles := make([]common.LabRole, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Role)
	}
	return common.NewRoleSet(roles...)
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// 用户实验室角色
type UserRole struct {
	BaseModel
	UserID int64          `gorm:"type:bigint;not null;uniqueIndex:idx_ur_user_role,priority:1" json:"user_id"`
	Role   common.LabRole `gorm:"type:varchar(40);not null;uniqueIndex:idx_ur_user_role,priority:2" json:"role"`
}

func (*UserRole) TableName() string {
	return "user_role"
}

// UserData is the authenticated caller carried through the request context.
type UserData struct {
	ID       int64          `json:"id"`
	UUID     string         `json:"uuid"`
	Username string         `json:"username"`
	IsStaff  bool           `json:"is_staff"`
	Roles    common.RoleSet `json:"-"`
}
