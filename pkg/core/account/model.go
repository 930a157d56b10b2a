package account

import (
	"time"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

type ListReq struct {
	common.PageReq

	Search   string          `form:"search"`
	Role     *common.LabRole `form:"role"`
	IsActive *bool           `form:"is_active"`
}

// UserReq is shared by create, update and partial update. A nil field is left unchanged, a full
// update additionally requires the fields create requires.
type UserReq struct {
	Username  *string           `json:"username"`
	Email     *string           `json:"email"`
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	IsStaff   *bool             `json:"is_staff"`
	IsActive  *bool             `json:"is_active"`
	Roles     *[]common.LabRole `json:"roles"`
}

type UserResp struct {
	UUID      uuid.UUID        `json:"uuid"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	IsStaff   bool             `json:"is_staff"`
	IsActive  bool             `json:"is_active"`
	Roles     []common.LabRole `json:"roles"`
	CreatedAt time.Time        `json:"created_at"`
}

func ToResp(u *model.User) *UserResp {
	if u == nil {
		return nil
	}
	return &UserResp{
		UUID:      u.UUID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		IsActive:  u.IsActive,
		Roles:     u.RoleSet().List(),
		CreatedAt: u.CreatedAt,
	}
}
