package model

import (
	"time"
)

type RequestStatus string

const (
	RequestAwaiting RequestStatus = "AW"
	RequestApproved RequestStatus = "AP"
	RequestRejected RequestStatus = "RE"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestAwaiting, RequestApproved, RequestRejected:
		return true
	}
	return false
}

func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// 试剂转移申请
type ReagentRequest struct {
	BaseModel
	PersonalReagentID int64            `gorm:"type:bigint;not null;index:idx_rr_pr_status,priority:1" json:"-"`
	PersonalReagent   *PersonalReagent `gorm:"foreignKey:PersonalReagentID" json:"personal_reagent,omitempty"`
	RequesterID       int64            `gorm:"type:bigint;not null;index:idx_rr_requester" json:"-"`
	Requester         *User            `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Status            RequestStatus    `gorm:"type:varchar(2);not null;default:'AW';index:idx_rr_pr_status,priority:2" json:"status"`
	RequesterComment  *string          `gorm:"type:text" json:"requester_comment"`
	ResponderComment  *string          `gorm:"type:text" json:"responder_comment"`
	ChangeStatusDate  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"change_status_date"`
}

func (*ReagentRequest) TableName() string {
	return "reagent_request"
}
