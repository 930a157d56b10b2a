package code

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrCode int

const Success ErrCode = 0

// general
const (
	UnDefineErr ErrCode = iota + 10000
	ParamErr
	ValidationErr
	ConflictErr
	RecordNotFound
	QueryRecordErr
	CreateDataErr
	UpdateDataErr
	DeleteDataErr
	ExecTxErr
)

// authentication and authorization
const (
	UnLogin ErrCode = iota + 20000
	LoginFormatErr
	InvalidToken
	PermissionDenied
	LoginSetStateErr
	LoginStateErr
	ExchangeTokenErr
	RefreshTokenParamErr
	RefreshTokenErr
)

// outbound calls and infrastructure
const (
	RPCHttpErr ErrCode = iota + 30000
	RPCHttpCodeErr
	RPCHttpCodeRespErr
	NotifyActionAlreadyRegistryErr
	NotifySendMsgErr
	DocumentRenderErr
	DocumentStoreErr
)

// domain
const (
	UserRoleErr ErrCode = iota + 40000
	ProjectManagerInUseErr
	ReagentUsageRecordErr
	ReagentCASQueryErr
	ReagentCASNotFindErr
	PersonalReagentLocationErr
	PersonalReagentProjectErr
	RequestOwnReagentErr
	RequestDuplicateErr
	RequestStatusErr
	UsageRecordNotRequiredErr
)

var msgMap = map[ErrCode]string{
	Success:        "success",
	UnDefineErr:    "undefined error",
	ParamErr:       "invalid parameter",
	ValidationErr:  "validation failed",
	ConflictErr:    "conflicting state, refresh and retry",
	RecordNotFound: "record not found",
	QueryRecordErr: "query record failed",
	CreateDataErr:  "create record failed",
	UpdateDataErr:  "update record failed",
	DeleteDataErr:  "delete record failed",
	ExecTxErr:      "transaction failed",

	UnLogin:              "authentication credentials were not provided",
	LoginFormatErr:       "malformed authorization header",
	InvalidToken:         "invalid or expired token",
	PermissionDenied:     "you do not have permission to perform this action",
	LoginSetStateErr:     "save login state failed",
	LoginStateErr:        "login state is invalid or expired",
	ExchangeTokenErr:     "exchange authorization code failed",
	RefreshTokenParamErr: "refresh_token is required",
	RefreshTokenErr:      "refresh token failed",

	RPCHttpErr:                     "remote http call failed",
	RPCHttpCodeErr:                 "remote http call returned bad status",
	RPCHttpCodeRespErr:             "remote http call returned bad payload",
	NotifyActionAlreadyRegistryErr: "notify action already registered",
	NotifySendMsgErr:               "notify send message failed",
	DocumentRenderErr:              "render document failed",
	DocumentStoreErr:               "store document failed",

	UserRoleErr:                "non-admin users must hold at least one lab role",
	ProjectManagerInUseErr:     "user still manages a project procedure",
	ReagentUsageRecordErr:      "usage record is required by a selected hazard statement",
	ReagentCASQueryErr:         "cas query failed",
	ReagentCASNotFindErr:       "cas not found",
	PersonalReagentLocationErr: "detailed location is required for this project procedure",
	PersonalReagentProjectErr:  "owner is not a worker of this project procedure",
	RequestOwnReagentErr:       "you cannot request your own reagent",
	RequestDuplicateErr:        "a request for this reagent is already awaiting approval",
	RequestStatusErr:           "request status can no longer be changed",
	UsageRecordNotRequiredErr:  "this reagent does not require a usage record",
}

var statusMap = map[ErrCode]int{
	Success:        http.StatusOK,
	ParamErr:       http.StatusBadRequest,
	ValidationErr:  http.StatusBadRequest,
	ConflictErr:    http.StatusBadRequest,
	RecordNotFound: http.StatusNotFound,

	UnLogin:              http.StatusUnauthorized,
	LoginFormatErr:       http.StatusUnauthorized,
	InvalidToken:         http.StatusUnauthorized,
	PermissionDenied:     http.StatusForbidden,
	LoginStateErr:        http.StatusUnauthorized,
	ExchangeTokenErr:     http.StatusUnauthorized,
	RefreshTokenParamErr: http.StatusBadRequest,
	RefreshTokenErr:      http.StatusUnauthorized,

	UserRoleErr:                http.StatusBadRequest,
	ProjectManagerInUseErr:     http.StatusBadRequest,
	ReagentUsageRecordErr:      http.StatusBadRequest,
	ReagentCASNotFindErr:       http.StatusNotFound,
	PersonalReagentLocationErr: http.StatusBadRequest,
	PersonalReagentProjectErr:  http.StatusBadRequest,
	RequestOwnReagentErr:       http.StatusBadRequest,
	RequestDuplicateErr:        http.StatusBadRequest,
	RequestStatusErr:           http.StatusBadRequest,
	UsageRecordNotRequiredErr:  http.StatusBadRequest,
}

func (c ErrCode) String() string {
	if msg, ok := msgMap[c]; ok {
		return msg
	}
	return msgMap[UnDefineErr]
}

func (c ErrCode) Error() string {
	return c.String()
}

func (c ErrCode) Int() int {
	return int(c)
}

// HTTPStatus maps a code onto the status the api surfaces.
func (c ErrCode) HTTPStatus() int {
	if s, ok := statusMap[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func (c ErrCode) WithMsg(msg string) *Error {
	return &Error{Code: c, Msg: msg}
}

func (c ErrCode) WithMsgf(format string, args ...any) *Error {
	return &Error{Code: c, Msg: fmt.Sprintf(format, args...)}
}

func (c ErrCode) WithErr(err error) *Error {
	e := &Error{Code: c, cause: err}
	if err != nil {
		e.Msg = err.Error()
	}
	return e
}

// WithField keys the message on one input field, the shape validation errors are surfaced in.
func (c ErrCode) WithField(field string, msg string) *Error {
	return &Error{Code: c, Msg: c.String(), Fields: map[string]string{field: msg}}
}

func (c ErrCode) WithFields(fields map[string]string) *Error {
	return &Error{Code: c, Msg: c.String(), Fields: fields}
}

type Error struct {
	Code   ErrCode
	Msg    string
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code.String(), e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches both another *Error and a bare ErrCode with the same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrCode:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	}
	return false
}

// Of extracts the code carried by err, UnDefineErr when it carries none.
func Of(err error) ErrCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c ErrCode
	if errors.As(err, &c) {
		return c
	}
	return UnDefineErr
}
