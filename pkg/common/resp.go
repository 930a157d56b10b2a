package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common/code"
)

type Error struct {
	Msg    string            `json:"msg"`
	Info   []string          `json:"info,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Resp struct {
	Code  code.ErrCode `json:"code"`
	Data  any          `json:"data,omitempty"`
	Error *Error       `json:"error,omitempty"`
}

type RespT[T any] struct {
	Code  code.ErrCode `json:"code"`
	Data  T            `json:"data"`
	Error *Error       `json:"error,omitempty"`
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	resp := &Resp{Code: code.Of(err), Error: &Error{Info: msgs}}

	var e *code.Error
	if errors.As(err, &e) {
		resp.Error.Msg = e.Msg
		resp.Error.Fields = e.Fields
	}
	if resp.Error.Msg == "" {
		resp.Error.Msg = resp.Code.String()
	}

	ctx.AbortWithStatusJSON(resp.Code.HTTPStatus(), resp)
}

func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

// ReplyCreated is the 201 flavour used by create endpoints.
func ReplyCreated(ctx *gin.Context, err error, data any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &Resp{Code: code.Success, Data: data})
}
