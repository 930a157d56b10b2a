package views

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/document"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

// PathUUID reads the :uuid segment, replying 400 when it is malformed.
func PathUUID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		logger.Warnf(ctx, "parse uuid param %q err: %v", ctx.Param("uuid"), err)
		common.ReplyErr(ctx, code.ParamErr.WithField("uuid", "must be a valid uuid"))
		return uuid.Nil, false
	}
	return id, true
}

// BindJSON binds the body, replying 400 on malformed input.
func BindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Warnf(ctx, "parse %s body err: %v", ctx.FullPath(), err)
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return false
	}
	return true
}

// BindQuery binds query parameters, replying 400 on malformed input.
func BindQuery(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Warnf(ctx, "parse %s query err: %v", ctx.FullPath(), err)
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return false
	}
	return true
}

// ReplyFile sends a generated document as an attachment.
func ReplyFile(ctx *gin.Context, err error, res *document.Result) {
	if err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	ctx.Data(http.StatusOK, res.MimeType, res.Data)
}

// ReplyDeleted answers a successful delete with 204.
func ReplyDeleted(ctx *gin.Context, err error) {
	if err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
