package history

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/core/audit"
	impl "github.com/reagentlab/tracker/pkg/core/audit/history"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	hService audit.HistoryService
}

func NewHistoryHandle() *Handle {
	return &Handle{hService: impl.New()}
}

// History lists the change records of /history/:entity/:uuid, newest first.
func (h *Handle) History(ctx *gin.Context) {
	id, ok := views.PathUUID(ctx)
	if !ok {
		return
	}
	req := &audit.HistoryReq{}
	if !views.BindQuery(ctx, req) {
		return
	}
	resp, err := h.hService.History(ctx, ctx.Param("entity"), id, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Install(g *gin.RouterGroup) {
	g.GET("/history/:entity/:uuid", h.History)
}
