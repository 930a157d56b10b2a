package request

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/core/notify"
	"github.com/reagentlab/tracker/pkg/core/request"
	impl "github.com/reagentlab/tracker/pkg/core/request/request"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	rService request.Service
}

func NewRequestHandle(center notify.MsgCenter) *Handle {
	return &Handle{rService: impl.New(center)}
}

func (h *Handle) list(call func(context.Context, *request.ListReq) (*common.PageResp[[]*request.RequestResp], error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req := &request.ListReq{}
		if !views.BindQuery(ctx, req) {
			return
		}
		resp, err := call(ctx, req)
		common.Reply(ctx, err, resp)
	}
}

func (h *Handle) Get(ctx *gin.Context) {
	id, ok := views.PathUUID(ctx)
	if !ok {
		return
	}
	resp, err := h.rService.Get(ctx, id)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Create(ctx *gin.Context) {
	req := &request.RequestReq{}
	if !views.BindJSON(ctx, req) {
		return
	}
	resp, err := h.rService.Create(ctx, req)
	common.ReplyCreated(ctx, err, resp)
}

func (h *Handle) ChangeStatus(ctx *gin.Context) {
	id, ok := views.PathUUID(ctx)
	if !ok {
		return
	}
	req := &request.ChangeStatusReq{}
	if !views.BindJSON(ctx, req) {
		return
	}
	resp, err := h.rService.ChangeStatus(ctx, id, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Delete(ctx *gin.Context) {
	id, ok := views.PathUUID(ctx)
	if !ok {
		return
	}
	views.ReplyDeleted(ctx, h.rService.Delete(ctx, id))
}

func (h *Handle) Install(g *gin.RouterGroup) {
	requests := g.Group("/reagent-requests")
	requests.GET("", h.list(h.rService.List))
	requests.GET("/me", h.list(h.rService.Me))
	requests.GET("/notifications", h.list(h.rService.Notifications))
	requests.GET("/:uuid", h.Get)
	requests.POST("", h.Create)
	requests.PUT("/:uuid/status", h.ChangeStatus)
	requests.DELETE("/:uuid", h.Delete)
}
