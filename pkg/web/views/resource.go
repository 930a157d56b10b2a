package views

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
)

// Resource wires the collection routes of one resource onto its service methods. L is the list
// query, Req the write payload and Resp the item returned.
type Resource[L, Req, Resp any] struct {
	List   func(ctx context.Context, req *L) (*common.PageResp[[]Resp], error)
	Get    func(ctx context.Context, id uuid.UUID) (Resp, error)
	Create func(ctx context.Context, req *Req) (Resp, error)
	Update func(ctx context.Context, id uuid.UUID, req *Req, partial bool) (Resp, error)
	Delete func(ctx context.Context, id uuid.UUID) error
}

func (r Resource[L, Req, Resp]) Install(g *gin.RouterGroup) {
	g.GET("", r.list)
	g.POST("", r.create)
	g.GET("/:uuid", r.get)
	g.PUT("/:uuid", r.update(false))
	g.PATCH("/:uuid", r.update(true))
	g.DELETE("/:uuid", r.remove)
}

func (r Resource[L, Req, Resp]) list(ctx *gin.Context) {
	req := new(L)
	if !BindQuery(ctx, req) {
		return
	}
	resp, err := r.List(ctx, req)
	common.Reply(ctx, err, resp)
}

func (r Resource[L, Req, Resp]) get(ctx *gin.Context) {
	id, ok := PathUUID(ctx)
	if !ok {
		return
	}
	resp, err := r.Get(ctx, id)
	common.Reply(ctx, err, resp)
}

func (r Resource[L, Req, Resp]) create(ctx *gin.Context) {
	req := new(Req)
	if !BindJSON(ctx, req) {
		return
	}
	resp, err := r.Create(ctx, req)
	common.ReplyCreated(ctx, err, resp)
}

func (r Resource[L, Req, Resp]) update(partial bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := PathUUID(ctx)
		if !ok {
			return
		}
		req := new(Req)
		if !BindJSON(ctx, req) {
			return
		}
		resp, err := r.Update(ctx, id, req, partial)
		common.Reply(ctx, err, resp)
	}
}

func (r Resource[L, Req, Resp]) remove(ctx *gin.Context) {
	id, ok := PathUUID(ctx)
	if !ok {
		return
	}
	ReplyDeleted(ctx, r.Delete(ctx, id))
}
