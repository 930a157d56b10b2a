package account

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/core/account"
	impl "github.com/reagentlab/tracker/pkg/core/account/account"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	aService account.Service
}

func NewAccountHandle() *Handle {
	return &Handle{aService: impl.New()}
}

func (h *Handle) Me(ctx *gin.Context) {
	resp, err := h.aService.Me(ctx)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Install(g *gin.RouterGroup) {
	users := g.Group("/users")
	users.GET("/me", h.Me)
	views.Resource[account.ListReq, account.UserReq, *account.UserResp]{
		List:   h.aService.List,
		Get:    h.aService.Get,
		Create: h.aService.Create,
		Update: h.aService.Update,
		Delete: h.aService.Delete,
	}.Install(users)
}
