package reagent

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/core/reagent"
	impl "github.com/reagentlab/tracker/pkg/core/reagent/reagent"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	rService reagent.Service
}

func NewReagentHandle() *Handle {
	return &Handle{rService: impl.New()}
}

// QueryCAS looks a registry number up in PubChem and in the local catalogue.
func (h *Handle) QueryCAS(ctx *gin.Context) {
	req := &reagent.CasReq{}
	if !views.BindQuery(ctx, req) {
		return
	}
	resp, err := h.rService.QueryCAS(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Install(g *gin.RouterGroup) {
	reagents := g.Group("/reagents")
	reagents.GET("/cas", h.QueryCAS)
	views.Resource[reagent.ListReq, reagent.ReagentReq, *reagent.ReagentResp]{
		List:   h.rService.List,
		Get:    h.rService.Get,
		Create: h.rService.Create,
		Update: h.rService.Update,
		Delete: h.rService.Delete,
	}.Install(reagents)
}
