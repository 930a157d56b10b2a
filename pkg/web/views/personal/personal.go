package personal

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/core/document"
	"github.com/reagentlab/tracker/pkg/core/personal"
	impl "github.com/reagentlab/tracker/pkg/core/personal/personal"
	"github.com/reagentlab/tracker/pkg/repo"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	pService personal.Service
}

// NewPersonalHandle archives generated documents in objects, nil skips archiving.
func NewPersonalHandle(objects repo.ObjectStore) *Handle {
	renderer := document.NewPDFRenderer(config.Global().Document)
	return &Handle{pService: impl.New(renderer, objects)}
}

func (h *Handle) Me(ctx *gin.Context) {
	req := &personal.ListReq{}
	if !views.BindQuery(ctx, req) {
		return
	}
	resp, err := h.pService.Me(ctx, req)
	common.Reply(ctx, err, resp)
}

// UsageRecord streams the usage record sheet as pdf.
func (h *Handle) UsageRecord(ctx *gin.Context) {
	id, ok := views.PathUUID(ctx)
	if !ok {
		return
	}
	res, err := h.pService.UsageRecord(ctx, id)
	views.ReplyFile(ctx, err, res)
}

// Report streams the filtered stock list as pdf.
func (h *Handle) Report(ctx *gin.Context) {
	req := &personal.ListReq{}
	if !views.BindQuery(ctx, req) {
		return
	}
	res, err := h.pService.Report(ctx, req)
	views.ReplyFile(ctx, err, res)
}

func (h *Handle) Install(g *gin.RouterGroup) {
	stock := g.Group("/personal-reagents")
	stock.GET("/me", h.Me)
	stock.GET("/report", h.Report)
	stock.POST("/:uuid/usage-record", h.UsageRecord)
	views.Resource[personal.ListReq, personal.PersonalReagentReq, *personal.PersonalReagentResp]{
		List:   h.pService.List,
		Get:    h.pService.Get,
		Create: h.pService.Create,
		Update: h.pService.Update,
		Delete: h.pService.Delete,
	}.Install(stock)
}
