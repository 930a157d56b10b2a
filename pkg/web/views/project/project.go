package project

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/core/project"
	impl "github.com/reagentlab/tracker/pkg/core/project/project"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	pService project.Service
}

func NewProjectHandle() *Handle {
	return &Handle{pService: impl.New()}
}

func (h *Handle) Install(g *gin.RouterGroup) {
	views.Resource[project.ListReq, project.ProjectReq, *project.ProjectResp]{
		List:   h.pService.List,
		Get:    h.pService.Get,
		Create: h.pService.Create,
		Update: h.pService.Update,
		Delete: h.pService.Delete,
	}.Install(g.Group("/projects"))
}
