package hazard

import (
	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/core/hazard"
	impl "github.com/reagentlab/tracker/pkg/core/hazard/hazard"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/web/views"
)

type Handle struct {
	hService hazard.Service
}

func NewHazardHandle() *Handle {
	return &Handle{hService: impl.New()}
}

func (h *Handle) Install(g *gin.RouterGroup) {
	views.Resource[hazard.ListReq, hazard.PictogramReq, *model.Pictogram]{
		List:   h.hService.ListPictograms,
		Get:    h.hService.GetPictogram,
		Create: h.hService.CreatePictogram,
		Update: h.hService.UpdatePictogram,
		Delete: h.hService.DeletePictogram,
	}.Install(g.Group("/pictograms"))

	views.Resource[hazard.ListReq, hazard.ClpClassificationReq, *model.ClpClassification]{
		List:   h.hService.ListClpClassifications,
		Get:    h.hService.GetClpClassification,
		Create: h.hService.CreateClpClassification,
		Update: h.hService.UpdateClpClassification,
		Delete: h.hService.DeleteClpClassification,
	}.Install(g.Group("/clp-classifications"))

	views.Resource[hazard.ListReq, hazard.HazardStatementReq, *model.HazardStatement]{
		List:   h.hService.ListHazardStatements,
		Get:    h.hService.GetHazardStatement,
		Create: h.hService.CreateHazardStatement,
		Update: h.hService.UpdateHazardStatement,
		Delete: h.hService.DeleteHazardStatement,
	}.Install(g.Group("/hazard-statements"))

	views.Resource[hazard.ListReq, hazard.PrecautionaryStatementReq, *model.PrecautionaryStatement]{
		List:   h.hService.ListPrecautionaryStatements,
		Get:    h.hService.GetPrecautionaryStatement,
		Create: h.hService.CreatePrecautionaryStatement,
		Update: h.hService.UpdatePrecautionaryStatement,
		Delete: h.hService.DeletePrecautionaryStatement,
	}.Install(g.Group("/precautionary-statements"))
}
