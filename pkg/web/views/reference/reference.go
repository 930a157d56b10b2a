package reference

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/reference"
	impl "github.com/reagentlab/tracker/pkg/core/reference/reference"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/web/views"
)

// fieldPaths are the url collections of the reagent lookup lists.
var fieldPaths = map[string]model.FieldKind{
	"/reagent-types":      model.FieldReagentType,
	"/producers":          model.FieldProducer,
	"/concentrations":     model.FieldConcentration,
	"/units":              model.FieldUnit,
	"/purity-qualities":   model.FieldPurityQuality,
	"/storage-conditions": model.FieldStorageCondition,
}

type Handle struct {
	rService reference.Service
}

func NewReferenceHandle() *Handle {
	return &Handle{rService: impl.New()}
}

func (h *Handle) fields(kind model.FieldKind) views.Resource[reference.FieldListReq, reference.FieldReq, *model.ReagentField] {
	return views.Resource[reference.FieldListReq, reference.FieldReq, *model.ReagentField]{
		List: func(ctx context.Context, req *reference.FieldListReq) (*common.PageResp[[]*model.ReagentField], error) {
			return h.rService.ListFields(ctx, kind, req)
		},
		Get: func(ctx context.Context, id uuid.UUID) (*model.ReagentField, error) {
			return h.rService.GetField(ctx, kind, id)
		},
		Create: func(ctx context.Context, req *reference.FieldReq) (*model.ReagentField, error) {
			return h.rService.CreateField(ctx, kind, req)
		},
		Update: func(ctx context.Context, id uuid.UUID, req *reference.FieldReq, partial bool) (*model.ReagentField, error) {
			return h.rService.UpdateField(ctx, kind, id, req, partial)
		},
		Delete: func(ctx context.Context, id uuid.UUID) error {
			return h.rService.DeleteField(ctx, kind, id)
		},
	}
}

func (h *Handle) Install(g *gin.RouterGroup) {
	for path, kind := range fieldPaths {
		h.fields(kind).Install(g.Group(path))
	}
	views.Resource[reference.LabListReq, reference.LabReq, *model.Laboratory]{
		List:   h.rService.ListLaboratories,
		Get:    h.rService.GetLaboratory,
		Create: h.rService.CreateLaboratory,
		Update: func(ctx context.Context, id uuid.UUID, req *reference.LabReq, _ bool) (*model.Laboratory, error) {
			return h.rService.UpdateLaboratory(ctx, id, req)
		},
		Delete: h.rService.DeleteLaboratory,
	}.Install(g.Group("/laboratories"))
}
