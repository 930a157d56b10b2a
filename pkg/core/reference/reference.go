package reference

import (
	"context"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/model"
)

// Service manages the lookup lists reagents are described with and the laboratories stock is
// kept in.
type Service interface {
	ListFields(ctx context.Context, kind model.FieldKind, req *FieldListReq) (*common.PageResp[[]*model.ReagentField], error)
	GetField(ctx context.Context, kind model.FieldKind, id uuid.UUID) (*model.ReagentField, error)
	// CreateField accepts submissions from every lab role. Entries created by non administrators
	// stay unvalidated until an administrator confirms them.
	CreateField(ctx context.Context, kind model.FieldKind, req *FieldReq) (*model.ReagentField, error)
	UpdateField(ctx context.Context, kind model.FieldKind, id uuid.UUID, req *FieldReq, partial bool) (*model.ReagentField, error)
	DeleteField(ctx context.Context, kind model.FieldKind, id uuid.UUID) error

	ListLaboratories(ctx context.Context, req *LabListReq) (*common.PageResp[[]*model.Laboratory], error)
	GetLaboratory(ctx context.Context, id uuid.UUID) (*model.Laboratory, error)
	CreateLaboratory(ctx context.Context, req *LabReq) (*model.Laboratory, error)
	UpdateLaboratory(ctx context.Context, id uuid.UUID, req *LabReq) (*model.Laboratory, error)
	DeleteLaboratory(ctx context.Context, id uuid.UUID) error
}
