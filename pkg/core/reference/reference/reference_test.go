package reference

import (
	"errors"
	"testing"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	core "github.com/reagentlab/tracker/pkg/core/reference"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestCreateFieldValidation(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	svc := New()

	tests := []struct {
		name      string
		caller    *model.User
		req       *core.FieldReq
		validated bool
	}{
		{"contributor forced unvalidated", worker, &core.FieldReq{Name: utils.Ptr("Sigma"), IsValidatedByAdmin: utils.Ptr(true)}, false},
		{"admin defaults validated", admin, &core.FieldReq{Name: utils.Ptr("Merck")}, true},
		{"admin may opt out", admin, &core.FieldReq{Name: utils.Ptr("Roth"), IsValidatedByAdmin: utils.Ptr(false)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CreateField(testutil.As(tt.caller), model.FieldProducer, tt.req)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if got.IsValidatedByAdmin != tt.validated || got.Kind != model.FieldProducer {
				t.Fatalf("unexpected field %+v", got)
			}
		})
	}

	_, err := svc.CreateField(testutil.As(worker), model.FieldProducer, &core.FieldReq{Name: utils.Ptr("Sigma")})
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate name rejection, got %v", err)
	}
	if _, err := svc.CreateField(testutil.As(worker), model.FieldUnit, &core.FieldReq{Name: utils.Ptr("Sigma")}); err != nil {
		t.Fatalf("same name under another kind: %v", err)
	}
	if _, err := svc.CreateField(testutil.As(worker), model.FieldKind("colour"), &core.FieldReq{Name: utils.Ptr("x")}); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("expected unknown kind rejection, got %v", err)
	}
}

func TestUpdateFieldAdminOnly(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	svc := New()

	f, err := svc.CreateField(testutil.As(lm), model.FieldUnit, &core.FieldReq{Name: utils.Ptr("ml")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateField(testutil.As(lm), model.FieldUnit, f.UUID, &core.FieldReq{IsValidatedByAdmin: utils.Ptr(true)}, true); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	got, err := svc.UpdateField(testutil.As(admin), model.FieldUnit, f.UUID, &core.FieldReq{IsValidatedByAdmin: utils.Ptr(true)}, true)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !got.IsValidatedByAdmin || got.Name != "ml" {
		t.Fatalf("unexpected field %+v", got)
	}
	if _, err := svc.UpdateField(testutil.As(admin), model.FieldProducer, f.UUID, &core.FieldReq{Name: utils.Ptr("l")}, true); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("kind mismatch should not resolve, got %v", err)
	}
	if err := svc.DeleteField(testutil.As(admin), model.FieldUnit, f.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestLaboratoryCRUD(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	svc := New()

	if _, err := svc.CreateLaboratory(testutil.As(worker), &core.LabReq{Name: utils.Ptr("B1")}); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	lab, err := svc.CreateLaboratory(testutil.As(admin), &core.LabReq{Name: utils.Ptr(" B1 ")})
	if err != nil || lab.Name != "B1" {
		t.Fatalf("create: %+v %v", lab, err)
	}
	if _, err := svc.CreateLaboratory(testutil.As(admin), &core.LabReq{Name: utils.Ptr("B1")}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
	page, err := svc.ListLaboratories(testutil.As(worker), &core.LabListReq{})
	if err != nil || page.Total != 1 || page.PageSize == 0 {
		t.Fatalf("list: %+v %v", page, err)
	}
	renamed, err := svc.UpdateLaboratory(testutil.As(admin), lab.UUID, &core.LabReq{Name: utils.Ptr("B2")})
	if err != nil || renamed.Name != "B2" {
		t.Fatalf("update: %+v %v", renamed, err)
	}
	if err := svc.DeleteLaboratory(testutil.As(admin), lab.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetLaboratory(testutil.As(worker), lab.UUID); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("expected RecordNotFound, got %v", err)
	}
}
