package project

import (
	"errors"
	"testing"
	"time"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	core "github.com/reagentlab/tracker/pkg/core/project"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestCreateShapes(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	svc := New()

	if _, err := svc.Create(testutil.As(worker), &core.ProjectReq{Name: utils.Ptr("P")}); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}

	own, err := svc.Create(testutil.As(pm), &core.ProjectReq{
		Name:               utils.Ptr("NCN-2024-01"),
		Workers:            &[]uuid.UUID{worker.UUID},
		IsValidatedByAdmin: utils.Ptr(true),
	})
	if err != nil {
		t.Fatalf("pm create: %v", err)
	}
	if own.IsValidatedByAdmin || own.Manager.UUID != pm.UUID || len(own.Workers) != 2 {
		t.Fatalf("unexpected pm procedure %+v", own)
	}

	if _, err := svc.Create(testutil.As(lm), &core.ProjectReq{Name: utils.Ptr("X"), Manager: &worker.UUID}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("manager without project manager role should be rejected, got %v", err)
	}
	validated, err := svc.Create(testutil.As(lm), &core.ProjectReq{Name: utils.Ptr("Y"), Manager: &pm.UUID})
	if err != nil {
		t.Fatalf("lm create: %v", err)
	}
	if !validated.IsValidatedByAdmin || len(validated.Workers) != 1 {
		t.Fatalf("unexpected lm procedure %+v", validated)
	}
	if _, err := svc.Create(testutil.As(lm), &core.ProjectReq{Name: utils.Ptr("Y"), Manager: &pm.UUID}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate name rejection, got %v", err)
	}
}

func TestListFilteredToMembership(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	outsider := testutil.CreateUser(t, gdb, "outsider", false, common.LabWorker)
	svc := New()

	created, err := svc.Create(testutil.As(pm), &core.ProjectReq{Name: utils.Ptr("P1"), Workers: &[]uuid.UUID{worker.UUID}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(testutil.As(lm), &core.ProjectReq{Name: utils.Ptr("P2"), Manager: &pm.UUID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name  string
		user  *model.User
		total int64
	}{
		{"lab manager sees all", lm, 2},
		{"manager sees managed", pm, 2},
		{"worker sees membership", worker, 1},
		{"outsider sees none", outsider, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(testutil.As(tt.user), &core.ListReq{})
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if page.Total != tt.total {
				t.Fatalf("expected %d, got %d", tt.total, page.Total)
			}
		})
	}

	if _, err := svc.Get(testutil.As(outsider), created.UUID); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if _, err := svc.Get(testutil.As(worker), created.UUID); err != nil {
		t.Fatalf("member retrieve: %v", err)
	}
}

func TestUpdateKeepsManagerAmongWorkers(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	other := testutil.CreateUser(t, gdb, "pm2", false, common.ProjectManager)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	svc := New()

	created, err := svc.Create(testutil.As(pm), &core.ProjectReq{Name: utils.Ptr("P1"), Workers: &[]uuid.UUID{worker.UUID}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(testutil.As(pm), created.UUID, &core.ProjectReq{Workers: &[]uuid.UUID{}}, true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Workers) != 1 || got.Workers[0].UUID != pm.UUID {
		t.Fatalf("manager must stay a worker, got %+v", got.Workers)
	}

	if _, err := svc.Update(testutil.As(pm), created.UUID, &core.ProjectReq{Manager: &other.UUID}, true); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("project manager hand over should be rejected, got %v", err)
	}
	if _, err := svc.Update(testutil.As(worker), created.UUID, &core.ProjectReq{Name: utils.Ptr("x")}, true); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	moved, err := svc.Update(testutil.As(lm), created.UUID, &core.ProjectReq{Manager: &other.UUID}, true)
	if err != nil {
		t.Fatalf("lm hand over: %v", err)
	}
	if moved.Manager.UUID != other.UUID || len(moved.Workers) != 2 {
		t.Fatalf("unexpected hand over result %+v", moved)
	}

	if err := svc.Delete(testutil.As(pm), created.UUID); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if err := svc.Delete(testutil.As(lm), created.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestUpdateRejectsStrandedStock(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	helper := testutil.CreateUser(t, gdb, "helper", false, common.LabWorker)
	svc := New()

	created, err := svc.Create(testutil.As(pm), &core.ProjectReq{Name: utils.Ptr("P1"), Workers: &[]uuid.UUID{worker.UUID, helper.UUID}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	row := &model.ProjectProcedure{}
	if err := gdb.First(row, "uuid = ?", created.UUID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	producer := &model.ReagentField{Kind: model.FieldProducer, Name: "Sigma"}
	kind := &model.ReagentField{Kind: model.FieldReagentType, Name: "Solvent"}
	unit := &model.ReagentField{Kind: model.FieldUnit, Name: "ml"}
	for _, f := range []*model.ReagentField{producer, kind, unit} {
		if err := gdb.Create(f).Error; err != nil {
			t.Fatalf("seed field: %v", err)
		}
	}
	reagent := &model.Reagent{Name: "Ethanol", ProducerID: producer.ID, ReagentTypeID: kind.ID, UnitID: unit.ID, CatalogNo: "E1"}
	lab := &model.Laboratory{Name: "Lab A"}
	for _, r := range []any{reagent, lab} {
		if err := gdb.Create(r).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	for _, owner := range []*model.User{pm, pm, worker} {
		if err := gdb.Create(&model.PersonalReagent{
			ReagentID:           reagent.ID,
			MainOwnerID:         owner.ID,
			ProjectProcedureID:  &row.ID,
			LaboratoryID:        lab.ID,
			Room:                "1",
			ReceiptPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}).Error; err != nil {
			t.Fatalf("seed stock: %v", err)
		}
	}

	if _, err := svc.Update(testutil.As(pm), created.UUID, &core.ProjectReq{Workers: &[]uuid.UUID{helper.UUID}}, true); !errors.Is(err, code.PersonalReagentProjectErr) {
		t.Fatalf("expected PersonalReagentProjectErr, got %v", err)
	}
	if got, err := svc.Get(testutil.As(pm), created.UUID); err != nil || len(got.Workers) != 3 {
		t.Fatalf("rejected update must keep the workers, got %+v %v", got, err)
	}

	got, err := svc.Update(testutil.As(pm), created.UUID, &core.ProjectReq{Workers: &[]uuid.UUID{worker.UUID}}, true)
	if err != nil {
		t.Fatalf("drop a worker without stock: %v", err)
	}
	if len(got.Workers) != 2 {
		t.Fatalf("expected manager and worker, got %+v", got.Workers)
	}
}
