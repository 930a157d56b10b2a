package history

import (
	"errors"
	"testing"
	"time"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	core "github.com/reagentlab/tracker/pkg/core/audit"
	"github.com/reagentlab/tracker/pkg/model"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
)

func TestHistoryAccess(t *testing.T) {
	gdb := testutil.NewDB(t)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	admin := testutil.CreateUser(t, gdb, "admin", true)

	producer := &model.ReagentField{Kind: model.FieldProducer, Name: "Sigma"}
	kind := &model.ReagentField{Kind: model.FieldReagentType, Name: "Solvent"}
	unit := &model.ReagentField{Kind: model.FieldUnit, Name: "ml"}
	for _, row := range []*model.ReagentField{producer, kind, unit} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed field: %v", err)
		}
	}
	reagent := &model.Reagent{Name: "Acetone", ProducerID: producer.ID, ReagentTypeID: kind.ID, UnitID: unit.ID, CatalogNo: "A1"}
	lab := &model.Laboratory{Name: "Lab A"}
	for _, row := range []any{reagent, lab} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	stock := &model.PersonalReagent{
		ReagentID:           reagent.ID,
		MainOwnerID:         owner.ID,
		LaboratoryID:        lab.ID,
		Room:                "1",
		ReceiptPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := gdb.Create(stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	recorder := core.NewRecorder(repoAudit.New())
	if err := recorder.Created(testutil.As(owner), core.EntityPersonalReagent, stock.UUID, map[string]any{"room": "1"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := recorder.Updated(testutil.As(lm), core.EntityPersonalReagent, stock.UUID,
		map[string]any{"room": "1"}, map[string]any{"room": "2"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := recorder.Created(testutil.As(lm), core.EntityLaboratory, lab.UUID, map[string]any{"name": "Lab A"}); err != nil {
		t.Fatalf("record: %v", err)
	}

	svc := New()
	tests := []struct {
		name   string
		user   *model.User
		entity string
		id     uuid.UUID
		total  int64
		err    error
	}{
		{"owner reads own stock", owner, core.EntityPersonalReagent, stock.UUID, 2, nil},
		{"lab manager reads stock", lm, core.EntityPersonalReagent, stock.UUID, 2, nil},
		{"other worker denied", worker, core.EntityPersonalReagent, stock.UUID, 0, code.PermissionDenied},
		{"worker denied laboratory", worker, core.EntityLaboratory, lab.UUID, 0, code.PermissionDenied},
		{"lab manager reads laboratory", lm, core.EntityLaboratory, lab.UUID, 1, nil},
		{"lab manager denied user", lm, core.EntityUser, owner.UUID, 0, code.PermissionDenied},
		{"admin reads user", admin, core.EntityUser, owner.UUID, 0, nil},
		{"unknown entity", admin, "widget", lab.UUID, 0, code.RecordNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.History(testutil.As(tt.user), tt.entity, tt.id, &core.HistoryReq{})
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("history: %v", err)
			}
			if page.Total != tt.total {
				t.Fatalf("expected %d, got %d", tt.total, page.Total)
			}
		})
	}

	page, err := svc.History(testutil.As(owner), core.EntityPersonalReagent, stock.UUID, &core.HistoryReq{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	latest := page.Data[0]
	if latest.ChangeType != model.ChangeUpdate || latest.Actor == nil || *latest.Actor != lm.UUID {
		t.Fatalf("unexpected latest record %+v", latest)
	}
}
