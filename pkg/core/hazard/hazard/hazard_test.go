package hazard

import (
	"errors"
	"testing"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	core "github.com/reagentlab/tracker/pkg/core/hazard"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestCatalogueWritesAdminOnly(t *testing.T) {
	gdb := testutil.NewDB(t)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	svc := New()

	if _, err := svc.CreatePictogram(testutil.As(lm), &core.PictogramReq{Pictogram: utils.Ptr("GHS02")}); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	p, err := svc.CreatePictogram(testutil.As(admin), &core.PictogramReq{Pictogram: utils.Ptr("GHS02")})
	if err != nil {
		t.Fatalf("create pictogram: %v", err)
	}
	clp, err := svc.CreateClpClassification(testutil.As(admin), &core.ClpClassificationReq{
		Classification: utils.Ptr("Flam. Liq. 2"),
		Pictogram:      &p.UUID,
	})
	if err != nil {
		t.Fatalf("create clp: %v", err)
	}
	if clp.Pictogram == nil || clp.Pictogram.Pictogram != "GHS02" {
		t.Fatalf("clp should carry its pictogram, got %+v", clp)
	}
	h, err := svc.CreateHazardStatement(testutil.As(admin), &core.HazardStatementReq{
		Code:              utils.Ptr("H225"),
		Phrase:            utils.Ptr("Highly flammable liquid and vapour"),
		SignalWord:        utils.Ptr(model.SignalDanger),
		ClpClassification: &clp.UUID,
	})
	if err != nil {
		t.Fatalf("create statement: %v", err)
	}
	got, err := svc.GetHazardStatement(testutil.As(lm), h.UUID)
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}
	if got.ClpClassification == nil || got.ClpClassification.Pictogram == nil {
		t.Fatalf("statement should preload clp and pictogram, got %+v", got)
	}

	_, err = svc.CreateHazardStatement(testutil.As(admin), &core.HazardStatementReq{
		Code:       utils.Ptr("H226"),
		Phrase:     utils.Ptr("Flammable liquid and vapour"),
		SignalWord: utils.Ptr(model.SignalWord("Caution")),
	})
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected signal word rejection, got %v", err)
	}
	_, err = svc.CreateHazardStatement(testutil.As(admin), &core.HazardStatementReq{Code: utils.Ptr("H225"), Phrase: utils.Ptr("dup")})
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate code rejection, got %v", err)
	}
}

func TestStatementRequiringUsageRecordFlagsReagents(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	svc := New()

	h, err := svc.CreateHazardStatement(testutil.As(admin), &core.HazardStatementReq{
		Code:   utils.Ptr("H350"),
		Phrase: utils.Ptr("May cause cancer"),
	})
	if err != nil {
		t.Fatalf("create statement: %v", err)
	}
	producer := &model.ReagentField{Kind: model.FieldProducer, Name: "Sigma"}
	unit := &model.ReagentField{Kind: model.FieldUnit, Name: "ml"}
	if err := gdb.Create(producer).Error; err != nil {
		t.Fatalf("producer: %v", err)
	}
	if err := gdb.Create(unit).Error; err != nil {
		t.Fatalf("unit: %v", err)
	}
	stmt := &model.HazardStatement{}
	if err := gdb.Where("uuid = ?", h.UUID).First(stmt).Error; err != nil {
		t.Fatalf("load statement: %v", err)
	}
	reagent := &model.Reagent{
		Name:             "Benzene",
		ProducerID:       producer.ID,
		ReagentTypeID:    producer.ID,
		CatalogNo:        "B-1",
		UnitID:           unit.ID,
		HazardStatements: []*model.HazardStatement{stmt},
	}
	if err := gdb.Create(reagent).Error; err != nil {
		t.Fatalf("reagent: %v", err)
	}

	if _, err := svc.UpdateHazardStatement(testutil.As(admin), h.UUID, &core.HazardStatementReq{
		IsUsageRecordRequired: utils.Ptr(true),
	}, true); err != nil {
		t.Fatalf("update statement: %v", err)
	}
	fresh := &model.Reagent{}
	if err := gdb.First(fresh, reagent.ID).Error; err != nil {
		t.Fatalf("reload reagent: %v", err)
	}
	if !fresh.IsUsageRecordRequired {
		t.Fatalf("linked reagent should now require usage records")
	}

	var records int64
	gdb.Model(&model.AuditRecord{}).Where("entity = ? AND entity_uuid = ?", "hazard_statement", h.UUID).Count(&records)
	if records != 2 {
		t.Fatalf("expected create and update history, got %d", records)
	}
}
