package reagent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	core "github.com/reagentlab/tracker/pkg/core/reagent"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo/pubchem"
	"github.com/reagentlab/tracker/pkg/utils"
)

type fixture struct {
	producer, reagentType, unit *model.ReagentField
	danger, forcing             *model.HazardStatement
}

func seed(t *testing.T, gdb *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{
		producer:    &model.ReagentField{Kind: model.FieldProducer, Name: "Sigma", IsValidatedByAdmin: true},
		reagentType: &model.ReagentField{Kind: model.FieldReagentType, Name: "Solvent", IsValidatedByAdmin: true},
		unit:        &model.ReagentField{Kind: model.FieldUnit, Name: "ml", IsValidatedByAdmin: true},
	}
	for _, row := range []*model.ReagentField{f.producer, f.reagentType, f.unit} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed field: %v", err)
		}
	}
	pic := &model.Pictogram{Pictogram: "GHS08"}
	if err := gdb.Create(pic).Error; err != nil {
		t.Fatalf("seed pictogram: %v", err)
	}
	clp := &model.ClpClassification{Classification: "Carc. 1A", PictogramID: &pic.ID}
	if err := gdb.Create(clp).Error; err != nil {
		t.Fatalf("seed clp: %v", err)
	}
	f.danger = &model.HazardStatement{Code: "H225", Phrase: "Highly flammable", SignalWord: model.SignalWarning}
	f.forcing = &model.HazardStatement{
		Code:                  "H350",
		Phrase:                "May cause cancer",
		SignalWord:            model.SignalDanger,
		IsUsageRecordRequired: true,
		ClpClassificationID:   &clp.ID,
	}
	for _, row := range []*model.HazardStatement{f.danger, f.forcing} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed statement: %v", err)
		}
	}
	return f
}

func (f *fixture) req(catalog string, statements ...uuid.UUID) *core.ReagentReq {
	return &core.ReagentReq{
		Name:             utils.Ptr("Benzene"),
		Producer:         &f.producer.UUID,
		ReagentType:      &f.reagentType.UUID,
		Unit:             &f.unit.UUID,
		CatalogNo:        utils.Ptr(catalog),
		Volume:           utils.Ptr(decimal.RequireFromString("2.5")),
		HazardStatements: &statements,
	}
}

func TestCreateUsageRecordInvariant(t *testing.T) {
	gdb := testutil.NewDB(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	f := seed(t, gdb)
	svc := New()

	req := f.req("B-1", f.danger.UUID, f.forcing.UUID)
	req.IsUsageRecordRequired = utils.Ptr(false)
	_, err := svc.Create(testutil.As(worker), req)
	if !errors.Is(err, code.ReagentUsageRecordErr) || code.Of(err).HTTPStatus() != http.StatusBadRequest {
		t.Fatalf("expected usage record 400, got %v", err)
	}
	var e *code.Error
	if !errors.As(err, &e) || e.Fields["is_usage_record_required"] == "" {
		t.Fatalf("expected error keyed on is_usage_record_required, got %v", err)
	}

	req.IsUsageRecordRequired = utils.Ptr(true)
	req.IsValidatedByAdmin = utils.Ptr(true)
	got, err := svc.Create(testutil.As(worker), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.IsValidatedByAdmin {
		t.Fatalf("contributor submissions must stay unvalidated")
	}
	if got.SignalWord != model.SignalDanger {
		t.Fatalf("expected Danger to win, got %q", got.SignalWord)
	}
	if len(got.Pictograms) != 1 || got.Pictograms[0].Pictogram != "GHS08" {
		t.Fatalf("unexpected pictograms %+v", got.Pictograms)
	}
	if !got.Volume.Equal(decimal.RequireFromString("2.5")) || got.Producer == nil || got.Producer.Name != "Sigma" {
		t.Fatalf("unexpected reagent %+v", got.Reagent)
	}

	_, err = svc.Create(testutil.As(worker), f.req("B-1"))
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate (producer, catalog_no) rejection, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	gdb := testutil.NewDB(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	f := seed(t, gdb)
	svc := New()

	missing := uuid.NewV4()
	req := &core.ReagentReq{Name: utils.Ptr(" "), Producer: &missing, CAS: utils.Ptr("71-43-3")}
	_, err := svc.Create(testutil.As(worker), req)
	var e *code.Error
	if !errors.As(err, &e) || e.Code != code.ValidationErr {
		t.Fatalf("expected ValidationErr, got %v", err)
	}
	for _, field := range []string{"name", "producer", "reagent_type", "unit", "catalog_no", "cas_no"} {
		if e.Fields[field] == "" {
			t.Fatalf("expected field %s in %+v", field, e.Fields)
		}
	}

	ok := f.req("B-2")
	ok.CAS = utils.Ptr("71-43-2")
	if _, err := svc.Create(testutil.As(worker), ok); err != nil {
		t.Fatalf("valid cas rejected: %v", err)
	}
}

func TestUpdateAdminOnly(t *testing.T) {
	gdb := testutil.NewDB(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	f := seed(t, gdb)
	svc := New()

	created, err := svc.Create(testutil.As(admin), f.req("B-3", f.danger.UUID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsValidatedByAdmin || created.SignalWord != model.SignalWarning {
		t.Fatalf("unexpected admin created reagent %+v", created)
	}
	if _, err := svc.Update(testutil.As(worker), created.UUID, &core.ReagentReq{Name: utils.Ptr("x")}, true); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}

	statements := []uuid.UUID{f.forcing.UUID}
	_, err = svc.Update(testutil.As(admin), created.UUID, &core.ReagentReq{HazardStatements: &statements}, true)
	if !errors.Is(err, code.ReagentUsageRecordErr) {
		t.Fatalf("linking a forcing statement must require usage records, got %v", err)
	}
	got, err := svc.Update(testutil.As(admin), created.UUID, &core.ReagentReq{
		HazardStatements:      &statements,
		IsUsageRecordRequired: utils.Ptr(true),
	}, true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Benzene" || len(got.HazardStatements) != 1 || got.HazardStatements[0].Code != "H350" {
		t.Fatalf("unexpected update result %+v", got.Reagent)
	}

	if err := svc.Delete(testutil.As(admin), created.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(testutil.As(worker), created.UUID); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("expected RecordNotFound, got %v", err)
	}
}

func TestFullUpdateClearsOptionalFields(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	f := seed(t, gdb)
	concentration := &model.ReagentField{Kind: model.FieldConcentration, Name: "1 M", IsValidatedByAdmin: true}
	purity := &model.ReagentField{Kind: model.FieldPurityQuality, Name: "HPLC", IsValidatedByAdmin: true}
	cold := &model.ReagentField{Kind: model.FieldStorageCondition, Name: "2-8 C", IsValidatedByAdmin: true}
	for _, row := range []*model.ReagentField{concentration, purity, cold} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed field: %v", err)
		}
	}
	svc := New()

	in := f.req("B-9")
	in.Concentration = &concentration.UUID
	in.PurityQuality = &purity.UUID
	in.StorageConditions = &[]uuid.UUID{cold.UUID}
	created, err := svc.Create(testutil.As(admin), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Concentration == nil || created.PurityQuality == nil || len(created.StorageConditions) != 1 {
		t.Fatalf("optional fields must be stored, got %+v", created.Reagent)
	}

	patched, err := svc.Update(testutil.As(admin), created.UUID, &core.ReagentReq{Name: utils.Ptr("Toluene")}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Concentration == nil || patched.PurityQuality == nil || len(patched.StorageConditions) != 1 {
		t.Fatalf("partial update must keep optional fields, got %+v", patched.Reagent)
	}

	replaced, err := svc.Update(testutil.As(admin), created.UUID, f.req("B-9"), false)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if replaced.Concentration != nil || replaced.ConcentrationID != nil {
		t.Fatalf("concentration must be cleared, got %+v", replaced.Concentration)
	}
	if replaced.PurityQuality != nil || replaced.PurityQualityID != nil {
		t.Fatalf("purity must be cleared, got %+v", replaced.PurityQuality)
	}
	if len(replaced.StorageConditions) != 0 {
		t.Fatalf("storage conditions must be cleared, got %+v", replaced.StorageConditions)
	}
}

func TestQueryCAS(t *testing.T) {
	gdb := testutil.NewDB(t)
	worker := testutil.CreateUser(t, gdb, "worker", false, common.LabWorker)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":241,"Title":"Benzene","MolecularFormula":"C6H6","CanonicalSMILES":"C1=CC=CC=C1"}]}}`))
	}))
	defer srv.Close()

	svc := New().(*reagentImpl)
	svc.pubchem = pubchem.NewWithAddr(srv.URL)

	resp, err := svc.QueryCAS(testutil.As(worker), &core.CasReq{CAS: "71-43-2"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Compound.Name != "Benzene" || len(resp.Reagents) != 0 {
		t.Fatalf("unexpected cas response %+v", resp)
	}
	if _, err := svc.QueryCAS(testutil.As(worker), &core.CasReq{CAS: "71-43-3"}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected check digit rejection, got %v", err)
	}
}
