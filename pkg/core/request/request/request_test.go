package request

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/core/notify"
	core "github.com/reagentlab/tracker/pkg/core/request"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	"github.com/reagentlab/tracker/pkg/utils"
)

// brokenStock fails every stock write, everything else goes to the real repo.
type brokenStock struct {
	repo.PersonalReagentRepo
}

var errStockWrite = errors.New("stock write failed")

func (brokenStock) UpdatePersonalReagent(context.Context, int64, map[string]any) error {
	return errStockWrite
}

type fakeCenter struct {
	mu   sync.Mutex
	msgs []*notify.SendMsg
}

func (f *fakeCenter) Registry(context.Context, notify.Action, notify.HandleFunc) error { return nil }

func (f *fakeCenter) Broadcast(_ context.Context, msg *notify.SendMsg) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeCenter) Close(context.Context) error { return nil }

func (f *fakeCenter) last() *notify.SendMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.msgs) == 0 {
		return nil
	}
	return f.msgs[len(f.msgs)-1]
}

// stock seeds one personal reagent owned by owner, attached to project when given.
func stock(t *testing.T, gdb *gorm.DB, owner *model.User, project *model.ProjectProcedure) *model.PersonalReagent {
	t.Helper()
	producer := &model.ReagentField{Kind: model.FieldProducer, Name: "P-" + owner.Username}
	kind := &model.ReagentField{Kind: model.FieldReagentType, Name: "T-" + owner.Username}
	unit := &model.ReagentField{Kind: model.FieldUnit, Name: "U-" + owner.Username}
	for _, row := range []*model.ReagentField{producer, kind, unit} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed field: %v", err)
		}
	}
	reagent := &model.Reagent{Name: "Acetone", ProducerID: producer.ID, ReagentTypeID: kind.ID, UnitID: unit.ID, CatalogNo: "A1"}
	lab := &model.Laboratory{Name: "Lab " + owner.Username}
	for _, row := range []any{reagent, lab} {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	pr := &model.PersonalReagent{
		ReagentID:           reagent.ID,
		MainOwnerID:         owner.ID,
		LaboratoryID:        lab.ID,
		Room:                "1",
		ReceiptPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if project != nil {
		pr.ProjectProcedureID = &project.ID
	}
	if err := gdb.Create(pr).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
	return pr
}

func reload(t *testing.T, gdb *gorm.DB, id int64) *model.PersonalReagent {
	t.Helper()
	pr := &model.PersonalReagent{}
	if err := gdb.First(pr, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	return pr
}

func TestCreateRules(t *testing.T) {
	gdb := testutil.NewDB(t)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	asker := testutil.CreateUser(t, gdb, "asker", false, common.LabWorker)
	other := testutil.CreateUser(t, gdb, "other", false, common.LabWorker)
	pr := stock(t, gdb, owner, nil)
	center := &fakeCenter{}
	svc := New(center)

	if _, err := svc.Create(testutil.As(owner), &core.RequestReq{PersonalReagent: &pr.UUID}); !errors.Is(err, code.RequestOwnReagentErr) {
		t.Fatalf("expected RequestOwnReagentErr, got %v", err)
	}

	created, err := svc.Create(testutil.As(asker), &core.RequestReq{PersonalReagent: &pr.UUID, RequesterComment: utils.Ptr("  need it ")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != model.RequestAwaiting || *created.RequesterComment != "need it" {
		t.Fatalf("unexpected request %+v", created.ReagentRequest)
	}
	msg := center.last()
	if msg == nil || msg.Event != notify.RequestCreated || len(msg.Recipients) != 1 || msg.Recipients[0] != owner.UUID.String() {
		t.Fatalf("owner should be notified, got %+v", msg)
	}

	if _, err := svc.Create(testutil.As(other), &core.RequestReq{PersonalReagent: &pr.UUID}); !errors.Is(err, code.RequestDuplicateErr) {
		t.Fatalf("expected RequestDuplicateErr, got %v", err)
	}

	if err := gdb.Model(&model.PersonalReagent{}).Where("id = ?", pr.ID).Update("is_archived", true).Error; err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := svc.Delete(testutil.As(asker), created.UUID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if _, err := svc.Create(testutil.As(other), &core.RequestReq{PersonalReagent: &pr.UUID}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("archived stock must not be requestable, got %v", err)
	}
}

func TestApproveTransfersOwnership(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	asker := testutil.CreateUser(t, gdb, "asker", false, common.LabWorker)
	project := &model.ProjectProcedure{Name: "P1", ManagerID: pm.ID, Workers: []*model.User{pm, owner}}
	if err := gdb.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	pr := stock(t, gdb, owner, project)
	center := &fakeCenter{}
	svc := New(center)

	created, err := svc.Create(testutil.As(asker), &core.RequestReq{PersonalReagent: &pr.UUID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ChangeStatus(testutil.As(asker), created.UUID, &core.ChangeStatusReq{Status: model.RequestApproved}); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("requester must not answer, got %v", err)
	}
	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestAwaiting}); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected ValidationErr, got %v", err)
	}

	answered, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestApproved, ResponderComment: utils.Ptr("ok")})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if answered.Status != model.RequestApproved {
		t.Fatalf("unexpected status %s", answered.Status)
	}
	after := reload(t, gdb, pr.ID)
	if after.MainOwnerID != asker.ID {
		t.Fatalf("ownership must move to the requester, owner is %d", after.MainOwnerID)
	}
	if after.ProjectProcedureID != nil {
		t.Fatalf("project must be detached when the new owner is not a worker")
	}
	if msg := center.last(); msg == nil || msg.Event != notify.RequestAnswered || msg.Recipients[0] != asker.UUID.String() {
		t.Fatalf("requester should be notified, got %+v", msg)
	}

	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestRejected}); !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("previous owner must not answer again, got %v", err)
	}
	if err := svc.Delete(testutil.As(asker), created.UUID); !errors.Is(err, code.RequestStatusErr) {
		t.Fatalf("expected RequestStatusErr, got %v", err)
	}
}

func TestApproveRollsBackOnFailedTransfer(t *testing.T) {
	gdb := testutil.NewDB(t)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	asker := testutil.CreateUser(t, gdb, "asker", false, common.LabWorker)
	pr := stock(t, gdb, owner, nil)
	center := &fakeCenter{}
	svc := New(center).(*requestImpl)

	created, err := svc.Create(testutil.As(asker), &core.RequestReq{PersonalReagent: &pr.UUID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sent := len(center.msgs)

	svc.personalStore = brokenStock{PersonalReagentRepo: svc.personalStore}
	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestApproved}); !errors.Is(err, errStockWrite) {
		t.Fatalf("expected the transfer error, got %v", err)
	}

	got, err := svc.Get(testutil.As(owner), created.UUID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.RequestAwaiting || got.ResponderComment != nil {
		t.Fatalf("request must stay awaiting, got %+v", got.ReagentRequest)
	}
	if after := reload(t, gdb, pr.ID); after.MainOwnerID != owner.ID {
		t.Fatalf("owner must be unchanged, got %d", after.MainOwnerID)
	}
	if len(center.msgs) != sent {
		t.Fatalf("a failed answer must not notify")
	}
}

func TestApproveAdminRequester(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	project := &model.ProjectProcedure{Name: "P2", ManagerID: pm.ID, Workers: []*model.User{pm, owner}}
	if err := gdb.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	pr := stock(t, gdb, owner, project)
	svc := New(&fakeCenter{})

	created, err := svc.Create(testutil.As(admin), &core.RequestReq{PersonalReagent: &pr.UUID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	page, err := svc.Notifications(testutil.As(owner), &core.ListReq{})
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("owner should see the admin's request, got %d", page.Total)
	}

	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestApproved}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	after := reload(t, gdb, pr.ID)
	if after.MainOwnerID != admin.ID {
		t.Fatalf("ownership must move to the admin, owner is %d", after.MainOwnerID)
	}
	if after.ProjectProcedureID != nil {
		t.Fatalf("project must be detached, the admin is not a worker")
	}
}

func TestRejectKeepsOwnerAndListings(t *testing.T) {
	gdb := testutil.NewDB(t)
	owner := testutil.CreateUser(t, gdb, "owner", false, common.LabWorker)
	asker := testutil.CreateUser(t, gdb, "asker", false, common.LabWorker)
	outsider := testutil.CreateUser(t, gdb, "outsider", false, common.LabWorker)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	pr := stock(t, gdb, owner, nil)
	svc := New(&fakeCenter{})

	created, err := svc.Create(testutil.As(asker), &core.RequestReq{PersonalReagent: &pr.UUID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name  string
		call  func() (*common.PageResp[[]*core.RequestResp], error)
		total int64
	}{
		{"owner notifications", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.Notifications(testutil.As(owner), &core.ListReq{})
		}, 1},
		{"asker notifications", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.Notifications(testutil.As(asker), &core.ListReq{})
		}, 0},
		{"admin notifications", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.Notifications(testutil.As(admin), &core.ListReq{})
		}, 1},
		{"asker me", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.Me(testutil.As(asker), &core.ListReq{})
		}, 1},
		{"outsider list", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.List(testutil.As(outsider), &core.ListReq{})
		}, 0},
		{"owner list", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.List(testutil.As(owner), &core.ListReq{})
		}, 1},
		{"admin list", func() (*common.PageResp[[]*core.RequestResp], error) {
			return svc.List(testutil.As(admin), &core.ListReq{})
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := tt.call()
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
	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestRejected}); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got := reload(t, gdb, pr.ID); got.MainOwnerID != owner.ID {
		t.Fatalf("rejection must keep the owner, got %d", got.MainOwnerID)
	}
	if _, err := svc.ChangeStatus(testutil.As(owner), created.UUID, &core.ChangeStatusReq{Status: model.RequestApproved}); !errors.Is(err, code.RequestStatusErr) {
		t.Fatalf("expected RequestStatusErr, got %v", err)
	}
	if _, err := svc.Create(testutil.As(outsider), &core.RequestReq{PersonalReagent: &pr.UUID}); err != nil {
		t.Fatalf("a rejected request must not block new ones: %v", err)
	}
}
