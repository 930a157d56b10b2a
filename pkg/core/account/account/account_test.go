package account

import (
	"context"
	"errors"
	"testing"

	"github.com/reagentlab/tracker/internal/testutil"
	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	core "github.com/reagentlab/tracker/pkg/core/account"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestCreateRequiresRoleForNonStaff(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	svc := New()

	_, err := svc.Create(testutil.As(admin), &core.UserReq{Username: utils.Ptr("alice"), Roles: &[]common.LabRole{}})
	if !errors.Is(err, code.UserRoleErr) {
		t.Fatalf("expected UserRoleErr, got %v", err)
	}

	resp, err := svc.Create(testutil.As(admin), &core.UserReq{
		Username: utils.Ptr("alice"),
		Roles:    &[]common.LabRole{common.LabWorker},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !resp.IsActive || len(resp.Roles) != 1 || resp.Roles[0] != common.LabWorker {
		t.Fatalf("unexpected user %+v", resp)
	}

	staff, err := svc.Create(testutil.As(admin), &core.UserReq{Username: utils.Ptr("root"), IsStaff: utils.Ptr(true)})
	if err != nil {
		t.Fatalf("staff without roles: %v", err)
	}
	if !staff.IsStaff {
		t.Fatalf("expected staff user")
	}

	_, err = svc.Create(testutil.As(admin), &core.UserReq{
		Username: utils.Ptr("alice"),
		Roles:    &[]common.LabRole{common.LabWorker},
	})
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected duplicate username rejection, got %v", err)
	}
}

func TestCreateDeniedForLabRoles(t *testing.T) {
	gdb := testutil.NewDB(t)
	lm := testutil.CreateUser(t, gdb, "lm", false, common.LabManager)

	_, err := New().Create(testutil.As(lm), &core.UserReq{
		Username: utils.Ptr("bob"),
		Roles:    &[]common.LabRole{common.LabWorker},
	})
	if !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if _, err := New().Me(context.Background()); !errors.Is(err, code.UnLogin) {
		t.Fatalf("expected UnLogin, got %v", err)
	}
}

func TestProjectManagerRoleInUse(t *testing.T) {
	gdb := testutil.NewDB(t)
	pm := testutil.CreateUser(t, gdb, "pm", false, common.ProjectManager)
	if err := gdb.Create(&model.ProjectProcedure{Name: "NCN-1", ManagerID: pm.ID, Workers: []*model.User{pm}}).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	svc := New()

	_, err := svc.Update(testutil.As(pm), pm.UUID, &core.UserReq{Roles: &[]common.LabRole{common.LabWorker}}, true)
	if !errors.Is(err, code.ValidationErr) {
		t.Fatalf("self grant should be rejected, got %v", err)
	}

	_, err = svc.Update(testutil.As(pm), pm.UUID, &core.UserReq{Roles: &[]common.LabRole{}}, true)
	if !errors.Is(err, code.UserRoleErr) {
		t.Fatalf("expected UserRoleErr, got %v", err)
	}

	admin := testutil.CreateUser(t, gdb, "admin", true)
	_, err = svc.Update(testutil.As(admin), pm.UUID, &core.UserReq{
		Username: utils.Ptr("pm-renamed"),
		Roles:    &[]common.LabRole{common.LabWorker},
	}, true)
	if !errors.Is(err, code.ProjectManagerInUseErr) {
		t.Fatalf("expected ProjectManagerInUseErr, got %v", err)
	}
	var e *code.Error
	if !errors.As(err, &e) || e.Fields["roles"] == "" {
		t.Fatalf("expected roles field error, got %v", err)
	}
	got, err := svc.Get(testutil.As(admin), pm.UUID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "pm" {
		t.Fatalf("rejected update must not be written, username is %q", got.Username)
	}

	if err := gdb.Where("manager_id = ?", pm.ID).Delete(&model.ProjectProcedure{}).Error; err != nil {
		t.Fatalf("delete project: %v", err)
	}
	demoted, err := svc.Update(testutil.As(admin), pm.UUID, &core.UserReq{Roles: &[]common.LabRole{common.LabWorker}}, true)
	if err != nil {
		t.Fatalf("demote: %v", err)
	}
	if len(demoted.Roles) != 1 || demoted.Roles[0] != common.LabWorker {
		t.Fatalf("unexpected roles %+v", demoted.Roles)
	}
}

func TestSelfUpdate(t *testing.T) {
	gdb := testutil.NewDB(t)
	u := testutil.CreateUser(t, gdb, "carol", false, common.LabWorker, common.ProjectManager)
	other := testutil.CreateUser(t, gdb, "dave", false, common.LabWorker)
	svc := New()

	resp, err := svc.Update(testutil.As(u), u.UUID, &core.UserReq{
		FirstName: utils.Ptr("Carol"),
		IsStaff:   utils.Ptr(true),
		Roles:     &[]common.LabRole{common.LabWorker},
	}, true)
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if resp.FirstName != "Carol" || resp.IsStaff || len(resp.Roles) != 1 {
		t.Fatalf("unexpected self update result %+v", resp)
	}

	_, err = svc.Update(testutil.As(u), other.UUID, &core.UserReq{FirstName: utils.Ptr("x")}, true)
	if !errors.Is(err, code.PermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}

	var history []*model.AuditRecord
	if err := gdb.Where("entity = ? AND entity_uuid = ?", "user", u.UUID).Find(&history).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 1 || history[0].ChangeType != model.ChangeUpdate || history[0].ActorID == nil || *history[0].ActorID != u.ID {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestDelete(t *testing.T) {
	gdb := testutil.NewDB(t)
	admin := testutil.CreateUser(t, gdb, "admin", true)
	u := testutil.CreateUser(t, gdb, "erin", false, common.LabWorker)
	svc := New()

	if err := svc.Delete(testutil.As(admin), admin.UUID); !errors.Is(err, code.ValidationErr) {
		t.Fatalf("expected self delete rejection, got %v", err)
	}
	if err := svc.Delete(testutil.As(admin), u.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(testutil.As(admin), u.UUID); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("expected RecordNotFound, got %v", err)
	}
	if err := svc.Delete(testutil.As(admin), uuid.NewV4()); !errors.Is(err, code.RecordNotFound) {
		t.Fatalf("expected RecordNotFound, got %v", err)
	}
}
