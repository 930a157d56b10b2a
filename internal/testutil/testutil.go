// Package testutil wires an sqlite backed datastore for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/model/migrate"
)

// NewDB opens a fresh sqlite file, migrates every table and installs it as the global datastore.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "tracker.db") + "?_busy_timeout=5000"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetDatastore(db.NewDatastore(gdb))
	if err := migrate.Table(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// CreateUser inserts an active user holding roles.
func CreateUser(t *testing.T, gdb *gorm.DB, username string, staff bool, roles ...common.LabRole) *model.User {
	t.Helper()
	u := &model.User{Username: username, IsStaff: staff, IsActive: true}
	for _, r := range roles {
		u.Roles = append(u.Roles, &model.UserRole{Role: r})
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// As returns a context carrying u as the authenticated caller.
func As(u *model.User) context.Context {
	return auth.WithUser(context.Background(), auth.ToUserData(u))
}
