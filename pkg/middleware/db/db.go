package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

type LogConf struct {
	Level         string
	SlowThreshold time.Duration
}

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	SSLMode string
	LogConf LogConf
}

type txKey struct{}

// Datastore owns the gorm handle. Transactions travel through the context so repository
// calls made inside ExecTx join the open transaction.
type Datastore struct {
	db *gorm.DB
}

var store *Datastore

func NewDatastore(gdb *gorm.DB) *Datastore {
	return &Datastore{db: gdb}
}

// SetDatastore replaces the process wide datastore, used by migrate and tests.
func SetDatastore(ds *Datastore) {
	store = ds
}

func DB() *Datastore {
	return store
}

func InitPostgres(ctx context.Context, conf *Config) {
	sslMode := conf.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName, sslMode)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   gormLogger.Default.LogMode(gormLevel(conf.LogConf.Level)),
		DisableForeignKeyConstraintWhenMigrating: false,
		TranslateError:                           true,
	})
	if err != nil {
		logger.Fatalf(ctx, "open postgres err: %+v", err)
		return
	}

	if err := gdb.Use(tracing.NewPlugin()); err != nil {
		logger.Errorf(ctx, "gorm otel plugin err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db err: %+v", err)
		return
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	store = NewDatastore(gdb)
	logger.Infof(ctx, "postgres connected host: %s db: %s", conf.Host, conf.DBName)
}

func ClosePostgres(ctx context.Context) {
	if store == nil {
		return
	}
	if sqlDB, err := store.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Errorf(ctx, "close postgres err: %+v", err)
		}
	}
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext returns the transaction carried by ctx, or a fresh session bound to ctx.
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return d.db.WithContext(ctx)
}

// ExecTx runs fn in one transaction. Nested calls reuse the outer transaction.
func (d *Datastore) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok && tx != nil
}

func gormLevel(level string) gormLogger.LogLevel {
	switch level {
	case "debug":
		return gormLogger.Info
	case "warn":
		return gormLogger.Warn
	case "error":
		return gormLogger.Error
	case "silent":
		return gormLogger.Silent
	default:
		return gormLogger.Warn
	}
}
