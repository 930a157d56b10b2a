package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

// IDOrUUIDTranslate is embedded by every gorm repository. It resolves external uuids and carries
// the generic single table writes.
type IDOrUUIDTranslate interface {
	UUID2ID(ctx context.Context, tableModel any, uuids ...uuid.UUID) map[uuid.UUID]int64
	ID2UUID(ctx context.Context, tableModel any, ids ...int64) map[int64]uuid.UUID
	CreateData(ctx context.Context, data any) error
	UpdateData(ctx context.Context, data any, cond map[string]any, keys ...string) error
	DelData(ctx context.Context, tableModel any, cond map[string]any) error
	ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error
	DBWithContext(ctx context.Context) *gorm.DB
}

type BaseDB struct {
	*db.Datastore
}

func NewBaseDB() *BaseDB {
	return &BaseDB{Datastore: db.DB()}
}

type idUUID struct {
	ID   int64
	UUID uuid.UUID
}

func (b *BaseDB) UUID2ID(ctx context.Context, tableModel any, uuids ...uuid.UUID) map[uuid.UUID]int64 {
	res := make(map[uuid.UUID]int64, len(uuids))
	if len(uuids) == 0 {
		return res
	}
	rows := make([]*idUUID, 0, len(uuids))
	if err := b.DBWithContext(ctx).Model(tableModel).
		Select("id, uuid").
		Where("uuid IN ?", uuids).
		Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "UUID2ID err: %+v", err)
		return res
	}
	for _, r := range rows {
		res[r.UUID] = r.ID
	}
	return res
}

func (b *BaseDB) ID2UUID(ctx context.Context, tableModel any, ids ...int64) map[int64]uuid.UUID {
	res := make(map[int64]uuid.UUID, len(ids))
	if len(ids) == 0 {
		return res
	}
	rows := make([]*idUUID, 0, len(ids))
	if err := b.DBWithContext(ctx).Model(tableModel).
		Select("id, uuid").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "ID2UUID err: %+v", err)
		return res
	}
	for _, r := range rows {
		res[r.ID] = r.UUID
	}
	return res
}

func (b *BaseDB) CreateData(ctx context.Context, data any) error {
	if err := b.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateData err: %+v", err)
		return TranslateErr(err, code.CreateDataErr)
	}
	return nil
}

// UpdateData writes the selected keys of data to the rows matching cond. With no keys the non
// zero fields of data are written.
func (b *BaseDB) UpdateData(ctx context.Context, data any, cond map[string]any, keys ...string) error {
	query := b.DBWithContext(ctx).Model(data)
	if len(cond) > 0 {
		query = query.Where(cond)
	}
	if len(keys) > 0 {
		query = query.Select(keys)
	}
	if err := query.Updates(data).Error; err != nil {
		logger.Errorf(ctx, "UpdateData err: %+v", err)
		return TranslateErr(err, code.UpdateDataErr)
	}
	return nil
}

func (b *BaseDB) DelData(ctx context.Context, tableModel any, cond map[string]any) error {
	if len(cond) == 0 {
		return code.DeleteDataErr.WithMsg("empty delete condition")
	}
	if err := b.DBWithContext(ctx).Where(cond).Delete(tableModel).Error; err != nil {
		logger.Errorf(ctx, "DelData err: %+v", err)
		return TranslateErr(err, code.DeleteDataErr)
	}
	return nil
}

// TranslateErr maps gorm sentinel errors onto api codes, fallback for everything else.
func TranslateErr(err error, fallback code.ErrCode) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return code.RecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return code.ConflictErr.WithMsg("a record with the same unique fields already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return code.ValidationErr.WithMsg("record is still referenced or references a missing record")
	}
	return fallback.WithErr(err)
}
