package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type txItem struct {
	ID       uint `gorm:"primarykey"`
	TenantID uint
	Name     string
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&txItem{}))
	return gdb
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		assert.True(t, InTransaction(txCtx))
		return GetTxFromContext(txCtx, gdb).Create(&txItem{Name: "kept"}).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := GetTxFromContext(txCtx, gdb).Create(&txItem{Name: "dropped"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var names []string
	require.NoError(t, gdb.Model(&txItem{}).Pluck("name", &names).Error)
	assert.Equal(t, []string{"kept"}, names)
}

func TestTransactionManager_NestedJoinsOuter(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		_ = tm.RunInTransaction(outer, func(inner context.Context) error {
			return GetTxFromContext(inner, gdb).Create(&txItem{Name: "inner"}).Error
		})
		return errors.New("outer failed")
	})
	require.Error(t, err)

	var count int64
	gdb.Model(&txItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestByTenant(t *testing.T) {
	gdb := setupTestDB(t)
	require.NoError(t, gdb.Create(&[]txItem{{TenantID: 1, Name: "a"}, {TenantID: 2, Name: "b"}}).Error)

	var scoped, all int64
	gdb.Model(&txItem{}).Scopes(ByTenant(1)).Count(&scoped)
	gdb.Model(&txItem{}).Scopes(ByTenant(0)).Count(&all)
	assert.Equal(t, int64(1), scoped)
	assert.Equal(t, int64(2), all)
}
