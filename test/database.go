package test

import (
	"errors"
	"fmt"
	"testing"

	"pageant-scoring-system/config"
	"pageant-scoring-system/internal/global/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupDB 为每个测试创建独立的内存 SQLite 并安装为 database.DB
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(config.ModeRelease))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库随最后一个连接关闭而销毁
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Use(db))
	return db
}

// ErrInjected FailCreates 注入的写入错误
var ErrInjected = errors.New("injected create failure")

// FailCreates 让当前 database.DB 上对指定表的 INSERT 全部失败，用于验证事务回滚
func FailCreates(t *testing.T, table string) {
	t.Helper()
	err := database.DB.Callback().Create().Before("gorm:create").Register("test:fail_create_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	require.NoError(t, err)
}
