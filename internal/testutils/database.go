// Package testutils 测试用的数据库辅助
package testutils

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"portfolio-terrace/api/internal/model"
)

// SetupTestDB 创建隔离的测试数据库(临时目录下的sqlite文件)并迁移全部表
// 测试结束后临时目录由testing自动清理
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return db
}
