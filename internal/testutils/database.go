package testutils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/model"
	dbPkg "terminal-terrace/conduit/packages/database"
)

// TestJWTSecret 测试用签名密钥
const TestJWTSecret = "test-secret-key"

// SetupTestDB 打开一个独立的内存 SQLite 库并迁移全部表
// 返回的事务同时设为全局 database.PostgresDB，测试结束时回滚
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试一个命名的共享缓存库，互不干扰
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dbPkg.SQLiteDSN(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// 内存库在最后一个连接关闭时消失
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	SetupTestConfig(t)

	// 全局句柄与返回值共用同一事务，单连接下不会互相阻塞
	tx := db.Begin()
	database.PostgresDB = tx
	t.Cleanup(func() {
		tx.Rollback()
		database.PostgresDB = nil
		_ = sqlDB.Close()
	})

	return tx
}

// SetupTestConfig 安装一份最小的全局配置
func SetupTestConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	prev := config.Conf
	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{
			Environment: config.EnvDevelopment,
			APIURL:      "http://localhost:3000",
		},
		JWT: config.JWTConfig{Secret: TestJWTSecret},
	}
	t.Cleanup(func() { config.Conf = prev })

	return config.Conf
}
