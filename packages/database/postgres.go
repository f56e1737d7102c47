package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PostgresConfig PostgreSQL 配置
type PostgresConfig struct {
	ServiceName     string        // 服务名称，用于日志标识
	DSN             string        // 完整连接串（DATABASE_URL），设置后忽略下面的分项
	Username        string        // 数据库用户名
	Password        string        // 数据库密码
	Host            string        // 数据库地址
	Port            int           // 数据库端口
	Database        string        // 数据库名称
	SSLMode         bool          // 是否启用 SSL
	LogLevel        string        // 日志级别: silent, error, warn, info
	MaxIdleConns    int           // 最大空闲连接数
	MaxOpenConns    int           // 最大打开连接数
	ConnMaxLifetime time.Duration // 连接最大生命周期
	Logger          *zap.Logger
}

// InitPostgres 打开连接池并校验连通性；DSN 优先，缺省时由分项拼接
func InitPostgres(config *PostgresConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}
	setDefaults(config)

	dsn := config.DSN
	if dsn == "" {
		dsn = buildDSN(config)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(config.Logger, config.LogLevel),
		TranslateError: false, // 列名由 TranslateError 自行解析
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	config.Logger.Info("database connected",
		zap.String("service", config.ServiceName),
		zap.String("driver", "postgres"),
		zap.Int("max_open_conns", config.MaxOpenConns),
	)
	return db, nil
}

// InitSQLite 本地试跑用；path 为空时使用内存库
func InitSQLite(path, logLevel string, zl *zap.Logger) (*gorm.DB, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	if zl == nil {
		zl = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(SQLiteDSN(path)), &gorm.Config{
		Logger: NewGormLogger(zl, logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("打开 sqlite 失败: %w", err)
	}

	// sqlite 只允许单写，避免 database is locked
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	zl.Info("database connected", zap.String("driver", "sqlite"), zap.String("path", path))
	return db, nil
}

// SQLiteDSN 打开外键约束；sqlite 默认不检查外键
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func setDefaults(c *PostgresConfig) {
	if c.ServiceName == "" {
		c.ServiceName = "conduit"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 50
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = time.Hour
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

func buildDSN(c *PostgresConfig) string {
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)
}
