package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/model"
	"terminal-terrace/conduit/packages/database"
)

const serviceName = "conduit"

var (
	PostgresDB *gorm.DB
	// RedisDB 为 nil 时刷新令牌与标签缓存不可用
	RedisDB *database.RedisClient
)

func InitDatabase() {
	initPostgres()
	initRedis()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	// 设置默认日志级别
	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	var err error
	if databaseConf.Driver == "sqlite" {
		PostgresDB, err = database.InitSQLite(databaseConf.URL, logLevel, logger.Named("db"))
	} else {
		PostgresDB, err = database.InitPostgres(
			&database.PostgresConfig{
				ServiceName:     serviceName,
				DSN:             databaseConf.URL,
				Username:        databaseConf.Username,
				Password:        databaseConf.Password,
				Host:            databaseConf.Host,
				Port:            databaseConf.Port,
				Database:        databaseConf.Database,
				SSLMode:         databaseConf.SSLMode,
				LogLevel:        logLevel,
				MaxIdleConns:    databaseConf.MaxIdleConns,
				MaxOpenConns:    databaseConf.MaxOpenConns,
				ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
				Logger:          logger.L(),
			},
		)
	}
	if err != nil {
		logger.L().Fatal("database init failed", zap.Error(err))
	}

	// 初始化数据库表
	if err := model.InitTable(PostgresDB); err != nil {
		logger.L().Fatal("database migration failed", zap.Error(err))
	}
}

func initRedis() {
	redisConf := config.Conf.Redis
	if !redisConf.Enabled {
		logger.L().Warn("redis disabled, refresh tokens and tag cache are off")
		return
	}

	var err error
	RedisDB, err = database.InitRedis(
		&database.RedisConfig{
			ServiceName: serviceName,
			Host:        redisConf.Host,
			Port:        redisConf.Port,
			Password:    redisConf.Password,
			DB:          redisConf.DB,
			PoolSize:    redisConf.PoolSize,
			Logger:      logger.L(),
		},
	)
	if err != nil {
		logger.L().Fatal("redis init failed", zap.Error(err))
	}
}

// Close 关闭连接，进程退出前调用
func Close() {
	if PostgresDB != nil {
		if sqlDB, err := PostgresDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if RedisDB != nil {
		_ = RedisDB.Close()
	}
}
