// Package logger 全局 zap 日志
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"terminal-terrace/conduit/config"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init 按配置构建全局 logger，json 使用 production 配置，其余使用 development 配置
func Init(conf config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(conf.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if conf.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set 替换全局 logger
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// L 返回全局 logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Named 返回带组件名的 logger
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync 刷新缓冲
func Sync() {
	_ = L().Sync()
}

// Nop 丢弃一切输出，测试使用
func Nop() *zap.Logger {
	return zap.NewNop()
}
