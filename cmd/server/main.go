package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad(config.Path("config.yaml"))

	// 2. 初始化日志
	if _, err := logger.Init(config.Conf.Log); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化数据库
	database.InitDatabase()
	defer database.Close()

	// 4. 设置路由
	r, err := route.SetupRouter(database.PostgresDB)
	if err != nil {
		logger.L().Fatal("router setup failed", zap.Error(err))
	}

	// 5. 启动服务，收到 SIGINT/SIGTERM 后优雅退出
	serverConf := config.Conf.Server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", serverConf.Host, serverConf.Port),
		Handler:      r,
		ReadTimeout:  serverConf.ReadTimeout,
		WriteTimeout: serverConf.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L().Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", serverConf.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConf.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
