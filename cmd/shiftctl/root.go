package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftboard/config"
	"shiftboard/internal/repository"
	"shiftboard/internal/service"
	"shiftboard/pkg/database"
	applogger "shiftboard/pkg/logger"
	"shiftboard/pkg/redis"
)

// app 命令共享的运行时依赖
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	rdb    *redis.Client
}

func (a *app) close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
	_ = a.logger.Sync()
}

// services 构建业务层，Redis 不可用时视图状态只在本次进程内有效
func (a *app) services() *service.Service {
	return service.NewService(a.cfg, repository.NewRepository(a.db), a.rdb, nil, a.logger)
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "shiftctl",
		Short:         "排班服务运维工具",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径（默认 ./config/config.yaml）")

	// bootstrap 按需连接依赖：withDB=false 时只加载配置与日志
	bootstrap := func(withDB bool) (*app, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger, err := applogger.NewLogger(&cfg.Log)
		if err != nil {
			return nil, err
		}
		a := &app{cfg: cfg, logger: logger}
		if !withDB {
			return a, nil
		}

		a.db, err = database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			return nil, fmt.Errorf("数据库连接失败: %w", err)
		}
		if rdb, err := redis.NewClient(&cfg.Redis, logger); err == nil {
			a.rdb = rdb
		} else {
			logger.Warn("Redis 不可用，沿用默认视图状态", zap.Error(err))
		}
		return a, nil
	}

	cmd.AddCommand(
		newMigrateCmd(bootstrap),
		newHolidaysCmd(bootstrap),
		newExportCmd(bootstrap),
		newTokenCmd(bootstrap),
	)
	return cmd
}

type bootstrapFunc func(withDB bool) (*app, error)
