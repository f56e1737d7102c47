package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/model"
	"terminal-terrace/conduit/internal/seed"
	"terminal-terrace/conduit/packages/database"
)

type runFlags struct {
	pages       int
	perPage     int
	interval    time.Duration
	baseURL     string
	databaseURL string
	driver      string
}

var flags runFlags

func init() {
	runCmd.Flags().IntVar(&flags.pages, "pages", 0, "Number of listing pages to import (default from config, 100).")
	runCmd.Flags().IntVar(&flags.perPage, "per-page", 0, "Articles per listing page (default from config, 50).")
	runCmd.Flags().DurationVar(&flags.interval, "interval", 0, "Minimum delay between requests (default from config, 1s).")
	runCmd.Flags().StringVar(&flags.baseURL, "base-url", "", "dev.to API base URL.")
	runCmd.Flags().StringVar(&flags.databaseURL, "database-url", "", "Database DSN, or a file path for sqlite. Overrides DATABASE_URL.")
	runCmd.Flags().StringVar(&flags.driver, "driver", "", "Database driver: postgres or sqlite.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--pages 100] [--per-page 50] [--interval 1s] [--base-url https://dev.to/api] [--database-url <dsn>] [--driver postgres|sqlite]",
	Short: "Imports the latest dev.to articles into the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configPath); err != nil {
			return err
		}
		applyFlags(config.Conf)

		log, err := logger.Init(config.Conf.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(config.Conf.Database, log)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := model.InitTable(db); err != nil {
			return fmt.Errorf("database migration failed: %w", err)
		}

		seedConf := config.Conf.Seed
		client := seed.NewClient(seedConf.BaseURL, seedConf.UserAgent, seedConf.Interval)
		importer := seed.NewImporter(db, client, logger.Named("seed"))

		summary, err := importer.Run(cmd.Context(), seed.Options{Pages: seedConf.Pages, PerPage: seedConf.PerPage})
		out, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		if err != nil && cmd.Context().Err() != nil {
			log.Warn("seed interrupted", zap.Error(err))
			return nil
		}
		return err
	},
}

// applyFlags 命令行参数优先于配置文件
func applyFlags(conf *config.AppConfig) {
	if flags.pages > 0 {
		conf.Seed.Pages = flags.pages
	}
	if flags.perPage > 0 {
		conf.Seed.PerPage = flags.perPage
	}
	if flags.interval > 0 {
		conf.Seed.Interval = flags.interval
	}
	if flags.baseURL != "" {
		conf.Seed.BaseURL = flags.baseURL
	}
	if flags.databaseURL != "" {
		conf.Database.URL = flags.databaseURL
	}
	if flags.driver != "" {
		conf.Database.Driver = flags.driver
	}
}

func openDatabase(conf config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	if conf.Driver == "sqlite" {
		return database.InitSQLite(conf.URL, conf.LogLevel, log)
	}
	return database.InitPostgres(&database.PostgresConfig{
		ServiceName:  "conduit-seed",
		DSN:          conf.URL,
		Username:     conf.Username,
		Password:     conf.Password,
		Host:         conf.Host,
		Port:         conf.Port,
		Database:     conf.Database,
		SSLMode:      conf.SSLMode,
		LogLevel:     conf.LogLevel,
		MaxOpenConns: conf.MaxOpenConns,
		MaxIdleConns: conf.MaxIdleConns,
		Logger:       log,
	})
}
