// Package migrate implements the database migration commands.
package migrate

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/config"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/database"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/migration"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply pending database migrations or inspect the current migration status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*sql.DB, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return sqlDB, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	sqlDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

	if err := migration.Up(sqlDB); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	sqlDB, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	return migration.Status(sqlDB)
}
