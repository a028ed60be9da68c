package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StorageDriverPostgres {
				slog.Info("Bolt storage needs no migrations", slog.String("driver", cfg.StorageDriver))
				return nil
			}
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			return nil
		},
	}
}
