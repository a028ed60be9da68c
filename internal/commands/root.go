// Package commands implements the ledgerctl operator CLI.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/middleware"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/platform/storage"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the books ledger: migrations, journal repair and reports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newMigrateCommand(),
		newResyncCommand(),
		newVerifyCommand(),
		newTrialBalanceCommand(),
		newSeedCommand(),
		newTokenCommand(),
	)

	return rootCmd
}

// session is an open backend plus the services built on it.
type session struct {
	ctx      context.Context
	backend  *storage.Backend
	services *portssvc.ServiceContainer
}

// openSession loads the environment configuration, opens storage and builds the services.
// The returned context carries a logger tagged with the command name.
func openSession(cmd *cobra.Command, migrate bool) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With(slog.String("command", cmd.Name()))
	ctx := middleware.WithLogger(cmd.Context(), logger)

	backend, err := storage.Open(ctx, cfg, migrate, logger)
	if err != nil {
		return nil, err
	}
	return &session{
		ctx:      ctx,
		backend:  backend,
		services: services.NewServiceContainer(backend.Repos),
	}, nil
}

func (s *session) Close() {
	s.backend.Close()
}

func addCompanyFlag(cmd *cobra.Command, companyID *string) {
	cmd.Flags().StringVar(companyID, "company", os.Getenv("LEDGER_COMPANY_ID"), "company id (defaults to $LEDGER_COMPANY_ID)")
}
