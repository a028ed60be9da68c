// Package storage opens the configured backend and hands out its repositories.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/repositories/cache"
	"github.com/SscSPs/books_ledger/internal/repositories/database/boltstore"
	"github.com/SscSPs/books_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/books_ledger/pkg/database"
)

// Backend is an open storage backend.
type Backend struct {
	Repos repositories.RepositoryProvider
	// Directory accepts seed writes for accounts and payees.
	Directory repositories.DirectoryWriter
	// DirectoryCache fronts Repos.DirectoryRepo. Other processes writing the directory are
	// seen here once the cached entry expires.
	DirectoryCache *cache.CachedDirectory

	close func()
}

// Close releases the backend's connections or file lock.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects to the backend named by cfg.StorageDriver. Postgres migrations are applied
// when migrate is set.
func Open(ctx context.Context, cfg *config.Config, migrate bool, logger *slog.Logger) (*Backend, error) {
	var b *Backend
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if migrate {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		b = &Backend{
			Repos:     pgsql.NewRepositoryProvider(pool),
			Directory: pgsql.NewPgxDirectoryRepository(pool),
			close:     func() { database.ClosePgxPool(pool) },
		}

	case config.StorageDriverBolt:
		if dir := filepath.Dir(cfg.BoltPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create bolt directory: %w", err)
			}
		}
		store, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Opened bolt store", slog.String("path", cfg.BoltPath))
		b = &Backend{
			Repos:     store.NewRepositoryProvider(),
			Directory: store.Directory(),
			close: func() {
				if err := store.Close(); err != nil {
					logger.Error("Error closing bolt store", slog.String("error", err.Error()))
				}
			},
		}

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	b.DirectoryCache = cache.NewCachedDirectory(b.Repos.DirectoryRepo, cfg.DirectoryCacheSize, cfg.DirectoryCacheTTL)
	b.Repos.DirectoryRepo = b.DirectoryCache
	return b, nil
}
