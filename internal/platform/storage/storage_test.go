package storage_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/platform/storage"
)

func TestOpen_BoltWrapsDirectoryInCache(t *testing.T) {
	cfg := &config.Config{
		StorageDriver:      config.StorageDriverBolt,
		BoltPath:           filepath.Join(t.TempDir(), "nested", "books.db"),
		DirectoryCacheSize: 8,
		DirectoryCacheTTL:  time.Minute,
	}

	b, err := storage.Open(context.Background(), cfg, false, slog.Default())
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, b.Directory.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: "co-1", Name: "Checking", AccountType: domain.Asset}))

	got, err := b.Repos.DirectoryRepo.FindAccount(ctx, "co-1", "checking")
	require.NoError(t, err)
	assert.Equal(t, "Checking", got.Name)
	assert.Same(t, b.DirectoryCache, b.Repos.DirectoryRepo)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{StorageDriver: "sqlite"}, false, slog.Default())
	assert.ErrorContains(t, err, "unknown storage driver")
}
