package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"courier/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_Save(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBucketStore(bucket)

	err := store.Save(context.Background(), "exports/20240101T000000Z/orders.csv", "text/csv", []byte("id\n1\n"))
	require.NoError(t, err)

	data, err := bucket.ReadAll(context.Background(), "exports/20240101T000000Z/orders.csv")
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(data))

	attrs, err := bucket.Attributes(context.Background(), "exports/20240101T000000Z/orders.csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", attrs.ContentType)

	require.NoError(t, store.Close())
}

func TestNewArchiveStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	store, err := NewArchiveStore(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Export: &config.ExportConfig{BucketURL: "file://" + dir}},
		Logger: logger,
	})
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "a/b.csv", "text/csv", []byte("x")))
	content, err := os.ReadFile(filepath.Join(dir, "a", "b.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestNewArchiveStore_Disabled(t *testing.T) {
	store, err := NewArchiveStore(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NoError(t, store.Save(context.Background(), "k", "text/csv", nil))
}

func TestNewArchiveStore_BadScheme(t *testing.T) {
	_, err := NewArchiveStore(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Export: &config.ExportConfig{BucketURL: "nope://bucket"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
