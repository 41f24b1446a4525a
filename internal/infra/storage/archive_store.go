// Package storage mirrors export archives into a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBucketStore wraps an opened bucket.
func NewBucketStore(bucket *blob.Bucket) service.ArchiveStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Save(ctx context.Context, key, contentType string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *bucketStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// noopStore is used when no bucket is configured
type noopStore struct{}

func (noopStore) Save(context.Context, string, string, []byte) error { return nil }

func (noopStore) Close() error { return nil }

// StoreParams holds dependencies for ArchiveStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiveStore opens the configured bucket URL (file:///path, mem://, or any registered driver).
func NewArchiveStore(params StoreParams) (service.ArchiveStore, error) {
	cfg := params.Config.Export
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Export bucket not configured, archives are not mirrored")

		return noopStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Export bucket opened", slog.String("url", cfg.BucketURL))

	store := NewBucketStore(bucket)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
