// Package storage provides the device key-value store on top of gocloud.dev blob buckets.
package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStore implements KeyValueStore with one blob object per key
type blobStore struct {
	bucket *blob.Bucket
}

// StoreParams holds dependencies for the blob store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the bucket named by storage.bucketURL and closes it on shutdown
func NewBlobStore(params StoreParams) (service.KeyValueStore, error) {
	store, err := Open(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Device storage opened", slog.String("bucket_url", params.Config.Storage.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a store from a gocloud.dev blob URL such as "file:///var/lib/storefront?create_dir=true" or "mem://"
func Open(ctx context.Context, bucketURL string) (service.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

// NewFromBucket wraps an already opened bucket
func NewFromBucket(bucket *blob.Bucket) service.KeyValueStore {
	return &blobStore{bucket: bucket}
}

// Get reads the value stored under key
func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return data, nil
}

// Set replaces the value stored under key
func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

// Close releases the bucket
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
