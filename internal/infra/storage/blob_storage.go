// Package storage implements the media store on top of gocloud.dev blob
// buckets, so local development and GCS share one code path.
package storage

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"
	"gocloud.dev/gcp"
)

// blobMediaStorage implements service.MediaStorage on a blob.Bucket.
type blobMediaStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// noopStorage is a no-op implementation when no media store is configured.
type noopStorage struct {
	logger *slog.Logger
}

func (s *noopStorage) Delete(_ context.Context, path string) error {
	s.logger.Debug("[NoopStorage] Media store not configured, skipping delete",
		slog.String("path", path),
	)

	return nil
}

func (s *noopStorage) Close() error {
	return nil
}

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage creates a MediaStorage based on configuration
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	// If no media store is configured, return a no-op storage
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Media store not configured, using no-op storage")

		return &noopStorage{logger: logger}, nil
	}

	var bucket *blob.Bucket

	switch cfg.Provider {
	case constants.StorageProviderLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New("local path is required for local provider")
		}

		var err error
		bucket, err = fileblob.OpenBucket(cfg.LocalPath, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open local media bucket")
		}
		logger.Info("Using local filesystem media store",
			slog.String("path", cfg.LocalPath),
		)

	case constants.StorageProviderGCS:
		if cfg.Bucket == "" {
			return nil, errors.New("bucket is required for gcs provider")
		}

		creds, err := gcp.DefaultCredentials(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve GCP credentials")
		}
		client, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create GCS HTTP client")
		}
		bucket, err = gcsblob.OpenBucket(params.Ctx, client, cfg.Bucket, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open GCS bucket %s", cfg.Bucket)
		}
		logger.Info("Using GCS media store",
			slog.String("bucket", cfg.Bucket),
		)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	mediaStorage := &blobMediaStorage{bucket: bucket, logger: logger}

	// Register lifecycle hook to close the bucket on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing MediaStorage")

			return mediaStorage.Close()
		},
	})

	return mediaStorage, nil
}

// Delete removes the stored file at the given path. A missing file is not
// an error: gallery rows may reference files already cleaned up.
func (s *blobMediaStorage) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Delete(ctx, path); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete media file %s", path)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobMediaStorage) Close() error {
	return s.bucket.Close()
}

// Module provides the media storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaStorage),
)
