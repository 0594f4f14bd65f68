package export

import (
	"context"
	"fmt"
	"log/slog"

	"washify/config"
	"washify/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob"
)

// ArchiveWriter keeps a copy of every generated export in a blob
// bucket. Archival is best-effort and fully optional; with no bucket
// configured every call is a no-op.
type ArchiveWriter struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// ArchiveParams defines the parameters required for the archive writer.
type ArchiveParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewArchiveWriter opens the export bucket when one is configured.
func NewArchiveWriter(params ArchiveParams) (*ArchiveWriter, error) {
	w := &ArchiveWriter{logger: params.Logger}

	if params.Config.Export == nil || params.Config.Export.BucketURL == "" {
		params.Logger.Info("export archival disabled")

		return w, nil
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Export.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open export bucket")
	}
	w.bucket = bucket

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("export archival enabled",
		slog.String("bucket", params.Config.Export.BucketURL))

	return w, nil
}

// Save writes an artifact under a timestamped key. Failures are logged
// and swallowed so a broken archive never blocks a download.
func (w *ArchiveWriter) Save(ctx context.Context, name string, artifact Artifact) {
	if w.bucket == nil {
		return
	}

	key := fmt.Sprintf("%s/%s.%s", Now().Format("2006-01-02"), name, artifact.Extension)
	opts := &blob.WriterOptions{ContentType: artifact.ContentType}
	if err := w.bucket.WriteAll(ctx, key, artifact.Content, opts); err != nil {
		w.logger.Warn("export archival failed",
			slog.String("key", key),
			slog.Any("error", err))

		return
	}

	w.logger.Debug("export archived", slog.String("key", key))
}
