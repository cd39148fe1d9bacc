package inventory

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"loanable-inventory/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Publisher copies finished report files to an object storage bucket.
type Publisher struct {
	client storage.Client
	cfg    storage.Config
	fs     afero.Fs
	logger *zap.Logger
}

// NewPublisher creates a publisher for the bucket and prefix in cfg.
func NewPublisher(client storage.Client, cfg storage.Config, fs afero.Fs, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, cfg: cfg, fs: fs, logger: logger}
}

// Publish uploads each file under <prefix>/<file name>, creating the bucket if needed.
func (p *Publisher) Publish(ctx context.Context, files ...string) error {
	if err := storage.EnsureBucket(ctx, p.client, p.cfg.Bucket, p.cfg.Region); err != nil {
		return err
	}

	for _, file := range files {
		if err := p.upload(ctx, file); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) upload(ctx context.Context, file string) error {
	f, err := p.fs.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", file, err)
	}

	key := path.Join(p.cfg.Prefix, filepath.Base(file))
	opts := minio.PutObjectOptions{ContentType: contentTypes[filepath.Ext(file)]}

	if _, err := p.client.PutObject(ctx, p.cfg.Bucket, key, f, info.Size(), opts); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Info("Published report file", zap.String("bucket", p.cfg.Bucket), zap.String("key", key))
	return nil
}
