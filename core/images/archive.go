package images

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"inventree-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive keeps a copy of uploaded images in object storage.
type Archive struct {
	client  storage.Client
	bucket  string
	prefix  string
	logger  *zap.Logger
	checked bool
}

// NewArchive creates an Archive writing to bucket under prefix.
func NewArchive(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Put stores img as <prefix>/<name><ext> and returns the object name.
// The bucket is created on first use when missing.
func (a *Archive) Put(ctx context.Context, name string, img *Image) (string, error) {
	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	object := path.Join(a.prefix, img.Filename(name))
	opts := minio.PutObjectOptions{ContentType: img.ContentType}
	if _, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(img.Data), int64(len(img.Data)), opts); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", object, err)
	}
	a.logger.Info("Image archived", zap.String("bucket", a.bucket), zap.String("object", object))
	return object, nil
}

func (a *Archive) ensureBucket(ctx context.Context) error {
	if a.checked {
		return nil
	}
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
		a.logger.Info("Bucket created", zap.String("bucket", a.bucket))
	}
	a.checked = true
	return nil
}
