package pinning

import (
	"book_rental_dapp/config"
	"book_rental_dapp/utils"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// cidMetaKey is the object metadata key IPFS-backed S3 gateways report the cid under.
const cidMetaKey = "Cid"

type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// S3Pinner uploads to an S3-compatible bucket that pins objects to IPFS.
type S3Pinner struct {
	cfg   *config.Config
	store ObjectStore
}

func NewS3Pinner(cfg *config.Config) (*S3Pinner, error) {
	client, err := minio.New(cfg.Pinning.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Pinning.S3AccessKey, cfg.Pinning.S3SecretKey, ""),
		Secure: cfg.Pinning.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return NewS3PinnerWithStore(cfg, client), nil
}

func NewS3PinnerWithStore(cfg *config.Config, store ObjectStore) *S3Pinner {
	return &S3Pinner{cfg: cfg, store: store}
}

func (p *S3Pinner) UploadFile(ctx context.Context, reader io.Reader, filename string) (string, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "S3Pinner.UploadFile"

	if p.cfg.Pinning.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Pinning.UploadTimeout)
		defer cancel()
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := p.store.PutObject(ctx, p.cfg.Pinning.S3Bucket, objectKey(filename), reader, -1, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"Filename": filepath.Base(filename)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	stat, err := p.store.StatObject(ctx, info.Bucket, info.Key, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %w", ErrUploadFailed, info.Key, err)
	}

	cid := stat.UserMetadata[cidMetaKey]
	if cid == "" {
		return "", ErrNoCid
	}

	slog.Info("Upload finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", info.Key), slog.String("cid", cid))

	return cid, nil
}

func (p *S3Pinner) UploadJSON(ctx context.Context, v any, name string) (string, error) {
	reader, err := marshalJSON(v)
	if err != nil {
		return "", err
	}
	return p.UploadFile(ctx, reader, name)
}

// objectKey is unique per upload, so a pinned object is never overwritten.
func objectKey(filename string) string {
	return uuid.New().String() + "-" + filepath.Base(filename)
}
