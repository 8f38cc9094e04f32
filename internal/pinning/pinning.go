package pinning

import (
	"book_rental_dapp/config"
	"bytes"
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Uploader stores content in content-addressed storage and returns its cid.
type Uploader interface {
	UploadFile(ctx context.Context, reader io.Reader, filename string) (cid string, err error)
	UploadJSON(ctx context.Context, v any, name string) (cid string, err error)
}

// New picks the backend configured in PINNING_BACKEND.
func New(cfg *config.Config) (Uploader, error) {
	switch cfg.Pinning.Backend {
	case "presigned":
		return NewPresignedUploader(cfg), nil
	case "s3":
		return NewS3Pinner(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Pinning.Backend)
	}
}

func marshalJSON(v any) (io.Reader, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return bytes.NewReader(body), nil
}
