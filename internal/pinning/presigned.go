package pinning

import (
	"book_rental_dapp/config"
	"book_rental_dapp/utils"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
)

type presignResponse struct {
	URL string `json:"url"`
}

type uploadResponse struct {
	Data struct {
		Cid string `json:"cid"`
	} `json:"data"`
}

// PresignedUploader asks a backend for a short-lived upload url and posts the
// content there as multipart form data.
type PresignedUploader struct {
	cfg    *config.Config
	client *http.Client
}

func NewPresignedUploader(cfg *config.Config) *PresignedUploader {
	return &PresignedUploader{cfg: cfg, client: &http.Client{Timeout: cfg.Pinning.UploadTimeout}}
}

func (p *PresignedUploader) UploadFile(ctx context.Context, reader io.Reader, filename string) (string, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "PresignedUploader.UploadFile"
	slog.Info("Upload start", slog.String("rqID", rqID), slog.String("op", op), slog.String("filename", filename))

	uploadURL, err := p.presign(ctx)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	if err = form.WriteField("network", "public"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	if _, err = io.Copy(part, reader); err != nil {
		return "", fmt.Errorf("%w: read content: %w", ErrUploadFailed, err)
	}

	if err = form.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: response status %d", ErrUploadFailed, resp.StatusCode)
	}

	var uploaded uploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUploadFailed, err)
	}

	if uploaded.Data.Cid == "" {
		return "", ErrNoCid
	}

	slog.Info("Upload finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("cid", uploaded.Data.Cid))

	return uploaded.Data.Cid, nil
}

func (p *PresignedUploader) UploadJSON(ctx context.Context, v any, name string) (string, error) {
	reader, err := marshalJSON(v)
	if err != nil {
		return "", err
	}
	return p.UploadFile(ctx, reader, name)
}

func (p *PresignedUploader) presign(ctx context.Context) (string, error) {
	presignURL := strings.TrimSuffix(p.cfg.Pinning.PresignUrl, "/") + "/presigned_url"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, presignURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPresignFailed, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPresignFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: response status %d", ErrPresignFailed, resp.StatusCode)
	}

	var presigned presignResponse
	if err = json.NewDecoder(resp.Body).Decode(&presigned); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrPresignFailed, err)
	}

	if presigned.URL == "" {
		return "", fmt.Errorf("%w: empty url", ErrPresignFailed)
	}

	return presigned.URL, nil
}
