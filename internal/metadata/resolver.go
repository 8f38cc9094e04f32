package metadata

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gocolly/colly/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the JSON stored under a metadata cid. A nil field was missing,
// null or not a string; an empty one was sent as "".
type document struct {
	Title    *string
	Author   *string
	ImageCid *string
}

type Resolver struct {
	cfg *config.Config
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

func (r *Resolver) getCollector() (*colly.Collector, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(r.cfg.Gateway.Timeout)

	if r.cfg.Gateway.ProxyUrl != "" {
		if err := c.SetProxy(r.cfg.Gateway.ProxyUrl); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Resolve fetches the metadata document for cid. It never fails: any transport
// or decoding problem is logged and the defaults are returned.
func (r *Resolver) Resolve(ctx context.Context, cid string) model.Metadata {
	op := "Resolver.Resolve"
	rqID := utils.GetRequestIDFromCtx(ctx)

	meta, err := r.fetch(ctx, cid)
	if err != nil {
		slog.Warn(
			"metadata unavailable, using defaults",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("cid", cid),
			slog.String("err", err.Error()),
		)
		return model.DefaultMetadata()
	}

	return meta
}

func (r *Resolver) fetch(ctx context.Context, cid string) (model.Metadata, error) {
	op := "Resolver.fetch"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if strings.TrimSpace(cid) == "" {
		return model.Metadata{}, errors.New("empty cid")
	}

	if err := ctx.Err(); err != nil {
		return model.Metadata{}, err
	}

	c, err := r.getCollector()
	if err != nil {
		return model.Metadata{}, err
	}

	var (
		doc       document
		decodeErr error
		received  bool
	)

	c.OnResponse(func(resp *colly.Response) {
		received = true
		doc, decodeErr = decodeDocument(resp.Body)
	})

	c.OnRequest(func(req *colly.Request) {
		slog.Debug("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", req.URL.String()))
	})

	if err = c.Visit(r.locate(cid)); err != nil {
		return model.Metadata{}, err
	}

	if !received {
		return model.Metadata{}, errors.New("no response body")
	}

	if decodeErr != nil {
		return model.Metadata{}, decodeErr
	}

	return doc.toMetadata(), nil
}

// ImageURI maps an image cid to a gateway locator, or to the fallback image
// when there is none.
func (r *Resolver) ImageURI(imageCid string) string {
	if imageCid == "" {
		return r.cfg.Gateway.FallbackImage
	}
	return r.locate(imageCid)
}

func (r *Resolver) locate(cid string) string {
	return strings.TrimSuffix(r.cfg.Gateway.BaseUrl, "/") + "/" + cid
}

// decodeDocument fails only when body is not a JSON object. Fields are
// decoded one by one, so a mistyped field does not drop the others.
func decodeDocument(body []byte) (document, error) {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return document{}, err
	}

	return document{
		Title:    stringField(fields, "title"),
		Author:   stringField(fields, "author"),
		ImageCid: stringField(fields, "imageCid"),
	}, nil
}

func stringField(fields map[string]jsoniter.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}

	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func (d document) toMetadata() model.Metadata {
	meta := model.DefaultMetadata()

	if d.Title != nil {
		meta.Title = *d.Title
	}

	if d.Author != nil {
		meta.Author = *d.Author
	}

	if d.ImageCid != nil {
		meta.ImageCid = *d.ImageCid
	}

	return meta
}
