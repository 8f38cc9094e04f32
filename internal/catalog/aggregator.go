package catalog

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/chain"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/session"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=aggregator.go -destination=mocks/mock_aggregator.go -package=mocks

type ChainReader interface {
	GetCatalogSize(ctx context.Context) (uint64, error)
	GetBookRecord(ctx context.Context, id uint64) (model.BookRecord, error)
	GetRentalStatus(ctx context.Context, id uint64, account string) (model.RentalStatus, error)
	GetRentedBookIDs(ctx context.Context, account string) ([]uint64, error)
}

type MetadataResolver interface {
	Resolve(ctx context.Context, cid string) model.Metadata
	ImageURI(imageCid string) string
}

// Aggregator merges ledger records, off-chain metadata and the viewer's
// rental status into display records. A failure of one id never fails a batch.
type Aggregator struct {
	cfg   *config.Config
	chain ChainReader
	meta  MetadataResolver
}

func NewAggregator(cfg *config.Config, reader ChainReader, meta MetadataResolver) *Aggregator {
	return &Aggregator{cfg: cfg, chain: reader, meta: meta}
}

// LoadCatalog returns every readable book in ascending id order.
func (a *Aggregator) LoadCatalog(ctx context.Context, sess model.Session) ([]model.DisplayRecord, error) {
	if err := session.RequireChain(sess); err != nil {
		return nil, err
	}

	size, err := a.chain.GetCatalogSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog size: %w", err)
	}

	return a.loadRange(ctx, sess, 1, size), nil
}

// LoadPage loads only the ids that fall on page (0-based) of perPage ids each.
// Ids that fail to load leave a page shorter than perPage.
func (a *Aggregator) LoadPage(ctx context.Context, sess model.Session, page, perPage int) (model.CatalogPage, error) {
	if page < 0 || perPage <= 0 {
		return model.CatalogPage{}, ErrInvalidPage
	}

	if err := session.RequireChain(sess); err != nil {
		return model.CatalogPage{}, err
	}

	size, err := a.chain.GetCatalogSize(ctx)
	if err != nil {
		return model.CatalogPage{}, fmt.Errorf("get catalog size: %w", err)
	}

	from := uint64(page)*uint64(perPage) + 1
	to := from + uint64(perPage) - 1
	if to > size {
		to = size
	}

	return model.CatalogPage{
		Books:       a.loadRange(ctx, sess, from, to),
		Page:        page,
		HasNextPage: to < size,
		Total:       int(size),
	}, nil
}

// LoadSingle loads one book with the same merge rules as LoadCatalog.
func (a *Aggregator) LoadSingle(ctx context.Context, id uint64, sess model.Session) (model.DisplayRecord, error) {
	if err := session.RequireChain(sess); err != nil {
		return model.DisplayRecord{}, err
	}

	rec, err := a.loadOne(ctx, id, sess)
	if err != nil {
		if errors.Is(err, chain.ErrRecordNotFound) {
			return model.DisplayRecord{}, fmt.Errorf("%w: %w", ErrBookNotFound, err)
		}
		return model.DisplayRecord{}, err
	}

	return rec, nil
}

// LoadRentals returns the books the session identity currently rents.
func (a *Aggregator) LoadRentals(ctx context.Context, sess model.Session) ([]model.DisplayRecord, error) {
	if err := session.RequireIdentity(sess); err != nil {
		return nil, err
	}

	if err := session.RequireChain(sess); err != nil {
		return nil, err
	}

	var books []model.DisplayRecord

	ids, err := a.chain.GetRentedBookIDs(ctx, sess.Account)
	switch {
	case err == nil:
		books = a.loadIDs(ctx, sess, sortedIDs(ids))
	case errors.Is(err, chain.ErrNotSupported):
		if books, err = a.LoadCatalog(ctx, sess); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("get rented books: %w", err)
	}

	rentals := make([]model.DisplayRecord, 0)
	for _, b := range books {
		if b.IsRentedByViewer {
			rentals = append(rentals, b)
		}
	}

	return rentals, nil
}

func (a *Aggregator) loadRange(ctx context.Context, sess model.Session, from, to uint64) []model.DisplayRecord {
	if from == 0 || to < from {
		return []model.DisplayRecord{}
	}

	ids := make([]uint64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}

	return a.loadIDs(ctx, sess, ids)
}

// loadIDs keeps the order of ids and drops those that fail to load.
func (a *Aggregator) loadIDs(ctx context.Context, sess model.Session, ids []uint64) []model.DisplayRecord {
	op := "Aggregator.loadIDs"
	rqID := utils.GetRequestIDFromCtx(ctx)

	slots := make([]*model.DisplayRecord, len(ids))

	g := &errgroup.Group{}
	if a.cfg.MaxGoroutineCnt > 0 {
		g.SetLimit(a.cfg.MaxGoroutineCnt)
	}

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			rec, err := a.loadOne(ctx, id, sess)
			if err != nil {
				slog.Warn(
					"skipping book",
					slog.String("rqID", rqID),
					slog.String("op", op),
					slog.Uint64("id", id),
					slog.String("err", err.Error()),
				)
				return nil
			}

			slots[i] = &rec
			return nil
		})
	}

	_ = g.Wait()

	books := make([]model.DisplayRecord, 0, len(slots))
	for _, rec := range slots {
		if rec != nil {
			books = append(books, *rec)
		}
	}

	return books
}

func (a *Aggregator) loadOne(ctx context.Context, id uint64, sess model.Session) (model.DisplayRecord, error) {
	rec, err := a.chain.GetBookRecord(ctx, id)
	if err != nil {
		return model.DisplayRecord{}, err
	}

	metaCh := make(chan model.Metadata, 1)
	go func() {
		metaCh <- a.meta.Resolve(ctx, rec.MetadataCid)
	}()

	isRenter := model.SameAccount(rec.CurrentRenter, sess.Account)

	var status *model.RentalStatus
	if isRenter {
		status = a.rentalStatus(ctx, rec, sess.Account)
	}

	meta := <-metaCh

	return model.DisplayRecord{
		ID:               rec.ID,
		Owner:            rec.Owner,
		CurrentRenter:    rec.CurrentRenter,
		Title:            meta.Title,
		Author:           meta.Author,
		DailyRentWei:     rec.DailyRentWei,
		DepositWei:       rec.DepositWei,
		IsAvailable:      rec.IsAvailable,
		ImageURI:         a.meta.ImageURI(meta.ImageCid),
		IsOwnedByViewer:  model.SameAccount(rec.Owner, sess.Account),
		IsRentedByViewer: isRenter,
		Status:           status,
	}, nil
}

// rentalStatus treats a non-renter answer as "no status".
func (a *Aggregator) rentalStatus(ctx context.Context, rec model.BookRecord, account string) *model.RentalStatus {
	op := "Aggregator.rentalStatus"
	rqID := utils.GetRequestIDFromCtx(ctx)

	status, err := a.chain.GetRentalStatus(ctx, rec.ID, account)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, chain.ErrNotRenter) {
			level = slog.LevelDebug
		}

		slog.Log(
			ctx,
			level,
			"rental status unavailable",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.Uint64("id", rec.ID),
			slog.String("err", err.Error()),
		)
		return nil
	}

	return &status
}

func sortedIDs(ids []uint64) []uint64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
