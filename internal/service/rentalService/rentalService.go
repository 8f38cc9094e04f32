package rentalService

import (
	"book_rental_dapp/config"
	"book_rental_dapp/data/session"
	"book_rental_dapp/internal/catalog"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/repository"
	"book_rental_dapp/internal/service"
	sessionCtx "book_rental_dapp/internal/session"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=rentalService.go -destination=mocks/mock_rentalService.go -package=mocks

type Aggregator interface {
	LoadPage(ctx context.Context, sess model.Session, page, perPage int) (model.CatalogPage, error)
	LoadSingle(ctx context.Context, id uint64, sess model.Session) (model.DisplayRecord, error)
	LoadRentals(ctx context.Context, sess model.Session) ([]model.DisplayRecord, error)
}

type Sessions interface {
	GetSession(ctx context.Context, chatID int64) (model.ChatSession, error)
	GetGeneration(ctx context.Context, chatID int64) (uint64, error)
	LinkAccount(ctx context.Context, chatID int64, account string) (model.ChatSession, error)
	Unlink(ctx context.Context, chatID int64) (uint64, error)
}

// History is the submission journal. It is nil when no database is configured.
type History interface {
	ListSubmissions(ctx context.Context, account string, limit int) ([]model.Submission, error)
}

// Network reports whether the ledger answered the last health probe.
type Network interface {
	Snapshot() model.Session
}

// RentalService serves the read-only views of a chat. Every load is made
// under the chat's session generation and discarded if it changed meanwhile.
type RentalService struct {
	cfg        *config.Config
	aggregator Aggregator
	sessions   Sessions
	network    Network
	history    History
}

func New(cfg *config.Config, aggregator Aggregator, sessions Sessions, network Network, history History) *RentalService {
	return &RentalService{
		cfg:        cfg,
		aggregator: aggregator,
		sessions:   sessions,
		network:    network,
		history:    history,
	}
}

func (s *RentalService) GetCatalogPage(ctx context.Context, chatID int64, page int) (model.CatalogPage, error) {
	op := "RentalService.GetCatalogPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	sess, err := s.chatSession(ctx, chatID)
	if err != nil {
		return model.CatalogPage{}, err
	}

	catalogPage, err := s.aggregator.LoadPage(ctx, sess, page, s.cfg.BooksPerPage)
	if err != nil {
		slog.Error("got error from aggregator.LoadPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.CatalogPage{}, err
	}

	if err = s.checkCurrent(ctx, chatID, sess); err != nil {
		return model.CatalogPage{}, err
	}

	if len(catalogPage.Books) == 0 {
		return model.CatalogPage{}, service.ErrNotFound
	}

	return catalogPage, nil
}

func (s *RentalService) GetBookDetails(ctx context.Context, chatID int64, id uint64) (model.DisplayRecord, error) {
	op := "RentalService.GetBookDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	sess, err := s.chatSession(ctx, chatID)
	if err != nil {
		return model.DisplayRecord{}, err
	}

	book, err := s.aggregator.LoadSingle(ctx, id, sess)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return model.DisplayRecord{}, service.ErrNotFound
		}
		slog.Error("got error from aggregator.LoadSingle", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.DisplayRecord{}, err
	}

	if err = s.checkCurrent(ctx, chatID, sess); err != nil {
		return model.DisplayRecord{}, err
	}

	return book, nil
}

func (s *RentalService) GetRentals(ctx context.Context, chatID int64) ([]model.DisplayRecord, error) {
	op := "RentalService.GetRentals"
	rqID := utils.GetRequestIDFromCtx(ctx)

	sess, err := s.chatSession(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !sess.HasIdentity() {
		return nil, service.ErrNotLinked
	}

	rentals, err := s.aggregator.LoadRentals(ctx, sess)
	if err != nil {
		slog.Error("got error from aggregator.LoadRentals", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	if err = s.checkCurrent(ctx, chatID, sess); err != nil {
		return nil, err
	}

	return rentals, nil
}

// GetHistory returns the latest journaled submissions of the chat's account.
func (s *RentalService) GetHistory(ctx context.Context, chatID int64, limit int) ([]model.Submission, error) {
	op := "RentalService.GetHistory"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if s.history == nil {
		return nil, service.ErrHistoryDisabled
	}

	account, err := s.GetLinkedAccount(ctx, chatID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.history.ListSubmissions(ctx, account, limit)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		slog.Error("got error from history.ListSubmissions", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	return submissions, nil
}

func (s *RentalService) GetLinkedAccount(ctx context.Context, chatID int64) (string, error) {
	chatSession, err := s.sessions.GetSession(ctx, chatID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", service.ErrNotLinked
		}
		return "", err
	}

	return chatSession.Account, nil
}

// LinkAccount stores the checksummed form of account for the chat.
func (s *RentalService) LinkAccount(ctx context.Context, chatID int64, account string) (string, error) {
	if !common.IsHexAddress(account) {
		return "", fmt.Errorf("%w: %q", sessionCtx.ErrInvalidAccount, account)
	}

	chatSession, err := s.sessions.LinkAccount(ctx, chatID, common.HexToAddress(account).Hex())
	if err != nil {
		return "", err
	}

	return chatSession.Account, nil
}

func (s *RentalService) UnlinkAccount(ctx context.Context, chatID int64) error {
	_, err := s.sessions.Unlink(ctx, chatID)
	return err
}

// chatSession builds the session a load runs under: the chat's linked
// account and generation plus the process-wide ledger reachability.
func (s *RentalService) chatSession(ctx context.Context, chatID int64) (model.Session, error) {
	op := "RentalService.chatSession"
	rqID := utils.GetRequestIDFromCtx(ctx)

	gen, err := s.sessions.GetGeneration(ctx, chatID)
	if err != nil {
		return model.Session{}, err
	}

	sess := model.Session{
		ChainReachable: s.network.Snapshot().ChainReachable,
		Generation:     gen,
	}

	chatSession, err := s.sessions.GetSession(ctx, chatID)
	switch {
	case err == nil:
		sess.Account = chatSession.Account
	case errors.Is(err, session.ErrNotFound):
	default:
		slog.Error("got error from sessions.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, err
	}

	return sess, nil
}

func (s *RentalService) checkCurrent(ctx context.Context, chatID int64, sess model.Session) error {
	op := "RentalService.checkCurrent"
	rqID := utils.GetRequestIDFromCtx(ctx)

	gen, err := s.sessions.GetGeneration(ctx, chatID)
	if err != nil {
		return err
	}

	if gen != sess.Generation {
		slog.Info(
			"discarding stale load",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.Int64("chatID", chatID),
			slog.Uint64("startedAt", sess.Generation),
			slog.Uint64("current", gen),
		)
		return service.ErrStaleSession
	}

	return nil
}
