package overdueService

import (
	"book_rental_dapp/data/session"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=overdueService.go -destination=mocks/mock_overdueService.go -package=mocks

type Sessions interface {
	LinkedChats(ctx context.Context) ([]int64, error)
	GetSession(ctx context.Context, chatID int64) (model.ChatSession, error)
}

type Aggregator interface {
	LoadRentals(ctx context.Context, sess model.Session) ([]model.DisplayRecord, error)
}

type Network interface {
	Snapshot() model.Session
}

type Notifier interface {
	NotifyOverdue(ctx context.Context, chatID int64, books []model.DisplayRecord) error
}

// OverdueService reminds linked chats of rentals that are past due.
type OverdueService struct {
	sessions   Sessions
	aggregator Aggregator
	network    Network
	notifier   Notifier
}

func New(sessions Sessions, aggregator Aggregator, network Network, notifier Notifier) *OverdueService {
	return &OverdueService{
		sessions:   sessions,
		aggregator: aggregator,
		network:    network,
		notifier:   notifier,
	}
}

// NotifyOverdue loads rentals once per linked account and sends every chat
// linked to that account the overdue ones. A failing chat does not stop the run.
func (s *OverdueService) NotifyOverdue(ctx context.Context) error {
	op := "OverdueService.NotifyOverdue"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if !s.network.Snapshot().ChainReachable {
		slog.Warn("ledger unreachable, skipping overdue check", slog.String("rqID", rqID), slog.String("op", op))
		return nil
	}

	chats, err := s.sessions.LinkedChats(ctx)
	if err != nil {
		return err
	}

	byAccount := make(map[string][]int64)
	accounts := make([]string, 0)
	for _, chatID := range chats {
		chatSession, err := s.sessions.GetSession(ctx, chatID)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				slog.Warn("got error from sessions.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("chatID", chatID), slog.String("err", err.Error()))
			}
			continue
		}

		key := strings.ToLower(chatSession.Account)
		if key == "" {
			continue
		}
		if _, ok := byAccount[key]; !ok {
			accounts = append(accounts, chatSession.Account)
		}
		byAccount[key] = append(byAccount[key], chatID)
	}

	notified := 0
	for _, account := range accounts {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		sess := model.Session{Account: account, ChainReachable: true}
		rentals, err := s.aggregator.LoadRentals(ctx, sess)
		if err != nil {
			slog.Warn("got error from aggregator.LoadRentals", slog.String("rqID", rqID), slog.String("op", op), slog.String("account", account), slog.String("err", err.Error()))
			continue
		}

		overdue := make([]model.DisplayRecord, 0)
		for _, book := range rentals {
			if book.Status != nil && book.Status.IsOverdue() {
				overdue = append(overdue, book)
			}
		}

		if len(overdue) == 0 {
			continue
		}

		for _, chatID := range byAccount[strings.ToLower(account)] {
			if err = s.notifier.NotifyOverdue(ctx, chatID, overdue); err != nil {
				slog.Warn("got error from notifier.NotifyOverdue", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("chatID", chatID), slog.String("err", err.Error()))
				continue
			}
			notified++
		}
	}

	slog.Info("overdue check done", slog.String("rqID", rqID), slog.String("op", op), slog.Int("accounts", len(accounts)), slog.Int("notified", notified))

	return nil
}
