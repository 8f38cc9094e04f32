package tgbot

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/converter/telebotConverter"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/model/tg/tgCallback"
	"book_rental_dapp/internal/transport/telegram"
	customMW "book_rental_dapp/internal/transport/telegram/middleware"
	"context"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type TGBot struct {
	bot  *tele.Bot
	ctrl *telegram.Controller
}

func New(cfg *config.Config, ctrl *telegram.Controller) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

// NotifyOverdue sends a chat the list of its overdue rentals.
func (b *TGBot) NotifyOverdue(ctx context.Context, chatID int64, books []model.DisplayRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := b.bot.Send(tele.ChatID(chatID), telebotConverter.OverdueNotice(books))
	return err
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/catalog", b.ctrl.Catalog)
	b.bot.Handle("/my", b.ctrl.MyRentals)
	b.bot.Handle("/history", b.ctrl.History)
	b.bot.Handle("/link", b.ctrl.Link)
	b.bot.Handle("/unlink", b.ctrl.Unlink)

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.Unlink:
			return b.ctrl.Unlink(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToCatalogPage):
			return b.ctrl.ProcessToCatalogPage(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBookDetails):
			return b.ctrl.ProcessToBookDetails(c)
		case callbackBtnText == tgCallback.PageNumber:
			return nil
		default:
			return c.Send("callback не опознан")
		}
	})
}
