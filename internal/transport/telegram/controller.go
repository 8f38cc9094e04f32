package telegram

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/converter/telebotConverter"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/model/tg/tgCallback"
	"book_rental_dapp/internal/service"
	"book_rental_dapp/internal/session"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

type RentalService interface {
	GetCatalogPage(ctx context.Context, chatID int64, page int) (model.CatalogPage, error)
	GetBookDetails(ctx context.Context, chatID int64, id uint64) (model.DisplayRecord, error)
	GetRentals(ctx context.Context, chatID int64) ([]model.DisplayRecord, error)
	GetHistory(ctx context.Context, chatID int64, limit int) ([]model.Submission, error)
	GetLinkedAccount(ctx context.Context, chatID int64) (string, error)
	LinkAccount(ctx context.Context, chatID int64, account string) (string, error)
	UnlinkAccount(ctx context.Context, chatID int64) error
}

type Controller struct {
	cfg           *config.Config
	rentalService RentalService
}

func NewController(cfg *config.Config, rentalService RentalService) *Controller {
	return &Controller{
		cfg:           cfg,
		rentalService: rentalService,
	}
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

// loadErrMsg maps a load failure onto the text shown to the chat.
func (ctrl *Controller) loadErrMsg(ctx context.Context, op string, err error) string {
	rqID := utils.GetRequestIDFromCtx(ctx)

	switch {
	case errors.Is(err, service.ErrStaleSession):
		return staleSessionMsg
	case errors.Is(err, session.ErrChainUnreachable):
		return chainUnreachableMsg
	case errors.Is(err, service.ErrNotLinked), errors.Is(err, session.ErrNoIdentity):
		return telebotConverter.AccountNotLinked()
	default:
		slog.Error("load failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return internalErrMsg
	}
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Reply(startMsg)
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply(helpMsg)
}

func (ctrl *Controller) Catalog(c tele.Context) error {
	op := "Controller.Catalog"
	ctx := utils.CreateCtxWithRqID(c)

	catalogPage, err := ctrl.rentalService.GetCatalogPage(ctx, c.Chat().ID, 0)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Send(booksNotFound)
		}
		return c.Send(ctrl.loadErrMsg(ctx, op, err))
	}

	return c.Send(telebotConverter.CatalogPage(catalogPage))
}

func (ctrl *Controller) ProcessToCatalogPage(c tele.Context) error {
	op := "Controller.ProcessToCatalogPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToCatalogPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		slog.Error(
			"error while converting page from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("pageStr", pageStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	catalogPage, err := ctrl.rentalService.GetCatalogPage(ctx, c.Chat().ID, page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Edit(booksNotFound)
		}
		return ctrl.sendAutoDeleteMsg(c, ctrl.loadErrMsg(ctx, op, err))
	}

	return c.Edit(telebotConverter.CatalogPage(catalogPage))
}

func (ctrl *Controller) ProcessToBookDetails(c tele.Context) error {
	op := "Controller.ProcessToBookDetails"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	idStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBookDetails))
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		slog.Error(
			"error while converting book id from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("idStr", idStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	book, err := ctrl.rentalService.GetBookDetails(ctx, c.Chat().ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFound)
		}
		return ctrl.sendAutoDeleteMsg(c, ctrl.loadErrMsg(ctx, op, err))
	}

	return c.Edit(telebotConverter.BookDetails(book, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) MyRentals(c tele.Context) error {
	op := "Controller.MyRentals"
	ctx := utils.CreateCtxWithRqID(c)

	rentals, err := ctrl.rentalService.GetRentals(ctx, c.Chat().ID)
	if err != nil {
		return c.Send(ctrl.loadErrMsg(ctx, op, err))
	}

	return c.Send(telebotConverter.Rentals(rentals))
}

func (ctrl *Controller) History(c tele.Context) error {
	op := "Controller.History"
	ctx := utils.CreateCtxWithRqID(c)

	submissions, err := ctrl.rentalService.GetHistory(ctx, c.Chat().ID, historyLimit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Send(historyEmptyMsg)
		case errors.Is(err, service.ErrHistoryDisabled):
			return c.Send(historyDisabledMsg)
		default:
			return c.Send(ctrl.loadErrMsg(ctx, op, err))
		}
	}

	return c.Send(telebotConverter.History(submissions))
}

// Link binds the address given after /link, or shows the bound one when the
// command comes without arguments.
func (ctrl *Controller) Link(c tele.Context) error {
	op := "Controller.Link"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	account := strings.TrimSpace(c.Message().Payload)
	if account == "" {
		linked, err := ctrl.rentalService.GetLinkedAccount(ctx, c.Chat().ID)
		if err != nil {
			if errors.Is(err, service.ErrNotLinked) {
				return c.Send(telebotConverter.AccountNotLinked())
			}
			slog.Error("got error from rentalService.GetLinkedAccount", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		}
		return c.Send(telebotConverter.AccountMenu(linked))
	}

	linked, err := ctrl.rentalService.LinkAccount(ctx, c.Chat().ID, account)
	if err != nil {
		if errors.Is(err, session.ErrInvalidAccount) {
			return c.Send(invalidAccountMsg)
		}
		slog.Error("got error from rentalService.LinkAccount", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(fmt.Sprintf(accountLinkedMsg, linked))
}

func (ctrl *Controller) Unlink(c tele.Context) error {
	op := "Controller.Unlink"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := ctrl.rentalService.UnlinkAccount(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from rentalService.UnlinkAccount", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if c.Callback() != nil {
		return c.Edit(accountUnlinkedMsg)
	}
	return c.Send(accountUnlinkedMsg)
}
