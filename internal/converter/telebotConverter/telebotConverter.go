package telebotConverter

import (
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/model/tg/tgCallback"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

func CatalogPage(catalogPage model.CatalogPage) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("Каталог (всего книг: %d)\n\n", catalogPage.Total))

	menuRows := make([]tele.Row, 0)

	for i, book := range catalogPage.Books {
		if i%5 == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, 5))
		}

		sb.WriteString(fmt.Sprintf("%d) %s - %s, %s ETH/день %s\n\n", book.ID, book.Title, book.Author, economics.FormatEther(book.DailyRentWei), availabilityMark(book)))
		btn := markup.Data(strconv.FormatUint(book.ID, 10), tgCallback.ToBookDetails+strconv.FormatUint(book.ID, 10))
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	paginationBtns := make([]tele.Btn, 0)
	if catalogPage.Page > 0 {
		paginationBtns = append(paginationBtns, markup.Data("назад", tgCallback.ToCatalogPage+strconv.Itoa(catalogPage.Page-1)))
	}

	if catalogPage.Page > 0 || catalogPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data(fmt.Sprintf("стр %d", catalogPage.Page+1), tgCallback.PageNumber))
	}

	if catalogPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data("вперед", tgCallback.ToCatalogPage+strconv.Itoa(catalogPage.Page+1)))
	}

	menuRows = append(menuRows, markup.Row(paginationBtns...))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

// BookDetails renders one book; the back button returns to the page the book is on.
func BookDetails(book model.DisplayRecord, booksPerPage int) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("%s\n%s\n\n", book.Title, book.Author))
	sb.WriteString(fmt.Sprintf("Аренда: %s ETH/день\n", economics.FormatEther(book.DailyRentWei)))
	if book.DepositWei != nil {
		sb.WriteString(fmt.Sprintf("Залог: %s ETH\n", economics.FormatEther(book.DepositWei)))
	}

	switch {
	case book.IsAvailable:
		sb.WriteString("Свободна\n")
	case book.IsRentedByViewer:
		sb.WriteString("Арендована вами\n")
	default:
		sb.WriteString("Арендована\n")
	}

	if book.IsOwnedByViewer {
		sb.WriteString("Вы владелец этой книги\n")
	}

	if book.Status != nil {
		sb.WriteString("\n")
		sb.WriteString(RentalStatus(*book.Status))
	}

	sb.WriteString(fmt.Sprintf("\nОбложка: %s", book.ImageURI))

	page := 0
	if booksPerPage > 0 && book.ID > 0 {
		page = int((book.ID - 1) / uint64(booksPerPage))
	}

	backBtn := markup.Data("назад", tgCallback.ToCatalogPage+strconv.Itoa(page))
	markup.Inline(markup.Row(backBtn))

	return sb.String(), markup
}

func RentalStatus(status model.RentalStatus) string {
	switch status.Model {
	case model.TimeBased:
		if status.IsPenalty {
			return fmt.Sprintf(
				"Просрочено на %d дн.\nШтраф: %s ETH\nВернется из залога: %s ETH\n",
				status.TimeRemainingDays,
				economics.FormatEther(status.PenaltyDueWei),
				economics.FormatEther(status.RefundDueWei),
			)
		}
		return fmt.Sprintf(
			"Осталось дней: %d\nВернется из залога: %s ETH\n",
			status.TimeRemainingDays,
			economics.FormatEther(status.RefundDueWei),
		)
	case model.DepositBased:
		return fmt.Sprintf(
			"Дней в аренде: %d\nК оплате: %s ETH\nВернется из залога: %s ETH\n",
			status.DaysRented,
			economics.FormatEther(status.FeeDueWei),
			economics.FormatEther(status.RefundDueWei),
		)
	default:
		return ""
	}
}

func Rentals(books []model.DisplayRecord) string {
	if len(books) == 0 {
		return "У вас нет арендованных книг"
	}

	sb := strings.Builder{}
	sb.WriteString("Ваши книги:\n\n")

	for _, book := range books {
		sb.WriteString(fmt.Sprintf("%d) %s - %s\n", book.ID, book.Title, book.Author))
		if book.Status != nil {
			sb.WriteString(RentalStatus(*book.Status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func OverdueNotice(books []model.DisplayRecord) string {
	sb := strings.Builder{}
	sb.WriteString("Пора вернуть книги:\n\n")

	for _, book := range books {
		sb.WriteString(fmt.Sprintf("%d) %s - %s\n", book.ID, book.Title, book.Author))
		if book.Status != nil {
			sb.WriteString(RentalStatus(*book.Status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func History(submissions []model.Submission) string {
	sb := strings.Builder{}
	sb.WriteString("Последние транзакции:\n\n")

	for _, sub := range submissions {
		sb.WriteString(fmt.Sprintf("%s %s", sub.CreatedAt.Format("02.01.2006 15:04"), submissionKind(sub.Kind)))
		if sub.BookID > 0 {
			sb.WriteString(fmt.Sprintf(" #%d", sub.BookID))
		}
		if sub.ValueWei != nil && sub.ValueWei.Sign() > 0 {
			sb.WriteString(fmt.Sprintf(", %s ETH", economics.FormatEther(sub.ValueWei)))
		}
		sb.WriteString(fmt.Sprintf(": %s", sub.Status))
		if sub.Reason != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", sub.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func AccountNotLinked() string {
	return "К чату не привязан кошелек. Привяжите его командой /link <адрес>"
}

func AccountMenu(account string) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = fmt.Sprintf("ваш кошелек: %s", account)

	unlinkBtn := markup.Data("отвязать", tgCallback.Unlink)

	markup.Inline(markup.Row(unlinkBtn))

	return text, markup
}

func submissionKind(kind model.SubmissionKind) string {
	switch kind {
	case model.SubmissionRent:
		return "аренда"
	case model.SubmissionReturn:
		return "возврат"
	case model.SubmissionList:
		return "добавление"
	default:
		return string(kind)
	}
}

func availabilityMark(book model.DisplayRecord) string {
	switch {
	case book.IsRentedByViewer:
		return "(у вас)"
	case book.IsAvailable:
		return "(свободна)"
	default:
		return "(занята)"
	}
}
