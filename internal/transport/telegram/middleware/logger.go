package middleware

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Logger logs every update with the request id the handler put into c.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.Int64("chatID", chatID(c)),
				slog.String("update", updateKind(c)),
				slog.Duration("took", time.Since(start)),
			}
			if rqID, ok := c.Get("rqID").(string); ok {
				attrs = append(attrs, slog.String("rqID", rqID))
			}

			if err != nil {
				slog.Error("update handled with error", append(attrs, slog.String("err", err.Error()))...)
				return err
			}

			slog.Info("update handled", attrs...)
			return nil
		}
	}
}

func chatID(c tele.Context) int64 {
	if c.Chat() == nil {
		return 0
	}
	return c.Chat().ID
}

func updateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return "callback"
	case c.Message() != nil:
		return c.Message().Text
	default:
		return "other"
	}
}
