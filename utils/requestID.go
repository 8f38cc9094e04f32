package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// NewCtxWithRqID returns a child of ctx carrying a fresh request id.
func NewCtxWithRqID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

// CreateCtxWithRqID builds a request context for a single telegram update.
func CreateCtxWithRqID(c tele.Context) context.Context {
	ctx := NewCtxWithRqID(context.Background())
	c.Set(string(requestIDKey), GetRequestIDFromCtx(ctx))
	return ctx
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
