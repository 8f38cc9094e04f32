package session

import (
	"book_rental_dapp/config"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sessionKeyPattern = "chatID:*:session"

// RedisSession keeps the wallet address linked to each chat. The generation
// counter lives in its own key and grows on every link or unlink, so a load
// started under one generation can tell it went stale.
type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func (r *RedisSession) createSessionKey(chatID int64) string {
	return fmt.Sprintf("chatID:%d:session", chatID)
}

func (r *RedisSession) createGenerationKey(chatID int64) string {
	return fmt.Sprintf("chatID:%d:generation", chatID)
}

func (r *RedisSession) GetSession(ctx context.Context, chatID int64) (model.ChatSession, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start GetSession", slog.String("rqID", rqID))
	key := r.createSessionKey(chatID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Debug("session not found in redis", slog.String("rqID", rqID), slog.Int64("chatID", chatID))
			return model.ChatSession{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("key", key))
		return model.ChatSession{}, err
	}

	session := model.ChatSession{}

	err = json.Unmarshal([]byte(res), &session)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.ChatSession{}, errors.New("can't unmarshall session")
	}

	return session, nil
}

// GetGeneration returns 0 for a chat that never linked an account.
func (r *RedisSession) GetGeneration(ctx context.Context, chatID int64) (uint64, error) {
	op := "RedisSession.GetGeneration"
	rqID := utils.GetRequestIDFromCtx(ctx)

	gen, err := r.redis.Get(ctx, r.createGenerationKey(chatID)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return 0, err
	}

	return gen, nil
}

func (r *RedisSession) LinkAccount(ctx context.Context, chatID int64, account string) (model.ChatSession, error) {
	op := "RedisSession.LinkAccount"
	rqID := utils.GetRequestIDFromCtx(ctx)

	gen, err := r.bumpGeneration(ctx, chatID)
	if err != nil {
		return model.ChatSession{}, err
	}

	session := model.ChatSession{Account: account, Generation: gen}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.ChatSession{}, errors.New("can't marshall session")
	}

	if err = r.redis.Set(ctx, r.createSessionKey(chatID), sessionJson, r.cfg.SessionExpiration).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.ChatSession{}, err
	}

	slog.Info("account linked", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("chatID", chatID), slog.Uint64("generation", gen))

	return session, nil
}

// Unlink forgets the chat's account and returns the new generation.
func (r *RedisSession) Unlink(ctx context.Context, chatID int64) (uint64, error) {
	op := "RedisSession.Unlink"
	rqID := utils.GetRequestIDFromCtx(ctx)

	gen, err := r.bumpGeneration(ctx, chatID)
	if err != nil {
		return 0, err
	}

	if err = r.redis.Del(ctx, r.createSessionKey(chatID)).Err(); err != nil {
		slog.Error("failed on redis.Del", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return 0, err
	}

	return gen, nil
}

// LinkedChats lists every chat that currently has an account linked.
func (r *RedisSession) LinkedChats(ctx context.Context) ([]int64, error) {
	op := "RedisSession.LinkedChats"
	rqID := utils.GetRequestIDFromCtx(ctx)

	chats := make([]int64, 0)
	iter := r.redis.Scan(ctx, 0, sessionKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		raw := strings.TrimSuffix(strings.TrimPrefix(iter.Val(), "chatID:"), ":session")
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			slog.Warn("unexpected session key", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", iter.Val()))
			continue
		}
		chats = append(chats, chatID)
	}

	if err := iter.Err(); err != nil {
		slog.Error("failed on redis.Scan", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	return chats, nil
}

func (r *RedisSession) bumpGeneration(ctx context.Context, chatID int64) (uint64, error) {
	op := "RedisSession.bumpGeneration"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createGenerationKey(chatID)

	gen, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		slog.Error("failed on redis.Incr", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return 0, err
	}

	return uint64(gen), nil
}
