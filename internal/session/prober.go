package session

import (
	"book_rental_dapp/utils"
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
)

type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// Prober keeps the reachability flag of a Context in line with the ledger.
type Prober struct {
	sess    *Context
	headers HeaderReader
	timeout time.Duration
}

func NewProber(sess *Context, headers HeaderReader, timeout time.Duration) *Prober {
	return &Prober{sess: sess, headers: headers, timeout: timeout}
}

// Probe asks for the latest header. It only fails when ctx itself is done.
func (p *Prober) Probe(ctx context.Context) error {
	op := "Prober.Probe"
	rqID := utils.GetRequestIDFromCtx(ctx)

	probeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	_, err := p.headers.HeaderByNumber(probeCtx, nil)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	was := p.sess.Snapshot().ChainReachable
	now := p.sess.SetReachable(err == nil)

	if was != now.ChainReachable {
		if err != nil {
			slog.Warn("ledger became unreachable", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		} else {
			slog.Info("ledger reachable", slog.String("rqID", rqID), slog.String("op", op), slog.Uint64("generation", now.Generation))
		}
	}

	return nil
}
