package session

import (
	"book_rental_dapp/internal/model"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
)

// Context holds the session a wallet collaborator mutates from the outside.
// Readers take a Snapshot and later check IsCurrent to drop stale results.
type Context struct {
	current atomic.Pointer[model.Session]
}

func NewContext() *Context {
	c := &Context{}
	c.current.Store(&model.Session{})
	return c
}

func (c *Context) Snapshot() model.Session {
	return *c.current.Load()
}

// Connect switches the signing identity. Switching to the same account in a
// different hex case does not bump the generation.
func (c *Context) Connect(account string) (model.Session, error) {
	if !common.IsHexAddress(account) {
		return model.Session{}, fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	checksummed := common.HexToAddress(account).Hex()

	return c.update(func(s model.Session) (model.Session, bool) {
		if model.SameAccount(s.Account, checksummed) {
			return s, false
		}
		s.Account = checksummed
		return s, true
	}), nil
}

func (c *Context) Disconnect() model.Session {
	return c.update(func(s model.Session) (model.Session, bool) {
		if !s.HasIdentity() {
			return s, false
		}
		s.Account = ""
		return s, true
	})
}

func (c *Context) SetReachable(reachable bool) model.Session {
	return c.update(func(s model.Session) (model.Session, bool) {
		if s.ChainReachable == reachable {
			return s, false
		}
		s.ChainReachable = reachable
		return s, true
	})
}

// IsCurrent reports whether results produced under generation may still be shown.
func (c *Context) IsCurrent(generation uint64) bool {
	return c.current.Load().Generation == generation
}

func (c *Context) update(fn func(model.Session) (model.Session, bool)) model.Session {
	for {
		old := c.current.Load()
		next, changed := fn(*old)
		if !changed {
			return *old
		}

		next.Generation = old.Generation + 1
		if c.current.CompareAndSwap(old, &next) {
			slog.Debug(
				"session changed",
				slog.String("op", "Context.update"),
				slog.String("account", next.Account),
				slog.Bool("chainReachable", next.ChainReachable),
				slog.Uint64("generation", next.Generation),
			)
			return next
		}
	}
}

// RequireChain fails when the ledger cannot be reached under s.
func RequireChain(s model.Session) error {
	if !s.ChainReachable {
		return ErrChainUnreachable
	}
	return nil
}

// RequireIdentity fails when s cannot sign or is not reachable.
func RequireIdentity(s model.Session) error {
	if err := RequireChain(s); err != nil {
		return err
	}
	if !s.HasIdentity() {
		return ErrNoIdentity
	}
	return nil
}
