package session

import "errors"

var (
	ErrNoIdentity       = errors.New("no signing identity connected")
	ErrChainUnreachable = errors.New("ledger is not reachable")
	ErrInvalidAccount   = errors.New("invalid account address")
)
