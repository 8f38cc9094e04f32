package chain

import "errors"

var (
	ErrChainUnreachable = errors.New("chain unreachable")
	ErrCallReverted     = errors.New("contract call reverted")
	ErrRecordNotFound   = errors.New("book record not found")
	ErrNotRenter        = errors.New("account is not the current renter")
	ErrInvalidAccount   = errors.New("invalid account address")
	ErrUnexpectedOutput = errors.New("unexpected contract output")
	ErrNotSupported     = errors.New("not supported by this contract")
)
