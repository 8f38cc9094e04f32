package economics

import "errors"

var (
	ErrInvalidDays        = errors.New("rental days must be at least 1")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrSubWeiPrecision    = errors.New("amount has more precision than 1 wei")
	ErrMissingDeposit     = errors.New("record has no deposit amount")
	ErrUnknownModel       = errors.New("unknown economic model")
	ErrInvalidEtherAmount = errors.New("invalid ether amount")
)
