package submitter

import "errors"

var (
	ErrRentFailed        = errors.New("rent failed")
	ErrReturnFailed      = errors.New("return failed")
	ErrListFailed        = errors.New("list failed")
	ErrBookNotAvailable  = errors.New("book is not available")
	ErrNotStoreOwner     = errors.New("only the store owner can list books")
	ErrIdentityMismatch  = errors.New("session identity differs from the signing key")
	ErrNoSigner          = errors.New("no signing key configured")
	ErrEmptyMetadataCid  = errors.New("metadata cid is empty")
	ErrTransactionFailed = errors.New("transaction failed")
)
