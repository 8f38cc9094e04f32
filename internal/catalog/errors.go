package catalog

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidPage  = errors.New("invalid page")
)
