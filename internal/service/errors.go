package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotLinked    = errors.New("no account linked to chat")
	ErrStaleSession = errors.New("session changed while loading")
	ErrNoImage      = errors.New("cover image is required")
	ErrEmptyTitle   = errors.New("title is required")

	ErrHistoryDisabled = errors.New("submission journal is not configured")
)
