package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidEventTime   = errors.New("invalid event time")
	ErrMissingRecipient   = errors.New("missing recipient")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
