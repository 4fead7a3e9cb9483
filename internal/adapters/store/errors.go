package store

import "errors"

// Sentinel kinds for store client errors.
var (
	ErrUnexpectedStatus = errors.New("unexpected store status")
	ErrDecodeResponse   = errors.New("decode store response failed")
)
