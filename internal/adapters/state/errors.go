package state

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrClosed = errors.New("snapshot store closed")
)
