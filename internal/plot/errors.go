package plot

import "errors"

var (
	ErrUnknownColor  = errors.New("unknown color")
	ErrUnknownFormat = errors.New("unknown output format")
)
