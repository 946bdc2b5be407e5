package metrics

import "errors"

var (
	ErrRowNotFound     = errors.New("row not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrInvalidFamilies = errors.New("invalid family configuration")
	ErrMalformedTable  = errors.New("malformed metrics table")
)
