package slicer

import "errors"

var (
	ErrInvalidWindow = errors.New("invalid window duration")
	ErrOutsideBase   = errors.New("file is outside the base directory")
	ErrNoPatterns    = errors.New("no search patterns given")
	ErrStemCollision = errors.New("input files map to the same output name")
)
