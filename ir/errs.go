package ir

import (
	"errors"
)

var (
	ErrNotObject   = errors.New("not an object")
	ErrNotArray    = errors.New("not an array")
	ErrIndex       = errors.New("index out of range")
	ErrUnsupported = errors.New("unsupported value")
	ErrPath        = errors.New("bad path")
)
