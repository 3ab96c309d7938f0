package gomap

import "errors"

var (
	ErrLoad = errors.New("load error")
	ErrDump = errors.New("dump error")
)
