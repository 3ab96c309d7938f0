package parse

import (
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"
)

const defaultMaxDepth = 1000

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
	maxDepth  int
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the start position of every node parsed,
// object keys included.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseMaxDepth limits the nesting of objects and arrays. The default is
// 1000.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
