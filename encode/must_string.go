package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/ton-format/ton/ir"
)

// MustString returns the compact encoding of node.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(node, buf, Compact()); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
