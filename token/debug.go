package token

import (
	"fmt"
	"io"
	"os"
)

func PrintTokens(toks []Token, msg string) {
	FprintTokens(os.Stdout, toks, msg)
}

// FprintTokens writes one line per token to w: type, source bytes and
// position.
func FprintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "\t%s `%s` %s\n", t.Type, t.Bytes, t.Pos)
	}
}
