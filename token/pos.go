package token

import "fmt"

// Pos is a position in the source. Line and Col are 1-based, Offset is the
// 0-based byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}

// IsValid reports whether p was set by the tokenizer.
func (p Pos) IsValid() bool {
	return p.Line > 0
}
