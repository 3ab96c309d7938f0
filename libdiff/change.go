package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "add"
	case Delete:
		return "remove"
	case Replace:
		return "replace"
	}
	return "<op " + strconv.Itoa(int(o)) + ">"
}

// Symbol is the one character marker used when printing a change.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return "~"
}

// Step is one step of a change location, a member name or an array index.
type Step struct {
	Field string
	Index int
	IsIdx bool
}

// Change is a single insertion, deletion or replacement. Insertions have
// a nil From and deletions a nil To. A replacement of one string by
// another also carries the character level Text diff.
type Change struct {
	Op       Op
	Location []Step
	From, To *ir.Node
	Text     []diffpatch.Diff
}

// Path renders the location of c as a $-rooted path such as
// $.users[0].name.
func (c *Change) Path() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range c.Location {
		if s.IsIdx {
			fmt.Fprintf(b, "[%d]", s.Index)
			continue
		}
		b.WriteByte('.')
		if s.Field != "" && strings.IndexAny(s.Field, "'.*$[] ") == -1 {
			b.WriteString(s.Field)
		} else {
			b.WriteString("'" + strings.ReplaceAll(s.Field, "'", "\\'") + "'")
		}
	}
	return b.String()
}

// Pointer renders the location of c as an RFC 6901 JSON pointer.
func (c *Change) Pointer() string {
	b := &strings.Builder{}
	for _, s := range c.Location {
		b.WriteByte('/')
		if s.IsIdx {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		b.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(s.Field))
	}
	return b.String()
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path(), encode.MustString(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path(), encode.MustString(c.From))
	}
	if c.Text != nil {
		return fmt.Sprintf("~ %s: %s", c.Path(), Inline(c.Text))
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path(), encode.MustString(c.From), encode.MustString(c.To))
}

func appendStep(loc []Step, s Step) []Step {
	res := make([]Step, len(loc), len(loc)+1)
	copy(res, loc)
	return append(res, s)
}

func field(f string) Step { return Step{Field: f} }
func index(i int) Step    { return Step{Index: i, IsIdx: true} }
