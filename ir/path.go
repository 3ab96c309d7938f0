package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y in its tree, such as $.users[0].name.
// Field names that would not read back are single quoted.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		return y.Parent.Path()
	}
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Path is a parsed path expression. A path is a chain of steps, each
// selecting a field, an index, all indices ([*]) or, with Subtree (..),
// every node below.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	afterSubtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			b.WriteString("..")
		case x.IndexAll:
			b.WriteString("[*]")
		case x.Field != nil:
			if !afterSubtree {
				b.WriteByte('.')
			}
			b.WriteString(pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(b, "[%d]", *x.Index)
		}
		afterSubtree = x.Subtree
	}
	return b.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of path scanning for \"'\"")
}

// GetPath returns the single node at path p below y, or nil when there is
// none. Wildcards are not allowed.
func (y *Node) GetPath(p string) (*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.IndexAll, yp.Subtree:
			return nil, fmt.Errorf("%w: wildcard in %q", ErrPath, p)
		case yp.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array at %s, got %s", ErrNotArray, res.Path(), res.Type)
			}
			res = res.Index(*yp.Index)
		case yp.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object at %s, got %s", ErrNotObject, res.Path(), res.Type)
			}
			res = res.Get(*yp.Field)
		}
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

// ListPath appends to dst every node matched by path p below y.
func (y *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil || (yp.Field == nil && yp.Index == nil && !yp.IndexAll && !yp.Subtree) {
		if yp != nil && yp.Next != nil {
			return y.listPath(dst, yp.Next)
		}
		return append(dst, y)
	}
	if yp.Subtree {
		y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = node.listPath(dst, yp.Next)
			return true, nil
		})
		return dst
	}
	switch y.Type {
	case ObjectType:
		if yp.Field == nil {
			return dst
		}
		if v := y.Get(*yp.Field); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
	case ArrayType:
		switch {
		case yp.Index != nil:
			if v := y.Index(*yp.Index); v != nil {
				dst = v.listPath(dst, yp.Next)
			}
		case yp.IndexAll:
			for _, v := range y.Values {
				dst = v.listPath(dst, yp.Next)
			}
		}
	}
	return dst
}
