package libdiff

import (
	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, nil when the two are
// equal.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.node(nil, from, to)
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(c Change) {
	d.res = append(d.res, c)
}

func (d *differ) node(loc []Step, from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		d.object(loc, from, to)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		d.array(loc, from, to)
	case from.Type == ir.StringType && to.Type == ir.StringType:
		d.add(Change{Op: Replace, Location: loc, From: from, To: to, Text: DiffString(from.String, to.String)})
	default:
		d.add(Change{Op: Replace, Location: loc, From: from, To: to})
	}
}

// object matches members by key. Undefined members count as absent and
// typed object metadata is compared under the reserved keys.
func (d *differ) object(loc []Step, from, to *ir.Node) {
	for _, k := range []string{ir.ClassNameKey, ir.InstanceIDKey} {
		d.member(loc, k, from.Get(k), to.Get(k))
	}
	for _, kv := range from.Entries() {
		d.member(loc, kv.Key, kv.Val, to.Get(kv.Key))
	}
	for _, kv := range to.Entries() {
		if from.Get(kv.Key) == nil {
			d.member(loc, kv.Key, nil, kv.Val)
		}
	}
}

func (d *differ) member(loc []Step, key string, from, to *ir.Node) {
	if from != nil && from.Type == ir.UndefinedType {
		from = nil
	}
	if to != nil && to.Type == ir.UndefinedType {
		to = nil
	}
	at := appendStep(loc, field(key))
	switch {
	case from == nil && to == nil:
	case from == nil:
		d.add(Change{Op: Insert, Location: at, To: to})
	case to == nil:
		d.add(Change{Op: Delete, Location: at, From: from})
	default:
		d.node(at, from, to)
	}
}

// array aligns elements on a one rune summary each, so that the diff of
// the rune strings gives the insertions and deletions. Elements aligned
// as equal are compared recursively.
func (d *differ) array(loc []Step, from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				d.add(Change{Op: Delete, Location: appendStep(loc, index(ri)), From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Change{Op: Insert, Location: appendStep(loc, index(ri)), To: to.Values[ti]})
				ri++
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.node(appendStep(loc, index(ri)), from.Values[fi], to.Values[ti])
				ri++
				fi++
				ti++
			}
		}
	}
}

func summaries(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summary groups containers by kind, and class for objects, and leaves by
// their text. Multi-line strings share one summary so that edits inside
// them show as text diffs.
func summary(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType:
		return "object-" + node.ClassName
	case ir.ArrayType:
		return "array"
	case ir.StringType:
		for _, c := range node.String {
			if c == '\n' {
				return "string/m"
			}
		}
	}
	return node.Type.Kind() + "-" + encode.MustString(node)
}
