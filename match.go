package ton

import (
	"github.com/signadot/ton-format/ton/ir"
)

// Match reports whether doc matches the pattern match. A null pattern
// matches anything. An object pattern matches an object having every one
// of its members, each matching, and its class name when it has one. An
// array pattern matches an array of the same length elementwise. Other
// patterns match equal values, with integers and floats compared by value.
func Match(doc, match *ir.Node) bool {
	if match.Type == ir.NullType {
		return true
	}
	if doc.Type != match.Type {
		return false
	}
	switch match.Type {
	case ir.ObjectType:
		return matchObj(doc, match)
	case ir.ArrayType:
		return matchArray(doc, match)
	}
	return ir.Compare(doc, match) == 0
}

func matchObj(doc, match *ir.Node) bool {
	if match.ClassName != "" && doc.ClassName != match.ClassName {
		return false
	}
	if match.InstanceCount != nil && (doc.InstanceCount == nil || *doc.InstanceCount != *match.InstanceCount) {
		return false
	}
	for _, kv := range match.Entries() {
		dv := doc.Get(kv.Key)
		if dv == nil || !Match(dv, kv.Val) {
			return false
		}
	}
	return true
}

func matchArray(doc, match *ir.Node) bool {
	if len(doc.Values) != len(match.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], match.Values[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to what match mentions: object
// members not in match are dropped, and for array patterns each pattern
// element keeps the first unused matching element of doc.
func Trim(match, doc *ir.Node) *ir.Node {
	switch {
	case match.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		res := ir.NewObject().WithClass(doc.ClassName, doc.InstanceCount)
		for _, kv := range doc.Entries() {
			mv := match.Get(kv.Key)
			if mv == nil {
				continue
			}
			res.Set(kv.Key, Trim(mv, kv.Val))
		}
		return res
	case match.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := ir.NewArray()
		used := make([]bool, len(doc.Values))
		for _, mv := range match.Values {
			for i, dv := range doc.Values {
				if used[i] || !Match(dv, mv) {
					continue
				}
				res.Append(Trim(mv, dv))
				used[i] = true
				break
			}
		}
		return res
	}
	return doc.Clone()
}
