package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Type hints do not take part in the comparison.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType, GUIDType, EnumType:
		return strings.Compare(a.String, b.String)
	case DateType:
		return a.Time.Compare(b.Time)
	case EnumSetType:
		return slices.Compare(a.Enums, b.Enums)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
func rank(t Type) int {
	switch t {
	case UndefinedType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case GUIDType:
		return 5
	case DateType:
		return 6
	case EnumType:
		return 7
	case EnumSetType:
		return 8
	case ArrayType:
		return 9
	case ObjectType:
		return 10
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, _ := a.Number()
	fb, _ := b.Number()
	return cmp.Compare(fa, fb)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares class metadata and then members in order.
func compareObjects(a, b *Node) int {
	if c := strings.Compare(a.ClassName, b.ClassName); c != 0 {
		return c
	}
	switch {
	case a.InstanceCount == nil && b.InstanceCount != nil:
		return -1
	case a.InstanceCount != nil && b.InstanceCount == nil:
		return 1
	case a.InstanceCount != nil:
		if c := cmp.Compare(*a.InstanceCount, *b.InstanceCount); c != 0 {
			return c
		}
	}

	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
