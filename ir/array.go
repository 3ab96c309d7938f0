package ir

import (
	"fmt"
	"slices"
	"strconv"
)

// Append adds v to the end of the array y.
func (y *Node) Append(v *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: cannot append to %s", ErrNotArray, y.Type)
	}
	y.Values = append(y.Values, y.adopt(v, len(y.Values), ""))
	return nil
}

// Index returns element i of the array y or nil when out of range.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetIndex replaces element i of the array y.
func (y *Node) SetIndex(i int, v *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: cannot index %s", ErrNotArray, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, len(y.Values))
	}
	y.Values[i].Parent = nil
	y.Values[i] = y.adopt(v, i, "")
	return nil
}

// Contains reports whether the enum or enum set y holds v.
func (y *Node) Contains(v string) bool {
	switch y.Type {
	case EnumType:
		return y.String == v
	case EnumSetType:
		return slices.Contains(y.Enums, v)
	}
	return false
}

// AddEnum adds v to the enum y unless already present. A scalar enum
// becomes an enum set once it holds two values.
func (y *Node) AddEnum(v string) error {
	if v == "" || y.Contains(v) {
		return nil
	}
	switch y.Type {
	case EnumType:
		y.Type = EnumSetType
		y.Enums = []string{y.String, v}
		y.String = ""
	case EnumSetType:
		y.Enums = append(y.Enums, v)
	default:
		return fmt.Errorf("%w: cannot add enum value to %s", ErrUnsupported, y.Type)
	}
	return nil
}

// EnumValues returns the values of an enum or enum set in order.
func (y *Node) EnumValues() []string {
	switch y.Type {
	case EnumType:
		return []string{y.String}
	case EnumSetType:
		return slices.Clone(y.Enums)
	}
	return nil
}

// EnumNames returns the enum values which are not integer indices.
func (y *Node) EnumNames() []string {
	var res []string
	for _, v := range y.EnumValues() {
		if _, err := strconv.Atoi(v); err != nil {
			res = append(res, v)
		}
	}
	return res
}

// EnumIndices returns the enum values which are integer indices, such as
// the 0 and 2 of |0|2|.
func (y *Node) EnumIndices() []int {
	var res []int
	for _, v := range y.EnumValues() {
		if i, err := strconv.Atoi(v); err == nil {
			res = append(res, i)
		}
	}
	return res
}
