package ir

import (
	"fmt"
	"slices"
)

// Reserved member names under which typed object metadata is visible.
const (
	ClassNameKey  = "_className"
	InstanceIDKey = "_instanceId"
)

// IsMetaKey reports whether key names typed object metadata which y
// carries. A member under a reserved name whose value cannot be metadata
// is an ordinary member.
func (y *Node) IsMetaKey(key string) bool {
	switch key {
	case ClassNameKey:
		return y.ClassName != ""
	case InstanceIDKey:
		return y.InstanceCount != nil
	}
	return false
}

func (y *Node) fieldIndex(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Get returns the member named key, or nil if y is not an object or has no
// such member. The reserved keys read the typed object metadata.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	switch {
	case key == ClassNameKey && y.ClassName != "":
		return FromString(y.ClassName)
	case key == InstanceIDKey && y.InstanceCount != nil:
		return FromInt(*y.InstanceCount)
	}
	i := y.fieldIndex(key)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func Get(y *Node, key string) *Node {
	return y.Get(key)
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Set sets the member key to v. An existing member keeps its position. A
// v which already belongs to another container is copied. Setting a
// reserved key to a string (class name) or integer (instance count)
// updates the typed object metadata instead of adding a member.
func (y *Node) Set(key string, v *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: cannot set %q on %s", ErrNotObject, key, y.Type)
	}
	if v != nil && y.setMeta(key, v) {
		return nil
	}
	i := y.fieldIndex(key)
	if i != -1 {
		y.Values[i] = y.adopt(v, i, key)
		return nil
	}
	i = len(y.Values)
	kn := FromString(key)
	kn.Parent = y
	kn.ParentIndex = i
	y.Fields = append(y.Fields, kn)
	y.Values = append(y.Values, y.adopt(v, i, key))
	return nil
}

func (y *Node) setMeta(key string, v *Node) bool {
	switch key {
	case ClassNameKey:
		if v.Type != StringType || v.String == "" {
			return false
		}
		y.ClassName = v.String
		return true
	case InstanceIDKey:
		if v.Type != NumberType || v.Int64 == nil {
			return false
		}
		c := *v.Int64
		y.InstanceCount = &c
		return true
	}
	return false
}

// Delete removes the member key and reports whether it was present.
func (y *Node) Delete(key string) bool {
	if y.Type != ObjectType {
		return false
	}
	had := false
	switch key {
	case ClassNameKey:
		had = y.ClassName != ""
		y.ClassName = ""
	case InstanceIDKey:
		had = y.InstanceCount != nil
		y.InstanceCount = nil
	}
	i := y.fieldIndex(key)
	if i == -1 {
		return had
	}
	y.Values[i].Parent = nil
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

// Keys returns the member names of y in order. Typed object metadata is
// not included.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Entries() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f.String, Val: y.Values[i]}
	}
	return res
}

// Len returns the number of members of an object, elements of an array or
// values of an enum.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	case EnumType:
		return 1
	case EnumSetType:
		return len(y.Enums)
	}
	return 0
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}
