package ir

import (
	"maps"
	"slices"
	"time"
)

// Node is a TON value. It is a tagged union: which fields are meaningful
// depends on Type.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields and Values hold object members, Fields[i] being the key of
	// Values[i]. Arrays use only Values.
	Fields []*Node
	Values []*Node

	// Hint is how a primitive was written, $"x" or name:number: 1 for
	// example. It is ignored on objects and arrays.
	Hint TypeHint

	// ClassName and InstanceCount are the metadata of a typed object
	// such as Person(1) { ... }.
	ClassName     string
	InstanceCount *int64

	String  string
	Enums   []string
	Bool    bool
	Float64 *float64
	Int64   *int64
	Time    time.Time
}

func (y *Node) WithHint(h TypeHint) *Node {
	y.Hint = h
	return y
}

// WithClass sets the typed object metadata of y. A nil count leaves the
// instance count absent.
func (y *Node) WithClass(name string, count *int64) *Node {
	y.ClassName = name
	y.InstanceCount = nil
	if count != nil {
		c := *count
		y.InstanceCount = &c
	}
	return y
}

// Clone returns a deep copy of y which has no parent.
func (y *Node) Clone() *Node {
	res := &Node{}
	y.CloneTo(res)
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Hint = y.Hint
	dst.ClassName = y.ClassName
	dst.InstanceCount = nil
	if y.InstanceCount != nil {
		c := *y.InstanceCount
		dst.InstanceCount = &c
	}
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Enums = nil
	if y.Enums != nil {
		dst.Enums = slices.Clone(y.Enums)
	}
	dst.Bool = y.Bool
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Time = y.Time
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromGUID returns a GUID node. The text is kept as given; see FromUUID
// for a canonical form.
func FromGUID(v string) *Node {
	return &Node{
		Type:   GUIDType,
		String: v,
	}
}

func FromDate(t time.Time) *Node {
	return &Node{
		Type: DateType,
		Time: t,
	}
}

func FromEnum(v string) *Node {
	return &Node{
		Type:   EnumType,
		String: v,
	}
}

// FromEnumSet returns an enum node over vs. As in the text syntax, a single
// value gives a scalar enum and two or more give an enum set.
func FromEnumSet(vs ...string) *Node {
	if len(vs) == 1 {
		return FromEnum(vs[0])
	}
	return &Node{
		Type:  EnumSetType,
		Enums: slices.Clone(vs),
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

// FromMap returns an object with the members of yMap in key order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an object with the given members in order. Later
// duplicate keys replace earlier ones.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func NewArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

// Value returns the primitive held by y as a plain Go value: nil, bool,
// int64, float64, string, time.Time or []string. Objects and arrays give
// nil.
func (y *Node) Value() any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case StringType, GUIDType, EnumType:
		return y.String
	case DateType:
		return y.Time
	case EnumSetType:
		return slices.Clone(y.Enums)
	}
	return nil
}

// Number returns the numeric value of y as a float64.
func (y *Node) Number() (float64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}

// IsEmpty reports whether y is an object with no members or an array with
// no elements.
func (y *Node) IsEmpty() bool {
	switch y.Type {
	case ObjectType:
		return len(y.Values) == 0
	case ArrayType:
		return len(y.Values) == 0
	}
	return false
}

// IsPrimitive reports whether y is a single value which may carry a type
// hint: a string, number, boolean, null, undefined, GUID or date.
func (y *Node) IsPrimitive() bool {
	switch y.Type {
	case NullType, UndefinedType, BoolType, NumberType, StringType, GUIDType, DateType:
		return true
	}
	return false
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// adopt prepares child to be placed in y, copying it when it already
// belongs elsewhere.
func (y *Node) adopt(child *Node, i int, field string) *Node {
	if child == nil {
		child = Null()
	}
	if child.Parent != nil && (child.Parent != y || child.ParentIndex != i) {
		child = child.Clone()
	}
	child.Parent = y
	child.ParentIndex = i
	child.ParentField = field
	return child
}
