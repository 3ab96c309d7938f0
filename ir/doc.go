// Package ir provides the in-memory representation of TON documents.
//
// # Node Structure
//
// A [Node] represents a single value in a TON document. The IR works as a
// recursive tagged union, where values are placed in fields depending on
// the node's [Type]:
//
//   - NullType, UndefinedType: no payload. The two are kept apart so that
//     encoders can drop undefined members without dropping nulls.
//   - BoolType: Bool
//   - NumberType: Int64 for integers, Float64 otherwise
//   - StringType, GUIDType, EnumType: String
//   - DateType: Time
//   - EnumSetType: Enums, two or more values
//   - ArrayType: Values
//   - ObjectType: Fields and Values, Fields[i] being the string key node of
//     Values[i]. Keys are unique; setting an existing key replaces its value
//     in place.
//
// Primitive nodes may carry a [TypeHint] recording how they were written
// ($"x", %1, name:number: 1) so that an encoder can reproduce it.
//
// # Typed Objects
//
// An object written Person(1) { ... } carries ClassName "Person" and
// InstanceCount 1. The metadata is also readable through the reserved keys
// _className and _instanceId with [Node.Get], and appears under those keys
// first in the JSON projection ([ToAny], [Node.MarshalJSON]). It is never
// stored as a member.
//
// # Ownership
//
// A document is a tree. [Node.Set], [Node.Append] and [Node.SetIndex] copy
// a value which already has a parent, so a node is never reachable from two
// places.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("John")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	}).WithClass("Person", nil)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	n, err := ir.FromAny(map[string]any{"id": uuid.New()})
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
