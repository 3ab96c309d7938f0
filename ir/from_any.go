package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FromUUID returns a GUID node holding the canonical lower case text of u.
func FromUUID(u uuid.UUID) *Node {
	return FromGUID(u.String())
}

// UUID parses the GUID held by y.
func (y *Node) UUID() (uuid.UUID, error) {
	if y.Type != GUIDType {
		return uuid.Nil, fmt.Errorf("%w: %s is not a GUID", ErrUnsupported, y.Type)
	}
	return uuid.Parse(y.String)
}

// CanonicalGUID returns the lower case form of a GUID text, or s unchanged
// when it does not parse.
func CanonicalGUID(s string) string {
	u, err := uuid.Parse(s)
	if err != nil {
		return strings.ToLower(s)
	}
	return u.String()
}

// FromAny converts a plain Go value to a node. It accepts nodes, maps with
// string keys, slices, strings, booleans, numbers, nil, time.Time,
// uuid.UUID and json.Number. Go maps have no order, so map members are
// sorted by key. Reserved keys in maps set typed object metadata.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case *Document:
		if x == nil || x.Root == nil {
			return Null(), nil
		}
		return x.Root.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrUnsupported, x)
		}
		return FromFloat(f), nil
	case time.Time:
		return FromDate(x), nil
	case uuid.UUID:
		return FromUUID(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	case []any:
		res := NewArray()
		for _, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	case []string:
		res := NewArray()
		for _, e := range x {
			res.Append(FromString(e))
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return FromFloat(float64(u)), nil
		}
		return FromInt(int64(u)), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		res := NewArray()
		for i := 0; i < rv.Len(); i++ {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, rv.Interface())
}
