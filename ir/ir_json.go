package ir

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// FormatDate renders t the way dates are written in TON text: the date
// alone when the time of day is midnight, a full RFC 3339 timestamp
// otherwise.
func FormatDate(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
}

// ParseDate parses the ISO 8601 forms accepted for date literals.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToAny returns the JSON projection of y built from map[string]any, []any
// and scalars. Typed object metadata appears under the reserved keys,
// enum sets become lists of strings, dates become ISO text and undefined
// object members are dropped.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Values)+2)
		if y.ClassName != "" {
			res[ClassNameKey] = y.ClassName
		}
		if y.InstanceCount != nil {
			res[InstanceIDKey] = *y.InstanceCount
		}
		for i, v := range y.Values {
			if v.Type == UndefinedType || y.IsMetaKey(y.Fields[i].String) {
				continue
			}
			res[y.Fields[i].String] = ToAny(v)
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case EnumSetType:
		res := make([]any, len(y.Enums))
		for i, e := range y.Enums {
			res[i] = e
		}
		return res
	case DateType:
		return FormatDate(y.Time)
	case NumberType:
		if y.Float64 != nil && (math.IsNaN(*y.Float64) || math.IsInf(*y.Float64, 0)) {
			return nil
		}
		return y.Value()
	default:
		return y.Value()
	}
}

// MarshalJSON writes the JSON projection of y (see ToAny) keeping member
// order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := y.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) appendJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		n := 0
		member := func(k string) error {
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			return writeJSONString(buf, k)
		}
		if y.ClassName != "" {
			if err := member(ClassNameKey); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONString(buf, y.ClassName); err != nil {
				return err
			}
		}
		if y.InstanceCount != nil {
			if err := member(InstanceIDKey); err != nil {
				return err
			}
			buf.WriteByte(':')
			buf.WriteString(strconv.FormatInt(*y.InstanceCount, 10))
		}
		for i, v := range y.Values {
			if v.Type == UndefinedType || y.IsMetaKey(y.Fields[i].String) {
				continue
			}
			if err := member(y.Fields[i].String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	d, err := json.Marshal(ToAny(y))
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
