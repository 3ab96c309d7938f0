package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	BoolType
	NumberType
	StringType
	GUIDType
	DateType
	EnumType
	EnumSetType
	ArrayType
	ObjectType
)

var typeNames = map[Type]string{
	NullType:      "Null",
	UndefinedType: "Undefined",
	BoolType:      "Bool",
	NumberType:    "Number",
	StringType:    "String",
	GUIDType:      "GUID",
	DateType:      "Date",
	EnumType:      "Enum",
	EnumSetType:   "EnumSet",
	ArrayType:     "Array",
	ObjectType:    "Object",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		UndefinedType,
		BoolType,
		NumberType,
		StringType,
		GUIDType,
		DateType,
		EnumType,
		EnumSetType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Kind returns the lower case name of t as it appears in validation
// messages, e.g. "boolean" or "enumSet".
func (t Type) Kind() string {
	switch t {
	case BoolType:
		return "boolean"
	case GUIDType:
		return "guid"
	case EnumSetType:
		return "enumSet"
	}
	s := t.String()
	if s == "" || s[0] == '<' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}

// TypeHint records how a primitive value was written so that it can be
// written back the same way.
type TypeHint int

const (
	HintNone TypeHint = iota
	HintString
	HintNumber
	HintBoolean
	HintDate
	HintEnum
	HintEnumSet
	HintUnknown
)

var hintNames = map[TypeHint]string{
	HintNone:    "",
	HintString:  "string",
	HintNumber:  "number",
	HintBoolean: "boolean",
	HintDate:    "date",
	HintEnum:    "enum",
	HintEnumSet: "enumSet",
	HintUnknown: "unknown",
}

func (h TypeHint) String() string {
	return hintNames[h]
}

func (h TypeHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *TypeHint) UnmarshalText(d []byte) error {
	*h = ParseTypeHint(string(d))
	return nil
}

// ParseTypeHint maps a member type annotation such as the "number" in
// `age:number: 30` to a hint. Unrecognized names give HintUnknown.
func ParseTypeHint(name string) TypeHint {
	switch name {
	case "":
		return HintNone
	case "string", "str":
		return HintString
	case "number", "int", "float":
		return HintNumber
	case "boolean", "bool":
		return HintBoolean
	case "date":
		return HintDate
	case "enum":
		return HintEnum
	case "enumSet":
		return HintEnumSet
	}
	return HintUnknown
}

// Sigil returns the one character prefix written before a hinted literal,
// or 0 when h has no prefix form.
func (h TypeHint) Sigil() byte {
	switch h {
	case HintString:
		return '$'
	case HintNumber:
		return '%'
	case HintBoolean:
		return '&'
	case HintDate:
		return '^'
	}
	return 0
}
