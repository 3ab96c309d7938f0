package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/ton-format/ton/debug"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"
)

// Result is the outcome of a validation. Every message starts with the
// path of the offending node followed by ": ".
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

func (r *Result) addError(path, f string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, path+": "+fmt.Sprintf(f, args...))
}

func (r *Result) addWarning(path, f string, args ...any) {
	r.Warnings = append(r.Warnings, path+": "+fmt.Sprintf(f, args...))
}

// Err returns nil for a valid result and otherwise an error wrapping
// ErrInvalid which lists every message.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, ErrInvalid)
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e))
	}
	return errors.Join(errs...)
}

// Validate checks doc against s.
func Validate(doc *ir.Document, s *Schema) *Result {
	root := ir.Null()
	if doc != nil && doc.Root != nil {
		root = doc.Root
	}
	return ValidateNode(root, s)
}

// ValidateNode checks node against s, with paths relative to node. A
// Schema assembled by hand is compiled on first use; one shared between
// goroutines should be compiled beforehand.
func ValidateNode(node *ir.Node, s *Schema) *Result {
	res := &Result{Valid: true}
	if s != nil {
		if err := s.Compile(); err != nil {
			res.addError("", "%v", err)
			return res
		}
		validate(node, s, "", res)
	}
	if debug.Validate() {
		debug.Logf("validated %s: %d errors %d warnings\n", node.Type, len(res.Errors), len(res.Warnings))
	}
	return res
}

func propPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func validate(node *ir.Node, s *Schema, path string, res *Result) {
	if s.Deprecated {
		res.addWarning(path, "Property is deprecated")
	}
	if s.Nullable && node.Type == ir.NullType {
		return
	}
	ok := true
	switch s.Type {
	case TypeObject:
		ok = validateObject(node, s, path, res)
	case TypeArray:
		ok = validateArray(node, s, path, res)
	case TypeString:
		ok = validateString(node, s, path, res)
	case TypeNumber, TypeInteger:
		ok = validateNumber(node, s, path, res)
	case TypeBoolean:
		ok = expectType(node, ir.BoolType, s.Type, path, res)
	case TypeNull:
		ok = expectType(node, ir.NullType, s.Type, path, res)
	case TypeGUID:
		ok = validateGUID(node, path, res)
	case TypeDate:
		ok = validateDate(node, path, res)
	case TypeEnum:
		ok = validateEnum(node, s, path, res)
	default:
		return
	}
	if ok {
		s.checkExpr(node, path, res)
	}
}

func expectType(node *ir.Node, t ir.Type, name, path string, res *Result) bool {
	if node.Type != t {
		res.addError(path, "Expected %s, got %s", name, node.Type.Kind())
		return false
	}
	return true
}

func validateObject(node *ir.Node, s *Schema, path string, res *Result) bool {
	if !expectType(node, ir.ObjectType, TypeObject, path, res) {
		return false
	}
	for _, name := range s.Required {
		if !node.Has(name) {
			res.addError(path, "Missing required property '%s'", name)
		}
	}
	if len(s.Properties) == 0 {
		return true
	}
	keys := make([]string, 0, node.Len()+2)
	for _, k := range []string{ir.ClassNameKey, ir.InstanceIDKey} {
		if node.Has(k) {
			keys = append(keys, k)
		}
	}
	keys = append(keys, node.Keys()...)
	for _, k := range keys {
		ps := s.Properties[k]
		if ps == nil {
			continue
		}
		validate(node.Get(k), ps, propPath(path, k), res)
	}
	return true
}

func validateArray(node *ir.Node, s *Schema, path string, res *Result) bool {
	if !expectType(node, ir.ArrayType, TypeArray, path, res) {
		return false
	}
	n := len(node.Values)
	if s.MinItems != nil && n < *s.MinItems {
		res.addError(path, "Array has %d items, minimum is %d", n, *s.MinItems)
	}
	if s.MaxItems != nil && n > *s.MaxItems {
		res.addError(path, "Array has %d items, maximum is %d", n, *s.MaxItems)
	}
	if s.Items != nil {
		for i, v := range node.Values {
			validate(v, s.Items, path+"["+strconv.Itoa(i)+"]", res)
		}
	}
	return true
}

// validateString accepts the primitives holding text: strings, GUIDs,
// single enums and dates, a date being checked as its ISO text.
func validateString(node *ir.Node, s *Schema, path string, res *Result) bool {
	var v string
	switch node.Type {
	case ir.StringType, ir.GUIDType, ir.EnumType:
		v = node.String
	case ir.DateType:
		v = ir.FormatDate(node.Time)
	default:
		res.addError(path, "Expected string, got %s", node.Type.Kind())
		return false
	}
	if s.Enum != nil && !contains(s.Enum, v) {
		res.addError(path, "Value %q is not in enum %s", v, enumList(s.Enum))
		return false
	}
	n := utf8.RuneCountInString(v)
	if s.MinLength != nil && n < *s.MinLength {
		res.addError(path, "String length %d is less than minimum %d", n, *s.MinLength)
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		res.addError(path, "String length %d exceeds maximum %d", n, *s.MaxLength)
	}
	if s.pattern != nil && !s.pattern.MatchString(v) {
		res.addError(path, "Value %q does not match pattern %s", v, s.Pattern)
	}
	return true
}

func validateNumber(node *ir.Node, s *Schema, path string, res *Result) bool {
	if !expectType(node, ir.NumberType, s.Type, path, res) {
		return false
	}
	f, _ := node.Number()
	if s.Type == TypeInteger && node.Int64 == nil && f != math.Trunc(f) {
		res.addError(path, "Expected integer, got %s", numText(node))
		return false
	}
	if s.Minimum != nil && f < *s.Minimum {
		res.addError(path, "Value %s is less than minimum %s", numText(node), fmtFloat(*s.Minimum))
	}
	if s.Maximum != nil && f > *s.Maximum {
		res.addError(path, "Value %s exceeds maximum %s", numText(node), fmtFloat(*s.Maximum))
	}
	if s.MultipleOf != nil {
		q := f / *s.MultipleOf
		if math.Abs(q-math.Round(q)) > 1e-9 {
			res.addError(path, "Value %s is not a multiple of %s", numText(node), fmtFloat(*s.MultipleOf))
		}
	}
	return true
}

func validateGUID(node *ir.Node, path string, res *Result) bool {
	switch {
	case node.Type == ir.GUIDType:
	case node.Type == ir.StringType && token.IsGUID(node.String):
	default:
		res.addError(path, "Expected guid, got %s", node.Type.Kind())
		return false
	}
	return true
}

func validateDate(node *ir.Node, path string, res *Result) bool {
	if node.Type == ir.DateType {
		return true
	}
	if node.Type == ir.StringType {
		if _, ok := ir.ParseDate(node.String); ok {
			return true
		}
		res.addError(path, "Value %q is not a date", node.String)
		return false
	}
	res.addError(path, "Expected date, got %s", node.Type.Kind())
	return false
}

func validateEnum(node *ir.Node, s *Schema, path string, res *Result) bool {
	if node.Type != ir.EnumType && node.Type != ir.EnumSetType {
		res.addError(path, "Expected enum, got %s", node.Type.Kind())
		return false
	}
	if s.Enum == nil {
		return true
	}
	for _, v := range node.EnumValues() {
		if !contains(s.Enum, v) {
			res.addError(path, "Value %q is not in enum %s", v, enumList(s.Enum))
		}
	}
	return true
}

func contains(vs []string, v string) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func enumList(vs []string) string {
	return "[" + strings.Join(vs, ", ") + "]"
}

func numText(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	f, _ := node.Number()
	return fmtFloat(f)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
