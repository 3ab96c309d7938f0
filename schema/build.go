package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
)

// FromMap builds a schema from a generic descriptor such as one decoded
// from JSON. Keys it does not know are ignored.
func FromMap(m map[string]any) (*Schema, error) {
	s, err := fromMap(m, "")
	if err != nil {
		return nil, err
	}
	if err := s.Compile(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadYAML builds a schema from a YAML (or JSON) descriptor.
func LoadYAML(d []byte) (*Schema, error) {
	var m map[string]any
	if err := yaml.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: empty descriptor", ErrSchema)
	}
	return FromMap(m)
}

// FromNode builds a schema from a descriptor written in TON.
func FromNode(node *ir.Node) (*Schema, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: descriptor is not an object", ErrSchema)
	}
	m, _ := ir.ToAny(node).(map[string]any)
	return FromMap(m)
}

// LoadFile reads a descriptor from a file, in TON when it ends in .ton and
// in YAML or JSON otherwise.
func LoadFile(path string) (*Schema, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ton") {
		doc, err := parse.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSchema, path, err)
		}
		return FromNode(doc.Root)
	}
	return LoadYAML(d)
}

func fromMap(m map[string]any, at string) (*Schema, error) {
	s := &Schema{}
	for k, v := range m {
		var err error
		switch k {
		case "type":
			s.Type, err = stringValue(v)
		case "required":
			s.Required, err = stringList(v)
		case "enum":
			s.Enum, err = stringList(v)
		case "properties":
			var props map[string]any
			props, err = mapValue(v)
			if err != nil {
				break
			}
			s.Properties = make(map[string]*Schema, len(props))
			for name, pv := range props {
				pm, perr := mapValue(pv)
				if perr != nil {
					return nil, fmt.Errorf("%w: %s: %w", ErrSchema, where(propPath(at, name)), perr)
				}
				ps, perr := fromMap(pm, propPath(at, name))
				if perr != nil {
					return nil, perr
				}
				s.Properties[name] = ps
			}
		case "items":
			var im map[string]any
			im, err = mapValue(v)
			if err != nil {
				break
			}
			s.Items, err = fromMap(im, at+"[]")
			if err != nil {
				return nil, err
			}
		case "minLength":
			s.MinLength, err = intValue(v)
		case "maxLength":
			s.MaxLength, err = intValue(v)
		case "minItems":
			s.MinItems, err = intValue(v)
		case "maxItems":
			s.MaxItems, err = intValue(v)
		case "minimum":
			s.Minimum, err = floatValue(v)
		case "maximum":
			s.Maximum, err = floatValue(v)
		case "multipleOf":
			s.MultipleOf, err = floatValue(v)
			if err == nil && *s.MultipleOf <= 0 {
				err = fmt.Errorf("must be positive")
			}
		case "pattern":
			s.Pattern, err = stringValue(v)
		case "expr":
			s.Expr, err = stringValue(v)
		case "nullable":
			s.Nullable, err = boolValue(v)
		case "deprecated":
			s.Deprecated, err = boolValue(v)
		case "title":
			s.Title, err = stringValue(v)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %w", ErrSchema, where(at), k, err)
		}
	}
	return s, nil
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func boolValue(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}

// stringList accepts a list of scalars. Non-string scalars are kept in
// their printed form.
func stringList(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []any:
		res := make([]string, len(x))
		for i, e := range x {
			switch e.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("expected list of scalars")
			}
			res[i] = fmt.Sprint(e)
		}
		return res, nil
	case string:
		return []string{x}, nil
	}
	return nil, fmt.Errorf("expected list, got %T", v)
}

func mapValue(v any) (map[string]any, error) {
	switch x := v.(type) {
	case map[string]any:
		return x, nil
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[fmt.Sprint(k)] = e
		}
		return res, nil
	}
	return nil, fmt.Errorf("expected mapping, got %T", v)
}

func floatValue(v any) (*float64, error) {
	rv := reflect.ValueOf(v)
	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return nil, fmt.Errorf("expected number, got %T", v)
	}
	return &f, nil
}

func intValue(v any) (*int, error) {
	f, err := floatValue(v)
	if err != nil {
		return nil, err
	}
	if *f != float64(int(*f)) || *f < 0 {
		return nil, fmt.Errorf("expected non-negative integer, got %v", v)
	}
	i := int(*f)
	return &i, nil
}
