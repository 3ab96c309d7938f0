package schema

import (
	"fmt"
	"regexp"

	"github.com/expr-lang/expr/vm"
)

// Schema is a descriptor for one node and, through Properties and Items,
// for the nodes below it. Nil limits are not checked.
type Schema struct {
	Type       string             `json:"type,omitempty" yaml:"type,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty" yaml:"enum,omitempty"`

	MinLength  *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength  *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Minimum    *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinItems   *int     `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems   *int     `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MultipleOf *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Pattern    string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Expr is a boolean expression over the projected value, see
	// Schema.Compile.
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`

	// Nullable lets null pass whatever the type.
	Nullable   bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`

	pattern *regexp.Regexp
	program *vm.Program
}

// Compile prepares the pattern and expression of s and of every schema
// below it. Builders call it; it only needs calling directly on a
// Schema assembled by hand.
func (s *Schema) Compile() error {
	return s.compile("")
}

func (s *Schema) compile(at string) error {
	if s.Pattern != "" && s.pattern == nil {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return fmt.Errorf("%w: %s: pattern %q: %w", ErrSchema, where(at), s.Pattern, err)
		}
		s.pattern = re
	}
	if s.Expr != "" && s.program == nil {
		prg, err := compileExpr(s.Expr)
		if err != nil {
			return fmt.Errorf("%w: %s: expr %q: %w", ErrSchema, where(at), s.Expr, err)
		}
		s.program = prg
	}
	for name, ps := range s.Properties {
		if ps == nil {
			return fmt.Errorf("%w: %s: nil schema for property %q", ErrSchema, where(at), name)
		}
		if err := ps.compile(propPath(at, name)); err != nil {
			return err
		}
	}
	if s.Items != nil {
		return s.Items.compile(at + "[]")
	}
	return nil
}

func where(at string) string {
	if at == "" {
		return "<root>"
	}
	return at
}

// Known reports whether the type of s is one Validate checks.
func (s *Schema) Known() bool {
	switch s.Type {
	case TypeObject, TypeArray, TypeString, TypeNumber, TypeInteger,
		TypeBoolean, TypeNull, TypeGUID, TypeDate, TypeEnum:
		return true
	}
	return false
}

const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeGUID    = "guid"
	TypeDate    = "date"
	TypeEnum    = "enum"
)
