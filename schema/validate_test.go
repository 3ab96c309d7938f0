package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
)

func mustSchema(t *testing.T, m map[string]any) *Schema {
	t.Helper()
	s, err := FromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustDoc(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

type validateTest struct {
	name     string
	doc      string
	schema   map[string]any
	errors   []string
	warnings []string
}

func runValidateTests(t *testing.T, tests []validateTest) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(mustDoc(t, tc.doc), mustSchema(t, tc.schema))
			if res.Valid != (len(tc.errors) == 0) {
				t.Errorf("valid %v with errors %v", res.Valid, res.Errors)
			}
			if diff := cmp.Diff(tc.errors, res.Errors); diff != "" {
				t.Errorf("errors (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.warnings, res.Warnings); diff != "" {
				t.Errorf("warnings (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateCore(t *testing.T) {
	runValidateTests(t, []validateTest{
		{
			name: "accumulates",
			doc:  `{ name: "", age: 150, extra: true }`,
			schema: map[string]any{
				"type":     "object",
				"required": []any{"name", "email"},
				"properties": map[string]any{
					"name":  map[string]any{"type": "string", "minLength": 1},
					"age":   map[string]any{"type": "number", "minimum": 0, "maximum": 120},
					"email": map[string]any{"type": "string"},
				},
			},
			errors: []string{
				": Missing required property 'email'",
				"name: String length 0 is less than minimum 1",
				"age: Value 150 exceeds maximum 120",
			},
		},
		{
			name: "mismatch stops descent",
			doc:  `[1]`,
			schema: map[string]any{
				"type":     "object",
				"required": []any{"x"},
			},
			errors: []string{": Expected object, got array"},
		},
		{
			name: "array",
			doc:  `{ tags: ["a", 1, "bbbb"] }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tags": map[string]any{
						"type":     "array",
						"minItems": 4,
						"items":    map[string]any{"type": "string", "maxLength": 3},
					},
				},
			},
			errors: []string{
				"tags: Array has 3 items, minimum is 4",
				"tags[1]: Expected string, got number",
				"tags[2]: String length 4 exceeds maximum 3",
			},
		},
		{
			name: "max items",
			doc:  `[1, 2, 3]`,
			schema: map[string]any{
				"type":     "array",
				"maxItems": 2,
			},
			errors: []string{": Array has 3 items, maximum is 2"},
		},
		{
			name: "enum short circuits",
			doc:  `{ s: "x" }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"s": map[string]any{"type": "string", "enum": []any{"a", "b"}, "minLength": 5},
				},
			},
			errors: []string{`s: Value "x" is not in enum [a, b]`},
		},
		{
			name: "both lengths",
			doc:  `"abc"`,
			schema: map[string]any{
				"type":      "string",
				"minLength": 5,
				"maxLength": 1,
			},
			errors: []string{
				": String length 3 is less than minimum 5",
				": String length 3 exceeds maximum 1",
			},
		},
		{
			name: "number bounds",
			doc:  `[-1.5, 7]`,
			schema: map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number", "minimum": 0, "maximum": 5},
			},
			errors: []string{
				"[0]: Value -1.5 is less than minimum 0",
				"[1]: Value 7 exceeds maximum 5",
			},
		},
		{
			name: "strict kinds",
			doc:  `{ b: 1, n: 0, ok: false, z: null }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"b":  map[string]any{"type": "boolean"},
					"n":  map[string]any{"type": "null"},
					"ok": map[string]any{"type": "boolean"},
					"z":  map[string]any{"type": "null"},
				},
			},
			errors: []string{
				"b: Expected boolean, got number",
				"n: Expected null, got number",
			},
		},
		{
			name:   "unknown type passes",
			doc:    `{ a: 1 }`,
			schema: map[string]any{"type": "widget", "minLength": 100},
		},
		{
			name: "nested paths",
			doc:  `{ user: { address: { zip: 5 } } }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"address": map[string]any{
								"type":     "object",
								"required": []any{"city"},
								"properties": map[string]any{
									"zip": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
			errors: []string{
				"user.address: Missing required property 'city'",
				"user.address.zip: Expected string, got number",
			},
		},
	})
}

func TestValidateExtended(t *testing.T) {
	runValidateTests(t, []validateTest{
		{
			name: "class metadata",
			doc:  `Person(1) { name: "John" }`,
			schema: map[string]any{
				"type":     "object",
				"required": []any{"_className", "name"},
				"properties": map[string]any{
					"_className":  map[string]any{"type": "string", "enum": []any{"Person"}},
					"_instanceId": map[string]any{"type": "integer", "minimum": 2},
				},
			},
			errors: []string{"_instanceId: Value 1 is less than minimum 2"},
		},
		{
			name: "integer and multiple",
			doc:  `[4, 1.5, 9]`,
			schema: map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer", "multipleOf": 2},
			},
			errors: []string{
				"[1]: Expected integer, got 1.5",
				"[2]: Value 9 is not a multiple of 2",
			},
		},
		{
			name: "pattern",
			doc:  `{ code: "AB-12", bad: "ab12" }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code": map[string]any{"type": "string", "pattern": `^[A-Z]+-\d+$`},
					"bad":  map[string]any{"type": "string", "pattern": `^[A-Z]+-\d+$`},
				},
			},
			errors: []string{`bad: Value "ab12" does not match pattern ^[A-Z]+-\d+$`},
		},
		{
			name: "guid and date",
			doc: `{
				id: 550e8400-e29b-41d4-a716-446655440000
				sid: "550e8400-e29b-41d4-a716-446655440000"
				when: ^"2024-01-01"
				text: "2024-02-03"
				bad: "yesterday"
				num: 3
			}`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "guid"},
					"sid":  map[string]any{"type": "guid"},
					"when": map[string]any{"type": "date"},
					"text": map[string]any{"type": "date"},
					"bad":  map[string]any{"type": "date"},
					"num":  map[string]any{"type": "guid"},
				},
			},
			errors: []string{
				`bad: Value "yesterday" is not a date`,
				"num: Expected guid, got number",
			},
		},
		{
			name: "guid is a string",
			doc:  `550e8400-e29b-41d4-a716-446655440000`,
			schema: map[string]any{
				"type":      "string",
				"minLength": 36,
			},
		},
		{
			name: "enum nodes",
			doc:  `{ role: |admin|, perms: |read|exec|, s: "x" }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role":  map[string]any{"type": "enum", "enum": []any{"admin", "user"}},
					"perms": map[string]any{"type": "enum", "enum": []any{"read", "write"}},
					"s":     map[string]any{"type": "enum"},
				},
			},
			errors: []string{
				`perms: Value "exec" is not in enum [read, write]`,
				"s: Expected enum, got string",
			},
		},
		{
			name: "enums and dates as strings",
			doc:  `{ s: |x|, t: |z|, d: ^"2024-01-01", set: |a|b| }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"s":   map[string]any{"type": "string", "enum": []any{"x", "y"}},
					"t":   map[string]any{"type": "string", "enum": []any{"x", "y"}},
					"d":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
					"set": map[string]any{"type": "string"},
				},
			},
			errors: []string{
				`t: Value "z" is not in enum [x, y]`,
				"set: Expected string, got enumSet",
			},
		},
		{
			name: "nullable and deprecated",
			doc:  `{ a: null, b: null, old: 1 }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a":   map[string]any{"type": "string", "nullable": true},
					"b":   map[string]any{"type": "string"},
					"old": map[string]any{"type": "number", "deprecated": true},
				},
			},
			errors:   []string{"b: Expected string, got null"},
			warnings: []string{"old: Property is deprecated"},
		},
		{
			name: "expr",
			doc:  `{ n: 4, m: 3, lo: 2, hi: 1, tags: ["a", "b"] }`,
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"n":    map[string]any{"type": "number", "expr": "value % 2 == 0"},
					"m":    map[string]any{"type": "number", "expr": "value % 2 == 0"},
					"hi":   map[string]any{"type": "number", "expr": `value >= getpath("$.lo")`},
					"tags": map[string]any{"type": "array", "expr": `len(value) == 2 && whereami() == "$.tags" && path == "tags"`},
				},
			},
			errors: []string{
				"m: Value 3 does not satisfy value % 2 == 0",
				`hi: Value 1 does not satisfy value >= getpath("$.lo")`,
			},
		},
	})
}

func TestResultErr(t *testing.T) {
	s := mustSchema(t, map[string]any{"type": "string"})
	if err := Validate(mustDoc(t, `"ok"`), s).Err(); err != nil {
		t.Errorf("got %v", err)
	}
	err := Validate(mustDoc(t, `1`), s).Err()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v", err)
	}
	if want := "validation failed\n: Expected string, got number"; err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	if res := ValidateNode(ir.FromInt(1), nil); !res.Valid {
		t.Error("nil schema should pass")
	}
}

func TestValidateCompilesOnUse(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"code": {Type: TypeString, Pattern: "^[A-Z]+$"},
			"n":    {Type: TypeNumber, Expr: "value > 10"},
		},
	}
	res := Validate(mustDoc(t, `{ code: "ab", n: 3 }`), s)
	want := []string{
		`code: Value "ab" does not match pattern ^[A-Z]+$`,
		"n: Value 3 does not satisfy value > 10",
	}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}

	bad := &Schema{Type: TypeNumber, Expr: "value >"}
	res = Validate(mustDoc(t, `1`), bad)
	if res.Valid || len(res.Errors) != 1 {
		t.Errorf("expected a schema error, got %v", res.Errors)
	}
}

func TestExprOverValues(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hi":   map[string]any{"type": "number", "expr": "value == root.lo * 2"},
			"name": map[string]any{"type": "string", "expr": "len(value) > 2"},
		},
	})
	res := Validate(mustDoc(t, `{ lo: 2, hi: 4, name: "Al" }`), s)
	want := []string{`name: Value "Al" does not satisfy len(value) > 2`}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}
}
