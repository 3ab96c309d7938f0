package encode

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ton-format/ton/format"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
)

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return doc
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		in   string
		opts []EncodeOption
		out  string
	}{
		{in: `{ name: "John", age: 30 }`, out: `{name:"John",age:30}`},
		{in: `[1, 2, 3]`, out: `[1,2,3]`},
		{in: `{}`, out: `{}`},
		{in: `[]`, out: `[]`},
		{in: `Person(1) { name: "John" }`, out: `Person(1){name:"John"}`},
		{in: `Point { x: 1.5, y: -2 }`, out: `Point{x:1.5,y:-2}`},
		{in: `{ s: |x|, t: |x|y| }`, out: `{s:|x|,t:|x|y|}`},
		{in: `{ "first-name": 'a', "true": null }`, out: `{"first-name":"a","true":null}`},
		{in: `{ id: 550e8400-e29b-41d4-a716-446655440000 }`, out: `{id:550e8400-e29b-41d4-a716-446655440000}`},
		{in: `{ u: undefined, n: null }`, out: `{n:null}`},
		{in: `[undefined, null]`, out: `[undefined,null]`},
		{in: `0xFF`, out: `255`},
		{in: `"line\nbreak"`, out: `"line\nbreak"`},
		{
			in:   `{ a: $"x", b: %42, c: &true, d: ^"2024-01-01" }`,
			opts: []EncodeOption{EncodeHints(true)},
			out:  `{a:$"x",b:%42,c:&true,d:^"2024-01-01"}`,
		},
		{
			in:  `{ a: $"x", b: %42, c: &true, d: ^"2024-01-01" }`,
			out: `{a:"x",b:42,c:true,d:"2024-01-01"}`,
		},
		{
			in:   `{ age:number: 30, when:date: "2024-01-02T10:30:00Z" }`,
			opts: []EncodeOption{EncodeHints(true)},
			out:  `{age:%30,when:^"2024-01-02T10:30:00Z"}`,
		},
		{
			in:   `{ b: 2, a: 1, c: { z: 1, y: 2 } }`,
			opts: []EncodeOption{SortProperties(true)},
			out:  `{a:1,b:2,c:{y:2,z:1}}`,
		},
		{
			in:   `{ a: null, b: {}, c: [], d: T {}, e: [null, [], 1] }`,
			opts: []EncodeOption{OmitNulls(true), OmitEmptyCollections(true)},
			out:  `{e:[1]}`,
		},
		{
			in:   `{ u: undefined }`,
			opts: []EncodeOption{OmitUndefined(false)},
			out:  `{u:undefined}`,
		},
		{
			in:   `{ a: "it's" }`,
			opts: []EncodeOption{EncodeQuote(format.SingleQuote)},
			out:  `{a:'it\'s'}`,
		},
		{
			in:   `{ a: [1, 2] }`,
			opts: []EncodeOption{EncodePropertySep(" = "), EncodeArraySep(", ")},
			out:  `{a = [1, 2]}`,
		},
		{
			in:   `550E8400-E29B-41D4-A716-446655440000`,
			opts: []EncodeOption{LowercaseGUIDs(true)},
			out:  `550e8400-e29b-41d4-a716-446655440000`,
		},
	}
	for _, tc := range tests {
		doc := mustParse(t, tc.in)
		got := String(doc, append([]EncodeOption{Compact()}, tc.opts...)...)
		if got != tc.out {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	doc := mustParse(t, `Person(2) { name: "John", tags: [|a|, |b|c|], empty: {}, inner: { x: 1 } }`)
	got := String(doc, EncodeIndent("  "))
	want := strings.Join([]string{
		`Person(2){`,
		`  name: "John"`,
		`  tags: [`,
		`    |a|`,
		`    |b|c|`,
		`  ]`,
		`  empty: {}`,
		`  inner: {`,
		`    x: 1`,
		`  }`,
		`}`,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pretty (-want +got):\n%s", diff)
	}

	got = String(mustParse(t, `{a: 1}`), Pretty(), EncodeLineEnding("\r\n"))
	if got != "{\r\n    a: 1\r\n}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	doc := mustParse(t, `{a: 1}`)
	err := Encode(doc, buf, Compact(), EncodeHeader(true), EncodeVersion("2"), EncodeSchemaFile("s.ton"))
	if err != nil {
		t.Fatal(err)
	}
	want := "#TON 2\n#SCHEMA s.ton\n{a:1}\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	back := mustParse(t, buf.String())
	if !ir.Equal(doc.Root, back.Root) {
		t.Error("headered output did not read back")
	}
}

func TestEncodeNumbers(t *testing.T) {
	tests := []struct {
		node *ir.Node
		out  string
	}{
		{ir.FromFloat(1.5), "1.5"},
		{ir.FromFloat(2), "2.0"},
		{ir.FromFloat(1e21), "1e+21"},
		{ir.FromFloat(math.NaN()), "null"},
		{ir.FromFloat(math.Inf(-1)), "null"},
		{ir.FromInt(-7), "-7"},
	}
	for _, tc := range tests {
		if got := MustString(tc.node); got != tc.out {
			t.Errorf("got %s want %s", got, tc.out)
		}
	}
}

func TestEncodeProgrammatic(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "s", Val: ir.FromString("active").WithHint(ir.HintEnum)},
		{Key: "g", Val: ir.FromString("550e8400-e29b-41d4-a716-446655440000")},
		{Key: "odd", Val: ir.FromString("a b").WithHint(ir.HintEnum)},
	})
	got := MustString(obj)
	want := `{s:|active|,g:550e8400-e29b-41d4-a716-446655440000,odd:"a b"}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeEnumFallback(t *testing.T) {
	tests := []struct {
		node *ir.Node
		opts []EncodeOption
		out  string
	}{
		{node: ir.FromEnum("on"), out: `|on|`},
		{node: ir.FromEnum("a b"), out: `"a b"`},
		{node: ir.FromEnum(""), out: `""`},
		{node: ir.FromEnumSet("r", "w"), out: `|r|w|`},
		{node: ir.FromEnumSet("r", "x-y"), out: `["r","x-y"]`},
		{
			node: ir.FromEnumSet("r", "x-y"),
			opts: []EncodeOption{EncodeQuote(format.SingleQuote)},
			out:  `['r','x-y']`,
		},
	}
	for _, tc := range tests {
		buf := &bytes.Buffer{}
		if err := EncodeNode(tc.node, buf, append([]EncodeOption{Compact()}, tc.opts...)...); err != nil {
			t.Fatal(err)
		}
		got := strings.TrimSpace(buf.String())
		if got != tc.out {
			t.Errorf("got %s want %s", got, tc.out)
			continue
		}
		if _, err := parse.ParseString(got); err != nil {
			t.Errorf("reparse %s: %v", got, err)
		}
	}
}

func TestEncodeAny(t *testing.T) {
	buf := &bytes.Buffer{}
	err := EncodeAny(map[string]any{"b": 1, "a": []any{"x", true}}, buf, Compact())
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{a:[\"x\",true],b:1}\n" {
		t.Errorf("got %q", got)
	}
	if err := EncodeAny(struct{}{}, buf); err == nil {
		t.Error("expected error")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`{ name: "John", age: 30, score: 9.5, ok: true, none: null }`,
		`Person(1) { name: "John", friends: [Person(2) { name: "Jane" }] }`,
		`{ id: 550e8400-e29b-41d4-a716-446655440000, s: |x|, set: |r|w| }`,
		`[ [], {}, [1, [2, [3]]], "a\tb", 'q"uote' ]`,
		`{ "key with space": -1.25e-3, big: 9223372036854775807 }`,
		`{ a: $"x", b: %42, c: &false, d: ^"2024-01-01T10:30:00Z" }`,
		`{ _className: 5, a: 1 }`,
		`{ _instanceId: "x", b: [1] }`,
		`{ c: 1, _instanceId: 7 }`,
		`{ _className: "", d: {} }`,
		`{ text: """
		    first
		      second
		    """ }`,
	}
	styles := [][]EncodeOption{
		{Compact()},
		{Pretty()},
		{Compact(), EncodeHints(true)},
		{Pretty(), EncodeQuote(format.SingleQuote), SortProperties(true)},
	}
	for _, in := range inputs {
		doc := mustParse(t, in)
		for i, opts := range styles {
			text := String(doc, opts...)
			back, err := parse.ParseString(text)
			if err != nil {
				t.Errorf("%d %s: reparse %q: %v", i, in, text, err)
				continue
			}
			if diff := cmp.Diff(doc.ToAny(), back.ToAny()); diff != "" {
				t.Errorf("%d %s: projection (-want +got):\n%s", i, in, diff)
			}
			if again := String(back, opts...); again != text {
				t.Errorf("%d %s: not idempotent:\n%s\n%s", i, in, text, again)
			}
		}
	}
}

func TestEncodeColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = save }()

	doc := mustParse(t, `Person(1) { name: "100%", n: 1, e: |a| }`)
	plain := String(doc)
	colored := String(doc, EncodeColors(NewColors()))
	if plain != colored {
		t.Errorf("got %q want %q", colored, plain)
	}
	c := NewColors()
	if got := c.Color(ir.StringType, ValueColor, "50%"); got != "50%" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := EncodeYAML(mustParse(t, `{ name: "John", age: 30 }`).Root, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "name: John\nage: 30\n" {
		t.Errorf("got %q", got)
	}
}

func TestStyleFromOpts(t *testing.T) {
	if StyleFromOpts() != format.PrettyStyle || StyleFromOpts(Compact()) != format.CompactStyle {
		t.Error("style from opts")
	}
}
