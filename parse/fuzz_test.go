package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`undefined`,
		`true`,
		`42`,
		`-3.14e-2`,
		`0xFF`,
		`0b101`,
		`""`,
		`'single'`,
		"`back\ntick`",
		`550e8400-e29b-41d4-a716-446655440000`,

		// Containers
		`[]`,
		`[1 2 3]`,
		`{}`,
		`{a: 1 b: [x, |y|z|]}`,
		`Person(1) { name: "John" }`,

		// Hints and annotations
		`$"s"`,
		`{n:number: 1, d:date "2024-01-01"}`,
		`^"2024-01-01T10:30:00Z"`,

		// Multi-line strings and comments
		"\"\"\"\n    a\n      b\n    \"\"\"",
		"#TON 1\n// c\n{ /* b */ a: 1 }",

		// Errors
		`{`,
		`[1,`,
		`|`,
		`"open`,
		`/* open`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Parse(data)
		if err != nil {
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf, encode.Compact()); err != nil {
			t.Fatalf("encode: %v", err)
		}
		back, err := Parse(buf.Bytes())
		if err != nil {
			return
		}
		_ = ir.Equal(doc.Root, back.Root)
	})
}
