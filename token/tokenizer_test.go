package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeTypes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{
			name: "object",
			in:   `{ a: 1, b: "x" }`,
			want: []TokenType{TLCurl, TIdentifier, TColon, TNumber, TComma, TIdentifier, TColon, TString, TRCurl, TEOF},
		},
		{
			name: "array",
			in:   `[1 2 3]`,
			want: []TokenType{TLSquare, TNumber, TNumber, TNumber, TRSquare, TEOF},
		},
		{
			name: "hints",
			in:   `$"s" %42 &true ^"2024-01-01"`,
			want: []TokenType{TStringHint, TString, TNumberHint, TNumber, TBooleanHint, TBoolean, TDateHint, TString, TEOF},
		},
		{
			name: "typed object",
			in:   `Person(1) {}`,
			want: []TokenType{TClassName, TLParen, TNumber, TRParen, TLCurl, TRCurl, TEOF},
		},
		{
			name: "keywords",
			in:   `true false null undefined Person person`,
			want: []TokenType{TBoolean, TBoolean, TNull, TUndefined, TClassName, TIdentifier, TEOF},
		},
		{
			name: "comments",
			in:   "// c\n1 /* x\ny */ 2",
			want: []TokenType{TNumber, TNumber, TEOF},
		},
		{
			name: "header directives",
			in:   "#TON 1.0\n  #SCHEMA s.ton\n{}",
			want: []TokenType{TLCurl, TRCurl, TEOF},
		},
		{
			name: "empty",
			in:   "  \n\t",
			want: []TokenType{TEOF},
		},
		{
			name: "annotated member",
			in:   `age:number: 30`,
			want: []TokenType{TIdentifier, TColon, TIdentifier, TColon, TNumber, TEOF},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, tokTypes(toks)); diff != "" {
				t.Errorf("token types (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize([]byte("// c\n1 /* x\ny */ 2"), TokenComments(true))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TComment, TNumber, TComment, TNumber, TEOF}
	if diff := cmp.Diff(want, tokTypes(toks)); diff != "" {
		t.Errorf("token types (-want +got):\n%s", diff)
	}
	if toks[0].Text != "// c" {
		t.Errorf("got comment %q", toks[0].Text)
	}
	last := toks[3]
	if last.Pos.Line != 3 || last.Pos.Col != 6 {
		t.Errorf("got position %s for %q", last.Pos, last.Bytes)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		in    string
		isInt bool
		i     int64
		f     float64
	}{
		{in: "0", isInt: true, i: 0, f: 0},
		{in: "42", isInt: true, i: 42, f: 42},
		{in: "-7", isInt: true, i: -7, f: -7},
		{in: "0xFF", isInt: true, i: 255, f: 255},
		{in: "0X1f", isInt: true, i: 31, f: 31},
		{in: "-0x10", isInt: true, i: -16, f: -16},
		{in: "0b101", isInt: true, i: 5, f: 5},
		{in: "3.14", f: 3.14},
		{in: "1.5e3", f: 1500},
		{in: "2E-2", f: 0.02},
		{in: "12345678", isInt: true, i: 12345678, f: 12345678},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			toks, err := Tokenize([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if len(toks) != 2 {
				t.Fatalf("got %d tokens", len(toks))
			}
			tok := toks[0]
			if tok.Type != TNumber {
				t.Fatalf("got %s", tok.Type)
			}
			if tok.IsInt != tc.isInt {
				t.Errorf("IsInt: got %t want %t", tok.IsInt, tc.isInt)
			}
			if tc.isInt && tok.Int != tc.i {
				t.Errorf("Int: got %d want %d", tok.Int, tc.i)
			}
			if tok.Number != tc.f {
				t.Errorf("Number: got %v want %v", tok.Number, tc.f)
			}
		})
	}
}

func TestTokenizeGUID(t *testing.T) {
	const g = "550e8400-e29b-41d4-a716-446655440000"
	toks, err := Tokenize([]byte(g + " 550E8400-E29B-41D4-A716-446655440000"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]TokenType{TGUID, TGUID, TEOF}, tokTypes(toks)); diff != "" {
		t.Fatalf("token types (-want +got):\n%s", diff)
	}
	if toks[0].Text != g {
		t.Errorf("got %q", toks[0].Text)
	}

	// shapes which start like a GUID fall back to other rules
	fallbacks := []struct {
		in   string
		want []TokenType
	}{
		{in: "deadbeef", want: []TokenType{TIdentifier, TEOF}},
		{in: "abcdef12-", want: nil},
		{in: "1234 abcd", want: []TokenType{TNumber, TIdentifier, TEOF}},
	}
	for _, fb := range fallbacks {
		toks, err := Tokenize([]byte(fb.in))
		if fb.want == nil {
			if err == nil {
				t.Errorf("%q: expected error", fb.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", fb.in, err)
			continue
		}
		if diff := cmp.Diff(fb.want, tokTypes(toks)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", fb.in, diff)
		}
	}
}

func TestTokenizeEnums(t *testing.T) {
	toks, err := Tokenize([]byte("|active| |read|write| |a|b| |c|"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TEnum, TEnumSet, TEnumSet, TEnum, TEOF}
	if diff := cmp.Diff(want, tokTypes(toks)); diff != "" {
		t.Fatalf("token types (-want +got):\n%s", diff)
	}
	if toks[0].Text != "active" {
		t.Errorf("got %q", toks[0].Text)
	}
	if diff := cmp.Diff([]string{"read", "write"}, toks[1].Enums); diff != "" {
		t.Errorf("enum set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, toks[2].Enums); diff != "" {
		t.Errorf("enum set (-want +got):\n%s", diff)
	}

	for _, in := range []string{"||", "|", "| x"} {
		_, err := Tokenize([]byte(in))
		if !errors.Is(err, ErrInvalidEnum) {
			t.Errorf("%q: got %v want %v", in, err, ErrInvalidEnum)
		}
	}
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{in: `"abc"`, out: "abc"},
		{in: `"a\nb"`, out: "a\nb"},
		{in: `"tab\there"`, out: "tab\there"},
		{in: `'it\'s'`, out: "it's"},
		{in: `"say \"hi\""`, out: `say "hi"`},
		{in: `"back\\slash"`, out: `back\slash`},
		{in: `"\q"`, out: "q"},
		{in: `"\u003ca\u00e9"`, out: "<aé"},
		{in: `"\ud83d\ude00"`, out: "\U0001F600"},
		{in: `"\uzz"`, out: "uzz"},
		{in: `"a\bb\f"`, out: "a\bb\f"},
		{in: "`multi\nline`", out: "multi\nline"},
		{in: `"∞"`, out: "∞"},
		{in: `""`, out: ""},
	}
	for _, tc := range tests {
		toks, err := Tokenize([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if toks[0].Type != TString {
			t.Errorf("%s: got %s", tc.in, toks[0].Type)
			continue
		}
		if toks[0].Text != tc.out {
			t.Errorf("%s: got %q want %q", tc.in, toks[0].Text, tc.out)
		}
	}
}

func TestTokenizeTripleQuoted(t *testing.T) {
	in := "\"\"\"\n    line1\n      line2\n\n    line3\n    \"\"\""
	toks, err := Tokenize([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := "line1\n  line2\n\nline3"
	if toks[0].Text != want {
		t.Errorf("got %q want %q", toks[0].Text, want)
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{in: "", out: ""},
		{in: "\n\n", out: ""},
		{in: "abc", out: "abc"},
		{in: "\n  a\n    b\n  c\n", out: "a\n  b\nc"},
		{in: "\n\ta\n\tb", out: "a\nb"},
	}
	for _, tc := range tests {
		if got := Dedent(tc.in); got != tc.out {
			t.Errorf("Dedent(%q): got %q want %q", tc.in, got, tc.out)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		line int
		col  int
	}{
		{in: `"abc`, err: ErrUnterminated, line: 1, col: 1},
		{in: "{ a: \"ab\nc\" }", err: ErrUnterminated, line: 1, col: 6},
		{in: `"""abc`, err: ErrUnterminated, line: 1, col: 1},
		{in: "1 /* x", err: ErrUnterminatedComment, line: 1, col: 3},
		{in: "{\n  invalid: @\n}", err: ErrUnexpectedChar, line: 2, col: 12},
		{in: "0x", err: ErrNumber, line: 1, col: 1},
		{in: "{ # }", err: ErrUnexpectedChar, line: 1, col: 3},
	}
	for _, tc := range tests {
		_, err := Tokenize([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v want %v", tc.in, err, tc.err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: not a TokenizeErr: %T", tc.in, err)
			continue
		}
		if te.Line() != tc.line || te.Col() != tc.col {
			t.Errorf("%q: got %s want line %d, column %d", tc.in, te.Pos, tc.line, tc.col)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize([]byte("{\n  name: \"x\"\n}"))
	if err != nil {
		t.Fatal(err)
	}
	got := make([]Pos, len(toks))
	for i := range toks {
		got[i] = toks[i].Pos
	}
	want := []Pos{
		{Offset: 0, Line: 1, Col: 1},
		{Offset: 4, Line: 2, Col: 3},
		{Offset: 8, Line: 2, Col: 7},
		{Offset: 10, Line: 2, Col: 9},
		{Offset: 14, Line: 3, Col: 1},
		{Offset: 15, Line: 3, Col: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
}
