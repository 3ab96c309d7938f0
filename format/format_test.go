package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"t": TONFormat, "json": JSONFormat, "y": YAMLFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%s: got %v %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if JSONFormat.Suffix() != ".json" || TONFormat.String() != "ton" {
		t.Error("format text")
	}
}

func TestStyleQuoteText(t *testing.T) {
	var s Style
	if err := s.UnmarshalText([]byte("compact")); err != nil || s != CompactStyle {
		t.Errorf("got %v %v", s, err)
	}
	if err := s.UnmarshalText([]byte("wide")); err == nil {
		t.Error("expected error")
	}
	var q Quote
	if err := q.UnmarshalText([]byte("single")); err != nil || q.Char() != '\'' {
		t.Errorf("got %v %v", q, err)
	}
	if DoubleQuote.Char() != '"' {
		t.Error("double quote char")
	}
}
