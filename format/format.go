package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TONFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TONFormat,
		"ton":  TONFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TONFormat:
		return []byte("ton"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTON() bool  { return f == TONFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TONFormat:
		return ".ton"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// Style is the layout of TON output.
type Style int

const (
	PrettyStyle Style = iota
	CompactStyle
)

func ParseStyle(v string) (Style, error) {
	switch v {
	case "pretty", "p":
		return PrettyStyle, nil
	case "compact", "c":
		return CompactStyle, nil
	}
	return 0, fmt.Errorf("%w: style %q", ErrBadFormat, v)
}

func (s Style) String() string {
	if s == CompactStyle {
		return "compact"
	}
	return "pretty"
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// Quote selects the delimiter of string literals.
type Quote int

const (
	DoubleQuote Quote = iota
	SingleQuote
)

func ParseQuote(v string) (Quote, error) {
	switch v {
	case "double", "d", `"`:
		return DoubleQuote, nil
	case "single", "s", "'":
		return SingleQuote, nil
	}
	return 0, fmt.Errorf("%w: quote %q", ErrBadFormat, v)
}

func (q Quote) String() string {
	if q == SingleQuote {
		return "single"
	}
	return "double"
}

// Char returns the delimiter byte.
func (q Quote) Char() byte {
	if q == SingleQuote {
		return '\''
	}
	return '"'
}

func (q Quote) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quote) UnmarshalText(d []byte) error {
	pq, err := ParseQuote(string(d))
	if err != nil {
		return err
	}
	*q = pq
	return nil
}
