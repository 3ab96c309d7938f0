package ton

import (
	"bytes"
	"encoding/json"
	"os"
	"reflect"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/format"
	"github.com/signadot/ton-format/ton/parse"
)

// Formatter re-renders TON text with a fixed set of encoder options.
type Formatter struct {
	opts []encode.EncodeOption
}

// NewFormatter returns a Formatter using opts, or the pretty preset when
// none are given.
func NewFormatter(opts ...encode.EncodeOption) *Formatter {
	if len(opts) == 0 {
		opts = []encode.EncodeOption{encode.Pretty()}
	}
	return &Formatter{opts: opts}
}

// FormatterFor returns a Formatter for the given style, with properties
// sorted when sorted is set.
func FormatterFor(style format.Style, sorted bool) *Formatter {
	opt := encode.Pretty()
	if style == format.CompactStyle {
		opt = encode.Compact()
	}
	return NewFormatter(opt, encode.SortProperties(sorted))
}

// Format parses src and renders it again. Comments are not kept.
func (f *Formatter) Format(src []byte) ([]byte, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, f.opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *Formatter) FormatString(src string) (string, error) {
	d, err := f.Format([]byte(src))
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// FormatFile returns the formatted content of the file at path.
func (f *Formatter) FormatFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Format(d)
}

// FormatFileTo formats the file at in and writes the result to out, which
// may be the same file.
func (f *Formatter) FormatFileTo(in, out string) error {
	d, err := f.FormatFile(in)
	if err != nil {
		return err
	}
	return os.WriteFile(out, d, 0644)
}

func (f *Formatter) FormatFileInPlace(path string) error {
	return f.FormatFileTo(path, path)
}

// Pretty formats src in the pretty style.
func Pretty(src string) (string, error) {
	return FormatterFor(format.PrettyStyle, false).FormatString(src)
}

// Compact formats src in the compact style.
func Compact(src string) (string, error) {
	return FormatterFor(format.CompactStyle, false).FormatString(src)
}

// Sorted formats src in the pretty style with object properties sorted by
// name.
func Sorted(src string) (string, error) {
	return FormatterFor(format.PrettyStyle, true).FormatString(src)
}

// Equivalent reports whether two TON texts hold the same data, comparing
// their JSON projections without regard to member order. A text which
// does not parse is equivalent to nothing.
func Equivalent(original, formatted string) bool {
	a, err := projection(original)
	if err != nil {
		return false
	}
	b, err := projection(formatted)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func projection(src string) (any, error) {
	doc, err := parse.ParseString(src)
	if err != nil {
		return nil, err
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return v, nil
}
