package encode

import (
	"github.com/signadot/ton-format/ton/format"
)

type EncodeOption func(*EncState)

func EncodeStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// EncodeIndent sets the indent unit of the pretty style.
func EncodeIndent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// EncodePropertySep sets what is written between a member name and its
// value. It defaults to ":" in the compact style and ": " otherwise.
func EncodePropertySep(sep string) EncodeOption {
	return func(es *EncState) { es.propSep = &sep }
}

// EncodeArraySep sets what is written between compact array elements.
// It defaults to ",".
func EncodeArraySep(sep string) EncodeOption {
	return func(es *EncState) { es.arraySep = &sep }
}

func EncodeQuote(q format.Quote) EncodeOption {
	return func(es *EncState) { es.quote = q }
}

func EncodeLineEnding(nl string) EncodeOption {
	return func(es *EncState) { es.nl = nl }
}

func OmitNulls(v bool) EncodeOption {
	return func(es *EncState) { es.omitNulls = v }
}

// OmitEmptyCollections drops members and elements which are empty objects
// or arrays. Typed objects are never considered empty.
func OmitEmptyCollections(v bool) EncodeOption {
	return func(es *EncState) { es.omitEmpty = v }
}

// OmitUndefined drops object members whose value is undefined. Array
// elements are always written. It defaults to true.
func OmitUndefined(v bool) EncodeOption {
	return func(es *EncState) { es.omitUndefined = v }
}

// EncodeHints writes the $ % & ^ prefix of hinted values.
func EncodeHints(v bool) EncodeOption {
	return func(es *EncState) { es.hints = v }
}

func SortProperties(v bool) EncodeOption {
	return func(es *EncState) { es.sorted = v }
}

// EncodeHeader starts the output with a #TON line, and a #SCHEMA line when
// a schema file is set.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

func EncodeVersion(v string) EncodeOption {
	return func(es *EncState) { es.version = v }
}

func EncodeSchemaFile(f string) EncodeOption {
	return func(es *EncState) { es.schemaFile = f }
}

func LowercaseGUIDs(v bool) EncodeOption {
	return func(es *EncState) { es.lowerGUIDs = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Compact selects the single line layout.
func Compact() EncodeOption {
	return EncodeStyle(format.CompactStyle)
}

// Pretty selects the indented layout with a four space indent.
func Pretty() EncodeOption {
	return func(es *EncState) {
		es.style = format.PrettyStyle
		es.indent = defaultIndent
	}
}

// StyleFromOpts extracts the style from encode options.
func StyleFromOpts(opts ...EncodeOption) format.Style {
	es := newEncState(opts)
	return es.style
}
