package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/ton-format/ton/debug"
	"github.com/signadot/ton-format/ton/format"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"
)

const (
	defaultIndent  = "    "
	defaultVersion = "1"
)

type EncState struct {
	depth  int
	indent string
	style  format.Style

	propSep, arraySep *string
	quote             format.Quote
	nl                string

	omitNulls, omitEmpty, omitUndefined bool
	hints, sorted                       bool
	header                              bool
	version, schemaFile                 string
	lowerGUIDs                          bool

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:        defaultIndent,
		nl:            "\n",
		omitUndefined: true,
		version:       defaultVersion,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) compact() bool {
	return es.style == format.CompactStyle
}

func (es *EncState) propertySep() string {
	if es.propSep != nil {
		return *es.propSep
	}
	if es.compact() {
		return ":"
	}
	return ": "
}

func (es *EncState) elementSep() string {
	if es.arraySep != nil {
		return *es.arraySep
	}
	return ","
}

func (es *EncState) paint(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes doc as TON text to w, followed by a line ending.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	root := ir.Null()
	if doc != nil && doc.Root != nil {
		root = doc.Root
	}
	return EncodeNode(root, w, opts...)
}

// EncodeNode is like Encode for a node which need not be a document root.
func EncodeNode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.header {
		if err := writeHeader(w, es); err != nil {
			return err
		}
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encoded %s as %s\n", node.Type, es.style)
	}
	return writeString(w, es.nl)
}

// EncodeAny encodes a Go value, such as a map[string]any decoded from
// JSON, after converting it with ir.FromAny.
func EncodeAny(v any, w io.Writer, opts ...EncodeOption) error {
	node, err := ir.FromAny(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return EncodeNode(node, w, opts...)
}

// String returns the encoding of doc without the final line ending.
func String(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	// a bytes.Buffer never fails
	_ = Encode(doc, buf, opts...)
	es := newEncState(opts)
	return strings.TrimSuffix(buf.String(), es.nl)
}

func writeHeader(w io.Writer, es *EncState) error {
	ln := "#TON " + es.version
	if err := writeString(w, es.paint(ir.NullType, CommentColor, ln)+es.nl); err != nil {
		return err
	}
	if es.schemaFile == "" {
		return nil
	}
	ln = "#SCHEMA " + es.schemaFile
	return writeString(w, es.paint(ir.NullType, CommentColor, ln)+es.nl)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		return writeString(w, es.paint(node.Type, ValueColor, leafText(node, es)))
	}
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, es.nl+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) omit(v *ir.Node, member bool) bool {
	switch v.Type {
	case ir.NullType:
		return es.omitNulls
	case ir.UndefinedType:
		return member && es.omitUndefined
	case ir.ObjectType:
		return es.omitEmpty && len(v.Values) == 0
	case ir.ArrayType:
		return es.omitEmpty && len(v.Values) == 0
	}
	return false
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if node.ClassName != "" {
		tag := node.ClassName
		if node.InstanceCount != nil {
			tag += "(" + strconv.FormatInt(*node.InstanceCount, 10) + ")"
		}
		if err := writeString(w, es.paint(ir.ObjectType, TagColor, tag)); err != nil {
			return err
		}
	}
	members := make([]ir.KeyVal, 0, len(node.Values)+1)
	if node.ClassName == "" && node.InstanceCount != nil {
		// an instance count has no tag to ride on
		members = append(members, ir.KeyVal{Key: ir.InstanceIDKey, Val: ir.FromInt(*node.InstanceCount)})
	}
	for _, kv := range node.Entries() {
		if es.omit(kv.Val, true) {
			continue
		}
		members = append(members, kv)
	}
	if es.sorted {
		slices.SortStableFunc(members, func(a, b ir.KeyVal) int {
			return strings.Compare(a.Key, b.Key)
		})
	}
	if len(members) == 0 {
		return writeString(w, es.paint(ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, es.paint(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, kv := range members {
		if es.compact() {
			if i > 0 {
				if err := writeString(w, es.paint(ir.ObjectType, SepColor, ",")); err != nil {
					return err
				}
			}
		} else if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.paint(kv.Val.Type, FieldColor, keyText(kv.Key, es)) +
			es.paint(ir.ObjectType, SepColor, es.propertySep())
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := encode(kv.Val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !es.compact() {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.paint(ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	elts := make([]*ir.Node, 0, len(node.Values))
	for _, v := range node.Values {
		if !es.omit(v, false) {
			elts = append(elts, v)
		}
	}
	if len(elts) == 0 {
		return writeString(w, es.paint(ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, es.paint(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range elts {
		if es.compact() {
			if i > 0 {
				if err := writeString(w, es.paint(ir.ArrayType, SepColor, es.elementSep())); err != nil {
					return err
				}
			}
		} else if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !es.compact() {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.paint(ir.ArrayType, SepColor, "]"))
}

func keyText(k string, es *EncState) string {
	if token.IsIdentifier(k) {
		return k
	}
	return token.Quote(k, es.quote.Char())
}

// leafText renders a primitive, enum or enum set with its hint prefix.
func leafText(node *ir.Node, es *EncState) string {
	prefix := ""
	if es.hints && node.Hint != ir.HintNone && node.Hint != ir.HintUnknown {
		if s := node.Hint.Sigil(); s != 0 {
			prefix = string(s)
		}
	}
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.UndefinedType:
		return "undefined"
	case ir.BoolType:
		return prefix + strconv.FormatBool(node.Bool)
	case ir.NumberType:
		return prefix + numberText(node)
	case ir.StringType:
		switch node.Hint {
		case ir.HintEnum, ir.HintEnumSet:
			if isEnumWord(node.String) {
				return token.EnumText(node.String)
			}
		}
		if token.IsGUID(node.String) && prefix == "" {
			return guidText(node.String, es)
		}
		return prefix + token.Quote(node.String, es.quote.Char())
	case ir.GUIDType:
		return guidText(node.String, es)
	case ir.DateType:
		if es.hints {
			prefix = "^"
		}
		return prefix + token.Quote(ir.FormatDate(node.Time), es.quote.Char())
	case ir.EnumType:
		if isEnumWord(node.String) {
			return token.EnumText(node.String)
		}
		return token.Quote(node.String, es.quote.Char())
	case ir.EnumSetType:
		if slices.ContainsFunc(node.Enums, func(e string) bool { return !isEnumWord(e) }) {
			elts := make([]string, len(node.Enums))
			for i, e := range node.Enums {
				elts[i] = token.Quote(e, es.quote.Char())
			}
			return "[" + strings.Join(elts, es.elementSep()) + "]"
		}
		return token.EnumText(node.Enums...)
	}
	return token.Quote(fmt.Sprint(node.Value()), es.quote.Char())
}

func isEnumWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func guidText(s string, es *EncState) string {
	if es.lowerGUIDs {
		return ir.CanonicalGUID(s)
	}
	return s
}

func numberText(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 == nil {
		return "0"
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
