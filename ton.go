// Package ton reads and writes TON (Text Object Notation) documents.
//
// The work is done by the subpackages: token (lexer), parse, ir (the
// document tree), encode (serializer) and schema (validation). This
// package composes them for files, formatting and patching.
package ton

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
	"github.com/signadot/ton-format/ton/schema"
)

// ParseString parses a TON text.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.ParseString(s, opts...)
}

// ParseFile parses the TON file at path.
func ParseFile(path string, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Serialize renders doc as TON text, by default in the pretty style.
func Serialize(doc *ir.Document, opts ...encode.EncodeOption) string {
	return encode.String(doc, opts...)
}

// SerializeToFile writes doc to path, replacing any existing content.
func SerializeToFile(doc *ir.Document, path string, opts ...encode.EncodeOption) error {
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate checks doc against s.
func Validate(doc *ir.Document, s *schema.Schema) *schema.Result {
	return schema.Validate(doc, s)
}

// ValidateFile parses the file at path and validates it. When s is nil the
// schema named by the file's #SCHEMA header is loaded, relative to the
// file's directory. A file with neither passes.
func ValidateFile(path string, s *schema.Schema) (*schema.Result, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s == nil {
		s, err = HeaderSchema(path, d)
		if err != nil {
			return nil, err
		}
	}
	return schema.Validate(doc, s), nil
}

// HeaderSchema loads the schema named by the #SCHEMA header of d, the
// content of the file at path. It returns nil when there is no header.
func HeaderSchema(path string, d []byte) (*schema.Schema, error) {
	h := parse.ReadHeader(d)
	if h.Schema == "" {
		return nil, nil
	}
	sPath := h.Schema
	if !filepath.IsAbs(sPath) {
		sPath = filepath.Join(filepath.Dir(path), sPath)
	}
	s, err := schema.LoadCached(sPath)
	if err != nil {
		return nil, fmt.Errorf("schema of %s: %w", path, err)
	}
	return s, nil
}
