package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/signadot/ton-format/ton"
	"github.com/signadot/ton-format/ton/debug"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
	"github.com/signadot/ton-format/ton/schema"
	"github.com/signadot/ton-format/ton/token"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	err       error
	positions map[*ir.Node]*token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func newDocument(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	doc := &document{uri: uri, content: content, version: version, positions: positions}
	res, err := parse.ParseString(content, parse.ParsePositions(positions))
	if err != nil {
		doc.err = err
		return doc
	}
	doc.node = res.Root
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("%s: %d diagnostics\n", uri, len(diagnostics))
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports the syntax error of doc, or else the result of
// validating it against the schema named in its #SCHEMA header.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   "ton",
		}
		var pe *parse.ParseErr
		if errors.As(doc.err, &pe) {
			d.Range = pointRange(pe.Pos)
		}
		return append(diagnostics, d)
	}

	s, err := ton.HeaderSchema(filename(doc.uri), []byte(doc.content))
	if err != nil {
		return append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  err.Error(),
			Source:   "ton",
		})
	}
	if s == nil {
		return diagnostics
	}
	res := schema.ValidateNode(doc.node, s)
	for _, msg := range res.Errors {
		diagnostics = append(diagnostics, doc.schemaDiagnostic(msg, protocol.DiagnosticSeverityError))
	}
	for _, msg := range res.Warnings {
		diagnostics = append(diagnostics, doc.schemaDiagnostic(msg, protocol.DiagnosticSeverityWarning))
	}
	return diagnostics
}

// schemaDiagnostic places a validation message, which starts with the
// path of the offending node, at that node.
func (doc *document) schemaDiagnostic(msg string, sev protocol.DiagnosticSeverity) protocol.Diagnostic {
	d := protocol.Diagnostic{Severity: sev, Message: msg, Source: "ton-schema"}
	path, _, ok := strings.Cut(msg, ": ")
	if !ok {
		return d
	}
	if node := nodeAtSchemaPath(doc.node, path); node != nil {
		if pos := doc.positions[node]; pos != nil {
			d.Range = pointRange(*pos)
		}
	}
	return d
}

func nodeAtSchemaPath(root *ir.Node, path string) *ir.Node {
	p := "$"
	if path != "" {
		p += "."
		if path[0] == '[' {
			p = "$"
		}
		p += path
	}
	node, err := root.GetPath(p)
	if err != nil {
		return nil
	}
	return node
}

func pointRange(p token.Pos) protocol.Range {
	if !p.IsValid() {
		return protocol.Range{}
	}
	start := protocol.Position{Line: uint32(p.Line - 1), Character: uint32(p.Col - 1)}
	end := start
	end.Character++
	return protocol.Range{Start: start, End: end}
}

func filename(u string) string {
	if strings.HasPrefix(u, "file://") {
		return uri.URI(u).Filename()
	}
	return u
}

// schemaPath resolves a #SCHEMA reference the way ton.HeaderSchema does.
func schemaPath(docURI, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(filename(docURI)), ref)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change. A zero range replaces the whole
// document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	runes := []rune(content)
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end || end > len(runes) {
		return content
	}
	return string(runes[:start]) + change.Text + string(runes[end:])
}

// DidSave re-publishes diagnostics, as the schema file may have changed.
func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	if h := parse.ReadHeader([]byte(doc.content)); h.Schema != "" {
		schema.Unregister(schemaPath(doc.uri, h.Schema))
	}
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset returns the rune offset of a 0-based line and column.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	i := 0
	for _, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
		i++
	}
	return i
}
