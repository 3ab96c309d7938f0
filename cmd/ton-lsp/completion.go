package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/ton-format/ton"
	"github.com/signadot/ton-format/ton/schema"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix := linePrefix(doc.content, int(params.Position.Line), int(params.Position.Character))
	trimmed := strings.TrimRight(prefix, " \t")

	var sch *schema.Schema
	if sc, err := ton.HeaderSchema(filename(doc.uri), []byte(doc.content)); err == nil {
		sch = sc
	}

	completions := []protocol.CompletionItem{}
	switch {
	case strings.HasSuffix(trimmed, ":"):
		completions = append(completions, valueItems(" ")...)
		if !strings.HasSuffix(prefix, " ") {
			completions = append(completions, hintItems()...)
		}
	case strings.HasSuffix(trimmed, "|"):
		completions = append(completions, enumItems(sch)...)
	case trimmed == "" || strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, ","):
		completions = append(completions, propertyItems(sch)...)
	case strings.HasSuffix(trimmed, "["):
		completions = append(completions, valueItems("")...)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}

// linePrefix returns the text of the given line up to col.
func linePrefix(content string, line, col int) string {
	lines := strings.Split(content, "\n")
	if line >= len(lines) {
		return ""
	}
	runes := []rune(lines[line])
	if col > len(runes) {
		col = len(runes)
	}
	return string(runes[:col])
}

func valueItems(lead string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, kw := range []string{"null", "undefined", "true", "false"} {
		items = append(items, protocol.CompletionItem{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: lead + kw,
		})
	}
	return append(items,
		protocol.CompletionItem{
			Label:      "empty object",
			Kind:       protocol.CompletionItemKindSnippet,
			InsertText: lead + "{}",
		},
		protocol.CompletionItem{
			Label:      "empty array",
			Kind:       protocol.CompletionItemKindSnippet,
			InsertText: lead + "[]",
		},
	)
}

func hintItems() []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, h := range []string{"string", "number", "boolean", "date"} {
		items = append(items, protocol.CompletionItem{
			Label:      h,
			Kind:       protocol.CompletionItemKindTypeParameter,
			InsertText: h + ": ",
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: "Type hint `name:" + h + ": value`",
			},
		})
	}
	return items
}

// propertyItems offers every property name the schema declares, at any
// depth.
func propertyItems(s *schema.Schema) []protocol.CompletionItem {
	names := map[string]*schema.Schema{}
	walkSchema(s, func(ps *schema.Schema) {
		for name, p := range ps.Properties {
			if _, ok := names[name]; !ok {
				names[name] = p
			}
		}
	})
	items := []protocol.CompletionItem{}
	for _, name := range sortedKeys(names) {
		p := names[name]
		item := protocol.CompletionItem{
			Label:      name,
			Kind:       protocol.CompletionItemKindProperty,
			Detail:     p.Type,
			InsertText: name + ": ",
			Deprecated: p.Deprecated,
		}
		if p.Title != "" {
			item.Documentation = p.Title
		}
		items = append(items, item)
	}
	return items
}

func enumItems(s *schema.Schema) []protocol.CompletionItem {
	seen := map[string]bool{}
	walkSchema(s, func(ps *schema.Schema) {
		if ps.Type != schema.TypeEnum {
			return
		}
		for _, v := range ps.Enum {
			seen[v] = true
		}
	})
	items := []protocol.CompletionItem{}
	for _, v := range sortedKeys(seen) {
		items = append(items, protocol.CompletionItem{
			Label:      v,
			Kind:       protocol.CompletionItemKindEnumMember,
			InsertText: v,
		})
	}
	return items
}

func walkSchema(s *schema.Schema, f func(*schema.Schema)) {
	if s == nil {
		return
	}
	f(s)
	for _, p := range s.Properties {
		walkSchema(p, f)
	}
	walkSchema(s.Items, f)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
