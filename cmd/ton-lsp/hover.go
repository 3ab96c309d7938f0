package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	// positions are 1-based, LSP positions 0-based
	line := int(params.Position.Line) + 1
	col := int(params.Position.Character) + 1

	target := findNodeAtPosition(doc.node, doc.positions, line, col)
	if target == nil {
		return nil, nil
	}
	text := buildHoverText(target)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// findNodeAtPosition returns the node starting nearest before line, col
// on that line. Object keys resolve to the value they name.
func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]*token.Pos, line, col int) *ir.Node {
	var best *ir.Node
	bestCol := 0

	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		if node == nil {
			return
		}
		if pos := positions[node]; pos != nil && pos.Line == line && pos.Col <= col && pos.Col >= bestCol {
			best = node
			bestCol = pos.Col
		}
		for i, f := range node.Fields {
			if pos := positions[f]; pos != nil && pos.Line == line && pos.Col <= col && pos.Col >= bestCol {
				best = node.Values[i]
				bestCol = pos.Col
			}
			visit(node.Values[i])
		}
		if node.Type == ir.ArrayType {
			for _, v := range node.Values {
				visit(v)
			}
		}
	}
	visit(root)
	return best
}

func buildHoverText(node *ir.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", node.Type.Kind())
	if node.Type == ir.ObjectType && node.ClassName != "" {
		fmt.Fprintf(&b, " `%s`", node.ClassName)
	}
	if node.Hint != ir.HintNone {
		fmt.Fprintf(&b, " (hint: %s)", node.Hint)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Path: `%s`\n", node.Path())

	switch node.Type {
	case ir.ObjectType:
		fmt.Fprintf(&b, "\nProperties: %d\n", node.Len())
	case ir.ArrayType:
		fmt.Fprintf(&b, "\nElements: %d\n", len(node.Values))
	default:
		fmt.Fprintf(&b, "\nValue: `%s`\n", encode.MustString(node))
	}
	return b.String()
}
