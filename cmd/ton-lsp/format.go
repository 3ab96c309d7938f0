package main

import (
	"context"
	"strings"

	"github.com/signadot/ton-format/ton"
	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/parse"
	"github.com/signadot/ton-format/ton/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	// the encoder drops comments, so documents with any are left alone.
	if hasComments(doc.content) {
		return nil, nil
	}

	formatted, err := ton.NewFormatter(formatOpts(doc.content, params.Options)...).FormatString(doc.content)
	if err != nil {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}

func formatOpts(content string, fo protocol.FormattingOptions) []encode.EncodeOption {
	opts := []encode.EncodeOption{encode.Pretty()}
	if fo.InsertSpaces && fo.TabSize > 0 {
		opts = append(opts, encode.EncodeIndent(strings.Repeat(" ", int(fo.TabSize))))
	} else if !fo.InsertSpaces {
		opts = append(opts, encode.EncodeIndent("\t"))
	}
	if h := parse.ReadHeader([]byte(content)); h.Version != "" || h.Schema != "" {
		opts = append(opts, encode.EncodeHeader(true), encode.EncodeSchemaFile(h.Schema))
		if h.Version != "" {
			opts = append(opts, encode.EncodeVersion(h.Version))
		}
	}
	return opts
}

// hasComments reports whether content has // or /* */ comments. Header
// directive lines are rewritten by the encoder and do not count.
func hasComments(content string) bool {
	toks, err := token.Tokenize([]byte(content), token.TokenComments(true))
	if err != nil {
		return true
	}
	for i := range toks {
		if toks[i].Type == token.TComment && !strings.HasPrefix(toks[i].Text, "#") {
			return true
		}
	}
	return false
}
