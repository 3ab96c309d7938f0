package main

import (
	"context"
	"unicode/utf8"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"

	"go.lsp.dev/protocol"
)

// the legend; token data refers to these by index.
var (
	semanticTokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenType,
		protocol.SemanticTokenEnumMember,
	}
	semanticTokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierDeclaration,
	}
)

// Map color attributes to LSP semantic token types
func mapColorToSemanticTokenType(nodeType ir.Type, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment
	case encode.TagColor:
		if nodeType == ir.ObjectType {
			return protocol.SemanticTokenType
		}
		return protocol.SemanticTokenKeyword
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	case encode.ValueColor:
		switch nodeType {
		case ir.NumberType:
			return protocol.SemanticTokenNumber
		case ir.BoolType, ir.NullType, ir.UndefinedType:
			return protocol.SemanticTokenKeyword
		case ir.EnumType, ir.EnumSetType:
			return protocol.SemanticTokenEnumMember
		}
	}
	return protocol.SemanticTokenString
}

func mapColorToSemanticTokenModifiers(nodeType ir.Type, attr encode.ColorAttr) []protocol.SemanticTokenModifiers {
	switch {
	case attr == encode.TagColor && nodeType == ir.ObjectType:
		return []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
	case attr == encode.FieldColor:
		return []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDeclaration}
	}
	return nil
}

// classify gives the color of toks[i], the same one the encoder would
// paint it with.
func classify(toks []token.Token, i int) (ir.Type, encode.ColorAttr) {
	tok := &toks[i]
	switch tok.Type {
	case token.TComment:
		return ir.NullType, encode.CommentColor
	case token.TClassName:
		return ir.ObjectType, encode.TagColor
	case token.TStringHint, token.TNumberHint, token.TBooleanHint, token.TDateHint:
		return ir.StringType, encode.TagColor
	case token.TLCurl, token.TRCurl, token.TLParen, token.TRParen:
		return ir.ObjectType, encode.SepColor
	case token.TLSquare, token.TRSquare:
		return ir.ArrayType, encode.SepColor
	case token.TColon, token.TComma:
		return ir.NullType, encode.SepColor
	case token.TIdentifier, token.TString:
		// name:number: 1 has a hint between two colons.
		if followedByColon(toks, i) {
			if tok.Type == token.TIdentifier && i > 0 && toks[i-1].Type == token.TColon {
				return ir.StringType, encode.TagColor
			}
			return ir.StringType, encode.FieldColor
		}
		return ir.StringType, encode.ValueColor
	case token.TNumber:
		return ir.NumberType, encode.ValueColor
	case token.TBoolean:
		return ir.BoolType, encode.ValueColor
	case token.TNull:
		return ir.NullType, encode.ValueColor
	case token.TUndefined:
		return ir.UndefinedType, encode.ValueColor
	case token.TGUID:
		return ir.GUIDType, encode.ValueColor
	case token.TEnum:
		return ir.EnumType, encode.ValueColor
	case token.TEnumSet:
		return ir.EnumSetType, encode.ValueColor
	}
	return ir.StringType, encode.ValueColor
}

func followedByColon(toks []token.Token, i int) bool {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].Type == token.TComment {
			continue
		}
		return toks[j].Type == token.TColon
	}
	return false
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// collectTokenInfo lists the tokens of content on lines [from, to), 0-based.
// A token spanning lines is marked on its first line only.
func collectTokenInfo(content string, from, to uint32) []tokenInfo {
	toks, err := token.Tokenize([]byte(content), token.TokenComments(true))
	if err != nil {
		return nil
	}
	var res []tokenInfo
	for i := range toks {
		tok := &toks[i]
		if tok.Type == token.TEOF || !tok.Pos.IsValid() {
			continue
		}
		line := uint32(tok.Pos.Line - 1)
		if line < from || line >= to {
			continue
		}
		text := tok.Bytes
		for j, b := range text {
			if b == '\n' || b == '\r' {
				text = text[:j]
				break
			}
		}
		n := utf8.RuneCount(text)
		if n == 0 {
			continue
		}
		t, attr := classify(toks, i)
		res = append(res, tokenInfo{
			line:      line,
			character: uint32(tok.Pos.Col - 1),
			length:    uint32(n),
			tokenType: mapColorToSemanticTokenType(t, attr),
			modifiers: mapColorToSemanticTokenModifiers(t, attr),
		})
	}
	return res
}

// encodeTokens produces the relative encoding of tokenList, which must be
// in document order.
func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range semanticTokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range semanticTokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		var bits uint32
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(collectTokenInfo(doc.content, 0, ^uint32(0))),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: encodeTokens(collectTokenInfo(doc.content, r.Start.Line, r.End.Line+1)),
	}, nil
}
