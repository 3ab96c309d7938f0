package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/ton-format/ton/debug"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/token"
)

// Parse parses a complete TON text. Either the whole input is a single
// value, optionally surrounded by comments and header lines, or an error
// of type *ParseErr is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, newErr(te.Pos, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Lex() {
		token.PrintTokens(toks, "parse")
	}
	p := &parser{toks: toks, opts: pOpts}
	root, err := p.value()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != token.TEOF {
		return nil, newErr(tok.Pos, ErrTrailing)
	}
	if debug.Parse() {
		debug.Logf("parsed %s document\n", root.Type)
	}
	return ir.NewDocument(root), nil
}

// ParseString parses s, see Parse.
func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks  []token.Token
	i     int
	depth int
	opts  *parseOpts
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	tok := &p.toks[p.i]
	if tok.Type != token.TEOF {
		p.i++
	}
	return tok
}

func (p *parser) track(node *ir.Node, tok *token.Token) {
	if p.opts.positions != nil {
		pos := tok.Pos
		p.opts.positions[node] = &pos
	}
}

func (p *parser) value() (*ir.Node, error) {
	tok := p.peek()
	var node *ir.Node
	switch tok.Type {
	case token.TLCurl:
		return p.object()
	case token.TLSquare:
		return p.array()
	case token.TClassName:
		return p.typedObject()
	case token.TStringHint, token.TNumberHint, token.TBooleanHint, token.TDateHint:
		return p.hinted()
	case token.TString:
		node = ir.FromString(tok.Text)
	case token.TNumber:
		if i, ok := tok.Integral(); ok {
			node = ir.FromInt(i)
		} else {
			node = ir.FromFloat(tok.Number)
		}
	case token.TBoolean:
		node = ir.FromBool(tok.Bool)
	case token.TNull:
		node = ir.Null()
	case token.TUndefined:
		node = ir.Undefined()
	case token.TGUID:
		node = ir.FromGUID(tok.Text)
	case token.TEnum:
		node = ir.FromEnum(tok.Text)
	case token.TEnumSet:
		node = ir.FromEnumSet(tok.Enums...)
	case token.TEOF:
		return nil, newErr(tok.Pos, ErrUnexpectedEOF)
	default:
		return nil, newErr(tok.Pos, fmt.Errorf("%w: %s", ErrUnexpectedToken, tok.Type))
	}
	p.next()
	p.track(node, tok)
	return node, nil
}

func (p *parser) hinted() (*ir.Node, error) {
	tok := p.next()
	var h ir.TypeHint
	switch tok.Type {
	case token.TStringHint:
		h = ir.HintString
	case token.TNumberHint:
		h = ir.HintNumber
	case token.TBooleanHint:
		h = ir.HintBoolean
	case token.TDateHint:
		h = ir.HintDate
	}
	node, err := p.value()
	if err != nil {
		return nil, err
	}
	applyHint(node, h)
	return node, nil
}

// applyHint tags primitive values with h. Dates written as strings become
// date values when they parse.
func applyHint(node *ir.Node, h ir.TypeHint) {
	if h == ir.HintNone || !node.IsPrimitive() {
		return
	}
	node.Hint = h
	if h == ir.HintDate && node.Type == ir.StringType {
		if t, ok := ir.ParseDate(node.String); ok {
			node.Type = ir.DateType
			node.Time = t
			node.String = ""
		}
	}
}

func (p *parser) enter(tok *token.Token) error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return newErr(tok.Pos, fmt.Errorf("%w: more than %d levels", ErrDepth, p.opts.maxDepth))
	}
	return nil
}

func (p *parser) object() (*ir.Node, error) {
	open := p.next()
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	obj := ir.NewObject()
	p.track(obj, open)
	for {
		tok := p.peek()
		switch tok.Type {
		case token.TRCurl:
			p.next()
			return obj, nil
		case token.TComma:
			p.next()
			continue
		case token.TEOF:
			return nil, newErr(tok.Pos, fmt.Errorf("%w: expected '}'", ErrUnexpectedEOF))
		case token.TIdentifier, token.TString:
		default:
			return nil, newErr(tok.Pos, ErrExpectedName)
		}
		nameTok := p.next()
		name := nameTok.Text
		hint := ir.HintNone
		if p.peek().Type == token.TColon {
			p.next()
			if p.peek().Type == token.TIdentifier {
				hint = ir.ParseTypeHint(p.next().Text)
				if p.peek().Type == token.TColon {
					p.next()
				}
			}
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		applyHint(v, hint)
		obj.Set(name, v)
		if p.opts.positions != nil {
			if i := fieldIndex(obj, name); i != -1 {
				p.track(obj.Fields[i], nameTok)
			}
		}
	}
}

func fieldIndex(obj *ir.Node, name string) int {
	for i, f := range obj.Fields {
		if f.String == name {
			return i
		}
	}
	return -1
}

func (p *parser) array() (*ir.Node, error) {
	open := p.next()
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	arr := ir.NewArray()
	p.track(arr, open)
	for {
		tok := p.peek()
		switch tok.Type {
		case token.TRSquare:
			p.next()
			return arr, nil
		case token.TComma:
			p.next()
			continue
		case token.TEOF:
			return nil, newErr(tok.Pos, fmt.Errorf("%w: expected ']'", ErrUnexpectedEOF))
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
}

// typedObject parses ClassName ('(' count ')')? object.
func (p *parser) typedObject() (*ir.Node, error) {
	nameTok := p.next()
	var count *int64
	if p.peek().Type == token.TLParen {
		p.next()
		tok := p.next()
		if tok.Type != token.TNumber {
			return nil, newErr(tok.Pos, fmt.Errorf("%w instance count, got %s", ErrExpected, tok.Type))
		}
		c, ok := tok.Integral()
		if !ok || c < 0 {
			return nil, newErr(tok.Pos, fmt.Errorf("%w %s", ErrInstanceCount, tok.Bytes))
		}
		count = &c
		if tok := p.next(); tok.Type != token.TRParen {
			return nil, newErr(tok.Pos, fmt.Errorf("%w ')', got %s", ErrExpected, tok.Type))
		}
	}
	if tok := p.peek(); tok.Type != token.TLCurl {
		if tok.Type == token.TEOF {
			return nil, newErr(tok.Pos, fmt.Errorf("%w: expected '{'", ErrUnexpectedEOF))
		}
		return nil, newErr(tok.Pos, fmt.Errorf("%w '{', got %s", ErrExpected, tok.Type))
	}
	obj, err := p.object()
	if err != nil {
		return nil, err
	}
	obj.WithClass(nameTok.Text, count)
	p.track(obj, nameTok)
	return obj, nil
}
