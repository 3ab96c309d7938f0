package token

import (
	"unicode"
	"unicode/utf8"
)

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// TokenComments causes comment tokens to be emitted rather than dropped.
// The parser never sets this.
func TokenComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

type cursor struct {
	i, line, col int
}

// Tokenizer produces tokens one at a time from an in-memory document.
type Tokenizer struct {
	d   []byte
	cur cursor
	opt tokenOpts

	// lineStart is set while only whitespace has been seen on the current
	// line; a '#' there starts a header directive line.
	lineStart bool
}

func NewTokenizer(src []byte, opts ...TokenOpt) *Tokenizer {
	tz := &Tokenizer{
		d:         src,
		cur:       cursor{i: 0, line: 1, col: 1},
		lineStart: true,
	}
	for _, o := range opts {
		o(&tz.opt)
	}
	return tz
}

// Tokenize tokenizes src in full. The result always ends with exactly one
// TEOF token.
func Tokenize(src []byte, opts ...TokenOpt) ([]Token, error) {
	tz := NewTokenizer(src, opts...)
	var res []Token
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res, nil
		}
	}
}

// Next returns the next token. Once the end of input is reached, every call
// returns a TEOF token.
func (tz *Tokenizer) Next() (Token, error) {
	for {
		if err := tz.skipSpace(); err != nil {
			return Token{}, err
		}
		if tz.atEnd() {
			return Token{Type: TEOF, Pos: tz.pos()}, nil
		}
		start := tz.cur
		c := tz.d[start.i]
		var (
			isComment bool
			err       error
		)
		switch {
		case c == '/' && tz.peek(1) == '/':
			tz.skipLine()
			isComment = true
		case c == '/' && tz.peek(1) == '*':
			err = tz.skipBlockComment()
			tz.lineStart = false
			isComment = true
		case c == '#' && tz.lineStart:
			tz.skipLine()
			isComment = true
		}
		if err != nil {
			return Token{}, err
		}
		if isComment {
			if !tz.opt.comments {
				continue
			}
			tok := tz.token(TComment, start)
			tok.Text = string(tok.Bytes)
			return tok, nil
		}
		tok, err := tz.scan()
		if err != nil {
			return Token{}, err
		}
		tz.lineStart = false
		return tok, nil
	}
}

func (tz *Tokenizer) scan() (Token, error) {
	start := tz.cur
	c := tz.d[start.i]
	switch c {
	case '{':
		return tz.single(TLCurl), nil
	case '}':
		return tz.single(TRCurl), nil
	case '[':
		return tz.single(TLSquare), nil
	case ']':
		return tz.single(TRSquare), nil
	case '(':
		return tz.single(TLParen), nil
	case ')':
		return tz.single(TRParen), nil
	case ':':
		return tz.single(TColon), nil
	case ',':
		return tz.single(TComma), nil
	case '$':
		return tz.single(TStringHint), nil
	case '%':
		return tz.single(TNumberHint), nil
	case '&':
		return tz.single(TBooleanHint), nil
	case '^':
		return tz.single(TDateHint), nil
	case '|':
		return tz.enum()
	case '"', '\'', '`':
		return tz.quoted(c)
	}
	if isHexDigit(c) {
		if tok, ok := tz.guid(); ok {
			return tok, nil
		}
	}
	if isDigit(c) || (c == '-' && isDigit(tz.peek(1))) {
		return tz.number()
	}
	r, sz := utf8.DecodeRune(tz.d[start.i:])
	if r == utf8.RuneError && sz <= 1 {
		return Token{}, NewTokenizeErr(ErrBadUTF8, tz.pos())
	}
	if isIdentStart(r) {
		return tz.identifier(), nil
	}
	return Token{}, UnexpectedErr(r, tz.pos())
}

func (tz *Tokenizer) single(tt TokenType) Token {
	start := tz.cur
	tz.advance()
	return tz.token(tt, start)
}

func (tz *Tokenizer) identifier() Token {
	start := tz.cur
	for !tz.atEnd() {
		r, _ := utf8.DecodeRune(tz.d[tz.cur.i:])
		if !isIdentPart(r) {
			break
		}
		tz.advance()
	}
	tok := tz.token(TIdentifier, start)
	word := string(tok.Bytes)
	switch word {
	case "true", "false":
		tok.Type = TBoolean
		tok.Bool = word == "true"
		return tok
	case "null":
		tok.Type = TNull
		return tok
	case "undefined":
		tok.Type = TUndefined
		return tok
	}
	tok.Text = word
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		tok.Type = TClassName
	}
	return tok
}

// enum scans |a| or |a|b|c|. A '|' that is not followed by an identifier
// start closes the enum.
func (tz *Tokenizer) enum() (Token, error) {
	start := tz.cur
	tz.advance()
	var (
		values  []string
		current []byte
	)
	for !tz.atEnd() {
		r, _ := utf8.DecodeRune(tz.d[tz.cur.i:])
		if r == '|' {
			if len(current) > 0 {
				values = append(values, string(current))
				current = current[:0]
			}
			tz.advance()
			if tz.atEnd() {
				break
			}
			next, _ := utf8.DecodeRune(tz.d[tz.cur.i:])
			if !isIdentStart(next) {
				break
			}
			continue
		}
		if !isIdentPart(r) {
			break
		}
		current = append(current, tz.d[tz.cur.i:tz.cur.i+utf8.RuneLen(r)]...)
		tz.advance()
	}
	if len(values) == 0 && len(current) > 0 {
		values = append(values, string(current))
	}
	switch len(values) {
	case 0:
		return Token{}, NewTokenizeErr(ErrInvalidEnum, tz.posOf(start))
	case 1:
		tok := tz.token(TEnum, start)
		tok.Text = values[0]
		return tok, nil
	default:
		tok := tz.token(TEnumSet, start)
		tok.Enums = values
		return tok, nil
	}
}

func (tz *Tokenizer) skipSpace() error {
	for !tz.atEnd() {
		switch tz.d[tz.cur.i] {
		case ' ', '\t', '\r':
			tz.advance()
		case '\n':
			tz.advance()
			tz.lineStart = true
		default:
			if tz.cur.i == 0 && len(tz.d) >= 3 && tz.d[0] == 0xEF && tz.d[1] == 0xBB && tz.d[2] == 0xBF {
				// byte order mark
				tz.cur.i += 3
				continue
			}
			return nil
		}
	}
	return nil
}

func (tz *Tokenizer) skipLine() {
	for !tz.atEnd() && tz.d[tz.cur.i] != '\n' {
		tz.advance()
	}
}

func (tz *Tokenizer) skipBlockComment() error {
	start := tz.cur
	tz.advance()
	tz.advance()
	for !tz.atEnd() {
		if tz.d[tz.cur.i] == '*' && tz.peek(1) == '/' {
			tz.advance()
			tz.advance()
			return nil
		}
		tz.advance()
	}
	return NewTokenizeErr(ErrUnterminatedComment, tz.posOf(start))
}

func (tz *Tokenizer) atEnd() bool {
	return tz.cur.i >= len(tz.d)
}

func (tz *Tokenizer) peek(k int) byte {
	j := tz.cur.i + k
	if j < 0 || j >= len(tz.d) {
		return 0
	}
	return tz.d[j]
}

func (tz *Tokenizer) advance() rune {
	r, sz := utf8.DecodeRune(tz.d[tz.cur.i:])
	if sz == 0 {
		return 0
	}
	tz.cur.i += sz
	if r == '\n' {
		tz.cur.line++
		tz.cur.col = 1
	} else {
		tz.cur.col++
	}
	return r
}

func (tz *Tokenizer) pos() Pos {
	return tz.posOf(tz.cur)
}

func (tz *Tokenizer) posOf(c cursor) Pos {
	return Pos{Offset: c.i, Line: c.line, Col: c.col}
}

func (tz *Tokenizer) token(tt TokenType, start cursor) Token {
	return Token{
		Type:  tt,
		Pos:   tz.posOf(start),
		Bytes: tz.d[start.i:tz.cur.i],
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
