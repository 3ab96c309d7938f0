package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// quoted scans a string starting at the quote character q.
func (tz *Tokenizer) quoted(q byte) (Token, error) {
	if q == '"' && tz.peek(1) == '"' && tz.peek(2) == '"' {
		return tz.tripleQuoted()
	}
	start := tz.cur
	tz.advance()
	b := &strings.Builder{}
	for {
		if tz.atEnd() {
			return Token{}, NewTokenizeErr(ErrUnterminated, tz.posOf(start))
		}
		c := tz.d[tz.cur.i]
		switch {
		case c == q:
			tz.advance()
			tok := tz.token(TString, start)
			tok.Text = b.String()
			return tok, nil
		case c == '\n' && q != '`':
			return Token{}, NewTokenizeErr(ErrUnterminated, tz.posOf(start))
		case c == '\\':
			tz.advance()
			if tz.atEnd() {
				return Token{}, NewTokenizeErr(ErrUnterminated, tz.posOf(start))
			}
			r := tz.advance()
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				b.WriteRune(tz.unicodeEscape())
			default:
				// \\ \" \' \` and anything unknown stand for themselves
				b.WriteRune(r)
			}
		default:
			b.WriteRune(tz.advance())
		}
	}
}

// unicodeEscape reads the hex digits of a \uXXXX escape, joining
// surrogate pairs. Without four hex digits it stands for 'u'.
func (tz *Tokenizer) unicodeEscape() rune {
	r, ok := tz.hex4(0)
	if !ok {
		return 'u'
	}
	for range 4 {
		tz.advance()
	}
	if utf16.IsSurrogate(r) && tz.peek(0) == '\\' && tz.peek(1) == 'u' {
		if r2, ok := tz.hex4(2); ok {
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				for range 6 {
					tz.advance()
				}
				return dec
			}
		}
	}
	return r
}

func (tz *Tokenizer) hex4(k int) (rune, bool) {
	var r rune
	for i := range 4 {
		c := tz.peek(k + i)
		if !isHexDigit(c) {
			return 0, false
		}
		v, _ := strconv.ParseUint(string(c), 16, 8)
		r = r<<4 | rune(v)
	}
	return r, true
}

func (tz *Tokenizer) tripleQuoted() (Token, error) {
	start := tz.cur
	tz.advance()
	tz.advance()
	tz.advance()
	body := tz.cur.i
	for !tz.atEnd() {
		if tz.d[tz.cur.i] == '"' && tz.peek(1) == '"' && tz.peek(2) == '"' {
			content := string(tz.d[body:tz.cur.i])
			tz.advance()
			tz.advance()
			tz.advance()
			tok := tz.token(TString, start)
			tok.Text = Dedent(content)
			return tok, nil
		}
		tz.advance()
	}
	return Token{}, NewTokenizeErr(ErrUnterminated, tz.posOf(start))
}

// Dedent removes leading and trailing blank lines from s, then strips the
// smallest indentation shared by the remaining non-blank lines.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// guid attempts to read an 8-4-4-4-12 hex GUID at the cursor. On failure the
// cursor is left where it was.
func (tz *Tokenizer) guid() (Token, bool) {
	save := tz.cur
	for g, n := range guidGroups {
		if g > 0 {
			if tz.atEnd() || tz.d[tz.cur.i] != '-' {
				tz.cur = save
				return Token{}, false
			}
			tz.advance()
		}
		for j := 0; j < n; j++ {
			if tz.atEnd() || !isHexDigit(tz.d[tz.cur.i]) {
				tz.cur = save
				return Token{}, false
			}
			tz.advance()
		}
	}
	tok := tz.token(TGUID, save)
	tok.Text = string(tok.Bytes)
	return tok, true
}

var guidGroups = [...]int{8, 4, 4, 4, 12}

func (tz *Tokenizer) number() (Token, error) {
	start := tz.cur
	neg := false
	if tz.d[tz.cur.i] == '-' {
		neg = true
		tz.advance()
	}
	if tz.d[tz.cur.i] == '0' {
		switch tz.peek(1) {
		case 'x', 'X':
			return tz.radixNumber(start, neg, 16)
		case 'b', 'B':
			return tz.radixNumber(start, neg, 2)
		}
	}
	tz.digits()
	if tz.peek(0) == '.' && isDigit(tz.peek(1)) {
		tz.advance()
		tz.digits()
	}
	if c := tz.peek(0); c == 'e' || c == 'E' {
		j := 1
		if s := tz.peek(1); s == '+' || s == '-' {
			j = 2
		}
		if isDigit(tz.peek(j)) {
			for ; j > 0; j-- {
				tz.advance()
			}
			tz.digits()
		}
	}
	tok := tz.token(TNumber, start)
	text := string(tok.Bytes)
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			tok.Int = i
			tok.IsInt = true
			tok.Number = float64(i)
			return tok, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !(math.IsInf(f, 0)) {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w %q", ErrNumber, text), tz.posOf(start))
	}
	tok.Number = f
	return tok, nil
}

func (tz *Tokenizer) radixNumber(start cursor, neg bool, base int) (Token, error) {
	tz.advance()
	tz.advance()
	digitsStart := tz.cur.i
	for !tz.atEnd() {
		c := tz.d[tz.cur.i]
		if base == 16 && !isHexDigit(c) {
			break
		}
		if base == 2 && c != '0' && c != '1' {
			break
		}
		tz.advance()
	}
	digits := string(tz.d[digitsStart:tz.cur.i])
	tok := tz.token(TNumber, start)
	if digits == "" {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w %q", ErrNumber, string(tok.Bytes)), tz.posOf(start))
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil || u > math.MaxInt64 {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w %q", ErrNumber, string(tok.Bytes)), tz.posOf(start))
	}
	i := int64(u)
	if neg {
		i = -i
	}
	tok.Int = i
	tok.IsInt = true
	tok.Number = float64(i)
	return tok, nil
}

func (tz *Tokenizer) digits() {
	for !tz.atEnd() && isDigit(tz.d[tz.cur.i]) {
		tz.advance()
	}
}
