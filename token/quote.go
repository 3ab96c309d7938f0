package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a TON string literal delimited by q, which is either
// '"' or '\''. Backslash, the delimiter and the control characters
// newline, tab and carriage return are escaped.
func Quote(v string, q byte) string {
	if q != '\'' {
		q = '"'
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = q
	for _, r := range v {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = utf8.AppendRune(d, r)
		}
	}
	d = append(d, q)
	return string(d)
}

// IsKeyword reports whether v is one of the reserved words.
func IsKeyword(v string) bool {
	switch v {
	case "true", "false", "null", "undefined":
		return true
	}
	return false
}

// IsIdentifier reports whether v would be read back as a plain identifier
// token, so that it can be written as an unquoted property name.
func IsIdentifier(v string) bool {
	if v == "" || IsKeyword(v) {
		return false
	}
	for i, r := range v {
		if i == 0 {
			if !isIdentStart(r) || unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// IsGUID reports whether v has the 8-4-4-4-12 hex digit shape.
func IsGUID(v string) bool {
	if len(v) != 36 {
		return false
	}
	for i := 0; i < len(v); i++ {
		switch i {
		case 8, 13, 18, 23:
			if v[i] != '-' {
				return false
			}
		default:
			if !isHexDigit(v[i]) {
				return false
			}
		}
	}
	return true
}

// EnumText renders enum values in pipe syntax, |a| or |a|b|c|.
func EnumText(values ...string) string {
	return "|" + strings.Join(values, "|") + "|"
}
