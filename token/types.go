package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TString TokenType = iota
	TNumber
	TBoolean
	TNull
	TUndefined
	TIdentifier
	TClassName
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TColon
	TComma
	TEnum
	TEnumSet
	TStringHint
	TNumberHint
	TBooleanHint
	TDateHint
	TGUID
	TComment
	TEOF
)

var tokenTypeNames = map[TokenType]string{
	TString:      "String",
	TNumber:      "Number",
	TBoolean:     "Boolean",
	TNull:        "Null",
	TUndefined:   "Undefined",
	TIdentifier:  "Identifier",
	TClassName:   "ClassName",
	TLCurl:       "LeftBrace",
	TRCurl:       "RightBrace",
	TLSquare:     "LeftBracket",
	TRSquare:     "RightBracket",
	TLParen:      "LeftParen",
	TRParen:      "RightParen",
	TColon:       "Colon",
	TComma:       "Comma",
	TEnum:        "Enum",
	TEnumSet:     "EnumSet",
	TStringHint:  "StringHint",
	TNumberHint:  "NumberHint",
	TBooleanHint: "BooleanHint",
	TDateHint:    "DateHint",
	TGUID:        "Guid",
	TComment:     "Comment",
	TEOF:         "EndOfFile",
}

func (t TokenType) String() string {
	s, ok := tokenTypeNames[t]
	if ok {
		return s
	}
	return "<unknown token " + strconv.Itoa(int(t)) + ">"
}

// IsHint reports whether t is one of the type hint sigils $ % & ^.
func (t TokenType) IsHint() bool {
	switch t {
	case TStringHint, TNumberHint, TBooleanHint, TDateHint:
		return true
	}
	return false
}

// Token is an immutable lexical unit. Which payload field is meaningful
// depends on Type:
//
//   - TString, TIdentifier, TClassName, TEnum, TGUID, TComment: Text
//   - TEnumSet: Enums
//   - TNumber: Number, and Int when IsInt is set
//   - TBoolean: Bool
//
// TNull and TUndefined carry no payload and are told apart by Type alone.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte

	Text   string
	Enums  []string
	Number float64
	Int    int64
	IsInt  bool
	Bool   bool
}

// Value returns the payload of t as a plain Go value.
func (t *Token) Value() any {
	switch t.Type {
	case TString, TIdentifier, TClassName, TEnum, TGUID, TComment:
		return t.Text
	case TEnumSet:
		return t.Enums
	case TNumber:
		if t.IsInt {
			return t.Int
		}
		return t.Number
	case TBoolean:
		return t.Bool
	case TNull, TUndefined, TEOF:
		return nil
	default:
		return string(t.Bytes)
	}
}

// Integral returns the integer value of a number token when its literal has
// no fraction or exponent and fits in an int64.
func (t *Token) Integral() (int64, bool) {
	if t.Type != TNumber {
		return 0, false
	}
	if t.IsInt {
		return t.Int, true
	}
	if strings.ContainsAny(string(t.Bytes), ".eE") {
		return 0, false
	}
	i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TEnumSet:
		return "|" + strings.Join(t.Enums, "|") + "|"
	case TEOF:
		return ""
	default:
		return string(t.Bytes)
	}
}
