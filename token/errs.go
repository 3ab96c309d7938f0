package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated        = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidEnum         = errors.New("invalid enum")
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrNumber              = errors.New("invalid number")
	ErrBadUTF8             = errors.New("bad utf8")
)

// TokenizeErr is a lexical error with the position at which it was
// detected.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Line() int { return e.Pos.Line }
func (e *TokenizeErr) Col() int  { return e.Pos.Col }

func UnexpectedErr(r rune, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpectedChar, r), p)
}
