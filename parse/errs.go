package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/ton-format/ton/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedName    = errors.New("expected property name")
	ErrExpected        = errors.New("expected")
	ErrTrailing        = errors.New("unexpected content after parsing")
	ErrInstanceCount   = errors.New("invalid instance count")
	ErrDepth           = errors.New("nesting too deep")
)

// ParseErr is a syntax error with the position of the offending token.
// Lexical errors are reported as a ParseErr wrapping the *token.TokenizeErr.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	var te *token.TokenizeErr
	if errors.As(e.Err, &te) {
		return te.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ParseErr) Line() int { return e.Pos.Line }
func (e *ParseErr) Col() int  { return e.Pos.Col }

func newErr(p token.Pos, err error) *ParseErr {
	return &ParseErr{Err: err, Pos: p}
}
