package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex      bool
	Parse    bool
	Encode   bool
	Validate bool
	LSP      bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("TON_DEBUG_LEX")
	d.Parse = boolEnv("TON_DEBUG_PARSE")
	d.Encode = boolEnv("TON_DEBUG_ENCODE")
	d.Validate = boolEnv("TON_DEBUG_VALIDATE")
	d.LSP = boolEnv("TON_DEBUG_LSP")
	d.Patch = boolEnv("TON_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Validate() bool {
	return d.Validate
}
func LSP() bool {
	return d.LSP
}
func Patch() bool {
	return d.Patch
}
