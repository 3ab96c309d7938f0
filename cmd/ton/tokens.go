package main

import (
	"fmt"

	"github.com/signadot/ton-format/ton/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range inputs(args) {
		d, err := readArg(cc, file)
		if err != nil {
			return err
		}
		toks, err := token.Tokenize(d, token.TokenComments(cfg.Comments))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		token.FprintTokens(cc.Out, toks, file)
	}
	return nil
}
