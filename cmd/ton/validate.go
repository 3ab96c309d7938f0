package main

import (
	"fmt"

	"github.com/signadot/ton-format/ton"
	"github.com/signadot/ton-format/ton/parse"
	"github.com/signadot/ton-format/ton/schema"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var s *schema.Schema
	if cfg.Schema != "" {
		s, err = schema.LoadCached(cfg.Schema)
		if err != nil {
			return fmt.Errorf("failed to load schema %s: %w", cfg.Schema, err)
		}
	}
	failed := 0
	for _, file := range inputs(args) {
		ok, err := validateFile(cfg, cc, s, file)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func validateFile(cfg *ValidateConfig, cc *cli.Context, s *schema.Schema, file string) (bool, error) {
	d, err := readArg(cc, file)
	if err != nil {
		return false, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
		return false, nil
	}
	if s == nil {
		s, err = ton.HeaderSchema(file, d)
		if err != nil {
			return false, err
		}
		if s == nil {
			return false, fmt.Errorf("%w: %s has no #SCHEMA header and no -s was given", cli.ErrUsage, file)
		}
	}
	res := schema.Validate(doc, s)
	for _, w := range res.Warnings {
		fmt.Fprintf(cc.Out, "%s: warning: %s\n", file, w)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(cc.Out, "%s: %s\n", file, e)
	}
	if res.Valid && !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	return res.Valid, nil
}
