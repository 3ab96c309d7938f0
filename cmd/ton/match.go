package main

import (
	"fmt"

	"github.com/signadot/ton-format/ton"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a match document", cli.ErrUsage)
	}
	m, err := getish(cfg.String, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: error reading match %s: %w", cli.ErrUsage, args[0], err)
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !ton.Match(doc, m) {
			continue
		}
		if cfg.Trim {
			doc = ton.Trim(m, doc)
		}
		if n > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := cfg.output(cc.Out, doc); err != nil {
			return err
		}
		n++
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
