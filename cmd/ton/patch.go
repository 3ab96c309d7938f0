package main

import (
	"fmt"

	"github.com/signadot/ton-format/ton"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and optionally a file to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: error reading patch %s: %w", cli.ErrUsage, args[0], err)
	}
	target, err := getObjFile(cc, inputs(args[1:])[0])
	if err != nil {
		return fmt.Errorf("error decoding target: %w", err)
	}
	res, err := ton.PatchNode(target, p)
	if err != nil {
		return fmt.Errorf("error patching: %w", err)
	}
	if err := cfg.output(cc.Out, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
