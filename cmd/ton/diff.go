package main

import (
	"fmt"

	"github.com/signadot/ton-format/ton/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(a, b)
	if changes == nil {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if cfg.Patch {
		d, err := libdiff.JSONPatch(changes)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	colored := cfg.colorOn(cc.Out)
	for i := range changes {
		c := &changes[i]
		line := c.String()
		if colored {
			line = opColor(c.Op)(line)
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func opColor(op libdiff.Op) func(...any) string {
	switch op {
	case libdiff.Insert:
		return color.New(color.FgGreen).SprintFunc()
	case libdiff.Delete:
		return color.New(color.FgRed).SprintFunc()
	}
	return color.New(color.FgYellow).SprintFunc()
}
