package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/ton-format/ton"
	"github.com/signadot/ton-format/ton/libdiff"

	"github.com/scott-cotton/cli"
)

func tonFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	f := ton.NewFormatter(cfg.plainOpts()...)
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc, f, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, f *ton.Formatter, file string) error {
	src, err := readArg(cc, file)
	if err != nil {
		return err
	}
	out, err := f.Format(src)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	changed := !bytes.Equal(src, out)
	if cfg.List && changed {
		fmt.Fprintln(cc.Out, file)
	}
	if cfg.Diff && changed {
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", file, file, libdiff.Lines(string(src), string(out)))
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		return os.WriteFile(file, out, 0644)
	}
	if cfg.List || cfg.Diff {
		return nil
	}
	_, err = cc.Out.Write(out)
	return err
}
