package main

import (
	"fmt"
	"io"

	"github.com/signadot/ton-format/ton/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return queryArgs(cfg.MainConfig, cc, args, false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return queryArgs(cfg.MainConfig, cc, args, true)
}

func queryArgs(cfg *MainConfig, cc *cli.Context, args []string, list bool) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	for i, arg := range inputs(args[1:]) {
		if err := queryArg(cfg, cc, arg, path, list, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, query string, list, sep bool) error {
	target, err := getObjFile(cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if sep {
		if err := writeSep(cc.Out); err != nil {
			return err
		}
	}
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		return cfg.output(cc.Out, ir.FromSlice(res))
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if res == nil {
		return nil
	}
	return cfg.output(cc.Out, res)
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
