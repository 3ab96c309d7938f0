package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"

	"github.com/scott-cotton/cli"
)

// readArg reads the file at path, or standard input for "-".
func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// getish parses arg as TON text when isString is set, otherwise as the
// file it names.
func getish(isString bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if isString {
		doc, err := parse.ParseString(arg)
		if err != nil {
			return nil, err
		}
		return doc.Root, nil
	}
	return getObjFile(cc, arg)
}

// inputs returns args, or "-" for standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
