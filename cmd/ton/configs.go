package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/format"
	"github.com/signadot/ton-format/ton/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Sort  bool `cli:"name=sort desc='sort object properties'"`
	Hints bool `cli:"name=hints desc='write type hints'"`

	T bool `cli:"name=t aliases=ton desc='output ton'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format
	Style     format.Style
	Quote     format.Quote

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) styleOpt(_ *cli.Context, v string) (any, error) {
	s, err := format.ParseStyle(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = s
	return s, nil
}

func (cfg *MainConfig) quoteOpt(_ *cli.Context, v string) (any, error) {
	q, err := format.ParseQuote(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Quote = q
	return q, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.TONFormat
}

// plainOpts are the encoding options without color, for output which is
// compared or written back to files.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeStyle(cfg.Style),
		encode.EncodeQuote(cfg.Quote),
		encode.SortProperties(cfg.Sort),
		encode.EncodeHints(cfg.Hints),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainOpts()
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOn reports whether output to w is colored: always with -color, and
// otherwise when -color was not given explicitly and w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// output writes node to w in the selected output format.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		return encode.EncodeYAML(node, w)
	}
	return encode.EncodeNode(node, w, cfg.encOpts(w)...)
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='show a diff of the formatting changes'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='schema file (yaml, json or ton); default from the #SCHEMA header'"`
	Quiet  bool   `cli:"name=q desc='only report failures'"`

	Validate *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=p desc='output an RFC 6902 json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`

	Tokens *cli.Command
}
