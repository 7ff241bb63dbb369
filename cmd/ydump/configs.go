package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/yamldump/go-yamldump/encode"
)

type MainConfig struct {
	NoArrayIndent bool `cli:"name=noArrayIndent desc='dedent block sequences under mapping keys'"`
	SkipInvalid   bool `cli:"name=skipInvalid desc='drop unsupported values instead of failing'"`
	Sort          bool `cli:"name=sort desc='sort mapping keys lexicographically'"`
	Condense      bool `cli:"name=condense desc='condense flow pairs and elements'"`
	NoRefs        bool `cli:"name=noRefs desc='repeat shared nodes instead of anchor/alias'"`
	NoCompat      bool `cli:"name=noCompat desc='allow plain yes/no/on/off scalars'"`
	Color         bool `cli:"name=color aliases=c desc='colorize output on terminals'"`
	Watch         bool `cli:"name=watch aliases=w desc='watch input files and re-dump on change'"`

	Indent    int
	Width     int
	FlowLevel int
	Styles    map[string]string
	SortCmp   func(a, b string) int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) intOpt(p *int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*p = n
		return n, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func styleOptFunc(styles map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		tag, style, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -style wants tag=style, got %q", cli.ErrUsage, a)
		}
		styles[tag] = style
		return a, nil
	}
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.LineWidth(cfg.Width),
		encode.FlowLevel(cfg.FlowLevel),
		encode.ArrayIndent(!cfg.NoArrayIndent),
		encode.SkipInvalid(cfg.SkipInvalid),
		encode.CondenseFlow(cfg.Condense),
		encode.Anchors(!cfg.NoRefs),
		encode.CompatMode(!cfg.NoCompat),
	}
	if len(cfg.Styles) != 0 {
		res = append(res, encode.Styles(cfg.Styles))
	}
	switch {
	case cfg.SortCmp != nil:
		res = append(res, encode.SortKeys(cfg.SortCmp))
	case cfg.Sort:
		res = append(res, encode.SortKeys(true))
	}
	return res
}
