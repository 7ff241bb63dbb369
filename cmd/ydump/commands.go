package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		Indent:    2,
		Width:     80,
		FlowLevel: -1,
		Styles:    map[string]string{},
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "indent",
			Description: "indentation width (default 2)",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.Indent), "(n)"),
		},
		{
			Name:        "width",
			Aliases:     []string{"lineWidth"},
			Description: "line width budget, -1 for unlimited (default 80)",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.Width), "(n)"),
		},
		{
			Name:        "flow",
			Aliases:     []string{"flowLevel"},
			Description: "nesting level at which layout switches to flow, -1 for never",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.FlowLevel), "(n)"),
		},
		{
			Name:        "style",
			Description: "represent style override, e.g. '!!int=hexadecimal'",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(styleOptFunc(cfg.Styles)), "(tag=style)"),
		},
		{
			Name:        "sortExpr",
			Description: "sort keys by a boolean less-than expression over a, b",
			Type:        cli.NamedFuncOpt(sortExprOpt(cfg), "(expr)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "ydump").
		WithSynopsis("ydump [opts] [files]").
		WithDescription("ydump renders JSON documents as canonical YAML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ydMain(cfg, cc, args)
		})
}
