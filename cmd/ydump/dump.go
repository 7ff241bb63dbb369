package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/yamldump/go-yamldump/encode"
	"github.com/yamldump/go-yamldump/ir"
)

func ydMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Watch {
		return watchFiles(cfg, cc, args)
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	return dumpFiles(cfg, cc.Out, args)
}

func dumpFiles(cfg *MainConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := dumpFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *MainConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := ir.FromJSON(in)
	if err != nil {
		return err
	}
	out, err := encode.String(node, cfg.encOpts()...)
	if err != nil {
		return err
	}
	if useColor(cfg, w) {
		out = highlight(out)
	}
	_, err = io.WriteString(w, out)
	return err
}

func useColor(cfg *MainConfig, w io.Writer) bool {
	if !cfg.Color {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
