package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

type sortEnv struct {
	A string `expr:"a"`
	B string `expr:"b"`
}

// sortExprOpt compiles a less-than expression over key pair (a, b) into a
// comparator, e.g. 'len(a) < len(b)' or 'a > b' for descending order.
func sortExprOpt(cfg *MainConfig) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, src string) (any, error) {
		prg, err := expr.Compile(src, expr.Env(sortEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: bad sort expression: %w", cli.ErrUsage, err)
		}
		cfg.SortCmp = exprCmp(prg)
		return src, nil
	})
}

func exprCmp(prg *vm.Program) func(a, b string) int {
	less := func(a, b string) bool {
		out, err := expr.Run(prg, sortEnv{A: a, B: b})
		if err != nil {
			return false
		}
		lt, _ := out.(bool)
		return lt
	}
	return func(a, b string) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
