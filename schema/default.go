package schema

import (
	"math"
	"strconv"
	"strings"

	"github.com/yamldump/go-yamldump/ir"
)

// Default returns the built-in schema: implicit matchers for null, bool,
// integer and float nodes, in that probe order, each with a style-keyed
// represent table. Explicit matchers are empty; callers append their own.
func Default() *Schema {
	return &Schema{
		Implicit: []*Matcher{
			nullMatcher(),
			boolMatcher(),
			intMatcher(),
			floatMatcher(),
		},
	}
}

func constRepresent(v string) RepresentFunc {
	return func(*ir.Node) (string, error) { return v, nil }
}

func nullMatcher() *Matcher {
	return &Matcher{
		Tag:       "!!null",
		Predicate: func(y *ir.Node) bool { return y.Type == ir.NullType },
		Styles: map[string]RepresentFunc{
			"canonical": constRepresent("~"),
			"lowercase": constRepresent("null"),
			"uppercase": constRepresent("NULL"),
			"camelcase": constRepresent("Null"),
			"empty":     constRepresent(""),
		},
		DefaultStyle: "lowercase",
	}
}

func boolMatcher() *Matcher {
	boolAs := func(t, f string) RepresentFunc {
		return func(y *ir.Node) (string, error) {
			if y.Bool {
				return t, nil
			}
			return f, nil
		}
	}
	return &Matcher{
		Tag:       "!!bool",
		Predicate: func(y *ir.Node) bool { return y.Type == ir.BoolType },
		Styles: map[string]RepresentFunc{
			"lowercase": boolAs("true", "false"),
			"uppercase": boolAs("TRUE", "FALSE"),
			"camelcase": boolAs("True", "False"),
		},
		DefaultStyle: "lowercase",
	}
}

func intMatcher() *Matcher {
	intBase := func(base int, prefix string) RepresentFunc {
		return func(y *ir.Node) (string, error) {
			v := *y.Int64
			if v < 0 {
				return "-" + prefix + strconv.FormatInt(-v, base), nil
			}
			return prefix + strconv.FormatInt(v, base), nil
		}
	}
	return &Matcher{
		Tag: "!!int",
		Predicate: func(y *ir.Node) bool {
			return y.Type == ir.NumberType && y.Int64 != nil
		},
		Styles: map[string]RepresentFunc{
			"binary":      intBase(2, "0b"),
			"octal":       intBase(8, "0o"),
			"decimal":     intBase(10, ""),
			"hexadecimal": intBase(16, "0x"),
		},
		DefaultStyle: "decimal",
	}
}

func floatMatcher() *Matcher {
	floatAs := func(inf, nan string) RepresentFunc {
		return func(y *ir.Node) (string, error) {
			f := *y.Float64
			switch {
			case math.IsNaN(f):
				return nan, nil
			case math.IsInf(f, 1):
				return inf, nil
			case math.IsInf(f, -1):
				return "-" + inf, nil
			case f == 0 && math.Signbit(f):
				return "-0.0", nil
			}
			res := strconv.FormatFloat(f, 'g', -1, 64)
			// integral floats keep a fraction so they re-parse as floats
			if !strings.ContainsAny(res, ".e") {
				res += ".0"
			}
			return res, nil
		}
	}
	return &Matcher{
		Tag: "!!float",
		Predicate: func(y *ir.Node) bool {
			return y.Type == ir.NumberType && y.Float64 != nil
		},
		Styles: map[string]RepresentFunc{
			"lowercase": floatAs(".inf", ".nan"),
			"uppercase": floatAs(".INF", ".NAN"),
			"camelcase": floatAs(".Inf", ".NaN"),
		},
		DefaultStyle: "lowercase",
	}
}
