package schema

import "regexp"

// Implicit resolution patterns for the core scalar types. A plain scalar
// matching any of these would re-parse as a non-string, so the encoder must
// quote such text.

var (
	nullRx = regexp.MustCompile(`^(?:~|[Nn]ull|NULL|)$`)

	boolRx = regexp.MustCompile(`^(?:[Tt]rue|TRUE|[Ff]alse|FALSE)$`)

	intRx = regexp.MustCompile(`^(?:[-+]?0b[0-1_]+` +
		`|[-+]?0o?[0-7_]+` +
		`|[-+]?(?:0|[1-9][0-9_]*)` +
		`|[-+]?0x[0-9a-fA-F_]+)$`)

	floatRx = regexp.MustCompile(`^(?:[-+]?(?:[0-9][0-9_]*)(?:\.[0-9_]*)?(?:[eE][-+]?[0-9]+)?` +
		`|\.[0-9_]+(?:[eE][-+]?[0-9]+)?` +
		`|[-+]?\.(?:inf|Inf|INF)` +
		`|\.(?:nan|NaN|NAN))$`)
)

// Ambiguous reports whether text left unquoted would resolve to one of the
// core non-string types.
func Ambiguous(text string) bool {
	return nullRx.MatchString(text) ||
		boolRx.MatchString(text) ||
		intRx.MatchString(text) ||
		floatRx.MatchString(text)
}
