package encode

import (
	"fmt"
	"strings"

	"github.com/yamldump/go-yamldump/ir"
	"github.com/yamldump/go-yamldump/schema"
)

// EncState carries one call's configuration and render state. A fresh state
// is built per Encode/String call; nothing outlives the call, so concurrent
// dumps need no coordination beyond independent calls.
type EncState struct {
	indent       int
	arrayIndent  bool
	skipInvalid  bool
	flowLevel    int
	styles       map[string]string
	schema       *schema.Schema
	sortKeys     any
	lineWidth    int
	anchors      bool
	compatMode   bool
	condenseFlow bool

	// resolved from sortKeys by validate
	sortCmp func(a, b string) int

	// render state: the text of the last written node and its resolved
	// tag; implicitTag marks a resolution through the implicit matcher
	// list, whose output needs neither quoting nor a tag prefix.
	tag         string
	implicitTag bool
	dump        string

	// duplicate registry, populated by the pre-scan
	dupIndex map[*ir.Node]int
	usedDup  map[*ir.Node]bool
}

type EncodeOption func(*EncState)

// Indent sets the indentation width in spaces. Must be at least 1;
// default 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// ArrayIndent controls whether block sequences nested under mapping keys
// get their own indentation level. Default true.
func ArrayIndent(v bool) EncodeOption {
	return func(es *EncState) { es.arrayIndent = v }
}

// SkipInvalid drops nodes of unsupported kinds instead of failing the
// whole dump. Default false.
func SkipInvalid(v bool) EncodeOption {
	return func(es *EncState) { es.skipInvalid = v }
}

// FlowLevel sets the nesting level at and below which containers render in
// flow layout; -1 (the default) keeps block layout everywhere.
func FlowLevel(n int) EncodeOption {
	return func(es *EncState) { es.flowLevel = n }
}

// Styles overrides represent styles per tag, e.g. {"!!int": "hexadecimal"}.
func Styles(m map[string]string) EncodeOption {
	return func(es *EncState) { es.styles = m }
}

// WithSchema replaces the matcher provider. Default schema.Default().
func WithSchema(s *schema.Schema) EncodeOption {
	return func(es *EncState) { es.schema = s }
}

// SortKeys sets the mapping key sort policy: false leaves insertion order,
// true sorts lexicographically, and a func(a, b string) int comparator
// sorts by it. Any other value fails the call with ErrConfig.
func SortKeys(v any) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// LineWidth sets the line-width budget for folding; -1 means unlimited.
// Default 80.
func LineWidth(n int) EncodeOption {
	return func(es *EncState) { es.lineWidth = n }
}

// Anchors controls duplicate-reference anchoring. When false, a node
// reachable through several containment paths is rendered in full at each
// occurrence. Default true.
func Anchors(v bool) EncodeOption {
	return func(es *EncState) { es.anchors = v }
}

// CompatMode forces quoting of scalars that older readers resolve as
// booleans (yes/no/on/off and casings). Default true.
func CompatMode(v bool) EncodeOption {
	return func(es *EncState) { es.compatMode = v }
}

// CondenseFlow drops the spaces after flow separators, producing
// {a:1,b:2}-shaped output. Default false.
func CondenseFlow(v bool) EncodeOption {
	return func(es *EncState) { es.condenseFlow = v }
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		indent:      2,
		arrayIndent: true,
		flowLevel:   -1,
		lineWidth:   80,
		anchors:     true,
		compatMode:  true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.schema == nil {
		es.schema = schema.Default()
	}
	return es
}

func (es *EncState) validate() error {
	if es.indent < 1 {
		return fmt.Errorf("%w: indent must be at least 1, got %d", ErrConfig, es.indent)
	}
	switch v := es.sortKeys.(type) {
	case nil:
	case bool:
		if v {
			es.sortCmp = strings.Compare
		}
	case func(a, b string) int:
		es.sortCmp = v
	default:
		return fmt.Errorf("%w: sortKeys must be a bool or a func(a, b string) int, got %T",
			ErrConfig, v)
	}
	return nil
}
