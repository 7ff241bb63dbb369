package schema

import (
	"errors"
	"fmt"

	"github.com/yamldump/go-yamldump/ir"
)

var ErrConfig = errors.New("schema config error")

// RepresentFunc converts a matched node to its closest primitive printable
// form.
type RepresentFunc func(*ir.Node) (string, error)

// Matcher pairs a semantic-type predicate with a tag and a represent
// conversion. Exactly one of Represent and Styles is set: Represent is the
// direct single-function form, Styles keys conversions by represent style
// with DefaultStyle naming the fallback.
type Matcher struct {
	Tag       string
	Predicate func(*ir.Node) bool

	Represent    RepresentFunc
	Styles       map[string]RepresentFunc
	DefaultStyle string
}

// Converter resolves the represent conversion for the requested style. An
// empty style selects the matcher default. Asking a style table for a style
// it does not carry is a configuration error.
func (m *Matcher) Converter(style string) (RepresentFunc, error) {
	if m.Styles == nil {
		return m.Represent, nil
	}
	if style == "" {
		style = m.DefaultStyle
	}
	conv, ok := m.Styles[style]
	if !ok {
		return nil, fmt.Errorf("%w: tag %s has no represent style %q", ErrConfig, m.Tag, style)
	}
	return conv, nil
}

// Schema is an ordered pair of matcher lists. Implicit matchers resolve
// untagged scalar nodes whose text round-trips without a tag; explicit
// matchers resolve nodes carrying an explicit tag. First match wins and
// list order is fixed.
type Schema struct {
	Implicit []*Matcher
	Explicit []*Matcher
}

// Match probes the given list in order.
func Match(list []*Matcher, y *ir.Node) *Matcher {
	for _, m := range list {
		if m.Predicate != nil && m.Predicate(y) {
			return m
		}
	}
	return nil
}
