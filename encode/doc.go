// Package encode serializes ir node trees to YAML text.
//
// One call runs a duplicate-reference pre-scan over the tree, then a single
// depth-first render. Duplicated containers get `&ref_N` anchors at their
// first occurrence and `*ref_N` aliases afterwards, which also makes dumping
// cyclic graphs terminate. Render depth equals tree depth; no depth limit is
// imposed.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	out, err := encode.String(node)
//
//	// with options
//	out, err = encode.String(node, encode.Indent(4), encode.SortKeys(true))
//
//	// stream to a writer
//	err = encode.Encode(node, os.Stdout, encode.FlowLevel(1))
//
// # Related Packages
//
//   - github.com/yamldump/go-yamldump/ir - node trees
//   - github.com/yamldump/go-yamldump/schema - type matchers and representers
//   - github.com/yamldump/go-yamldump/token - classification, escaping, folding
package encode
