// Package ir defines the data tree the dumper serializes: scalars, ordered
// sequences, and keyed mappings, with optional explicit tags.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	out, err := encode.String(node)
//
// # Related Packages
//
//   - github.com/yamldump/go-yamldump/encode - node-to-YAML encoder
//   - github.com/yamldump/go-yamldump/schema - type matchers and representers
package ir
