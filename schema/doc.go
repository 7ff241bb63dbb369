// Package schema supplies the type-matcher lists the encoder consumes: an
// ordered implicit list resolving untagged scalar nodes and an ordered
// explicit list resolving tagged ones, each matcher carrying a predicate,
// a tag, and a represent conversion (direct or style-keyed).
package schema
