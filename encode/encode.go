package encode

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yamldump/go-yamldump/ir"
	"github.com/yamldump/go-yamldump/schema"
)

// String serializes node to a YAML document. The result ends in exactly one
// trailing newline, or is empty when the root itself is dropped under
// SkipInvalid.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts...)
	if err := es.validate(); err != nil {
		return "", err
	}
	if es.anchors {
		scanDuplicates(es, node)
	} else {
		es.dupIndex = map[*ir.Node]int{}
		es.usedDup = map[*ir.Node]bool{}
	}
	ok, err := writeNode(es, 0, node, true, true, false)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return es.dump + "\n", nil
}

// Encode serializes node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	s, err := String(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(s))
	return err
}

// resolveTag matches node against the schema and resolves its tag and, for
// matched nodes, the represented scalar text. Untagged nodes probe the
// implicit list, tagged ones the explicit list; first match wins. An
// explicit tag on the node itself always names the emitted tag.
func resolveTag(es *EncState, node *ir.Node) (string, bool, error) {
	es.tag = ""
	es.implicitTag = false

	var m *schema.Matcher
	if node.Tag == "" {
		if m = schema.Match(es.schema.Implicit, node); m != nil {
			es.tag = m.Tag
			es.implicitTag = true
		}
	} else {
		es.tag = node.Tag
		m = schema.Match(es.schema.Explicit, node)
		if m == nil {
			// a retagged scalar still needs represented text, so fall back
			// to the implicit matcher while keeping the node's own tag
			m = schema.Match(es.schema.Implicit, node)
		}
	}
	if m == nil {
		return "", false, nil
	}
	conv, err := m.Converter(es.styles[m.Tag])
	if err != nil {
		return "", false, err
	}
	if conv == nil {
		return "", false, nil
	}
	text, err := conv(node)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// writeNode renders one node into es.dump at the given nesting level. block
// selects block layout, compact lets a first child share its parent's line,
// iskey restricts the scalar encoder to single-line styles. The returned
// bool is false when the node was dropped under SkipInvalid.
func writeNode(es *EncState, level int, node *ir.Node, block, compact, iskey bool) (bool, error) {
	repText, hasRep, err := resolveTag(es, node)
	if err != nil {
		return false, err
	}
	if es.flowLevel > -1 && es.flowLevel <= level {
		block = false
	}

	container := node.Type == ir.ObjectType || node.Type == ir.ArrayType
	dupIdx, duplicate := 0, false
	if container {
		dupIdx, duplicate = es.dupIndex[node]
	}
	hasTag := es.tag != "" && !es.implicitTag
	if hasTag || duplicate || (es.indent != 2 && level > 0) {
		compact = false
	}

	if duplicate && es.usedDup[node] {
		es.dump = "*ref_" + strconv.Itoa(dupIdx)
		return true, nil
	}
	if duplicate {
		es.usedDup[node] = true
	}

	switch {
	case hasRep:
		if es.implicitTag {
			es.dump = repText
		} else if err := writeScalar(es, repText, level, iskey); err != nil {
			return false, err
		}
	case node.Type == ir.ObjectType:
		if block && len(node.Fields) != 0 {
			if err := writeBlockMapping(es, level, node, compact); err != nil {
				return false, err
			}
			if duplicate {
				es.dump = "&ref_" + strconv.Itoa(dupIdx) + es.dump
			}
		} else {
			if err := writeFlowMapping(es, level, node); err != nil {
				return false, err
			}
			if duplicate {
				es.dump = "&ref_" + strconv.Itoa(dupIdx) + " " + es.dump
			}
		}
	case node.Type == ir.ArrayType:
		arrayLevel := level
		if !es.arrayIndent && level > 0 {
			arrayLevel = level - 1
		}
		if block && len(node.Values) != 0 {
			if err := writeBlockSequence(es, arrayLevel, node, compact); err != nil {
				return false, err
			}
			if duplicate {
				es.dump = "&ref_" + strconv.Itoa(dupIdx) + es.dump
			}
		} else {
			if err := writeFlowSequence(es, arrayLevel, node); err != nil {
				return false, err
			}
			if duplicate {
				es.dump = "&ref_" + strconv.Itoa(dupIdx) + " " + es.dump
			}
		}
	case node.Type == ir.StringType:
		if err := writeScalar(es, node.String, level, iskey); err != nil {
			return false, err
		}
	default:
		if es.skipInvalid {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s node matched no schema type", ErrUnsupported, node.Type)
	}

	if hasTag := es.tag != "" && !es.implicitTag; hasTag {
		es.dump = wrapTag(es.tag) + " " + es.dump
	}
	return true, nil
}

func generateNextLine(es *EncState, level int) string {
	return "\n" + strings.Repeat(" ", es.indent*level)
}

func writeBlockMapping(es *EncState, level int, node *ir.Node, compact bool) error {
	savedTag, savedImplicit := es.tag, es.implicitTag
	res := ""
	for _, i := range sortedPairs(es, node) {
		pair := ""
		if !compact || res != "" {
			pair += generateNextLine(es, level)
		}
		ok, err := writeNode(es, level+1, node.Fields[i], true, true, true)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		explicitPair := (es.tag != "" && !es.implicitTag) || len(es.dump) > 1024
		if explicitPair {
			if strings.HasPrefix(es.dump, "\n") {
				pair += "?"
			} else {
				pair += "? "
			}
		}
		pair += es.dump
		if explicitPair {
			pair += generateNextLine(es, level)
		}
		ok, err = writeNode(es, level+1, node.Values[i], true, explicitPair, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if strings.HasPrefix(es.dump, "\n") {
			pair += ":"
		} else {
			pair += ": "
		}
		res += pair + es.dump
	}
	es.tag, es.implicitTag = savedTag, savedImplicit
	es.dump = res
	if res == "" {
		es.dump = "{}"
	}
	return nil
}

// sortedPairs returns the pair indexes of a mapping node in render order:
// insertion order by default, or stably reordered by the sort policy
// comparing key text. Sorting never changes key-value associations.
func sortedPairs(es *EncState, node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	if es.sortCmp == nil {
		return idx
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return es.sortCmp(node.Fields[a].String, node.Fields[b].String)
	})
	return idx
}

func writeFlowMapping(es *EncState, level int, node *ir.Node) error {
	savedTag, savedImplicit := es.tag, es.implicitTag
	res := ""
	for i := range node.Fields {
		pair := ""
		if res != "" {
			pair += ","
			if !es.condenseFlow {
				pair += " "
			}
		}
		ok, err := writeNode(es, level, node.Fields[i], false, false, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		keyDump := es.dump
		if es.condenseFlow && len(keyDump) > 1024 {
			keyDump = `"` + keyDump + `"`
		}
		pair += keyDump + ":"
		if !es.condenseFlow {
			pair += " "
		}
		ok, err = writeNode(es, level, node.Values[i], false, false, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		res += pair + es.dump
	}
	es.tag, es.implicitTag = savedTag, savedImplicit
	es.dump = "{" + res + "}"
	return nil
}

func writeBlockSequence(es *EncState, level int, node *ir.Node, compact bool) error {
	savedTag, savedImplicit := es.tag, es.implicitTag
	res := ""
	for _, yv := range node.Values {
		ok, err := writeNode(es, level+1, yv, true, true, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		item := ""
		if !compact || res != "" {
			item += generateNextLine(es, level)
		}
		if strings.HasPrefix(es.dump, "\n") {
			item += "-"
		} else {
			item += "- "
		}
		res += item + es.dump
	}
	es.tag, es.implicitTag = savedTag, savedImplicit
	es.dump = res
	if res == "" {
		es.dump = "[]"
	}
	return nil
}

func writeFlowSequence(es *EncState, level int, node *ir.Node) error {
	savedTag, savedImplicit := es.tag, es.implicitTag
	res := ""
	for _, yv := range node.Values {
		ok, err := writeNode(es, level, yv, false, false, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if res != "" {
			res += ","
			if !es.condenseFlow {
				res += " "
			}
		}
		res += es.dump
	}
	es.tag, es.implicitTag = savedTag, savedImplicit
	es.dump = "[" + res + "]"
	return nil
}
