package ir

import (
	"maps"
	"slices"
)

// Node is the in-memory data tree handed to the encoder. One struct covers
// all kinds: scalars carry their payload in String/Bool/Int64/Float64,
// sequences use Values, mappings use the parallel Fields/Values arrays with
// Fields holding the key nodes. Tag, when non-empty, names an explicit
// semantic type resolved through the schema's explicit matchers.
//
// Nodes are caller-owned and must not be mutated while an encode of the
// containing tree is in progress.
type Node struct {
	Type Type
	Tag  string

	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds a mapping node with keys in sorted order. Use FromKeyVals
// when insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(yMap))
	res.Values = make([]*Node, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a mapping node preserving pair order. A nil key
// becomes a null key node.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: ySlice,
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Type == StringType && y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks y pre- and post-order. f is called with isPost false before
// descending and true after; returning dive=false skips the children. For
// mappings, keys are visited before their values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yf := range y.Fields {
			if err := yf.Visit(f); err != nil {
				return err
			}
		}
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
