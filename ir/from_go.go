package ir

import (
	"fmt"

	"github.com/segmentio/encoding/json"
)

// FromJSON decodes a JSON document into a node tree. Object members come
// out in sorted key order, matching FromMap.
func FromJSON(d []byte) (*Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return FromGo(v)
}

// FromGo converts a decoded-JSON-shaped Go value (nil, bool, float64,
// int64, string, []any, map[string]any) to a node tree.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case float64:
		if t >= -1<<53 && t <= 1<<53 && t == float64(int64(t)) {
			return FromInt(int64(t)), nil
		}
		return FromFloat(t), nil
	case []any:
		vals := make([]*Node, 0, len(t))
		for _, el := range t {
			y, err := FromGo(el)
			if err != nil {
				return nil, err
			}
			vals = append(vals, y)
		}
		return FromSlice(vals), nil
	case map[string]any:
		sub := make(map[string]*Node, len(t))
		for k, el := range t {
			y, err := FromGo(el)
			if err != nil {
				return nil, err
			}
			sub[k] = y
		}
		return FromMap(sub), nil
	default:
		return nil, fmt.Errorf("%w: unsupported go value %T", ErrConvert, v)
	}
}
