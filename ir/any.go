package ir

import "fmt"

// ToAny converts node to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Object key order is lost; use the JSON
// marshaling when order matters.
func ToAny(node *Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		if node.Number != "" {
			return node.Number, nil
		}
		return nil, fmt.Errorf("number node with no value")
	case StringType:
		return node.String, nil
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			av, err := ToAny(v)
			if err != nil {
				return nil, err
			}
			res[i] = av
		}
		return res, nil
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			av, err := ToAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[f] = av
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unrecognized node type %d", node.Type)
	}
}

// FromAny converts plain Go values of the kinds json unmarshaling produces
// (nil, bool, numbers, string, []any, map[string]any) into a Node. Map keys
// are inserted in unspecified order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromUint(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := Object()
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Put(k, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
