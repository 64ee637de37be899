package ir

import (
	"math"
	"strconv"
)

type Node struct {
	Type Type

	// Fields[i] names Values[i] for ObjectType nodes. ArrayType nodes use
	// Values only.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
	// Number is a decimal string fallback for numeric values neither Int64
	// nor Float64 can represent, such as unsigned values above MaxInt64.
	Number string
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromUint(v uint64) *Node {
	if v > math.MaxInt64 {
		return &Node{
			Type:   NumberType,
			Number: strconv.FormatUint(v, 10),
		}
	}
	i := int64(v)
	return &Node{
		Type:  NumberType,
		Int64: &i,
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

func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

// Index returns the position of field in y, or -1 if absent.
func (y *Node) Index(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Put replaces the value under field if present, keeping its position, and
// appends the field otherwise.
func (y *Node) Put(field string, v *Node) {
	if i := y.Index(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Append adds v to an ArrayType node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = make([]string, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
