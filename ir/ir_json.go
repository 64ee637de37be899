package ir

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ToJSON renders node as compact JSON text with object keys in insertion
// order.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(y)
}

// MustJSON is ToJSON for tests and debugging; it panics on malformed nodes.
func MustJSON(node *Node) string {
	d, err := ToJSON(node)
	if err != nil {
		panic(err)
	}
	return string(d)
}

func writeJSON(y *Node, buf *bytes.Buffer) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		if y.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		if y.Float64 != nil {
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
			return nil
		}
		if y.Number == "" {
			return fmt.Errorf("number node with no value")
		}
		buf.WriteString(y.Number)
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(v, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i != 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(y.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unrecognized node type %d", y.Type)
	}
	return nil
}
