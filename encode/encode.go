// Package encode renders ir nodes as JSON text.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/xmljson-format/go-xmljson/ir"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON with object keys in insertion order,
// indented by 2 unless configured otherwise, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeScalar(w, es, ir.NullType, "null")
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.NullType:
		return writeScalar(w, es, node.Type, "null")
	case ir.BoolType:
		return writeScalar(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		tok, err := numberToken(node)
		if err != nil {
			return err
		}
		return writeScalar(w, es, node.Type, tok)
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return writeScalar(w, es, node.Type, string(d))
	default:
		return fmt.Errorf("unrecognized node type %d", node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.Type, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i != 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		d, err := json.Marshal(field)
		if err != nil {
			return err
		}
		key := string(d)
		if es.Color != nil {
			key = es.Color(node.Type, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		sep := ": "
		if es.compact {
			sep = ":"
		}
		if err := writeSep(w, es, node.Type, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if node.Len() > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.Type, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i != 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if node.Len() > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.Type, "]")
}

func numberToken(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 != nil {
		d, err := json.Marshal(*node.Float64)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	if node.Number != "" {
		return node.Number, nil
	}
	return "", fmt.Errorf("number node with no value")
}

func writeScalar(w io.Writer, es *EncState, t ir.Type, tok string) error {
	if es.Color != nil {
		tok = es.Color(t, ValueColor, tok)
	}
	return writeString(w, tok)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, tok string) error {
	if es.Color != nil {
		tok = es.Color(t, SepColor, tok)
	}
	return writeString(w, tok)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	indent := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indent)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
