package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/xmljson-format/go-xmljson/debug"
	"github.com/xmljson-format/go-xmljson/ir"
	"github.com/xmljson-format/go-xmljson/xmlpath"
)

var ErrParse = errors.New("parse error")

// Bytes parses d as an XML document and converts it. A nil cfg means
// defaults.
func Bytes(d []byte, cfg *Config) (*ir.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Document(doc, cfg)
}

// String parses s as an XML document and converts it.
func String(s string, cfg *Config) (*ir.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Document(doc, cfg)
}

// Document converts an already-parsed document into a one-entry object
// keyed by the root tag. An empty root whose conversion yields nothing
// (EmptyIgnore) degrades to null here rather than dropping the key; this
// applies to the root only, never recursively.
func Document(doc *etree.Document, cfg *Config) (*ir.Node, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	val := convertNode(root, cfg, "")
	if val == nil {
		val = ir.Null()
	}
	res := ir.Object()
	res.Put(root.Tag, val)
	return res, nil
}

// convertNode converts one element into a JSON property value. A nil
// return means the element produces no property at all.
func convertNode(el *etree.Element, cfg *Config, parentPath string) *ir.Node {
	path := xmlpath.Join(parentPath, el.Tag)
	rule := cfg.rules.Resolve(path)
	if debug.Convert() {
		debug.Logf("convert %s\n", path)
	}

	text := strings.TrimSpace(el.Text())
	if text != "" {
		return convertText(el, cfg, path, text, rule.Type)
	}
	return convertChildren(el, cfg, path)
}

// convertText handles elements with non-blank direct text. With attributes
// present the result is an object of prefixed attributes followed by the
// text property; without them the element collapses to a bare scalar.
func convertText(el *etree.Element, cfg *Config, path, text string, typeRule xmlpath.TypeRule) *ir.Node {
	if len(el.Attr) == 0 {
		return inferScalar(text, cfg.leadingZeroAsString, typeRule)
	}
	obj := ir.Object()
	for _, attr := range el.Attr {
		putAttr(obj, cfg, path, attr)
	}
	obj.Put(cfg.textPropName, inferScalar(text, cfg.leadingZeroAsString, typeRule))
	return obj
}

// keyState tracks per-key promotion: absent -> scalar -> array.
type keyState int

const (
	absentKey keyState = iota
	scalarKey
	arrayKey
)

// convertChildren handles elements without direct text: attributes first,
// then child elements in document order with array promotion.
func convertChildren(el *etree.Element, cfg *Config, path string) *ir.Node {
	obj := ir.Object()

	// attributes are scalar properties, never array-promoted
	for _, attr := range el.Attr {
		putAttr(obj, cfg, path, attr)
	}

	states := map[string]keyState{}
	for _, child := range el.ChildElements() {
		if child.Tag == "" {
			continue
		}
		val := convertNode(child, cfg, path)
		if val == nil {
			continue
		}
		tag := child.Tag
		rule := cfg.rules.Resolve(xmlpath.Join(path, tag))
		prior := ir.Get(obj, tag)
		if rule.Array != xmlpath.ArrayAlways && states[tag] == absentKey && prior == nil {
			// first occurrence, no forced array: keep as-is
			obj.Put(tag, val)
			states[tag] = scalarKey
			continue
		}
		switch {
		case states[tag] == arrayKey:
			prior.Append(val)
		case prior != nil:
			// second occurrence (or a clash with an unprefixed
			// attribute key): wrap both in an array
			obj.Put(tag, ir.FromSlice([]*ir.Node{prior, val}))
			states[tag] = arrayKey
		default:
			// forced array, first occurrence
			obj.Put(tag, ir.FromSlice([]*ir.Node{val}))
			states[tag] = arrayKey
		}
	}

	if obj.Len() > 0 {
		return obj
	}
	switch cfg.emptyElements {
	case EmptyNull:
		return ir.Null()
	case EmptyObject:
		return obj
	default: // EmptyIgnore
		return nil
	}
}

func putAttr(obj *ir.Node, cfg *Config, elemPath string, attr etree.Attr) {
	rule := cfg.rules.Resolve(xmlpath.Attr(elemPath, attr.Key))
	obj.Put(
		cfg.attrPrefix+attr.Key,
		inferScalar(attr.Value, cfg.leadingZeroAsString, rule.Type),
	)
}
