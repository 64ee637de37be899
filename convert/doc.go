// Package convert turns parsed XML documents into JSON-like ir.Node trees.
//
// # Usage
//
//	cfg := convert.NewConfig()
//	node, err := convert.String(`<a attr1="1"><b><c attr2="001">some text</c></b></a>`, cfg)
//	// {"a":{"@attr1":1,"b":{"c":{"@attr2":1,"#text":"some text"}}}}
//
//	cfg = convert.NewConfig(
//	    convert.LeadingZeroAsString(true),
//	    convert.AttrPrefix(""),
//	    convert.TextPropName("txt"),
//	    convert.EmptyElements(convert.EmptyNull),
//	)
//	node, err = convert.String(xml, cfg)
//	// {"a":{"attr1":1,"b":{"c":{"attr2":"001","txt":"some text"}}}}
//
// Per-path rules enforce JSON types or array form for selected positions:
//
//	cfg := convert.NewConfig(
//	    convert.WithPathRule("/a/b/c/@attr2", xmlpath.Rule{Type: xmlpath.AlwaysString()}),
//	    convert.WithPathRule("/a/b", xmlpath.Rule{Array: xmlpath.ArrayAlways, Type: xmlpath.Infer()}),
//	)
//
// Parsing is done up front by github.com/beevik/etree; conversion itself
// never fails on a well-formed document. A Config is immutable once built,
// so one Config may serve any number of concurrent conversions.
//
// # Related Packages
//
//   - github.com/xmljson-format/go-xmljson/ir - the converted value tree
//   - github.com/xmljson-format/go-xmljson/xmlpath - path rules
//   - github.com/xmljson-format/go-xmljson/encode - JSON text output
package convert
