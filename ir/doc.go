// Package ir provides the intermediate representation for converted documents.
//
// # Overview
//
// The ir package defines the JSON-like value tree produced by the converter.
// A value is represented as an ir.Node tree: atomic types (null, boolean,
// number, string) and composite types (object, array). Objects preserve
// insertion order: Fields[i] is the key for the value at Values[i], so there
// are always as many fields as values.
//
// The IR is a simple recursive tagged union where values are placed in fields
// depending on the node type, making it readily representable in JSON.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed or unsigned fitting int64)
//   - Float64: if it is a finite floating point number (64-bit IEEE float)
//   - Number: as a decimal string fallback when neither fits, such as
//     unsigned values above MaxInt64
//
// Non-finite floating point input never reaches the IR; the converter falls
// back to the string form of the source text.
//
// # JSON Interoperability
//
// Node implements json.Marshaler, emitting plain JSON with object keys in
// insertion order. This makes the output of a conversion directly usable with
// any JSON tooling.
//
// # Thread Safety
//
// Node structures are not thread-safe. A conversion result is exclusively
// owned by its caller; clone or synchronize if sharing across goroutines.
//
// # Related Packages
//
//   - github.com/xmljson-format/go-xmljson/convert - Converts XML documents to IR nodes
//   - github.com/xmljson-format/go-xmljson/encode - Encodes IR nodes to JSON text
package ir
