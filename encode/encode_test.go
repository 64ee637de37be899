package encode

import (
	"bytes"
	"testing"

	"github.com/xmljson-format/go-xmljson/ir"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "@attr1", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("x"),
			ir.FromFloat(2.5),
			ir.Null(),
			ir.FromBool(true),
		})},
		{Key: "c", Val: ir.Object()},
	})
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(sample(), Compact(true))
	want := `{"@attr1":1,"b":["x",2.5,null,true],"c":{}}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	got := MustString(sample())
	want := `{
  "@attr1": 1,
  "b": [
    "x",
    2.5,
    null,
    true
  ],
  "c": {}
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndentWidth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	got := MustString(node, Indent(4))
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromInt(1), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "1\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsCover(t *testing.T) {
	// colored output must contain the same tokens; exact escapes depend on
	// the terminal support compiled into fatih/color.
	got := MustString(sample(), Compact(true), EncodeColors(NewColors()))
	for _, tok := range []string{"@attr1", "2.5", "null", "true"} {
		if !bytes.Contains([]byte(got), []byte(tok)) {
			t.Errorf("colored output missing %q: %s", tok, got)
		}
	}
}
