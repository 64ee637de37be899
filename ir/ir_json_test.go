package ir

import (
	"testing"
)

type jsonTest struct {
	name string
	node *Node
	want string
}

func TestToJSON(t *testing.T) {
	jts := []jsonTest{
		{"null", Null(), `null`},
		{"nil node", nil, `null`},
		{"bool", FromBool(true), `true`},
		{"int", FromInt(-42), `-42`},
		{"float", FromFloat(2.5), `2.5`},
		{"big uint", FromUint(18446744073709551615), `18446744073709551615`},
		{"string", FromString("hello"), `"hello"`},
		{"string escapes", FromString("a\"b\nc"), `"a\"b\nc"`},
		{"empty array", FromSlice(nil), `[]`},
		{"array", FromSlice([]*Node{FromInt(1), FromString("x"), Null()}), `[1,"x",null]`},
		{"empty object", Object(), `{}`},
		{
			"object keeps insertion order",
			FromKeyVals([]KeyVal{
				{Key: "z", Val: FromInt(1)},
				{Key: "a", Val: FromInt(2)},
				{Key: "#text", Val: FromString("v")},
			}),
			`{"z":1,"a":2,"#text":"v"}`,
		},
		{
			"nested",
			FromKeyVals([]KeyVal{
				{Key: "xs", Val: FromSlice([]*Node{
					FromKeyVals([]KeyVal{{Key: "i", Val: FromInt(1)}}),
				})},
			}),
			`{"xs":[{"i":1}]}`,
		},
	}
	for _, jt := range jts {
		t.Run(jt.name, func(t *testing.T) {
			d, err := ToJSON(jt.node)
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			if string(d) != jt.want {
				t.Errorf("got %s, want %s", d, jt.want)
			}
		})
	}
}

func TestToJSONBadNumber(t *testing.T) {
	if _, err := ToJSON(&Node{Type: NumberType}); err == nil {
		t.Errorf("expected error for number node with no value")
	}
}
