package convert

import (
	"testing"

	"github.com/xmljson-format/go-xmljson/ir"
	"github.com/xmljson-format/go-xmljson/xmlpath"
)

type inferTest struct {
	in          string
	leadingZero bool
	rule        xmlpath.TypeRule
	want        *ir.Node
}

func TestInferScalar(t *testing.T) {
	its := []inferTest{
		// plain inference
		{in: "1234", want: ir.FromInt(1234)},
		{in: " 1234 ", want: ir.FromInt(1234)},
		{in: "0", want: ir.FromInt(0)},
		{in: "1.5", want: ir.FromFloat(1.5)},
		{in: "0.5", want: ir.FromFloat(0.5)},
		{in: "-5", want: ir.FromFloat(-5)},
		{in: "1e14", want: ir.FromFloat(1e14)},
		{in: "true", want: ir.FromBool(true)},
		{in: "false", want: ir.FromBool(false)},
		{in: "True", want: ir.FromString("True")},
		{in: "TRUE", want: ir.FromString("TRUE")},
		{in: "t", want: ir.FromString("t")},
		{in: "hello", want: ir.FromString("hello")},
		{in: "", want: ir.FromString("")},
		{in: "AB1234", want: ir.FromString("AB1234")},
		{in: "NaN", want: ir.FromString("NaN")},
		{in: "18446744073709551615", want: ir.FromUint(18446744073709551615)},

		// octal-looking text stays textual
		{in: "007", want: ir.FromInt(7)},
		{in: "007", leadingZero: true, want: ir.FromString("007")},
		{in: "0000", want: ir.FromInt(0)},
		{in: "0000", leadingZero: true, want: ir.FromString("0000")},
		{in: "0", leadingZero: true, want: ir.FromInt(0)},
		{in: "01.5", want: ir.FromString("01.5")},
		{in: "0.5", leadingZero: true, want: ir.FromFloat(0.5)},

		// forced string
		{in: "1234", rule: xmlpath.AlwaysString(), want: ir.FromString("1234")},
		{in: "true", rule: xmlpath.AlwaysString(), want: ir.FromString("true")},
		{in: " x ", rule: xmlpath.AlwaysString(), want: ir.FromString("x")},

		// forced bool
		{in: "True", rule: xmlpath.Bool("True", "true", "TRUE"), want: ir.FromBool(true)},
		{in: "TRUE", rule: xmlpath.Bool("True", "true", "TRUE"), want: ir.FromBool(true)},
		{in: "yes", rule: xmlpath.Bool("True", "true", "TRUE"), want: ir.FromBool(false)},
		{in: "1234", rule: xmlpath.Bool("True"), want: ir.FromBool(false)},
	}
	for _, it := range its {
		got := inferScalar(it.in, it.leadingZero, it.rule)
		if ir.Compare(got, it.want) != 0 {
			t.Errorf("infer %q (leadingZero=%v, rule=%v): got %s, want %s",
				it.in, it.leadingZero, it.rule.Kind, ir.MustJSON(got), ir.MustJSON(it.want))
		}
	}
}
