package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/xmljson-format/go-xmljson/ir"
	"github.com/xmljson-format/go-xmljson/xmlpath"
)

// inferScalar returns trimmed text as one of the ir scalar types: int,
// float, bool or string.
func inferScalar(text string, leadingZeroAsString bool, rule xmlpath.TypeRule) *ir.Node {
	text = strings.TrimSpace(text)

	switch rule.Kind {
	case xmlpath.TypeString:
		// enforce JSON string regardless of the underlying type
		return ir.FromString(text)
	case xmlpath.TypeBool:
		// values in the rule's true set are true, anything else is false
		return ir.FromBool(rule.IsTrue(text))
	}

	// ints before floats, so integral text never becomes a float
	if v, err := strconv.ParseUint(text, 10, 64); err == nil {
		// don't parse octal numbers and those with leading 0
		// "0" is always the number 0, "0000" may become 0 or "0000"
		// depending on leadingZeroAsString
		if leadingZeroAsString && strings.HasPrefix(text, "0") && (v != 0 || len(text) > 1) {
			return ir.FromString(text)
		}
		return ir.FromUint(v)
	}

	if v, err := strconv.ParseFloat(text, 64); err == nil {
		if strings.HasPrefix(text, "0") && !strings.HasPrefix(text, "0.") {
			return ir.FromString(text)
		}
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			return ir.FromFloat(v)
		}
		// non-finite values fall through to the string form
	}

	// exact JSON literals only; ParseBool would also accept 1/t/T etc.
	switch text {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}

	return ir.FromString(text)
}
