package encode

import (
	"bytes"
	"strings"

	"github.com/xmljson-format/go-xmljson/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
