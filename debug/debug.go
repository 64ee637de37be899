// Package debug provides env-var gated tracing for conversions.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("XMLJSON_DEBUG_RESOLVE")
	d.Convert = boolEnv("XMLJSON_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Convert() bool {
	return d.Convert
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
