package encode

type EncodeOption func(*EncState)

// Indent sets the indentation width for pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact emits single-line JSON without whitespace.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeColors enables ANSI-colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
