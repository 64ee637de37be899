package xmlpath

import "strings"

// Join returns the path of a child element named tag under parent. The
// parent of a root element is "".
func Join(parent, tag string) string {
	return parent + "/" + tag
}

// Attr returns the path of the attribute name on the element at elemPath.
func Attr(elemPath, name string) string {
	return elemPath + "/@" + name
}

// Canon returns path with the leading slash supplied if missing, so callers
// may write "a/b/@c" for "/a/b/@c".
func Canon(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
