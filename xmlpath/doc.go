// Package xmlpath identifies positions in an XML document tree and resolves
// per-position conversion rules.
//
// A path is built from ancestor tag names separated by slashes and always
// starts with a leading slash:
//
//	/a/b/c      the element <c> under <b> under root <a>
//	/a/b/@attr  the attribute attr on <b>
//
// A path depends only on tree position, never on value content.
//
// Rules associates paths with conversion rules. Regex rules are checked
// first in registration order and the first match wins, taking precedence
// over any exact-path rule for the same path. Exact-path lookup is a map
// access. Positions with no matching rule resolve to the default
// (ArrayInfer, type inference).
package xmlpath
