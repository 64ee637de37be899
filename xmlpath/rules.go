package xmlpath

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/xmljson-format/go-xmljson/debug"
)

// ArrayPolicy defines whether sibling values of the same tag become a JSON
// array. Under ArrayInfer, `<a><b>1</b></a>` becomes `{"a":{"b":1}}` and
// `<a><b>1</b><b>2</b></a>` becomes `{"a":{"b":[1,2]}}`. Under ArrayAlways,
// a single `<b>` still becomes `{"b":[1]}`.
type ArrayPolicy int

const (
	// ArrayInfer promotes to an array only on a duplicate sibling tag.
	ArrayInfer ArrayPolicy = iota
	// ArrayAlways forces an array regardless of how many siblings there are.
	ArrayAlways
)

func (p ArrayPolicy) String() string {
	switch p {
	case ArrayInfer:
		return "infer"
	case ArrayAlways:
		return "always"
	default:
		return "<unknown array policy>"
	}
}

func ParseArrayPolicy(v string) (ArrayPolicy, error) {
	p, ok := map[string]ArrayPolicy{
		"infer":  ArrayInfer,
		"always": ArrayAlways,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: array policy %q", ErrRule, v)
}

// TypeKind selects how scalar text is typed.
type TypeKind int

const (
	// TypeInfer guesses the type from the single value at hand. Not
	// guaranteed to be consistent across nodes: `1234` and `AB1234` under
	// the same tag produce a number and a string.
	TypeInfer TypeKind = iota
	// TypeString keeps the value as a JSON string, no guessing.
	TypeString
	// TypeBool maps values in the rule's true-literal set to true and
	// everything else to false.
	TypeBool
)

func (k TypeKind) String() string {
	switch k {
	case TypeInfer:
		return "infer"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "<unknown type rule>"
	}
}

func ParseTypeKind(v string) (TypeKind, error) {
	k, ok := map[string]TypeKind{
		"infer":  TypeInfer,
		"string": TypeString,
		"bool":   TypeBool,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: type rule %q", ErrRule, v)
}

// TypeRule is a scalar typing rule: the kind plus, for TypeBool, the set of
// literals mapped to true.
type TypeRule struct {
	Kind         TypeKind
	TrueLiterals []string
}

func Infer() TypeRule {
	return TypeRule{Kind: TypeInfer}
}

func AlwaysString() TypeRule {
	return TypeRule{Kind: TypeString}
}

// Bool builds a rule mapping any of trueLiterals to true, e.g.
// Bool("True", "true", "TRUE").
func Bool(trueLiterals ...string) TypeRule {
	return TypeRule{Kind: TypeBool, TrueLiterals: trueLiterals}
}

func (r TypeRule) IsTrue(text string) bool {
	return slices.Contains(r.TrueLiterals, text)
}

// Rule pairs the array policy and type rule applied at one path.
type Rule struct {
	Array ArrayPolicy
	Type  TypeRule
}

func DefaultRule() Rule {
	return Rule{Array: ArrayInfer, Type: Infer()}
}

type regexRule struct {
	re   *regexp.Regexp
	rule Rule
}

// Rules holds the per-path overrides for a conversion. The zero value and
// nil both resolve everything to DefaultRule. Rules must not be modified
// once a conversion using them has begun.
type Rules struct {
	exact map[string]Rule
	regex []regexRule
}

func NewRules() *Rules {
	return &Rules{}
}

// AddPath registers rule at the exact path, replacing any earlier rule
// there. The leading slash is supplied if missing.
func (r *Rules) AddPath(path string, rule Rule) *Rules {
	if r.exact == nil {
		r.exact = map[string]Rule{}
	}
	r.exact[Canon(path)] = rule
	return r
}

// AddRegex registers rule for every path matching re. Regex rules are
// checked in registration order and take precedence over exact-path rules.
func (r *Rules) AddRegex(re *regexp.Regexp, rule Rule) *Rules {
	r.regex = append(r.regex, regexRule{re: re, rule: rule})
	return r
}

// MergeInto copies r's entries into dst. Exact-path rules replace entries
// at the same path; regex rules append after dst's existing regex rules.
func (r *Rules) MergeInto(dst *Rules) {
	if r == nil {
		return
	}
	for path, rule := range r.exact {
		dst.AddPath(path, rule)
	}
	dst.regex = append(dst.regex, r.regex...)
}

// Resolve returns the rule in effect at path: first regex match in
// registration order, else the exact-path entry, else DefaultRule.
func (r *Rules) Resolve(path string) Rule {
	if r == nil {
		return DefaultRule()
	}
	for i := range r.regex {
		if r.regex[i].re.MatchString(path) {
			if debug.Resolve() {
				debug.Logf("resolve %s: regex %s -> (%s, %s)\n",
					path, r.regex[i].re, r.regex[i].rule.Array, r.regex[i].rule.Type.Kind)
			}
			return r.regex[i].rule
		}
	}
	if rule, ok := r.exact[path]; ok {
		if debug.Resolve() {
			debug.Logf("resolve %s: exact -> (%s, %s)\n", path, rule.Array, rule.Type.Kind)
		}
		return rule
	}
	return DefaultRule()
}
