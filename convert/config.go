package convert

import (
	"fmt"
	"regexp"

	"github.com/xmljson-format/go-xmljson/xmlpath"
)

// EmptyMode defines how empty elements like `<x/>` are handled:
// EmptyObject -> `"x":{}`, EmptyNull -> `"x":null`, EmptyIgnore -> excluded
// from the output. An empty root element under EmptyIgnore falls back to
// null, so both `<a><x/></a>` and `<a/>` become `{"a":null}`.
type EmptyMode int

const (
	EmptyObject EmptyMode = iota
	EmptyNull
	EmptyIgnore
)

func (m EmptyMode) String() string {
	switch m {
	case EmptyObject:
		return "object"
	case EmptyNull:
		return "null"
	case EmptyIgnore:
		return "ignore"
	default:
		return "<unknown empty mode>"
	}
}

func ParseEmptyMode(v string) (EmptyMode, error) {
	m, ok := map[string]EmptyMode{
		"object": EmptyObject,
		"null":   EmptyNull,
		"ignore": EmptyIgnore,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("empty mode %q, want object/null/ignore", v)
}

// Config tells the converter how to perform a conversion. Build one with
// NewConfig; it must not be modified afterwards.
type Config struct {
	leadingZeroAsString bool
	attrPrefix          string
	textPropName        string
	emptyElements       EmptyMode
	rules               *xmlpath.Rules
}

type Option func(*Config)

// NewConfig builds a Config. The defaults are: numbers with leading zeros
// parsed as numbers, attribute keys prefixed with "@", text nodes named
// "#text", empty elements kept as empty objects, no path rules.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		attrPrefix:    "@",
		textPropName:  "#text",
		emptyElements: EmptyObject,
		rules:         xmlpath.NewRules(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LeadingZeroAsString keeps zero-padded numeric text as a string, so
// `<agent>007</agent>` becomes `"agent":"007"` instead of `"agent":7`.
func LeadingZeroAsString(v bool) Option {
	return func(cfg *Config) { cfg.leadingZeroAsString = v }
}

// AttrPrefix sets the prefix distinguishing attribute keys from element
// keys. `<x a="hi"/>` with prefix "@" becomes `{"x":{"@a":"hi"}}`; with ""
// it becomes `{"x":{"a":"hi"}}`.
func AttrPrefix(s string) Option {
	return func(cfg *Config) { cfg.attrPrefix = s }
}

// TextPropName sets the key for text content of elements that also carry
// attributes. Elements with text only collapse to a bare value and do not
// use it.
func TextPropName(s string) Option {
	return func(cfg *Config) { cfg.textPropName = s }
}

func EmptyElements(m EmptyMode) Option {
	return func(cfg *Config) { cfg.emptyElements = m }
}

// WithPathRule registers rule at an exact path such as "/a/b" or
// "/a/b/@c". The leading slash is supplied if missing.
func WithPathRule(path string, rule xmlpath.Rule) Option {
	return func(cfg *Config) { cfg.rules.AddPath(path, rule) }
}

// WithRegexRule registers rule for every path matching re. Regex rules win
// over exact-path rules and are checked in registration order.
func WithRegexRule(re *regexp.Regexp, rule xmlpath.Rule) Option {
	return func(cfg *Config) { cfg.rules.AddRegex(re, rule) }
}

// WithRules merges previously built rules, e.g. from
// xmlpath.LoadRulesFile, into the Config.
func WithRules(rules *xmlpath.Rules) Option {
	return func(cfg *Config) { rules.MergeInto(cfg.rules) }
}
