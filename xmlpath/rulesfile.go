package xmlpath

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
)

// FileRule is one entry of a YAML rules file. Exactly one of Path and Regex
// must be set. Array defaults to "infer", Type to "infer"; True lists the
// true literals for Type "bool".
//
// Example file:
//
//	- path: /a/b
//	  array: always
//	- regex: (\w+/)*@id$
//	  type: string
//	- path: /a/b/@enabled
//	  type: bool
//	  true: ["True", "true", "1"]
type FileRule struct {
	Path  string   `yaml:"path,omitempty"`
	Regex string   `yaml:"regex,omitempty"`
	Array string   `yaml:"array,omitempty"`
	Type  string   `yaml:"type,omitempty"`
	True  []string `yaml:"true,omitempty"`
}

// LoadRules builds a Rules from YAML rules-file content.
func LoadRules(d []byte) (*Rules, error) {
	var fileRules []FileRule
	if err := yaml.Unmarshal(d, &fileRules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRule, err)
	}
	res := NewRules()
	for i := range fileRules {
		if err := addFileRule(res, &fileRules[i]); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return res, nil
}

// LoadRulesFile reads and builds a Rules from the YAML file at path.
func LoadRulesFile(path string) (*Rules, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := LoadRules(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

func addFileRule(rules *Rules, fr *FileRule) error {
	if (fr.Path == "") == (fr.Regex == "") {
		return fmt.Errorf("%w: exactly one of path and regex must be set", ErrRule)
	}
	rule := DefaultRule()
	if fr.Array != "" {
		p, err := ParseArrayPolicy(fr.Array)
		if err != nil {
			return err
		}
		rule.Array = p
	}
	if fr.Type != "" {
		k, err := ParseTypeKind(fr.Type)
		if err != nil {
			return err
		}
		rule.Type = TypeRule{Kind: k, TrueLiterals: fr.True}
	}
	if len(fr.True) > 0 && rule.Type.Kind != TypeBool {
		return fmt.Errorf("%w: true literals require type bool", ErrRule)
	}
	if fr.Path != "" {
		rules.AddPath(fr.Path, rule)
		return nil
	}
	re, err := regexp.Compile(fr.Regex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRule, err)
	}
	rules.AddRegex(re, rule)
	return nil
}
