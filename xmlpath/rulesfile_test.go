package xmlpath

import (
	"errors"
	"testing"
)

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules([]byte(`
- path: /a/b
  array: always
- regex: (\w+/)*@id$
  type: string
- path: /a/b/@enabled
  type: bool
  true: ["True", "true", "1"]
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := rules.Resolve("/a/b"); got.Array != ArrayAlways || got.Type.Kind != TypeInfer {
		t.Errorf("/a/b: got %+v", got)
	}
	if got := rules.Resolve("/x/y/@id"); got.Type.Kind != TypeString {
		t.Errorf("@id regex: got %+v", got)
	}
	got := rules.Resolve("/a/b/@enabled")
	if got.Type.Kind != TypeBool || !got.Type.IsTrue("True") || got.Type.IsTrue("yes") {
		t.Errorf("@enabled: got %+v", got)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	bads := []string{
		// neither path nor regex
		"- array: always\n",
		// both path and regex
		"- path: /a\n  regex: a$\n",
		// unknown array policy
		"- path: /a\n  array: sometimes\n",
		// unknown type
		"- path: /a\n  type: int\n",
		// true literals without bool
		"- path: /a\n  type: string\n  true: [\"x\"]\n",
		// broken regex
		"- regex: \"(\"\n",
		// not a list
		"path: /a\n",
	}
	for _, bad := range bads {
		if _, err := LoadRules([]byte(bad)); err == nil {
			t.Errorf("accepted bad rules file %q", bad)
		} else if !errors.Is(err, ErrRule) {
			t.Errorf("error for %q does not wrap ErrRule: %v", bad, err)
		}
	}
}

func TestLoadRulesFileMissing(t *testing.T) {
	if _, err := LoadRulesFile("no/such/file.yaml"); err == nil {
		t.Errorf("expected error for missing file")
	}
}
