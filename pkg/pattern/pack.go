package pattern

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Spec is the declarative, serializable form of a pattern-pack entry
// described in §6.3: `{ name, regex, validator?, context_keywords?,
// window? }`. Packs are authored as []Spec (e.g. unmarshaled from YAML)
// and compiled with Compile before being handed to NewRegistry.
type Spec struct {
	Name            string   `yaml:"name"`
	Regex           string   `yaml:"regex"`
	ContextKeywords []string `yaml:"context_keywords,omitempty"`
	Window          int      `yaml:"window,omitempty"`
	Validator       Validator
}

// Compile turns a declarative Spec into a runnable Pattern, failing with
// InvalidConfig if the regex does not compile (§7: "malformed pattern
// pack" fails at construction).
func Compile(s Spec) (Pattern, error) {
	re, err := regexp.Compile(s.Regex)
	if err != nil {
		return Pattern{}, sanitize.Wrap(sanitize.InvalidConfig, "malformed pattern pack entry "+s.Name, err)
	}
	window := s.Window
	if window == 0 && len(s.ContextKeywords) > 0 {
		window = 40
	}
	return Pattern{
		Name:            sanitize.EntityKind(s.Name),
		Regex:           re,
		Validator:       s.Validator,
		ContextKeywords: s.ContextKeywords,
		Window:          window,
	}, nil
}

// CompileAll compiles an ordered list of Specs into Patterns, stopping at
// the first compile failure.
func CompileAll(specs []Spec) ([]Pattern, error) {
	out := make([]Pattern, 0, len(specs))
	for _, s := range specs {
		p, err := Compile(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadPackFile reads a YAML file holding a `[]Spec` pattern-pack
// declaration (§6.3's external pattern-pack-file format) and compiles it
// into a ready-to-register []Pattern. A Spec read this way never
// carries a Validator (YAML cannot express a function), so packs that
// need checksum validation stay Go-authored pattern packs like
// internal/aupack; LoadPackFile covers the regex/context-keyword-only
// case.
func LoadPackFile(path string) ([]Pattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, fmt.Sprintf("read pattern pack file %s", path), err)
	}

	var specs []Spec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, fmt.Sprintf("decode pattern pack file %s", path), err)
	}

	return CompileAll(specs)
}
