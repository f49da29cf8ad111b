// Package secretpack adapts Gitleaks' rule set into a pattern pack
// (§6.3), generalizing the teacher's gitleaksDetector
// (pkg/detection/gitleaks.go) — which ran Gitleaks as a standalone
// detector against whole files — into data the core Pattern Registry can
// compose with the closed PII set. It is opt-in via
// `pattern_packs: ["secrets"]` and never collides with a built-in
// EntityKind name, so it always purely adds coverage.
package secretpack

import (
	"os"
	"regexp"
	"strings"

	"github.com/zricethezav/gitleaks/v8/config"

	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Load builds a pattern pack from Gitleaks' default rule set; Gitleaks'
// own detector is never run. Unlike the teacher's gitleaksDetector, which ran
// detect.Detector.Detect directly against file content, this pack
// extracts each rule's compiled regex and keyword list and republishes
// them as pattern.Pattern entries so they flow through the same Regex
// Detector, Whitelist Filter, and Conflict Resolver as every other kind.
func Load() ([]pattern.Pattern, error) {
	tmp, err := os.CreateTemp("", "gitleaks-pack-*.toml")
	if err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, "secrets pack: temp config", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString("[extend]\nuseDefault = true\n"); err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, "secrets pack: write config", err)
	}
	tmp.Close()

	vc, err := loadViperConfig(tmp.Name())
	if err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, "secrets pack: load gitleaks config", err)
	}

	cfg, err := vc.Translate()
	if err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidConfig, "secrets pack: translate gitleaks config", err)
	}

	patterns := make([]pattern.Pattern, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		if rule.Regex == nil {
			continue
		}
		patterns = append(patterns, pattern.Pattern{
			Name:            kindForRule(rule.RuleID),
			Regex:           rule.Regex,
			ContextKeywords: rule.Keywords,
			Window:          40,
		})
	}
	return patterns, nil
}

// kindForRule maps a Gitleaks rule ID onto an EntityKind the way the
// teacher's mapRuleToType did, generalized to the pattern-pack naming
// convention instead of a PIType switch statement.
func kindForRule(ruleID string) sanitize.EntityKind {
	upper := strings.ToUpper(strings.ReplaceAll(ruleID, "-", "_"))
	if upper == "" {
		upper = "SECRET"
	}
	if !regexp.MustCompile(`^[A-Z]`).MatchString(upper) {
		upper = "SECRET_" + upper
	}
	return sanitize.EntityKind(upper)
}

func loadViperConfig(path string) (config.ViperConfig, error) {
	v := newViper(path)
	var vc config.ViperConfig
	if err := v.ReadInConfig(); err != nil {
		return vc, err
	}
	if err := v.Unmarshal(&vc); err != nil {
		return vc, err
	}
	return vc, nil
}
