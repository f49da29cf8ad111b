// Package pattern implements the Pattern Registry: named regular
// expressions plus optional validators and context-keyword gates,
// composed from the built-in set and zero or more pattern packs.
package pattern

import (
	"regexp"
	"strings"
	"sync"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Validator rejects candidate matches that fail a domain-specific check,
// e.g. the Luhn checksum for credit card numbers.
type Validator func(match string) bool

// Pattern is the compiled, in-memory form of a pattern-pack entry (§6.3).
type Pattern struct {
	Name            sanitize.EntityKind
	Regex           *regexp.Regexp
	Validator       Validator
	ContextKeywords []string
	Window          int
}

// matchesContext checks whether any context keyword occurs within Window
// characters of [start,end) in segment, case-insensitively. A pattern with
// no keywords always passes (§4.1b: "absence of keywords means
// unconditional emit").
func (p Pattern) matchesContext(segment string, start, end int) bool {
	if len(p.ContextKeywords) == 0 {
		return true
	}
	lo := start - p.Window
	if lo < 0 {
		lo = 0
	}
	hi := end + p.Window
	if hi > len(segment) {
		hi = len(segment)
	}
	window := strings.ToLower(segment[lo:hi])
	for _, kw := range p.ContextKeywords {
		if strings.Contains(window, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Registry is an ordered, de-duplicated-by-name set of compiled patterns.
// It is built once at pipeline-construction time (§3 Lifecycles: "pattern
// compilation happens at construction and is reused across calls") and is
// safe for concurrent read-only use thereafter — mirroring the teacher's
// getRegexp cache (pkg/detection/detector.go), generalized from a single
// RWMutex-guarded map to an immutable slice assembled once.
type Registry struct {
	mu       sync.RWMutex
	byName   map[sanitize.EntityKind]int
	patterns []Pattern
}

// NewRegistry builds a registry from the built-in pattern set followed by
// zero or more packs, applied in order. A later pack's pattern with the
// same Name replaces an earlier one, per §6.3.
func NewRegistry(packs ...[]Pattern) *Registry {
	r := &Registry{byName: make(map[sanitize.EntityKind]int)}
	r.apply(BuiltinPatterns())
	for _, pack := range packs {
		r.apply(pack)
	}
	return r
}

func (r *Registry) apply(patterns []Pattern) {
	for _, p := range patterns {
		if idx, ok := r.byName[p.Name]; ok {
			r.patterns[idx] = p
			continue
		}
		r.byName[p.Name] = len(r.patterns)
		r.patterns = append(r.patterns, p)
	}
}

// Patterns returns the registry's patterns in declaration order. The
// returned slice must not be mutated by the caller.
func (r *Registry) Patterns() []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.patterns
}
