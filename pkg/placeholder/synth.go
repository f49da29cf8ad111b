// Package placeholder implements the Placeholder Synthesizer (§4.6) and
// the Rehydrator (§4.7): the deterministic text<->token mapping and its
// inverse.
package placeholder

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// HashWidth is the fixed hex-digest width this implementation uses for
// every placeholder, resolving §9 Open Question (c): a single
// implementation must pick one width in [6,8] and keep it. 8 matches the
// original Python implementation's sha256(...)[:8] convention.
const HashWidth = 8

// grammarBody is the part of the §6.2 wire-format grammar
// `<<[A-Z][A-Z0-9_]*_[0-9a-f]{6,8}>>` between the affixes; Grammar wraps
// it in the configured prefix/suffix at call time.
const grammarBody = `[A-Z][A-Z0-9_]*_[0-9a-f]{6,8}`

// Synthesizer builds placeholders for detected spans and records the
// reverse mapping, per (entity kind, original text) -> placeholder.
type Synthesizer struct {
	prefix, suffix string
}

// New constructs a Synthesizer using the configured affixes.
func New(prefix, suffix string) *Synthesizer {
	return &Synthesizer{prefix: prefix, suffix: suffix}
}

// Placeholder computes the deterministic placeholder for (kind, text):
// PREFIX + KIND + "_" + first HashWidth hex chars of sha256(text) +
// SUFFIX. Same kind + same text always yields the same token, in any
// process, on any call (§4.6 determinism contract).
func (s *Synthesizer) Placeholder(kind sanitize.EntityKind, text string) string {
	sum := sha256.Sum256([]byte(text))
	hash := hex.EncodeToString(sum[:])[:HashWidth]
	return s.prefix + string(kind) + "_" + hash + s.suffix
}

// Synthesize replaces every accepted candidate's span with its
// placeholder, substituting in descending-start order so earlier offsets
// stay valid (§4.6 "Substitution"), and records every (placeholder ->
// original) pair into the returned map. candidates must already be
// disjoint and need not be pre-sorted.
func (s *Synthesizer) Synthesize(segment string, candidates []sanitize.Candidate) (string, sanitize.RehydrationMap) {
	rehydration := make(sanitize.RehydrationMap, len(candidates))
	if len(candidates) == 0 {
		return segment, rehydration
	}

	ordered := make([]sanitize.Candidate, len(candidates))
	copy(ordered, candidates)
	insertionSortDescByStart(ordered)

	out := segment
	for _, c := range ordered {
		token := s.Placeholder(c.Kind, c.Text)
		rehydration[token] = c.Text
		out = out[:c.Start] + token + out[c.End:]
	}
	return out, rehydration
}

func insertionSortDescByStart(c []sanitize.Candidate) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].Start > c[j-1].Start; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

// Grammar compiles the placeholder regular expression for a specific
// prefix/suffix pair, for use by validators that must decide whether a
// whole string is a placeholder token (e.g. the rehydrator's MalformedMap
// check). The pattern is anchored so MatchString/FindString callers get a
// whole-string match instead of matching a placeholder that merely
// appears as a substring of a larger, otherwise-invalid key.
func Grammar(prefix, suffix string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + grammarBody + regexp.QuoteMeta(suffix) + "$")
}

// DefaultGrammar is Grammar with the spec's default "<<"/">>" affixes.
var DefaultGrammar = Grammar("<<", ">>")
