// Package whitelist implements the Whitelist Filter (§4.3): candidates
// whose matched text equals a configured term, or contains it between
// word boundaries, compared case-folded, never reach the conflict
// resolver.
package whitelist

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Filter holds a case-folded set of whitelist terms. Folding uses
// golang.org/x/text/cases rather than strings.ToLower so that
// non-ASCII scripts (Turkish dotless i, German sharp s, etc.) fold the
// same way on both the term and the candidate side.
type Filter struct {
	terms []string
	fold  cases.Caser
}

// New builds a Filter from the configured whitelist terms, case-folding
// each one up front so matching is a simple comparison per candidate.
func New(terms []string) *Filter {
	fold := cases.Fold()
	f := &Filter{terms: make([]string, len(terms)), fold: fold}
	for i, t := range terms {
		f.terms[i] = fold.String(t)
	}
	return f
}

// Apply returns the subset of candidates whose Text does not match any
// whitelist term. Matching is case-insensitive and considers only the
// candidate's own text, never surrounding context (§4.3).
func (f *Filter) Apply(candidates []sanitize.Candidate) []sanitize.Candidate {
	if len(f.terms) == 0 {
		return candidates
	}

	out := make([]sanitize.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if f.matches(c.Text) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matches reports whether text equals a whitelist term under
// case-insensitive, word-bounded comparison. Because a Candidate's Text
// is already an exact detector match (not an arbitrary substring), the
// word-boundary requirement reduces to: the folded text equals the term,
// or the term appears in the folded text surrounded by non-letter/digit
// boundaries on both sides.
func (f *Filter) matches(text string) bool {
	folded := f.fold.String(text)
	for _, term := range f.terms {
		if term == "" {
			continue
		}
		if folded == term {
			return true
		}
		if containsWordBounded(folded, term) {
			return true
		}
	}
	return false
}

func containsWordBounded(haystack, needle string) bool {
	start := 0
	for {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		before := rune(' ')
		if idx > 0 {
			before = lastRune(haystack[:idx])
		}
		after := rune(' ')
		if idx+len(needle) < len(haystack) {
			after = firstRune(haystack[idx+len(needle):])
		}
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		start = idx + len(needle)
		if start >= len(haystack) {
			return false
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func lastRune(s string) rune {
	var last rune = ' '
	for _, r := range s {
		last = r
	}
	return last
}
