// Package regexdetect implements the Regex Detector (§4.1): it scans a
// text segment against every compiled pattern in a registry and emits
// offset-tagged candidates, gated by each pattern's validator and context
// keywords.
package regexdetect

import (
	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Detector runs every pattern in a Registry against a segment in
// declaration order, the same ordering discipline as the teacher's
// regexMatcher.Match loop (pkg/detection/detector.go), generalized from a
// single hard-coded matcher per PI type to an arbitrary ordered registry.
type Detector struct {
	registry *pattern.Registry
}

// New constructs a Detector bound to the given registry.
func New(registry *pattern.Registry) *Detector {
	return &Detector{registry: registry}
}

// Detect scans segment and returns candidates with confidence 1.0 and
// source "regex", per §4.1's contract. An empty segment yields an empty
// result; zero-width matches are skipped.
func (d *Detector) Detect(segment string) []sanitize.Candidate {
	if segment == "" {
		return nil
	}

	var out []sanitize.Candidate
	for _, p := range d.registry.Patterns() {
		locs := p.Regex.FindAllStringIndex(segment, -1)
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			if start == end {
				continue
			}
			match := segment[start:end]

			if p.Validator != nil && !p.Validator(match) {
				continue
			}
			if !p.matchesContext(segment, start, end) {
				continue
			}

			out = append(out, sanitize.Candidate{
				Kind:       p.Name,
				Text:       match,
				Start:      start,
				End:        end,
				Confidence: 1.0,
				Source:     sanitize.SourceRegex,
			})
		}
	}
	return out
}
