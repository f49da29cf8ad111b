// Package resolve implements the Conflict Resolver (§4.4): it turns a
// union of heterogeneous candidates into a disjoint, sorted span list
// suitable for left-to-right substitution, by whole-candidate
// replacement — never truncation.
package resolve

import (
	"sort"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Resolve sorts candidates by (start asc, end desc, priority desc) and
// walks them left to right, keeping a running last_end. An overlapping
// candidate only displaces the currently-accepted one when its priority
// strictly exceeds it AND its end strictly exceeds it; otherwise it is
// dropped whole. The resolver never slices a candidate's span (§4.4.3).
func Resolve(candidates []sanitize.Candidate) []sanitize.Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]sanitize.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End
		}
		return a.Priority() > b.Priority()
	})

	var accepted []sanitize.Candidate
	lastEnd := -1

	for _, c := range sorted {
		if len(accepted) == 0 || c.Start >= lastEnd {
			accepted = append(accepted, c)
			lastEnd = c.End
			continue
		}

		last := accepted[len(accepted)-1]
		if c.Priority() > last.Priority() && c.End > last.End {
			accepted[len(accepted)-1] = c
			lastEnd = c.End
		}
		// Otherwise: overlapping and not strictly better — drop c whole.
	}

	return accepted
}
