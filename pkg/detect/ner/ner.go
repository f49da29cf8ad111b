// Package ner implements the NER Detector (§4.2): a thin, panic-safe
// wrapper around an external token-classification model, consumed
// through the narrow tag() capability described in §6.4.
package ner

import (
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Tag is one raw model prediction: a label, the tagged substring, its
// byte offsets into the input, and a confidence score. This is the exact
// shape of the §6.4 adapter contract: `tag(str) -> list<{label, word,
// start, end, score}>`.
type Tag struct {
	Label string
	Word  string
	Start int
	End   int
	Score float32
}

// Tagger is the external collaborator interface. Implementations are
// responsible for their own tokenization/detokenization alignment; the
// core trusts the offsets it receives (§6.4).
type Tagger interface {
	Tag(text string) ([]Tag, error)
}

// recognizedKinds is the set of EntityKinds the NER Detector is allowed
// to emit (§4.2: "kinds drawn from PERSON/LOCATION/ORGANIZATION").
var recognizedKinds = map[sanitize.EntityKind]bool{
	sanitize.KindPerson:       true,
	sanitize.KindOrganization: true,
	sanitize.KindLocation:     true,
}

// Detector adapts a Tagger into the Candidate-producing shape shared with
// the Regex Detector. It never panics: any failure, including a panic
// recovered inside Tag, degrades to an empty result (§5 Failure
// isolation, §7 ModelUnavailable/InternalPanic).
type Detector struct {
	tagger Tagger
}

// New constructs a Detector around a lazily-initialized Tagger. The
// Tagger itself owns model loading; New does not force initialization.
func New(tagger Tagger) *Detector {
	return &Detector{tagger: tagger}
}

// Detect tags segment and returns candidates at or above threshold, with
// adjacent same-kind candidates merged (§4.2 post-processing). Any error
// or panic from the underlying tagger yields an empty, non-error result:
// privacy-safe degradation never surfaces a detector fault to the caller.
func (d *Detector) Detect(segment string, threshold float32) (candidates []sanitize.Candidate) {
	if d == nil || d.tagger == nil || segment == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			candidates = nil
		}
	}()

	tags, err := d.tagger.Tag(segment)
	if err != nil {
		return nil
	}

	raw := make([]sanitize.Candidate, 0, len(tags))
	for _, t := range tags {
		kind := sanitize.NormalizeNERLabel(t.Label)
		if !recognizedKinds[kind] {
			continue
		}
		if t.Score < threshold {
			continue
		}
		if t.End <= t.Start || t.End > len(segment) {
			continue
		}
		raw = append(raw, sanitize.Candidate{
			Kind:       kind,
			Text:       t.Word,
			Start:      t.Start,
			End:        t.End,
			Confidence: t.Score,
			Source:     sanitize.SourceNER,
		})
	}

	return mergeAdjacent(raw, segment)
}

// mergeAdjacent merges same-kind candidates whose gap is <= 1 character,
// taking the maximum confidence of the pair, per §4.2. The merged span's
// text is re-sliced from segment so it covers the gap character too.
func mergeAdjacent(candidates []sanitize.Candidate, segment string) []sanitize.Candidate {
	if len(candidates) < 2 {
		return candidates
	}

	sortCandidatesByStart(candidates)

	merged := candidates[:1]
	for _, c := range candidates[1:] {
		last := &merged[len(merged)-1]
		gap := c.Start - last.End
		if c.Kind == last.Kind && gap <= 1 && gap >= 0 {
			last.End = c.End
			last.Text = segment[last.Start:last.End]
			if c.Confidence > last.Confidence {
				last.Confidence = c.Confidence
			}
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

func sortCandidatesByStart(c []sanitize.Candidate) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].Start < c[j-1].Start; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}
