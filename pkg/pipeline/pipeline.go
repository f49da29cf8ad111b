// Package pipeline wires the Pattern Registry, Regex Detector, NER
// Detector, Whitelist Filter, Conflict Resolver, Format Parser, and
// Placeholder Synthesizer/Rehydrator into the two top-level operations
// described in §6.1: sanitize and rehydrate.
package pipeline

import (
	"github.com/MacAttak/pi-sanitizer/pkg/detect/ner"
	"github.com/MacAttak/pi-sanitizer/pkg/detect/regexdetect"
	"github.com/MacAttak/pi-sanitizer/pkg/format"
	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/placeholder"
	"github.com/MacAttak/pi-sanitizer/pkg/resolve"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
	"github.com/MacAttak/pi-sanitizer/pkg/whitelist"
)

// Pipeline is an immutable, constructed-once sanitizer: configuration
// and compiled patterns are fixed at construction and shared by
// reference across calls (§3 Lifecycles, §5 Concurrency). It is safe to
// call Sanitize concurrently from multiple goroutines.
type Pipeline struct {
	config      sanitize.Config
	registry    *pattern.Registry
	regex       *regexdetect.Detector
	nerDetector *ner.Detector
	whitelist   *whitelist.Filter
	synth       *placeholder.Synthesizer
	rehydrator  *placeholder.Rehydrator
}

// New constructs a Pipeline. nerTagger may be nil; it is only consulted
// when config.EnableNER is true. Pattern compilation and whitelist
// folding happen here, once, per §3.
func New(config sanitize.Config, nerTagger ner.Tagger, packs ...[]pattern.Pattern) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	registry := pattern.NewRegistry(packs...)

	return &Pipeline{
		config:      config,
		registry:    registry,
		regex:       regexdetect.New(registry),
		nerDetector: ner.New(nerTagger),
		whitelist:   whitelist.New(config.Whitelist),
		synth:       placeholder.New(config.PlaceholderPrefix, config.PlaceholderSuffix),
		rehydrator:  placeholder.NewRehydrator(),
	}, nil
}

// Sanitize implements §6.1's `sanitize(content, format, config)`. It
// walks the state machine from §4.7: NEW -> SEGMENTED -> CANDIDATES ->
// SPANS -> MASKED_SEGMENTS -> DONE, failing fast into InputTooLarge or
// InvalidFormat, and never emitting partial output on failure.
func (p *Pipeline) Sanitize(content string, f sanitize.Format) (sanitize.Result, error) {
	if len(content) > p.config.MaxInputCharacters {
		return sanitize.Result{}, sanitize.NewError(sanitize.InputTooLarge, "content exceeds max_input_characters")
	}

	parser, err := format.New(f)
	if err != nil {
		return sanitize.Result{}, err
	}

	doc, err := parser.Parse(content)
	if err != nil {
		return sanitize.Result{}, err
	}

	segments := doc.Segments()
	maskedSegments := make([]string, len(segments))
	rehydration := make(sanitize.RehydrationMap)

	for i, segment := range segments {
		masked, segMap := p.sanitizeSegment(segment)
		maskedSegments[i] = masked
		rehydration.Merge(segMap)
	}

	sanitized, err := doc.Reconstruct(maskedSegments)
	if err != nil {
		return sanitize.Result{}, err
	}

	return sanitize.Result{Sanitized: sanitized, Map: rehydration}, nil
}

// sanitizeSegment runs detection, whitelisting, conflict resolution, and
// synthesis over one text segment (SEGMENTED -> ... -> MASKED_SEGMENTS).
func (p *Pipeline) sanitizeSegment(segment string) (string, sanitize.RehydrationMap) {
	var candidates []sanitize.Candidate

	if p.config.EnableRegex {
		candidates = append(candidates, p.regex.Detect(segment)...)
	}
	if p.config.EnableNER {
		candidates = append(candidates, p.nerDetector.Detect(segment, p.config.ConfidenceThreshold)...)
	}

	candidates = p.whitelist.Apply(candidates)
	spans := resolve.Resolve(candidates)

	return p.synth.Synthesize(segment, spans)
}

// Rehydrate implements §6.1's `rehydrate(sanitized, map, format)`. Format
// controls only optional post-processing; this implementation treats
// every format's post-processing as identity, per §6.1's stated default.
func (p *Pipeline) Rehydrate(sanitized string, rehydrationMap sanitize.RehydrationMap, f sanitize.Format) (string, error) {
	if err := sanitize.ValidateFormat(f); err != nil {
		return "", err
	}
	return p.rehydrator.Rehydrate(sanitized, rehydrationMap, p.config.PlaceholderPrefix, p.config.PlaceholderSuffix)
}
