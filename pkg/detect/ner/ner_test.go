package ner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

type fakeTagger struct {
	tags []Tag
	err  error
	panicOnTag bool
}

func (f fakeTagger) Tag(text string) ([]Tag, error) {
	if f.panicOnTag {
		panic("boom")
	}
	return f.tags, f.err
}

func TestDetectFiltersByConfidenceAndLabel(t *testing.T) {
	tagger := fakeTagger{tags: []Tag{
		{Label: "PER", Word: "John", Start: 0, End: 4, Score: 0.95},
		{Label: "PER", Word: "low", Start: 10, End: 13, Score: 0.2},
		{Label: "MISC", Word: "ignored", Start: 20, End: 27, Score: 0.99},
	}}
	d := New(tagger)

	segment := "John works at low ignored place"
	candidates := d.Detect(segment, 0.8)

	require.Len(t, candidates, 1)
	assert.Equal(t, sanitize.KindPerson, candidates[0].Kind)
}

func TestDetectDegradesOnError(t *testing.T) {
	tagger := fakeTagger{err: errors.New("model unavailable")}
	d := New(tagger)
	assert.Empty(t, d.Detect("some text", 0.5))
}

func TestDetectRecoversFromPanic(t *testing.T) {
	tagger := fakeTagger{panicOnTag: true}
	d := New(tagger)
	assert.NotPanics(t, func() {
		assert.Empty(t, d.Detect("some text", 0.5))
	})
}

func TestDetectMergesAdjacentSameKind(t *testing.T) {
	tagger := fakeTagger{tags: []Tag{
		{Label: "ORG", Word: "Acme", Start: 0, End: 4, Score: 0.8},
		{Label: "ORG", Word: "Corp", Start: 5, End: 9, Score: 0.9},
	}}
	d := New(tagger)

	candidates := d.Detect("Acme Corp", 0.5)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Acme Corp", candidates[0].Text)
	assert.Equal(t, float32(0.9), candidates[0].Confidence)
}

func TestDetectNilTagger(t *testing.T) {
	d := New(nil)
	assert.Empty(t, d.Detect("anything", 0.1))
}
