package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRoundTripUnchangedSegments(t *testing.T) {
	p := HTMLParser{}
	input := `<p>Contact <b>John</b> at john@example.com today</p>`
	doc, err := p.Parse(input)
	require.NoError(t, err)

	out, err := doc.Reconstruct(doc.Segments())
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestHTMLPreservesTagsWhenMaskingText(t *testing.T) {
	p := HTMLParser{}
	input := `<p>Contact <b>John</b> at john@example.com today</p>`
	doc, err := p.Parse(input)
	require.NoError(t, err)

	segments := doc.Segments()
	replacements := make([]string, len(segments))
	for i, s := range segments {
		replacements[i] = strings.ReplaceAll(s, "john@example.com", "<<EMAIL_deadbeef>>")
	}

	out, err := doc.Reconstruct(replacements)
	require.NoError(t, err)
	assert.Equal(t, `<p>Contact <b>John</b> at <<EMAIL_deadbeef>> today</p>`, out)
}

func TestHTMLAttributesNeverMasked(t *testing.T) {
	p := HTMLParser{}
	input := `<a href="mailto:jane@example.com">contact</a>`
	doc, err := p.Parse(input)
	require.NoError(t, err)

	assert.NotContains(t, doc.Segments(), "mailto:jane@example.com")

	out, err := doc.Reconstruct(doc.Segments())
	require.NoError(t, err)
	assert.Equal(t, input, out)
}
