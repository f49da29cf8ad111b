package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRoundTrip(t *testing.T) {
	p := PlainParser{}
	doc, err := p.Parse("hello world")
	require.NoError(t, err)
	require.Equal(t, []string{"hello world"}, doc.Segments())

	out, err := doc.Reconstruct([]string{"hello world"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestPlainWrongSegmentCount(t *testing.T) {
	p := PlainParser{}
	doc, _ := p.Parse("hi")
	_, err := doc.Reconstruct([]string{"a", "b"})
	assert.Error(t, err)
}
