package format

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParseYieldsStringLeavesOnly(t *testing.T) {
	p := JSONParser{}
	doc, err := p.Parse(`{"name":"Jane","age":30,"active":true,"email":"jane@x.com"}`)
	require.NoError(t, err)

	segments := doc.Segments()
	assert.ElementsMatch(t, []string{"Jane", "jane@x.com"}, segments)
}

func TestJSONRoundTripUnchangedSegments(t *testing.T) {
	p := JSONParser{}
	input := `{"name":"Jane","email":"jane@x.com","tags":["a","b"]}`
	doc, err := p.Parse(input)
	require.NoError(t, err)

	out, err := doc.Reconstruct(doc.Segments())
	require.NoError(t, err)

	var original, restored interface{}
	require.NoError(t, json.Unmarshal([]byte(input), &original))
	require.NoError(t, json.Unmarshal([]byte(out), &restored))
	assert.Equal(t, original, restored)
}

func TestJSONReplaceEmailLeavesNameAlone(t *testing.T) {
	p := JSONParser{}
	doc, err := p.Parse(`{"name":"Jane","email":"jane@x.com"}`)
	require.NoError(t, err)

	segments := doc.Segments()
	replacements := make([]string, len(segments))
	for i, s := range segments {
		if s == "jane@x.com" {
			replacements[i] = "<<EMAIL_deadbeef>>"
		} else {
			replacements[i] = s
		}
	}

	out, err := doc.Reconstruct(replacements)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Jane", result["name"])
	assert.Equal(t, "<<EMAIL_deadbeef>>", result["email"])
}

func TestJSONInvalidFormat(t *testing.T) {
	p := JSONParser{}
	_, err := p.Parse(`{not valid json`)
	assert.Error(t, err)
}
