package placeholder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func TestRehydrateRoundTrip(t *testing.T) {
	s := New("<<", ">>")
	segment := "Contact john@test.com now"
	candidates := []sanitize.Candidate{
		{Kind: sanitize.KindEmail, Text: "john@test.com", Start: 8, End: 21},
	}

	masked, m := s.Synthesize(segment, candidates)

	r := NewRehydrator()
	restored, err := r.Rehydrate(masked, m, "<<", ">>")
	require.NoError(t, err)
	assert.Equal(t, segment, restored)
}

func TestRehydratePrefixSafeOrdering(t *testing.T) {
	r := NewRehydrator()
	m := sanitize.RehydrationMap{
		"<<EMAIL_abc123>>":   "short@x.com",
		"<<EMAIL_abc123de>>": "long@example.com",
	}

	restored, err := r.Rehydrate("see <<EMAIL_abc123de>> and <<EMAIL_abc123>>", m, "<<", ">>")
	require.NoError(t, err)
	assert.Equal(t, "see long@example.com and short@x.com", restored)
}

func TestRehydrateMalformedMap(t *testing.T) {
	r := NewRehydrator()
	m := sanitize.RehydrationMap{"not-a-placeholder": "oops"}

	_, err := r.Rehydrate("whatever", m, "<<", ">>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sanitize.Sentinel(sanitize.MalformedMap)))
}
