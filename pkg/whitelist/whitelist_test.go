package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func TestApplyDropsWhitelistedCandidate(t *testing.T) {
	f := New([]string{"Acme Corp"})

	candidates := []sanitize.Candidate{
		{Kind: sanitize.KindOrganization, Text: "Acme Corp"},
		{Kind: sanitize.KindEmail, Text: "info@acme.com"},
	}

	out := f.Apply(candidates)
	assert.Len(t, out, 1)
	assert.Equal(t, sanitize.KindEmail, out[0].Kind)
}

func TestApplyIsCaseInsensitive(t *testing.T) {
	f := New([]string{"jane doe"})
	out := f.Apply([]sanitize.Candidate{{Kind: sanitize.KindPerson, Text: "JANE DOE"}})
	assert.Empty(t, out)
}

func TestApplyRequiresWordBoundary(t *testing.T) {
	f := New([]string{"ace"})
	out := f.Apply([]sanitize.Candidate{{Kind: sanitize.KindOrganization, Text: "Acement Inc"}})
	assert.Len(t, out, 1, "partial substring match inside a larger word must not whitelist")
}

func TestApplyNoWhitelistIsIdentity(t *testing.T) {
	f := New(nil)
	candidates := []sanitize.Candidate{{Kind: sanitize.KindEmail, Text: "a@b.com"}}
	assert.Equal(t, candidates, f.Apply(candidates))
}
