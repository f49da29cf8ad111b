package regexdetect

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func newDetector() *Detector {
	return New(pattern.NewRegistry())
}

func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

func TestDetectEmptySegment(t *testing.T) {
	d := newDetector()
	require.Empty(t, d.Detect(""))
}

func TestDetectEmailAndPhone(t *testing.T) {
	d := newDetector()
	candidates := d.Detect("Contact John Doe at john.doe@example.com or 555-123-4567")

	var kinds []sanitize.EntityKind
	for _, c := range candidates {
		kinds = append(kinds, c.Kind)
		assert.Equal(t, float32(1.0), c.Confidence)
		assert.Equal(t, sanitize.SourceRegex, c.Source)
	}
	assert.Contains(t, kinds, sanitize.KindEmail)
	assert.Contains(t, kinds, sanitize.KindPhone)
}

func TestDetectRejectsInvalidLuhnCard(t *testing.T) {
	d := newDetector()
	candidates := d.Detect("Invalid card: 4111111111111112")

	for _, c := range candidates {
		assert.NotEqual(t, sanitize.KindCreditCard, c.Kind, "invalid Luhn checksum must not produce a CREDIT_CARD candidate")
	}
}

func TestDetectAcceptsValidLuhnCard(t *testing.T) {
	d := newDetector()
	candidates := d.Detect("Card on file: 4111111111111111")

	found := false
	for _, c := range candidates {
		if c.Kind == sanitize.KindCreditCard {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetectContextGatedPattern(t *testing.T) {
	registry := pattern.NewRegistry([]pattern.Pattern{
		{
			Name:            "EMPLOYEE_ID",
			Regex:           mustCompile(`\bE\d{4}\b`),
			ContextKeywords: []string{"employee"},
			Window:          20,
		},
	})
	d := New(registry)

	withContext := d.Detect("the employee record for E1234 is archived")
	assert.NotEmpty(t, withContext)

	withoutContext := d.Detect("serial number E1234 printed on the case")
	assert.Empty(t, withoutContext)
}
