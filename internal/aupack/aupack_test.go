package aupack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTFN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"valid TFN", "123456782", true},
		{"valid TFN with spaces", "123 456 782", true},
		{"valid TFN with dashes", "123-456-782", true},
		{"valid TFN - second example", "876543210", true},
		{"invalid checksum", "123456789", false},
		{"too short", "12345678", false},
		{"too long", "1234567890", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validTFN(tt.value))
		})
	}
}

func TestValidABN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"valid ABN - Telstra", "33051775556", true},
		{"valid ABN with spaces", "33 051 775 556", true},
		{"valid ABN - Commonwealth Bank", "48123123124", true},
		{"valid ABN - Woolworths", "88000014675", true},
		{"invalid checksum", "12345678901", false},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validABN(tt.value))
		})
	}
}

func TestValidMedicare(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"valid Medicare", "2123456701", true},
		{"valid Medicare with IRN", "2123456701/1", true},
		{"valid Medicare with spaces", "2123 45670 1", true},
		{"leading digit out of range (1)", "1123456701", false},
		{"leading digit out of range (7)", "7123456701", false},
		{"bad checksum", "2123456789", false},
		{"too short", "212345670", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validMedicare(tt.value))
		})
	}
}

func TestValidBSB(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"valid BSB", "062-000", true},
		{"valid BSB no dash", "062000", true},
		{"valid BSB - another bank", "013-006", true},
		{"state digit too low", "060-000", false},
		{"state digit too low (1)", "061-000", false},
		{"too short", "06200", false},
		{"contains letters", "06A-000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validBSB(tt.value))
		})
	}
}

func TestValidACN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"valid ACN", "004028077", true},
		{"valid ACN with spaces", "004 028 077", true},
		{"valid ACN - another", "009661901", true},
		{"bad checksum", "004028078", false},
		{"too short", "00402807", false},
		{"too long", "0040280771", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validACN(tt.value))
		})
	}
}

func TestPatternsCoversAllFiveKinds(t *testing.T) {
	patterns := Patterns()
	assert.Len(t, patterns, 5)

	names := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		names[string(p.Name)] = true
		assert.NotNil(t, p.Validator)
		assert.NotNil(t, p.Regex)
	}

	for _, want := range []string{"AU_TFN", "AU_ABN", "AU_MEDICARE", "AU_BSB", "AU_ACN"} {
		assert.True(t, names[want], "missing pattern %s", want)
	}
}
