package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "pi-sanitizer")
}

func TestSanitizeCommandReadsStdinAndMasksEmail(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString("reach me at jane@example.com"))
	cmd.SetArgs([]string{"sanitize"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<<EMAIL_")
}
