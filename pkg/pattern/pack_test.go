package pattern

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func TestCompileValidSpec(t *testing.T) {
	p, err := Compile(Spec{
		Name:            "EMPLOYEE_ID",
		Regex:           `EMP-\d{6}`,
		ContextKeywords: []string{"employee"},
	})
	require.NoError(t, err)
	assert.Equal(t, sanitize.EntityKind("EMPLOYEE_ID"), p.Name)
	assert.Equal(t, 40, p.Window, "a window should be inferred when context keywords are present")
	assert.True(t, p.Regex.MatchString("EMP-123456"))
}

func TestCompileInvalidRegexFails(t *testing.T) {
	_, err := Compile(Spec{Name: "BAD", Regex: "("})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sanitize.Sentinel(sanitize.InvalidConfig)))
}

func TestCompileAllStopsAtFirstFailure(t *testing.T) {
	_, err := CompileAll([]Spec{
		{Name: "GOOD", Regex: `\d+`},
		{Name: "BAD", Regex: "("},
	})
	require.Error(t, err)
}

func TestLoadPackFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	contents := `
- name: EMPLOYEE_ID
  regex: 'EMP-\d{6}'
  context_keywords: ["employee", "staff id"]
- name: TICKET_ID
  regex: 'TICK-\d{4}'
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	patterns, err := LoadPackFile(path)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, sanitize.EntityKind("EMPLOYEE_ID"), patterns[0].Name)
	assert.Equal(t, sanitize.EntityKind("TICKET_ID"), patterns[1].Name)
}

func TestLoadPackFileMissingFile(t *testing.T) {
	_, err := LoadPackFile("/nonexistent/pack.yaml")
	require.Error(t, err)
}

func TestLoadPackFileMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o600))

	_, err := LoadPackFile(path)
	require.Error(t, err)
}
