package tokenfind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultRules(t *testing.T) {
	reg, err := NewRegistryFromRules(DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, []Type{"number", "email", "ip", "date"}, reg.Types())

	m, err := SelectByType("ping 10.0.0.1 twice", reg, "ip", 1)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "10.0.0.1", m.Text)
}

func TestLoadRulesFile(t *testing.T) {
	path := writeRulesFile(t, `
tokens:
  - type: ip
    pattern: '\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b'
  - type: email
    pattern: '\b[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}\b'
highlight: false
verbose: true
`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)

	assert.False(t, rules.Highlight)
	assert.True(t, rules.Verbose)
	require.Len(t, rules.Tokens, 2)
	assert.Equal(t, "ip", rules.Tokens[0].Type)
	assert.Equal(t, "email", rules.Tokens[1].Type)

	// File order becomes registration order.
	reg, err := NewRegistryFromRules(rules)
	require.NoError(t, err)
	assert.Equal(t, []Type{"ip", "email"}, reg.Types())
}

func TestLoadRulesFileMissing(t *testing.T) {
	_, err := LoadRulesFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rules file")
}

func TestLoadRulesFileBadYAML(t *testing.T) {
	path := writeRulesFile(t, "tokens: [unclosed\n")

	_, err := LoadRulesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestApplyBadPattern(t *testing.T) {
	rules := &RulesFile{
		Tokens: []TokenRule{
			{Type: "number", Pattern: `[0-9]+`},
			{Type: "broken", Pattern: `[`},
		},
	}

	reg := NewRegistry()
	err := rules.Apply(reg)

	var patErr *PatternError
	require.ErrorAs(t, err, &patErr)
	assert.Equal(t, Type("broken"), patErr.Type)

	// Rules before the failure stay registered.
	assert.Equal(t, []Type{"number"}, reg.Types())
}

func TestApplyMissingTypeName(t *testing.T) {
	rules := &RulesFile{
		Tokens: []TokenRule{{Pattern: `[0-9]+`}},
	}

	err := rules.Apply(NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing type name")
}
