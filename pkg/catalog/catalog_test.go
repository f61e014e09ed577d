package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
power_loss:
  - check_mains
  - reset_breaker
overheat:
  - pause_line
  - top_up_coolant
`

func TestLoad(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		c, err := Load(strings.NewReader(sampleYAML))
		require.NoError(t, err)

		actions, err := c.ActionsFor("power_loss")
		require.NoError(t, err)
		assert.Equal(t, []ActionID{"check_mains", "reset_breaker"}, actions)
		assert.True(t, c.Has("overheat"))
	})

	t.Run("empty playbook", func(t *testing.T) {
		_, err := Load(strings.NewReader("power_loss: []\n"))
		require.ErrorIs(t, err, ErrEmptyPlaybook)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("power_loss: [unclosed\n"))
		require.Error(t, err)
	})

	t.Run("no playbooks", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playbooks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"overheat", "power_loss"}, c.Causes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// The embedded catalog must always carry the triage fallback
	assert.True(t, c.Has("unknown"))

	// Every shipped playbook is non-empty with non-empty steps
	for _, cause := range c.Causes() {
		actions, err := c.ActionsFor(cause)
		require.NoError(t, err)
		require.NotEmpty(t, actions, "cause %s", cause)
		for _, a := range actions {
			assert.NotEmpty(t, a, "cause %s", cause)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		playbooks map[string][]ActionID
	}{
		{"nil table", nil},
		{"empty cause", map[string][]ActionID{"": {"act"}}},
		{"empty playbook", map[string][]ActionID{"power_loss": {}}},
		{"empty action id", map[string][]ActionID{"power_loss": {"check_mains", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.playbooks)
			assert.Error(t, err)
		})
	}
}

func TestActionsFor(t *testing.T) {
	c, err := New(map[string][]ActionID{"power_loss": {"check_mains", "reset_breaker"}})
	require.NoError(t, err)

	t.Run("unknown cause", func(t *testing.T) {
		_, err := c.ActionsFor("ghost")
		require.ErrorIs(t, err, ErrUnknownCause)
	})

	t.Run("returns a copy", func(t *testing.T) {
		first, err := c.ActionsFor("power_loss")
		require.NoError(t, err)
		first[0] = "mutated"

		again, err := c.ActionsFor("power_loss")
		require.NoError(t, err)
		assert.Equal(t, ActionID("check_mains"), again[0])
	})
}

func TestCausesSorted(t *testing.T) {
	c, err := New(map[string][]ActionID{
		"zebra": {"z"},
		"alpha": {"a"},
		"mid":   {"m"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zebra"}, c.Causes())
}
