// Package catalog maps root-cause identifiers to ordered remediation
// playbooks. A catalog is loaded once, validated eagerly, and never mutated:
// any cause a rule can reach must already have a playbook, so lookups that
// miss are configuration errors rather than empty results.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"verdict/pkg/catalog/defaults"
)

// ActionID names one remediation step in a playbook.
type ActionID string

var (
	// ErrUnknownCause is returned when a cause has no playbook.
	ErrUnknownCause = errors.New("unknown cause")
	// ErrEmptyPlaybook marks a catalog entry with no actions.
	ErrEmptyPlaybook = errors.New("empty playbook")
)

// Catalog is a static cause-to-playbook table, immutable after load and safe
// for concurrent use.
type Catalog struct {
	playbooks map[string][]ActionID
}

// New builds a catalog from an in-memory table.
func New(playbooks map[string][]ActionID) (*Catalog, error) {
	if len(playbooks) == 0 {
		return nil, errors.New("catalog: no playbooks")
	}
	c := &Catalog{playbooks: make(map[string][]ActionID, len(playbooks))}
	for cause, actions := range playbooks {
		if cause == "" {
			return nil, errors.New("catalog: empty cause identifier")
		}
		if len(actions) == 0 {
			return nil, fmt.Errorf("catalog: %s: %w", cause, ErrEmptyPlaybook)
		}
		for i, a := range actions {
			if a == "" {
				return nil, fmt.Errorf("catalog: %s: action %d is empty", cause, i)
			}
		}
		cp := make([]ActionID, len(actions))
		copy(cp, actions)
		c.playbooks[cause] = cp
	}
	return c, nil
}

// Load parses a YAML catalog: a mapping from cause to action list.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	var raw map[string][]ActionID
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return New(raw)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded playbook catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaults.Playbooks()))
}

// ActionsFor returns the ordered playbook for a cause. An unknown cause is a
// configuration error, never a silent empty list.
func (c *Catalog) ActionsFor(cause string) ([]ActionID, error) {
	actions, ok := c.playbooks[cause]
	if !ok {
		return nil, fmt.Errorf("catalog: %s: %w", cause, ErrUnknownCause)
	}
	out := make([]ActionID, len(actions))
	copy(out, actions)
	return out, nil
}

// Has reports whether a cause has a playbook.
func (c *Catalog) Has(cause string) bool {
	_, ok := c.playbooks[cause]
	return ok
}

// Causes lists every known cause in ascending order.
func (c *Catalog) Causes() []string {
	out := make([]string, 0, len(c.playbooks))
	for cause := range c.playbooks {
		out = append(out, cause)
	}
	sort.Strings(out)
	return out
}
