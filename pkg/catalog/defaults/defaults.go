// Package defaults carries the baked-in remediation playbooks.
package defaults

import _ "embed"

//go:embed playbooks.yaml
var playbooks []byte

// Playbooks returns the embedded default catalog source.
func Playbooks() []byte {
	out := make([]byte, len(playbooks))
	copy(out, playbooks)
	return out
}
