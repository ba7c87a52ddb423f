package testkit

import (
	"fmt"
	"strings"

	"muxgen/internal/topology"
)

// CheckModelInvariants runs a minimal set of structural invariants on a
// model that is expected to be valid:
// 1) every domain has at least one member and a width in 1..64
// 2) member names are unique within a domain (case-insensitive)
// 3) member encodings are unique, fit the width, and cover base..base+n-1
func CheckModelInvariants(m *topology.Model) error {
	if m == nil {
		return fmt.Errorf("nil model")
	}
	for _, d := range m.Domains() {
		if len(d.Members) == 0 {
			return fmt.Errorf("domain %q has no members", d.Name)
		}
		if d.Width == 0 || d.Width > 64 {
			return fmt.Errorf("domain %q has width %d outside 1..64", d.Name, d.Width)
		}

		names := make(map[string]bool, len(d.Members))
		values := make(map[uint64]bool, len(d.Members))
		for _, mem := range d.Members {
			lower := strings.ToLower(mem.Name)
			if names[lower] {
				return fmt.Errorf("domain %q: duplicate member name %q", d.Name, mem.Name)
			}
			names[lower] = true
			if mem.Value > d.MaxEncoding() {
				return fmt.Errorf("domain %q: member %q encoding %d exceeds %d bits",
					d.Name, mem.Name, mem.Value, d.Width)
			}
			if values[mem.Value] {
				return fmt.Errorf("domain %q: duplicate encoding %d", d.Name, mem.Value)
			}
			values[mem.Value] = true
		}

		for offset := uint64(0); offset < uint64(len(d.Members)); offset++ {
			if !values[d.Base+offset] {
				return fmt.Errorf("domain %q: encodings not contiguous, missing %d",
					d.Name, d.Base+offset)
			}
		}
	}
	return nil
}
