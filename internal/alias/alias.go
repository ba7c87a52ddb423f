// Package alias builds the flattened table binding each domain's generated
// type name to the fixed name an external fixed-layout serialization format
// expects. Entries are created once per domain during the resolver pass and
// never mutated afterwards.
package alias

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"muxgen/internal/diag"
	"muxgen/internal/namer"
	"muxgen/internal/topology"
)

// Entry binds one domain's generated type to its externally mandated name.
type Entry struct {
	External string // fixed name the foreign layer expects, e.g. pinmux_pad_t
	Type     string // generated type name, e.g. PadDirectType
	Domain   string // originating domain, for error reporting only
}

// ErrUnresolved is the sentinel for alias-resolution failures. Errors
// returned by Resolve wrap it; the findings live in the Bag.
var ErrUnresolved = errors.New("unresolved alias")

// Resolve builds exactly one Entry per domain, in model order. Resolution is
// total: a domain without an external name, or two domains claiming the same
// external name, is a hard error, never a skip.
func Resolve(m *topology.Model, bag *diag.Bag) ([]Entry, error) {
	entries := make([]Entry, 0, m.Len())
	seen := make(map[string]string) // external name -> first domain
	for i := range m.Domains() {
		d := &m.Domains()[i]
		external := strings.TrimSpace(d.External)
		switch {
		case external == "":
			bag.Add(diag.NewError(diag.AlsMissingExternal, d.Name,
				fmt.Sprintf("domain %q has no external name mapping", d.Name)))
			continue
		case !isExternalIdent(external):
			bag.Add(diag.NewError(diag.AlsBadExternal, d.Name,
				fmt.Sprintf("external name %q is not a valid identifier", external)))
			continue
		}
		if first, ok := seen[external]; ok {
			bag.Add(diag.NewError(diag.AlsDuplicateExternal, d.Name,
				fmt.Sprintf("external name %q already mapped by domain %q", external, first)).
				WithNote(first, "first mapped here"))
			continue
		}
		seen[external] = d.Name
		entries = append(entries, Entry{
			External: external,
			Type:     namer.DomainName(d).Type,
			Domain:   d.Name,
		})
	}

	if bag.HasErrors() {
		return nil, fmt.Errorf("model %q: %w", m.Name(), ErrUnresolved)
	}
	return entries, nil
}

// Render writes the alias block in entry order. Entries keep model order, so
// the rendered block is deterministic by construction.
func Render(w io.Writer, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "\n// External fixed-name aliases.\n")
	for _, e := range entries {
		fmt.Fprintf(w, "typedef %s %s;\n", e.Type, e.External)
	}
}

// isExternalIdent accepts C-style identifiers: the external names come from
// a foreign convention and are emitted verbatim, so no normalization applies.
func isExternalIdent(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}
