package namer

import (
	"errors"
	"fmt"

	"muxgen/internal/diag"
	"muxgen/internal/topology"
)

// ErrNameCollision is the sentinel for normalization collisions. Errors
// returned by Check wrap it; the colliding pairs live in the Bag.
var ErrNameCollision = errors.New("name collision")

// Check verifies that canonical-name derivation stays injective over the
// whole emission: no two (domain, member) pairs may share a value name, and
// no two domains may share a type name. Collisions are detected here,
// eagerly, before any emission happens.
func Check(m *topology.Model, bag *diag.Bag) error {
	seenTypes := make(map[string]string)  // type name -> first domain
	seenValues := make(map[string]string) // value name -> first subject
	for i := range m.Domains() {
		d := &m.Domains()[i]

		tn := DomainName(d).Type
		if tn == "Type" {
			bag.Add(diag.NewError(diag.NamEmptyName, d.Name,
				fmt.Sprintf("domain %q normalizes to an empty type name", d.Name)))
		} else if first, ok := seenTypes[tn]; ok {
			bag.Add(diag.NewError(diag.NamTypeCollision, d.Name,
				fmt.Sprintf("type name %q collides with domain %q", tn, first)).
				WithNote(first, "first derived here"))
		} else {
			seenTypes[tn] = d.Name
		}

		// The synthetic constants occupy slots in the same namespace, so a
		// member literally named "count" or "unknown" must be rejected too.
		reserve(seenValues, CountName(d), d.Name+".<count>", bag)
		reserve(seenValues, UnknownName(d), d.Name+".<unknown>", bag)

		for j := range d.Members {
			mem := &d.Members[j]
			subject := d.Name + "." + mem.Name
			vn := MemberName(d, mem).Value
			if vn == "" {
				bag.Add(diag.NewError(diag.NamEmptyName, subject,
					fmt.Sprintf("member %q normalizes to an empty value name", mem.Name)))
				continue
			}
			if first, ok := seenValues[vn]; ok {
				// Both offenders are named: the subject carries the second,
				// the note carries the first.
				bag.Add(diag.NewError(diag.NamValueCollision, subject,
					fmt.Sprintf("value name %q collides with %q", vn, first)).
					WithNote(first, "first derived here"))
				continue
			}
			seenValues[vn] = subject
		}
	}

	if bag.HasErrors() {
		return fmt.Errorf("model %q: %w", m.Name(), ErrNameCollision)
	}
	return nil
}

func reserve(seen map[string]string, name, subject string, bag *diag.Bag) {
	if first, ok := seen[name]; ok {
		bag.Add(diag.NewError(diag.NamValueCollision, subject,
			fmt.Sprintf("value name %q collides with %q", name, first)).
			WithNote(first, "first derived here"))
		return
	}
	seen[name] = subject
}
