package topology

import (
	"errors"
	"fmt"
	"strings"

	"muxgen/internal/diag"
)

// ErrMalformed is the sentinel for structurally invalid topologies. Errors
// returned by Validate wrap it; the precise findings live in the Bag.
var ErrMalformed = errors.New("malformed topology")

// Validate checks the structural invariants of the model and appends one
// diagnostic per violation. It never stops at the first problem: a failing
// run should surface every defect the input has. Returns an error wrapping
// ErrMalformed when any error-severity diagnostic was added.
func Validate(m *Model, bag *diag.Bag) error {
	seenDomains := make(map[string]string) // lower name -> original name
	for i := range m.Domains() {
		d := &m.Domains()[i]
		validateDomain(d, bag)

		lower := strings.ToLower(d.Name)
		if first, ok := seenDomains[lower]; ok {
			bag.Add(diag.NewError(diag.TopDuplicateDomain, d.Name,
				fmt.Sprintf("domain name %q already used", d.Name)).
				WithNote(first, "first declared here"))
			continue
		}
		seenDomains[lower] = d.Name
	}

	if bag.HasErrors() {
		return fmt.Errorf("topology %q: %w", m.Name(), ErrMalformed)
	}
	return nil
}

func validateDomain(d *Domain, bag *diag.Bag) {
	if !isIdent(d.Name) {
		bag.Add(diag.NewError(diag.TopBadName, d.Name,
			fmt.Sprintf("domain name %q is not a valid identifier", d.Name)))
	}
	if d.Category != "" && !isIdent(d.Category) {
		bag.Add(diag.NewError(diag.TopBadName, d.Name,
			fmt.Sprintf("domain category %q is not a valid identifier", d.Category)))
	}
	if d.Width == 0 || d.Width > 64 {
		bag.Add(diag.NewError(diag.TopBadWidth, d.Name,
			fmt.Sprintf("bit width must be in 1..64, got %d", d.Width)))
		return
	}
	if len(d.Members) == 0 {
		bag.Add(diag.NewError(diag.TopEmptyDomain, d.Name, "domain has no members"))
		return
	}
	if d.Base > d.MaxEncoding() {
		bag.Add(diag.NewError(diag.TopBadBase, d.Name,
			fmt.Sprintf("base %d does not fit in %d bits", d.Base, d.Width)))
		return
	}

	seenNames := make(map[string]string)  // lower name -> subject of first use
	seenValues := make(map[uint64]string) // encoding -> subject of first use
	for i := range d.Members {
		mem := &d.Members[i]
		subject := d.Name + "." + mem.Name

		if !isIdent(mem.Name) {
			bag.Add(diag.NewError(diag.TopBadName, subject,
				fmt.Sprintf("member name %q is not a valid identifier", mem.Name)))
		}

		// Uniqueness is case-insensitive: names that differ only in case
		// would collapse to one constant after normalization anyway.
		lower := strings.ToLower(mem.Name)
		if first, ok := seenNames[lower]; ok {
			bag.Add(diag.NewError(diag.TopDuplicateMember, subject,
				fmt.Sprintf("member name %q already used in domain %q", mem.Name, d.Name)).
				WithNote(first, "first declared here"))
		} else {
			seenNames[lower] = subject
		}

		if mem.Value > d.MaxEncoding() {
			bag.Add(diag.NewError(diag.TopEncodingOverflow, subject,
				fmt.Sprintf("encoding %d does not fit in %d bits", mem.Value, d.Width)))
			continue
		}
		if first, ok := seenValues[mem.Value]; ok {
			bag.Add(diag.NewError(diag.TopDuplicateEncoding, subject,
				fmt.Sprintf("encoding %d already used in domain %q", mem.Value, d.Name)).
				WithNote(first, "first assigned here"))
		} else {
			seenValues[mem.Value] = subject
		}
	}

	validateContiguity(d, seenValues, bag)
}

// validateContiguity requires member encodings to cover base..base+n-1 with
// no holes. Members may appear in any order; only the covered set matters.
func validateContiguity(d *Domain, seenValues map[uint64]string, bag *diag.Bag) {
	if len(seenValues) != len(d.Members) {
		// Duplicates or overflows already reported; a hole check on top of
		// those would only repeat the same defect.
		return
	}
	for offset := uint64(0); offset < uint64(len(d.Members)); offset++ {
		want := d.Base + offset
		if _, ok := seenValues[want]; !ok {
			bag.Add(diag.NewError(diag.TopNonContiguous, d.Name,
				fmt.Sprintf("encodings must be contiguous from base %d: missing %d", d.Base, want)))
			return
		}
	}
}

// isIdent reports whether s is usable as an identifier fragment: it must
// start with a letter or underscore and continue with letters, digits,
// underscores, or dashes (dashes are normalized away by the namer).
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
