// Package namer derives canonical identifiers from domain/member pairs.
//
// Derivation is pure: no counters, no caches, no global state. The foreign
// serialization layer resolves emitted names across regenerations, so equal
// inputs must always produce byte-equal names.
package namer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention selects a target-language identifier casing.
type Convention uint8

const (
	// SnakeUpper renders PAD_DIRECT_USB_DP, the value-name convention.
	SnakeUpper Convention = iota
	// SnakeLower renders pad_direct_usb_dp, the short-name convention.
	SnakeLower
	// UpperCamel renders PadDirectUsbDp, the type-name convention.
	UpperCamel
)

func (c Convention) String() string {
	switch c {
	case SnakeUpper:
		return "snake-upper"
	case SnakeLower:
		return "snake-lower"
	case UpperCamel:
		return "upper-camel"
	}
	return "unknown"
}

// CanonicalName is the derived identifier triple for a domain or one of its
// members.
type CanonicalName struct {
	Short string // pad_direct_usb_dp
	Type  string // PadDirectType
	Value string // PAD_DIRECT_USB_DP
}

// Format renders the given name parts under one casing convention. Parts are
// split on underscores, dashes, and spaces; empty fragments collapse, so
// "usb__dp" and "usb_dp" render identically (the collision check exists for
// exactly that reason).
func Format(conv Convention, parts ...string) string {
	ws := words(parts)
	switch conv {
	case SnakeUpper:
		return strings.ToUpper(strings.Join(ws, "_"))
	case SnakeLower:
		return strings.Join(ws, "_")
	case UpperCamel:
		caser := cases.Title(language.Und)
		var b strings.Builder
		for _, w := range ws {
			b.WriteString(caser.String(w))
		}
		return b.String()
	}
	return strings.Join(ws, "_")
}

func words(parts []string) []string {
	var ws []string
	for _, part := range parts {
		for _, w := range strings.FieldsFunc(part, isSeparator) {
			ws = append(ws, strings.ToLower(w))
		}
	}
	return ws
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
