package namer

import (
	"muxgen/internal/topology"
)

// DomainName derives the canonical names of a domain itself: the short name,
// the generated type name, and the value-name stem shared by its members.
func DomainName(d *topology.Domain) CanonicalName {
	return CanonicalName{
		Short: Format(SnakeLower, d.Category, d.Name),
		Type:  Format(UpperCamel, d.Category, d.Name) + "Type",
		Value: Format(SnakeUpper, d.Category, d.Name),
	}
}

// MemberName derives the canonical names for one member of a domain.
func MemberName(d *topology.Domain, m *topology.Member) CanonicalName {
	return CanonicalName{
		Short: Format(SnakeLower, d.Category, d.Name, m.Name),
		Type:  Format(UpperCamel, d.Category, d.Name, m.Name),
		Value: Format(SnakeUpper, d.Category, d.Name, m.Name),
	}
}

// CountName derives the name of the synthetic count constant of a domain.
func CountName(d *topology.Domain) string {
	return Format(SnakeUpper, d.Category, d.Name, "count")
}

// UnknownName derives the name of the optional unknown sentinel constant.
func UnknownName(d *topology.Domain) string {
	return Format(SnakeUpper, d.Category, d.Name, "unknown")
}
