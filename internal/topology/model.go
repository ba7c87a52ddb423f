// Package topology holds the in-memory model of a hardware topology: an
// ordered sequence of closed enumerations (domains) whose members carry
// stable numeric encodings. The model is built once per generation run and
// treated as immutable afterwards; everything downstream (naming, emission,
// alias resolution) is derived from it fresh on every run.
package topology

import "math"

// Member is one named, numerically encoded entry of a Domain.
type Member struct {
	Name  string
	Value uint64
	Doc   string
}

// Domain is a closed enumeration of Members describing one aspect of the
// topology, e.g. the set of direct pads or the pin-mux input selectors.
type Domain struct {
	Name     string
	Category string // optional naming prefix shared by a group of domains
	Width    uint8  // encoding bit width, 1..64
	Base     uint64 // first encoding slot
	External string // fixed name expected by the foreign serialization layer
	Doc      string
	Members  []Member
}

// MaxEncoding returns the largest encoding representable in the domain's
// declared bit width.
func (d *Domain) MaxEncoding() uint64 {
	if d.Width >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << d.Width) - 1
}

// Model is the single source of truth for one generation run.
type Model struct {
	name    string
	domains []Domain
}

// NewModel builds a model over the given domains. The slice is copied so
// later mutation of the caller's slice cannot reach into the model.
func NewModel(name string, domains []Domain) *Model {
	copied := make([]Domain, len(domains))
	copy(copied, domains)
	for i := range copied {
		members := make([]Member, len(copied[i].Members))
		copy(members, copied[i].Members)
		copied[i].Members = members
	}
	return &Model{name: name, domains: copied}
}

// Name returns the topology name.
func (m *Model) Name() string {
	return m.name
}

// Domains returns the ordered domain sequence.
// Do not modify the returned slice: it aliases the model's internal array.
func (m *Model) Domains() []Domain {
	return m.domains
}

// Len returns the number of domains.
func (m *Model) Len() int {
	return len(m.domains)
}
