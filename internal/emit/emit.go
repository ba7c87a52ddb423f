// Package emit renders a validated topology model to source text. Output is
// byte-deterministic: domains and members are rendered in model order, and
// nothing time- or environment-dependent ever reaches the buffer. Build
// systems diff the generated text to detect unintended changes, so identical
// models must render identically on every run.
package emit

import (
	"bytes"
	"fmt"

	"muxgen/internal/alias"
	"muxgen/internal/namer"
	"muxgen/internal/topology"
)

// Options controls emission. The zero value is the default rendering.
type Options struct {
	// IncludeUnknownSentinel appends an UNKNOWN constant one encoding slot
	// past the last member. The sentinel is excluded from the COUNT
	// constant, which always equals the number of real members.
	IncludeUnknownSentinel bool
}

// Emitter renders one model. State is scoped to a single Emit call chain and
// discarded afterwards; an Emitter is not reused across runs.
type Emitter struct {
	model *topology.Model
	opts  Options
	buf   bytes.Buffer
}

func New(model *topology.Model, opts Options) *Emitter {
	return &Emitter{model: model, opts: opts}
}

// Emit renders every domain block in model order followed by the alias
// block. The alias entries must come from the same model; they are rendered
// last so alias declarations reference already-emitted types.
func (e *Emitter) Emit(aliases []alias.Entry) ([]byte, error) {
	e.buf.Reset()
	e.emitHeader()
	for i := range e.model.Domains() {
		if err := e.emitDomain(&e.model.Domains()[i]); err != nil {
			return nil, err
		}
	}
	alias.Render(&e.buf, aliases)
	return bytes.Clone(e.buf.Bytes()), nil
}

func (e *Emitter) emitHeader() {
	fmt.Fprintf(&e.buf, "// Generated from topology %q. Do not edit by hand.\n", e.model.Name())
}

func (e *Emitter) emitDomain(d *topology.Domain) error {
	name := namer.DomainName(d)

	e.buf.WriteByte('\n')
	if d.Doc != "" {
		fmt.Fprintf(&e.buf, "// %s\n", d.Doc)
	}
	fmt.Fprintf(&e.buf, "typedef enum {\n")

	for i := range d.Members {
		mem := &d.Members[i]
		fmt.Fprintf(&e.buf, "  %s = %d,", namer.MemberName(d, mem).Value, mem.Value)
		if mem.Doc != "" {
			fmt.Fprintf(&e.buf, " // %s", mem.Doc)
		}
		e.buf.WriteByte('\n')
	}

	count := uint64(len(d.Members))
	if e.opts.IncludeUnknownSentinel {
		// One past the last contiguous slot. It still has to fit the
		// declared width; the count constant below never includes it.
		sentinel := d.Base + count
		if sentinel > d.MaxEncoding() || sentinel < d.Base {
			return fmt.Errorf("domain %q: unknown sentinel %d does not fit in %d bits", d.Name, sentinel, d.Width)
		}
		fmt.Fprintf(&e.buf, "  %s = %d,\n", namer.UnknownName(d), sentinel)
	}
	fmt.Fprintf(&e.buf, "  %s = %d,\n", namer.CountName(d), count)

	fmt.Fprintf(&e.buf, "} %s;\n", name.Type)
	return nil
}
