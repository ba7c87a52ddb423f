package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"muxgen/internal/topology"
)

// Current schema version - increment when snapshotPayload format changes.
const snapshotSchemaVersion uint16 = 1

// ErrSnapshotSchema indicates a snapshot written by an incompatible version.
var ErrSnapshotSchema = errors.New("unsupported snapshot schema")

type snapshotMember struct {
	Name  string
	Value uint64
	Doc   string
}

type snapshotDomain struct {
	Name     string
	Category string
	Width    uint8
	Base     uint64
	External string
	Doc      string
	Members  []snapshotMember
}

// snapshotPayload is the on-disk form of a validated model. Downstream tools
// that want the model rather than the emitted text decode this; the
// generator itself never reads a snapshot back during generation.
type snapshotPayload struct {
	Schema  uint16
	Name    string
	Domains []snapshotDomain
}

// WriteSnapshot serializes a validated model to path atomically.
func WriteSnapshot(path string, m *topology.Model) error {
	payload := modelToSnapshot(m)

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".muxgen-snap-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmp := f.Name()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot back into a model. The schema version must
// match exactly; a mismatch means the snapshot predates a format change and
// must be regenerated, not migrated.
func ReadSnapshot(path string) (*topology.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var payload snapshotPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%s: schema %d: %w", path, payload.Schema, ErrSnapshotSchema)
	}
	return snapshotToModel(&payload), nil
}

func modelToSnapshot(m *topology.Model) *snapshotPayload {
	payload := &snapshotPayload{
		Schema:  snapshotSchemaVersion,
		Name:    m.Name(),
		Domains: make([]snapshotDomain, 0, m.Len()),
	}
	for _, d := range m.Domains() {
		sd := snapshotDomain{
			Name:     d.Name,
			Category: d.Category,
			Width:    d.Width,
			Base:     d.Base,
			External: d.External,
			Doc:      d.Doc,
			Members:  make([]snapshotMember, 0, len(d.Members)),
		}
		for _, mem := range d.Members {
			sd.Members = append(sd.Members, snapshotMember{
				Name:  mem.Name,
				Value: mem.Value,
				Doc:   mem.Doc,
			})
		}
		payload.Domains = append(payload.Domains, sd)
	}
	return payload
}

func snapshotToModel(payload *snapshotPayload) *topology.Model {
	domains := make([]topology.Domain, 0, len(payload.Domains))
	for _, sd := range payload.Domains {
		d := topology.Domain{
			Name:     sd.Name,
			Category: sd.Category,
			Width:    sd.Width,
			Base:     sd.Base,
			External: sd.External,
			Doc:      sd.Doc,
			Members:  make([]topology.Member, 0, len(sd.Members)),
		}
		for _, sm := range sd.Members {
			d.Members = append(d.Members, topology.Member{
				Name:  sm.Name,
				Value: sm.Value,
				Doc:   sm.Doc,
			})
		}
		domains = append(domains, d)
	}
	return topology.NewModel(payload.Name, domains)
}
