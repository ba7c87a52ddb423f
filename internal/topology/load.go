package topology

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// FileOptions captures the [emit] table of a topology file.
type FileOptions struct {
	IncludeUnknownSentinel bool `toml:"include_unknown_sentinel"`
}

var (
	// ErrTopologySectionMissing indicates that [topology] is missing.
	ErrTopologySectionMissing = errors.New("missing [topology]")
	// ErrTopologyNameMissing indicates that [topology].name is missing.
	ErrTopologyNameMissing = errors.New("missing [topology].name")
)

type fileMember struct {
	Name  string `toml:"name"`
	Value int64  `toml:"value"`
	Doc   string `toml:"doc"`
}

type fileDomain struct {
	Name     string       `toml:"name"`
	Category string       `toml:"category"`
	Width    int64        `toml:"width"`
	Base     int64        `toml:"base"`
	External string       `toml:"external"`
	Doc      string       `toml:"doc"`
	Members  []fileMember `toml:"member"`
}

type fileTopology struct {
	Topology struct {
		Name string `toml:"name"`
	} `toml:"topology"`
	Emit    FileOptions  `toml:"emit"`
	Domains []fileDomain `toml:"domain"`
}

// Load parses a *.mux.toml topology file into a Model. Only file-shape
// problems are reported here (unreadable file, TOML syntax, missing
// [topology] table, negative numerics); structural invariants are checked
// separately by Validate so that every violation is reported, not just the
// first one.
func Load(path string) (*Model, FileOptions, error) {
	var cfg fileTopology
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, FileOptions{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("topology") {
		return nil, FileOptions{}, fmt.Errorf("%s: %w", path, ErrTopologySectionMissing)
	}
	if cfg.Topology.Name == "" {
		return nil, FileOptions{}, fmt.Errorf("%s: %w", path, ErrTopologyNameMissing)
	}

	domains := make([]Domain, 0, len(cfg.Domains))
	for _, fd := range cfg.Domains {
		width, err := safecast.Conv[uint8](fd.Width)
		if err != nil {
			return nil, FileOptions{}, fmt.Errorf("%s: domain %q: width %d out of range: %w", path, fd.Name, fd.Width, err)
		}
		base, err := safecast.Conv[uint64](fd.Base)
		if err != nil {
			return nil, FileOptions{}, fmt.Errorf("%s: domain %q: base %d out of range: %w", path, fd.Name, fd.Base, err)
		}
		members := make([]Member, 0, len(fd.Members))
		for _, fm := range fd.Members {
			value, err := safecast.Conv[uint64](fm.Value)
			if err != nil {
				return nil, FileOptions{}, fmt.Errorf("%s: member %s.%s: value %d out of range: %w", path, fd.Name, fm.Name, fm.Value, err)
			}
			members = append(members, Member{
				Name:  fm.Name,
				Value: value,
				Doc:   fm.Doc,
			})
		}
		domains = append(domains, Domain{
			Name:     fd.Name,
			Category: fd.Category,
			Width:    width,
			Base:     base,
			External: fd.External,
			Doc:      fd.Doc,
			Members:  members,
		})
	}

	return NewModel(cfg.Topology.Name, domains), cfg.Emit, nil
}
