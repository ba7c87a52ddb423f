package topology

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleTopology = `
[topology]
name = "earlgrey"

[emit]
include_unknown_sentinel = true

[[domain]]
name = "pad_direct"
width = 6
external = "pinmux_pad_t"
doc = "Direct pad selects."

[[domain.member]]
name = "usb_dp"
value = 0
doc = "USB D+"

[[domain.member]]
name = "usb_dn"
value = 1

[[domain]]
name = "mio_insel"
category = "pinmux"
width = 8
base = 2
external = "pinmux_insel_t"

[[domain.member]]
name = "gpio0"
value = 2

[[domain.member]]
name = "gpio1"
value = 3
`

func writeTopologyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mux.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadSampleTopology(t *testing.T) {
	path := writeTopologyFile(t, sampleTopology)
	m, opts, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m.Name() != "earlgrey" {
		t.Fatalf("expected topology name earlgrey, got %q", m.Name())
	}
	if !opts.IncludeUnknownSentinel {
		t.Fatalf("expected include_unknown_sentinel to be set")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 domains, got %d", m.Len())
	}

	pad := m.Domains()[0]
	if pad.Name != "pad_direct" || pad.Width != 6 || pad.External != "pinmux_pad_t" {
		t.Fatalf("unexpected first domain: %+v", pad)
	}
	if len(pad.Members) != 2 || pad.Members[0].Name != "usb_dp" || pad.Members[0].Doc != "USB D+" {
		t.Fatalf("unexpected members: %+v", pad.Members)
	}

	insel := m.Domains()[1]
	if insel.Category != "pinmux" || insel.Base != 2 {
		t.Fatalf("unexpected second domain: %+v", insel)
	}
}

func TestLoadMissingTopologySection(t *testing.T) {
	path := writeTopologyFile(t, `[[domain]]
name = "pad"
width = 4
`)
	_, _, err := Load(path)
	if !errors.Is(err, ErrTopologySectionMissing) {
		t.Fatalf("expected ErrTopologySectionMissing, got: %v", err)
	}
}

func TestLoadMissingName(t *testing.T) {
	path := writeTopologyFile(t, "[topology]\n")
	_, _, err := Load(path)
	if !errors.Is(err, ErrTopologyNameMissing) {
		t.Fatalf("expected ErrTopologyNameMissing, got: %v", err)
	}
}

func TestLoadRejectsNegativeValue(t *testing.T) {
	path := writeTopologyFile(t, `
[topology]
name = "t"

[[domain]]
name = "pad"
width = 4
external = "pad_t"

[[domain.member]]
name = "a"
value = -1
`)
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected error for negative encoding")
	}
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeTopologyFile(t, "[topology\nname=")
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected TOML syntax error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.mux.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
