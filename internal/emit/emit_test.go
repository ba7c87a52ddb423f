package emit

import (
	"bytes"
	"strings"
	"testing"

	"muxgen/internal/alias"
	"muxgen/internal/diag"
	"muxgen/internal/topology"
)

func sampleModel() *topology.Model {
	return topology.NewModel("earlgrey", []topology.Domain{
		{
			Name:     "pad_direct",
			Width:    6,
			External: "pinmux_pad_t",
			Doc:      "Direct pad selects.",
			Members: []topology.Member{
				{Name: "usb_dp", Value: 0, Doc: "USB D+"},
				{Name: "usb_dn", Value: 1},
			},
		},
		{
			Name:     "insel",
			Category: "pinmux",
			Width:    8,
			External: "pinmux_insel_t",
			Members: []topology.Member{
				{Name: "constant_zero", Value: 0},
				{Name: "gpio0", Value: 1},
			},
		},
	})
}

func resolve(t *testing.T, m *topology.Model) []alias.Entry {
	t.Helper()
	bag := diag.NewBag(10)
	entries, err := alias.Resolve(m, bag)
	if err != nil {
		t.Fatalf("alias resolution failed: %v", err)
	}
	return entries
}

const goldenOutput = `// Generated from topology "earlgrey". Do not edit by hand.

// Direct pad selects.
typedef enum {
  PAD_DIRECT_USB_DP = 0, // USB D+
  PAD_DIRECT_USB_DN = 1,
  PAD_DIRECT_COUNT = 2,
} PadDirectType;

typedef enum {
  PINMUX_INSEL_CONSTANT_ZERO = 0,
  PINMUX_INSEL_GPIO0 = 1,
  PINMUX_INSEL_COUNT = 2,
} PinmuxInselType;

// External fixed-name aliases.
typedef PadDirectType pinmux_pad_t;
typedef PinmuxInselType pinmux_insel_t;
`

func TestEmitGolden(t *testing.T) {
	m := sampleModel()
	out, err := New(m, Options{}).Emit(resolve(t, m))
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if string(out) != goldenOutput {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", goldenOutput, out)
	}
}

func TestEmitDeterministic(t *testing.T) {
	m := sampleModel()
	entries := resolve(t, m)
	first, err := New(m, Options{}).Emit(entries)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	second, err := New(m, Options{}).Emit(entries)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("two runs over the same model must be byte-identical")
	}
}

func TestEmitPreservesMemberOrder(t *testing.T) {
	// Members deliberately out of encoding order; emission must not sort.
	m := topology.NewModel("t", []topology.Domain{{
		Name:     "pad",
		Width:    4,
		External: "pad_t",
		Members: []topology.Member{
			{Name: "last", Value: 2},
			{Name: "first", Value: 0},
			{Name: "mid", Value: 1},
		},
	}})
	out, err := New(m, Options{}).Emit(resolve(t, m))
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	text := string(out)
	last := strings.Index(text, "PAD_LAST")
	first := strings.Index(text, "PAD_FIRST")
	mid := strings.Index(text, "PAD_MID")
	if last < 0 || first < 0 || mid < 0 || !(last < first && first < mid) {
		t.Fatalf("member order not preserved:\n%s", text)
	}
}

func TestEmitCountMatchesMembers(t *testing.T) {
	m := sampleModel()
	out, err := New(m, Options{}).Emit(resolve(t, m))
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if !strings.Contains(string(out), "PAD_DIRECT_COUNT = 2,") {
		t.Fatalf("count constant must equal member count:\n%s", out)
	}
}

func TestEmitUnknownSentinel(t *testing.T) {
	m := sampleModel()
	out, err := New(m, Options{IncludeUnknownSentinel: true}).Emit(resolve(t, m))
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	text := string(out)
	// One past the last member, excluded from the count.
	if !strings.Contains(text, "PAD_DIRECT_UNKNOWN = 2,") {
		t.Fatalf("missing unknown sentinel:\n%s", text)
	}
	if !strings.Contains(text, "PAD_DIRECT_COUNT = 2,") {
		t.Fatalf("count must not include the sentinel:\n%s", text)
	}
}

func TestEmitUnknownSentinelOverflow(t *testing.T) {
	// Width 1 with two members leaves no slot for the sentinel.
	m := topology.NewModel("t", []topology.Domain{{
		Name:     "bit",
		Width:    1,
		External: "bit_t",
		Members: []topology.Member{
			{Name: "lo", Value: 0},
			{Name: "hi", Value: 1},
		},
	}})
	if _, err := New(m, Options{IncludeUnknownSentinel: true}).Emit(resolve(t, m)); err == nil {
		t.Fatalf("expected sentinel overflow error")
	}
}

func TestEmitAliasBlockFollowsDomains(t *testing.T) {
	m := sampleModel()
	out, err := New(m, Options{}).Emit(resolve(t, m))
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	text := string(out)
	aliasPos := strings.Index(text, "typedef PadDirectType pinmux_pad_t;")
	lastType := strings.Index(text, "} PinmuxInselType;")
	if aliasPos < 0 || lastType < 0 || aliasPos < lastType {
		t.Fatalf("alias block must follow every domain block:\n%s", text)
	}
}
