package topology

import (
	"errors"
	"testing"

	"muxgen/internal/diag"
)

func padDomain() Domain {
	return Domain{
		Name:     "pad_direct",
		Width:    6,
		Base:     0,
		External: "pinmux_pad_t",
		Members: []Member{
			{Name: "usb_dp", Value: 0},
			{Name: "usb_dn", Value: 1},
		},
	}
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	m := NewModel("earlgrey", []Domain{padDomain()})
	bag := diag.NewBag(10)
	if err := Validate(m, bag); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, diag.FormatGoldenDiagnostics(bag.Items(), true))
	}
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d", bag.Len())
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Domain)
		code   diag.Code
	}{
		{
			name:   "empty domain",
			mutate: func(d *Domain) { d.Members = nil },
			code:   diag.TopEmptyDomain,
		},
		{
			name:   "zero width",
			mutate: func(d *Domain) { d.Width = 0 },
			code:   diag.TopBadWidth,
		},
		{
			name:   "width too large",
			mutate: func(d *Domain) { d.Width = 65 },
			code:   diag.TopBadWidth,
		},
		{
			name:   "encoding exceeds width",
			mutate: func(d *Domain) { d.Width = 1; d.Members[1].Value = 2 },
			code:   diag.TopEncodingOverflow,
		},
		{
			name: "duplicate member name",
			mutate: func(d *Domain) {
				d.Members = []Member{{Name: "foo", Value: 0}, {Name: "foo", Value: 1}}
			},
			code: diag.TopDuplicateMember,
		},
		{
			name: "duplicate member name case-insensitive",
			mutate: func(d *Domain) {
				d.Members = []Member{{Name: "foo", Value: 0}, {Name: "FOO", Value: 1}}
			},
			code: diag.TopDuplicateMember,
		},
		{
			name: "duplicate encoding",
			mutate: func(d *Domain) {
				d.Members = []Member{{Name: "a", Value: 0}, {Name: "b", Value: 0}}
			},
			code: diag.TopDuplicateEncoding,
		},
		{
			name: "non-contiguous encodings",
			mutate: func(d *Domain) {
				d.Members = []Member{{Name: "a", Value: 0}, {Name: "b", Value: 2}}
			},
			code: diag.TopNonContiguous,
		},
		{
			name:   "base outside width",
			mutate: func(d *Domain) { d.Base = 64 },
			code:   diag.TopBadBase,
		},
		{
			name:   "bad domain name",
			mutate: func(d *Domain) { d.Name = "7pads" },
			code:   diag.TopBadName,
		},
		{
			name:   "bad member name",
			mutate: func(d *Domain) { d.Members[0].Name = "usb dp!" },
			code:   diag.TopBadName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := padDomain()
			tc.mutate(&d)
			m := NewModel("earlgrey", []Domain{d})
			bag := diag.NewBag(10)
			if err := Validate(m, bag); err == nil {
				t.Fatalf("expected validation failure")
			}
			if !hasCode(bag, tc.code) {
				t.Fatalf("expected code %s, got:\n%s",
					tc.code.ID(), diag.FormatGoldenDiagnostics(bag.Items(), true))
			}
		})
	}
}

func TestValidateDuplicateDomainNames(t *testing.T) {
	first := padDomain()
	second := padDomain()
	second.Name = "PAD_DIRECT" // differs only in case
	m := NewModel("earlgrey", []Domain{first, second})
	bag := diag.NewBag(10)
	if err := Validate(m, bag); err == nil {
		t.Fatalf("expected validation failure")
	}
	if !hasCode(bag, diag.TopDuplicateDomain) {
		t.Fatalf("expected TopDuplicateDomain, got:\n%s",
			diag.FormatGoldenDiagnostics(bag.Items(), true))
	}
}

func TestValidateReportsEveryDefect(t *testing.T) {
	d := padDomain()
	d.Members = []Member{
		{Name: "foo", Value: 0},
		{Name: "foo", Value: 0}, // name and encoding both duplicated
	}
	m := NewModel("earlgrey", []Domain{d})
	bag := diag.NewBag(10)
	if err := Validate(m, bag); err == nil {
		t.Fatalf("expected validation failure")
	}
	if !hasCode(bag, diag.TopDuplicateMember) || !hasCode(bag, diag.TopDuplicateEncoding) {
		t.Fatalf("expected both defects reported, got:\n%s",
			diag.FormatGoldenDiagnostics(bag.Items(), true))
	}
}

func TestValidateBaseOne(t *testing.T) {
	d := padDomain()
	d.Base = 1
	d.Members = []Member{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	m := NewModel("earlgrey", []Domain{d})
	bag := diag.NewBag(10)
	if err := Validate(m, bag); err != nil {
		t.Fatalf("base-1 domain should validate: %v", err)
	}
}

func TestValidateErrorWrapsSentinel(t *testing.T) {
	d := padDomain()
	d.Members = nil
	m := NewModel("earlgrey", []Domain{d})
	bag := diag.NewBag(10)
	err := Validate(m, bag)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error should wrap ErrMalformed, got: %v", err)
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
