// Package ui renders human-facing views of a topology model.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"muxgen/internal/namer"
	"muxgen/internal/topology"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	domainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	externalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderSummary produces the `inspect` view: one row per domain with its
// width, member count, derived type name, and external fixed name. Rows keep
// model order.
func RenderSummary(m *topology.Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("topology %q", m.Name())))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf("%d domain(s)", m.Len())))

	nameWidth := runewidth.StringWidth("domain")
	typeWidth := runewidth.StringWidth("type")
	for _, d := range m.Domains() {
		nameWidth = max(nameWidth, runewidth.StringWidth(d.Name))
		typeWidth = max(typeWidth, runewidth.StringWidth(namer.DomainName(&d).Type))
	}

	fmt.Fprintf(&b, "%s  %s  %s  %s  %s\n",
		headerStyle.Render(pad("domain", nameWidth)),
		headerStyle.Render("bits"),
		headerStyle.Render("members"),
		headerStyle.Render(pad("type", typeWidth)),
		headerStyle.Render("external"))

	for i := range m.Domains() {
		d := &m.Domains()[i]
		external := d.External
		if external == "" {
			external = dimStyle.Render("<unmapped>")
		} else {
			external = externalStyle.Render(external)
		}
		fmt.Fprintf(&b, "%s  %4d  %7d  %s  %s\n",
			domainStyle.Render(pad(d.Name, nameWidth)),
			d.Width,
			len(d.Members),
			pad(namer.DomainName(d).Type, typeWidth),
			external)
	}

	return b.String()
}

// RenderMembers produces the per-domain detail view: every member with its
// encoding and derived value name, in input order.
func RenderMembers(d *topology.Domain) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("domain %q", d.Name)))
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d bits, base %d", d.Width, d.Base)))

	nameWidth := 0
	for i := range d.Members {
		nameWidth = max(nameWidth, runewidth.StringWidth(d.Members[i].Name))
	}
	for i := range d.Members {
		mem := &d.Members[i]
		fmt.Fprintf(&b, "  %s  %3d  %s\n",
			pad(mem.Name, nameWidth),
			mem.Value,
			dimStyle.Render(namer.MemberName(d, mem).Value))
	}

	return b.String()
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
