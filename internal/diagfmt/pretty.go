// Package diagfmt renders diagnostics for the CLI.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"muxgen/internal/diag"
)

// PrettyOpts controls human-readable diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgHiBlack)
)

// Pretty formats diagnostics one per line:
//
//	<severity>[<CODE>] <subject>: <message>
//	    note <subject>: <message>
//
// The bag is expected to be sorted (bag.Sort()) beforehand so output order
// is deterministic.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		label, c := severityLabel(d.Severity)
		if opts.Color {
			fmt.Fprintf(w, "%s[%s]", c.Sprint(label), d.Code.ID())
		} else {
			fmt.Fprintf(w, "%s[%s]", label, d.Code.ID())
		}
		if d.Subject != "" {
			fmt.Fprintf(w, " %s:", d.Subject)
		}
		fmt.Fprintf(w, " %s\n", d.Message)

		for _, note := range d.Notes {
			line := fmt.Sprintf("    note %s: %s", note.Subject, note.Msg)
			if opts.Color {
				line = noteColor.Sprint(line)
			}
			fmt.Fprintln(w, line)
		}
	}
}

// Summary prints a one-line tally after the diagnostics.
func Summary(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	errs, warns := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	line := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if opts.Color && errs > 0 {
		line = errorColor.Sprint(line)
	}
	fmt.Fprintln(w, line)
}

func severityLabel(sev diag.Severity) (string, *color.Color) {
	switch sev {
	case diag.SevError:
		return "error", errorColor
	case diag.SevWarning:
		return "warning", warningColor
	default:
		return "info", infoColor
	}
}
