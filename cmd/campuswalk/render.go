package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/campuswalk/campus"
)

// styles bundles the lipgloss styles bound to one output stream, so color is
// only emitted when that stream is a terminal.
type styles struct {
	title lipgloss.Style
	stop  lipgloss.Style
	leg   lipgloss.Style
	total lipgloss.Style
	none  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		stop:  r.NewStyle(),
		leg:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
		total: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
		none:  r.NewStyle().Foreground(lipgloss.Color("#FF00FF")),
	}
}

// renderRoute writes a route in the results-list layout:
//
//	Results List:
//		Union South
//		Computer Sciences and Statistics
//
// With times, each stop after the first is written as
// "-> Name (x.xx seconds)" and a "Total Time: y.yy minutes" line follows.
func renderRoute(w io.Writer, r campus.Route, times bool) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render("Results List:"))
	b.WriteByte('\n')
	if !r.Found {
		b.WriteString(st.none.Render("No Paths Found"))
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}

	if !times {
		for _, s := range r.Stops {
			b.WriteString("\t" + st.stop.Render(s) + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\t" + st.stop.Render(r.Stops[0]) + "\n")
	for _, l := range r.Legs {
		b.WriteString("\t-> " + st.stop.Render(l.To) + " " +
			st.leg.Render(fmt.Sprintf("(%.2f seconds)", l.Seconds)) + "\n")
	}
	b.WriteString("\t" + st.total.Render(fmt.Sprintf("Total Time: %.2f minutes", r.TotalSeconds/60)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// renderReach writes one reachable location per line with its hop count.
func renderReach(w io.Writer, from string, reach []campus.Reach) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render("Reachable from " + from + ":"))
	b.WriteByte('\n')
	for _, r := range reach {
		fmt.Fprintf(&b, "\t%d  %s\n", r.Hops, st.stop.Render(r.Name))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
