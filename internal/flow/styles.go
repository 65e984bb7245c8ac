package flow

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTitle   = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorFailure = lipgloss.Color("#E74C3C")
)

// styles renders through a renderer bound to the flow's writer, so output to
// anything but a terminal stays plain text.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorFailure),
	}
}
