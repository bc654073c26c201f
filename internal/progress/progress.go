// SPDX-License-Identifier: EPL-2.0

// Package progress draws a one-line render progress bar on a terminal.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// Bar redraws itself in place with a carriage return. It renders frames
// with bubbles' progress model directly, without running a tea program.
type Bar struct {
	w     io.Writer
	model progress.Model
	label string
	last  int
}

func New(w io.Writer, label string) *Bar {
	return &Bar{
		w:     w,
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		label: labelStyle.Render(label),
		last:  -1,
	}
}

// Update reports that done of total columns are written. It only redraws
// when the whole-number percentage changes.
func (b *Bar) Update(done, total int) {
	if total < 1 {
		return
	}

	pct := 100 * done / total
	if pct == b.last {
		return
	}
	b.last = pct

	fmt.Fprintf(b.w, "\r%s %s", b.label, b.model.ViewAs(float64(pct)/100))
}

// Finish ends the line.
func (b *Bar) Finish() {
	fmt.Fprintln(b.w)
}
