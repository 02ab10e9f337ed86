package wire

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wirecross/internal/core"
)

// Plot characters.
const (
	CharEmpty  = '.'
	CharOrigin = 'o'
	CharFirst  = '1'
	CharSecond = '2'
	CharCross  = 'X'
)

// RenderOptions controls Render output.
type RenderOptions struct {
	MaxWidth  int  // Maximum plot width in cells, 0 = unlimited
	MaxHeight int  // Maximum plot height in cells, 0 = unlimited
	Color     bool // Style cells with ANSI colors
}

var renderStyles = map[rune]lipgloss.Style{
	CharEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	CharOrigin: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	CharFirst:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	CharSecond: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	CharCross:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// Render draws both wires on a character grid with Up at the top.
//
// Format:
//   - '.' empty, 'o' origin
//   - '1' / '2' cells visited by only the first / second wire
//   - 'X' cells visited by both
//
// The plot covers both wires plus one cell of margin on each side.
func Render(a, b *Wire, opts RenderOptions) (string, error) {
	bounds := core.NewBounds()
	for _, w := range []*Wire{a, b} {
		wb := w.Bounds()
		bounds.Extend(wb.Min)
		bounds.Extend(wb.Max)
	}
	bounds.Extend(bounds.Min.Add(-1, -1))
	bounds.Extend(bounds.Max.Add(1, 1))

	if (opts.MaxWidth > 0 && bounds.Width() > opts.MaxWidth) ||
		(opts.MaxHeight > 0 && bounds.Height() > opts.MaxHeight) {
		return "", fmt.Errorf("wire: %w: %dx%d (limit %dx%d)",
			ErrTooLarge, bounds.Width(), bounds.Height(), opts.MaxWidth, opts.MaxHeight)
	}

	canvas := core.NewCanvas(bounds, CharEmpty)
	for p := range a.points {
		canvas.Set(p, CharFirst)
	}
	for p := range b.points {
		if a.Contains(p) {
			canvas.Set(p, CharCross)
		} else {
			canvas.Set(p, CharSecond)
		}
	}
	canvas.Set(core.Origin, CharOrigin)

	if !opts.Color {
		return canvas.String(), nil
	}

	rows := canvas.Rows()
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			sb.WriteString(renderStyles[r].Render(string(r)))
		}
	}
	return sb.String(), nil
}
