package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/pickleball/game"
)

const ansiReset = "\033[0m"

// rgbToAnsi converts a colour to a 24-bit ANSI foreground escape code.
func rgbToAnsi(c RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// RenderToASCII renders a frame to a cols x rows text grid. With color set,
// every run of same-coloured cells is wrapped in ANSI escape codes.
func RenderToASCII(frame game.Frame, cols, rows int, opts Options, color bool) string {
	canvas := NewCanvas(cols, rows)
	Compose(canvas, frame, opts)
	return canvas.String(color)
}

// ASCII renders successive frames of one stream onto a reused canvas.
type ASCII struct {
	Cols    int
	Rows    int
	Options Options
	Color   bool

	canvas *Canvas
}

func NewASCII(cols, rows int, opts Options, color bool) *ASCII {
	return &ASCII{
		Cols:    cols,
		Rows:    rows,
		Options: opts,
		Color:   color,
		canvas:  NewCanvas(cols, rows),
	}
}

func (a *ASCII) Render(frame game.Frame) string {
	Compose(a.canvas, frame, a.Options)
	return a.canvas.String(a.Color)
}

func (c *Canvas) String(color bool) string {
	var ascii strings.Builder
	for row := 0; row < c.Rows; row++ {
		if !color {
			ascii.WriteString(c.Line(row))
			ascii.WriteString("\n")
			continue
		}

		current := RGB{}
		open := false
		for _, cell := range c.Cells[row] {
			if cell.Empty() {
				ascii.WriteRune(' ')
				continue
			}
			if !open || cell.Color != current {
				ascii.WriteString(rgbToAnsi(cell.Color))
				current, open = cell.Color, true
			}
			ascii.WriteRune(cell.Glyph)
		}
		if open {
			ascii.WriteString(ansiReset)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}
