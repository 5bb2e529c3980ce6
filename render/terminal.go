package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pickleball/game"
)

// Terminal draws frames on a tcell screen. It resizes its canvas to the
// screen on every frame.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	opts   Options
	canvas *Canvas
}

func NewTerminal(screen tcell.Screen, opts Options) *Terminal {
	return &Terminal{
		screen: screen,
		opts:   opts,
	}
}

func (t *Terminal) Present(frame game.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	if t.canvas == nil || t.canvas.Cols != cols || t.canvas.Rows != rows {
		t.canvas = NewCanvas(cols, rows)
	}
	Compose(t.canvas, frame, t.opts)

	background := tcell.StyleDefault.Background(tcell.ColorBlack)
	for row := 0; row < t.canvas.Rows; row++ {
		for col, cell := range t.canvas.Cells[row] {
			style := background.Foreground(toColor(cell.Color))
			t.screen.SetContent(col, row, cell.Glyph, nil, style)
		}
	}
	t.screen.Show()
}

func toColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
