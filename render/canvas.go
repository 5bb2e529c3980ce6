package render

import (
	"math"

	"github.com/lguibr/pickleball/game"
	"github.com/lguibr/pickleball/utils"
)

type RGB struct {
	R, G, B uint8
}

// Darken scales every channel by factor, clamped to the byte range.
func (c RGB) Darken(factor float64) RGB {
	scale := func(v uint8) uint8 {
		return uint8(utils.Clamp(math.Round(float64(v)*factor), 0, 255))
	}
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

var (
	White     = RGB{255, 255, 255}
	Gray      = RGB{128, 128, 128}
	Green     = RGB{0, 255, 0}
	Blue      = RGB{0, 0, 255}
	Red       = RGB{255, 0, 0}
	Yellow    = RGB{255, 255, 0}
	LightBlue = RGB{173, 216, 230}
)

const (
	glyphEmpty      = ' '
	glyphPaddle     = '█'
	glyphShadow     = '░'
	glyphNet        = '┆'
	glyphBallShadow = '·'
)

// ballGlyphs grow with the depth phase, nearest first.
var ballGlyphs = []rune{'∘', 'o', 'O', '●'}

type Cell struct {
	Glyph rune
	Color RGB
}

func (c Cell) Empty() bool { return c.Glyph == glyphEmpty || c.Glyph == 0 }

// Canvas is a character grid the court is projected onto. Cells are indexed [row][col].
type Canvas struct {
	Cols  int
	Rows  int
	Cells [][]Cell
}

// NewCanvas allocates an empty canvas. Sizes below 8x6 are raised to that minimum.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 8)
	rows = max(rows, 6)
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Glyph: glyphEmpty}
		}
	}
	return &Canvas{Cols: cols, Rows: rows, Cells: cells}
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.Cols && row >= 0 && row < c.Rows
}

func (c *Canvas) Set(col, row int, glyph rune, color RGB) {
	if c.inside(col, row) {
		c.Cells[row][col] = Cell{Glyph: glyph, Color: color}
	}
}

// At returns the cell at col,row, or an empty cell outside the canvas.
func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Glyph: glyphEmpty}
	}
	return c.Cells[row][col]
}

func (c *Canvas) Clear() {
	for r := range c.Cells {
		for col := range c.Cells[r] {
			c.Cells[r][col] = Cell{Glyph: glyphEmpty}
		}
	}
}

func (c *Canvas) Text(col, row int, text string, color RGB) {
	for _, ch := range text {
		c.Set(col, row, ch, color)
		col++
	}
}

// CenterText writes text horizontally centred on row.
func (c *Canvas) CenterText(row int, text string, color RGB) {
	width := len([]rune(text))
	c.Text((c.Cols-width)/2, row, text, color)
}

// Line returns the canvas row as plain text.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.Rows {
		return ""
	}
	runes := make([]rune, c.Cols)
	for col, cell := range c.Cells[row] {
		runes[col] = cell.Glyph
	}
	return string(runes)
}

// projection maps field pixels onto canvas cells.
type projection struct {
	sx, sy     float64
	cols, rows int
}

func newProjection(frame game.Frame, cols, rows int) projection {
	width, height := frame.Width, frame.Height
	if width <= 0 {
		width = float64(cols)
	}
	if height <= 0 {
		height = float64(rows)
	}
	return projection{
		sx:   float64(cols) / width,
		sy:   float64(rows) / height,
		cols: cols,
		rows: rows,
	}
}

func (p projection) col(x float64) int {
	return utils.ClampInt(int(math.Floor(x*p.sx)), 0, p.cols-1)
}

func (p projection) row(y float64) int {
	return utils.ClampInt(int(math.Floor(y*p.sy)), 0, p.rows-1)
}

// span returns the inclusive cell range covered by [pos, pos+size).
func (p projection) span(rect utils.Rect) (c0, r0, c1, r1 int) {
	const eps = 1e-9
	c0, r0 = p.col(rect.Left()), p.row(rect.Top())
	c1 = max(c0, p.col(rect.Right()-eps))
	r1 = max(r0, p.row(rect.Bottom()-eps))
	return c0, r0, c1, r1
}

// DrawFrame projects the court, both paddles and the ball of frame onto the
// canvas. maxDepth scales the ball glyph; zero draws the smallest glyph.
func (c *Canvas) DrawFrame(frame game.Frame, maxDepth float64) {
	c.Clear()
	proj := newProjection(frame, c.Cols, c.Rows)

	c.drawCourt()
	c.drawPaddle(proj, frame.Player, Blue)
	c.drawPaddle(proj, frame.AI, Red)
	c.drawBall(proj, frame.Ball, maxDepth)
}

func (c *Canvas) drawCourt() {
	border := LightBlue
	for col := 0; col < c.Cols; col++ {
		c.Set(col, 0, '─', border)
		c.Set(col, c.Rows-1, '─', border)
	}
	for row := 0; row < c.Rows; row++ {
		c.Set(0, row, '│', border)
		c.Set(c.Cols-1, row, '│', border)
	}
	c.Set(0, 0, '┌', border)
	c.Set(c.Cols-1, 0, '┐', border)
	c.Set(0, c.Rows-1, '└', border)
	c.Set(c.Cols-1, c.Rows-1, '┘', border)

	// Dashed net: two cells drawn, one skipped.
	net := c.Cols / 2
	for row := 1; row < c.Rows-1; row++ {
		if row%3 != 0 {
			c.Set(net, row, glyphNet, White)
		}
	}
}

func (c *Canvas) drawPaddle(proj projection, paddle game.Paddle, color RGB) {
	if paddle.Width <= 0 || paddle.Height <= 0 {
		return
	}
	c0, r0, c1, r1 := proj.span(paddle.Rect())
	shadow := color.Darken(0.5)
	for row := r0 + 1; row <= r1+1; row++ {
		for col := c0 + 1; col <= c1+1; col++ {
			c.Set(col, row, glyphShadow, shadow)
		}
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.Set(col, row, glyphPaddle, color)
		}
	}
}

func (c *Canvas) drawBall(proj projection, ball game.Ball, maxDepth float64) {
	if ball.Size <= 0 {
		return
	}
	col := proj.col(ball.X + ball.Size/2)
	row := proj.row(ball.Y + ball.Size/2)
	if c.At(col+1, row+1).Empty() {
		c.Set(col+1, row+1, glyphBallShadow, Gray)
	}
	c.Set(col, row, BallGlyph(ball.Z, maxDepth), Green)
}

// BallGlyph picks the ball character for a depth phase in [0, maxDepth].
func BallGlyph(z, maxDepth float64) rune {
	if maxDepth <= 0 {
		return ballGlyphs[0]
	}
	ratio := utils.Clamp(z/maxDepth, 0, 1)
	index := int(ratio * float64(len(ballGlyphs)))
	return ballGlyphs[utils.ClampInt(index, 0, len(ballGlyphs)-1)]
}
