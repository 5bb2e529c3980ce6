package render

import (
	"fmt"

	"github.com/lguibr/pickleball/game"
	"github.com/lguibr/pickleball/utils"
)

const Title = "PICKLE BALL 3D"

// DrawHUD writes the scores, the side labels and the difficulty level over
// the top border.
func (c *Canvas) DrawHUD(frame game.Frame) {
	c.Text(2, 0, fmt.Sprintf(" YOU %d ", frame.Player.Score), Blue)
	c.CenterText(0, fmt.Sprintf(" LEVEL %d ", frame.Difficulty), Yellow)

	ai := fmt.Sprintf(" AI %d ", frame.AI.Score)
	c.Text(c.Cols-2-len(ai), 0, ai, Red)
}

// DrawDifficultyScreen is shown while a new match waits to start.
func (c *Canvas) DrawDifficultyScreen(difficulty, winScore int) {
	mid := c.Rows / 2
	c.clearRows(mid-4, mid+4)
	c.CenterText(mid-4, Title, Yellow)
	c.CenterText(mid-2, fmt.Sprintf("DIFFICULTY LEVEL: %d", difficulty), Yellow)
	c.CenterText(mid, fmt.Sprintf("First to score %d points wins!", winScore), White)
	c.CenterText(mid+1, "Use UP and DOWN arrow keys to move", White)
	c.CenterText(mid+3, "Press SPACE to start", White)
}

// GameOverLines is the text of the end-of-match screen. maxDifficulty is the
// highest level a session can reach.
func GameOverLines(outcome game.Outcome, maxDifficulty int) (headline string, lines []string) {
	if outcome.Winner == game.SidePlayer {
		if outcome.Difficulty < maxDifficulty {
			return "YOU WIN!", []string{
				fmt.Sprintf("Advancing to difficulty level %d", outcome.Difficulty+1),
				"Press SPACE to continue",
			}
		}
		return "YOU WIN!", []string{
			"Congratulations! You beat the highest difficulty!",
			"Press SPACE to play again",
		}
	}
	return "GAME OVER", []string{
		fmt.Sprintf("AI wins with %d points", outcome.AIScore),
		"Press SPACE to try again",
	}
}

func (c *Canvas) DrawGameOverScreen(outcome game.Outcome, maxDifficulty int) {
	headline, lines := GameOverLines(outcome, maxDifficulty)
	color := Red
	if outcome.Winner == game.SidePlayer {
		color = Green
	}

	mid := c.Rows / 2
	c.clearRows(mid-3, mid+2+len(lines))
	c.CenterText(mid-3, headline, color)
	c.CenterText(mid-1, fmt.Sprintf("%d - %d", outcome.PlayerScore, outcome.AIScore), White)
	for i, line := range lines {
		c.CenterText(mid+1+i, line, White)
	}
}

// clearRows blanks the inside of rows first..last, keeping the side borders.
func (c *Canvas) clearRows(first, last int) {
	for row := max(first, 1); row <= min(last, c.Rows-2); row++ {
		for col := 1; col < c.Cols-1; col++ {
			c.Set(col, row, glyphEmpty, White)
		}
	}
}

// Compose draws a complete screen for frame: the court, the HUD and whichever
// overlay the match state calls for.
func Compose(canvas *Canvas, frame game.Frame, opts Options) {
	canvas.DrawFrame(frame, opts.MaxDepth)
	canvas.DrawHUD(frame)
	switch {
	case frame.State == game.MatchStateComplete && frame.Outcome != nil:
		canvas.DrawGameOverScreen(*frame.Outcome, opts.MaxDifficulty)
	case frame.Waiting:
		canvas.DrawDifficultyScreen(frame.Difficulty, opts.WinScore)
	}
}

// Options carries the configuration the screens need but a Frame does not hold.
type Options struct {
	MaxDepth      float64
	MaxDifficulty int
	WinScore      int
}

func OptionsFromConfig(cfg utils.Config) Options {
	return Options{
		MaxDepth:      cfg.MaxDepth,
		MaxDifficulty: cfg.MaxDifficulty,
		WinScore:      cfg.WinScore,
	}
}
