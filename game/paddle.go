// File: game/paddle.go
package game

import (
	"math"

	"github.com/lguibr/pickleball/utils"
)

// Role tells whether a paddle is steered by key input or by the AI policy.
type Role int

const (
	RoleHuman Role = iota
	RoleAI
)

func (r Role) MarshalText() ([]byte, error) {
	if r == RoleAI {
		return []byte("ai"), nil
	}
	return []byte("human"), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	*r = RoleHuman
	if string(text) == "ai" {
		*r = RoleAI
	}
	return nil
}

// Direction is a one-step vertical move request.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Input is the pressed-key snapshot for one step.
type Input struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// DirectionFromInput maps a key snapshot to a move. Both keys cancel out.
func DirectionFromInput(input Input) Direction {
	switch {
	case input.Up && !input.Down:
		return DirectionUp
	case input.Down && !input.Up:
		return DirectionDown
	}
	return DirectionNone
}

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	Score  int     `json:"score"`
	Role   Role    `json:"role"`
	Side   Side    `json:"side"`

	fieldHeight float64
}

// NewPaddle places a paddle at its edge of the field, vertically centred.
func NewPaddle(side Side, role Role, cfg utils.Config) *Paddle {
	x := cfg.PaddleInset
	if side == SideAI {
		x = cfg.FieldWidth - cfg.PaddleInset - cfg.PaddleWidth
	}
	return &Paddle{
		X:           x,
		Y:           cfg.FieldHeight/2 - cfg.PaddleHeight/2,
		Width:       cfg.PaddleWidth,
		Height:      cfg.PaddleHeight,
		Speed:       cfg.PaddleSpeed,
		Role:        role,
		Side:        side,
		fieldHeight: cfg.FieldHeight,
	}
}

func (p *Paddle) Rect() utils.Rect {
	return utils.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Move shifts the paddle one speed-step and keeps it inside the field.
func (p *Paddle) Move(direction Direction) {
	switch direction {
	case DirectionUp:
		p.Y -= p.Speed
	case DirectionDown:
		p.Y += p.Speed
	default:
		return
	}
	p.Y = utils.Clamp(p.Y, 0, p.fieldHeight-p.Height)
}

// approaching reports whether the ball travels toward this paddle's edge.
func (p *Paddle) approaching(ball *Ball) bool {
	if p.Side == SideAI {
		return ball.VX > 0
	}
	return ball.VX < 0
}

// MaxAimOffset is the largest aiming error, in pixels, at a difficulty level.
func MaxAimOffset(difficulty int) int {
	offset := 40 - 3*difficulty
	if offset < 0 {
		return 0
	}
	return offset
}

// Decide is the AI policy. While the ball approaches, the paddle reacts with
// probability difficulty/10 and aims at the ball centre plus a random error.
// Otherwise it drifts back toward the middle of the field.
func (p *Paddle) Decide(ball *Ball, difficulty int, rng Rand) Direction {
	if !p.approaching(ball) {
		return p.towards(p.fieldHeight / 2)
	}

	if rng.Float64() >= float64(difficulty)/10 {
		return DirectionNone
	}

	maxOffset := MaxAimOffset(difficulty)
	offset := rng.Intn(2*maxOffset+1) - maxOffset
	return p.towards(ball.CenterY() + float64(offset))
}

// towards moves the paddle centre toward target unless it is already within one step.
func (p *Paddle) towards(target float64) Direction {
	delta := target - p.CenterY()
	if math.Abs(delta) <= p.Speed {
		return DirectionNone
	}
	if delta < 0 {
		return DirectionUp
	}
	return DirectionDown
}
