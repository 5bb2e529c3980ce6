// File: game/ball.go
package game

import (
	"github.com/lguibr/pickleball/utils"
)

type Ball struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	VX         float64 `json:"vx"`
	VY         float64 `json:"vy"`
	Z          float64 `json:"z"`      // Depth phase, presentation only
	ZSpeed     float64 `json:"zSpeed"` // Depth oscillation per step
	LastScorer Side    `json:"lastScorer"`

	fieldWidth     float64
	fieldHeight    float64
	baseSpeed      float64
	maxSpeedX      float64
	speedUp        float64
	maxBounceAngle float64
	serveInset     float64
	serveAngles    []float64
	maxDepth       float64
	contacts       *CollisionTracker
}

// NewBall creates a motionless ball at the centre of the field. Serve launches it.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		X:              cfg.FieldWidth/2 - cfg.BallSize/2,
		Y:              cfg.FieldHeight/2 - cfg.BallSize/2,
		Size:           cfg.BallSize,
		ZSpeed:         cfg.DepthSpeed,
		LastScorer:     SideNone,
		fieldWidth:     cfg.FieldWidth,
		fieldHeight:    cfg.FieldHeight,
		baseSpeed:      cfg.BaseBallSpeed,
		maxSpeedX:      cfg.MaxBallSpeedX,
		speedUp:        cfg.BallSpeedUp,
		maxBounceAngle: cfg.MaxBounceAngle,
		serveInset:     cfg.ServeInset,
		serveAngles:    cfg.ServeAngleFactors,
		maxDepth:       cfg.MaxDepth,
		contacts:       NewCollisionTracker(),
	}
}

func (b *Ball) Rect() utils.Rect {
	return utils.Rect{X: b.X, Y: b.Y, Width: b.Size, Height: b.Size}
}

func (b *Ball) CenterY() float64 { return b.Y + b.Size/2 }

// Serve puts the ball back in play on the side of the last scorer, moving
// toward the side that conceded. The first serve of a match picks a side at random.
func (b *Ball) Serve(rng Rand) {
	side := b.LastScorer
	if side == SideNone {
		side = SidePlayer
		if rng.Intn(2) == 0 {
			side = SideAI
		}
	}

	b.Y = b.fieldHeight/2 - b.Size/2
	if side == SideAI {
		b.X = b.fieldWidth - b.serveInset - b.Size/2
		b.VX = -b.baseSpeed
	} else {
		b.X = b.serveInset - b.Size/2
		b.VX = b.baseSpeed
	}

	b.VY = b.baseSpeed * b.serveAngles[rng.Intn(len(b.serveAngles))]
	b.Z = 0
	b.contacts.ClearAll()
}

// Step advances the ball one tick. It bounces off the top and bottom walls,
// awards a point when the ball leaves through a side edge and re-serves.
// The returned side is the scorer, or SideNone when play continues.
func (b *Ball) Step(player, ai *Paddle, rng Rand) (Side, []Event) {
	var events []Event

	b.X += b.VX
	b.Y += b.VY
	b.advanceDepth()

	if b.CollideWalls() {
		events = append(events, WallHit())
	}

	scorer := SideNone
	switch {
	case b.X <= 0:
		scorer = SideAI
		ai.Score++
	case b.X+b.Size >= b.fieldWidth:
		scorer = SidePlayer
		player.Score++
	}

	if scorer != SideNone {
		events = append(events, Scored(scorer, player.Score, ai.Score))
		b.LastScorer = scorer
		b.Serve(rng)
	}
	return scorer, events
}

func (b *Ball) advanceDepth() {
	b.Z += b.ZSpeed
	if b.Z > b.maxDepth || b.Z < 0 {
		b.ZSpeed = -b.ZSpeed
	}
}
