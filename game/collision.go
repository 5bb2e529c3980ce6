// File: game/collision.go
package game

import (
	"math"

	"github.com/lguibr/pickleball/utils"
)

func (b *Ball) CollidesTopWall() bool {
	return b.Y <= 0
}

func (b *Ball) CollidesBottomWall() bool {
	return b.Y+b.Size >= b.fieldHeight
}

// CollideWalls points the vertical velocity back into the field. It reports
// true only when the velocity actually changed, so a contact is counted once.
func (b *Ball) CollideWalls() bool {
	switch {
	case b.CollidesTopWall() && b.VY < 0:
		b.HandleCollideTop()
		return true
	case b.CollidesBottomWall() && b.VY > 0:
		b.HandleCollideBottom()
		return true
	}
	return false
}

func (b *Ball) HandleCollideTop()    { b.VY = math.Abs(b.VY) }
func (b *Ball) HandleCollideBottom() { b.VY = -math.Abs(b.VY) }

// BallInterceptsPaddle is a strict bounding-box test. Touching edges do not count.
func (b *Ball) BallInterceptsPaddle(paddle *Paddle) bool {
	return b.Rect().Intersects(paddle.Rect())
}

// BounceAngle maps where the ball meets the paddle to an outgoing angle.
// A hit at the paddle centre gives 0, the tips give ±maxBounceAngle.
func (b *Ball) BounceAngle(paddle *Paddle) float64 {
	offset := paddle.CenterY() - b.CenterY()
	normalized := utils.Clamp(offset/(paddle.Height/2), -1, 1)
	return normalized * b.maxBounceAngle
}

// Collide resolves a contact with paddle. The ball leaves away from the
// paddle's edge, its vertical speed follows the bounce angle and its
// horizontal speed grows by the speed-up factor up to the cap.
func (b *Ball) Collide(paddle *Paddle) (Event, bool) {
	if paddle == nil {
		return Event{}, false
	}
	if !b.BallInterceptsPaddle(paddle) {
		b.contacts.EndCollision(paddle.Side)
		return Event{}, false
	}
	if !b.contacts.BeginCollision(paddle.Side) {
		return Event{}, false
	}

	angle := b.BounceAngle(paddle)
	speedX := math.Abs(b.VX)
	if paddle.Side == SideAI {
		speedX = -speedX
	}
	b.VX = utils.Clamp(speedX*b.speedUp, -b.maxSpeedX, b.maxSpeedX)
	b.VY = -b.baseSpeed * math.Sin(angle)
	b.ZSpeed = -b.ZSpeed

	return PaddleHit(paddle.Side), true
}
