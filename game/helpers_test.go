package game

import (
	"github.com/lguibr/pickleball/utils"
)

// scriptedRand replays fixed draws. Once a script runs out it keeps
// returning the fallback value.
type scriptedRand struct {
	floats        []float64
	ints          []int
	fallbackFloat float64
	fallbackInt   int
	floatCalls    int
	intCalls      []int // the n passed to each Intn call
}

func (r *scriptedRand) Float64() float64 {
	defer func() { r.floatCalls++ }()
	if r.floatCalls < len(r.floats) {
		return r.floats[r.floatCalls]
	}
	return r.fallbackFloat
}

func (r *scriptedRand) Intn(n int) int {
	i := len(r.intCalls)
	r.intCalls = append(r.intCalls, n)
	v := r.fallbackInt
	if i < len(r.ints) {
		v = r.ints[i]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func testConfig() utils.Config {
	return utils.DefaultConfig()
}

// stillBall returns a ball that is not moving, placed at x, y.
func stillBall(cfg utils.Config, x, y float64) *Ball {
	b := NewBall(cfg)
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	return b
}

// forcePoint places the ball so that side scores on the next step, far
// from both paddles.
func forcePoint(m *Match, side Side) {
	m.Ball.Y = 100
	m.Ball.VY = 0
	if side == SideAI {
		m.Ball.X = 2
		m.Ball.VX = -5
		return
	}
	m.Ball.X = 780
	m.Ball.VX = 5
}
