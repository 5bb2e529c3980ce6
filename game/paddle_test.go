package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaddle(t *testing.T) {
	cfg := testConfig()

	player := NewPaddle(SidePlayer, RoleHuman, cfg)
	assert.Equal(t, 20.0, player.X)
	assert.Equal(t, 250.0, player.Y)
	assert.Equal(t, 300.0, player.CenterY())
	assert.Equal(t, 0, player.Score)

	ai := NewPaddle(SideAI, RoleAI, cfg)
	assert.Equal(t, 765.0, ai.X, "AI paddle sits 20px from the right edge")
	assert.Equal(t, 250.0, ai.Y)
	assert.Equal(t, RoleAI, ai.Role)
}

func TestPaddle_Move(t *testing.T) {
	cfg := testConfig()
	testCases := []struct {
		name      string
		startY    float64
		direction Direction
		expectedY float64
	}{
		{"Up", 250, DirectionUp, 242},
		{"Down", 250, DirectionDown, 258},
		{"None", 250, DirectionNone, 250},
		{"Up clamps at top", 5, DirectionUp, 0},
		{"Up at top stays", 0, DirectionUp, 0},
		{"Down clamps at bottom", 495, DirectionDown, 500},
		{"Down at bottom stays", 500, DirectionDown, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(SidePlayer, RoleHuman, cfg)
			p.Y = tc.startY
			p.Move(tc.direction)
			assert.Equal(t, tc.expectedY, p.Y)
			assert.True(t, p.Y >= 0 && p.Y <= cfg.FieldHeight-p.Height, "paddle must stay inside the field")
		})
	}
}

func TestDirectionFromInput(t *testing.T) {
	assert.Equal(t, DirectionUp, DirectionFromInput(Input{Up: true}))
	assert.Equal(t, DirectionDown, DirectionFromInput(Input{Down: true}))
	assert.Equal(t, DirectionNone, DirectionFromInput(Input{}))
	assert.Equal(t, DirectionNone, DirectionFromInput(Input{Up: true, Down: true}), "both keys cancel out")
}

func TestMaxAimOffset(t *testing.T) {
	assert.Equal(t, 37, MaxAimOffset(1))
	assert.Equal(t, 25, MaxAimOffset(5))
	assert.Equal(t, 10, MaxAimOffset(10))
	assert.Equal(t, 0, MaxAimOffset(14), "offset never goes negative")
}

func TestPaddle_Decide_TracksApproachingBall(t *testing.T) {
	cfg := testConfig()
	testCases := []struct {
		name         string
		ballCenterY  float64
		roll         float64
		offsetIndex  int
		difficulty   int
		expected     Direction
		expectedIntn []int
	}{
		// maxOffset 37 at difficulty 1, index 37 means no offset.
		{"Ball below moves down", 400, 0.05, 37, 1, DirectionDown, []int{75}},
		{"Ball above moves up", 200, 0.05, 37, 1, DirectionUp, []int{75}},
		{"Within one step stays", 305, 0.05, 37, 1, DirectionNone, []int{75}},
		{"Offset pushes target out of the dead zone", 305, 0.05, 74, 1, DirectionDown, []int{75}},
		{"Failed reaction roll", 400, 0.1, 37, 1, DirectionNone, nil},
		{"Difficulty 10 reacts almost always", 400, 0.99, 10, 10, DirectionDown, []int{21}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ai := NewPaddle(SideAI, RoleAI, cfg)
			ball := stillBall(cfg, 400, tc.ballCenterY-cfg.BallSize/2)
			ball.VX = 5

			rng := &scriptedRand{floats: []float64{tc.roll}, ints: []int{tc.offsetIndex}}
			assert.Equal(t, tc.expected, ai.Decide(ball, tc.difficulty, rng))
			assert.Equal(t, 1, rng.floatCalls, "one reaction roll per step")
			assert.Equal(t, tc.expectedIntn, rng.intCalls, "offset drawn only after a successful roll")
		})
	}
}

func TestPaddle_Decide_DriftsToCenter(t *testing.T) {
	cfg := testConfig()
	testCases := []struct {
		name     string
		paddleY  float64
		expected Direction
	}{
		{"Above center drifts down", 0, DirectionDown},
		{"Below center drifts up", 500, DirectionUp},
		{"At center stays", 250, DirectionNone},
		{"Within one step stays", 257, DirectionNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ai := NewPaddle(SideAI, RoleAI, cfg)
			ai.Y = tc.paddleY
			ball := stillBall(cfg, 400, 100)
			ball.VX = -5 // moving away from the AI

			rng := &scriptedRand{}
			assert.Equal(t, tc.expected, ai.Decide(ball, 5, rng))
			assert.Zero(t, rng.floatCalls, "drifting consumes no randomness")
			assert.Empty(t, rng.intCalls)
		})
	}
}

func TestPaddle_Decide_LeftSide(t *testing.T) {
	cfg := testConfig()
	player := NewPaddle(SidePlayer, RoleAI, cfg)
	ball := stillBall(cfg, 400, 500)

	ball.VX = -5
	rng := &scriptedRand{floats: []float64{0}, ints: []int{37}}
	assert.Equal(t, DirectionDown, player.Decide(ball, 1, rng), "a ball moving left approaches the left paddle")

	ball.VX = 5
	player.Y = 0
	assert.Equal(t, DirectionDown, player.Decide(ball, 1, &scriptedRand{}), "a ball moving right sends it back to center")
}
