package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	paddle := Rect{X: 20, Y: 250, Width: 15, Height: 100}
	testCases := []struct {
		name       string
		ball       Rect
		intersects bool
	}{
		{"Overlapping face", Rect{X: 30, Y: 290, Width: 15, Height: 15}, true},
		{"Touching right edge", Rect{X: 35, Y: 290, Width: 15, Height: 15}, false},
		{"Touching top edge", Rect{X: 25, Y: 235, Width: 15, Height: 15}, false},
		{"Overlapping corner", Rect{X: 34, Y: 236, Width: 15, Height: 15}, true},
		{"Far away", Rect{X: 400, Y: 300, Width: 15, Height: 15}, false},
		{"Fully inside", Rect{X: 21, Y: 300, Width: 5, Height: 5}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.intersects, paddle.Intersects(tc.ball), "paddle vs ball")
			assert.Equal(t, tc.intersects, tc.ball.Intersects(paddle), "ball vs paddle")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 392.5, Y: 292.5, Width: 15, Height: 15}
	assert.Equal(t, 392.5, r.Left())
	assert.Equal(t, 407.5, r.Right())
	assert.Equal(t, 292.5, r.Top())
	assert.Equal(t, 307.5, r.Bottom())
	assert.Equal(t, 400.0, r.CenterX())
	assert.Equal(t, 300.0, r.CenterY())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 15.0, Clamp(16.2, -15, 15))
	assert.Equal(t, -15.0, Clamp(-100, -15, 15))
	assert.Equal(t, 3.5, Clamp(3.5, -15, 15))
	assert.Equal(t, 10, ClampInt(11, 1, 10))
	assert.Equal(t, 1, ClampInt(-2, 1, 10))
	assert.Equal(t, 4, ClampInt(4, 1, 10))
}
