// File: game/collision_tracker_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionTracker_BeginCollision(t *testing.T) {
	tracker := NewCollisionTracker()

	assert.True(t, tracker.BeginCollision(SidePlayer), "First BeginCollision should return true")
	assert.True(t, tracker.IsColliding(SidePlayer))
	assert.False(t, tracker.BeginCollision(SidePlayer), "Second BeginCollision for the same paddle should return false")
	assert.True(t, tracker.BeginCollision(SideAI), "Other paddle is tracked separately")
}

func TestCollisionTracker_EndCollision(t *testing.T) {
	tracker := NewCollisionTracker()
	tracker.BeginCollision(SideAI)

	tracker.EndCollision(SideAI)
	assert.False(t, tracker.IsColliding(SideAI))
	assert.True(t, tracker.BeginCollision(SideAI), "contact can begin again after it ended")

	tracker.EndCollision(SidePlayer) // never started
	assert.False(t, tracker.IsColliding(SidePlayer))
}

func TestCollisionTracker_ClearAll(t *testing.T) {
	tracker := NewCollisionTracker()
	tracker.BeginCollision(SidePlayer)
	tracker.BeginCollision(SideAI)

	tracker.ClearAll()
	assert.False(t, tracker.IsColliding(SidePlayer))
	assert.False(t, tracker.IsColliding(SideAI))
}
