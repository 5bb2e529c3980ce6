// File: game/collision_tracker.go
package game

// CollisionTracker remembers which paddles the ball currently overlaps so
// that a collision response fires once per contact instead of once per step.
type CollisionTracker struct {
	activeCollisions map[Side]bool
}

func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{
		activeCollisions: make(map[Side]bool),
	}
}

// BeginCollision registers a contact with the paddle on side. It returns true
// only for a new contact, meaning the response should be applied.
func (ct *CollisionTracker) BeginCollision(side Side) bool {
	if ct.activeCollisions[side] {
		return false
	}
	ct.activeCollisions[side] = true
	return true
}

// EndCollision re-arms the tracker once the boxes have separated.
func (ct *CollisionTracker) EndCollision(side Side) {
	delete(ct.activeCollisions, side)
}

func (ct *CollisionTracker) IsColliding(side Side) bool {
	return ct.activeCollisions[side]
}

// ClearAll forgets every contact. Called on each serve.
func (ct *CollisionTracker) ClearAll() {
	ct.activeCollisions = make(map[Side]bool)
}
