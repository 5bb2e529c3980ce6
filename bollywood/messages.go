package bollywood

import "errors"

// --- System Messages ---

// Started is the first message an actor receives.
type Started struct{}

// Stopping asks the actor to release its resources. No user message is
// delivered after it.
type Stopping struct{}

// Stopped is the last message an actor receives, right before its goroutine exits.
type Stopped struct{}

// --- Errors ---

var (
	ErrActorNotFound  = errors.New("bollywood: actor not found")
	ErrTimeout        = errors.New("bollywood: ask timed out")
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// messageEnvelope wraps a user message with its sender and, for Ask, the reply channel.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	replyTo chan interface{}
}
