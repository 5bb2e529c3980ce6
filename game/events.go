// File: game/events.go
package game

import "fmt"

// Side identifies a half of the court and the paddle that defends it.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player":
		*s = SidePlayer
	case "ai":
		*s = SideAI
	case "none", "":
		*s = SideNone
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

type EventType string

const (
	EventWallHit          EventType = "wallHit"
	EventPaddleHit        EventType = "paddleHit"
	EventScored           EventType = "scored"
	EventMatchComplete    EventType = "matchComplete"
	EventDifficultyScreen EventType = "difficultyScreen"
)

// Event is a discrete notification produced by a simulation step.
// Side is the paddle that was hit, the side that scored or the winner.
type Event struct {
	Type        EventType `json:"type"`
	Side        Side      `json:"side,omitempty"`
	PlayerScore int       `json:"playerScore,omitempty"`
	AIScore     int       `json:"aiScore,omitempty"`
	Difficulty  int       `json:"difficulty,omitempty"`
}

func WallHit() Event {
	return Event{Type: EventWallHit}
}

func PaddleHit(side Side) Event {
	return Event{Type: EventPaddleHit, Side: side}
}

func Scored(side Side, playerScore, aiScore int) Event {
	return Event{Type: EventScored, Side: side, PlayerScore: playerScore, AIScore: aiScore}
}

func MatchComplete(winner Side, playerScore, aiScore int) Event {
	return Event{Type: EventMatchComplete, Side: winner, PlayerScore: playerScore, AIScore: aiScore}
}

func DifficultyScreen(difficulty int) Event {
	return Event{Type: EventDifficultyScreen, Difficulty: difficulty}
}
