// File: game/frame.go
package game

// Frame is the snapshot of one simulation step handed to presenters and
// spectators. Paddles and ball are copies, so a Frame never changes after
// it is built.
type Frame struct {
	Step          int        `json:"step"`
	Width         float64    `json:"width"`
	Height        float64    `json:"height"`
	Player        Paddle     `json:"player"`
	AI            Paddle     `json:"ai"`
	Ball          Ball       `json:"ball"`
	Difficulty    int        `json:"difficulty"`
	State         MatchState `json:"state"`
	Waiting       bool       `json:"waiting,omitempty"` // Held on the difficulty screen until continued
	Outcome       *Outcome   `json:"outcome,omitempty"`
	MatchesPlayed int        `json:"matchesPlayed"`
	MatchesWon    int        `json:"matchesWon"`
	Events        []Event    `json:"events,omitempty"`
}

// Frame captures the current match. It returns the zero Frame before the
// first match starts.
func (s *Session) Frame() Frame {
	frame := Frame{
		Width:         s.cfg.FieldWidth,
		Height:        s.cfg.FieldHeight,
		Difficulty:    s.Difficulty,
		MatchesPlayed: s.MatchesPlayed,
		MatchesWon:    s.MatchesWon,
	}
	m := s.Match
	if m == nil {
		return frame
	}

	frame.Step = m.Steps
	frame.Player = *m.Player
	frame.AI = *m.AI
	frame.Ball = *m.Ball
	frame.Ball.contacts = nil
	frame.Difficulty = m.Difficulty
	frame.State = m.State
	if m.Outcome != nil {
		outcome := *m.Outcome
		frame.Outcome = &outcome
	}
	return frame
}

// HasEvent reports whether the frame carries an event of type t.
func (f Frame) HasEvent(t EventType) bool {
	for _, e := range f.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Presenter consumes frames. Present is called from the host loop and must not block.
type Presenter interface {
	Present(frame Frame)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame Frame)

func (f PresenterFunc) Present(frame Frame) { f(frame) }
