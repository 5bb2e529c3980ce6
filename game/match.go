// File: game/match.go
package game

import (
	"fmt"

	"github.com/lguibr/pickleball/utils"
)

type MatchState int

const (
	MatchStateServing MatchState = iota
	MatchStateRallying
	MatchStateComplete
)

var matchStateNames = map[MatchState]string{
	MatchStateServing:  "serving",
	MatchStateRallying: "rallying",
	MatchStateComplete: "complete",
}

func (s MatchState) String() string { return matchStateNames[s] }

func (s MatchState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MatchState) UnmarshalText(text []byte) error {
	for state, name := range matchStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown match state %q", text)
}

// Outcome is the final result of a completed match.
type Outcome struct {
	Winner      Side `json:"winner"`
	PlayerScore int  `json:"playerScore"`
	AIScore     int  `json:"aiScore"`
	Difficulty  int  `json:"difficulty"`
	Steps       int  `json:"steps"`
}

// Match is one round played to the win score. It owns both paddles and the
// ball and is only mutated by Step.
type Match struct {
	Player     *Paddle
	AI         *Paddle
	Ball       *Ball
	Difficulty int
	State      MatchState
	Steps      int
	Outcome    *Outcome

	// Autopilot is the AI level steering the player paddle. Zero means the
	// player paddle follows the input.
	Autopilot int

	winScore int
	rng      Rand
}

// NewMatch sets up fresh paddles and serves the first ball.
func NewMatch(cfg utils.Config, difficulty int, rng Rand) *Match {
	m := &Match{
		Player:     NewPaddle(SidePlayer, RoleHuman, cfg),
		AI:         NewPaddle(SideAI, RoleAI, cfg),
		Ball:       NewBall(cfg),
		Difficulty: difficulty,
		State:      MatchStateServing,
		winScore:   cfg.WinScore,
		rng:        rng,
	}
	m.Ball.Serve(rng)
	return m
}

// SetAutopilot lets the AI policy drive the player paddle at the given level.
func (m *Match) SetAutopilot(level int) {
	m.Autopilot = level
	m.Player.Role = RoleHuman
	if level > 0 {
		m.Player.Role = RoleAI
	}
}

func (m *Match) IsComplete() bool { return m.State == MatchStateComplete }

// Step advances the match by one tick and returns what happened during it.
// Stepping a complete match does nothing.
func (m *Match) Step(input Input) []Event {
	if m.IsComplete() {
		return nil
	}
	m.Steps++
	if m.State == MatchStateServing {
		m.State = MatchStateRallying
	}

	if m.Autopilot > 0 {
		m.Player.Move(m.Player.Decide(m.Ball, m.Autopilot, m.rng))
	} else {
		m.Player.Move(DirectionFromInput(input))
	}
	m.AI.Move(m.AI.Decide(m.Ball, m.Difficulty, m.rng))

	scorer, events := m.Ball.Step(m.Player, m.AI, m.rng)
	if scorer != SideNone {
		m.State = MatchStateServing
	}

	// Both paddles are checked every step.
	if hit, ok := m.Ball.Collide(m.Player); ok {
		events = append(events, hit)
	}
	if hit, ok := m.Ball.Collide(m.AI); ok {
		events = append(events, hit)
	}

	if winner := m.winner(); winner != SideNone {
		m.State = MatchStateComplete
		m.Outcome = &Outcome{
			Winner:      winner,
			PlayerScore: m.Player.Score,
			AIScore:     m.AI.Score,
			Difficulty:  m.Difficulty,
			Steps:       m.Steps,
		}
		events = append(events, MatchComplete(winner, m.Player.Score, m.AI.Score))
	}
	return events
}

func (m *Match) winner() Side {
	switch {
	case m.Player.Score >= m.winScore:
		return SidePlayer
	case m.AI.Score >= m.winScore:
		return SideAI
	}
	return SideNone
}
