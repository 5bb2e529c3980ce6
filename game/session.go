// File: game/session.go
package game

import (
	"log"

	"github.com/lguibr/pickleball/utils"
)

// SessionHooks lets the presentation layer react to round boundaries.
// Either hook may be nil.
type SessionHooks struct {
	OnDifficultyScreen func(difficulty int)
	OnMatchComplete    func(outcome Outcome, difficulty int)
}

// Session plays matches back to back and raises the difficulty each time
// the player wins, up to the configured maximum.
type Session struct {
	Difficulty    int
	Match         *Match
	MatchesPlayed int
	MatchesWon    int

	cfg       utils.Config
	rng       Rand
	hooks     SessionHooks
	autopilot int
}

func NewSession(cfg utils.Config, rng Rand, hooks SessionHooks) *Session {
	return &Session{
		Difficulty: cfg.StartDifficulty,
		cfg:        cfg,
		rng:        rng,
		hooks:      hooks,
	}
}

// SetAutopilot makes every following match drive the player paddle with the
// AI policy at level. Zero gives control back to the input.
func (s *Session) SetAutopilot(level int) {
	s.autopilot = level
	if s.Match != nil {
		s.Match.SetAutopilot(level)
	}
}

// NextMatch shows the difficulty screen and starts a new match at the
// current difficulty.
func (s *Session) NextMatch() *Match {
	if s.hooks.OnDifficultyScreen != nil {
		s.hooks.OnDifficultyScreen(s.Difficulty)
	}
	s.Match = NewMatch(s.cfg, s.Difficulty, s.rng)
	s.Match.SetAutopilot(s.autopilot)
	return s.Match
}

// Step advances the current match. When it completes, the outcome is
// reported and the difficulty advanced before Step returns.
func (s *Session) Step(input Input) []Event {
	if s.Match == nil || s.Match.IsComplete() {
		return nil
	}

	events := s.Match.Step(input)
	if s.Match.IsComplete() {
		s.finishMatch(*s.Match.Outcome)
	}
	return events
}

func (s *Session) finishMatch(outcome Outcome) {
	s.MatchesPlayed++
	if outcome.Winner == SidePlayer {
		s.MatchesWon++
	}
	log.Printf("[GAME] match %d over: %s wins %d-%d at difficulty %d after %d steps",
		s.MatchesPlayed, outcome.Winner, outcome.PlayerScore, outcome.AIScore, outcome.Difficulty, outcome.Steps)

	if s.hooks.OnMatchComplete != nil {
		s.hooks.OnMatchComplete(outcome, s.Difficulty)
	}
	if outcome.Winner == SidePlayer && s.Difficulty < s.cfg.MaxDifficulty {
		s.Difficulty++
	}
}

// Simulate starts a match and steps it until it completes or maxSteps is
// reached. input is asked for the key snapshot before every step.
func Simulate(s *Session, input func(m *Match) Input, maxSteps int) (Outcome, bool) {
	match := s.NextMatch()
	for i := 0; i < maxSteps && !match.IsComplete(); i++ {
		var in Input
		if input != nil {
			in = input(match)
		}
		s.Step(in)
	}
	if !match.IsComplete() {
		return Outcome{}, false
	}
	return *match.Outcome, true
}
