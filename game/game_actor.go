// File: game/game_actor.go
package game

import (
	"log"
	"runtime/debug"
	"time"

	"github.com/lguibr/pickleball/bollywood"
	"github.com/lguibr/pickleball/utils"
)

// GameActorOptions configures the host loop around a Session.
type GameActorOptions struct {
	Presenters []Presenter
	// ManualTicks disables the internal ticker. GameTick must then be sent by the caller.
	ManualTicks bool
}

// GameActor hosts a Session: it paces steps, keeps the latest input
// snapshot and hands every frame to the presenters.
type GameActor struct {
	cfg        utils.Config
	opts       GameActorOptions
	session    *Session
	input      Input
	frame      Frame
	pending    []Event
	waiting    bool // A new match is held on the difficulty screen
	idleSteps  int  // Steps spent waiting or since the current match completed
	selfPID    *bollywood.PID
	engine     *bollywood.Engine
	ticker     *time.Ticker
	stopTicker chan struct{}
}

func NewGameActorProducer(cfg utils.Config, rng Rand, opts GameActorOptions) bollywood.Producer {
	return func() bollywood.Actor {
		a := &GameActor{
			cfg:        cfg,
			opts:       opts,
			stopTicker: make(chan struct{}),
		}
		a.session = NewSession(cfg, rng, SessionHooks{
			OnDifficultyScreen: a.onDifficultyScreen,
			OnMatchComplete:    a.onMatchComplete,
		})
		if cfg.Autoplay {
			a.session.SetAutopilot(cfg.AutoplayLevel)
		}
		return a
	}
}

func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[GAME] PANIC recovered in GameActor %s Receive: %v\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()
		a.engine = ctx.Engine()
		a.startMatch()
		a.frame = a.session.Frame()
		a.frame.Waiting = a.waiting
		if !a.opts.ManualTicks {
			a.startTicker()
		}
		log.Printf("[GAME] GameActor %s started at difficulty %d", a.selfPID, a.session.Difficulty)

	case GameTick:
		a.step()

	case InputMessage:
		a.input = msg.Input

	case ContinueMessage:
		a.continueSession()

	case GetFrameRequest:
		ctx.Reply(a.frame)

	case bollywood.Stopping:
		a.stopTickerLoop()
		log.Printf("[GAME] GameActor %s stopping after %d matches", a.selfPID, a.session.MatchesPlayed)

	case bollywood.Stopped:

	default:
		log.Printf("[GAME] GameActor %s: unknown message type %T", a.selfPID, msg)
	}
}

func (a *GameActor) step() {
	match := a.session.Match
	switch {
	case a.waiting:
		a.idleSteps++
		if a.autoContinueDue() {
			a.begin()
		}
	case match != nil && match.IsComplete():
		a.idleSteps++
		if a.autoContinueDue() {
			a.startMatch()
		}
	}

	var events []Event
	if !a.waiting {
		events = a.session.Step(a.input)
	}
	frame := a.session.Frame()
	frame.Waiting = a.waiting
	frame.Events = append(a.pending, events...)
	a.pending = nil
	a.frame = frame

	for _, p := range a.opts.Presenters {
		p.Present(frame)
	}
}

// continueSession releases a match held on the difficulty screen, or sets up
// the next one once the current match is over.
func (a *GameActor) continueSession() {
	if a.waiting {
		a.begin()
		return
	}
	if a.session.Match != nil && !a.session.Match.IsComplete() {
		return
	}
	a.startMatch()
}

// startMatch sets up the next match and holds it until continued.
func (a *GameActor) startMatch() {
	a.session.NextMatch()
	a.waiting = true
	a.idleSteps = 0
}

func (a *GameActor) begin() {
	a.waiting = false
	a.idleSteps = 0
}

func (a *GameActor) autoContinueDue() bool {
	return a.cfg.Autoplay && a.cfg.AutoContinueSteps > 0 && a.idleSteps >= a.cfg.AutoContinueSteps
}

func (a *GameActor) onDifficultyScreen(difficulty int) {
	a.pending = append(a.pending, DifficultyScreen(difficulty))
}

func (a *GameActor) onMatchComplete(outcome Outcome, difficulty int) {
	a.idleSteps = 0
	if outcome.Winner == SidePlayer && difficulty >= a.cfg.MaxDifficulty {
		log.Printf("[GAME] player beat the highest difficulty")
	}
}

// startTicker sends GameTick to the actor's own mailbox at the step rate.
func (a *GameActor) startTicker() {
	a.ticker = time.NewTicker(a.cfg.StepPeriod())
	ticks := a.ticker.C
	stop := a.stopTicker
	engine, self := a.engine, a.selfPID

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-ticks:
				engine.Send(self, GameTick{}, nil)
			}
		}
	}()
}

func (a *GameActor) stopTickerLoop() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTicker:
	default:
		close(a.stopTicker)
	}
}
