// File: game/game_actor_test.go
package game

import (
	"sync"
	"testing"
	"time"

	"github.com/lguibr/pickleball/bollywood"
	"github.com/lguibr/pickleball/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures every frame it is given.
type recordingPresenter struct {
	mu     sync.Mutex
	frames []Frame
}

func (p *recordingPresenter) Present(frame Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, frame)
}

func (p *recordingPresenter) Frames() []Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Frame, len(p.frames))
	copy(out, p.frames)
	return out
}

// MockBroadcasterActor captures messages sent to it.
type MockBroadcasterActor struct {
	mu       sync.Mutex
	Received []interface{}
}

func (a *MockBroadcasterActor) Receive(ctx bollywood.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Received = append(a.Received, ctx.Message())
}

func (a *MockBroadcasterActor) GetMessages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.Received))
	copy(msgs, a.Received)
	return msgs
}

func setupGameActor(t *testing.T, cfg utils.Config, presenters ...Presenter) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()
	engine := bollywood.NewEngine()
	pid := engine.Spawn(bollywood.NewProps(NewGameActorProducer(cfg, NewRand(11), GameActorOptions{
		Presenters:  presenters,
		ManualTicks: true,
	})))
	require.NotNil(t, pid, "GameActor PID should not be nil")
	return engine, pid
}

func askFrame(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID) Frame {
	t.Helper()
	reply, err := engine.Ask(pid, GetFrameRequest{}, time.Second)
	require.NoError(t, err)
	frame, ok := reply.(Frame)
	require.True(t, ok, "GetFrameRequest should be answered with a Frame, got %T", reply)
	return frame
}

func TestGameActor_StartsFirstMatch(t *testing.T) {
	engine, pid := setupGameActor(t, testConfig())
	defer engine.Shutdown(time.Second)

	frame := askFrame(t, engine, pid)
	assert.Equal(t, 0, frame.Step)
	assert.Equal(t, MatchStateServing, frame.State)
	assert.Equal(t, 1, frame.Difficulty)
	assert.True(t, frame.Waiting, "the first match waits for SPACE")
}

func TestGameActor_WaitsForContinueBeforeFirstStep(t *testing.T) {
	presenter := &recordingPresenter{}
	engine, pid := setupGameActor(t, testConfig(), presenter)
	defer engine.Shutdown(time.Second)

	served := askFrame(t, engine, pid).Ball
	engine.Send(pid, InputMessage{Input: Input{Up: true}}, nil)
	for i := 0; i < 10; i++ {
		engine.Send(pid, GameTick{}, nil)
	}

	frame := askFrame(t, engine, pid)
	assert.Equal(t, 0, frame.Step, "no step runs before the continue")
	assert.Equal(t, MatchStateServing, frame.State)
	assert.Equal(t, served.X, frame.Ball.X)
	assert.Equal(t, served.Y, frame.Ball.Y)
	assert.Equal(t, 250.0, frame.Player.Y, "input is ignored while waiting")

	frames := presenter.Frames()
	require.Len(t, frames, 10, "waiting frames are still presented")
	for _, f := range frames {
		assert.True(t, f.Waiting)
	}
	assert.True(t, frames[0].HasEvent(EventDifficultyScreen))

	engine.Send(pid, ContinueMessage{}, nil)
	engine.Send(pid, GameTick{}, nil)

	frame = askFrame(t, engine, pid)
	assert.Equal(t, 1, frame.Step)
	assert.False(t, frame.Waiting)
	assert.Equal(t, 242.0, frame.Player.Y)
}

func TestGameActor_AutoplayWaitsBeforeStarting(t *testing.T) {
	cfg := testConfig()
	cfg.Autoplay = true
	cfg.AutoContinueSteps = 3
	engine, pid := setupGameActor(t, cfg)
	defer engine.Shutdown(time.Second)

	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, GameTick{}, nil)
	frame := askFrame(t, engine, pid)
	assert.Equal(t, 0, frame.Step)
	assert.True(t, frame.Waiting)

	engine.Send(pid, GameTick{}, nil)
	frame = askFrame(t, engine, pid)
	assert.Equal(t, 1, frame.Step, "the pause is over and the match steps")
	assert.False(t, frame.Waiting)
}

func TestGameActor_TickAppliesInput(t *testing.T) {
	presenter := &recordingPresenter{}
	engine, pid := setupGameActor(t, testConfig(), presenter)
	defer engine.Shutdown(time.Second)

	engine.Send(pid, ContinueMessage{}, nil)
	engine.Send(pid, InputMessage{Input: Input{Up: true}}, nil)
	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, GameTick{}, nil)

	frame := askFrame(t, engine, pid)
	assert.Equal(t, 2, frame.Step)
	assert.Equal(t, 234.0, frame.Player.Y, "two steps up from 250")

	frames := presenter.Frames()
	require.Len(t, frames, 2, "every tick is presented")
	assert.True(t, frames[0].HasEvent(EventDifficultyScreen), "the first frame announces the difficulty")
	assert.False(t, frames[1].HasEvent(EventDifficultyScreen))

	engine.Send(pid, InputMessage{Input: Input{}}, nil)
	engine.Send(pid, GameTick{}, nil)
	assert.Equal(t, 234.0, askFrame(t, engine, pid).Player.Y, "released keys stop the paddle")
}

func TestGameActor_ContinueIgnoredDuringMatch(t *testing.T) {
	engine, pid := setupGameActor(t, testConfig())
	defer engine.Shutdown(time.Second)

	engine.Send(pid, ContinueMessage{}, nil)
	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, ContinueMessage{}, nil)
	engine.Send(pid, GameTick{}, nil)

	assert.Equal(t, 2, askFrame(t, engine, pid).Step, "the running match was not replaced")
}

func TestGameActor_AutoplayPlaysSuccessiveMatches(t *testing.T) {
	cfg := testConfig()
	cfg.WinScore = 1
	cfg.Autoplay = true
	cfg.AutoplayLevel = 9
	cfg.AutoContinueSteps = 5
	presenter := &recordingPresenter{}
	engine, pid := setupGameActor(t, cfg, presenter)
	defer engine.Shutdown(time.Second)

	matchesPlayed := 0
	for batch := 0; batch < 100 && matchesPlayed < 2; batch++ {
		for i := 0; i < 500; i++ {
			engine.Send(pid, GameTick{}, nil)
		}
		matchesPlayed = askFrame(t, engine, pid).MatchesPlayed
	}
	require.GreaterOrEqual(t, matchesPlayed, 2, "autoplay should keep starting new matches")

	screens, completions := 0, 0
	for _, f := range presenter.Frames() {
		if f.HasEvent(EventDifficultyScreen) {
			screens++
		}
		if f.HasEvent(EventMatchComplete) {
			completions++
			require.NotNil(t, f.Outcome)
		}
	}
	assert.GreaterOrEqual(t, completions, 2)
	assert.GreaterOrEqual(t, screens, completions, "each match starts with a difficulty screen")
}

func TestGameActor_TickerDrivesSteps(t *testing.T) {
	cfg := testConfig()
	engine := bollywood.NewEngine()
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(bollywood.NewProps(NewGameActorProducer(cfg, NewRand(5), GameActorOptions{})))
	require.NotNil(t, pid)
	engine.Send(pid, ContinueMessage{}, nil)

	assert.Eventually(t, func() bool {
		reply, err := engine.Ask(pid, GetFrameRequest{}, time.Second)
		if err != nil {
			return false
		}
		return reply.(Frame).Step >= 3
	}, 2*time.Second, 20*time.Millisecond, "the internal ticker should advance the match")
}

func TestBroadcastPresenter_ForwardsFrames(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(time.Second)

	mock := &MockBroadcasterActor{}
	broadcasterPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return mock }))
	require.NotNil(t, broadcasterPID)

	BroadcastPresenter{Engine: engine, PID: broadcasterPID}.Present(Frame{Step: 7})

	assert.Eventually(t, func() bool {
		for _, m := range mock.GetMessages() {
			if b, ok := m.(BroadcastFrame); ok && b.Frame.Step == 7 {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
