package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pickleball/bollywood"
	"github.com/lguibr/pickleball/game"
	"github.com/lguibr/pickleball/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

const e2eTestTimeout = 20 * time.Second

// E2ESetupResult holds the running stack of an end-to-end test.
type E2ESetupResult struct {
	Engine *bollywood.Engine
	Server *httptest.Server
	WsURL  string
	Origin string
	Cfg    utils.Config
}

// SetupE2ETest starts a ticking game actor, a broadcaster and the HTTP server.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	gameActorPID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(cfg, game.NewRand(3), game.GameActorOptions{
		Presenters: []game.Presenter{game.BroadcastPresenter{Engine: engine, PID: broadcasterPID}},
	})))

	s := httptest.NewServer(New(engine, gameActorPID, broadcasterPID).Router())
	return E2ESetupResult{
		Engine: engine,
		Server: s,
		WsURL:  "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		Origin: "http://localhost/",
		Cfg:    cfg,
	}
}

// TeardownE2ETest shuts down the engine and closes the server.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult) {
	t.Helper()
	setupResult.Server.Close()
	setupResult.Engine.Shutdown(2 * time.Second)
}

// waitForFrame reads frames until condition holds or the timeout passes.
func waitForFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration, condition func(f game.Frame) bool) (game.Frame, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last game.Frame
	for time.Now().Before(deadline) {
		if err := ws.SetReadDeadline(deadline); err != nil {
			return last, false
		}
		var frame game.Frame
		if err := websocket.JSON.Receive(ws, &frame); err != nil {
			t.Logf("stream ended while waiting for frame: %v", err)
			return last, false
		}
		last = frame
		if condition(frame) {
			return frame, true
		}
	}
	return last, false
}

func TestE2E_AutoplaySessionAdvancesDifficulty(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.StepsPerSecond = 600
	cfg.WinScore = 2
	cfg.Autoplay = true
	cfg.AutoplayLevel = 10
	cfg.AutoContinueSteps = 5

	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer ws.Close()

	first, ok := waitForFrame(t, ws, e2eTestTimeout, func(f game.Frame) bool {
		return f.State == game.MatchStateComplete
	})
	require.True(t, ok, "no match completed, last frame at step %d", first.Step)
	require.NotNil(t, first.Outcome)
	require.Equal(t, cfg.WinScore, max(first.Outcome.PlayerScore, first.Outcome.AIScore))

	next, ok := waitForFrame(t, ws, e2eTestTimeout, func(f game.Frame) bool {
		return f.MatchesPlayed >= 1 && f.State != game.MatchStateComplete
	})
	require.True(t, ok, "autoplay did not continue, last frame at step %d", next.Step)
	require.Equal(t, 1, next.MatchesPlayed)
	if first.Outcome.Winner == game.SidePlayer {
		require.Equal(t, first.Outcome.Difficulty+1, next.Difficulty)
	} else {
		require.Equal(t, first.Outcome.Difficulty, next.Difficulty)
	}
}
