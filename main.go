package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pickleball/audio"
	"github.com/lguibr/pickleball/bollywood"
	"github.com/lguibr/pickleball/game"
	"github.com/lguibr/pickleball/relay"
	"github.com/lguibr/pickleball/render"
	"github.com/lguibr/pickleball/server"
	"github.com/lguibr/pickleball/utils"
)

const (
	shutdownTimeout = 2 * time.Second
	keyHold         = 180 * time.Millisecond
	relayBuffer     = 256
	// headlessStepLimit bounds one simulated match to an hour of play.
	headlessStepLimit = 60 * 60 * 60
)

func main() {
	configPath := flag.String("config", utils.DefaultConfigPath, "path to the TOML config file")
	headless := flag.Bool("headless", false, "simulate matches without a terminal and print the outcomes")
	matches := flag.Int("matches", 1, "number of matches to simulate in headless mode")
	autoplay := flag.Bool("autoplay", false, "let the AI policy drive the player paddle")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *autoplay {
		cfg.Autoplay = true
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := game.NewRand(*seed)

	if *headless {
		if err := runHeadless(cfg, rng, *matches, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The screen owns the terminal, so logs go to a file.
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("[GAME] starting with seed %d", *seed)

	if err := run(cfg, rng); err != nil {
		fmt.Fprintf(os.Stderr, "Game failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg utils.Config, rng game.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := bollywood.NewEngine()
	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))

	presenters := []game.Presenter{
		render.NewTerminal(screen, render.OptionsFromConfig(cfg)),
		game.BroadcastPresenter{Engine: engine, PID: broadcasterPID},
	}

	if cfg.AudioEnabled {
		sounds := audio.NewSoundBoard()
		if err := sounds.Initialize(); err == nil {
			defer sounds.Cleanup()
			presenters = append(presenters, sounds)
		}
	}

	if cfg.RedisURL != "" {
		client, err := relay.Connect(cfg.RedisURL)
		if err != nil {
			log.Printf("[RELAY] redis unavailable, events will not be published: %v", err)
		} else {
			defer client.Close()
			events := relay.New(client, cfg.RedisChannel, relayBuffer)
			defer events.Close()
			presenters = append(presenters, events)
		}
	}

	gamePID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(cfg, rng, game.GameActorOptions{
		Presenters: presenters,
	})))
	defer engine.Shutdown(shutdownTimeout)

	srv := server.New(engine, gamePID, broadcasterPID)
	go func() {
		if err := srv.Run(ctx, cfg.HTTPAddr); err != nil {
			log.Printf("[SERVER] %v", err)
		}
	}()

	go forwardInput(ctx, screen, engine, gamePID, stop, cfg.StepPeriod())

	<-ctx.Done()
	log.Printf("[GAME] shutting down")
	return nil
}

// forwardInput turns key presses into game messages until the player quits
// or ctx ends. Held directions are re-sampled every step period so a
// released key stops the paddle once its hold window passes.
func forwardInput(ctx context.Context, screen tcell.Screen, engine *bollywood.Engine, gamePID *bollywood.PID, quit func(), period time.Duration) {
	keys := render.NewKeyState(keyHold)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var last game.Input
	sendInput := func(now time.Time) {
		input := keys.Input(now)
		if input != last {
			last = input
			engine.Send(gamePID, game.InputMessage{Input: input}, nil)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				quit()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch action := render.ActionForKey(ev); action {
				case render.ActionQuit:
					quit()
					return
				case render.ActionContinue:
					engine.Send(gamePID, game.ContinueMessage{}, nil)
				case render.ActionUp, render.ActionDown:
					keys.Press(action, time.Now())
					sendInput(time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			sendInput(now)
		}
	}
}

var errNoMatches = errors.New("nothing to simulate")

// runHeadless plays matches back to back with both paddles driven by the AI
// policy and writes one line per outcome.
func runHeadless(cfg utils.Config, rng game.Rand, matches int, w io.Writer) error {
	if matches <= 0 {
		return errNoMatches
	}

	session := game.NewSession(cfg, rng, game.SessionHooks{})
	session.SetAutopilot(cfg.AutoplayLevel)

	for i := 1; i <= matches; i++ {
		outcome, ok := game.Simulate(session, nil, headlessStepLimit)
		if !ok {
			return fmt.Errorf("match %d did not finish within %d steps", i, headlessStepLimit)
		}
		fmt.Fprintf(w, "match %d: %s wins %d-%d at difficulty %d in %d steps\n",
			i, outcome.Winner, outcome.PlayerScore, outcome.AIScore, outcome.Difficulty, outcome.Steps)
	}
	fmt.Fprintf(w, "won %d of %d, final difficulty %d\n", session.MatchesWon, session.MatchesPlayed, session.Difficulty)
	return nil
}
