package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/pickleball/render"
	"github.com/lguibr/pickleball/utils"
	"golang.org/x/net/websocket"
)

func main() {
	url := flag.String("url", "ws://localhost:3001/subscribe", "websocket endpoint of a running game")
	origin := flag.String("origin", "http://localhost/", "origin header sent with the websocket handshake")
	configPath := flag.String("config", utils.DefaultConfigPath, "TOML config shared with the game, for depth and score limits")
	cols := flag.Int("cols", 80, "screen columns")
	rows := flag.Int("rows", 30, "screen rows")
	color := flag.Bool("color", true, "colour the output with ANSI escape codes")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	websocketConnection, err := websocket.Dial(*url, "", *origin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to server:", err)
		os.Exit(1)
	}
	defer websocketConnection.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		websocketConnection.Close()
	}()

	restore, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		log.Printf("[SPECTATOR] keyboard disabled, press Ctrl-C to quit: %v", err)
	} else {
		go readQuitKeys(cancel)
	}

	helpers.ClearScreen()
	renderer := render.NewASCII(*cols, *rows, render.OptionsFromConfig(cfg), *color)
	frames, err := watch(ctx, websocketConnection, renderer, os.Stdout)
	// os.Exit skips deferred calls, so the terminal is restored here.
	if restore != nil {
		restore()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading from server:", err)
		os.Exit(1)
	}
	fmt.Printf("Watched %d frames\n", frames)
}

// readQuitKeys cancels on q, Q or Ctrl-C. Raw mode turns off signal keys, so Ctrl-C arrives as a byte.
func readQuitKeys(cancel context.CancelFunc) {
	singleByteBuffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}
		switch singleByteBuffer[0] {
		case 'q', 'Q', 0x03:
			cancel()
			return
		}
	}
}
