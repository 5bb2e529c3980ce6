package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lguibr/pickleball/game"
	"github.com/lguibr/pickleball/render"
	"golang.org/x/net/websocket"
)

// cursorHome redraws over the previous frame instead of clearing the screen.
const cursorHome = "\033[H"

// watch renders every frame received on ws to out until the server closes
// the stream or ctx ends. It returns the number of frames drawn.
func watch(ctx context.Context, ws *websocket.Conn, renderer *render.ASCII, out io.Writer) (int, error) {
	frames := 0
	for {
		var frame game.Frame
		if err := websocket.JSON.Receive(ws, &frame); err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("receive frame: %w", err)
		}

		// Raw mode disables output post-processing, so lines need an explicit carriage return.
		text := strings.ReplaceAll(renderer.Render(frame), "\n", "\r\n")
		if _, err := io.WriteString(out, cursorHome+text); err != nil {
			return frames, err
		}
		frames++
	}
}
