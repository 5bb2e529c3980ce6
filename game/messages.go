// File: game/messages.go
package game

import "golang.org/x/net/websocket"

// --- GameActor Messages ---

// GameTick advances the session by one step.
type GameTick struct{}

// InputMessage replaces the key snapshot used by the following steps.
type InputMessage struct {
	Input Input
}

// ContinueMessage releases a match waiting on the difficulty screen, or
// sets up the next match once the current one is over.
type ContinueMessage struct{}

// GetFrameRequest is answered with the latest Frame. Use it with Engine.Ask.
type GetFrameRequest struct{}

// --- BroadcasterActor Messages ---

type AddClient struct {
	Conn *websocket.Conn
}

type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastFrame sends a frame to every spectator.
type BroadcastFrame struct {
	Frame Frame
}
