// File: game/broadcaster_actor.go
package game

import (
	"errors"
	"io"
	"log"
	"net"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/lguibr/pickleball/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor streams frames to connected spectators.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
}

func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[SERVER] PANIC recovered in BroadcasterActor %s Receive: %v\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		delete(a.clients, msg.Conn)

	case BroadcastFrame:
		a.broadcastFrame(msg.Frame)

	case bollywood.Stopping:
		a.closeAllConnections()

	case bollywood.Stopped:

	default:
		log.Printf("[SERVER] BroadcasterActor %s: unknown message type %T", a.selfPID, msg)
	}
}

func (a *BroadcasterActor) broadcastFrame(frame Frame) {
	for ws := range a.clients {
		if err := websocket.JSON.Send(ws, &frame); err != nil {
			if !isClosedConnErr(err) {
				log.Printf("[SERVER] BroadcasterActor %s: failed to send frame to %s: %v", a.selfPID, ws.RemoteAddr(), err)
			}
			delete(a.clients, ws)
			_ = ws.Close()
		}
	}
}

func (a *BroadcasterActor) closeAllConnections() {
	if len(a.clients) > 0 {
		log.Printf("[SERVER] BroadcasterActor %s: closing %d connections", a.selfPID, len(a.clients))
	}
	for ws := range a.clients {
		_ = ws.Close()
	}
	a.clients = make(map[*websocket.Conn]bool)
}

func isClosedConnErr(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return strings.Contains(err.Error(), "use of closed network connection")
}

// BroadcastPresenter forwards every frame to a BroadcasterActor.
type BroadcastPresenter struct {
	Engine *bollywood.Engine
	PID    *bollywood.PID
}

func (p BroadcastPresenter) Present(frame Frame) {
	p.Engine.Send(p.PID, BroadcastFrame{Frame: frame}, nil)
}
