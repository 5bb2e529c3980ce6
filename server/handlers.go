// File: server/handlers.go
package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lguibr/pickleball/bollywood"
	"github.com/lguibr/pickleball/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection with the broadcaster and keeps it
// open until the spectator leaves. Anything a spectator sends is discarded.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr
		log.Printf("[SERVER] spectator connected from %s", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				log.Printf("[SERVER] PANIC recovered in HandleSubscribe for %s: %v\n%s", connectionAddr, r, string(debug.Stack()))
			}
			s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
			log.Printf("[SERVER] spectator %s disconnected", connectionAddr)
		}()

		s.engine.Send(s.broadcasterPID, game.AddClient{Conn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop blocks until the connection fails or is closed.
func (s *Server) readLoop(ws *websocket.Conn) {
	var discard []byte
	for {
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("[SERVER] read from %s: %v", ws.Request().RemoteAddr, err)
			}
			return
		}
	}
}

// HandleGetFrame returns the latest frame by asking the GameActor.
func (s *Server) HandleGetFrame() gin.HandlerFunc {
	return func(c *gin.Context) {
		reply, err := s.engine.Ask(s.gameActorPID, game.GetFrameRequest{}, s.askTimeout)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, bollywood.ErrTimeout) {
				status = http.StatusGatewayTimeout
			} else if errors.Is(err, bollywood.ErrActorNotFound) || errors.Is(err, bollywood.ErrEngineStopping) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		frame, ok := reply.(game.Frame)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected reply from game"})
			return
		}
		c.JSON(http.StatusOK, frame)
	}
}

func (s *Server) HandleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(s.startedAt).Round(time.Second).String(),
		})
	}
}
