// File: server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lguibr/pickleball/bollywood"
	"golang.org/x/net/websocket"
)

const defaultAskTimeout = 500 * time.Millisecond

// Server exposes the running game to spectators over HTTP and websocket.
type Server struct {
	engine         *bollywood.Engine
	gameActorPID   *bollywood.PID
	broadcasterPID *bollywood.PID
	askTimeout     time.Duration
	startedAt      time.Time
}

func New(engine *bollywood.Engine, gameActorPID, broadcasterPID *bollywood.PID) *Server {
	return &Server{
		engine:         engine,
		gameActorPID:   gameActorPID,
		broadcasterPID: broadcasterPID,
		askTimeout:     defaultAskTimeout,
		startedAt:      time.Now(),
	}
}

// Router wires the routes. Request logs go to the standard logger so they
// never reach a terminal owned by the game screen.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())

	router.GET("/", s.HandleGetFrame())
	router.GET("/health", s.HandleHealth())
	router.GET("/subscribe", gin.WrapH(websocket.Handler(s.HandleSubscribe())))
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
