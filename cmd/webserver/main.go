package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/trytobebee/torus_snake/pkg/config"
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/input"
	"github.com/trytobebee/torus_snake/pkg/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ServerOptions holds per-process settings shared by every session
type ServerOptions struct {
	Rows  int
	Cols  int
	FPS   int
	Trace bool
}

// GameSession is one websocket connection and the Universe it plays.
// Only the loop goroutine touches the Universe; the reader hands actions
// over through a channel.
type GameSession struct {
	id       string
	opts     ServerOptions
	universe *game.Universe
	outcome  game.Outcome
	tick     int
	recorder *game.GameRecorder
}

func NewGameSession(opts ServerOptions) (*GameSession, error) {
	gs := &GameSession{
		id:   uuid.New().String(),
		opts: opts,
	}
	if err := gs.reset(); err != nil {
		return nil, err
	}
	return gs, nil
}

func (gs *GameSession) reset() error {
	u, err := game.NewUniverse(gs.opts.Rows, gs.opts.Cols)
	if err != nil {
		return err
	}
	gs.universe = u
	gs.outcome = game.Continue
	gs.tick = 0
	return nil
}

// handleAction applies one client action; it returns an error only if a
// restart could not build a new Universe
func (gs *GameSession) handleAction(msg protocol.ClientMessage) error {
	a := protocol.FromClientMessage(msg)
	switch a.Kind {
	case input.ActionRestart:
		if gs.outcome.Terminal() {
			return gs.reset()
		}
	case input.ActionMove, input.ActionPause:
		if !gs.outcome.Terminal() {
			a.Apply(gs.universe)
		}
	}
	return nil
}

// update ticks unless the game is over; it reports whether state changed
func (gs *GameSession) update() bool {
	if gs.outcome.Terminal() {
		return false
	}
	gs.outcome = gs.universe.Tick()
	gs.tick++
	if gs.recorder != nil {
		gs.recorder.RecordStep(game.NewStepRecord(gs.tick, gs.universe, gs.outcome))
	}
	if gs.outcome.Terminal() {
		log.Printf("Session %s ended: %s at length %d after %d ticks\n", gs.id, gs.outcome, gs.universe.SnakeLength(), gs.tick)
	}
	return true
}

func (gs *GameSession) state() protocol.ServerMessage {
	return protocol.StateMessage(gs.universe, gs.outcome)
}

func serveWebSocket(opts ServerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		gs, err := NewGameSession(opts)
		if err != nil {
			log.Println("Session error:", err)
			conn.WriteJSON(protocol.ErrorMessage(err))
			return
		}
		log.Printf("New WebSocket connection from %s (session %s)\n", r.RemoteAddr, gs.id)
		defer log.Printf("Session %s closed\n", gs.id)

		if opts.Trace {
			rec, path, err := game.NewRecorder(config.RecordDir, gs.id)
			if err != nil {
				log.Println("Trace disabled:", err)
			} else {
				gs.recorder = rec
				log.Printf("Session %s tracing to %s\n", gs.id, path)
				defer rec.Close()
			}
		}

		if err := conn.WriteJSON(protocol.ConfigMessage(gs.universe, opts.FPS)); err != nil {
			log.Println("Write error:", err)
			return
		}
		if err := conn.WriteJSON(gs.state()); err != nil {
			log.Println("Write error:", err)
			return
		}

		actions := make(chan protocol.ClientMessage, config.ActionQueueSize)
		done := make(chan struct{})
		defer close(done)
		go func() {
			defer close(actions)
			for {
				var msg protocol.ClientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					log.Println("Read error:", err)
					return
				}
				select {
				case actions <- msg:
				case <-done:
					return
				}
			}
		}()

		ticker := time.NewTicker(config.TickIntervalFor(opts.FPS))
		defer ticker.Stop()

		for {
			select {
			case msg, ok := <-actions:
				if !ok {
					return
				}
				if err := gs.handleAction(msg); err != nil {
					log.Println("Restart error:", err)
					conn.WriteJSON(protocol.ErrorMessage(err))
					return
				}
			case <-ticker.C:
				if !gs.update() {
					continue
				}
			}

			if err := conn.WriteJSON(gs.state()); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

func main() {
	addr := flag.String("addr", config.ServerAddr, "listen address")
	rows := flag.Int("rows", config.DefaultRows, "board rows")
	cols := flag.Int("cols", config.DefaultCols, "board columns")
	fps := flag.Int("fps", config.FPS, "ticks per second")
	trace := flag.Bool("trace", false, "record every session to "+config.RecordDir)
	flag.Parse()

	opts := ServerOptions{Rows: *rows, Cols: *cols, FPS: *fps, Trace: *trace}
	if _, err := game.NewUniverse(opts.Rows, opts.Cols); err != nil {
		log.Fatal("Invalid board: ", err)
	}

	// Serve static files
	http.Handle("/", http.FileServer(http.Dir(config.StaticDir)))
	http.HandleFunc(config.WebSocketPath, serveWebSocket(opts))

	fmt.Printf("🚀 Snake Game Web Server starting on http://localhost%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
