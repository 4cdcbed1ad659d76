package config

import "time"

// Board dimensions
const (
	DefaultRows = 40
	DefaultCols = 40
	SmallRows   = 20
	SmallCols   = 20
)

// Tick settings
const (
	FPS          = 15
	TickInterval = time.Second / FPS
	MinFPS       = 1
	MaxFPS       = 60
)

// Server settings
const (
	ServerAddr    = ":8080"
	StaticDir     = "web/static"
	WebSocketPath = "/ws"
	RecordDir     = "records"
	// Pending actions buffered per websocket session
	ActionQueueSize = 32
)

// Emoji characters for the ANSI renderer
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🍎"
	CharCrash = "💥"
)

// Runes for the tcell renderer, one cell wide each
const (
	RuneEmpty = ' '
	RuneHead  = '@'
	RuneBody  = 'o'
	RuneFood  = '*'
)

// Status messages shown under the board
const (
	MsgPlaying = "You got this!"
	MsgLoss    = "You lost! Press R to play again!"
	MsgWin     = "Congratulations -- You won! That's no small feat :^)"
	MsgPaused  = "PAUSED - Press P to continue"
)

// TickIntervalFor converts a frame rate into a tick interval, clamped to
// [MinFPS, MaxFPS].
func TickIntervalFor(fps int) time.Duration {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
