package protocol

// Message types sent by the server
const (
	MsgConfig = "config"
	MsgState  = "state"
	MsgError  = "error"
)

// Client actions
const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionPause   = "pause"
	ActionRestart = "restart"
)

// ServerMessage is the envelope for everything the server writes
type ServerMessage struct {
	Type   string         `json:"type"`
	Config *GameConfig    `json:"config,omitempty"`
	State  *StateSnapshot `json:"state,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// ClientMessage is a single input from the browser
type ClientMessage struct {
	Action string `json:"action"`
}

// GameConfig is sent once when a session starts
type GameConfig struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	FPS  int `json:"fps"`
}

// StateSnapshot is the board after a tick or an action.
// Snake and Food are flat row, col pairs; the snake runs oldest segment first
// and ends with the head.
type StateSnapshot struct {
	Snake   []int  `json:"snake"`
	Food    []int  `json:"food"`
	Length  int    `json:"length"`
	Paused  bool   `json:"paused"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
