package input

import "github.com/trytobebee/torus_snake/pkg/game"

// ActionKind identifies what a key press asks the game to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionPause
	ActionRestart
	ActionQuit
)

// Action is a decoded key press. Direction is set only for ActionMove.
type Action struct {
	Kind      ActionKind
	Direction game.Direction
}

// Apply forwards moves and pause toggles to u; other kinds belong to the loop
func (a Action) Apply(u *game.Universe) {
	switch a.Kind {
	case ActionMove:
		u.BufferDirection(a.Direction)
	case ActionPause:
		u.TogglePause()
	}
}

// WASD keys
func directionForRune(r rune) (game.Direction, bool) {
	switch r {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}
	return 0, false
}

func actionForRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return Action{Kind: ActionQuit}
	case 'r', 'R':
		return Action{Kind: ActionRestart}
	case 'p', 'P', ' ':
		return Action{Kind: ActionPause}
	}
	return Action{}
}
