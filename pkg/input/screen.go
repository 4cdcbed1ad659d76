package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/torus_snake/pkg/game"
)

// ParseEvent maps a tcell key event to a control action
func ParseEvent(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return Action{Kind: ActionMove, Direction: game.Up}
	case tcell.KeyDown:
		return Action{Kind: ActionMove, Direction: game.Down}
	case tcell.KeyLeft:
		return Action{Kind: ActionMove, Direction: game.Left}
	case tcell.KeyRight:
		return Action{Kind: ActionMove, Direction: game.Right}
	case tcell.KeyEscape:
		return Action{Kind: ActionRestart}
	case tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyRune:
		if d, ok := directionForRune(ev.Rune()); ok {
			return Action{Kind: ActionMove, Direction: d}
		}
		return actionForRune(ev.Rune())
	}
	return Action{}
}
