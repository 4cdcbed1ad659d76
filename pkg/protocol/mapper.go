package protocol

import (
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/input"
)

func ToConfig(u *game.Universe, fps int) *GameConfig {
	return &GameConfig{
		Rows: u.Rows(),
		Cols: u.Cols(),
		FPS:  fps,
	}
}

func ToStateSnapshot(u *game.Universe, outcome game.Outcome) *StateSnapshot {
	return &StateSnapshot{
		Snake:   u.SnakeCoordinates(),
		Food:    u.FoodCoordinates(),
		Length:  u.SnakeLength(),
		Paused:  u.Paused(),
		Outcome: outcome.String(),
		Message: game.OutcomeMessage(outcome, u.Paused()),
		Status:  game.StatusLine(u.SnakeLength()),
	}
}

func ConfigMessage(u *game.Universe, fps int) ServerMessage {
	return ServerMessage{Type: MsgConfig, Config: ToConfig(u, fps)}
}

func StateMessage(u *game.Universe, outcome game.Outcome) ServerMessage {
	return ServerMessage{Type: MsgState, State: ToStateSnapshot(u, outcome)}
}

func ErrorMessage(err error) ServerMessage {
	return ServerMessage{Type: MsgError, Error: err.Error()}
}

// FromClientMessage decodes a client action; unknown actions map to ActionNone
func FromClientMessage(msg ClientMessage) input.Action {
	switch msg.Action {
	case ActionUp:
		return input.Action{Kind: input.ActionMove, Direction: game.Up}
	case ActionDown:
		return input.Action{Kind: input.ActionMove, Direction: game.Down}
	case ActionLeft:
		return input.Action{Kind: input.ActionMove, Direction: game.Left}
	case ActionRight:
		return input.Action{Kind: input.ActionMove, Direction: game.Right}
	case ActionPause:
		return input.Action{Kind: input.ActionPause}
	case ActionRestart:
		return input.Action{Kind: input.ActionRestart}
	}
	return input.Action{}
}
