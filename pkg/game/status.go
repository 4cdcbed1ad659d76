package game

import (
	"fmt"

	"github.com/trytobebee/torus_snake/pkg/config"
)

// LengthRank returns a playful label for the snake's size
func LengthRank(length int) string {
	switch {
	case length < 5:
		return "Very smol :^)"
	case length < 10:
		return "smol :o"
	case length < 20:
		return "big boi =^-^="
	default:
		return "woahhhhhh!"
	}
}

// StatusLine describes the snake length for the status bar
func StatusLine(length int) string {
	return fmt.Sprintf("Snake length: %d. %s", length, LengthRank(length))
}

// OutcomeMessage returns the headline shown for the latest tick outcome
func OutcomeMessage(o Outcome, paused bool) string {
	switch o {
	case Loss:
		return config.MsgLoss
	case Win:
		return config.MsgWin
	}
	if paused {
		return config.MsgPaused
	}
	return config.MsgPlaying
}
