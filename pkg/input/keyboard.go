package input

import (
	"github.com/eiannone/keyboard"
	"github.com/trytobebee/torus_snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}
	return directionForRune(input.Char)
}

// Parse maps a key input to a control action
func Parse(input KeyInput) Action {
	if d, ok := ParseDirection(input); ok {
		return Action{Kind: ActionMove, Direction: d}
	}
	switch input.Key {
	case keyboard.KeySpace:
		return Action{Kind: ActionPause}
	case keyboard.KeyEsc:
		return Action{Kind: ActionRestart}
	case keyboard.KeyCtrlC:
		return Action{Kind: ActionQuit}
	}
	return actionForRune(input.Char)
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return Parse(input).Kind == ActionQuit
}

// IsRestart checks if the input is a restart command
func IsRestart(input KeyInput) bool {
	return Parse(input).Kind == ActionRestart
}

// IsPause checks if the input is a pause command
func IsPause(input KeyInput) bool {
	return Parse(input).Kind == ActionPause
}
