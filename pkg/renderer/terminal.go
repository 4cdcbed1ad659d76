package renderer

import (
	"io"
	"strings"

	"github.com/trytobebee/torus_snake/pkg/config"
	"github.com/trytobebee/torus_snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	cols   int
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a rows x cols board writing to out
func NewTerminalRenderer(out io.Writer, rows, cols int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, rows)
	for i := range board {
		board[i] = make([]int, cols)
	}

	return &TerminalRenderer{
		out:   out,
		cols:  cols,
		board: board,
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	io.WriteString(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	io.WriteString(r.out, "\033[?25l")
}

// Render draws v with the status for the latest tick outcome
func (r *TerminalRenderer) Render(v View, outcome game.Outcome) {
	r.buffer.Reset()
	// Clear the screen using ANSI escape codes
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	for row := range r.board {
		for col := range r.board[row] {
			r.board[row][col] = cellEmpty
		}
	}

	r.mark(v.Food(), cellFood)
	blocks := v.SnakeBlocks()
	for i, b := range blocks {
		if i == len(blocks)-1 {
			if outcome == game.Loss {
				r.mark(b, cellCrash)
			} else {
				r.mark(b, cellHead)
			}
		} else {
			r.mark(b, cellBody)
		}
	}

	r.buffer.WriteString("\n  🐍 TORUS SNAKE 🐍\n\n")

	border := "  +" + strings.Repeat("--", r.cols) + "+\n"
	r.buffer.WriteString(border)
	for _, row := range r.board {
		r.buffer.WriteString("  |")
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString("|\n")
	}
	r.buffer.WriteString(border)

	r.buffer.WriteString("\n  " + game.OutcomeMessage(outcome, v.Paused()) + "\n")
	r.buffer.WriteString("  " + game.StatusLine(v.SnakeLength()) + "\n")
	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, edges wrap around\n")
	r.buffer.WriteString("  Space/P to pause, R to restart, Q to quit\n")

	io.WriteString(r.out, r.buffer.String())
}

// mark ignores cells outside the board, which a malformed replay can carry
func (r *TerminalRenderer) mark(b game.Block, cell int) {
	if b.Row < 0 || b.Row >= len(r.board) || b.Col < 0 || b.Col >= len(r.board[b.Row]) {
		return
	}
	r.board[b.Row][b.Col] = cell
}
