package renderer

import "github.com/trytobebee/torus_snake/pkg/game"

// View is the read-only state a renderer draws. *game.Universe satisfies it.
type View interface {
	Rows() int
	Cols() int
	SnakeBlocks() []game.Block
	Food() game.Block
	Paused() bool
	SnakeLength() int
}

// Frame is a detached snapshot implementing View, used for replays
type Frame struct {
	rows, cols int
	snake      []game.Block
	food       game.Block
	paused     bool
	length     int
}

// FrameFromRecord rebuilds a drawable frame from a trace record
func FrameFromRecord(rec game.StepRecord) Frame {
	f := Frame{
		rows:   rec.Rows,
		cols:   rec.Cols,
		paused: rec.Paused,
		length: rec.Length,
	}
	for i := 0; i+1 < len(rec.Snake); i += 2 {
		f.snake = append(f.snake, game.Block{Row: rec.Snake[i], Col: rec.Snake[i+1]})
	}
	if len(rec.Food) == 2 {
		f.food = game.Block{Row: rec.Food[0], Col: rec.Food[1]}
	}
	return f
}

func (f Frame) Rows() int { return f.rows }
func (f Frame) Cols() int { return f.cols }
func (f Frame) SnakeBlocks() []game.Block { return f.snake }
func (f Frame) Food() game.Block { return f.food }
func (f Frame) Paused() bool { return f.paused }
func (f Frame) SnakeLength() int { return f.length }
