package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for a board with no rows or no columns
	ErrInvalidDimensions = errors.New("rows and cols must be positive")
	// ErrBoardTooSmall is returned when no cell is left for the first food
	ErrBoardTooSmall = errors.New("board needs at least two cells")
	// ErrBoardFull is returned when food is requested with every cell occupied
	ErrBoardFull = errors.New("no free cell for food")
)

// Universe is one game session: a snake, a food cell and a fixed board.
// It holds no locks; callers serialize Tick and input calls.
type Universe struct {
	snake   *Snake
	food    Block
	rows    int
	cols    int
	paused  bool
	sampler Sampler
}

// Option configures a Universe at construction
type Option func(*Universe)

// WithSampler sets the random source used for food placement
func WithSampler(s Sampler) Option {
	return func(u *Universe) {
		u.sampler = s
	}
}

// NewUniverse creates a session with the snake at the board center and the
// first food on a random free cell
func NewUniverse(rows, cols int, opts ...Option) (*Universe, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("new universe %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if rows*cols < 2 {
		return nil, fmt.Errorf("new universe %dx%d: %w", rows, cols, ErrBoardTooSmall)
	}

	u := &Universe{
		snake: NewSnake(rows, cols),
		rows:  rows,
		cols:  cols,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.sampler == nil {
		u.sampler = NewSampler()
	}

	if err := u.generateNewFood(); err != nil {
		return nil, fmt.Errorf("new universe %dx%d: %w", rows, cols, err)
	}
	return u, nil
}

// Tick advances the game one step. Ticks while paused change nothing.
// After Loss or Win the caller must stop ticking.
func (u *Universe) Tick() Outcome {
	if u.paused {
		return Continue
	}

	switch u.snake.Tick(u.food) {
	case SnakeCollidedWithSelf:
		return Loss
	case SnakeAteFood:
		if u.snake.Length() == u.rows*u.cols {
			return Win
		}
		if err := u.generateNewFood(); err != nil {
			// Unreachable while the Win check above holds
			return Win
		}
		return Continue
	default:
		return Continue
	}
}

// generateNewFood samples cells until one is off the snake
func (u *Universe) generateNewFood() error {
	if u.snake.Length() >= u.rows*u.cols {
		return ErrBoardFull
	}

	for {
		food := Block{
			Row: u.sampler.Intn(u.rows),
			Col: u.sampler.Intn(u.cols),
		}
		if !u.snake.Contains(food) {
			u.food = food
			return nil
		}
	}
}

// BufferDirection forwards a direction change to the snake
func (u *Universe) BufferDirection(d Direction) {
	u.snake.BufferDirection(d)
}

// TogglePause flips the pause state, effective from the next Tick
func (u *Universe) TogglePause() {
	u.paused = !u.paused
}

// Rows returns the board height
func (u *Universe) Rows() int { return u.rows }

// Cols returns the board width
func (u *Universe) Cols() int { return u.cols }

// Paused reports whether ticks are currently ignored
func (u *Universe) Paused() bool { return u.paused }

// Food returns the current food cell
func (u *Universe) Food() Block { return u.food }

// Head returns the snake's head cell
func (u *Universe) Head() Block { return u.snake.Head() }

// SnakeLength returns the number of cells the snake occupies
func (u *Universe) SnakeLength() int { return u.snake.Length() }

// SnakeBlocks returns the body from the oldest tail segment to the head
func (u *Universe) SnakeBlocks() []Block { return u.snake.Blocks() }

// SnakeCoordinates returns the body as flat row, col pairs, oldest first
func (u *Universe) SnakeCoordinates() []int { return u.snake.Coordinates() }

// FoodCoordinates returns the food cell as a row, col pair
func (u *Universe) FoodCoordinates() []int {
	return []int{u.food.Row, u.food.Col}
}
