package game

import "github.com/gammazero/deque"

// Snake is the player's body on a toroidal rows x cols board.
// The head is stored apart from the tail; tail.Front() is the segment just
// behind the head and tail.Back() the oldest one.
type Snake struct {
	head Block
	tail deque.Deque[Block]

	current     Direction
	moving      bool // current is set
	buffered    Direction
	hasBuffered bool

	rows, cols int
	length     int
}

// NewSnake creates a stationary snake of length 1 at the board center
func NewSnake(rows, cols int) *Snake {
	return &Snake{
		head:   Block{Row: rows / 2, Col: cols / 2},
		rows:   rows,
		cols:   cols,
		length: 1,
	}
}

// BufferDirection queues d to be applied at the start of the next tick.
// Reversing straight into the neck is ignored once the snake is moving.
func (s *Snake) BufferDirection(d Direction) {
	if s.moving && d == s.current.Opposite() {
		return
	}
	s.buffered = d
	s.hasBuffered = true
}

// Tick advances the snake one cell and reports what happened
func (s *Snake) Tick(food Block) SnakeOutcome {
	if s.hasBuffered {
		s.current = s.buffered
		s.moving = true
		s.hasBuffered = false
	}

	s.tail.PushFront(s.head)

	if s.moving {
		dRow, dCol := s.current.Delta()
		s.head = Block{
			Row: wrap(s.head.Row+dRow, s.rows),
			Col: wrap(s.head.Col+dCol, s.cols),
		}

		if s.occupiesTail(s.head) {
			return SnakeCollidedWithSelf
		}
	}

	// Food is checked before trimming so growth is never masked
	if s.head == food {
		s.length++
		return SnakeAteFood
	}
	if s.tail.Len() > 0 {
		s.tail.PopBack()
	}

	return SnakeMoved
}

func (s *Snake) occupiesTail(b Block) bool {
	for i := 0; i < s.tail.Len(); i++ {
		if s.tail.At(i) == b {
			return true
		}
	}
	return false
}

// Head returns the current head cell
func (s *Snake) Head() Block {
	return s.head
}

// Length returns the number of occupied cells
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the direction applied on ticks, if one has been set
func (s *Snake) Direction() (Direction, bool) {
	return s.current, s.moving
}

// BufferedDirection returns the pending direction change, if any
func (s *Snake) BufferedDirection() (Direction, bool) {
	return s.buffered, s.hasBuffered
}

// Blocks returns the body from the oldest tail segment to the head
func (s *Snake) Blocks() []Block {
	n := s.tail.Len()
	blocks := make([]Block, 0, n+1)
	for i := n - 1; i >= 0; i-- {
		blocks = append(blocks, s.tail.At(i))
	}
	return append(blocks, s.head)
}

// Contains reports whether b is occupied by any part of the body
func (s *Snake) Contains(b Block) bool {
	return s.head == b || s.occupiesTail(b)
}

// Coordinates flattens Blocks into row, col pairs
func (s *Snake) Coordinates() []int {
	blocks := s.Blocks()
	coords := make([]int, 0, 2*len(blocks))
	for _, b := range blocks {
		coords = append(coords, b.Row, b.Col)
	}
	return coords
}

// wrap maps v into [0, n) so that moving off one edge re-enters the opposite
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
