package game

import "testing"

// TestOppositeIsInvolution checks every direction maps back to itself
func TestOppositeIsInvolution(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for _, d := range Directions {
		if got := d.Opposite(); got != pairs[d] {
			t.Errorf("Opposite(%v) = %v, want %v", d, got, pairs[d])
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite(Opposite(%v)) = %v", d, got)
		}
	}
}

func TestNewSnakeCentered(t *testing.T) {
	tests := []struct {
		rows, cols int
		want       Block
	}{
		{5, 5, Block{2, 2}},
		{4, 7, Block{2, 3}},
		{1, 2, Block{0, 1}},
	}
	for _, tt := range tests {
		s := NewSnake(tt.rows, tt.cols)
		if s.Head() != tt.want {
			t.Errorf("%dx%d: head = %v, want %v", tt.rows, tt.cols, s.Head(), tt.want)
		}
		if s.Length() != 1 {
			t.Errorf("%dx%d: length = %d, want 1", tt.rows, tt.cols, s.Length())
		}
		if _, ok := s.Direction(); ok {
			t.Errorf("%dx%d: new snake should have no direction", tt.rows, tt.cols)
		}
	}
}

// TestStationaryTick verifies a snake without direction stays put
func TestStationaryTick(t *testing.T) {
	s := NewSnake(5, 5)
	for i := 0; i < 3; i++ {
		if got := s.Tick(Block{0, 0}); got != SnakeMoved {
			t.Fatalf("tick %d: outcome = %v, want none", i, got)
		}
	}
	if s.Head() != (Block{2, 2}) {
		t.Errorf("head moved to %v without a direction", s.Head())
	}
	if blocks := s.Blocks(); len(blocks) != 1 {
		t.Errorf("blocks = %v, want only the head", blocks)
	}
}

func TestWrapAroundEveryEdge(t *testing.T) {
	tests := []struct {
		name  string
		moves []Direction
		steps int
		want  Block
	}{
		{"up off top", []Direction{Up}, 3, Block{4, 2}},
		{"down off bottom", []Direction{Down}, 3, Block{0, 2}},
		{"left off left", []Direction{Left}, 3, Block{2, 4}},
		{"right off right", []Direction{Right}, 3, Block{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(5, 5)
			s.BufferDirection(tt.moves[0])
			for i := 0; i < tt.steps; i++ {
				if got := s.Tick(Block{-1, -1}); got != SnakeMoved {
					t.Fatalf("step %d: outcome = %v", i, got)
				}
			}
			if s.Head() != tt.want {
				t.Errorf("head = %v, want %v", s.Head(), tt.want)
			}
		})
	}
}

// TestReverseIgnored checks the snake cannot turn back into its neck
func TestReverseIgnored(t *testing.T) {
	s := NewSnake(5, 5)
	s.BufferDirection(Right)
	s.Tick(Block{-1, -1})

	s.BufferDirection(Left)
	if _, ok := s.BufferedDirection(); ok {
		t.Fatal("opposite direction should not be buffered")
	}
	s.Tick(Block{-1, -1})

	if d, _ := s.Direction(); d != Right {
		t.Errorf("direction = %v, want right", d)
	}
	if s.Head() != (Block{2, 4}) {
		t.Errorf("head = %v, want (2,4)", s.Head())
	}
}

// TestAnyDirectionBeforeFirstMove accepts every direction while stationary
func TestAnyDirectionBeforeFirstMove(t *testing.T) {
	for _, d := range Directions {
		s := NewSnake(5, 5)
		s.BufferDirection(d)
		got, ok := s.BufferedDirection()
		if !ok || got != d {
			t.Errorf("buffered = %v,%v, want %v", got, ok, d)
		}
	}
}

// TestLastBufferedWins keeps only the latest request between ticks
func TestLastBufferedWins(t *testing.T) {
	s := NewSnake(5, 5)
	s.BufferDirection(Right)
	s.Tick(Block{-1, -1})

	s.BufferDirection(Up)
	s.BufferDirection(Down)
	s.Tick(Block{-1, -1})

	if d, _ := s.Direction(); d != Down {
		t.Errorf("direction = %v, want down", d)
	}
	if _, ok := s.BufferedDirection(); ok {
		t.Error("buffer should be cleared after a tick")
	}
}

func TestEatGrowsWithoutTrim(t *testing.T) {
	s := NewSnake(5, 5)
	s.BufferDirection(Right)

	if got := s.Tick(Block{2, 3}); got != SnakeAteFood {
		t.Fatalf("outcome = %v, want generate_new_food", got)
	}
	if s.Length() != 2 {
		t.Errorf("length = %d, want 2", s.Length())
	}
	want := []Block{{2, 2}, {2, 3}}
	assertBlocks(t, s.Blocks(), want)

	// Next plain move translates without growing
	if got := s.Tick(Block{0, 0}); got != SnakeMoved {
		t.Fatalf("outcome = %v, want none", got)
	}
	assertBlocks(t, s.Blocks(), []Block{{2, 3}, {2, 4}})
	if s.Length() != len(s.Blocks()) {
		t.Errorf("length %d != %d blocks", s.Length(), len(s.Blocks()))
	}
}

func TestSelfCollision(t *testing.T) {
	s := NewSnake(5, 5)
	s.BufferDirection(Right)

	// Grow to length 5 along row 2
	foods := []Block{{2, 3}, {2, 4}, {2, 0}, {2, 1}}
	for _, f := range foods {
		if got := s.Tick(f); got != SnakeAteFood {
			t.Fatalf("eating %v: outcome = %v", f, got)
		}
	}
	if s.Length() != 5 {
		t.Fatalf("length = %d, want 5", s.Length())
	}

	// Down, Left, Up runs the head into its own body
	s.BufferDirection(Down)
	if got := s.Tick(Block{-1, -1}); got != SnakeMoved {
		t.Fatalf("down: outcome = %v", got)
	}
	s.BufferDirection(Left)
	if got := s.Tick(Block{-1, -1}); got != SnakeMoved {
		t.Fatalf("left: outcome = %v", got)
	}
	s.BufferDirection(Up)
	if got := s.Tick(Block{-1, -1}); got != SnakeCollidedWithSelf {
		t.Fatalf("up: outcome = %v, want collided_with_self", got)
	}
	if s.Head() != (Block{2, 0}) {
		t.Errorf("collided head = %v, want (2,0)", s.Head())
	}
}

// TestCollisionWithFoodOnBody reports collision before eating
func TestCollisionWithFoodOnBody(t *testing.T) {
	s := NewSnake(1, 3)
	s.BufferDirection(Right)
	if got := s.Tick(Block{0, 2}); got != SnakeAteFood {
		t.Fatalf("outcome = %v", got)
	}
	if got := s.Tick(Block{0, 0}); got != SnakeAteFood {
		t.Fatalf("outcome = %v", got)
	}
	// Board is full; the next step lands on the oldest segment
	if got := s.Tick(Block{0, 1}); got != SnakeCollidedWithSelf {
		t.Errorf("outcome = %v, want collided_with_self", got)
	}
}

func TestCoordinatesFlatten(t *testing.T) {
	s := NewSnake(5, 5)
	s.BufferDirection(Down)
	s.Tick(Block{3, 2})

	want := []int{2, 2, 3, 2}
	got := s.Coordinates()
	if len(got) != len(want) {
		t.Fatalf("coordinates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("coordinates = %v, want %v", got, want)
		}
	}
}

func assertBlocks(t *testing.T, got, want []Block) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("blocks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("blocks = %v, want %v", got, want)
		}
	}
}
