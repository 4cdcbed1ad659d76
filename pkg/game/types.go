package game

import "fmt"

// Direction is one of the four movement directions on the board
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the (row, col) displacement of one step in this direction
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Block is a (row, col) cell on the board
type Block struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (b Block) String() string {
	return fmt.Sprintf("(%d,%d)", b.Row, b.Col)
}

// SnakeOutcome is the result of advancing the snake by one tick
type SnakeOutcome int

const (
	SnakeMoved SnakeOutcome = iota
	SnakeAteFood
	SnakeCollidedWithSelf
)

func (o SnakeOutcome) String() string {
	switch o {
	case SnakeMoved:
		return "none"
	case SnakeAteFood:
		return "generate_new_food"
	case SnakeCollidedWithSelf:
		return "collided_with_self"
	default:
		return fmt.Sprintf("SnakeOutcome(%d)", int(o))
	}
}

// Outcome is the result of one Universe tick
type Outcome int

const (
	Continue Outcome = iota
	Loss
	Win
)

// Terminal reports whether the game has ended with this outcome
func (o Outcome) Terminal() bool {
	return o == Loss || o == Win
}

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Loss:
		return "loss"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
