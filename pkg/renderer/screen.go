package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/torus_snake/pkg/config"
	"github.com/trytobebee/torus_snake/pkg/game"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleCrash  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// ScreenRenderer draws the board on a tcell screen, one cell per block.
// The board occupies rows 1..Rows of the screen inside a one-cell border;
// status lines follow below it.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialised tcell screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Render draws v with the status for the latest tick outcome
func (r *ScreenRenderer) Render(v View, outcome game.Outcome) {
	s := r.screen
	s.Clear()

	rows, cols := v.Rows(), v.Cols()
	for col := 0; col <= cols+1; col++ {
		s.SetContent(col, 0, '-', nil, styleBorder)
		s.SetContent(col, rows+1, '-', nil, styleBorder)
	}
	for row := 1; row <= rows; row++ {
		s.SetContent(0, row, '|', nil, styleBorder)
		s.SetContent(cols+1, row, '|', nil, styleBorder)
	}

	food := v.Food()
	s.SetContent(food.Col+1, food.Row+1, config.RuneFood, nil, styleFood)

	blocks := v.SnakeBlocks()
	for i, b := range blocks {
		ch, style := config.RuneBody, styleBody
		if i == len(blocks)-1 {
			ch, style = config.RuneHead, styleHead
			if outcome == game.Loss {
				style = styleCrash
			}
		}
		s.SetContent(b.Col+1, b.Row+1, ch, nil, style)
	}

	r.text(0, rows+2, game.OutcomeMessage(outcome, v.Paused()))
	r.text(0, rows+3, game.StatusLine(v.SnakeLength()))
	s.Show()
}

func (r *ScreenRenderer) text(x, y int, msg string) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, nil, styleText)
		x++
	}
}
