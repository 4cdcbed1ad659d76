package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/input"
	"github.com/trytobebee/torus_snake/pkg/renderer"
)

// frontend is a terminal presentation: it draws frames and yields actions
type frontend interface {
	Actions() <-chan input.Action
	Render(v renderer.View, outcome game.Outcome)
	Close()
}

// ansiFrontend pairs the raw keyboard reader with the ANSI renderer
type ansiFrontend struct {
	keys    *input.KeyboardHandler
	render  *renderer.TerminalRenderer
	actions chan input.Action
}

func newANSIFrontend(rows, cols int) (*ansiFrontend, error) {
	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return nil, err
	}

	fe := &ansiFrontend{
		keys:    keys,
		render:  renderer.NewTerminalRenderer(os.Stdout, rows, cols),
		actions: make(chan input.Action),
	}
	fe.render.HideCursor()

	go func() {
		for ev := range keys.GetInputChan() {
			if a := input.Parse(ev); a.Kind != input.ActionNone {
				fe.actions <- a
			}
		}
	}()
	return fe, nil
}

func (fe *ansiFrontend) Actions() <-chan input.Action { return fe.actions }

func (fe *ansiFrontend) Render(v renderer.View, outcome game.Outcome) {
	fe.render.Render(v, outcome)
}

func (fe *ansiFrontend) Close() {
	fe.render.ShowCursor()
	fe.keys.Stop()
}

// screenFrontend runs on a tcell screen, which owns both drawing and input
type screenFrontend struct {
	screen  tcell.Screen
	render  *renderer.ScreenRenderer
	actions chan input.Action
}

func newScreenFrontend() (*screenFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	fe := &screenFrontend{
		screen:  screen,
		render:  renderer.NewScreenRenderer(screen),
		actions: make(chan input.Action),
	}

	go func() {
		defer close(fe.actions)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// Screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if a := input.ParseEvent(ev); a.Kind != input.ActionNone {
					fe.actions <- a
				}
			}
		}
	}()
	return fe, nil
}

func (fe *screenFrontend) Actions() <-chan input.Action { return fe.actions }

func (fe *screenFrontend) Render(v renderer.View, outcome game.Outcome) {
	fe.render.Render(v, outcome)
}

func (fe *screenFrontend) Close() {
	fe.screen.Fini()
}
