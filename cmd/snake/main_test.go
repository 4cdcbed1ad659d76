package main

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/trytobebee/torus_snake/pkg/audio"
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/input"
	"github.com/trytobebee/torus_snake/pkg/renderer"
)

// fakeFrontend feeds scripted actions and counts frames
type fakeFrontend struct {
	actions chan input.Action
	mu      sync.Mutex
	frames  int
	last    game.Outcome
}

func (f *fakeFrontend) Actions() <-chan input.Action { return f.actions }

func (f *fakeFrontend) Render(v renderer.View, outcome game.Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames++
	f.last = outcome
}

func (f *fakeFrontend) Close() {}

func TestSessionRunQuits(t *testing.T) {
	fe := &fakeFrontend{actions: make(chan input.Action)}
	var trace bytes.Buffer
	sess := &session{
		rows:     5,
		cols:     5,
		seed:     11,
		sounds:   audio.NewSoundManager(),
		recorder: game.NewStreamRecorder(&trace),
	}

	done := make(chan error, 1)
	go func() { done <- sess.run(fe, 5*time.Millisecond) }()

	fe.actions <- input.Action{Kind: input.ActionMove, Direction: game.Right}
	time.Sleep(30 * time.Millisecond)
	fe.actions <- input.Action{Kind: input.ActionQuit}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not return after quit")
	}

	if sess.tick == 0 {
		t.Error("no ticks happened")
	}
	if fe.frames < 2 {
		t.Errorf("frames = %d, want initial frame plus updates", fe.frames)
	}

	sess.recorder.Close()
	records, err := game.ReadTrace(&trace)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != sess.tick {
		t.Errorf("recorded %d steps for %d ticks", len(records), sess.tick)
	}
}

func TestSessionRestartOnlyAfterGameOver(t *testing.T) {
	sess := &session{rows: 5, cols: 5, seed: 3, sounds: audio.NewSoundManager()}
	if err := sess.newUniverse(); err != nil {
		t.Fatal(err)
	}
	first := sess.universe

	fe := &fakeFrontend{actions: make(chan input.Action)}
	done := make(chan error, 1)
	go func() { done <- sess.runFrom(fe, time.Hour) }()

	fe.actions <- input.Action{Kind: input.ActionRestart}
	fe.actions <- input.Action{Kind: input.ActionQuit}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if sess.universe != first {
		t.Error("restart replaced a running game")
	}

	sess.outcome = game.Loss
	go func() { done <- sess.runFrom(fe, time.Hour) }()
	fe.actions <- input.Action{Kind: input.ActionRestart}
	fe.actions <- input.Action{Kind: input.ActionQuit}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if sess.universe == first || sess.outcome != game.Continue {
		t.Error("restart after loss should start a new game")
	}
}
