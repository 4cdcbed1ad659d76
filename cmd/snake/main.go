package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/trytobebee/torus_snake/pkg/audio"
	"github.com/trytobebee/torus_snake/pkg/config"
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/input"
)

func main() {
	rows := flag.Int("rows", config.DefaultRows, "board rows")
	cols := flag.Int("cols", config.DefaultCols, "board columns")
	fps := flag.Int("fps", config.FPS, "ticks per second")
	seed := flag.Uint64("seed", 0, "food placement seed (0 = random)")
	trace := flag.Bool("trace", false, "record every tick to "+config.RecordDir)
	sound := flag.Bool("sound", false, "play sound cues")
	screen := flag.String("screen", "ansi", "front-end: ansi or tcell")
	flag.Parse()

	var fe frontend
	var err error
	switch *screen {
	case "ansi":
		fe, err = newANSIFrontend(*rows, *cols)
	case "tcell":
		fe, err = newScreenFrontend()
	default:
		err = fmt.Errorf("unknown screen %q", *screen)
	}
	if err != nil {
		log.Fatal("Error opening terminal: ", err)
	}

	sess := &session{
		rows:   *rows,
		cols:   *cols,
		seed:   *seed,
		sounds: audio.NewSoundManager(),
	}
	if *sound {
		if err := sess.sounds.Initialize(); err != nil {
			log.Println("Sound disabled:", err)
		}
		defer sess.sounds.Cleanup()
	}
	if *trace {
		rec, path, err := game.NewRecorder(config.RecordDir, uuid.New().String())
		if err != nil {
			fe.Close()
			log.Fatal(err)
		}
		sess.recorder = rec
		defer func() {
			rec.Close()
			fmt.Println("  Trace saved to", path)
		}()
	}

	err = sess.run(fe, config.TickIntervalFor(*fps))
	fe.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	fmt.Println("\n  Thanks for playing! 👋")
}

// session drives one Universe at a time and replaces it on restart
type session struct {
	rows, cols int
	seed       uint64
	universe   *game.Universe
	outcome    game.Outcome
	tick       int
	games      int

	sounds   *audio.SoundManager
	recorder *game.GameRecorder
}

func (s *session) newUniverse() error {
	var opts []game.Option
	if s.seed != 0 {
		// Each restart gets its own reproducible sequence
		opts = append(opts, game.WithSampler(game.NewSeededSampler(s.seed+uint64(s.games))))
	}
	u, err := game.NewUniverse(s.rows, s.cols, opts...)
	if err != nil {
		return err
	}
	s.universe = u
	s.outcome = game.Continue
	s.tick = 0
	s.games++
	return nil
}

func (s *session) run(fe frontend, interval time.Duration) error {
	if err := s.newUniverse(); err != nil {
		return err
	}
	return s.runFrom(fe, interval)
}

// runFrom loops over the current universe until quit or the input closes
func (s *session) runFrom(fe frontend, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fe.Render(s.universe, s.outcome)

	actions := fe.Actions()
	for {
		select {
		case a, ok := <-actions:
			if !ok {
				return nil
			}
			switch a.Kind {
			case input.ActionQuit:
				return nil
			case input.ActionRestart:
				if s.outcome.Terminal() {
					if err := s.newUniverse(); err != nil {
						return err
					}
				}
			case input.ActionMove, input.ActionPause:
				if !s.outcome.Terminal() {
					a.Apply(s.universe)
				}
			}
			fe.Render(s.universe, s.outcome)

		case <-ticker.C:
			if s.outcome.Terminal() {
				continue
			}
			s.step()
			fe.Render(s.universe, s.outcome)
		}
	}
}

// step ticks the universe once and fans the result out to sound and trace
func (s *session) step() {
	before := s.universe.SnakeLength()
	s.outcome = s.universe.Tick()
	s.tick++

	if s.universe.SnakeLength() > before && s.outcome == game.Continue {
		s.sounds.PlayEat()
	}
	s.sounds.PlayOutcome(s.outcome)

	if s.recorder != nil {
		s.recorder.RecordStep(game.NewStepRecord(s.tick, s.universe, s.outcome))
	}
}
