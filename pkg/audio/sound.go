package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/trytobebee/torus_snake/pkg/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short cues for game events
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short rising chime
func (sm *SoundManager) PlayEat() {
	sm.play(EatCue(sampleRate))
}

// PlayOutcome plays the cue for a terminal outcome; Continue is silent
func (sm *SoundManager) PlayOutcome(o game.Outcome) {
	switch o {
	case game.Loss:
		sm.play(LossCue(sampleRate))
	case game.Win:
		sm.play(WinCue(sampleRate))
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EatCue is a 90ms sweep from 660Hz to 990Hz
func EatCue(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(90*time.Millisecond), NewTone(sr, 660, 990, 90*time.Millisecond))
}

// LossCue is a 300ms low falling tone
func LossCue(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(300*time.Millisecond), NewTone(sr, 220, 110, 300*time.Millisecond))
}

// WinCue is a C-E-G arpeggio
func WinCue(sr beep.SampleRate) beep.Streamer {
	note := 120 * time.Millisecond
	return beep.Seq(
		beep.Take(sr.N(note), NewTone(sr, 523.25, 523.25, note)),
		beep.Take(sr.N(note), NewTone(sr, 659.25, 659.25, note)),
		beep.Take(sr.N(2*note), NewTone(sr, 783.99, 783.99, 2*note)),
	)
}

// Tone is a sine sweep between two frequencies with a short attack and a
// linear release over its duration
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewTone creates a tone sweeping from one frequency to another over d
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration) *Tone {
	total := sr.N(d)
	if total < 1 {
		total = 1
	}
	return &Tone{sr: sr, from: from, to: to, total: total}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1.0)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		envelope := attack * (1.0 - progress)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}
