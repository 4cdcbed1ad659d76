package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/trytobebee/torus_snake/pkg/game"
)

// TestToneRange verifies tone samples stay in [-1, 1] and fade out
func TestToneRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(rate, 440, 880, 50*time.Millisecond)

	samples := make([][2]float64, rate.N(50*time.Millisecond))
	n, ok := tone.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = %d,%v, want %d,true", n, ok, len(samples))
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("Sample %d not mono: %v", i, samples[i])
		}
	}
	if tone.Err() != nil {
		t.Errorf("Expected no error, got: %v", tone.Err())
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		cue  beep.Streamer
		want int
	}{
		{"eat", EatCue(rate), rate.N(90 * time.Millisecond)},
		{"loss", LossCue(rate), rate.N(300 * time.Millisecond)},
		{"win", WinCue(rate), 2*rate.N(120*time.Millisecond) + rate.N(240*time.Millisecond)},
	}
	for _, tt := range tests {
		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := tt.cue.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total != tt.want {
			t.Errorf("%s cue streamed %d samples, want %d", tt.name, total, tt.want)
		}
	}
}

// TestPlayWithoutSpeaker must be a silent no-op
func TestPlayWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager()
	sm.PlayEat()
	sm.PlayOutcome(game.Win)
	sm.PlayOutcome(game.Continue)
	sm.Cleanup()
}
