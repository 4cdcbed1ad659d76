package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StepRecord is one line of a game trace
type StepRecord struct {
	Tick    int    `json:"tick"`
	Outcome string `json:"outcome"`
	Paused  bool   `json:"paused"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Length  int    `json:"length"`
	Snake   []int  `json:"snake"`
	Food    []int  `json:"food"`
}

// NewStepRecord captures the universe right after a tick
func NewStepRecord(tick int, u *Universe, outcome Outcome) StepRecord {
	return StepRecord{
		Tick:    tick,
		Outcome: outcome.String(),
		Paused:  u.Paused(),
		Rows:    u.Rows(),
		Cols:    u.Cols(),
		Length:  u.SnakeLength(),
		Snake:   u.SnakeCoordinates(),
		Food:    u.FoodCoordinates(),
	}
}

// GameRecorder handles asynchronous logging of game steps
type GameRecorder struct {
	closer     io.Closer
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	dropped    int
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*GameRecorder, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create record file: %w", err)
	}

	return NewStreamRecorder(f), path, nil
}

// NewStreamRecorder records to w; w is closed by Close if it is an io.Closer
func NewStreamRecorder(w io.Writer) *GameRecorder {
	r := &GameRecorder{
		writer:     bufio.NewWriter(w),
		recordChan: make(chan StepRecord, 1000), // Buffer up to 1000 frames
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r
}

// RecordStep queues a record to be written. Non-blocking (drops if full).
func (r *GameRecorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		// Channel full, drop frame to protect the game loop
		r.dropped++
	}
}

// Dropped returns how many frames were discarded because the queue was full
func (r *GameRecorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close flushes the buffer and closes the underlying writer
func (r *GameRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	if err := r.writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing records: %v\n", err)
	}
}

// ReadTrace decodes every record of a JSONL trace
func ReadTrace(rd io.Reader) ([]StepRecord, error) {
	var records []StepRecord
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return records, fmt.Errorf("trace line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read trace: %w", err)
	}
	return records, nil
}
