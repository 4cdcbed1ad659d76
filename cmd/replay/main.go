package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trytobebee/torus_snake/pkg/config"
	"github.com/trytobebee/torus_snake/pkg/game"
	"github.com/trytobebee/torus_snake/pkg/renderer"
)

// RecordFile describes one trace in the records directory
type RecordFile struct {
	Name      string
	Path      string
	Size      int64
	Time      time.Time
	SessionID string
}

func main() {
	dir := flag.String("dir", config.RecordDir, "records directory")
	fps := flag.Int("fps", config.FPS, "playback frames per second")
	list := flag.Bool("list", false, "list recorded games and exit")
	flag.Parse()

	records, err := listRecords(*dir)
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		printRecords(os.Stdout, records)
		return
	}

	path := flag.Arg(0)
	if path == "" {
		if len(records) == 0 {
			log.Fatalf("No traces in %s", *dir)
		}
		path = records[0].Path
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	steps, err := game.ReadTrace(f)
	if err != nil {
		log.Fatal(err)
	}
	if len(steps) == 0 {
		log.Fatalf("%s has no steps", path)
	}

	play(os.Stdout, steps, config.TickIntervalFor(*fps))
	fmt.Printf("\n  📼 Replayed %d ticks from %s\n", len(steps), filepath.Base(path))
}

// play draws every step in order, pausing interval between frames
func play(out io.Writer, steps []game.StepRecord, interval time.Duration) {
	first := steps[0]
	render := renderer.NewTerminalRenderer(out, first.Rows, first.Cols)
	for i, step := range steps {
		if i > 0 {
			time.Sleep(interval)
		}
		render.Render(renderer.FrameFromRecord(step), parseOutcome(step.Outcome))
	}
}

func parseOutcome(s string) game.Outcome {
	switch s {
	case game.Loss.String():
		return game.Loss
	case game.Win.String():
		return game.Win
	}
	return game.Continue
}

// listRecords returns the traces in dir, newest first
func listRecords(dir string) ([]RecordFile, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		sessID := ""
		if parts := strings.Split(strings.TrimSuffix(f.Name(), ".jsonl"), "_"); len(parts) >= 3 {
			sessID = strings.Join(parts[1:len(parts)-1], "_")
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Path:      filepath.Join(dir, f.Name()),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}

func printRecords(out io.Writer, records []RecordFile) {
	if len(records) == 0 {
		fmt.Fprintln(out, "  No replays yet.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(out, "  %s  session %s  %d bytes  %s\n", r.Name, r.SessionID, r.Size, r.Time.Format("2006-01-02 15:04:05"))
	}
}
