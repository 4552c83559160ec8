package isobox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Recorder captures the pointer samples and key actions a Game applies,
// one update at a time, as a test script. Replaying the script with a
// TestRunner feeds the same samples on the same updates, so the simulation
// repeats exactly.
//
// Hover samples are not recorded; idle updates become wait steps.
type Recorder struct {
	session string
	steps   []testStep
	idle    int
	used    bool
}

// StartRecording attaches a new Recorder to the game and returns it.
func (g *Game) StartRecording() *Recorder {
	g.recorder = &Recorder{session: g.Session}
	return g.recorder
}

// StopRecording detaches the current Recorder, if any, and returns it.
func (g *Game) StopRecording() *Recorder {
	r := g.recorder
	g.recorder = nil
	return r
}

// add appends a step for the current update, flushing pending idle updates
// first.
func (r *Recorder) add(st testStep) {
	if r.idle > 0 {
		r.steps = append(r.steps, testStep{Action: "wait", Frames: r.idle})
		r.idle = 0
	}
	r.steps = append(r.steps, st)
	r.used = true
}

// endFrame counts the update as idle unless a step was recorded during it.
func (r *Recorder) endFrame() {
	if !r.used {
		r.idle++
	}
	r.used = false
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Script returns the recording as a JSON test script. Trailing idle
// updates are kept as a final wait so the replay runs as long as the
// recording did.
func (r *Recorder) Script() ([]byte, error) {
	steps := r.steps
	if r.idle > 0 {
		steps = append(steps[:len(steps):len(steps)], testStep{Action: "wait", Frames: r.idle})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("recording: no steps")
	}
	return json.MarshalIndent(testScript{Session: r.session, Steps: steps}, "", "  ")
}

// Save writes the recording to path. Paths ending in ".zst" are
// zstd-compressed.
func (r *Recorder) Save(path string) error {
	data, err := r.Script()
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".zst") {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()
			return fmt.Errorf("save recording: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	return nil
}

// ReadTestScript loads a test script file, decompressing it first when the
// path ends in ".zst".
func ReadTestScript(path string) (*TestRunner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("read test script %s: %w", path, err)
		}
		defer dec.Close()
		src = dec
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read test script %s: %w", path, err)
	}
	r, err := LoadTestScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
