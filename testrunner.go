package isobox

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// defaultSettleFrames bounds a "settle" step without an explicit frame count.
const defaultSettleFrames = 600

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Level  int     `json:"level,omitempty"`
}

// testScript is the top-level JSON structure for a test script. Session
// names the game session a recording came from.
type testScript struct {
	Session string     `json:"session,omitempty"`
	Steps   []testStep `json:"steps"`
}

//go:embed schemas/testscript.schema.json
var testScriptSchemaJSON string

var testScriptSchema = jsonschema.MustCompileString("testscript.schema.json", testScriptSchemaJSON)

// TestRunner sequences injected input, camera and level actions, checks
// and screenshots across updates for scripted play. Attach to a Game via
// SetTestRunner.
//
// Pointer actions (click, drag, and the raw press, move and release samples
// a Recorder writes) go through the same state machine as the mouse. The
// other actions are wait, settle, restart, reset_camera, screenshot and
// expect_level.
type TestRunner struct {
	steps       []testStep
	cursor      int
	waitCount   int
	settleCount int
	done        bool
	failures    []string
}

// LoadTestScript validates a JSON test script against the script schema and
// returns a TestRunner ready to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if err := testScriptSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called from Game.Update before input is processed.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of every expect step that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one update. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settleCount > 0 {
		if !g.world.Busy() {
			r.settleCount = 0
		} else {
			r.settleCount--
			return
		}
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "press":
		g.InjectPress(st.X, st.Y)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "release":
		g.InjectRelease(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this update counts as one
		}
	case "settle":
		r.settleCount = st.Frames
		if r.settleCount <= 0 {
			r.settleCount = defaultSettleFrames
		}
	case "restart":
		g.Restart()
	case "reset_camera":
		g.world.ResetCamera()
	case "expect_level":
		if got := g.world.LevelNumber; got != st.Level {
			msg := fmt.Sprintf("step %d: level = %d, want %d", r.cursor-1, got, st.Level)
			r.failures = append(r.failures, msg)
			logf("test script: %s", msg)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.settleCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
