package cui

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep is a single action in a test script.
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
	Button string  `json:"button,omitempty"`
}

// parseButton maps a script button name to a MouseButton. Empty means the
// primary button.
func parseButton(name string) (MouseButton, bool) {
	if name == "" {
		return MouseButtonLeft, true
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing. Attach it with Context.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script of the form
//
//	{"steps": [{"action": "click", "x": 10, "y": 20}, ...]}
//
// Actions are click, drag, wait, and screenshot. Click and drag take an
// optional "button" (left, right, middle, back, forward).
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := parseButton(st.Button); !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown button %q", i, st.Button)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses the test script at path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// SetTestRunner attaches runner to the context. It is stepped once per
// BeginFrame, before queued input is applied.
func (c *Context) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether every step has executed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(c *Context) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		b, _ := parseButton(st.Button)
		c.InjectButtonClick(b, st.X, st.Y)
	case "drag":
		b, _ := parseButton(st.Button)
		c.InjectButtonDrag(b, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
