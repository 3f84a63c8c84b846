package wander

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Node   string  `json:"node,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and navigation actions across frames
// for automated play-throughs. Attach to a Stage via SetTestRunner.
//
// Actions: "click" (by "node" name or at "x"/"y"), "wait" ("frames"),
// "back", "overlay_on", "overlay_off".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	missing   []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Stage via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the stage. The runner's step method
// is called from Stage.Step before injected input is processed.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Missing returns the node names that "click" steps could not find.
func (r *TestRunner) Missing() []string {
	return r.missing
}

// step advances the test runner by one frame. Called from Stage.Step.
func (r *TestRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
	case "click":
		if st.Node == "" {
			s.InjectClick(st.X, st.Y)
		} else if !s.InjectClickNode(st.Node) {
			r.missing = append(r.missing, st.Node)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "back":
		s.svc.Coordinator.GoBack()
	case "overlay_on":
		if ov := s.svc.Overlay; ov != nil {
			ov.TurnOn()
		}
	case "overlay_off":
		if ov := s.svc.Overlay; ov != nil {
			ov.TurnOff()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
