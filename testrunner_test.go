package wander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "click", "node": "door"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "back"}
		]
	}`)

	runner, err := LoadTestScript(data)
	require.NoError(t, err)
	require.Len(t, runner.steps, 4)
	assert.Equal(t, testStep{Action: "click", Node: "door"}, runner.steps[0])
	assert.Equal(t, testStep{Action: "click", X: 100, Y: 200}, runner.steps[1])
	assert.Equal(t, testStep{Action: "wait", Frames: 3}, runner.steps[2])
	assert.Equal(t, "back", runner.steps[3].Action)
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	assert.Error(t, err)
}

func runScript(t *testing.T, s *Stage, script string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	require.NoError(t, err)
	s.SetTestRunner(runner)
	for i := 0; i < 200 && !runner.Done(); i++ {
		s.Step(0.25)
	}
	require.True(t, runner.Done(), "script did not finish")
	return runner
}

func TestRunnerPlayThrough(t *testing.T) {
	h := newHouse(t, 0.5)
	runScript(t, h.stage, `{"steps": [
		{"action": "click", "node": "door"},
		{"action": "wait", "frames": 8},
		{"action": "click", "node": "back"},
		{"action": "wait", "frames": 8}
	]}`)

	assert.Same(t, h.lobby, h.graph.Active())
	assert.Empty(t, h.graph.History())
	assert.False(t, h.back.Visible)
}

func TestRunnerBackAction(t *testing.T) {
	h := newHouse(t, 0)
	h.graph.Switch(h.door)
	runScript(t, h.stage, `{"steps": [{"action": "back"}]}`)
	assert.Same(t, h.lobby, h.graph.Active())
}

func TestRunnerOverlayActions(t *testing.T) {
	h := newHouse(t, 0)
	runScript(t, h.stage, `{"steps": [{"action": "overlay_on"}, {"action": "wait", "frames": 4}]}`)
	assert.Equal(t, OverlayOpen, h.stage.Overlay().State())

	runScript(t, h.stage, `{"steps": [{"action": "overlay_off"}, {"action": "wait", "frames": 4}]}`)
	assert.Equal(t, OverlayClosed, h.stage.Overlay().State())
}

func TestRunnerRecordsMissingNodes(t *testing.T) {
	h := newHouse(t, 0)
	runner := runScript(t, h.stage, `{"steps": [{"action": "click", "node": "attic"}]}`)
	assert.Equal(t, []string{"attic"}, runner.Missing())
}
