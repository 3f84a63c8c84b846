package wander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func testOverlayConfig() OverlayConfig {
	return OverlayConfig{
		FadeIn:     0.25,
		ZoomIn:     0.5,
		FadeOut:    0.25,
		ZoomOut:    0.25,
		ZoomFrom:   0.5,
		CloseScale: 0.75,
		CloseDelay: 0.25,
		Ease:       ease.Linear,
	}
}

type overlayFixture struct {
	svc      *Services
	ov       *Overlay
	root     *Node
	bg, mask *Node
	triggers []string
}

func newOverlayFixture(cfg OverlayConfig) *overlayFixture {
	f := &overlayFixture{svc: NewServices()}
	f.root = NewContainer("overlay")
	f.bg = NewSprite("bg", Sprite{}, 10, 10)
	f.mask = NewSprite("mask", Sprite{}, 10, 10)
	f.root.AddChild(f.bg)
	f.root.AddChild(f.mask)
	f.root.OnAnimationTrigger = func(name string) { f.triggers = append(f.triggers, name) }
	f.ov = NewOverlay(f.root, f.bg, f.mask, nil, cfg)
	f.svc.SetOverlay(f.ov)
	return f
}

// --- State machine ---

func TestOverlayStartsClosed(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	assert.Equal(t, OverlayClosed, f.ov.State())
	assert.False(t, f.ov.IsOpen())
	assert.False(t, f.root.Visible)
}

func TestOverlayStartOpen(t *testing.T) {
	cfg := testOverlayConfig()
	cfg.StartOpen = true
	f := newOverlayFixture(cfg)
	assert.Equal(t, OverlayOpen, f.ov.State())
	assert.True(t, f.root.Visible)
	assert.Equal(t, 1.0, f.root.Alpha)
}

func TestOverlayOpenAnimation(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	f.ov.TurnOn()

	assert.Equal(t, OverlayOpening, f.ov.State())
	assert.True(t, f.root.Visible)
	assert.Equal(t, 0.0, f.root.Alpha)
	assert.Equal(t, 0.5, f.root.ScaleX)
	assert.Equal(t, []string{OverlayTriggerOpen}, f.triggers)

	f.ov.Update(0.25)
	assert.Equal(t, 1.0, f.root.Alpha, "fade finishes before the zoom")
	assert.InDelta(t, 0.75, f.root.ScaleX, 1e-6)
	assert.Equal(t, OverlayOpening, f.ov.State())

	f.ov.Update(0.25)
	assert.Equal(t, OverlayOpen, f.ov.State())
	assert.Equal(t, 1.0, f.root.ScaleX)
	assert.Equal(t, 1.0, f.root.ScaleY)
}

func TestOverlayCloseFromMidOpen(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	f.ov.TurnOn()
	f.ov.Update(0.125)
	require.InDelta(t, 0.5, f.root.Alpha, 1e-6)

	f.ov.TurnOff()
	assert.Equal(t, OverlayClosing, f.ov.State())
	assert.InDelta(t, 0.5, f.root.Alpha, 1e-6, "close starts from the current alpha")
	assert.Equal(t, []string{OverlayTriggerOpen, OverlayTriggerClose}, f.triggers)

	f.ov.Update(0.25)
	assert.Equal(t, 0.0, f.root.Alpha)
	assert.Equal(t, 0.75, f.root.ScaleX)
	assert.Equal(t, OverlayClosing, f.ov.State(), "close delay still running")
	assert.True(t, f.root.Visible)

	f.ov.Update(0.25)
	assert.Equal(t, OverlayClosed, f.ov.State())
	assert.False(t, f.root.Visible)
}

func TestOverlayReopenWhileClosing(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	f.ov.TurnOn()
	f.ov.Update(0.5)
	f.ov.TurnOff()
	f.ov.Update(0.125)

	f.ov.TurnOn()
	assert.Equal(t, OverlayOpening, f.ov.State())
	assert.Equal(t, 0.0, f.root.Alpha, "open restarts from transparent")
	assert.Equal(t, 0.5, f.root.ScaleX)

	f.ov.Update(0.5)
	assert.Equal(t, OverlayOpen, f.ov.State())
	assert.True(t, f.root.Visible, "cancelled close never deactivates the root")
}

func TestOverlayTurnOffWhenClosedIsNoop(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	events := 0
	f.svc.On(EventOverlayClose, func(Event) { events++ })

	f.ov.TurnOff()
	assert.Equal(t, OverlayClosed, f.ov.State())
	assert.Equal(t, 0, events)
	assert.Empty(t, f.triggers)
}

func TestOverlayToggle(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	var opens, closes int
	f.svc.On(EventOverlayOpen, func(Event) { opens++ })
	f.svc.On(EventOverlayClose, func(Event) { closes++ })

	f.ov.Toggle()
	assert.True(t, f.ov.IsOpen())
	f.ov.Toggle()
	assert.Equal(t, OverlayClosing, f.ov.State())
	f.ov.Toggle()
	assert.Equal(t, OverlayOpening, f.ov.State())
	assert.Equal(t, 2, opens)
	assert.Equal(t, 1, closes)
}

func TestOverlayEventsSeeNewState(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	var seen []OverlayState
	var openOnOpen bool
	f.svc.On(EventOverlayOpen, func(Event) {
		seen = append(seen, f.ov.State())
		openOnOpen = f.ov.IsOpen()
	})
	f.svc.On(EventOverlayClose, func(Event) { seen = append(seen, f.ov.State()) })

	f.ov.TurnOn()
	f.ov.TurnOff()
	assert.True(t, openOnOpen)
	assert.Equal(t, []OverlayState{OverlayOpening, OverlayClosing}, seen)
}

func TestOverlayZeroDurationsOpenAtOnce(t *testing.T) {
	f := newOverlayFixture(OverlayConfig{ZoomFrom: 0.5, CloseScale: 1})
	f.ov.TurnOn()
	assert.Equal(t, OverlayOpen, f.ov.State())
	assert.Equal(t, 1.0, f.root.Alpha)

	f.ov.TurnOff()
	assert.Equal(t, OverlayClosed, f.ov.State())
	assert.False(t, f.root.Visible)
}

func TestOverlayWithoutRoot(t *testing.T) {
	ov := NewOverlay(nil, nil, nil, nil, testOverlayConfig())
	ov.TurnOn()
	assert.Equal(t, OverlayOpen, ov.State())
	ov.Update(1)
	ov.TurnOff()
	assert.Equal(t, OverlayClosed, ov.State())

	set := &AssetSet{Masks: []Sprite{{Name: "m0"}}}
	ov.Commit(set, 0)
	assert.Equal(t, Sprite{Name: "m0"}, ov.MaskImage())
}

func TestOverlayStateString(t *testing.T) {
	assert.Equal(t, "closed", OverlayClosed.String())
	assert.Equal(t, "opening", OverlayOpening.String())
	assert.Equal(t, "open", OverlayOpen.String())
	assert.Equal(t, "closing", OverlayClosing.String())
	assert.Equal(t, "unknown", OverlayState(9).String())
}

// --- Content ---

func threeMaskSet() *AssetSet {
	return &AssetSet{
		Background: Sprite{Name: "bg"},
		Masks:      []Sprite{{Name: "m0"}, {Name: "m1"}, {Name: "m2"}},
		MaskAudio:  []AudioClip{{Name: "a0"}, {Name: "a1"}},
	}
}

func TestOverlayCommitShowsRequestedMask(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	var changed []Event
	f.svc.On(EventMaskChanged, func(e Event) { changed = append(changed, e) })

	set := threeMaskSet()
	f.ov.Commit(set, 1)

	got, ok := f.ov.Assets()
	require.True(t, ok)
	assert.Same(t, set, got)
	assert.Equal(t, 1, f.ov.MaskIndex())
	assert.Equal(t, Sprite{Name: "bg"}, f.bg.Sprite)
	assert.Equal(t, Sprite{Name: "m1"}, f.mask.Sprite)
	assert.Equal(t, AudioClip{Name: "a1"}, f.ov.MaskAudio())

	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].MaskIndex)
	assert.Equal(t, Sprite{Name: "m1"}, changed[0].Mask)
	assert.False(t, changed[0].Fallback)
}

func TestOverlayMaskIndexClamps(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"none requested", -1, 0},
		{"past the end", 3, 0},
		{"far past the end", 40, 0},
		{"last", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOverlayFixture(testOverlayConfig())
			f.ov.Commit(threeMaskSet(), tt.requested)
			assert.Equal(t, tt.requested, f.ov.RequestedMask())
			assert.Equal(t, tt.want, f.ov.MaskIndex())
			assert.Equal(t, threeMaskSet().Masks[tt.want], f.mask.Sprite)
		})
	}
}

func TestOverlayAudioMissingForMask(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	f.ov.Commit(threeMaskSet(), 2)
	assert.True(t, f.ov.MaskAudio().IsZero())
}

func TestOverlayRequestMask(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	f.ov.Commit(threeMaskSet(), 0)
	f.ov.RequestMask(2)
	assert.Equal(t, 2, f.ov.MaskIndex())
	assert.Equal(t, Sprite{Name: "m2"}, f.mask.Sprite)
}

func TestOverlayCommitEmptySetIgnored(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	set := threeMaskSet()
	f.ov.Commit(set, 0)
	f.ov.Commit(&AssetSet{}, 2)
	f.ov.Commit(nil, 2)

	got, ok := f.ov.Assets()
	require.True(t, ok)
	assert.Same(t, set, got)
	assert.Equal(t, 0, f.ov.RequestedMask())
}

func TestOverlayFallback(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	var changed Event
	f.svc.On(EventMaskChanged, func(e Event) { changed = e })

	f.ov.Commit(threeMaskSet(), 1)
	blank := Sprite{Name: "blank"}
	f.ov.CommitFallback(blank)

	_, ok := f.ov.Assets()
	assert.False(t, ok)
	assert.True(t, f.ov.FallbackActive())
	assert.Equal(t, -1, f.ov.MaskIndex())
	assert.Equal(t, blank, f.ov.MaskImage())
	assert.Equal(t, blank, f.bg.Sprite)
	assert.Equal(t, blank, f.mask.Sprite)
	assert.True(t, changed.Fallback)

	f.ov.Commit(threeMaskSet(), 1)
	assert.False(t, f.ov.FallbackActive())
}

func TestOverlayNothingCommitted(t *testing.T) {
	f := newOverlayFixture(testOverlayConfig())
	_, ok := f.ov.Assets()
	assert.False(t, ok)
	assert.Equal(t, -1, f.ov.MaskIndex())
	assert.True(t, f.ov.MaskImage().IsZero())
}
