package wander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuStage(fade float32) *Stage {
	cfg := DefaultStageConfig()
	cfg.FadeDuration = fade
	return NewStage(cfg)
}

func TestMenuFadesInOnStart(t *testing.T) {
	s := newMenuStage(0.5)
	root := NewContainer("menu")
	s.UI().AddChild(root)
	m := s.NewMenu(MenuConfig{Root: root, ActivateOnStart: true, FadeOnStart: true})
	assert.False(t, root.Visible, "hidden until the first fade")
	assert.Same(t, root, m.Root())

	s.Start()
	assert.False(t, root.Visible)
	assert.True(t, s.Coordinator().Fading())

	s.Advance(0.5)
	assert.True(t, root.Visible)
}

func TestMenuShowsWithoutFade(t *testing.T) {
	s := newMenuStage(0.5)
	root := NewContainer("menu")
	root.Visible = false
	m := s.NewMenu(MenuConfig{Root: root, ActivateOnStart: true})
	m.Start()
	assert.True(t, root.Visible)
	assert.False(t, s.Coordinator().Fading())
}

func TestMenuNotActivatedOnStart(t *testing.T) {
	s := newMenuStage(0)
	root := NewContainer("menu")
	root.Visible = false
	s.NewMenu(MenuConfig{Root: root})
	s.Start()
	assert.False(t, root.Visible)
}

func TestMenuPlay(t *testing.T) {
	s := newMenuStage(0)
	root := NewContainer("menu")
	play := NewButton("play", 100, 40)
	root.AddChild(play)
	s.UI().AddChild(root)
	var played int
	s.NewMenu(MenuConfig{Root: root, PlayButton: play, FadeOnPlay: true, OnPlay: func() { played++ }})

	require.True(t, s.InjectClickNode("play"))
	s.Step(0)
	s.Step(0)
	assert.False(t, root.Visible)
	assert.Equal(t, 1, played)
}

func TestMenuPlayDroppedWhileFading(t *testing.T) {
	s := newMenuStage(0.5)
	root := NewContainer("menu")
	var played int
	m := s.NewMenu(MenuConfig{Root: root, FadeOnPlay: true, OnPlay: func() { played++ }})

	require.True(t, s.Coordinator().RunGated(func() {}))
	assert.False(t, m.Play())
	s.Advance(0.5)
	s.Advance(0.5)
	assert.True(t, root.Visible)
	assert.Equal(t, 0, played)

	assert.True(t, m.Play())
	s.Advance(0.5)
	assert.False(t, root.Visible)
	assert.Equal(t, 1, played)
}
