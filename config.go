package wander

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout errors.
var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrInvalidLayout = errors.New("invalid layout")
)

// Reserved parent names in a layout.
const (
	LayoutParentContent = "content"
	LayoutParentUI      = "ui"
)

// Layout is the static configuration of a stage: its nodes, navigation
// graphs and timings, as loaded from YAML.
type Layout struct {
	Stage      StageLayout   `yaml:"stage"`
	Nodes      []NodeLayout  `yaml:"nodes"`
	Graphs     []GraphLayout `yaml:"graphs"`
	BackButton string        `yaml:"back_button"`
}

// StageLayout holds stage-wide settings. Unset fields keep the defaults of
// DefaultStageConfig.
type StageLayout struct {
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height"`
	FadeDuration *float32       `yaml:"fade_duration"`
	DisableFade  bool           `yaml:"disable_fade"`
	NoOverlay    bool           `yaml:"no_overlay"`
	Overlay      *OverlayLayout `yaml:"overlay"`
}

// OverlayLayout overrides overlay timings.
type OverlayLayout struct {
	FadeIn     *float32 `yaml:"fade_in"`
	ZoomIn     *float32 `yaml:"zoom_in"`
	FadeOut    *float32 `yaml:"fade_out"`
	ZoomOut    *float32 `yaml:"zoom_out"`
	ZoomFrom   *float64 `yaml:"zoom_from"`
	CloseScale *float64 `yaml:"close_scale"`
	CloseDelay *float32 `yaml:"close_delay"`
	StartOpen  bool     `yaml:"start_open"`
}

// NodeLayout declares one node. Parent names an earlier node, or "content"
// (the default) or "ui".
type NodeLayout struct {
	Name           string  `yaml:"name"`
	Parent         string  `yaml:"parent"`
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Active         *bool   `yaml:"active"`
	Interactable   bool    `yaml:"interactable"`
	Sprite         string  `yaml:"sprite"`
	RequiredRiddle string  `yaml:"required_riddle"`
	LockedHint     string  `yaml:"locked_hint"`
}

// AssetLayout names the sprites and clips of an asset set.
type AssetLayout struct {
	Background string   `yaml:"background"`
	Masks      []string `yaml:"masks"`
	Audio      []string `yaml:"audio"`
}

// TriggerLayout maps a button to a target node.
type TriggerLayout struct {
	Button string       `yaml:"button"`
	Target string       `yaml:"target"`
	Assets *AssetLayout `yaml:"assets"`
}

// PuzzleLayout declares a button-sequence riddle. ResetOnMismatch and
// LockOnSolve default to true.
type PuzzleLayout struct {
	ID              string   `yaml:"id"`
	Buttons         []string `yaml:"buttons"`
	Order           []int    `yaml:"order"`
	Reward          string   `yaml:"reward"`
	ResetOnMismatch *bool    `yaml:"reset_on_mismatch"`
	LockOnSolve     *bool    `yaml:"lock_on_solve"`
}

// HoverLayout configures hover alpha for a graph's buttons. Unset levels
// default to DefaultHoverAlpha.
type HoverLayout struct {
	On  *float64 `yaml:"on"`
	Off *float64 `yaml:"off"`
}

// GraphLayout declares a navigation graph.
type GraphLayout struct {
	Name               string          `yaml:"name"`
	Owner              string          `yaml:"owner"`
	Assets             *AssetLayout    `yaml:"assets"`
	Fallback           string          `yaml:"fallback"`
	BackOverride       string          `yaml:"back_override"`
	DeactivateOnSwitch string          `yaml:"deactivate_on_switch"`
	Hover              *HoverLayout    `yaml:"hover"`
	Triggers           []TriggerLayout `yaml:"triggers"`
	Puzzle             *PuzzleLayout   `yaml:"puzzle"`
}

// SpriteSource resolves sprite names used in a layout to image handles.
type SpriteSource func(name string) Sprite

// LoadLayout parses a YAML layout.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &l, nil
}

// StageConfig returns the stage configuration described by the layout.
func (l *Layout) StageConfig() StageConfig {
	cfg := DefaultStageConfig()
	st := l.Stage
	if st.Width > 0 {
		cfg.Width = st.Width
	}
	if st.Height > 0 {
		cfg.Height = st.Height
	}
	if st.FadeDuration != nil {
		cfg.FadeDuration = *st.FadeDuration
	}
	cfg.DisableFade = st.DisableFade
	if st.NoOverlay {
		cfg.Overlay = nil
		return cfg
	}
	if o := st.Overlay; o != nil {
		ov := *cfg.Overlay
		setIf(&ov.FadeIn, o.FadeIn)
		setIf(&ov.ZoomIn, o.ZoomIn)
		setIf(&ov.FadeOut, o.FadeOut)
		setIf(&ov.ZoomOut, o.ZoomOut)
		setIf(&ov.ZoomFrom, o.ZoomFrom)
		setIf(&ov.CloseScale, o.CloseScale)
		setIf(&ov.CloseDelay, o.CloseDelay)
		ov.StartOpen = o.StartOpen
		cfg.Overlay = &ov
	}
	return cfg
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// NewStageFromLayout builds a stage, its nodes and its graphs from l.
// A nil sprites source names sprites without images. The stage is not
// started.
func NewStageFromLayout(l *Layout, sprites SpriteSource) (*Stage, error) {
	if sprites == nil {
		sprites = func(name string) Sprite { return Sprite{Name: name} }
	}
	s := NewStage(l.StageConfig())
	b := &layoutBuilder{stage: s, sprites: sprites, nodes: make(map[string]*Node)}
	for _, nl := range l.Nodes {
		if err := b.addNode(nl); err != nil {
			return nil, err
		}
	}
	for _, gl := range l.Graphs {
		if err := b.addGraph(gl); err != nil {
			return nil, err
		}
	}
	if l.BackButton != "" {
		btn, err := b.node(l.BackButton, "back_button")
		if err != nil {
			return nil, err
		}
		s.SetBackButton(btn)
	}
	return s, nil
}

type layoutBuilder struct {
	stage   *Stage
	sprites SpriteSource
	nodes   map[string]*Node
}

func (b *layoutBuilder) node(name, field string) (*Node, error) {
	n, ok := b.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", field, name, ErrUnknownNode)
	}
	return n, nil
}

// optNode resolves name, treating the empty name as "no node".
func (b *layoutBuilder) optNode(name, field string) (*Node, error) {
	if name == "" {
		return nil, nil
	}
	return b.node(name, field)
}

func (b *layoutBuilder) sprite(name string) Sprite {
	if name == "" {
		return Sprite{}
	}
	return b.sprites(name)
}

func (b *layoutBuilder) addNode(nl NodeLayout) error {
	switch nl.Name {
	case "":
		return fmt.Errorf("node without name: %w", ErrInvalidLayout)
	case LayoutParentContent, LayoutParentUI:
		return fmt.Errorf("node %q: reserved name: %w", nl.Name, ErrInvalidLayout)
	}
	if _, dup := b.nodes[nl.Name]; dup {
		return fmt.Errorf("node %q: %w", nl.Name, ErrDuplicateNode)
	}

	var parent *Node
	switch nl.Parent {
	case "", LayoutParentContent:
		parent = b.stage.content
	case LayoutParentUI:
		parent = b.stage.ui
	default:
		p, err := b.node(nl.Parent, "node "+nl.Name+" parent")
		if err != nil {
			return err
		}
		parent = p
	}

	n := NewSprite(nl.Name, b.sprite(nl.Sprite), nl.Width, nl.Height)
	n.X, n.Y = nl.X, nl.Y
	n.Interactable = nl.Interactable
	n.RequiredRiddle = nl.RequiredRiddle
	n.LockedHint = nl.LockedHint
	if nl.Active != nil {
		n.Visible = *nl.Active
	}
	parent.AddChild(n)
	b.nodes[nl.Name] = n
	return nil
}

func (b *layoutBuilder) assets(al *AssetLayout) *AssetSet {
	if al == nil {
		return nil
	}
	set := &AssetSet{Background: b.sprite(al.Background)}
	for _, m := range al.Masks {
		set.Masks = append(set.Masks, b.sprite(m))
	}
	for _, a := range al.Audio {
		set.MaskAudio = append(set.MaskAudio, AudioClip{Name: a})
	}
	return set
}

func (b *layoutBuilder) addGraph(gl GraphLayout) error {
	if gl.Name == "" {
		return fmt.Errorf("graph without name: %w", ErrInvalidLayout)
	}
	if b.stage.Graph(gl.Name) != nil {
		return fmt.Errorf("graph %q: duplicate name: %w", gl.Name, ErrInvalidLayout)
	}
	field := "graph " + gl.Name

	cfg := GraphConfig{
		Name:     gl.Name,
		Assets:   b.assets(gl.Assets),
		Fallback: b.sprite(gl.Fallback),
	}
	var err error
	if cfg.Owner, err = b.optNode(gl.Owner, field+" owner"); err != nil {
		return err
	}
	if cfg.Owner != nil && cfg.Owner.Graph != nil {
		return fmt.Errorf("%s: owner %q already has a graph: %w", field, gl.Owner, ErrInvalidLayout)
	}
	if cfg.BackOverride, err = b.optNode(gl.BackOverride, field+" back_override"); err != nil {
		return err
	}
	if cfg.DeactivateOnSwitch, err = b.optNode(gl.DeactivateOnSwitch, field+" deactivate_on_switch"); err != nil {
		return err
	}
	if gl.Hover != nil {
		h := DefaultHoverAlpha
		setIf(&h.On, gl.Hover.On)
		setIf(&h.Off, gl.Hover.Off)
		cfg.Hover = &h
	}

	for i, tl := range gl.Triggers {
		tf := fmt.Sprintf("%s trigger %d", field, i)
		btn, err := b.node(tl.Button, tf+" button")
		if err != nil {
			return err
		}
		target, err := b.node(tl.Target, tf+" target")
		if err != nil {
			return err
		}
		btn.Interactable = true
		cfg.Triggers = append(cfg.Triggers, Trigger{Button: btn, Target: target, Assets: b.assets(tl.Assets)})
	}

	if pl := gl.Puzzle; pl != nil {
		pc := &PuzzleConfig{
			ID:              pl.ID,
			Order:           pl.Order,
			ResetOnMismatch: pl.ResetOnMismatch == nil || *pl.ResetOnMismatch,
			LockOnSolve:     pl.LockOnSolve == nil || *pl.LockOnSolve,
		}
		for _, name := range pl.Buttons {
			btn, err := b.node(name, field+" puzzle button")
			if err != nil {
				return err
			}
			btn.Interactable = true
			pc.Buttons = append(pc.Buttons, btn)
		}
		for _, idx := range pl.Order {
			if idx < 0 || idx >= len(pc.Buttons) {
				return fmt.Errorf("%s puzzle: order index %d out of range [0,%d): %w",
					field, idx, len(pc.Buttons), ErrInvalidLayout)
			}
		}
		if pc.Reward, err = b.optNode(pl.Reward, field+" puzzle reward"); err != nil {
			return err
		}
		cfg.Puzzle = pc
	}

	b.stage.NewGraph(cfg)
	return nil
}
