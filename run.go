package wander

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
}

type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error              { return g.stage.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.stage.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.cfg.Width, g.cfg.Height }

// Run starts the stage's graphs, opens a window and runs the ebiten game
// loop until the window closes or the update func returns an error.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(stage.cfg.Width), int(stage.cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	stage.Start()
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}
