package wander

// PuzzleConfig describes a button-sequence riddle bound to a graph.
type PuzzleConfig struct {
	// ID is recorded in the riddle ledger on success. May be empty.
	ID string
	// Buttons are the puzzle's trigger handles, addressed by index.
	Buttons []*Node
	// Order is the expected sequence of button indices.
	Order []int
	// Reward is activated on success.
	Reward *Node
	// ResetOnMismatch drops progress to zero on a wrong press.
	ResetOnMismatch bool
	// LockOnSolve makes every puzzle button non-interactable on success.
	LockOnSolve bool
}

type pressResult uint8

const (
	pressIgnored pressResult = iota
	pressAdvanced
	pressMismatch
	pressReset
	pressSolved
)

// Puzzle matches button presses against an expected order. Reaching the end
// of the order is terminal: further presses are ignored until Reset.
type Puzzle struct {
	cfg      PuzzleConfig
	progress int
	solved   bool
}

func newPuzzle(cfg PuzzleConfig) *Puzzle {
	cfg.Order = append([]int(nil), cfg.Order...)
	cfg.Buttons = append([]*Node(nil), cfg.Buttons...)
	return &Puzzle{cfg: cfg}
}

// ID returns the riddle id recorded on success.
func (p *Puzzle) ID() string { return p.cfg.ID }

// Progress returns how many presses of the order have matched so far.
func (p *Puzzle) Progress() int { return p.progress }

// Len returns the length of the expected order.
func (p *Puzzle) Len() int { return len(p.cfg.Order) }

// Solved reports whether the order has been completed since the last Reset.
func (p *Puzzle) Solved() bool { return p.solved }

// Buttons returns the puzzle buttons. The slice MUST NOT be mutated.
func (p *Puzzle) Buttons() []*Node { return p.cfg.Buttons }

// Reset re-arms the puzzle.
func (p *Puzzle) Reset() {
	p.progress = 0
	p.solved = false
}

func (p *Puzzle) press(index int) pressResult {
	order := p.cfg.Order
	if len(order) == 0 || p.solved {
		return pressIgnored
	}
	if p.progress < 0 || p.progress >= len(order) {
		p.progress = 0
	}
	if index == order[p.progress] {
		p.progress++
		if p.progress == len(order) {
			p.solved = true
			return pressSolved
		}
		return pressAdvanced
	}
	if p.cfg.ResetOnMismatch {
		p.progress = 0
		return pressReset
	}
	return pressMismatch
}

// reopen undoes a completion whose reward could not be applied, leaving the
// final press to be repeated.
func (p *Puzzle) reopen() {
	p.solved = false
	p.progress = len(p.cfg.Order) - 1
}
