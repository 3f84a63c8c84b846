package wander

import (
	"sort"
	"strings"
)

// RiddleLedger is the set of solved riddle ids. Ids are compared after
// trimming surrounding whitespace and folding case, so "Door-1" and
// " door-1 " name the same riddle.
//
// The zero value is an empty ledger ready to use. A Stage owns one ledger for its whole lifetime; resetting navigation keeps
// it. Obtain it with Stage.Ledger.
type RiddleLedger struct {
	solved map[string]struct{}
}

// NewRiddleLedger returns an empty ledger.
func NewRiddleLedger() *RiddleLedger {
	return &RiddleLedger{solved: make(map[string]struct{})}
}

func normalizeRiddleID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// MarkSolved records id as solved. Empty ids are ignored.
func (l *RiddleLedger) MarkSolved(id string) {
	key := normalizeRiddleID(id)
	if key == "" {
		return
	}
	if l.solved == nil {
		l.solved = make(map[string]struct{})
	}
	l.solved[key] = struct{}{}
}

// IsSolved reports whether id has been solved. An empty id gates nothing and
// is always solved.
func (l *RiddleLedger) IsSolved(id string) bool {
	key := normalizeRiddleID(id)
	if key == "" {
		return true
	}
	_, ok := l.solved[key]
	return ok
}

// Len returns the number of solved riddles.
func (l *RiddleLedger) Len() int {
	return len(l.solved)
}

// Solved returns the normalized solved ids in sorted order.
func (l *RiddleLedger) Solved() []string {
	ids := make([]string, 0, len(l.solved))
	for id := range l.solved {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset forgets every solved riddle.
func (l *RiddleLedger) Reset() {
	clear(l.solved)
}
