package model

// Table is the current round's ordered sequence of face-up turns.
type Table struct {
	turns []*Turn
}

func NewTable() *Table {
	return &Table{turns: make([]*Turn, 0, 8)}
}

func (t *Table) Append(turn *Turn) {
	t.turns = append(t.turns, turn)
}

func (t *Table) Turns() []*Turn {
	turns := make([]*Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

func (t *Table) Len() int {
	return len(t.turns)
}

func (t *Table) Last() *Turn {
	if len(t.turns) == 0 {
		return nil
	}
	return t.turns[len(t.turns)-1]
}

func (t *Table) Find(id string) *Turn {
	for _, turn := range t.turns {
		if turn.ID() == id {
			return turn
		}
	}
	return nil
}

// Pop removes and returns the most recent turn.
func (t *Table) Pop() *Turn {
	if len(t.turns) == 0 {
		return nil
	}
	last := t.turns[len(t.turns)-1]
	t.turns = t.turns[:len(t.turns)-1]
	return last
}

// RemoveByIDs removes the named turns and returns them in table order.
// Unknown ids are skipped.
func (t *Table) RemoveByIDs(ids []string) []*Turn {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	removed := make([]*Turn, 0, len(ids))
	kept := make([]*Turn, 0, len(t.turns))
	for _, turn := range t.turns {
		if wanted[turn.ID()] {
			removed = append(removed, turn)
			delete(wanted, turn.ID())
			continue
		}
		kept = append(kept, turn)
	}
	t.turns = kept
	return removed
}

// RewriteOwner reassigns every turn held by from to to. Used when a new
// player inherits an abandoned seat.
func (t *Table) RewriteOwner(from, to string) {
	for _, turn := range t.turns {
		if turn.PlayerID == from {
			turn.PlayerID = to
		}
	}
}
