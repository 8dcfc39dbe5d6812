package model

import "strings"

// Turn is one set of cards played to the table in a single action. X/Y is an
// optional freeform placement in [0,1] surface coordinates; unplaced turns
// stack in front of their owner's seat.
type Turn struct {
	PlayerID string
	Cards    []Card
	X        *float64
	Y        *float64
}

func NewTurn(playerID string, cards []Card, x, y *float64) *Turn {
	return &Turn{PlayerID: playerID, Cards: cards, X: x, Y: y}
}

// ID derives a stable identifier from the turn's cards, letting clients
// address the turn for later moves or pickup. Unique as long as no card is
// on the table twice.
func (t *Turn) ID() string {
	var b strings.Builder
	for _, card := range t.Cards {
		b.WriteString(string(card))
	}
	return b.String()
}

func (t *Turn) Place(x, y *float64) {
	t.X = x
	t.Y = y
}
