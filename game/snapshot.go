package game

import (
	"github.com/cardtable-online/server/consts"
	"github.com/cardtable-online/server/logs"
	"github.com/cardtable-online/server/model"
	"github.com/cardtable-online/server/protocol"
)

// Snapshot is the full per-recipient state payload sent after every applied
// mutation. Field shapes match the original client contract.
type Snapshot struct {
	Opponents []model.ObserverPayload `json:"opponents"`
	Player    *model.SelfPayload      `json:"player,omitempty"`
	CanUndo   bool                    `json:"canUndo"`
	Lurkers   []string                `json:"lurkers"`
	Round     []TurnView              `json:"round"`
	Graveyard int                     `json:"graveyard"`
	Deck      DeckView                `json:"deck"`
}

type TurnView struct {
	Cards    []model.Card `json:"cards"`
	Position int          `json:"position"`
	ID       string       `json:"id"`
	X        *float64     `json:"x,omitempty"`
	Y        *float64     `json:"y,omitempty"`
}

type DeckView struct {
	Count int        `json:"count"`
	Last  model.Card `json:"last,omitempty"`
}

// snapshotFor computes one recipient's view. Seated recipients see every
// other seat rotated so their own seat is the local position; lurkers see
// absolute seat order and no self payload.
func (g *Game) snapshotFor(connID string) Snapshot {
	snapshot := Snapshot{
		Opponents: make([]model.ObserverPayload, 0, len(g.active)),
		Lurkers:   make([]string, 0, len(g.lurkers)),
		Round:     make([]TurnView, 0, g.table.Len()),
		Graveyard: len(g.graveyard),
	}

	positions := map[string]int{}
	selfIndex := indexOf(g.active, connID)
	for i, id := range g.active {
		if i == selfIndex {
			self := g.players[id].SelfPayload()
			snapshot.Player = &self
			positions[id] = g.maxSeats - 1
			continue
		}
		// Same seat order for everyone, orientation rotated to the
		// recipient's origin.
		position := (g.maxSeats + (i - selfIndex - 1)) % g.maxSeats
		positions[id] = position
		snapshot.Opponents = append(snapshot.Opponents, g.players[id].ObserverPayload(position))
	}

	for _, id := range g.lurkers {
		snapshot.Lurkers = append(snapshot.Lurkers, g.players[id].Name())
	}

	for _, turn := range g.table.Turns() {
		snapshot.Round = append(snapshot.Round, TurnView{
			Cards:    turn.Cards,
			Position: positions[turn.PlayerID],
			ID:       turn.ID(),
			X:        turn.X,
			Y:        turn.Y,
		})
	}
	if last := g.table.Last(); last != nil {
		snapshot.CanUndo = last.PlayerID == connID
	}

	if g.deck != nil {
		snapshot.Deck.Count = g.deck.Remaining()
		if g.deck.Kind() == consts.DeckDurak {
			if card, ok := g.deck.PeekLast(); ok {
				snapshot.Deck.Last = card
			}
		}
	}
	return snapshot
}

// broadcast sends every live connection its own view of the settled state.
// Callers hold the game mutex.
func (g *Game) broadcast() {
	g.registry.Range(func(c Conn) {
		g.send(c)
	})
}

func (g *Game) unicast(connID string) {
	if c, ok := g.registry.Get(connID); ok {
		g.send(c)
	}
}

func (g *Game) send(c Conn) {
	if err := c.WriteJSON(protocol.Update(g.snapshotFor(c.ID()))); err != nil {
		logs.Error("update to %s failed: %v", c.ID(), err)
	}
}
