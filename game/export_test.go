package game

import "github.com/cardtable-online/server/model"

// Census returns every card the coordinator currently accounts for: hands,
// deck, table and graveyard. Tests assert it always equals the universe.
func (g *Game) Census() []model.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	cards := make([]model.Card, 0, 52)
	for _, player := range g.players {
		cards = append(cards, player.Hand()...)
	}
	if g.deck != nil {
		cards = append(cards, g.deck.Cards()...)
	}
	for _, turn := range g.table.Turns() {
		cards = append(cards, turn.Cards...)
	}
	for _, round := range g.graveyard {
		for _, turn := range round.Turns() {
			cards = append(cards, turn.Cards...)
		}
	}
	return cards
}

func (g *Game) SnapshotFor(connID string) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotFor(connID)
}
