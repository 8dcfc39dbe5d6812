package model

import (
	"math/rand"

	"github.com/cardtable-online/server/consts"
)

// Deck is a shuffled sequence of yet-undrawn cards. It is created once per
// deal and only ever shrinks. The coordinator serializes all access, so the
// deck itself carries no lock.
type Deck struct {
	kind  consts.DeckKind
	cards []Card
}

func NewDeck(kind consts.DeckKind) *Deck {
	cards := Universe(kind)
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Deck{kind: kind, cards: cards}
}

func (d *Deck) Kind() consts.DeckKind {
	return d.kind
}

// Draw removes and returns the last amount cards. Asking for more than
// remain returns the short remainder; the deck never fabricates or
// duplicates cards.
func (d *Deck) Draw(amount int) []Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return nil
	}
	cards := make([]Card, amount)
	copy(cards, d.cards[len(d.cards)-amount:])
	d.cards = d.cards[:len(d.cards)-amount]
	return cards
}

func (d *Deck) DrawOne() (Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return "", false
	}
	return cards[0], true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// PeekLast reports the next card to be drawn without removing it. Deck kinds
// with a show-top-card rule put it on the wire.
func (d *Deck) PeekLast() (Card, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	return d.cards[len(d.cards)-1], true
}

// Exclude removes the given cards from the deck wherever they sit. Used when
// a preset hand is granted so nobody can draw its cards afterwards.
func (d *Deck) Exclude(cards []Card) {
	for _, card := range cards {
		if i := indexOfCard(d.cards, card); i >= 0 {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
		}
	}
}
