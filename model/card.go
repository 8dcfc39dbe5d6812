package model

import (
	"fmt"

	"github.com/cardtable-online/server/consts"
)

// Card is a card identifier token "{suit}{rank}" with suit in {C,D,H,S} and
// rank 1..13, e.g. "H12". Outside deck construction and rendering it is
// treated as an opaque comparable value.
type Card string

var Suits = []string{"C", "D", "H", "S"}

func (c Card) Suit() string {
	if len(c) == 0 {
		return ""
	}
	return string(c[0])
}

func (c Card) Red() bool {
	suit := c.Suit()
	return suit == "D" || suit == "H"
}

// Universe builds the full ordered card universe for a deck kind. The durak
// universe excludes ranks 2-5.
func Universe(kind consts.DeckKind) []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 1; rank <= 13; rank++ {
			if kind == consts.DeckDurak && rank >= 2 && rank <= 5 {
				continue
			}
			cards = append(cards, Card(fmt.Sprintf("%s%d", suit, rank)))
		}
	}
	return cards
}

func indexOfCard(cards []Card, card Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}

func containsCard(cards []Card, card Card) bool {
	return indexOfCard(cards, card) >= 0
}
