package render

import (
	"strings"

	"github.com/cardtable-online/server/model"
	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgHiRed).SprintFunc()
	black = color.New(color.FgHiWhite).SprintFunc()
)

// Card paints a card token for console output, red suits in red.
func Card(card model.Card) string {
	if card.Red() {
		return red(string(card))
	}
	return black(string(card))
}

func Cards(cards []model.Card) string {
	tokens := make([]string, 0, len(cards))
	for _, card := range cards {
		tokens = append(tokens, Card(card))
	}
	return "[" + strings.Join(tokens, " ") + "]"
}
