package model

// Player is per-seat state: display name, ordered hand, abandonment flag.
// Identity is the connection id, stable for the life of the connection.
type Player struct {
	id        string
	name      string
	hand      []Card
	abandoned bool
}

func NewPlayer(id, name string) *Player {
	return &Player{id: id, name: name, hand: []Card{}}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Abandon() {
	p.abandoned = true
}

func (p *Player) Abandoned() bool {
	return p.abandoned
}

func (p *Player) Hand() []Card {
	cards := make([]Card, len(p.hand))
	copy(cards, p.hand)
	return cards
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

// SetHand replaces the hand wholesale. Used on deal and seat inheritance.
func (p *Player) SetHand(cards []Card) {
	p.hand = make([]Card, len(cards))
	copy(p.hand, cards)
}

// AddCards appends to the back of the hand, order preserved.
func (p *Player) AddCards(cards []Card) {
	p.hand = append(p.hand, cards...)
}

// InsertCards places cards into the hand at index, clamped to the hand
// bounds, order preserved.
func (p *Player) InsertCards(cards []Card, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(p.hand) {
		index = len(p.hand)
	}
	hand := make([]Card, 0, len(p.hand)+len(cards))
	hand = append(hand, p.hand[:index]...)
	hand = append(hand, cards...)
	hand = append(hand, p.hand[index:]...)
	p.hand = hand
}

// PlayCards removes the requested cards from the hand and returns them in
// request order. Cards not held and duplicate requests are dropped without
// complaint.
func (p *Player) PlayCards(requested []Card) []Card {
	played := make([]Card, 0, len(requested))
	for _, card := range requested {
		if containsCard(played, card) {
			continue
		}
		if i := indexOfCard(p.hand, card); i >= 0 {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			played = append(played, card)
		}
	}
	return played
}

// Rearrange replaces the hand order. Anything that is not an exact
// permutation of the current hand leaves it untouched and reports false.
func (p *Player) Rearrange(newOrder []Card) bool {
	if len(newOrder) != len(p.hand) {
		return false
	}
	next := make([]Card, 0, len(newOrder))
	for _, card := range newOrder {
		if !containsCard(p.hand, card) || containsCard(next, card) {
			return false
		}
		next = append(next, card)
	}
	p.hand = next
	return true
}

// SelfPayload is the view a player gets of their own seat.
type SelfPayload struct {
	Name string `json:"name"`
	Hand []Card `json:"hand"`
}

// ObserverPayload is the view everyone else gets: never the hand itself,
// only its size. The player id is exposed only for abandoned seats so a
// sit request can target them.
type ObserverPayload struct {
	Name      string `json:"name"`
	CardCount int    `json:"cardCount"`
	Position  int    `json:"position"`
	ID        string `json:"id,omitempty"`
}

func (p *Player) SelfPayload() SelfPayload {
	return SelfPayload{Name: p.name, Hand: p.Hand()}
}

func (p *Player) ObserverPayload(position int) ObserverPayload {
	payload := ObserverPayload{
		Name:      p.name,
		CardCount: len(p.hand),
		Position:  position,
	}
	if p.abandoned {
		payload.ID = p.id
	}
	return payload
}
