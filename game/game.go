package game

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/cardtable-online/server/consts"
	"github.com/cardtable-online/server/logs"
	"github.com/cardtable-online/server/model"
	"github.com/cardtable-online/server/render"
)

// Conn is the outbound half of a live connection.
type Conn interface {
	ID() string
	WriteJSON(v interface{}) error
}

// Registry addresses the set of live connections for snapshot delivery.
type Registry interface {
	Get(id string) (Conn, bool)
	Range(fn func(c Conn))
}

// Result distinguishes applied mutations from silent rejections. The wire
// never carries the difference, tests do.
type Result int

const (
	NoOp Result = iota
	Applied
)

func (r Result) Applied() bool {
	return r == Applied
}

// Game is the session coordinator: the sole owner and sole mutator of the
// shared table state. Every operation runs under one mutex, so no two
// mutations ever interleave and every snapshot is taken from settled state.
type Game struct {
	mu       sync.Mutex
	registry Registry
	maxSeats int

	players   map[string]*model.Player
	active    []string // seat order, join order
	lurkers   []string // FIFO of connected but unseated
	table     *model.Table
	graveyard []*model.Table
	deck      *model.Deck
	started   bool
}

func New(registry Registry, maxSeats int) *Game {
	if maxSeats <= 0 {
		maxSeats = consts.MaxSeats
	}
	return &Game{
		registry: registry,
		maxSeats: maxSeats,
		players:  map[string]*model.Player{},
		active:   []string{},
		lurkers:  []string{},
		table:    model.NewTable(),
	}
}

func (g *Game) isActive(playerID string) bool {
	return indexOf(g.active, playerID) >= 0
}

// AddPlayer registers a joining connection. It takes a seat if one is free
// and no deal has happened yet, otherwise it queues as a lurker.
func (g *Game) AddPlayer(id, name string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.players[id]; ok {
		return NoOp
	}
	g.players[id] = model.NewPlayer(id, name)
	if len(g.active) < g.maxSeats && !g.started {
		g.active = append(g.active, id)
	} else {
		g.lurkers = append(g.lurkers, id)
	}
	g.broadcast()
	return Applied
}

// Sit claims a seat for an unseated connection: a wholly free one when
// abandonedID is empty, or the named abandoned seat, inheriting its hand and
// rewriting the old occupant's turns to the new id.
func (g *Game) Sit(playerID, abandonedID string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil || g.isActive(playerID) {
		logs.Info("%s is trying to sit, but %s", playerID, sitRefusal(player))
		return NoOp
	}

	if abandonedID == "" {
		if len(g.active) >= g.maxSeats {
			return NoOp
		}
		g.active = append(g.active, playerID)
		g.dequeueLurker(playerID)
		g.broadcast()
		return Applied
	}

	abandoned := g.players[abandonedID]
	seat := indexOf(g.active, abandonedID)
	if abandoned == nil || !abandoned.Abandoned() || seat < 0 {
		logs.Info("%s is trying to sit in a weird spot (%s)", playerID, abandonedID)
		return NoOp
	}

	player.SetHand(abandoned.Hand())
	g.table.RewriteOwner(abandonedID, playerID)
	for _, round := range g.graveyard {
		round.RewriteOwner(abandonedID, playerID)
	}
	g.active[seat] = playerID
	delete(g.players, abandonedID)
	g.dequeueLurker(playerID)
	g.broadcast()
	return Applied
}

// Abandon handles a disconnect. A seated player keeps the seat and hand
// behind an abandoned flag; a lurker is forgotten outright.
func (g *Game) Abandon(playerID string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil {
		return NoOp
	}
	if g.isActive(playerID) {
		player.Abandon()
	} else {
		g.removePlayer(playerID)
	}
	g.broadcast()
	return Applied
}

// Deal starts a new round: abandoned seats are purged first so cards never
// go to a ghost, then a fresh shuffled deck hands count cards to every seat
// in seat order. Table and graveyard reset.
func (g *Game) Deal(kind consts.DeckKind, count int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if count <= 0 {
		return NoOp
	}
	g.purgeAbandoned()
	g.started = true
	g.deck = model.NewDeck(kind)
	g.table = model.NewTable()
	g.graveyard = nil

	if kind == consts.DeckStandard && count == consts.StandardHandSize {
		for _, id := range g.active {
			if consts.EasterNames[strings.ToLower(g.players[id].Name())] {
				g.easterDeal(id, count)
				g.broadcast()
				return Applied
			}
		}
	}
	for _, id := range g.active {
		g.players[id].SetHand(g.deck.Draw(count))
	}
	logs.Info("dealt %d cards to %d seats, %d left in deck", count, len(g.active), g.deck.Remaining())
	g.broadcast()
	return Applied
}

// easterDeal grants a recognized name a preset hand. Its cards leave the
// deck before anyone else draws, so nothing is ever duplicated.
func (g *Game) easterDeal(luckyID string, count int) {
	hand := easterHands[rand.Intn(len(easterHands))]
	g.players[luckyID].SetHand(hand)
	g.deck.Exclude(hand)
	for _, id := range g.active {
		if id == luckyID {
			continue
		}
		g.players[id].SetHand(g.deck.Draw(count))
	}
}

// TakeTurn plays cards out of the caller's hand onto the table. Requests
// for cards not held collapse to nothing and nothing gets played.
func (g *Game) TakeTurn(playerID string, cards []model.Card, x, y *float64) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil || !g.isActive(playerID) {
		return NoOp
	}
	played := player.PlayCards(cards)
	if len(played) == 0 {
		return NoOp
	}
	g.table.Append(model.NewTurn(playerID, played, x, y))
	logs.Debug("%s played %s", player.Name(), render.Cards(played))
	g.broadcast()
	return Applied
}

// MoveTurn relocates an existing table turn. Cards and owner are untouched.
func (g *Game) MoveTurn(playerID, turnID string, x, y *float64) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.isActive(playerID) {
		return NoOp
	}
	turn := g.table.Find(turnID)
	if turn == nil {
		return NoOp
	}
	turn.Place(x, y)
	g.broadcast()
	return Applied
}

// PickupTurns takes the named turns off the table and slots their cards,
// concatenated in table order, into the caller's hand at index.
func (g *Game) PickupTurns(playerID string, turnIDs []string, index int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil || !g.isActive(playerID) {
		return NoOp
	}
	removed := g.table.RemoveByIDs(turnIDs)
	if len(removed) == 0 {
		return NoOp
	}
	cards := make([]model.Card, 0, len(removed))
	for _, turn := range removed {
		cards = append(cards, turn.Cards...)
	}
	player.InsertCards(cards, index)
	g.broadcast()
	return Applied
}

// DrawFromDeck moves exactly one card from the deck to the caller's hand.
func (g *Game) DrawFromDeck(playerID string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil || !g.isActive(playerID) || g.deck == nil {
		return NoOp
	}
	card, ok := g.deck.DrawOne()
	if !ok {
		return NoOp
	}
	player.AddCards([]model.Card{card})
	g.broadcast()
	return Applied
}

// Rearrange reorders the caller's own hand. Only the caller's view changes,
// so the snapshot goes to that connection alone.
func (g *Game) Rearrange(playerID string, newOrder []model.Card) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := g.players[playerID]
	if player == nil || !player.Rearrange(newOrder) {
		return NoOp
	}
	g.unicast(playerID)
	return Applied
}

// Undo retracts the most recent table turn, but only for its owner. The
// cards come back to the hand exactly as they were played.
func (g *Game) Undo(playerID string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	last := g.table.Last()
	if last == nil || last.PlayerID != playerID {
		return NoOp
	}
	g.table.Pop()
	g.players[playerID].AddCards(last.Cards)
	g.broadcast()
	return Applied
}

// NewRound archives the current table into the graveyard and opens an empty
// one. An empty table has nothing to archive.
func (g *Game) NewRound() Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.table.Len() == 0 {
		return NoOp
	}
	g.graveyard = append(g.graveyard, g.table)
	g.table = model.NewTable()
	g.broadcast()
	return Applied
}

// purgeAbandoned forgets every abandoned seat holder so a deal never hands
// cards to a ghost.
func (g *Game) purgeAbandoned() {
	for _, id := range append([]string{}, g.active...) {
		if g.players[id].Abandoned() {
			g.removePlayer(id)
		}
	}
}

func (g *Game) removePlayer(playerID string) {
	logs.Info("removing player: %s", playerID)
	delete(g.players, playerID)
	if i := indexOf(g.lurkers, playerID); i >= 0 {
		g.lurkers = append(g.lurkers[:i], g.lurkers[i+1:]...)
	} else if i := indexOf(g.active, playerID); i >= 0 {
		g.active = append(g.active[:i], g.active[i+1:]...)
	}
}

func (g *Game) dequeueLurker(playerID string) {
	if i := indexOf(g.lurkers, playerID); i >= 0 {
		g.lurkers = append(g.lurkers[:i], g.lurkers[i+1:]...)
	}
}

func sitRefusal(player *model.Player) string {
	if player == nil {
		return "doesnt exist"
	}
	return "is already playing"
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

var easterHands = [][]model.Card{
	{"C3", "C4", "C5", "D6", "D7", "D8", "H9", "H10", "H11", "S12", "S13", "S1", "S2"},
	{"C3", "H3", "S3", "D13", "H13", "S13", "D1", "H1", "S1", "C2", "D2", "H2", "S2"},
	{"C3", "C13", "D13", "H13", "S13", "C1", "D1", "H1", "S1", "C2", "D2", "H2", "S2"},
	{"C3", "C4", "D4", "H4", "S4", "S6", "S7", "S8", "S9", "C2", "D2", "H2", "S2"},
}
