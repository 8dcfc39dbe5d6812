package network

import (
	"time"

	"github.com/cardtable-online/server/logs"
	"github.com/cardtable-online/server/protocol"
)

// dispatch decodes one inbound envelope and invokes the matching
// coordinator operation. Malformed or unknown messages are dropped without
// a reply; the connection stays open.
func (w Websocket) dispatch(c *Conn, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		logs.Debug("dropping message from %s: %v", c.ID(), err)
		return
	}
	if msg.Type != protocol.TypeHeartbeat {
		logs.Debug("message received %s %s", c.ID(), msg.Type)
	}
	switch msg.Type {
	case protocol.TypeHeartbeat:
		_ = c.WriteJSON(protocol.Heartbeat(time.Now()))
	case protocol.TypeInit:
		_ = c.WriteText("init")
		w.game.AddPlayer(c.ID(), msg.Init.Name)
	case protocol.TypeSit:
		w.game.Sit(c.ID(), msg.Sit.AbandonedID)
	case protocol.TypeDeal:
		w.game.Deal(msg.Deal.Kind, msg.Deal.Count)
	case protocol.TypeDraw:
		w.game.DrawFromDeck(c.ID())
	case protocol.TypeTurn:
		w.game.TakeTurn(c.ID(), msg.Turn.Cards, msg.Turn.X, msg.Turn.Y)
	case protocol.TypeRearrangeSurface:
		w.game.MoveTurn(c.ID(), msg.MoveTurn.TurnID, msg.MoveTurn.X, msg.MoveTurn.Y)
	case protocol.TypePickup:
		w.game.PickupTurns(c.ID(), msg.Pickup.TurnIDs, msg.Pickup.Index)
	case protocol.TypeRearrange:
		w.game.Rearrange(c.ID(), msg.Rearrange.Cards)
	case protocol.TypeUndo:
		w.game.Undo(c.ID())
	case protocol.TypeNewRound:
		w.game.NewRound()
	}
}
