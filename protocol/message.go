package protocol

import (
	"time"

	"github.com/cardtable-online/server/consts"
	"github.com/cardtable-online/server/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Wire message types. The envelope is {type, data} in both directions.
const (
	TypeHeartbeat        = "hb"
	TypeInit             = "init"
	TypeSit              = "sit"
	TypeDeal             = "deal"
	TypeDraw             = "draw"
	TypeTurn             = "turn"
	TypeRearrangeSurface = "rearrangesurface"
	TypePickup           = "pickup"
	TypeRearrange        = "rearrange"
	TypeUndo             = "undo"
	TypeNewRound         = "newround"
	TypeUpdate           = "update"
)

type envelope struct {
	Type string              `json:"type"`
	Data jsoniter.RawMessage `json:"data,omitempty"`
}

// Message is the decoded form of one inbound envelope: exactly one payload
// field matching Type is set. hb, draw, undo and newround carry none.
type Message struct {
	Type      string
	Init      *InitPayload
	Sit       *SitPayload
	Deal      *DealPayload
	Turn      *TurnPayload
	MoveTurn  *MoveTurnPayload
	Pickup    *PickupPayload
	Rearrange *RearrangePayload
}

type InitPayload struct {
	Name string
}

type SitPayload struct {
	// AbandonedID targets a specific abandoned seat; empty means "any free
	// seat".
	AbandonedID string
}

type DealPayload struct {
	Kind  consts.DeckKind
	Count int
}

type TurnPayload struct {
	Cards []model.Card `json:"cards"`
	X     *float64     `json:"x,omitempty"`
	Y     *float64     `json:"y,omitempty"`
}

type MoveTurnPayload struct {
	TurnID string   `json:"turnId"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

type PickupPayload struct {
	TurnIDs []string `json:"turnIds"`
	Index   int      `json:"index"`
}

type RearrangePayload struct {
	Cards []model.Card
}

// Decode parses one inbound envelope into its typed message. Anything that
// does not decode, or names an unknown type, is an error; the caller drops
// it silently per the wire contract.
func Decode(data []byte) (*Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, consts.ErrorsMessageInvalid
	}
	msg := &Message{Type: env.Type}
	switch env.Type {
	case TypeHeartbeat, TypeDraw, TypeUndo, TypeNewRound:
		return msg, nil
	case TypeInit:
		var name string
		if err := json.Unmarshal(env.Data, &name); err != nil || name == "" {
			return nil, consts.ErrorsMessageInvalid
		}
		msg.Init = &InitPayload{Name: name}
		return msg, nil
	case TypeSit:
		payload := &SitPayload{}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &payload.AbandonedID); err != nil {
				return nil, consts.ErrorsMessageInvalid
			}
		}
		msg.Sit = payload
		return msg, nil
	case TypeDeal:
		payload, err := decodeDeal(env.Data)
		if err != nil {
			return nil, err
		}
		msg.Deal = payload
		return msg, nil
	case TypeTurn:
		payload := &TurnPayload{}
		if err := json.Unmarshal(env.Data, payload); err != nil {
			return nil, consts.ErrorsMessageInvalid
		}
		msg.Turn = payload
		return msg, nil
	case TypeRearrangeSurface:
		payload := &MoveTurnPayload{}
		if err := json.Unmarshal(env.Data, payload); err != nil || payload.TurnID == "" {
			return nil, consts.ErrorsMessageInvalid
		}
		msg.MoveTurn = payload
		return msg, nil
	case TypePickup:
		payload := &PickupPayload{}
		if err := json.Unmarshal(env.Data, payload); err != nil {
			return nil, consts.ErrorsMessageInvalid
		}
		msg.Pickup = payload
		return msg, nil
	case TypeRearrange:
		var cards []model.Card
		if err := json.Unmarshal(env.Data, &cards); err != nil {
			return nil, consts.ErrorsMessageInvalid
		}
		msg.Rearrange = &RearrangePayload{Cards: cards}
		return msg, nil
	}
	return nil, consts.ErrorsTypeUnknown
}

// decodeDeal accepts either a hand-size number (the standard deck) or a
// reduced-deck mode token.
func decodeDeal(data jsoniter.RawMessage) (*DealPayload, error) {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		if count <= 0 {
			return nil, consts.ErrorsMessageInvalid
		}
		return &DealPayload{Kind: consts.DeckStandard, Count: count}, nil
	}
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		switch token {
		case "д", "durak":
			return &DealPayload{Kind: consts.DeckDurak, Count: consts.DurakHandSize}, nil
		}
	}
	return nil, consts.ErrorsMessageInvalid
}

// Outbound is an outgoing envelope. Data marshals in place, no intermediate
// raw message.
type Outbound struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func Update(snapshot interface{}) Outbound {
	return Outbound{Type: TypeUpdate, Data: snapshot}
}

func Heartbeat(at time.Time) Outbound {
	return Outbound{Type: TypeHeartbeat, Data: at.Format(time.RFC3339)}
}
