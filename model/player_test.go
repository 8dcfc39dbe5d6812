package model_test

import (
	"testing"

	"github.com/cardtable-online/server/model"
	"github.com/stretchr/testify/require"
)

func TestPlayCards(t *testing.T) {
	t.Run("removes_held_cards_in_request_order", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6", "H9", "S1"})
		played := player.PlayCards([]model.Card{"H9", "C5"})
		require.Equal(t, []model.Card{"H9", "C5"}, played)
		require.Equal(t, []model.Card{"C6", "S1"}, player.Hand())
	})

	t.Run("drops_cards_not_held", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6"})
		played := player.PlayCards([]model.Card{"D13", "C6"})
		require.Equal(t, []model.Card{"C6"}, played)
		require.Equal(t, []model.Card{"C5"}, player.Hand())
	})

	t.Run("drops_duplicate_requests", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6"})
		played := player.PlayCards([]model.Card{"C5", "C5", "C5"})
		require.Equal(t, []model.Card{"C5"}, played)
		require.Equal(t, []model.Card{"C6"}, player.Hand())
	})

	t.Run("empty_request_plays_nothing", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5"})
		require.Empty(t, player.PlayCards(nil))
		require.Equal(t, []model.Card{"C5"}, player.Hand())
	})
}

func TestRearrange(t *testing.T) {
	hand := []model.Card{"C5", "C6", "H9"}

	t.Run("accepts_an_exact_permutation", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand(hand)
		require.True(t, player.Rearrange([]model.Card{"H9", "C5", "C6"}))
		require.Equal(t, []model.Card{"H9", "C5", "C6"}, player.Hand())
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand(hand)
		require.False(t, player.Rearrange([]model.Card{"H9", "C5"}))
		require.Equal(t, hand, player.Hand())
	})

	t.Run("rejects_foreign_cards", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand(hand)
		require.False(t, player.Rearrange([]model.Card{"H9", "C5", "D1"}))
		require.Equal(t, hand, player.Hand())
	})

	t.Run("rejects_repeated_cards", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand(hand)
		require.False(t, player.Rearrange([]model.Card{"H9", "H9", "C5"}))
		require.Equal(t, hand, player.Hand())
	})
}

func TestInsertCards(t *testing.T) {
	t.Run("inserts_at_index", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6"})
		player.InsertCards([]model.Card{"H9", "H10"}, 1)
		require.Equal(t, []model.Card{"C5", "H9", "H10", "C6"}, player.Hand())
	})

	t.Run("clamps_out_of_range_index", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5"})
		player.InsertCards([]model.Card{"H9"}, 99)
		require.Equal(t, []model.Card{"C5", "H9"}, player.Hand())
		player.InsertCards([]model.Card{"D2"}, -3)
		require.Equal(t, []model.Card{"D2", "C5", "H9"}, player.Hand())
	})
}

func TestPayloads(t *testing.T) {
	t.Run("self_payload_carries_the_full_hand", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6"})
		payload := player.SelfPayload()
		require.Equal(t, "ann", payload.Name)
		require.Equal(t, []model.Card{"C5", "C6"}, payload.Hand)
	})

	t.Run("observer_payload_never_reveals_cards", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.SetHand([]model.Card{"C5", "C6"})
		payload := player.ObserverPayload(2)
		require.Equal(t, "ann", payload.Name)
		require.Equal(t, 2, payload.CardCount)
		require.Equal(t, 2, payload.Position)
		require.Empty(t, payload.ID)
	})

	t.Run("abandoned_seats_expose_their_id", func(t *testing.T) {
		player := model.NewPlayer("p1", "ann")
		player.Abandon()
		payload := player.ObserverPayload(0)
		require.Equal(t, "p1", payload.ID)
	})
}

func TestHandIsACopy(t *testing.T) {
	player := model.NewPlayer("p1", "ann")
	player.SetHand([]model.Card{"C5", "C6"})
	hand := player.Hand()
	hand[0] = "D1"
	require.Equal(t, []model.Card{"C5", "C6"}, player.Hand())
}
