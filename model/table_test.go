package model_test

import (
	"testing"

	"github.com/cardtable-online/server/model"
	"github.com/stretchr/testify/require"
)

func TestTurnID(t *testing.T) {
	turn := model.NewTurn("p1", []model.Card{"C5", "C6"}, nil, nil)
	require.Equal(t, "C5C6", turn.ID())
	require.Equal(t, turn.ID(), turn.ID())
}

func TestTablePop(t *testing.T) {
	table := model.NewTable()
	require.Nil(t, table.Pop())
	first := model.NewTurn("p1", []model.Card{"C5"}, nil, nil)
	second := model.NewTurn("p2", []model.Card{"C6"}, nil, nil)
	table.Append(first)
	table.Append(second)
	require.Same(t, second, table.Pop())
	require.Same(t, first, table.Last())
	require.Equal(t, 1, table.Len())
}

func TestTableRemoveByIDs(t *testing.T) {
	table := model.NewTable()
	first := model.NewTurn("p1", []model.Card{"C5"}, nil, nil)
	second := model.NewTurn("p2", []model.Card{"C6"}, nil, nil)
	third := model.NewTurn("p1", []model.Card{"H9", "H10"}, nil, nil)
	table.Append(first)
	table.Append(second)
	table.Append(third)

	removed := table.RemoveByIDs([]string{third.ID(), first.ID(), "nope"})
	require.Equal(t, []*model.Turn{first, third}, removed, "removed turns keep table order")
	require.Equal(t, []*model.Turn{second}, table.Turns())
}

func TestTableRewriteOwner(t *testing.T) {
	table := model.NewTable()
	table.Append(model.NewTurn("ghost", []model.Card{"C5"}, nil, nil))
	table.Append(model.NewTurn("p2", []model.Card{"C6"}, nil, nil))
	table.RewriteOwner("ghost", "p9")
	turns := table.Turns()
	require.Equal(t, "p9", turns[0].PlayerID)
	require.Equal(t, "p2", turns[1].PlayerID)
}
