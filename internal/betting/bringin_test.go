package betting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/table"
)

func newBringInTable(t *testing.T, ids ...string) *table.Table {
	t.Helper()
	tb := table.New(deck.Standard52, 0)
	for _, id := range ids {
		require.NoError(t, tb.Seat(table.NewPlayer(id, id, 500)))
	}
	return tb
}

func TestSelectFirstToActLowCardRound1(t *testing.T) {
	tb := newBringInTable(t, "a", "b", "c")
	showings := []Showing{
		{PlayerID: "a", Cards: []card.Card{card.New(card.King, card.Spades)}},
		{PlayerID: "b", Cards: []card.Card{card.New(card.Two, card.Clubs)}},
		{PlayerID: "c", Cards: []card.Card{card.New(card.Queen, card.Hearts)}},
	}
	winner, err := SelectFirstToAct(tb, LowCard, 1, showings)
	require.NoError(t, err)
	require.Equal(t, "b", winner, "lowest door card brings in")
}

func TestSelectFirstToActHighCardRound1(t *testing.T) {
	tb := newBringInTable(t, "a", "b", "c")
	showings := []Showing{
		{PlayerID: "a", Cards: []card.Card{card.New(card.King, card.Spades)}},
		{PlayerID: "b", Cards: []card.Card{card.New(card.Two, card.Clubs)}},
		{PlayerID: "c", Cards: []card.Card{card.New(card.Queen, card.Hearts)}},
	}
	winner, err := SelectFirstToAct(tb, HighCard, 1, showings)
	require.NoError(t, err)
	require.Equal(t, "a", winner, "highest door card brings in under a high-card rule")
}

func TestSelectFirstToActLaterRoundBestShowing(t *testing.T) {
	tb := newBringInTable(t, "a", "b")
	showings := []Showing{
		{PlayerID: "a", Cards: []card.Card{card.New(card.Ace, card.Spades), card.New(card.Ace, card.Clubs)}},
		{PlayerID: "b", Cards: []card.Card{card.New(card.King, card.Spades), card.New(card.Queen, card.Clubs)}},
	}
	winner, err := SelectFirstToAct(tb, HighCard, 2, showings)
	require.NoError(t, err)
	require.Equal(t, "a", winner, "best showing pair acts first from round 2 on")
}

func TestSelectFirstToActTieBreaksOnSeatDistance(t *testing.T) {
	tb := newBringInTable(t, "a", "b", "c")
	showings := []Showing{
		{PlayerID: "a", Cards: []card.Card{card.New(card.Two, card.Clubs)}},
		{PlayerID: "b", Cards: []card.Card{card.New(card.Two, card.Hearts)}},
		{PlayerID: "c", Cards: []card.Card{card.New(card.King, card.Spades)}},
	}
	winner, err := SelectFirstToAct(tb, LowCard, 1, showings)
	require.NoError(t, err)
	require.Equal(t, "a", winner, "tie between equal-rank door cards breaks toward the seat closer to the button")
}
