package table

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
)

func newSeatedTable(t *testing.T, ids ...string) *Table {
	t.Helper()
	tb := New(deck.Standard52, 0)
	for _, id := range ids {
		require.NoError(t, tb.Seat(NewPlayer(id, id, 100)))
	}
	return tb
}

func TestSeatRejectsDuplicateID(t *testing.T) {
	tb := newSeatedTable(t, "a")
	err := tb.Seat(NewPlayer("a", "a again", 50))
	require.Error(t, err)
}

func TestSeatAssignsButtonToFirstSeat(t *testing.T) {
	tb := newSeatedTable(t, "a", "b", "c")
	assert.Equal(t, "a", tb.ButtonPlayer())
	assert.Equal(t, []string{"a", "b", "c"}, tb.SeatOrder())
}

func TestRemoveResetsButtonWhenOutOfRange(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	tb.AdvanceButton()
	assert.Equal(t, "b", tb.ButtonPlayer())

	tb.Remove("b")
	assert.Equal(t, "a", tb.ButtonPlayer())
	_, ok := tb.Player("b")
	assert.False(t, ok)
}

func TestOrderedPlayersStartsFromButton(t *testing.T) {
	tb := newSeatedTable(t, "a", "b", "c")
	tb.AdvanceButton()

	order := tb.OrderedPlayers()
	got := make([]string, len(order))
	for i, p := range order {
		got[i] = p.ID
	}
	assert.Equal(t, []string{"b", "c", "a"}, got)
}

func TestSeatDistanceFromButton(t *testing.T) {
	tb := newSeatedTable(t, "a", "b", "c")
	assert.Equal(t, 0, tb.SeatDistanceFromButton("a"))
	assert.Equal(t, 1, tb.SeatDistanceFromButton("b"))
	assert.Equal(t, 2, tb.SeatDistanceFromButton("c"))
	assert.Equal(t, -1, tb.SeatDistanceFromButton("z"))

	tb.AdvanceButton()
	assert.Equal(t, 2, tb.SeatDistanceFromButton("a"))
	assert.Equal(t, 0, tb.SeatDistanceFromButton("b"))
}

func TestAssignPositionsHeadsUpAndThreeHanded(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	tb.AssignPositions()
	a, _ := tb.Player("a")
	b, _ := tb.Player("b")
	assert.True(t, a.HasPosition(Button))
	assert.True(t, a.HasPosition(SmallBlind))
	assert.True(t, b.HasPosition(BigBlind))

	tb3 := newSeatedTable(t, "a", "b", "c")
	tb3.AssignPositions()
	a3, _ := tb3.Player("a")
	b3, _ := tb3.Player("b")
	c3, _ := tb3.Player("c")
	assert.True(t, a3.HasPosition(Button))
	assert.True(t, b3.HasPosition(SmallBlind))
	assert.True(t, c3.HasPosition(BigBlind))
}

func TestResetForHandRebuildsDeckAndClearsPerHandState(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	a, _ := tb.Player("a")
	a.TotalBet = 10
	a.Folded = true

	require.NoError(t, tb.ResetForHand(rand.New(rand.NewSource(1)), true))
	require.NotNil(t, tb.Deck)
	assert.Equal(t, 52, tb.Deck.Len())
	assert.False(t, a.Folded)
	assert.Equal(t, 0, a.TotalBet)
}

func TestTotalChipsSumsStacksAndCommittedBets(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	a, _ := tb.Player("a")
	a.Stack = 90
	a.TotalBet = 10
	assert.Equal(t, 200, tb.TotalChips())
}

func TestDealToPlayerAndCommunityAndDiscard(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	require.NoError(t, tb.ResetForHand(rand.New(rand.NewSource(2)), true))

	c, err := tb.DealToPlayer("a", false, "hole")
	require.NoError(t, err)

	a, _ := tb.Player("a")
	assert.Equal(t, 1, a.Hand.Len())

	require.NoError(t, tb.DealRoundRobin([]string{"a", "b"}, false, "hole"))
	a, _ = tb.Player("a")
	b, _ := tb.Player("b")
	assert.Equal(t, 2, a.Hand.Len())
	assert.Equal(t, 1, b.Hand.Len())

	board, err := tb.DealCommunity(3, "")
	require.NoError(t, err)
	assert.Len(t, board, 3)
	assert.Equal(t, 3, tb.Community.Len())

	require.NoError(t, tb.DiscardFromHand("a", []card.Card{c}))
	a, _ = tb.Player("a")
	assert.Equal(t, 1, a.Hand.Len())
	assert.Len(t, tb.Discard, 1)

	_, err = tb.DealToPlayer("nope", false, "")
	require.Error(t, err)
}

func TestReplaceCommunityDiscardsOldAndDealsFresh(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	require.NoError(t, tb.ResetForHand(rand.New(rand.NewSource(3)), true))

	old, err := tb.DealCommunity(3, "default")
	require.NoError(t, err)

	fresh, err := tb.ReplaceCommunity("default", 3)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
	assert.Equal(t, old, tb.Discard)
}

func TestAllCardsCoversDeckCommunityHandsAndDiscard(t *testing.T) {
	tb := newSeatedTable(t, "a", "b")
	require.NoError(t, tb.ResetForHand(rand.New(rand.NewSource(4)), true))

	_, err := tb.DealToPlayer("a", false, "hole")
	require.NoError(t, err)
	_, err = tb.DealCommunity(2, "")
	require.NoError(t, err)

	assert.Len(t, tb.AllCards(), 52)
}
