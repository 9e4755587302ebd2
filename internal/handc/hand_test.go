package handc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/card"
)

func TestAddTracksPrimarySequenceAndSubset(t *testing.T) {
	h := New()
	ac := card.New(card.Ace, card.Clubs)
	kd := card.New(card.King, card.Diamonds)

	idx := h.Add(ac, "hole")
	assert.Equal(t, 0, idx)
	h.Add(kd, "")

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []card.Card{ac}, h.Subset("hole"))
	assert.Nil(t, h.Subset("board"))
}

func TestAssignToSubsetDoesNotDuplicateInCards(t *testing.T) {
	h := New()
	ac := card.New(card.Ace, card.Clubs)
	h.Add(ac, "")

	require.NoError(t, h.AssignToSubset(0, "Board 1"))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, []card.Card{ac}, h.Subset("Board 1"))

	assert.Error(t, h.AssignToSubset(5, "Board 1"))
}

func TestIndexOfAndFaceUpCards(t *testing.T) {
	h := New()
	ac := card.New(card.Ace, card.Clubs)
	kd := card.New(card.King, card.Diamonds)
	h.Add(ac, "")
	h.Add(kd, "")

	assert.Equal(t, 1, h.IndexOf(kd))
	assert.Equal(t, -1, h.IndexOf(card.New(card.Two, card.Spades)))

	h.SetFaceUp(1)
	assert.Equal(t, []card.Card{kd.FaceUp()}, h.FaceUpCards())
}

func TestRemoveKeepsSubsetIndicesConsistent(t *testing.T) {
	h := New()
	a := card.New(card.Ace, card.Clubs)
	b := card.New(card.King, card.Diamonds)
	c := card.New(card.Queen, card.Hearts)
	h.Add(a, "keep")
	h.Add(b, "keep")
	h.Add(c, "keep")

	h.Remove(b)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []card.Card{a, c}, h.Cards())
	assert.Equal(t, []card.Card{a, c}, h.Subset("keep"))
}

func TestRemoveIgnoresCardsNotPresent(t *testing.T) {
	h := New()
	a := card.New(card.Ace, card.Clubs)
	h.Add(a, "")

	h.Remove(card.New(card.Two, card.Spades))
	assert.Equal(t, 1, h.Len())
}

func TestClearResetsCardsAndSubsets(t *testing.T) {
	h := New()
	h.Add(card.New(card.Ace, card.Clubs), "hole")
	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Subset("hole"))
	assert.Empty(t, h.SubsetNames())
}
