package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/card"
)

func TestNewStandard52HasNoDuplicatesAndNoJokers(t *testing.T) {
	d, err := New(Standard52, 0)
	require.NoError(t, err)
	require.Equal(t, 52, d.Len())

	seen := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		assert.NotEqual(t, card.Joker, c.Rank)
	}
}

func TestNewAppendsRequestedJokers(t *testing.T) {
	d, err := New(Standard52, 2)
	require.NoError(t, err)
	assert.Equal(t, 54, d.Len())

	jokers := 0
	for _, c := range d.Cards() {
		if c.Rank == card.Joker {
			jokers++
		}
	}
	assert.Equal(t, 2, jokers)
}

func TestDieVariantHasSixSuitlessFaces(t *testing.T) {
	d, err := New(Die, 0)
	require.NoError(t, err)
	require.Equal(t, 6, d.Len())
	for _, c := range d.Cards() {
		assert.Equal(t, card.JokerSuit, c.Suit)
	}
}

func TestShortVariantSizes(t *testing.T) {
	cases := map[Variant]int{Short20: 20, Short36: 36, Short40: 40}
	for v, want := range cases {
		d, err := New(v, 0)
		require.NoError(t, err)
		assert.Equal(t, want, d.Len())
	}
}

func TestUnknownVariantErrors(t *testing.T) {
	_, err := New(Variant(99), 0)
	require.Error(t, err)
}

func TestDealRemovesFromTopAndErrorsWhenExhausted(t *testing.T) {
	d, err := New(Short20, 0)
	require.NoError(t, err)

	top, ok := d.Peek()
	require.True(t, ok)

	dealt, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, top, dealt)
	assert.Equal(t, 19, d.Len())

	_, err = d.DealN(19)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	_, err = d.Deal()
	require.Error(t, err)

	_, ok = d.Peek()
	assert.False(t, ok)
}

func TestDealNOrderIsDealingOrderNotDeckOrder(t *testing.T) {
	d, err := New(Die, 0)
	require.NoError(t, err)
	first, err := d.Deal()
	require.NoError(t, err)

	d2, err := New(Die, 0)
	require.NoError(t, err)
	all, err := d2.DealN(6)
	require.NoError(t, err)
	assert.Equal(t, first, all[0])
}

func TestShuffleIsAPermutation(t *testing.T) {
	d, err := New(Standard52, 0)
	require.NoError(t, err)
	before := d.Cards()

	d.Shuffle(rand.New(rand.NewSource(42)))
	after := d.Cards()

	assert.ElementsMatch(t, before, after)
	assert.NotEqual(t, before, after)
}

func TestAllCardsMatchesFreshDeck(t *testing.T) {
	all, err := AllCards(Standard52, 1)
	require.NoError(t, err)
	assert.Len(t, all, 53)
}
