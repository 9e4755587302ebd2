package evalapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/card"
)

func hand(cards ...card.Card) []card.Card { return cards }

func TestLookupUnknownTypeErrors(t *testing.T) {
	_, err := Lookup(Type("not-a-real-type"))
	require.Error(t, err)
}

func TestCompareAndBetterOrderByCategoryThenOrderedRank(t *testing.T) {
	better := HandRank{CategoryRank: 1, OrderedRank: 5}
	worse := HandRank{CategoryRank: 2, OrderedRank: 1}
	assert.Equal(t, -1, Compare(better, worse))
	assert.True(t, Better(better, worse))

	tieCategory := HandRank{CategoryRank: 1, OrderedRank: 9}
	assert.Equal(t, -1, Compare(better, tieCategory))
	assert.Equal(t, 0, Compare(better, better))
}

func TestQualifierQualifies(t *testing.T) {
	q := Qualifier{MaxCategoryRank: 0, MaxOrderedRank: 5}
	assert.True(t, q.Qualifies(HandRank{CategoryRank: 0, OrderedRank: 5}))
	assert.False(t, q.Qualifies(HandRank{CategoryRank: 0, OrderedRank: 6}))
	assert.True(t, q.Qualifies(HandRank{CategoryRank: -1, OrderedRank: 1}))
}

func TestHighEvaluatorRanksStraightFlushAboveFourOfAKind(t *testing.T) {
	eval, err := Lookup(High)
	require.NoError(t, err)

	straightFlush := hand(
		card.New(card.Five, card.Clubs), card.New(card.Six, card.Clubs), card.New(card.Seven, card.Clubs),
		card.New(card.Eight, card.Clubs), card.New(card.Nine, card.Clubs),
	)
	fourKind := hand(
		card.New(card.King, card.Clubs), card.New(card.King, card.Diamonds), card.New(card.King, card.Hearts),
		card.New(card.King, card.Spades), card.New(card.Two, card.Clubs),
	)

	sfRank, err := eval.Evaluate(straightFlush)
	require.NoError(t, err)
	fkRank, err := eval.Evaluate(fourKind)
	require.NoError(t, err)

	assert.True(t, Better(sfRank, fkRank))
}

func TestHighEvaluatorTreatsWheelAsLowestStraight(t *testing.T) {
	eval, err := Lookup(High)
	require.NoError(t, err)

	wheel := hand(
		card.New(card.Ace, card.Clubs), card.New(card.Two, card.Diamonds), card.New(card.Three, card.Hearts),
		card.New(card.Four, card.Spades), card.New(card.Five, card.Clubs),
	)
	sixHighStraight := hand(
		card.New(card.Two, card.Clubs), card.New(card.Three, card.Diamonds), card.New(card.Four, card.Hearts),
		card.New(card.Five, card.Spades), card.New(card.Six, card.Clubs),
	)

	wheelRank, err := eval.Evaluate(wheel)
	require.NoError(t, err)
	sixHighRank, err := eval.Evaluate(sixHighStraight)
	require.NoError(t, err)

	assert.Equal(t, wheelRank.CategoryRank, sixHighRank.CategoryRank)
	assert.True(t, Better(sixHighRank, wheelRank), "six-high straight beats the wheel")
}

func TestHighEvaluatorResolvesWildCardToBestSubstitution(t *testing.T) {
	eval, err := Lookup(WildHigh)
	require.NoError(t, err)

	wild := card.New(card.Two, card.Clubs)
	wild.IsWild = true

	withWild := hand(
		card.New(card.King, card.Clubs), card.New(card.King, card.Diamonds), card.New(card.King, card.Hearts),
		wild, card.New(card.Two, card.Spades),
	)
	r, err := eval.Evaluate(withWild)
	require.NoError(t, err)

	assert.Equal(t, catFourKind+1, r.CategoryRank, "wild should complete the fourth king, shifted by the five-of-a-kind headroom category")
}

func TestDescribeFallsBackForUnknownType(t *testing.T) {
	name, detail := Describe(Type("nope"), HandRank{CategoryRank: 3, OrderedRank: 2})
	assert.Equal(t, "Hand", name)
	assert.Contains(t, detail, "category 3")
}

func TestDescribeHighFamilyNamesCategory(t *testing.T) {
	name, _ := Describe(High, HandRank{CategoryRank: catFlush})
	assert.Equal(t, "Flush", name)
}

func TestDescribeHighFamilyBuildsCardLevelDetail(t *testing.T) {
	eval, err := Lookup(High)
	require.NoError(t, err)

	quadQueens := hand(
		card.New(card.Queen, card.Clubs), card.New(card.Queen, card.Diamonds), card.New(card.Queen, card.Hearts),
		card.New(card.Queen, card.Spades), card.New(card.Seven, card.Clubs),
	)
	r, err := eval.Evaluate(quadQueens)
	require.NoError(t, err)

	name, detail := Describe(High, r)
	assert.Equal(t, "Four of a Kind", name)
	assert.Equal(t, "Four Queens", detail)

	fullHouse := hand(
		card.New(card.King, card.Clubs), card.New(card.King, card.Diamonds), card.New(card.King, card.Hearts),
		card.New(card.Queen, card.Spades), card.New(card.Queen, card.Clubs),
	)
	r, err = eval.Evaluate(fullHouse)
	require.NoError(t, err)
	_, detail = Describe(High, r)
	assert.Equal(t, "Kings Full of Queens", detail)
}

func TestDescribeLowFamilyBuildsLadderDetail(t *testing.T) {
	eval, err := Lookup(A5Low)
	require.NoError(t, err)

	wheel := hand(
		card.New(card.Ace, card.Clubs), card.New(card.Two, card.Diamonds), card.New(card.Three, card.Hearts),
		card.New(card.Four, card.Spades), card.New(card.Five, card.Clubs),
	)
	r, err := eval.Evaluate(wheel)
	require.NoError(t, err)

	_, detail := Describe(A5Low, r)
	assert.Equal(t, "No Pair, Five-Four-Three-Two-Ace", detail)
}
