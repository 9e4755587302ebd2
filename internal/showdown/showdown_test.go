package showdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/result"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

func c(r card.Rank, s card.Suit) card.Card { return card.New(r, s) }

func newShowdownTable(t *testing.T, ids ...string) *table.Table {
	t.Helper()
	tb := table.New(deck.Standard52, 0)
	for _, id := range ids {
		require.NoError(t, tb.Seat(table.NewPlayer(id, id, 500)))
	}
	return tb
}

func TestResolveSingleHighPot(t *testing.T) {
	tb := newShowdownTable(t, "alice", "bob", "charlie")
	community := []card.Card{
		c(card.Queen, card.Clubs), c(card.Queen, card.Diamonds), c(card.Queen, card.Hearts),
		c(card.Two, card.Spades), c(card.Seven, card.Clubs),
	}
	in := Input{
		Pots: []betting.Pot{{Amount: 60, Eligible: []string{"alice", "bob", "charlie"}}},
		Community: map[string][]card.Card{"": community},
		Players: map[string]PlayerCards{
			"alice":   {PlayerID: "alice", Hole: []card.Card{c(card.King, card.Spades), c(card.Three, card.Clubs)}},
			"bob":     {PlayerID: "bob", Hole: []card.Card{c(card.Queen, card.Spades), c(card.Two, card.Clubs)}}, // four queens
			"charlie": {PlayerID: "charlie", Hole: []card.Card{c(card.Ace, card.Clubs), c(card.King, card.Hearts)}},
		},
		Showdown: rules.ShowdownSpec{
			BestHand: []rules.BestHandSpec{
				{Name: "High", EvaluationType: "high", CardsRequired: rules.CardUsage{Kind: "anyCards", Counts: []int{5}}},
			},
		},
		Table: tb,
	}

	gr, err := Resolve(in)
	require.NoError(t, err)
	require.Len(t, gr.Pots, 1)
	assert.Equal(t, 60, gr.TotalPot())
	assert.Equal(t, []string{"bob"}, gr.Pots[0].Winners)
	assert.Contains(t, []string{"bob"}, gr.Winners()[0])

	var bobHand result.HandResult
	for _, hr := range gr.Pots[0].BestHands {
		if hr.PlayerID == "bob" {
			bobHand = hr
		}
	}
	assert.Equal(t, "Four of a Kind", bobHand.HandName)
	assert.Equal(t, "Four Queens", bobHand.HandDescription)
}

func TestResolveHiLoQualifierFailSplitsEqually(t *testing.T) {
	tb := newShowdownTable(t, "p1", "p2")
	community := []card.Card{
		c(card.King, card.Clubs), c(card.Queen, card.Diamonds), c(card.Jack, card.Hearts),
		c(card.Ten, card.Spades), c(card.Nine, card.Clubs),
	}
	in := Input{
		Pots: []betting.Pot{{Amount: 100, Eligible: []string{"p1", "p2"}}},
		Community: map[string][]card.Card{"": community},
		Players: map[string]PlayerCards{
			"p1": {PlayerID: "p1", Hole: []card.Card{c(card.Ace, card.Spades), c(card.Two, card.Clubs)}},
			"p2": {PlayerID: "p2", Hole: []card.Card{c(card.Ace, card.Hearts), c(card.Three, card.Diamonds)}},
		},
		Showdown: rules.ShowdownSpec{
			GlobalDefaultAction: "split_pot",
			BestHand: []rules.BestHandSpec{
				{Name: "High", EvaluationType: "high", CardsRequired: rules.CardUsage{Kind: "anyCards", Counts: []int{5}}},
				{
					Name: "Low", EvaluationType: "a5_low",
					CardsRequired: rules.CardUsage{Kind: "anyCards", Counts: []int{5}},
					Qualifier:     &rules.QualifierSpec{MaxCategoryRank: 0, MaxOrderedRank: 1}, // effectively unreachable: no 8-or-better low is present on this board
				},
			},
		},
		Table: tb,
	}

	gr, err := Resolve(in)
	require.NoError(t, err)
	require.Len(t, gr.Pots, 2)
	// find the Low portion and assert it fell back to a split across all
	// eligible players since no hand qualifies under the tight threshold.
	for _, pr := range gr.Pots {
		if pr.HandType == "Low" || pr.HandType == "Split (No Qualifier)" {
			assert.Equal(t, 2, len(pr.Winners))
		}
	}
}
