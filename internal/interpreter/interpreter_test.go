package interpreter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

func newHeadsUpGame(t *testing.T) *Game {
	t.Helper()
	doc := []byte(`{
		"game":"Test Heads-Up Hold'em","players":{"min":2,"max":2},
		"deck":{"type":"standard","cards":52,"jokers":0},
		"bettingStructures":["No Limit"],
		"forcedBets":{"style":"blinds","smallBlind":1,"bigBlind":2},
		"bettingOrder":{"initial":{"static":"after_big_blind"},"subsequent":{"static":"after_button"}},
		"gamePlay":[
			{"name":"Deal Hole Cards","deal":{"target":"player","cards":[{"number":2,"state":"face down"}]}},
			{"name":"Preflop","bet":{"size":"big"}},
			{"name":"Deal Board","deal":{"target":"community","cards":[{"number":5,"state":"face up"}]}},
			{"name":"Showdown","showdown":{}}
		],
		"showdown":{"bestHand":[{"name":"High","evaluationType":"high","anyCards":5}]}
	}`)
	r, err := rules.Load(doc)
	require.NoError(t, err)

	tb := table.New(deck.Standard52, 0)
	require.NoError(t, tb.Seat(table.NewPlayer("p1", "p1", 100)))
	require.NoError(t, tb.Seat(table.NewPlayer("p2", "p2", 100)))

	forced := betting.ForcedBetConfig{SmallBlind: 1, BigBlind: 2}
	return NewGame(r, tb, rand.New(rand.NewSource(1)), forced, "", nil)
}

func TestStartHandReachesBettingWithBlindsPosted(t *testing.T) {
	g := newHeadsUpGame(t)
	require.NoError(t, g.StartHand())
	assert.Equal(t, PhaseBetting, g.Phase())

	p1, _ := g.Table.Player("p1")
	p2, _ := g.Table.Player("p2")
	assert.Equal(t, 2, p1.Hand.Len())
	assert.Equal(t, 2, p2.Hand.Len())
	// heads-up: button/SB acts first preflop.
	assert.Equal(t, "p1", g.currentActor())
}

func TestFullHandRunsToShowdownAndConservesChips(t *testing.T) {
	g := newHeadsUpGame(t)
	require.NoError(t, g.StartHand())

	for g.Phase() != PhaseComplete {
		actor := g.currentActor()
		if g.Phase() == PhaseDealing && g.pending != nil {
			actor = g.currentPendingActor()
		}
		require.NotEmpty(t, actor)

		valid, err := g.GetValidActions(actor)
		require.NoError(t, err)
		require.NotEmpty(t, valid)

		// Prefer check/call to drive the hand to showdown without
		// folding either player.
		chosen := valid[0]
		for _, va := range valid {
			if va.Action == betting.Check || va.Action == betting.Call {
				chosen = va
				break
			}
		}
		require.NoError(t, g.PlayerAction(actor, chosen.Action, chosen.Min))
	}

	gr := g.GetHandResult()
	require.NotNil(t, gr)
	assert.Equal(t, 4, gr.TotalPot()) // SB 1 + BB 2, both call to 2 each
	assert.NotEmpty(t, gr.Winners())
	assert.Equal(t, 200, g.Table.TotalChips())
}
