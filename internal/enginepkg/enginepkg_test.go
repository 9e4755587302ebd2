package enginepkg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/betting"
)

const headsUpDoc = `{
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
}`

func TestGameDescribesAndRunsAHand(t *testing.T) {
	r, err := LoadRules([]byte(headsUpDoc))
	require.NoError(t, err)

	g, err := NewGame(r, Config{
		Structure: betting.NoLimit,
		Forced:    betting.ForcedBetConfig{SmallBlind: 1, BigBlind: 2},
		Rand:      rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	title, tags := g.GetGameDescription()
	assert.Equal(t, "$1/$2 No Limit Test Heads-Up Hold'em", title)
	assert.Contains(t, tags, "Blinds")

	require.NoError(t, g.AddPlayer("p1", "Alice", 100))
	require.NoError(t, g.AddPlayer("p2", "Bob", 100))

	require.NoError(t, g.StartHand())

	for g.GetHandResults() == nil {
		actor := g.Table.ButtonPlayer()
		valid, err := g.GetValidActions(actor)
		if err != nil {
			// not actor's turn right now; try the other seat
			for _, id := range g.Table.SeatOrder() {
				if id != actor {
					actor = id
				}
			}
			valid, err = g.GetValidActions(actor)
			require.NoError(t, err)
		}
		require.NotEmpty(t, valid)
		chosen := valid[0]
		for _, va := range valid {
			if va.Action == betting.Check || va.Action == betting.Call {
				chosen = va
				break
			}
		}
		require.NoError(t, g.PlayerAction(actor, chosen.Action, chosen.Min))
	}

	gr := g.GetHandResults()
	require.NotNil(t, gr)
	assert.Equal(t, 200, g.Table.TotalChips())
}
