package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPotSumsEveryPot(t *testing.T) {
	g := GameResult{Pots: []PotResult{
		{Amount: 30, Winners: []string{"a"}},
		{Amount: 10, Winners: []string{"b"}},
	}}
	assert.Equal(t, 40, g.TotalPot())
}

func TestWinnersDedupesAcrossPotsInFirstSeenOrder(t *testing.T) {
	g := GameResult{Pots: []PotResult{
		{Amount: 20, Winners: []string{"a", "b"}},
		{Amount: 10, Winners: []string{"b"}, PotType: "side"},
	}}
	assert.Equal(t, []string{"a", "b"}, g.Winners())
}

func TestWinnersEmptyWhenNoPots(t *testing.T) {
	var g GameResult
	assert.Equal(t, 0, g.TotalPot())
	assert.Empty(t, g.Winners())
}
