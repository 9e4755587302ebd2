package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPotsNoAllIn(t *testing.T) {
	contribs := []Contribution{
		{PlayerID: "a", Total: 100},
		{PlayerID: "b", Total: 100},
		{PlayerID: "c", Total: 100, Folded: true},
	}
	pots := BuildPots(contribs)
	require.Len(t, pots, 1)
	assert.Equal(t, 300, pots[0].Amount)
	assert.ElementsMatch(t, []string{"a", "b"}, pots[0].Eligible)
}

func TestBuildPotsSidePot(t *testing.T) {
	// a all-in for 50, b and c cover to 150.
	contribs := []Contribution{
		{PlayerID: "a", Total: 50},
		{PlayerID: "b", Total: 150},
		{PlayerID: "c", Total: 150},
	}
	pots := BuildPots(contribs)
	require.Len(t, pots, 2)

	assert.Equal(t, 150, pots[0].Amount) // 50*3
	assert.ElementsMatch(t, []string{"a", "b", "c"}, pots[0].Eligible)

	assert.Equal(t, 200, pots[1].Amount) // (150-50)*2
	assert.ElementsMatch(t, []string{"b", "c"}, pots[1].Eligible)

	assert.Equal(t, 350, TotalPot(pots))
}

func TestBuildPotsFoldedStillContributes(t *testing.T) {
	// folded player's chips still count toward whichever pot levels they
	// reached, but they are never eligible to win any of them.
	contribs := []Contribution{
		{PlayerID: "a", Total: 50, Folded: true},
		{PlayerID: "b", Total: 50},
	}
	pots := BuildPots(contribs)
	require.Len(t, pots, 1)
	assert.Equal(t, 100, pots[0].Amount)
	assert.Equal(t, []string{"b"}, pots[0].Eligible)
}

func TestBuildPotsMultipleAllInLevels(t *testing.T) {
	contribs := []Contribution{
		{PlayerID: "a", Total: 20},
		{PlayerID: "b", Total: 60},
		{PlayerID: "c", Total: 100},
		{PlayerID: "d", Total: 100},
	}
	pots := BuildPots(contribs)
	require.Len(t, pots, 3)
	assert.Equal(t, 80, pots[0].Amount)  // 20*4
	assert.Equal(t, 120, pots[1].Amount) // 40*3
	assert.Equal(t, 80, pots[2].Amount)  // 40*2
	assert.Equal(t, 280, TotalPot(pots))

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, pots[0].Eligible)
	assert.ElementsMatch(t, []string{"b", "c", "d"}, pots[1].Eligible)
	assert.ElementsMatch(t, []string{"c", "d"}, pots[2].Eligible)
}
