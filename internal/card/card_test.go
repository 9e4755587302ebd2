package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresVisibilityAndWildness(t *testing.T) {
	a := New(Ace, Spades)
	b := New(Ace, Spades).FaceUp()
	b.IsWild = true
	b.WildType = Named

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(King, Spades)))
}

func TestFaceUpAndFlipDownDoNotMutateReceiver(t *testing.T) {
	down := New(Queen, Hearts)
	up := down.FaceUp()

	assert.Equal(t, FaceDown, down.Visibility)
	assert.Equal(t, FaceUp, up.Visibility)
	assert.Equal(t, FaceDown, up.FlipDown().Visibility)
}

func TestNewJokerIsAlwaysWild(t *testing.T) {
	j := NewJoker()
	assert.True(t, j.IsWild)
	assert.Equal(t, NaturalJoker, j.WildType)
	assert.Equal(t, Joker, j.Rank)
}

func TestRetypeRejectsNaturalJokerToMatching(t *testing.T) {
	j := NewJoker()
	_, err := j.Retype(Matching)
	require.Error(t, err)

	bug, err := j.Retype(Bug)
	require.NoError(t, err)
	assert.Equal(t, Bug, bug.WildType)
	assert.True(t, bug.IsWild)
}

func TestMakeWildSkipsNaturalJokerCheck(t *testing.T) {
	c := MakeWild(New(Two, Clubs), Named)
	assert.True(t, c.IsWild)
	assert.Equal(t, Named, c.WildType)

	plain := MakeWild(c, NotWild)
	assert.False(t, plain.IsWild)
}

func TestStringersCoverKnownValues(t *testing.T) {
	assert.Equal(t, "A♠", New(Ace, Spades).String())
	assert.Equal(t, "Jk", NewJoker().String())
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "♥", Hearts.String())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Spades.IsRed())
}
