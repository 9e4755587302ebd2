package crosscmp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/evalapi"
	"github.com/lox/pokerengine/internal/ranktable"
)

const twoCardToFiveCardCSV = `
two_card_high,0,10,high,0,200
two_card_high,7,50,high,7,900
`

func TestTranslateMapsSmallerToLarger(t *testing.T) {
	table, err := ranktable.ParseCrossSize(strings.NewReader(twoCardToFiveCardCSV))
	require.NoError(t, err)
	m := NewMapping(table)

	translated, err := m.Translate("two_card_high", evalapi.HandRank{CategoryRank: 0, OrderedRank: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, translated.CategoryRank)
	assert.Equal(t, 200, translated.OrderedRank)
}

func TestTranslateMissingRowErrors(t *testing.T) {
	table, err := ranktable.ParseCrossSize(strings.NewReader(twoCardToFiveCardCSV))
	require.NoError(t, err)
	m := NewMapping(table)

	_, err = m.Translate("two_card_high", evalapi.HandRank{CategoryRank: 3, OrderedRank: 999})
	assert.Error(t, err)
}

func TestCompareTranslatesNonCanonicalSides(t *testing.T) {
	table, err := ranktable.ParseCrossSize(strings.NewReader(twoCardToFiveCardCSV))
	require.NoError(t, err)
	m := NewMapping(table)

	// a 2-card high hand mapped to its 5-card equivalent should compare
	// as worse than a genuine 5-card straight flush (category 0,
	// ordered_rank smaller than 200).
	a := evalapi.HandRank{CategoryRank: 0, OrderedRank: 10} // two_card_high
	b := evalapi.HandRank{CategoryRank: 0, OrderedRank: 50} // already "high"-canonical

	cmp, err := m.Compare("two_card_high", a, "high", b, "high")
	require.NoError(t, err)
	assert.Equal(t, 1, cmp, "translated 200 should be worse (larger) than already-canonical 50")
}
