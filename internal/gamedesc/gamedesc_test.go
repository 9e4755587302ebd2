package gamedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/rules"
)

func loadFixture(t *testing.T, doc string) *rules.Rules {
	t.Helper()
	r, err := rules.Load([]byte(doc))
	require.NoError(t, err)
	return r
}

func TestDescribeFormatsStakesStructureAndName(t *testing.T) {
	r := loadFixture(t, `{
		"game": "Texas Hold'em",
		"players": {"min": 2, "max": 9},
		"deck": {"type": "standard"},
		"bettingStructures": ["No Limit"],
		"forcedBets": {"style": "blinds"},
		"gamePlay": [{"name": "Deal", "deal": {"target": "player", "cards": [{"number": 2}]}}, {"name": "Showdown", "showdown": {}}],
		"showdown": {"bestHand": [{"name": "High", "evaluationType": "high", "anyCards": 5}]}
	}`)

	got := Describe(r, betting.NoLimit, 1, 2)
	assert.Equal(t, "$1/$2 No Limit Texas Hold'em", got)
}

func TestSubtitleTagsBringIn(t *testing.T) {
	r := loadFixture(t, `{
		"game": "Seven Card Stud",
		"players": {"min": 2, "max": 8},
		"deck": {"type": "standard"},
		"bettingStructures": ["Limit"],
		"forcedBets": {"style": "bring-in"},
		"gamePlay": [{"name": "Deal", "deal": {"target": "player", "cards": [{"number": 2}]}}, {"name": "Showdown", "showdown": {}}],
		"showdown": {"bestHand": [{"name": "High", "evaluationType": "high", "anyCards": 5}]}
	}`)

	tags := SubtitleTags(r)
	assert.Contains(t, tags, "Antes")
	assert.Contains(t, tags, "Low Card Bring-In")
}

func TestSubtitleTagsSplitPotAndQualifier(t *testing.T) {
	r := loadFixture(t, `{
		"game": "Omaha Hi-Lo",
		"players": {"min": 2, "max": 6},
		"deck": {"type": "standard"},
		"bettingStructures": ["Pot Limit"],
		"forcedBets": {"style": "blinds"},
		"gamePlay": [{"name": "Deal", "deal": {"target": "player", "cards": [{"number": 4}]}}, {"name": "Showdown", "showdown": {}}],
		"showdown": {"bestHand": [
			{"name": "High", "evaluationType": "high", "anyCards": 5},
			{"name": "Low", "evaluationType": "a5_low", "anyCards": 5, "qualifier": {"maxCategoryRank": 1, "maxOrderedRank": 8}}
		]}
	}`)

	tags := SubtitleTags(r)
	assert.Contains(t, tags, "Split Pot")
	assert.Contains(t, tags, "Qualifier")
	assert.Equal(t, "High / Low", SplitPotDescription(r))
}

func TestSubtitleTagsPlayerCapAndDeck(t *testing.T) {
	r := loadFixture(t, `{
		"game": "Short Deck Hold'em",
		"players": {"min": 2, "max": 6},
		"deck": {"type": "short_6a", "jokers": 1},
		"bettingStructures": ["No Limit"],
		"forcedBets": {"style": "blinds"},
		"gamePlay": [{"name": "Deal", "deal": {"target": "player", "cards": [{"number": 2}]}}, {"name": "Showdown", "showdown": {}}],
		"showdown": {"bestHand": [{"name": "High", "evaluationType": "high", "anyCards": 5}]}
	}`)

	tags := SubtitleTags(r)
	assert.Contains(t, tags, "36-Card Deck")
	assert.Contains(t, tags, "1 Joker")
	assert.Contains(t, tags, "6 Players Max")
}

func TestFinalHandDescriptionNamesPortionAndEvaluation(t *testing.T) {
	r := loadFixture(t, `{
		"game": "Razz",
		"players": {"min": 2, "max": 8},
		"deck": {"type": "standard"},
		"bettingStructures": ["Limit"],
		"forcedBets": {"style": "bring-in"},
		"gamePlay": [{"name": "Deal", "deal": {"target": "player", "cards": [{"number": 7}]}}, {"name": "Showdown", "showdown": {}}],
		"showdown": {"bestHand": [{"name": "Low", "evaluationType": "a5_low", "anyCards": 5}]}
	}`)

	descs := FinalHandDescription(r)
	require.Len(t, descs, 1)
	assert.Contains(t, descs[0], "Low")
	assert.Contains(t, descs[0], "Lowest 5 unique ranks")
}
