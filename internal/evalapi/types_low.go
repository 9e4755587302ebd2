package evalapi

import "github.com/lox/pokerengine/internal/card"

func init() {
	a5Opts := groupOpts{aceLow: true, checkStraightFlush: false, reverseTiebreak: true}
	a5Eval := func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, a5Opts)
		})
	}
	register(A5Low, a5Eval)
	// a5_low_high shares a5_low's ranking table; SPEC_FULL.md notes the
	// only difference is which bestHand slot a showdown awards it to,
	// not the evaluation itself.
	register(A5LowHigh, a5Eval)

	register(TwentySevenLow, func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyGroup(c, groupOpts{checkStraightFlush: true, wheelCounts: false, reverseTiebreak: true})
		})
	})

	registerDescriber(A5Low, describeLowFamily)
	registerDescriber(A5LowHigh, describeLowFamily)
	registerDescriber(TwentySevenLow, describeLowFamily)
}

// describeLowFamily reuses the shared "high" structural category table
// (spec §4.2: lowball scores the same categories backwards) for the
// short name, then builds a ladder-style detail from the decisive low
// cards rather than the high-hand phrasing highFamilyDetail produces.
func describeLowFamily(r HandRank) (string, string) {
	name := categoryName("high", r.CategoryRank, highCategoryNames)
	if r.CategoryRank == catHighCard {
		return "No Pair", "No Pair, " + lowLadder(r.CardsUsed)
	}
	return name, name + " (low), " + lowLadder(r.CardsUsed)
}

// lowLadder renders the decisive low cards high-to-low, e.g.
// "Seven-Five-Four-Three-Ace". a5_low's aceLow convention reuses rank
// value 1 (card.One) to mean "Ace playing low", so that value is
// relabeled back to "Ace" here rather than the literal die-deck "One".
func lowLadder(used []card.Card) string {
	if len(used) == 0 {
		return ""
	}
	label := func(r card.Rank) string {
		if r == card.One {
			return "Ace"
		}
		return rankFullName(r)
	}
	s := label(used[0].Rank)
	for _, c := range used[1:] {
		s += "-" + label(c.Rank)
	}
	return s
}
