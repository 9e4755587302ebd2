package evalapi

import "github.com/lox/pokerengine/internal/card"

// Badugi ranks a (usually 4-card) hand by the size of its largest
// subset of cards that are pairwise distinct in both rank and suit (a
// "badugi"), then by the low value of that subset - more cards always
// beats fewer cards, and 4-card badugis are rare and strong. Ace plays
// low for Badugi, high for BadugiAceHigh; Hidugi reuses the same
// subsetting logic scored as a high hand (largest distinct-suit/rank
// subset, highest cards best) per SPEC_FULL.md.
func init() {
	register(Badugi, badugiEval(true, true))
	register(BadugiAceHigh, badugiEval(false, true))
	register(Hidugi, badugiEval(false, false))

	registerDescriber(Badugi, describeBadugi)
	registerDescriber(BadugiAceHigh, describeBadugi)
	registerDescriber(Hidugi, describeBadugi)
}

func badugiEval(aceLow bool, lowball bool) EvalFunc {
	return func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyBadugi(c, aceLow, lowball)
		})
	}
}

func classifyBadugi(cards []card.Card, aceLow, lowball bool) (HandRank, error) {
	if len(cards) == 0 {
		return HandRank{}, errInvalidHand("evalapi: empty badugi hand")
	}
	rankVal := func(r card.Rank) int {
		if aceLow && r == card.Ace {
			return 1
		}
		return int(r)
	}

	// Try every subset, largest first, looking for one with distinct
	// ranks and distinct suits; keep the best-valued such subset.
	n := len(cards)
	bestSize := 0
	var bestVals []int
	for mask := 1; mask < (1 << n); mask++ {
		var idxs []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				idxs = append(idxs, i)
			}
		}
		ranksSeen := make(map[int]bool)
		suitsSeen := make(map[card.Suit]bool)
		ok := true
		var vals []int
		for _, i := range idxs {
			c := cards[i]
			v := rankVal(c.Rank)
			if ranksSeen[v] || suitsSeen[c.Suit] {
				ok = false
				break
			}
			ranksSeen[v] = true
			suitsSeen[c.Suit] = true
			vals = append(vals, v)
		}
		if !ok {
			continue
		}
		if len(idxs) > bestSize {
			bestSize, bestVals = len(idxs), vals
		} else if len(idxs) == bestSize {
			if badugiBetter(vals, bestVals, lowball) {
				bestVals = vals
			}
		}
	}

	// Category: more qualifying cards is always better than fewer
	// (4-card badugi beats every 3-card, etc.), so category = (maxSize -
	// bestSize), smaller category number = better.
	category := n - bestSize
	bestVals = topN(bestVals, len(bestVals)) // canonical high-to-low order, independent of deal order
	for len(bestVals) < n {
		bestVals = append(bestVals, 0)
	}
	r, err := finishGroup(category, bestVals, groupOpts{reverseTiebreak: lowball})
	if err != nil {
		return HandRank{}, err
	}
	return r, nil
}

// badugiBetter reports whether candidate beats current under the
// lowball/high convention, comparing sorted-descending value sequences.
func badugiBetter(candidate, current []int, lowball bool) bool {
	if current == nil {
		return true
	}
	a, b := topN(candidate, len(candidate)), topN(current, len(current))
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if lowball {
			return a[i] < b[i]
		}
		return a[i] > b[i]
	}
	return false
}

var badugiCategoryNames = map[int]string{0: "Four Card", 1: "Three Card", 2: "Two Card", 3: "One Card"}

func describeBadugi(r HandRank) (string, string) {
	name := categoryName("badugi", r.CategoryRank, badugiCategoryNames) + " Badugi"
	return name, name + ", " + lowLadder(r.CardsUsed)
}
