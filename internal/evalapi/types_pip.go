package evalapi

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// Pip-count evaluators score a hand by its numeric total against a
// target rather than by combinatorial structure (spec §4.2: "closest to
// 49/0/6/21-without-bust", grounded on original_source/tools/
// generate_rankings/generate_49_0_6_21_hands.py). Ace and face-card
// pip values are type-specific conventions; low_pip_6 additionally
// searches every non-empty subset of 1..N cards for the closest total,
// per spec's "using 1..N cards" note.
type pipConfig struct {
	target      int
	bustOver    bool // true: any total strictly over target is an automatic worst hand
	valueOf     func(card.Rank) int
	bestSubset  bool // true: search all non-empty subsets (low_pip_6); false: use every card dealt
}

func facePip10AceOne(r card.Rank) int {
	switch r {
	case card.Ace:
		return 1
	case card.Jack, card.Queen, card.King:
		return 10
	default:
		return int(r)
	}
}

func facePip10AceEleven(r card.Rank) int {
	switch r {
	case card.Ace:
		return 11
	case card.Jack, card.Queen, card.King:
		return 10
	default:
		return int(r)
	}
}

func init() {
	register(PipClosest49, pipEval(pipConfig{target: 49, bustOver: false, valueOf: facePip10AceOne}))
	register(PipClosest0, pipEval(pipConfig{target: 0, bustOver: false, valueOf: facePip10AceOne}))
	register(PipClosest6, pipEval(pipConfig{target: 6, bustOver: false, valueOf: facePip10AceOne}))
	register(Pip21NoBust, pipEval(pipConfig{target: 21, bustOver: true, valueOf: facePip10AceEleven}))
	register(LowPip6, pipEval(pipConfig{target: 6, bustOver: false, valueOf: facePip10AceOne, bestSubset: true}))

	registerDescriber(PipClosest49, pipDescriber(facePip10AceOne))
	registerDescriber(PipClosest0, pipDescriber(facePip10AceOne))
	registerDescriber(PipClosest6, pipDescriber(facePip10AceOne))
	registerDescriber(Pip21NoBust, pipDescriber(facePip10AceEleven))
	registerDescriber(LowPip6, pipDescriber(facePip10AceOne))
}

func pipEval(cfg pipConfig) EvalFunc {
	return func(cards []card.Card) (HandRank, error) {
		return ExpandAndEvaluate(cards, StandardRanks, true, func(c []card.Card) (HandRank, error) {
			return classifyPip(c, cfg)
		})
	}
}

func classifyPip(cards []card.Card, cfg pipConfig) (HandRank, error) {
	if len(cards) == 0 {
		return HandRank{}, errInvalidHand("evalapi: empty pip hand")
	}

	sumOf := func(idxs []int) int {
		s := 0
		for _, i := range idxs {
			s += cfg.valueOf(cards[i].Rank)
		}
		return s
	}

	best := -1
	bestBusted := false
	bestSize := 0
	var bestIdxs []int
	consider := func(idxs []int) {
		sum := sumOf(idxs)
		busted := cfg.bustOver && sum > cfg.target
		dist := sum - cfg.target
		if dist < 0 {
			dist = -dist
		}
		if busted {
			dist = 1_000_000 + sum // busts always rank worse than any non-bust, worse busts rank worse still
		}
		if best == -1 || dist < best || (dist == best && len(idxs) < bestSize) {
			best = dist
			bestBusted = busted
			bestSize = len(idxs)
			bestIdxs = idxs
		}
	}

	if cfg.bestSubset {
		n := len(cards)
		for mask := 1; mask < (1 << n); mask++ {
			var idxs []int
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					idxs = append(idxs, i)
				}
			}
			consider(idxs)
		}
	} else {
		all := make([]int, len(cards))
		for i := range all {
			all[i] = i
		}
		consider(all)
	}

	category := 0
	if bestBusted {
		category = 1
	}
	// Encode subset size as a secondary tiebreak (smaller qualifying
	// subset preferred on exact ties) alongside the distance, per spec
	// §4.9's "best-subset size where relevant for closest-to-N games".
	tiebreak := best*8 + bestSize
	used := make([]card.Card, len(bestIdxs))
	for i, idx := range bestIdxs {
		used[i] = cards[idx]
	}
	return HandRank{CategoryRank: category, OrderedRank: tiebreak, CardsUsed: used}, nil
}

// pipDescriber closes over the same value convention classifyPip used so
// the detail string reports the actual total the hand scored, not a raw
// rank sum (face cards and the ace have type-specific pip values).
func pipDescriber(valueOf func(card.Rank) int) func(HandRank) (string, string) {
	return func(r HandRank) (string, string) {
		name := categoryName("pip", r.CategoryRank, map[int]string{0: "Count", 1: "Bust"})
		total := 0
		for _, c := range r.CardsUsed {
			total += valueOf(c.Rank)
		}
		return name, fmt.Sprintf("%s of %d", name, total)
	}
}
