package betting

import "sort"

// Pot is one level of the pot: an amount and the set of player IDs
// eligible to win it (spec §4.6: "main pot plus one side pot per
// distinct all-in level").
type Pot struct {
	Amount    int
	Eligible  []string
	CappedFor string // player ID whose all-in total created this level's cap, "" for the uncapped main/current pot
}

// Contribution is one player's total chips put into the pot across the
// whole hand (not just the current round) - the rebuild-from-totals
// algorithm works from these cumulative totals rather than incremental
// per-action bookkeeping, matching spec §9's prescribed approach and the
// teacher's pot.go PotManager.RecalculatePots.
type Contribution struct {
	PlayerID string
	Total    int
	Folded   bool
}

// BuildPots rebuilds the full set of pot levels from scratch given every
// player's cumulative contribution this hand (spec §4.6 steps 1-3):
//
//  1. Collect the distinct contribution totals of all non-folded players
//     (plus the top/uncapped level for whoever has put in the most).
//  2. For each level, every contributor (folded or not) who put in at
//     least that level contributes min(level, remaining-above-prior-
//     levels) to that level's amount; eligibility for the level is
//     restricted to non-folded contributors who reached it.
//  3. Levels are ordered smallest-cap first (the main pot nests inside
//     wider side pots).
func BuildPots(contribs []Contribution) []Pot {
	if len(contribs) == 0 {
		return nil
	}

	levelSet := make(map[int]bool)
	maxTotal := 0
	for _, c := range contribs {
		if c.Total > maxTotal {
			maxTotal = c.Total
		}
		if !c.Folded {
			levelSet[c.Total] = true
		}
	}
	levelSet[maxTotal] = true

	levels := make([]int, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	var pots []Pot
	prior := 0
	for _, level := range levels {
		if level <= prior {
			continue
		}
		amount := 0
		var eligible []string
		for _, c := range contribs {
			if c.Total <= prior {
				continue
			}
			slice := c.Total - prior
			if c.Total < level {
				slice = c.Total - prior
			} else {
				slice = level - prior
			}
			amount += slice
			if !c.Folded && c.Total >= level {
				eligible = append(eligible, c.PlayerID)
			}
		}
		if amount > 0 {
			cappedFor := ""
			if level != maxTotal {
				cappedFor = level2playerID(contribs, level)
			}
			pots = append(pots, Pot{Amount: amount, Eligible: eligible, CappedFor: cappedFor})
		}
		prior = level
	}
	return pots
}

// level2playerID names one player whose all-in total equals level, for
// diagnostic/display purposes only (a cap can be shared by several
// players all-in for the same amount; any one of them is a valid label).
func level2playerID(contribs []Contribution, level int) string {
	for _, c := range contribs {
		if c.Total == level {
			return c.PlayerID
		}
	}
	return ""
}

// TotalPot sums every level's amount - must always equal the sum of all
// contributions (spec §8 property: chip/pot conservation).
func TotalPot(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}
