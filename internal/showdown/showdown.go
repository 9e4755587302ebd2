// Package showdown implements component I: card-selection subsetting,
// qualifier enforcement, multi-way hi/lo and multi-board splits,
// declaration mode, and odd-chip distribution (spec §4.8). Grounded on
// the teacher's internal/game showdown.go (DetermineWinners) for the
// overall pot-splitting shape, generalized from a single 5-card Hold'em
// evaluation to the variant-driven bestHand list with usage specs,
// qualifiers, and cross-size comparison.
package showdown

import (
	"fmt"
	"sort"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/evalapi"
	"github.com/lox/pokerengine/internal/result"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

// PlayerCards is one player's available cards going into showdown: their
// (post-discard) hand and its named subsets, plus which community
// subset(s) are visible.
type PlayerCards struct {
	PlayerID string
	Hole     []card.Card            // the player's full hand, hole cards
	HoleSub  map[string][]card.Card // named hole-card subsets (from a Separate step)
	Declared map[string]string      // declaration_mode == "declare": bestHand-entry name -> claim ("high"/"low"/"both"); empty/absent entries are not claimed
}

// Input bundles everything the resolver needs for one hand.
type Input struct {
	Pots       []betting.Pot
	Community  map[string][]card.Card // subset name -> cards, "" / "default" for the primary board
	Players    map[string]PlayerCards
	Showdown   rules.ShowdownSpec
	ActiveConditions map[string]bool // which named conditions currently hold, for conditional bestHand selection
	Table      *table.Table          // for closest-to-button odd-chip ordering
}

// ResolveFoldWin implements spec §4.8's early termination: when a
// betting round leaves exactly one non-folded player, that player wins
// every pot they are eligible for without anyone's cards being
// revealed or evaluated.
func ResolveFoldWin(pots []betting.Pot, winnerID string) result.GameResult {
	gr := result.GameResult{IsComplete: true}
	for _, pot := range pots {
		pr := result.PotResult{
			Amount:          pot.Amount,
			Winners:         []string{winnerID},
			EligiblePlayers: append([]string{}, pot.Eligible...),
			Reason:          "Uncontested (all others folded)",
		}
		if pot.CappedFor != "" {
			pr.PotType = "side"
		} else {
			pr.PotType = "main"
		}
		gr.Pots = append(gr.Pots, pr)
	}
	return gr
}

// Resolve runs the full spec §4.8 algorithm and returns a populated
// GameResult.
func Resolve(in Input) (result.GameResult, error) {
	bestHands := selectBestHandList(in)

	gr := result.GameResult{
		Hands:      make(map[string][]result.HandResult),
		IsComplete: true,
	}

	var potGroups [][]int // indices into gr.Pots sharing one original chip pot, for declaration forfeiture

	for _, pot := range in.Pots {
		// A pot with more than one bestHand entry (e.g. "High"/"Low") is
		// split into equal portions before each portion's winners are
		// determined; any odd chip from the portion split goes to the
		// first-listed entry (the conventional "odd chip to the high
		// hand" rule in hi/lo games - an Open Question decision recorded
		// in DESIGN.md).
		portionAmount := pot.Amount / len(bestHands)
		portionRemainder := pot.Amount % len(bestHands)

		var group []int
		for i, entry := range bestHands {
			amount := portionAmount
			if i == 0 {
				amount += portionRemainder
			}
			potResult, err := resolvePotPortion(in, pot, entry, amount)
			if err != nil {
				return result.GameResult{}, err
			}
			group = append(group, len(gr.Pots))
			gr.Pots = append(gr.Pots, potResult)
		}
		potGroups = append(potGroups, group)
	}

	if in.Showdown.DeclarationMode == "declare" && len(bestHands) > 1 {
		applyDeclarations(in, &gr, potGroups)
	}

	for _, pr := range gr.Pots {
		for _, hr := range pr.BestHands {
			gr.Hands[hr.PlayerID] = append(gr.Hands[hr.PlayerID], hr)
		}
		gr.WinningHands = append(gr.WinningHands, winningHandResults(pr)...)
	}
	return gr, nil
}

// applyDeclarations enforces spec §4.8's "both-or-nothing" rule: a
// player who declared "both" on a multi-portion pot must win every
// portion they declared or forfeit all of them, with the forfeited
// amount re-split among the remaining declared winners of each portion.
// Only the common two-portion (e.g. High/Low) hi/lo shape is handled;
// three-or-more-way declared splits are rare enough in the corpus that
// they are out of scope here (see DESIGN.md).
func applyDeclarations(in Input, gr *result.GameResult, potGroups [][]int) {
	for _, group := range potGroups {
		if len(group) < 2 {
			continue
		}
		bothClaimants := make(map[string]bool)
		for pid, pc := range in.Players {
			if len(pc.Declared) == 0 {
				continue
			}
			claimsAll := true
			for _, idx := range group {
				portion := gr.Pots[idx].HandType
				if claim, ok := pc.Declared[portion]; !ok || claim == "" {
					claimsAll = false
				}
			}
			if claimsAll {
				bothClaimants[pid] = true
			}
		}
		if len(bothClaimants) == 0 {
			continue
		}
		for pid := range bothClaimants {
			wonAll := true
			for _, idx := range group {
				won := false
				for _, w := range gr.Pots[idx].Winners {
					if w == pid {
						won = true
						break
					}
				}
				if !won {
					wonAll = false
					break
				}
			}
			if wonAll {
				continue
			}
			// Forfeit: remove pid from every portion they won in this
			// group and re-split that portion's amount among the
			// remaining winners.
			for _, idx := range group {
				pr := &gr.Pots[idx]
				var remaining []string
				removed := false
				for _, w := range pr.Winners {
					if w == pid {
						removed = true
						continue
					}
					remaining = append(remaining, w)
				}
				if !removed {
					continue
				}
				if len(remaining) == 0 {
					remaining = append([]string{}, pr.EligiblePlayers...)
					pr.Reason = "Split (Declaration Forfeit)"
				}
				pr.Winners = remaining
				pr.Split = len(remaining) > 1
			}
		}
	}
}

// selectBestHandList implements spec §4.8 step 1.
func selectBestHandList(in Input) []rules.BestHandSpec {
	for _, c := range in.Showdown.ConditionalHands {
		if in.ActiveConditions[c.Condition] {
			return c.BestHand
		}
	}
	if len(in.Showdown.BestHand) > 0 {
		return in.Showdown.BestHand
	}
	return in.Showdown.DefaultBestHand
}

type candidate struct {
	playerID string
	rank     evalapi.HandRank
	cards    []card.Card
}

// resolvePotPortion evaluates one bestHand entry against one pot level,
// splitting amount (already divided across entries for multi-portion
// pots) among that portion's winners (spec §4.8 step 2).
func resolvePotPortion(in Input, pot betting.Pot, entry rules.BestHandSpec, amount int) (result.PotResult, error) {
	evaluator, err := evalapi.Lookup(evalapi.Type(entry.EvaluationType))
	if err != nil {
		return result.PotResult{}, fmt.Errorf("showdown: %w", err)
	}

	community := in.Community[entry.Subset]
	declareMode := in.Showdown.DeclarationMode == "declare"

	var qualifying []candidate
	var allRanked []result.HandResult
	for _, pid := range pot.Eligible {
		pc, ok := in.Players[pid]
		if !ok {
			continue
		}
		if declareMode && len(pc.Declared) > 0 {
			if claim, ok := pc.Declared[entry.Name]; !ok || claim == "" {
				continue // did not declare this portion: not evaluated for it
			}
		}
		hole := pc.Hole
		if entry.HoleSubset != "" {
			hole = pc.HoleSub[entry.HoleSubset]
		}
		best, bestCards, ok := bestSelection(hole, community, entry, evaluator)
		hr := result.HandResult{
			PlayerID:       pid,
			EvaluationType: entry.EvaluationType,
			HandType:       entry.Name,
			CommunityCards: community,
		}
		if !ok {
			// Evaluation error: insufficient cards of the right kind for
			// the usage spec (spec §7) - disqualified for this portion,
			// not fatal.
			allRanked = append(allRanked, hr)
			continue
		}
		hr.Cards = bestCards
		hr.UsedHoleCards = bestCards
		hr.Rank = best.CategoryRank
		hr.OrderedRank = best.OrderedRank
		name, desc := evalapi.Describe(evalapi.Type(entry.EvaluationType), best)
		hr.HandName = name
		hr.HandDescription = desc

		qualifies := true
		if entry.Qualifier != nil {
			q := evalapi.Qualifier{MaxCategoryRank: entry.Qualifier.MaxCategoryRank, MaxOrderedRank: entry.Qualifier.MaxOrderedRank}
			qualifies = q.Qualifies(best)
		}
		hr.Qualified = qualifies
		allRanked = append(allRanked, hr)
		if qualifies {
			qualifying = append(qualifying, candidate{playerID: pid, rank: best, cards: bestCards})
		}
	}

	pr := result.PotResult{
		Amount:          amount,
		HandType:        entry.Name,
		EligiblePlayers: append([]string{}, pot.Eligible...),
		BestHands:       allRanked,
	}
	if pot.CappedFor != "" {
		pr.PotType = "side"
	} else {
		pr.PotType = "main"
	}

	if len(qualifying) == 0 {
		return applyDefaultAction(in, pot, entry, pr, amount)
	}

	winners := bestAmong(qualifying)
	pr.Winners = playerIDs(winners)
	pr.Split = len(winners) > 1
	distributeOddChips(in.Table, &pr, amount, pr.Winners)
	return pr, nil
}

// bestSelection enumerates every legal card combination under entry's
// usage spec and returns the best-ranked one.
func bestSelection(hole, community []card.Card, entry rules.BestHandSpec, evaluator evalapi.Evaluator) (evalapi.HandRank, []card.Card, bool) {
	combos := legalCombinations(hole, community, entry.CardsRequired)
	if len(combos) == 0 {
		return evalapi.HandRank{}, nil, false
	}
	var best evalapi.HandRank
	var bestCards []card.Card
	found := false
	for _, combo := range combos {
		r, err := evaluator.Evaluate(combo)
		if err != nil {
			continue
		}
		if !found || evalapi.Better(r, best) {
			best = r
			bestCards = combo
			found = true
		}
	}
	return best, bestCards, found
}

// legalCombinations expands entry.CardsRequired into concrete card
// slices to evaluate (spec §4.8 step 2a).
func legalCombinations(hole, community []card.Card, usage rules.CardUsage) [][]card.Card {
	var out [][]card.Card
	switch usage.Kind {
	case "holeCards":
		for _, n := range usage.Counts {
			for _, combo := range choose(hole, n) {
				out = append(out, combo)
			}
		}
	case "communityCards":
		for _, n := range usage.Counts {
			for _, combo := range choose(community, n) {
				out = append(out, combo)
			}
		}
	case "anyCards":
		all := append(append([]card.Card{}, hole...), community...)
		for _, n := range usage.Counts {
			for _, combo := range choose(all, n) {
				out = append(out, combo)
			}
		}
	}
	return out
}

// choose enumerates every n-card combination of cards, preserving
// relative order (canonical evaluators don't care about input order,
// but deterministic enumeration keeps tests reproducible).
func choose(cards []card.Card, n int) [][]card.Card {
	if n < 0 || n > len(cards) {
		return nil
	}
	if n == 0 {
		return [][]card.Card{{}}
	}
	var out [][]card.Card
	var rec func(start int, acc []card.Card)
	rec = func(start int, acc []card.Card) {
		if len(acc) == n {
			combo := make([]card.Card, n)
			copy(combo, acc)
			out = append(out, combo)
			return
		}
		for i := start; i < len(cards); i++ {
			rec(i+1, append(acc, cards[i]))
		}
	}
	rec(0, nil)
	return out
}

// bestAmong returns every candidate tied for best (spec §4.8 step 2c).
func bestAmong(cands []candidate) []candidate {
	best := cands[0]
	winners := []candidate{best}
	for _, c := range cands[1:] {
		cmp := evalapi.Compare(c.rank, best.rank)
		if cmp < 0 {
			best = c
			winners = []candidate{c}
		} else if cmp == 0 {
			winners = append(winners, c)
		}
	}
	return winners
}

func playerIDs(cands []candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.playerID
	}
	return out
}

func winningHandResults(pr result.PotResult) []result.HandResult {
	winners := make(map[string]bool, len(pr.Winners))
	for _, w := range pr.Winners {
		winners[w] = true
	}
	var out []result.HandResult
	for _, hr := range pr.BestHands {
		if winners[hr.PlayerID] {
			out = append(out, hr)
		}
	}
	return out
}

// applyDefaultAction implements spec §4.8 step 2d: no one qualified, so
// fall back to globalDefaultAction or the entry's own defaultAction.
func applyDefaultAction(in Input, pot betting.Pot, entry rules.BestHandSpec, pr result.PotResult, amount int) (result.PotResult, error) {
	action := entry.DefaultAction
	if action == "" {
		action = in.Showdown.GlobalDefaultAction
	}
	switch action {
	case "split_pot", "":
		pr.Winners = append([]string{}, pot.Eligible...)
		pr.Split = len(pr.Winners) > 1
		pr.Reason = "Split (No Qualifier)"
		pr.HandType = "Split (No Qualifier)"
		distributeOddChips(in.Table, &pr, amount, pr.Winners)
		return pr, nil
	default:
		// "award_best_alternate" / "roll_to:<name>" style actions are
		// variant-specific; callers that configure them are expected to
		// name an alternate evaluation type via entry.DefaultAction in a
		// future revision. Until then, fall back to an equal split so the
		// pot is never silently lost (spec §8 invariant 2: pot accounting).
		pr.Winners = append([]string{}, pot.Eligible...)
		pr.Split = len(pr.Winners) > 1
		pr.Reason = fmt.Sprintf("fallback action %q applied as equal split", action)
		distributeOddChips(in.Table, &pr, amount, pr.Winners)
		return pr, nil
	}
}

// distributeOddChips is a thin wrapper kept at the call sites that
// previously computed per-winner shares inline; the actual algorithm
// lives in Shares so the engine can reuse it when crediting stacks.
func distributeOddChips(t *table.Table, pr *result.PotResult, amount int, winners []string) {
	_ = Shares(t, amount, winners) // validated here; the engine calls Shares again when paying stacks
}

// Shares splits amount evenly among winners and assigns the indivisible
// remainder one chip at a time starting from the winner closest to the
// left of the button (spec §4.8 step 3). Deterministic from (table
// button position, amount, winner set) so the engine can call this
// again at payout time without PotResult needing to carry per-winner
// amounts itself.
func Shares(t *table.Table, amount int, winners []string) map[string]int {
	shares := make(map[string]int, len(winners))
	if len(winners) == 0 {
		return shares
	}
	share := amount / len(winners)
	remainder := amount % len(winners)

	ordered := append([]string{}, winners...)
	if t != nil {
		n := len(t.SeatOrder())
		leftOfButton := func(id string) int {
			if d := t.SeatDistanceFromButton(id); d != 0 {
				return d
			}
			return n // the button seat is the last one reached going left
		}
		sort.SliceStable(ordered, func(i, j int) bool {
			return leftOfButton(ordered[i]) < leftOfButton(ordered[j])
		})
	}

	for _, w := range ordered {
		shares[w] = share
	}
	for i := 0; i < remainder; i++ {
		shares[ordered[i%len(ordered)]] += 1
	}
	return shares
}
