package betting

import "github.com/lox/pokerengine/internal/table"

// Round tracks betting-round state: the current bet to match, the size
// of the last raise (to compute the next minimum raise), who has acted,
// and - for Limit structures - how many raises have occurred against the
// configured cap (spec §9 open question: default 3 raises after the
// opening bet, exposed as a structure option rather than a constant).
type Round struct {
	Structure     Structure
	Unit          int // the configured small/big bet for Limit; the big blind for NoLimit/PotLimit min-raise floor
	CurrentBet    int
	LastRaiseSize int
	MaxRaises     int // 0 means uncapped; only meaningful for Limit
	raisesSoFar   int
	lastRaiserID  string
	acted         map[string]bool
	bbOptionID    string // seat that still gets a preflop-style BB option even if bets already match
	bbOptionUsed  bool
}

// NewRound starts a fresh betting round. unit is the bet size for Limit
// structures, or the minimum-raise floor (typically the big blind) for
// NoLimit/PotLimit.
func NewRound(structure Structure, unit int, maxRaises int) *Round {
	return &Round{
		Structure:     structure,
		Unit:          unit,
		LastRaiseSize: unit,
		MaxRaises:     maxRaises,
		acted:         make(map[string]bool),
	}
}

// SetBBOption marks a seat (e.g. the big blind preflop) that must still
// get a chance to act even though every bet already matches, per spec
// §4.4's heads-up/blind carve-out - generalized here to any seat the
// forced-bet configuration designates, not hardcoded to Hold'em's BB.
func (r *Round) SetBBOption(playerID string) {
	r.bbOptionID = playerID
}

// MarkActed records that playerID has acted this round.
func (r *Round) MarkActed(playerID string) {
	r.acted[playerID] = true
	if playerID == r.bbOptionID {
		r.bbOptionUsed = true
	}
}

// HasActed reports whether playerID has acted this round.
func (r *Round) HasActed(playerID string) bool { return r.acted[playerID] }

// ValidActions computes the legal action set for p under this round's
// structure (spec §4.6).
func (r *Round) ValidActions(p *table.Player) []ValidAction {
	if p.Folded || p.AllIn {
		return nil
	}
	var out []ValidAction
	out = append(out, ValidAction{Action: Fold, Min: 0, Max: 0})

	owed := contributionToCall(p, r.CurrentBet)
	if owed == 0 {
		out = append(out, ValidAction{Action: Check, Min: 0, Max: 0})
	} else {
		callMax := owed
		if callMax > p.Stack {
			callMax = p.Stack
		}
		out = append(out, ValidAction{Action: Call, Min: callMax, Max: callMax})
	}

	if p.Stack <= owed {
		// Nothing left after calling (or can't even call): only an
		// all-in for whatever remains is possible, which folds into
		// Call's Max above when owed >= stack. Still expose AllIn
		// explicitly for stacks that can't reach owed at all.
		if p.Stack > 0 {
			out = append(out, ValidAction{Action: AllIn, Min: p.Stack, Max: p.Stack})
		}
		return out
	}

	minRaiseTo, maxRaiseTo, ok := r.raiseBounds(p, owed)
	if ok {
		kind := Bet
		if r.CurrentBet > 0 {
			kind = Raise
		}
		out = append(out, ValidAction{Action: kind, Min: minRaiseTo, Max: maxRaiseTo})
	}
	if p.Stack > owed {
		out = append(out, ValidAction{Action: AllIn, Min: p.Stack, Max: p.Stack})
	}
	return out
}

// raiseBounds returns the additional-chips (beyond the current
// contribution) min/max a bet or raise may take, per spec §4.6's three
// structures. owed is what the player must add to call.
func (r *Round) raiseBounds(p *table.Player, owed int) (min, max int, ok bool) {
	if r.limitCapReached() {
		return 0, 0, false
	}
	switch r.Structure {
	case Limit:
		amt := r.Unit
		if owed+amt > p.Stack {
			return 0, 0, false
		}
		return owed + amt, owed + amt, true
	case NoLimit:
		minAmt := r.LastRaiseSize
		if minAmt < r.Unit {
			minAmt = r.Unit
		}
		minTotal := owed + minAmt
		if minTotal > p.Stack {
			return 0, 0, false
		}
		return minTotal, p.Stack, true
	case PotLimit:
		minAmt := r.LastRaiseSize
		if minAmt < r.Unit {
			minAmt = r.Unit
		}
		minTotal := owed + minAmt
		if minTotal > p.Stack {
			return 0, 0, false
		}
		return minTotal, p.Stack, true // max is the whole stack: the pot-size cap (PotLimitMax) is not applied
	default:
		return 0, 0, false
	}
}

// PotLimitMax computes the true pot-limit maximum raise-to amount given
// the current pot size (including all bets not yet collected) - spec
// §4.6: "max = size of pot as it would stand after the caller has
// matched the current bet."
func PotLimitMax(p *table.Player, owed, potBeforeCall int) int {
	afterCall := potBeforeCall + owed
	max := owed + afterCall
	if max > p.Stack {
		max = p.Stack
	}
	return max
}

func (r *Round) limitCapReached() bool {
	return r.Structure == Limit && r.MaxRaises > 0 && r.raisesSoFar >= r.MaxRaises
}

// ApplyRaise records that playerID raised by raiseSize beyond the prior
// current bet, updating CurrentBet/LastRaiseSize/raise-cap bookkeeping
// and resetting every other active player's acted flag so they get a
// chance to respond - this is the "reopen the action" rule.
func (r *Round) ApplyRaise(playerID string, newCurrentBet, raiseSize int, reopensAction bool) {
	r.CurrentBet = newCurrentBet
	if reopensAction {
		r.LastRaiseSize = raiseSize
		r.raisesSoFar++
		r.lastRaiserID = playerID
		for id := range r.acted {
			r.acted[id] = false
		}
	}
	r.acted[playerID] = true
}

// IsComplete reports whether at most one non-folded player remains, or
// every non-folded, non-all-in player has acted and matches CurrentBet,
// honoring the BB-style option carve-out (spec §8 property 7: round
// closure invariant).
func (r *Round) IsComplete(players []*table.Player) bool {
	live, inHand := 0, 0
	for _, p := range players {
		if !p.Folded {
			inHand++
			if !p.AllIn {
				live++
			}
		}
	}
	if live == 0 || inHand <= 1 {
		return true
	}
	for _, p := range players {
		if p.Folded || p.AllIn {
			continue
		}
		if p.CurrentBet != r.CurrentBet {
			return false
		}
		if !r.acted[p.ID] {
			return false
		}
	}
	if r.bbOptionID != "" && !r.bbOptionUsed && r.lastRaiserID == "" {
		return false
	}
	return true
}
