package betting

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/evalapi"
	"github.com/lox/pokerengine/internal/table"
)

// CardRule names one of the five bring-in conventions spec §4.5
// enumerates. "al" treats Ace low; "rh" is the Razz-high tiebreak
// variant that compares the door card by one-card-high-spade.
type CardRule string

const (
	LowCard     CardRule = "low card"
	LowCardAL   CardRule = "low card al"
	LowCardALRH CardRule = "low card al rh"
	HighCard    CardRule = "high card"
	HighCardAH  CardRule = "high card ah"
)

// doorEvalType returns the one-card evaluator used to judge a single
// visible (door) card for round 1 bring-in selection.
func doorEvalType(rule CardRule) evalapi.Type {
	switch rule {
	case LowCardALRH:
		return evalapi.OneCardHighSpade
	case LowCardAL:
		return evalapi.A5Low
	}
	return evalapi.High
}

// showingEvalType returns the N-card evaluator used from round 2
// onward, where the best showing hand (not the worst door card) acts
// first.
func showingEvalType(rule CardRule) evalapi.Type {
	switch rule {
	case LowCard, LowCardAL, LowCardALRH:
		return evalapi.A5Low
	default:
		return evalapi.High
	}
}

// Showing is one player's currently face-up cards for a bring-in or
// best-showing-hand comparison.
type Showing struct {
	PlayerID string
	Cards    []card.Card
}

// SelectFirstToAct implements spec §4.5: round 1 picks the lowest door
// card (low-card rules) or the highest door card (high-card rules) under
// the rule's one-card evaluator; round ≥2 picks the player whose
// visible cards form the BEST N-card hand under the rule's N-card
// evaluator. Ties break by ordered_rank, then by seat distance from the
// button (closest wins, per original_source's clarification).
func SelectFirstToAct(t *table.Table, rule CardRule, round int, showings []Showing) (string, error) {
	if len(showings) == 0 {
		return "", fmt.Errorf("betting: no candidates for first-to-act selection")
	}

	var evalType evalapi.Type
	pickWorst := false
	if round <= 1 {
		evalType = doorEvalType(rule)
		pickWorst = rule == LowCard || rule == LowCardALRH // A5Low ranks the lowest card best
	} else {
		evalType = showingEvalType(rule)
		pickWorst = false // best showing hand always acts
	}

	evaluator, err := evalapi.Lookup(evalType)
	if err != nil {
		return "", err
	}

	type scored struct {
		playerID string
		rank     evalapi.HandRank
	}
	var ranked []scored
	for _, s := range showings {
		r, err := evaluator.Evaluate(s.Cards)
		if err != nil {
			return "", fmt.Errorf("betting: evaluating showing cards for %s: %w", s.PlayerID, err)
		}
		ranked = append(ranked, scored{playerID: s.PlayerID, rank: r})
	}

	best := ranked[0]
	var tied []scored
	tied = append(tied, best)
	for _, s := range ranked[1:] {
		cmp := evalapi.Compare(s.rank, best.rank)
		better := cmp < 0
		if pickWorst {
			better = cmp > 0
		}
		if better {
			best = s
			tied = []scored{s}
			continue
		}
		if cmp == 0 {
			tied = append(tied, s)
		}
	}

	if len(tied) == 1 {
		return tied[0].playerID, nil
	}
	winner := tied[0].playerID
	winnerDist := t.SeatDistanceFromButton(winner)
	for _, s := range tied[1:] {
		d := t.SeatDistanceFromButton(s.playerID)
		if d >= 0 && (winnerDist < 0 || d < winnerDist) {
			winner = s.playerID
			winnerDist = d
		}
	}
	return winner, nil
}
