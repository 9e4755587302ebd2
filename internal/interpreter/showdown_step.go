// Grounded on the teacher's internal/game showdown.go DetermineWinners
// call site in engine.go (collect final hands, invoke the resolver, pay
// winners), generalized to build the variant-driven showdown.Input spec
// §4.8 describes instead of a single fixed Hold'em hand shape.
package interpreter

import (
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/result"
	"github.com/lox/pokerengine/internal/showdown"
)

// runShowdown builds a showdown.Input from current table state and
// resolves it, then credits every winner's stack from the returned
// pots (spec §4.8 step 3/4: showdown.Resolve only computes the award
// shape, it never mutates chips itself).
func (g *Game) runShowdown() (*result.GameResult, error) {
	in := showdown.Input{
		Pots:             g.currentPots(),
		Community:        g.communityBySubset(),
		Players:          g.showdownPlayers(),
		Showdown:         g.Rules.Showdown,
		ActiveConditions: g.activeConditions,
		Table:            g.Table,
	}
	gr, err := showdown.Resolve(in)
	if err != nil {
		return nil, err
	}
	g.payOutPots(&gr)
	return &gr, nil
}

func (g *Game) communityBySubset() map[string][]card.Card {
	out := make(map[string][]card.Card, len(g.communitySubsets)+1)
	out[""] = g.Table.Community.Subset("default")
	for name := range g.communitySubsets {
		out[name] = g.Table.Community.Subset(name)
	}
	return out
}

// showdownPlayers builds every non-folded player's PlayerCards,
// translating the raw "high"/"low"/"both" declare-step claim (if any)
// into a per-bestHand-entry-name declaration map keyed against
// Rules.Showdown.BestHand's actual entry names.
func (g *Game) showdownPlayers() map[string]showdown.PlayerCards {
	out := make(map[string]showdown.PlayerCards)
	names := g.Rules.Showdown.BestHand
	for _, p := range g.Table.ActivePlayers() {
		if p.Folded {
			continue
		}
		pc := showdown.PlayerCards{
			PlayerID: p.ID,
			Hole:     p.Hand.Cards(),
			HoleSub:  make(map[string][]card.Card),
		}
		for _, subset := range p.Hand.SubsetNames() {
			pc.HoleSub[subset] = p.Hand.Subset(subset)
		}
		if claim, ok := g.declarations[p.ID]; ok && len(names) > 0 {
			pc.Declared = make(map[string]string)
			switch claim {
			case "high":
				pc.Declared[names[0].Name] = "high"
			case "low":
				if len(names) > 1 {
					pc.Declared[names[1].Name] = "low"
				}
			case "both":
				pc.Declared[names[0].Name] = "both"
				if len(names) > 1 {
					pc.Declared[names[1].Name] = "both"
				}
			}
		}
		out[p.ID] = pc
	}
	return out
}

// payOutPots credits every pot's winners with their share (spec §4.8
// step 3's odd-chip rule, via showdown.Shares so the same seat-distance
// tie-break the resolver already validated governs the real payout).
func (g *Game) payOutPots(gr *result.GameResult) {
	for _, pr := range gr.Pots {
		shares := showdown.Shares(g.Table, pr.Amount, pr.Winners)
		for pid, amt := range shares {
			if p, ok := g.Table.Player(pid); ok {
				p.Stack += amt
			}
		}
	}
}

// GetHandResult returns the completed hand's result, or nil if the hand
// isn't finished yet (spec §6 get_hand_results).
func (g *Game) GetHandResult() *result.GameResult {
	if g.phase != PhaseComplete {
		return nil
	}
	return g.handResult
}
