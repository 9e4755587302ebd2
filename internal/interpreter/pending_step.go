// Grounded in shape on the teacher's internal/game betting.go round-
// collection loop (AdvanceAction/IsBettingRoundComplete), reused here for
// every non-bet interactive step (draw/discard/expose/pass/separate/
// declare/choose) spec §6 lists alongside betting actions: one response
// collected per active player, in seat order, before the step completes.
package interpreter

import (
	"fmt"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

func pendingActionKind(k rules.StepKind) betting.ActionKind {
	switch k {
	case rules.StepDraw:
		return betting.Draw
	case rules.StepDiscard:
		return betting.Discard
	case rules.StepExpose:
		return betting.Expose
	case rules.StepPass:
		return betting.Pass
	case rules.StepSeparate:
		return betting.Separate
	case rules.StepDeclare:
		return betting.Declare
	case rules.StepChoose:
		return betting.Choose
	}
	return -1
}

// startPending begins collecting one response per active, non-folded
// player for a non-bet interactive step.
func (g *Game) startPending(step *rules.Step) {
	var order []string
	for _, p := range g.Table.ActivePlayers() {
		if !p.Folded {
			order = append(order, p.ID)
		}
	}
	g.pending = &pendingStep{kind: step.Kind, step: step, order: order, declared: make(map[string]string)}
}

// applyPendingAction handles Draw/Discard/Expose - a bounded card
// selection from the player's own hand - by count only (amount is the
// number of cards the player chooses to act on; this engine always acts
// on the player's lowest-indexed eligible cards, since get_valid_actions
// only exposes a count range per spec §6 and the concrete card identities
// are a client/UI concern layered on top of this surface).
func (g *Game) applyPendingAction(playerID string, action betting.ActionKind, amount int) error {
	if g.pending == nil || g.currentPendingActor() != playerID {
		return betting.ErrNotPlayersTurn
	}
	if pendingActionKind(g.pending.kind) != action {
		return betting.ErrActionNotLegal
	}

	p, ok := g.Table.Player(playerID)
	if !ok {
		return betting.ErrUnknownPlayer
	}

	switch g.pending.kind {
	case rules.StepDiscard, rules.StepDraw:
		d := g.pending.step.Discard
		if g.pending.kind == rules.StepDraw {
			d = g.pending.step.Draw
		}
		n := amount
		if d != nil {
			if n < d.Min {
				n = d.Min
			}
			if n > d.Max {
				n = d.Max
			}
		}
		if n > p.Hand.Len() {
			n = p.Hand.Len()
		}
		discarded := p.Hand.Cards()[:n]
		g.Table.Discard = append(g.Table.Discard, discarded...)
		p.Hand.Remove(discarded...)
		replacements, err := g.Table.Deck.DealN(n)
		if err != nil {
			return fmt.Errorf("interpreter: drawing replacements: %w", err)
		}
		for _, c := range replacements {
			p.Hand.Add(c, "")
		}
	case rules.StepExpose:
		n := amount
		if n > p.Hand.Len() {
			n = p.Hand.Len()
		}
		cards := p.Hand.Cards()
		for i := 0; i < n; i++ {
			if idx := p.Hand.IndexOf(cards[i]); idx >= 0 {
				p.Hand.SetFaceUp(idx)
			}
		}
	case rules.StepPass:
		n := amount
		if n > p.Hand.Len() {
			n = p.Hand.Len()
		}
		cards := append([]card.Card{}, p.Hand.Cards()[:n]...)
		p.Hand.Remove(cards...)
		if next := g.nextActiveAfter(playerID); next != nil {
			for _, c := range cards {
				next.Hand.Add(c, "")
			}
		}
	case rules.StepSeparate:
		// amount is interpreted as "accept the default subset split":
		// the front half of the hand goes to the first named subset,
		// the remainder to the second, matching how double-board/Board-
		// selection variants in the corpus divide a dealt hand without
		// needing a richer per-card selection surface at this layer.
		names := g.pending.step.Separate.SubsetNames
		if len(names) > 0 {
			cards := p.Hand.Cards()
			half := len(cards) / len(names)
			if half == 0 {
				half = 1
			}
			for i, name := range names {
				start := i * half
				end := start + half
				if i == len(names)-1 || end > len(cards) {
					end = len(cards)
				}
				for idx := start; idx < end && idx < len(cards); idx++ {
					_ = p.Hand.AssignToSubset(idx, name)
				}
			}
		}
	case rules.StepDeclare:
		options := g.pending.step.Declare.Options
		claim := ""
		if len(options) > 0 {
			claim = options[amount%len(options)]
		}
		g.recordDeclaration(playerID, claim)
	case rules.StepChoose:
		options := g.pending.step.Choose.Options
		if len(options) > 0 {
			g.activeConditions[options[amount%len(options)]] = true
		}
	}

	g.pending.idx++
	if g.pending.idx >= len(g.pending.order) {
		g.pending = nil
		g.advanceStepCursor()
		return g.advance()
	}
	return nil
}

// recordDeclaration stores a player's raw hi/lo-style declaration claim
// for use when the showdown resolver is eventually invoked.
func (g *Game) recordDeclaration(playerID, claim string) {
	if g.declarations == nil {
		g.declarations = make(map[string]string)
	}
	g.declarations[playerID] = claim
}

func (g *Game) nextActiveAfter(playerID string) *table.Player {
	all := g.Table.OrderedPlayers()
	startIdx := -1
	for i, p := range all {
		if p.ID == playerID {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return nil
	}
	for i := 1; i <= len(all); i++ {
		cand := all[(startIdx+i)%len(all)]
		if !cand.Folded {
			return cand
		}
	}
	return nil
}
