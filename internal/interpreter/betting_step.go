// Grounded on the teacher's internal/game betting.go for the "resolve
// the current street's bet unit, then hand control to a Round" shape,
// generalized from a fixed small/big-bet-by-street Hold'em ladder to
// the data-driven BetStep.BetSize lookup spec §6 describes.
package interpreter

import (
	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

// bettingStructure picks the Structure a hand runs under. A variant can
// list more than one allowed structure (spec §3); absent a richer
// stakes-selection surface, the first declared structure governs the
// whole hand, which is the common single-structure case across the
// corpus.
func (g *Game) bettingStructure() betting.Structure {
	for _, s := range g.Rules.BettingStructures {
		switch s {
		case "Limit":
			return betting.Limit
		case "No Limit":
			return betting.NoLimit
		case "Pot Limit":
			return betting.PotLimit
		}
	}
	return betting.NoLimit
}

// betUnit resolves a BetStep's named size to a chip amount. "small"
// is the big blind (the first Limit bet increment); "big" is double
// that (the standard post-flop Limit increment convention); any other
// name also resolves to the big blind, whether or not Rules.NamedBets
// declares it (NamedBet carries no amount).
func (g *Game) betUnit(size string) int {
	switch size {
	case "small", "":
		return g.forced.BigBlind
	case "big":
		if g.forced.BigBlind > 0 {
			return g.forced.BigBlind * 2
		}
		return g.forced.Ante * 2
	default:
		if _, ok := g.Rules.NamedBets[size]; ok {
			return g.forced.BigBlind
		}
		return g.forced.BigBlind
	}
}

// startBettingRound begins a new round: resolves the bet unit, seeds
// CurrentBet from whatever forced bets already stand (pre-flop blinds),
// sets the BB-option carve-out on the first round, and picks the first
// actor (spec §4.4).
func (g *Game) startBettingRound(step *rules.Step) {
	g.roundNumber++
	unit := g.betUnit("")
	if step.Bet != nil {
		unit = g.betUnit(step.Bet.BetSize)
	}
	r := betting.NewRound(g.bettingStructure(), unit, g.maxRaisesPerRound)

	currentBet := 0
	for _, p := range g.Table.ActivePlayers() {
		if p.CurrentBet > currentBet {
			currentBet = p.CurrentBet
		}
	}
	r.CurrentBet = currentBet

	if g.roundNumber == 1 && g.Rules.ForcedBets.Style == "blinds" {
		for _, p := range g.Table.ActivePlayers() {
			if p.HasPosition(table.BigBlind) {
				r.SetBBOption(p.ID)
			}
		}
	}

	g.round = r
	g.actOrder = g.firstToActOrder()
	g.actIdx = 0
	g.skipInactiveActors()
}

// firstToActOrder computes the seating order to walk for this round,
// rotated so the configured first actor leads, per spec §4.4's
// initial/subsequent bettingOrder resolution (and bring-in selection on
// round 1 of a bring-in variant).
func (g *Game) firstToActOrder() []string {
	order := g.Table.OrderedPlayers()
	ids := make([]string, 0, len(order))
	for _, p := range order {
		if !p.Folded {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var first string
	if g.Rules.ForcedBets.Style == "bring-in" {
		first = g.bringInFirstActor()
	} else {
		spec := g.Rules.BettingOrder.Initial
		if g.roundNumber > 1 {
			spec = g.Rules.BettingOrder.Subsequent
		}
		first = g.resolveOrderTag(spec.Resolve(g.activeConditions), ids)
	}
	if first == "" {
		first = ids[0]
	}

	idx := 0
	for i, id := range ids {
		if id == first {
			idx = i
			break
		}
	}
	out := make([]string, 0, len(ids))
	for i := 0; i < len(ids); i++ {
		out = append(out, ids[(idx+i)%len(ids)])
	}
	return out
}

// resolveOrderTag maps a bettingOrder selector tag to a concrete player
// id. "after_big_blind", "after_button" and "dealer" (the button seat)
// are recognized tags; anything else is treated as a literal player id
// (used by tests driving the interpreter directly).
func (g *Game) resolveOrderTag(tag string, ids []string) string {
	switch tag {
	case "after_big_blind":
		for _, p := range g.Table.OrderedPlayers() {
			if p.HasPosition(table.BigBlind) {
				return g.nextActive(p.ID, ids)
			}
		}
	case "after_button":
		for _, p := range g.Table.OrderedPlayers() {
			if p.HasPosition(table.SmallBlind) {
				return p.ID
			}
		}
		for _, p := range g.Table.OrderedPlayers() {
			if p.HasPosition(table.Button) {
				return g.nextActive(p.ID, ids)
			}
		}
	case "dealer":
		for _, p := range g.Table.OrderedPlayers() {
			if p.HasPosition(table.Button) {
				return p.ID
			}
		}
	}
	for _, id := range ids {
		if id == tag {
			return tag
		}
	}
	return ""
}

// nextActive returns the first still-active player seated clockwise
// after fromID.
func (g *Game) nextActive(fromID string, ids []string) string {
	all := g.Table.OrderedPlayers()
	startIdx := -1
	for i, p := range all {
		if p.ID == fromID {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return ""
	}
	for i := 1; i <= len(all); i++ {
		p := all[(startIdx+i)%len(all)]
		for _, id := range ids {
			if id == p.ID {
				return p.ID
			}
		}
	}
	return ""
}

// bringInFirstActor resolves spec §4.5's bring-in/best-showing-hand
// first actor using every active player's currently face-up cards.
func (g *Game) bringInFirstActor() string {
	var showings []betting.Showing
	for _, p := range g.Table.ActivePlayers() {
		showings = append(showings, betting.Showing{PlayerID: p.ID, Cards: p.Hand.FaceUpCards()})
	}
	id, err := betting.SelectFirstToAct(g.Table, g.bringInRule, g.roundNumber, showings)
	if err != nil {
		return ""
	}
	return id
}

// skipInactiveActors advances actIdx (wrapping around actOrder) past
// any folded/all-in seat so currentActor always names someone who can
// actually act. Bounded to one full orbit so a table with no live
// actors left doesn't spin forever; bettingRoundComplete is expected to
// catch that case first.
func (g *Game) skipInactiveActors() {
	n := len(g.actOrder)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		p, ok := g.Table.Player(g.actOrder[g.actIdx%n])
		if ok && !p.Folded && !p.AllIn {
			return
		}
		g.actIdx++
	}
}

// PlayerAction applies one betting or generic-step action from
// playerID (spec §4.6/§6 player_action). It validates turn order,
// mutates table/round state, and advances the step machine whenever the
// current step (round or pending generic step) completes.
func (g *Game) PlayerAction(playerID string, action betting.ActionKind, amount int) error {
	switch g.phase {
	case PhaseBetting:
		return g.applyBettingAction(playerID, action, amount)
	case PhaseDealing:
		if g.pending != nil {
			return g.applyPendingAction(playerID, action, amount)
		}
	}
	return ErrNotExpectingThat
}

func (g *Game) applyBettingAction(playerID string, action betting.ActionKind, amount int) error {
	if g.round == nil || g.currentActor() != playerID {
		return betting.ErrNotPlayersTurn
	}
	p, ok := g.Table.Player(playerID)
	if !ok {
		return betting.ErrUnknownPlayer
	}
	valid := g.round.ValidActions(p)
	var matched *betting.ValidAction
	for i := range valid {
		if valid[i].Action == action {
			matched = &valid[i]
			break
		}
	}
	if matched == nil {
		return betting.ErrActionNotLegal
	}

	switch action {
	case betting.Fold:
		p.Folded = true
		g.round.MarkActed(playerID)
	case betting.Check:
		g.round.MarkActed(playerID)
	case betting.Call:
		g.postChip(p, matched.Min)
		g.round.MarkActed(playerID)
	case betting.AllIn:
		owed := matched.Min
		g.postChip(p, owed)
		reopens := p.CurrentBet > g.round.CurrentBet
		raiseSize := p.CurrentBet - g.round.CurrentBet
		newCurrent := p.CurrentBet
		if newCurrent < g.round.CurrentBet {
			newCurrent = g.round.CurrentBet
		}
		g.round.ApplyRaise(playerID, newCurrent, raiseSize, reopens && raiseSize >= g.round.LastRaiseSize)
	case betting.Bet, betting.Raise:
		if amount < matched.Min || amount > matched.Max {
			return betting.ErrAmountOutOfRange
		}
		owed := amount - p.CurrentBet
		g.postChip(p, owed)
		raiseSize := amount - g.round.CurrentBet
		g.round.ApplyRaise(playerID, amount, raiseSize, true)
	default:
		return betting.ErrActionNotLegal
	}

	return g.afterBettingAction()
}

// postChip moves amt chips from p's stack into its current/total bet
// tracking, marking all-in if the stack is now exhausted - mirrors
// betting.postBet, duplicated here since that helper is unexported.
func (g *Game) postChip(p *table.Player, amt int) {
	if amt > p.Stack {
		amt = p.Stack
	}
	p.Stack -= amt
	p.CurrentBet += amt
	p.TotalBet += amt
	if p.Stack == 0 {
		p.AllIn = true
	}
}

// afterBettingAction advances to the next actor, or - if the round is
// now complete - clears all players' CurrentBet and drives the step
// machine forward to whatever comes next.
func (g *Game) afterBettingAction() error {
	g.actIdx++
	g.skipInactiveActors()

	if g.bettingRoundComplete() {
		for _, p := range g.Table.ActivePlayers() {
			p.CurrentBet = 0
		}
		g.round = nil
		g.advanceStepCursor()
		return g.advance()
	}
	return nil
}

// bettingRoundComplete reports whether every non-folded, non-all-in
// player has matched the current bet and acted (spec §8 property 7),
// including the case where action has wrapped back around to no one
// left to act.
func (g *Game) bettingRoundComplete() bool {
	if g.round == nil {
		return true
	}
	if g.noLiveActors() {
		return true
	}
	return g.round.IsComplete(g.Table.ActivePlayers())
}

// noLiveActors reports whether every seat in actOrder is folded or
// all-in, meaning there is no one left who could take a betting action.
func (g *Game) noLiveActors() bool {
	for _, id := range g.actOrder {
		p, ok := g.Table.Player(id)
		if ok && !p.Folded && !p.AllIn {
			return false
		}
	}
	return true
}
