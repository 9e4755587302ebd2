// Grounded on the teacher's internal/game cards.go DealHoleCards/
// DealCommunityCards, generalized from two fixed hole cards and a fixed
// five-card board to the arbitrary per-step card-count/face-state/
// named-subset descriptors spec §6's deal step carries.
package interpreter

import (
	"fmt"

	"github.com/lox/pokerengine/internal/rules"
)

// runDeal executes one Deal step: for a player-targeted step, every
// active player (in seat order) receives each descriptor's cards in
// turn (round-by-round dealing, matching how a real dealer works rather
// than handing one player their whole batch before moving on); for a
// community-targeted step, the cards go straight onto the table's named
// community subset.
func (g *Game) runDeal(d *rules.DealStep) error {
	if d == nil {
		return nil
	}
	switch d.Target {
	case "player":
		for _, desc := range d.Cards {
			for i := 0; i < desc.Number; i++ {
				for _, p := range g.Table.ActivePlayers() {
					if p.Folded {
						continue
					}
					c, err := g.Table.Deck.Deal()
					if err != nil {
						return fmt.Errorf("interpreter: dealing to %s: %w", p.ID, err)
					}
					if desc.FaceUp {
						c = c.FaceUp()
					}
					p.Hand.Add(c, desc.Subset)
				}
			}
		}
	case "community":
		for _, desc := range d.Cards {
			subset := desc.Subset
			if subset == "" {
				subset = "default"
			}
			g.communitySubsets[subset] = true
			cards, err := g.Table.Deck.DealN(desc.Number)
			if err != nil {
				return fmt.Errorf("interpreter: dealing community: %w", err)
			}
			for _, c := range cards {
				if desc.FaceUp {
					c = c.FaceUp()
				}
				g.Table.Community.Add(c, subset)
			}
		}
	}
	return nil
}

// runReplaceCommunity burns the named subset's existing cards to the
// discard pile and deals Number fresh replacements onto it (spec §6:
// "replace_community").
func (g *Game) runReplaceCommunity(s *rules.ReplaceCommunityStep) {
	if s == nil {
		return
	}
	subset := s.Subset
	if subset == "" {
		subset = "default"
	}
	existing := g.Table.Community.Subset(subset)
	g.Table.Discard = append(g.Table.Discard, existing...)
	g.Table.Community.Remove(existing...)

	cards, err := g.Table.Deck.DealN(s.Number)
	if err != nil {
		return
	}
	for _, c := range cards {
		g.Table.Community.Add(c.FaceUp(), subset)
	}
}

// runRemove burns Number cards from the named subset to the discard
// pile without replacement (spec §6: "remove" - e.g. a kill card).
func (g *Game) runRemove(s *rules.RemoveStep) {
	if s == nil {
		return
	}
	subset := s.Subset
	if subset == "" {
		subset = "default"
	}
	all := g.Table.Community.Subset(subset)
	n := s.Number
	if n > len(all) {
		n = len(all)
	}
	victims := all[:n]
	g.Table.Discard = append(g.Table.Discard, victims...)
	g.Table.Community.Remove(victims...)
}
