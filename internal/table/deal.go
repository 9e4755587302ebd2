package table

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// DealToPlayer deals one card from the deck to playerID, tagging it into
// subset (ignored if empty) and setting its visibility. Spec §4.1.
func (t *Table) DealToPlayer(playerID string, faceUp bool, subset string) (card.Card, error) {
	p, ok := t.players[playerID]
	if !ok {
		return card.Card{}, fmt.Errorf("table: unknown player %q", playerID)
	}
	c, err := t.Deck.Deal()
	if err != nil {
		return card.Card{}, err
	}
	if faceUp {
		c = c.FaceUp()
	}
	p.Hand.Add(c, subset)
	return c, nil
}

// DealRoundRobin deals one card to each player id in order, in the
// sequence given, honoring faceUp for all of them - one "slot"
// of a multi-card deal step. Spec §4.1: "for each card slot iterate
// players in order, apply that slot's face-up/down".
func (t *Table) DealRoundRobin(order []string, faceUp bool, subset string) error {
	for _, id := range order {
		if _, err := t.DealToPlayer(id, faceUp, subset); err != nil {
			return err
		}
	}
	return nil
}

// DealCommunity deals n cards into the named community subset ("" means
// the implicit "default" single-board subset). Community cards are
// always dealt face-up.
func (t *Table) DealCommunity(n int, subset string) ([]card.Card, error) {
	if subset == "" {
		subset = "default"
	}
	out := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := t.Deck.Deal()
		if err != nil {
			return nil, err
		}
		c = c.FaceUp()
		t.Community.Add(c, subset)
		out = append(out, c)
	}
	return out, nil
}

// DiscardFromHand moves cards out of a player's hand into the table's discard
// pile (used by Discard/Draw steps).
func (t *Table) DiscardFromHand(playerID string, cards []card.Card) error {
	p, ok := t.players[playerID]
	if !ok {
		return fmt.Errorf("table: unknown player %q", playerID)
	}
	p.Hand.Remove(cards...)
	t.Discard = append(t.Discard, cards...)
	return nil
}

// ReplaceCommunity discards the named community subset's cards and deals
// n fresh ones in their place (used by "replace_community" steps, e.g.
// certain draw-board games).
func (t *Table) ReplaceCommunity(subset string, n int) ([]card.Card, error) {
	if subset == "" {
		subset = "default"
	}
	old := t.Community.Subset(subset)
	t.Community.Remove(old...)
	t.Discard = append(t.Discard, old...)
	return t.DealCommunity(n, subset)
}
