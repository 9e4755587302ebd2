// Package handc implements the Hand container from spec §3: an ordered
// card sequence plus named subsets (e.g. "Hand 1", "Wild") that are views
// over the primary sequence rather than separate owners, per the
// re-architecture guidance in spec §9 ("subsets on hands and boards").
//
// Grounded in shape on the teacher's internal/game player hole-card
// slices, generalized from a fixed two-card hand to arbitrary named
// subsets.
package handc

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// Hand is an ordered card sequence with named index-based subset views.
type Hand struct {
	cards   []card.Card
	subsets map[string][]int // subset name -> indices into cards
}

// New creates an empty hand.
func New() *Hand {
	return &Hand{subsets: make(map[string][]int)}
}

// Add appends c to the primary sequence and, if subset is non-empty, also
// to the named subset. Returns the new card's index.
func (h *Hand) Add(c card.Card, subset string) int {
	h.cards = append(h.cards, c)
	idx := len(h.cards) - 1
	if subset != "" {
		h.subsets[subset] = append(h.subsets[subset], idx)
	}
	return idx
}

// AssignToSubset adds an existing card (by index into the primary
// sequence) to a named subset without duplicating it in Cards(). Used by
// the interpreter's Separate step (spec §4.7/§3 gameplay) to place
// previously-dealt cards into per-player boards (e.g. Omaha hi-lo
// "Board 1"/"Board 2" style selection games).
func (h *Hand) AssignToSubset(idx int, subset string) error {
	if idx < 0 || idx >= len(h.cards) {
		return fmt.Errorf("handc: index %d out of range", idx)
	}
	h.subsets[subset] = append(h.subsets[subset], idx)
	return nil
}

// Cards returns the full primary sequence.
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the primary sequence.
func (h *Hand) Len() int { return len(h.cards) }

// Subset returns the cards referenced by a named subset, in the order
// they were added to that subset. An unknown subset name returns nil,
// not an error - callers treat an empty/absent subset as "use the whole
// hand" where the variant rules say so.
func (h *Hand) Subset(name string) []card.Card {
	idxs, ok := h.subsets[name]
	if !ok {
		return nil
	}
	out := make([]card.Card, 0, len(idxs))
	for _, i := range idxs {
		if i < len(h.cards) {
			out = append(out, h.cards[i])
		}
	}
	return out
}

// SubsetNames lists all named subsets currently defined on this hand.
func (h *Hand) SubsetNames() []string {
	names := make([]string, 0, len(h.subsets))
	for n := range h.subsets {
		names = append(names, n)
	}
	return names
}

// SetFaceUp flips every card at the given primary-sequence indices to
// face-up in place. Used by Expose/Deal(face up) steps.
func (h *Hand) SetFaceUp(idxs ...int) {
	for _, i := range idxs {
		if i >= 0 && i < len(h.cards) {
			h.cards[i] = h.cards[i].FaceUp()
		}
	}
}

// IndexOf returns the primary-sequence index of the first card equal to
// c, or -1 if c isn't present. Used by steps that select specific cards
// by identity (expose, separate) rather than by index.
func (h *Hand) IndexOf(c card.Card) int {
	for i, hc := range h.cards {
		if hc.Equal(c) {
			return i
		}
	}
	return -1
}

// FaceUpCards returns the subsequence of cards currently face-up, in
// primary order - used for door-card/bring-in and "best showing hand"
// selection (spec §4.5).
func (h *Hand) FaceUpCards() []card.Card {
	var out []card.Card
	for _, c := range h.cards {
		if c.Visibility == card.FaceUp {
			out = append(out, c)
		}
	}
	return out
}

// Remove deletes the cards equal (by identity) to any of victims from
// both the primary sequence and every subset view, keeping subset index
// lists consistent with the new primary sequence - the invariant spec §3
// requires ("subset removal must be consistent with main-sequence
// removal").
func (h *Hand) Remove(victims ...card.Card) {
	if len(victims) == 0 {
		return
	}
	remove := make(map[int]bool)
	for _, v := range victims {
		for i, c := range h.cards {
			if remove[i] {
				continue
			}
			if c.Equal(v) {
				remove[i] = true
				break
			}
		}
	}
	if len(remove) == 0 {
		return
	}

	// Build an old-index -> new-index map, skipping removed cards.
	remap := make(map[int]int, len(h.cards))
	newCards := make([]card.Card, 0, len(h.cards)-len(remove))
	for i, c := range h.cards {
		if remove[i] {
			continue
		}
		remap[i] = len(newCards)
		newCards = append(newCards, c)
	}
	h.cards = newCards

	for name, idxs := range h.subsets {
		var kept []int
		for _, i := range idxs {
			if newIdx, ok := remap[i]; ok {
				kept = append(kept, newIdx)
			}
		}
		h.subsets[name] = kept
	}
}

// Clear empties the hand and all its subsets, used by table.ResetForHand
// at the start of every new hand.
func (h *Hand) Clear() {
	h.cards = nil
	h.subsets = make(map[string][]int)
}
