// Package deck builds and deals from the card decks spec §3/§4.1 define:
// four rank-set variants plus a configurable joker count. Dealing removes
// from the end of the sequence, matching spec §3's "top of deck" rule.
//
// Grounded on the teacher's internal/deck/deck.go shuffle/deal loop, with
// the RNG made an injected interface (spec §5: "the random source...
// which is injectable") instead of a package-owned time-seeded one.
package deck

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// Variant identifies a deck's rank-set and size.
type Variant int

const (
	Standard52 Variant = iota
	Short20 // A, K, Q, J, T only - four suits
	Short36 // 6 through Ace
	Short40 // 5 through Ace
	Die     // 1-6 faces with no suit semantics
)

func (v Variant) String() string {
	switch v {
	case Standard52:
		return "52-card"
	case Short20:
		return "20-card"
	case Short36:
		return "36-card"
	case Short40:
		return "40-card"
	case Die:
		return "die"
	default:
		return "unknown"
	}
}

// ranksFor returns the ordered rank set (low to high) a variant deals,
// excluding Joker.
func ranksFor(v Variant) ([]card.Rank, error) {
	switch v {
	case Standard52:
		return []card.Rank{
			card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
			card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace,
		}, nil
	case Short20:
		return []card.Rank{card.Ten, card.Jack, card.Queen, card.King, card.Ace}, nil
	case Short36:
		return []card.Rank{
			card.Six, card.Seven, card.Eight, card.Nine, card.Ten,
			card.Jack, card.Queen, card.King, card.Ace,
		}, nil
	case Short40:
		return []card.Rank{
			card.Five, card.Six, card.Seven, card.Eight, card.Nine, card.Ten,
			card.Jack, card.Queen, card.King, card.Ace,
		}, nil
	case Die:
		return []card.Rank{card.One, card.Two, card.Three, card.Four, card.Five, card.Six}, nil
	default:
		return nil, fmt.Errorf("deck: unknown variant %d", v)
	}
}

var allSuits = []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}

// Rand is the minimal random source the deck needs; *rand.Rand satisfies
// it. Injecting it keeps shuffling strength out of scope (spec §1
// Non-goals) while making shuffles reproducible for tests.
type Rand interface {
	Intn(n int) int
}

// Deck is an ordered sequence of cards. The "top" is the end of the
// slice; Deal pops from there.
type Deck struct {
	variant Variant
	cards   []card.Card
}

// New builds a fresh, unshuffled deck of the given variant with jokers
// jokerCount natural jokers appended. Suit-aware evaluation must never be
// invoked against a Die deck (spec §9 open questions); callers are
// responsible for routing die-deck hands to pip evaluators only.
func New(v Variant, jokerCount int) (*Deck, error) {
	ranks, err := ranksFor(v)
	if err != nil {
		return nil, err
	}

	var cards []card.Card
	if v == Die {
		for _, r := range ranks {
			cards = append(cards, card.New(r, card.JokerSuit))
		}
	} else {
		for _, s := range allSuits {
			for _, r := range ranks {
				cards = append(cards, card.New(r, s))
			}
		}
	}
	for i := 0; i < jokerCount; i++ {
		cards = append(cards, card.NewJoker())
	}

	return &Deck{variant: v, cards: cards}, nil
}

// Variant reports which deck variant this is.
func (d *Deck) Variant() Variant { return d.variant }

// Len returns the number of cards remaining.
func (d *Deck) Len() int { return len(d.cards) }

// Shuffle performs an in-place Fisher-Yates shuffle using rng.
func (d *Deck) Shuffle(rng Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top (last) card of the deck, face-down.
// Overdrawing is a fatal configuration/invariant error per spec §4.1 and
// §7 ("Deck exhaustion"); the caller should treat a non-nil error here as
// unrecoverable for the hand.
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, fmt.Errorf("deck: exhausted, cannot deal")
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// DealN deals n cards in dealing order (first dealt is cards[0]).
func (d *Deck) DealN(n int) ([]card.Card, error) {
	out := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Deal()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Cards returns a snapshot of the cards currently remaining in the deck,
// in dealing order (last element deals next). Used for non-destructive
// card-conservation inspection (spec §8 invariant 8).
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// AllCards returns the full ordered card set a fresh deck of this variant
// and joker count contains, used by card-conservation checks (spec §8
// invariant 8: deck + community + hands + discard == the variant's full
// set at all times).
func AllCards(v Variant, jokerCount int) ([]card.Card, error) {
	d, err := New(v, jokerCount)
	if err != nil {
		return nil, err
	}
	return d.cards, nil
}
