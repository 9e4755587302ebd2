package evalapi

import "github.com/lox/pokerengine/internal/card"

// allSubstitutions enumerates the concrete (rank, suit) replacements one
// wild card may take. Spec §9 models wildness as a small tagged enum plus
// a pre-evaluation expansion step; this is that step. All wild types
// share the same candidate domain here (every rank in deckRanks, in each
// of the four suits when suited) - a Bug is not limited to completing
// straights/flushes or playing the Ace: every substitution is tried and
// the best-of-all-substitutions search keeps the optimum. Results equal to Ace-or-
// straight/flush-completion dominate in practice because those are
// objectively the strongest substitutions for a high hand.
func allSubstitutions(deckRanks []card.Rank, suited bool) []card.Card {
	var out []card.Card
	if suited {
		suits := []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}
		for _, s := range suits {
			for _, r := range deckRanks {
				out = append(out, card.Card{Rank: r, Suit: s})
			}
		}
	} else {
		for _, r := range deckRanks {
			out = append(out, card.Card{Rank: r, Suit: card.JokerSuit})
		}
	}
	return out
}

// StandardRanks is the 2-A rank domain used for wild substitution search
// on standard/short decks.
var StandardRanks = []card.Rank{
	card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
	card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace,
}

// EvalFunc scores one concrete (fully resolved, no wild cards) card
// combination. Every concrete evaluator below conforms to this shape so
// ExpandAndEvaluate can drive the wild-card search generically.
type EvalFunc func(cards []card.Card) (HandRank, error)

// ExpandAndEvaluate resolves every wild card in cards to its best
// concrete substitution and returns the resulting HandRank, per spec
// §4.2: "the evaluator then enumerates legal concrete substitutions and
// returns the best resulting rank." Non-wild cards are never altered.
// Substitutions that would duplicate another card already present in
// cards are skipped, since the same (rank, suit) cannot exist twice in a
// single deck.
func ExpandAndEvaluate(cards []card.Card, ranks []card.Rank, suited bool, eval EvalFunc) (HandRank, error) {
	var wildIdx []int
	concrete := make([]card.Card, len(cards))
	copy(concrete, cards)
	for i, c := range cards {
		if c.IsWild {
			wildIdx = append(wildIdx, i)
		}
	}
	if len(wildIdx) == 0 {
		return eval(concrete)
	}

	candidates := allSubstitutions(ranks, suited)
	var best HandRank
	haveBest := false

	var recurse func(pos int) error
	recurse = func(pos int) error {
		if pos == len(wildIdx) {
			r, err := eval(concrete)
			if err != nil {
				return nil // invalid substitution combination, skip it
			}
			if !haveBest || Better(r, best) {
				best = r
				haveBest = true
			}
			return nil
		}
		idx := wildIdx[pos]
		pending := make(map[int]bool, len(wildIdx)-pos-1)
		for _, j := range wildIdx[pos+1:] {
			pending[j] = true
		}
		original := concrete[idx]
		for _, cand := range candidates {
			if duplicates(concrete, idx, pending, cand) {
				continue
			}
			concrete[idx] = cand
			if err := recurse(pos + 1); err != nil {
				return err
			}
		}
		concrete[idx] = original
		return nil
	}
	if err := recurse(0); err != nil {
		return HandRank{}, err
	}
	if !haveBest {
		return HandRank{}, errInvalidHand("no legal wild-card substitution produced a valid hand")
	}
	// best (including its CardsUsed) reflects the winning substitution;
	// the substituted cards do not carry IsWild.
	return best, nil
}

// duplicates reports whether cand collides with a slot that is already
// resolved to a concrete card (either never wild, or an earlier wild
// slot already substituted this recursion branch). Slots still pending
// substitution are skipped since their placeholder value isn't real yet.
func duplicates(hand []card.Card, skipIdx int, pendingWild map[int]bool, cand card.Card) bool {
	for i, c := range hand {
		if i == skipIdx || pendingWild[i] {
			continue
		}
		if c.Equal(cand) {
			return true
		}
	}
	return false
}

type handError string

func (e handError) Error() string { return string(e) }

func errInvalidHand(msg string) error { return handError(msg) }
