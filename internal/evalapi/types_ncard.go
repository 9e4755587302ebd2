package evalapi

import "github.com/lox/pokerengine/internal/card"

// The 1-5 card "N-card high"/"N-card low" comparisons spec §4.2 calls out
// (stud bring-in, best-showing-hand selection) are not separately
// registered types: classifyGroup already handles any card count from 1
// to 7, so High and A5Low (registered in types_high.go/types_low.go)
// serve both the 5-7 card showdown case and the 1-4 card stud-street
// case. Package betting's bring-in selection (spec §4.5) calls Lookup
// with High or A5Low directly, passing however many door cards a player
// is showing.

func init() {
	// one_card_high_spade: a single-card comparator used to break ties
	// on showing-hand comparisons (the "rh" Razz-high convention spec
	// §4.5 names) where identical ranks are further ordered by suit,
	// spades highest. Encodes (rank, suit) into one tiebreak so it
	// remains a strict total order even across multiple identical-rank
	// door cards at the table.
	register(OneCardHighSpade, func(cards []card.Card) (HandRank, error) {
		if len(cards) != 1 {
			return HandRank{}, errInvalidHand("evalapi: one_card_high_spade requires exactly one card")
		}
		c := cards[0]
		suitRank := map[card.Suit]int{card.Spades: 3, card.Hearts: 2, card.Diamonds: 1, card.Clubs: 0}
		tiebreak := (21-int(c.Rank))*4 + (3 - suitRank[c.Suit])
		return HandRank{CategoryRank: 0, OrderedRank: tiebreak, CardsUsed: cards}, nil
	})
	registerDescriber(OneCardHighSpade, func(r HandRank) (string, string) {
		return "High Card", "High Card"
	})
}
