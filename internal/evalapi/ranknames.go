package evalapi

import "github.com/lox/pokerengine/internal/card"

// rankFullNames and rankPluralNames mirror original_source's RANK_NAMES
// table plus its Rank.plural_name special-case (Six -> Sixes), used to
// build the card-level hand detail spec §4.9/SPEC_FULL.md require
// ("Four Queens", "Kings Full of Queens").
var rankFullNames = map[card.Rank]string{
	card.One: "One", card.Two: "Two", card.Three: "Three", card.Four: "Four",
	card.Five: "Five", card.Six: "Six", card.Seven: "Seven", card.Eight: "Eight",
	card.Nine: "Nine", card.Ten: "Ten", card.Jack: "Jack", card.Queen: "Queen",
	card.King: "King", card.Ace: "Ace", card.Joker: "Joker",
}

func rankFullName(r card.Rank) string {
	if name, ok := rankFullNames[r]; ok {
		return name
	}
	return "Unknown"
}

func rankPluralName(r card.Rank) string {
	name := rankFullName(r)
	if name == "Six" {
		return "Sixes"
	}
	return name + "s"
}
