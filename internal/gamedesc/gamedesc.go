// Package gamedesc implements component L: deriving a short,
// human-readable description of a loaded variant (e.g. "$1/$2 No Limit
// Texas Hold'em", "Limit Seven Card Stud Hi-Lo") plus a list of
// subtitle tags (forced-bet style, split-pot, qualifier, wild cards,
// deck variant). Grounded on original_source/src/generic_poker/config/
// game_description.py, re-expressed against the already-parsed
// *rules.Rules value rather than raw JSON.
package gamedesc

import (
	"fmt"
	"strings"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/rules"
)

// evalDescriptions mirrors EVAL_DESCRIPTIONS: a short prose description
// per evaluation type, used when building the "final hand" subtitle.
var evalDescriptions = map[string]string{
	"high":                 "Best poker hand",
	"a5_low":                "Lowest 5 unique ranks (Ace is low)",
	"27_low":                "Lowest ranked 5-card poker hand (Ace is high)",
	"badugi":                "Lowest 4 unique ranks and suits (Ace is low)",
	"badugi_ah":             "Lowest 4 unique ranks and suits (Ace is high)",
	"hidugi":                "Highest 4-card hand with unique ranks and suits",
	"wild_high":             "Best poker hand with wild cards",
	"wild_high_bug":         "Best poker hand with wild cards",
	"pip_49":                "Closest to 49 pip count",
	"pip_0":                 "Closest to zero pip count",
	"pip_6":                 "Closest to 6 pip count",
	"low_pip_6":             "Lowest pip count using 6 cards",
	"pip_21":                "Closest to 21 without going over",
	"a5_low_high":           "Best A-5 low hand used as high",
	"one_card_high_spade":   "Highest single spade",
}

// Describe builds the title string for a variant: stakes, betting
// structure, and game name, e.g. "$1/$2 No Limit Test Heads-Up Hold'em".
func Describe(r *rules.Rules, structure betting.Structure, smallBlind, bigBlind int) string {
	var stakes string
	if smallBlind > 0 && bigBlind > 0 {
		stakes = fmt.Sprintf("$%d/$%d ", smallBlind, bigBlind)
	}
	return fmt.Sprintf("%s%s %s", stakes, structure, r.Game)
}

// SubtitleTags builds the ordered list of subtitle tags: forced-bet
// style, split-pot, declare mode, qualifier, deck variant, and joker
// count, mirroring get_subtitle_tags.
func SubtitleTags(r *rules.Rules) []string {
	var tags []string

	style, bringIn := forcedBetStyleLabel(r.ForcedBets.Style)
	tags = append(tags, style)
	if bringIn != "" {
		tags = append(tags, bringIn)
	}

	if len(r.Showdown.BestHand) > 1 {
		tags = append(tags, "Split Pot")
	}
	if r.Showdown.DeclarationMode == "declare" {
		tags = append(tags, "Declare")
	}
	for _, bh := range r.Showdown.BestHand {
		if bh.Qualifier != nil {
			tags = append(tags, "Qualifier")
			break
		}
	}

	if r.Deck.Type != "" && r.Deck.Type != "standard" {
		tags = append(tags, deckLabel(r.Deck.Type))
	}
	if r.Deck.Jokers > 0 {
		suffix := ""
		if r.Deck.Jokers > 1 {
			suffix = "s"
		}
		tags = append(tags, fmt.Sprintf("%d Joker%s", r.Deck.Jokers, suffix))
	}

	if r.PlayersMax > 0 && r.PlayersMax < 9 {
		tags = append(tags, fmt.Sprintf("%d Players Max", r.PlayersMax))
	}

	return tags
}

func forcedBetStyleLabel(style string) (betStyle, bringIn string) {
	switch style {
	case "bring-in":
		return "Antes", "Low Card Bring-In"
	case "antes_only":
		return "Antes", ""
	default:
		return "Blinds", ""
	}
}

func deckLabel(deckType string) string {
	names := map[string]string{
		"short_6a":  "36-Card Deck",
		"short_ta":  "20-Card Deck",
		"short_27_ja": "40-Card Deck",
	}
	if n, ok := names[deckType]; ok {
		return n
	}
	return deckType + " Deck"
}

// FinalHandDescription produces one descriptive line per bestHand
// entry, e.g. "**Low:** Lowest 5 unique ranks (Ace is low)", mirroring
// get_final_hand_description.
func FinalHandDescription(r *rules.Rules) []string {
	if len(r.Showdown.BestHand) == 0 {
		return []string{"Best poker hand"}
	}
	out := make([]string, 0, len(r.Showdown.BestHand))
	for _, bh := range r.Showdown.BestHand {
		desc, ok := evalDescriptions[bh.EvaluationType]
		if !ok {
			desc = fmt.Sprintf("Best hand (%s)", bh.EvaluationType)
		}

		var usage string
		switch bh.CardsRequired.Kind {
		case "holeCards":
			usage = " using hole cards"
		case "anyCards":
			if n := soleCount(bh.CardsRequired.Counts); n > 0 && n != 5 {
				usage = fmt.Sprintf(" (%d-card hand)", n)
			}
		}

		qualifier := ""
		if bh.Qualifier != nil {
			qualifier = " with a qualifier"
		}

		if bh.Name != "" {
			out = append(out, fmt.Sprintf("**%s:** %s%s%s", bh.Name, desc, usage, qualifier))
		} else {
			out = append(out, desc+usage+qualifier)
		}
	}
	return out
}

func soleCount(counts []int) int {
	if len(counts) == 1 {
		return counts[0]
	}
	return 0
}

// SplitPotDescription names each bestHand portion ("High / Low"), or ""
// if the variant awards a single pot, mirroring
// get_split_pot_description.
func SplitPotDescription(r *rules.Rules) string {
	if len(r.Showdown.BestHand) <= 1 {
		return ""
	}
	parts := make([]string, 0, len(r.Showdown.BestHand))
	for _, bh := range r.Showdown.BestHand {
		switch {
		case bh.Name != "":
			parts = append(parts, bh.Name)
		case bh.EvaluationType == "high":
			parts = append(parts, "High hand")
		case bh.EvaluationType == "a5_low" || bh.EvaluationType == "27_low":
			parts = append(parts, "Low hand")
		default:
			parts = append(parts, bh.EvaluationType)
		}
	}
	return strings.Join(parts, " / ")
}
