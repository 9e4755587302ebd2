// Package result implements component J: the JSON-serializable per-hand
// result model spec §4.9 defines (HandResult, PotResult, GameResult).
// Grounded on the teacher's internal/game result structs (HandResult/
// GameResult in game.go), generalized from a fixed Hold'em evaluation
// shape to the variant-driven hand_type/evaluation_type/classifications
// fields the showdown resolver populates.
package result

import "github.com/lox/pokerengine/internal/card"

// HandResult is one player's evaluated hand for one bestHand entry
// (spec §4.9).
type HandResult struct {
	PlayerID         string            `json:"player_id"`
	Cards            []card.Card       `json:"cards"`
	HandName         string            `json:"hand_name"`
	HandDescription  string            `json:"hand_description"`
	EvaluationType   string            `json:"evaluation_type"`
	HandType         string            `json:"hand_type"` // the bestHand entry name, e.g. "High"/"Low"
	CommunityCards   []card.Card       `json:"community_cards"`
	UsedHoleCards    []card.Card       `json:"used_hole_cards"`
	Rank             int               `json:"rank"`     // category_rank
	OrderedRank      int               `json:"ordered_rank"`
	Classifications  map[string]string `json:"classifications,omitempty"`
	Qualified        bool              `json:"qualified"`
}

// PotResult is one pot level's award (spec §4.9).
type PotResult struct {
	Amount          int               `json:"amount"`
	Winners         []string          `json:"winners"`
	PotType         string            `json:"pot_type"` // "main" | "side"
	HandType        string            `json:"hand_type"`
	SidePotIndex    *int              `json:"side_pot_index,omitempty"`
	EligiblePlayers []string          `json:"eligible_players"`
	Reason          string            `json:"reason,omitempty"`
	BestHands       []HandResult      `json:"best_hands"`
	Declarations    map[string]string `json:"declarations,omitempty"`
	Split           bool              `json:"split"`
}

// GameResult is the full structured outcome of a completed hand (spec
// §4.9), with TotalPot/Winners derived on demand rather than stored
// redundantly.
type GameResult struct {
	Pots         []PotResult             `json:"pots"`
	Hands        map[string][]HandResult `json:"hands"` // player_id -> hand results
	WinningHands []HandResult            `json:"winning_hands"`
	IsComplete   bool                    `json:"is_complete"`
}

// TotalPot sums every pot's amount.
func (g GameResult) TotalPot() int {
	total := 0
	for _, p := range g.Pots {
		total += p.Amount
	}
	return total
}

// Winners returns the unique set of player ids who won at least one
// pot, in first-seen order.
func (g GameResult) Winners() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.Pots {
		for _, w := range p.Winners {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}
