package betting

import "github.com/lox/pokerengine/internal/table"

// ForcedBetConfig describes the forced-bet scheme for one variant (spec
// §4.5: antes, blinds, bring-in, or a dealer-blind-plus-ante hybrid).
type ForcedBetConfig struct {
	Ante          int
	SmallBlind    int
	BigBlind      int
	DealerBlind   int // used instead of SB/BB for dealer-posts-a-blind variants
	BringInAmount int
	UsesBringIn   bool
}

// PostAntes charges every active player the ante (or does nothing if
// Ante is 0), returning the total collected.
func PostAntes(players []*table.Player, cfg ForcedBetConfig) int {
	if cfg.Ante <= 0 {
		return 0
	}
	total := 0
	for _, p := range players {
		amt := cfg.Ante
		if amt > p.Stack {
			amt = p.Stack
		}
		postBet(p, amt)
		total += amt
	}
	return total
}

// PostBlinds charges the SB/BB-tagged players (or, for a dealer-blind
// scheme, the button) their forced amounts, returning the largest amount
// any one seat posted so the caller can seed the betting round's
// CurrentBet correctly.
func PostBlinds(t *table.Table, cfg ForcedBetConfig) (currentBet int) {
	for _, p := range t.ActivePlayers() {
		switch {
		case cfg.DealerBlind > 0 && p.HasPosition(table.Button):
			amt := min(cfg.DealerBlind, p.Stack)
			postBet(p, amt)
			if amt > currentBet {
				currentBet = amt
			}
		case p.HasPosition(table.SmallBlind):
			amt := min(cfg.SmallBlind, p.Stack)
			postBet(p, amt)
			if amt > currentBet {
				currentBet = amt
			}
		case p.HasPosition(table.BigBlind):
			amt := min(cfg.BigBlind, p.Stack)
			postBet(p, amt)
			if amt > currentBet {
				currentBet = amt
			}
		}
	}
	return currentBet
}

// postBet moves amt chips from p's stack into its current/total bet
// tracking, marking all-in if the stack is now exhausted.
func postBet(p *table.Player, amt int) {
	p.Stack -= amt
	p.CurrentBet += amt
	p.TotalBet += amt
	if p.Stack == 0 {
		p.AllIn = true
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
