// Package betting implements component F: bet validation, forced bets,
// bring-in selection, and multi-level main/side-pot construction for
// limit/no-limit/pot-limit structures (spec §4.6). Grounded in shape on
// the teacher's internal/game betting.go (Street/Action/BettingRound)
// and pot.go (PotManager), generalized from a fixed four-street Hold'em
// round structure to an arbitrary variant-driven sequence of betting
// rounds over an arbitrary player count, and from single-pot collection
// to the rebuild-from-totals multi-pot algorithm spec §9 prescribes.
package betting

import "github.com/lox/pokerengine/internal/table"

// Structure is the betting structure in force for a round (spec §3).
type Structure int

const (
	Limit Structure = iota
	NoLimit
	PotLimit
)

func (s Structure) String() string {
	switch s {
	case Limit:
		return "Limit"
	case NoLimit:
		return "No Limit"
	case PotLimit:
		return "Pot Limit"
	default:
		return "unknown"
	}
}

// ActionKind enumerates every action the betting engine and interpreter
// recognize (spec §4.6, plus the non-betting step actions it lists
// alongside betting actions since get_valid_actions is a single surface
// for both).
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	Complete
	BringIn
	AllIn
	Discard
	Draw
	Expose
	Pass
	Separate
	Declare
	Choose
	ReplaceCommunity
)

func (a ActionKind) String() string {
	names := map[ActionKind]string{
		Fold: "fold", Check: "check", Call: "call", Bet: "bet", Raise: "raise",
		Complete: "complete", BringIn: "bring-in", AllIn: "all-in",
		Discard: "discard", Draw: "draw", Expose: "expose", Pass: "pass",
		Separate: "separate", Declare: "declare", Choose: "choose",
		ReplaceCommunity: "replace_community",
	}
	if n, ok := names[a]; ok {
		return n
	}
	return "unknown"
}

// ValidAction describes one action a player may currently take and its
// amount bounds (spec §4.6 get_valid_actions).
type ValidAction struct {
	Action ActionKind
	Min    int
	Max    int
}

// ErrNotPlayersTurn and friends back spec §7's "action errors": recovered
// locally, state unchanged.
type ActionError string

func (e ActionError) Error() string { return string(e) }

const (
	ErrNotPlayersTurn   ActionError = "betting: not this player's turn"
	ErrActionNotLegal   ActionError = "betting: action is not in the legal set"
	ErrAmountOutOfRange ActionError = "betting: bet amount out of range"
	ErrUnknownPlayer    ActionError = "betting: unknown player"
)

// contributionToCall returns how much more p must put in to match the
// round's current bet.
func contributionToCall(p *table.Player, currentBet int) int {
	owed := currentBet - p.CurrentBet
	if owed < 0 {
		return 0
	}
	return owed
}
