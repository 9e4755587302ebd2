// Package rules implements component G: parsing and validating the
// declarative variant description JSON document (spec §6), including the
// tagged-union step sequence and the Static|Conditional modeling spec §9
// prescribes for forcedBets/bettingOrder/showdown.bestHand. Grounded in
// shape on the teacher's internal/server config.go JSON-decode-then-
// validate pattern, generalized from a fixed Hold'em shape to the full
// variant-description grammar.
package rules

import (
	"encoding/json"
	"fmt"
)

// Rules is a fully parsed and validated variant description. It is
// immutable after Load returns and freely shareable across game
// instances (spec §5).
type Rules struct {
	Game              string
	PlayersMin        int
	PlayersMax        int
	Deck              DeckSpec
	BettingStructures []string
	ForcedBets        ForcedBets
	BettingOrder      BettingOrder
	GamePlay          []Step
	Showdown          ShowdownSpec
	NamedBets         map[string]NamedBet
}

// DeckSpec selects the deck variant and joker count.
type DeckSpec struct {
	Type   string `json:"type"`
	Cards  int    `json:"cards"`
	Jokers int    `json:"jokers"`
}

// NamedBet is a betting-structure-independent named wager size (e.g.
// "small"/"big" for Limit structures resolved against stakes at
// new_game time).
type NamedBet struct {
	Name string `json:"name"`
}

// ForcedBets models spec §3's forced-bet configuration: style plus an
// optional rule, with the rule itself potentially conditional on game
// state (spec §9's Static|Conditional modeling).
type ForcedBets struct {
	Style string // "blinds" | "bring-in" | "antes_only"
	Rule  ConditionalString
	Ante  int
	SmallBlind int
	BigBlind   int
	DealerBlind int
	BringInAmount int
}

// BettingOrder models spec §4.4's initial/subsequent first-actor rules.
type BettingOrder struct {
	Initial    ConditionalString
	Subsequent ConditionalString
}

// ConditionalString is spec §9's `Static(T) | Conditional{orders:
// [(condition, T)], default: T}` modeling, specialized to string-valued
// selectors (action/position tags interpreted by the interpreter/betting
// engine against a small closed vocabulary of condition names).
type ConditionalString struct {
	Static      string
	Conditional []ConditionalCase
	Default     string
}

// ConditionalCase pairs one named condition with the value selected when
// it matches.
type ConditionalCase struct {
	Condition string
	Value     string
}

// Resolve returns the value in force given which named conditions
// currently hold true. The first matching condition wins; unmatched
// conditions never fire (spec §9: "unknown conditions never match").
func (c ConditionalString) Resolve(active map[string]bool) string {
	if c.Static != "" {
		return c.Static
	}
	for _, cs := range c.Conditional {
		if active[cs.Condition] {
			return cs.Value
		}
	}
	return c.Default
}

// ShowdownSpec models spec §4.8's showdown configuration.
type ShowdownSpec struct {
	RevealOrder       string
	DeclarationMode   string // "cards_speak" | "declare"
	BestHand          []BestHandSpec
	ConditionalHands  []ConditionalBestHand
	DefaultBestHand   []BestHandSpec
	GlobalDefaultAction string
}

// ConditionalBestHand lets the active bestHand list itself be
// conditional (spec §4.8 step 1: "evaluate conditionals against the
// current state; else use bestHand[] (or defaultBestHand[])").
type ConditionalBestHand struct {
	Condition string
	BestHand  []BestHandSpec
}

// BestHandSpec is one entry of the showdown's bestHand list: an
// independent pot portion with its own evaluation type, required card
// usage, optional qualifier, subset restriction, and fallback.
type BestHandSpec struct {
	Name           string
	EvaluationType string
	CardsRequired  CardUsage
	Qualifier      *QualifierSpec
	Subset         string
	HoleSubset     string
	DefaultAction  string
	WildClauses    []WildClause
}

// CardUsage is spec §4.8's usage spec: holeCards/communityCards/anyCards,
// each accepting either a fixed count or a list of acceptable counts.
type CardUsage struct {
	Kind   string // "holeCards" | "communityCards" | "anyCards"
	Counts []int  // one or more acceptable card counts
}

// Accepts reports whether n cards satisfies this usage spec's count
// constraint.
func (u CardUsage) Accepts(n int) bool {
	for _, c := range u.Counts {
		if c == n {
			return true
		}
	}
	return false
}

// QualifierSpec is spec §4.2's `(max_category_rank, max_ordered_rank)`
// qualifier threshold.
type QualifierSpec struct {
	MaxCategoryRank int
	MaxOrderedRank  int
}

// WildClause names an additional wild-card rule a bestHand entry layers
// on top of the evaluation type's base wild handling (e.g. a variant-
// specific named-wild rank).
type WildClause struct {
	Kind string // "named" | "matching" | "bug"
	Rank string
}

// Step is the tagged-union gameplay step spec §4.7/§9 describes: each
// step carries a Kind (the first recognized key the JSON document
// contained) plus the fields relevant to that kind. Parsing into this
// union happens once at load time so the interpreter is a single match
// on Kind, never a re-inspection of raw JSON.
type Step struct {
	Name string
	Kind StepKind

	// populated depending on Kind
	Bet              *BetStep
	Deal             *DealStep
	Draw             *DrawStep
	Discard          *DrawStep
	Expose           *DrawStep
	Pass             *DrawStep
	Separate         *SeparateStep
	Declare          *DeclareStep
	Choose           *ChooseStep
	ReplaceCommunity *ReplaceCommunityStep
	Remove           *RemoveStep
	RollDie          *RollDieStep
	Showdown         *ShowdownStep
	GroupedActions   []Step
}

// StepKind enumerates the tagged-union variants spec §6 lists: "the
// first recognized key" among bet/deal/draw/discard/expose/pass/
// separate/declare/choose/replace_community/remove/roll_die/showdown/
// groupedActions.
type StepKind string

const (
	StepBet              StepKind = "bet"
	StepDeal             StepKind = "deal"
	StepDraw             StepKind = "draw"
	StepDiscard          StepKind = "discard"
	StepExpose           StepKind = "expose"
	StepPass             StepKind = "pass"
	StepSeparate         StepKind = "separate"
	StepDeclare          StepKind = "declare"
	StepChoose           StepKind = "choose"
	StepReplaceCommunity StepKind = "replace_community"
	StepRemove           StepKind = "remove"
	StepRollDie          StepKind = "roll_die"
	StepShowdown         StepKind = "showdown"
	StepGrouped          StepKind = "groupedActions"
)

// BetStep is a betting-round step: "small"/"big"/a named bet reference.
type BetStep struct {
	BetSize string // "small" | "big" | a NamedBets key
}

// DealCardDescriptor is spec §6's "{number, state, subset?,
// preserve_state?}".
type DealCardDescriptor struct {
	Number          int
	FaceUp          bool
	Subset          string
	PreserveState   bool
	ConditionalState string // e.g. "flop_color_check" - interpreted by the interpreter
}

// DealStep deals to either a player subset or a community subset.
type DealStep struct {
	Target string // "player" | "community"
	Cards  []DealCardDescriptor
}

// DrawStep covers draw/discard/expose/pass (which all share the same
// "visit each player, accept a bounded card selection" shape).
type DrawStep struct {
	Min int
	Max int
}

// SeparateStep assigns cards into named subsets per player.
type SeparateStep struct {
	SubsetNames []string
}

// DeclareStep is the hi/lo (or multi-pot) declaration step.
type DeclareStep struct {
	Options []string // e.g. "high", "low", "both"
}

// ChooseStep lets the player pick among enumerated variant options.
type ChooseStep struct {
	Options []string
}

// ReplaceCommunityStep replaces some or all of a community subset.
type ReplaceCommunityStep struct {
	Subset string
	Number int
}

// RemoveStep removes cards (e.g. burn or kill) from a subset.
type RemoveStep struct {
	Subset string
	Number int
}

// RollDieStep rolls a die (used by die-deck variants to pick a suit/
// direction).
type RollDieStep struct{}

// ShowdownStep marks the point the interpreter invokes the showdown
// resolver; it carries no fields of its own beyond Name since the real
// configuration lives in Rules.Showdown.
type ShowdownStep struct{}

// ConfigError reports a malformed or structurally invalid rules
// document (spec §7: "Configuration errors ... surfaced at load time;
// loading fails").
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

// Load parses and validates a variant description JSON document.
// Unknown top-level keys are ignored (spec §6: "ignored with a
// warning" - the core has no logger at this layer, so validation
// callers that want the warning surfaced should inspect the returned
// Rules' fidelity themselves; structurally required fields still fail
// loading, per spec).
func Load(text []byte) (*Rules, error) {
	var doc document
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, ConfigError(fmt.Sprintf("rules: invalid JSON: %v", err))
	}
	return fromDocument(doc)
}
