package evalapi

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// Type identifies one evaluation type (spec §4.2, non-exhaustive list).
type Type string

const (
	High          Type = "high"
	A5Low         Type = "a5_low"
	A5LowHigh     Type = "a5_low_high" // a5_low ranking, awarded as a high pot - see SPEC_FULL.md
	TwentySevenLow Type = "27_low"
	Badugi        Type = "badugi"      // Ace low
	BadugiAceHigh Type = "badugi_ah"
	Hidugi        Type = "hidugi" // badugi played for high
	WildHigh      Type = "wild_high"
	WildHighBug   Type = "wild_high_bug"
	PipClosest49  Type = "pip_49"
	PipClosest0   Type = "pip_0"
	PipClosest6   Type = "pip_6"
	Pip21NoBust   Type = "pip_21"
	LowPip6       Type = "low_pip_6"
	ShortHigh20   Type = "short_high_20"
	ShortHigh36   Type = "short_high_36"
	ShortHigh40   Type = "short_high_40"
	OneCardHighSpade Type = "one_card_high_spade"
)

// Evaluator scores a fixed-size card selection under one evaluation
// type, honoring wild cards (qualifiers are checked separately, by
// Qualifier.Qualifies). N, where
// meaningful (N-card variants), is carried on the request rather than
// the Type so stud bring-in/showing-hand comparisons (1-7 face-up cards)
// can reuse one registered evaluator.
type Evaluator interface {
	// Evaluate returns the HandRank for cards (which may include cards
	// with IsWild set), or an error if cards cannot form a valid hand
	// under this type (spec §7 "evaluation errors").
	Evaluate(cards []card.Card) (HandRank, error)
}

type evalFuncAdapter struct{ fn EvalFunc }

func (a evalFuncAdapter) Evaluate(cards []card.Card) (HandRank, error) { return a.fn(cards) }

// registry maps evaluation type names to their evaluator. Populated by
// the type-specific files in this package (types_*.go) via init().
var registry = make(map[Type]Evaluator)

func register(t Type, fn EvalFunc) {
	registry[t] = evalFuncAdapter{fn}
}

// Lookup returns the registered evaluator for t.
func Lookup(t Type) (Evaluator, error) {
	e, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("evalapi: unknown evaluation type %q", t)
	}
	return e, nil
}

// Describe produces the (short name, detail) pair for a HandRank under
// type t, honoring spec §4.9's per-evaluation-type describer contract.
func Describe(t Type, r HandRank) (name string, detail string) {
	if d, ok := describers[t]; ok {
		return d(r)
	}
	return "Hand", fmt.Sprintf("category %d rank %d", r.CategoryRank, r.OrderedRank)
}

var describers = make(map[Type]func(HandRank) (string, string))

func registerDescriber(t Type, fn func(HandRank) (string, string)) {
	describers[t] = fn
}
