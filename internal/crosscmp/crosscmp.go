// Package crosscmp implements component E: comparing hand evaluations of
// different card counts within one pot (spec §4.3), e.g. a 2-card
// Omaha-style high hand against a 5-card Hold'em-style high hand sharing
// a pot portion. A mapping table translates the smaller size's (category,
// ordered) tuple to its 5-card equivalent; comparison then proceeds as
// normal HandRank comparison.
package crosscmp

import (
	"fmt"

	"github.com/lox/pokerengine/internal/evalapi"
	"github.com/lox/pokerengine/internal/ranktable"
)

// Mapping holds a loaded cross-size table (smaller eval type, rank) ->
// (5-card-equivalent eval type, rank).
type Mapping struct {
	table map[ranktable.CrossKey]ranktable.CrossTarget
}

// NewMapping wraps a pre-parsed table (see ranktable.ParseCrossSize).
func NewMapping(table map[ranktable.CrossKey]ranktable.CrossTarget) *Mapping {
	return &Mapping{table: table}
}

// Translate maps a smaller-size HandRank under smallerEval to its
// 5-card-equivalent HandRank, returning an error if no mapping row
// covers it (spec §7: this is an evaluation error, not an invariant
// violation - the caller should disqualify the hand from the shared pot
// rather than abort the hand).
func (m *Mapping) Translate(smallerEval string, r evalapi.HandRank) (evalapi.HandRank, error) {
	key := ranktable.CrossKey{Eval: smallerEval, CategoryRank: r.CategoryRank, OrderedRank: r.OrderedRank}
	target, ok := m.table[key]
	if !ok {
		return evalapi.HandRank{}, fmt.Errorf("crosscmp: no mapping for %s (%d,%d)", smallerEval, r.CategoryRank, r.OrderedRank)
	}
	return evalapi.HandRank{CategoryRank: target.CategoryRank, OrderedRank: target.OrderedRank, CardsUsed: r.CardsUsed}, nil
}

// Compare compares a HandRank evaluated under evalA against one under
// evalB, translating through the mapping whenever the two evaluation
// type names differ. Returns -1/0/+1 per evalapi.Compare's convention
// (smaller category wins).
func (m *Mapping) Compare(evalA string, a evalapi.HandRank, evalB string, b evalapi.HandRank, canonical string) (int, error) {
	if evalA != canonical {
		translated, err := m.Translate(evalA, a)
		if err != nil {
			return 0, err
		}
		a = translated
	}
	if evalB != canonical {
		translated, err := m.Translate(evalB, b)
		if err != nil {
			return 0, err
		}
		b = translated
	}
	return evalapi.Compare(a, b), nil
}
