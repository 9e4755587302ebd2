// Package table implements component C: player seating, the button, and
// per-hand positional order. Grounded on the teacher's internal/game
// Player/Table split (player.go, table.go), generalized from a fixed
// hole-card/community-card Hold'em shape to the subset-bearing Hand
// container and arbitrary seat counts spec §3/§4.4 require.
package table

import (
	"github.com/lox/pokerengine/internal/handc"
)

// PositionTag is one positional role a seat can hold this hand. A seat
// can hold more than one tag (heads-up: BUTTON+SMALL_BLIND).
type PositionTag int

const (
	NoPosition PositionTag = iota
	Button
	SmallBlind
	BigBlind
)

func (p PositionTag) String() string {
	switch p {
	case Button:
		return "BUTTON"
	case SmallBlind:
		return "SMALL_BLIND"
	case BigBlind:
		return "BIG_BLIND"
	default:
		return "NONE"
	}
}

// Player is one seated participant.
type Player struct {
	ID          string
	DisplayName string
	Stack       int
	IsActive    bool // seated and not sitting out / removed
	Positions   map[PositionTag]bool
	Hand        *handc.Hand

	// Per-hand transient state, reset at the start of every hand.
	Folded       bool
	AllIn        bool
	TotalBet     int // total chips contributed to the pot this hand
	CurrentBet   int // chips contributed in the current betting round
	HasActed     bool
	Declarations map[string]string // pot-portion name -> declared claim
}

// NewPlayer seats a player with the given starting stack.
func NewPlayer(id, name string, stack int) *Player {
	return &Player{
		ID:          id,
		DisplayName: name,
		Stack:       stack,
		IsActive:    true,
		Positions:   make(map[PositionTag]bool),
		Hand:        handc.New(),
	}
}

// HasPosition reports whether the player currently holds the given tag.
func (p *Player) HasPosition(t PositionTag) bool {
	return p.Positions[t]
}

// ResetForHand clears per-hand transient betting/cards state. Hands and
// community cards are owned by the Table; this only resets the player's
// own bookkeeping, under the "scoped reset-on-hand-start" discipline
// spec §5 requires so a failed prior hand cannot leak state.
func (p *Player) ResetForHand() {
	p.Hand.Clear()
	p.Folded = false
	p.AllIn = false
	p.TotalBet = 0
	p.CurrentBet = 0
	p.HasActed = false
	p.Declarations = nil
	p.Positions = make(map[PositionTag]bool)
}
