package table

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/handc"
)

// Table owns seating order, the button, the deck, community card
// subsets, and the discard pile - the shared mutable state a hand plays
// across, mirroring the teacher's Table struct fields (deck, community
// cards, discard) generalized to named community subsets (spec §3
// "community cards mapping (subset-name -> ordered sequence)").
type Table struct {
	seatOrder []string // player ids in seating order
	players   map[string]*Player
	buttonIdx int

	Deck      *deck.Deck
	Community *handc.Hand // subsets are named boards, e.g. "default", "Board 1"
	Discard   []card.Card

	deckVariant    deck.Variant
	deckJokerCount int
}

// New creates an empty table for the given deck variant/joker count. The
// deck itself is (re)built fresh at the start of every hand via
// ResetForHand so a partial failure never leaks cards across hands.
func New(v deck.Variant, jokerCount int) *Table {
	return &Table{
		players:        make(map[string]*Player),
		buttonIdx:      -1,
		Community:      handc.New(),
		deckVariant:    v,
		deckJokerCount: jokerCount,
	}
}

// Seat adds a player to the end of the seating order.
func (t *Table) Seat(p *Player) error {
	if _, exists := t.players[p.ID]; exists {
		return fmt.Errorf("table: player %q already seated", p.ID)
	}
	t.players[p.ID] = p
	t.seatOrder = append(t.seatOrder, p.ID)
	if t.buttonIdx == -1 {
		t.buttonIdx = 0
	}
	return nil
}

// Remove takes a player off the table entirely.
func (t *Table) Remove(id string) {
	delete(t.players, id)
	for i, sid := range t.seatOrder {
		if sid == id {
			t.seatOrder = append(t.seatOrder[:i], t.seatOrder[i+1:]...)
			break
		}
	}
	if t.buttonIdx >= len(t.seatOrder) {
		t.buttonIdx = 0
	}
}

// Player looks a seated player up by id.
func (t *Table) Player(id string) (*Player, bool) {
	p, ok := t.players[id]
	return p, ok
}

// SeatOrder returns player ids in table (clockwise) order.
func (t *Table) SeatOrder() []string {
	out := make([]string, len(t.seatOrder))
	copy(out, t.seatOrder)
	return out
}

// ActivePlayers returns the players currently seated and active, in seat
// order starting from the button.
func (t *Table) ActivePlayers() []*Player {
	var out []*Player
	for _, p := range t.OrderedPlayers() {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// OrderedPlayers returns all seated players starting from the button,
// clockwise.
func (t *Table) OrderedPlayers() []*Player {
	n := len(t.seatOrder)
	out := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		idx := (t.buttonIdx + i) % n
		out = append(out, t.players[t.seatOrder[idx]])
	}
	return out
}

// ButtonPlayer returns the current button's player id, or "" if no one
// is seated.
func (t *Table) ButtonPlayer() string {
	if len(t.seatOrder) == 0 {
		return ""
	}
	return t.seatOrder[t.buttonIdx]
}

// SeatDistanceFromButton returns how many seats clockwise id is from the
// button (0 = is the button). Used for the "closest left of button"
// tie-break spec §4.5/§4.8 require, per original_source/'s clarification
// that the distance is measured from the button seat (see SPEC_FULL.md).
func (t *Table) SeatDistanceFromButton(id string) int {
	for i, sid := range t.seatOrder {
		if sid == id {
			n := len(t.seatOrder)
			return ((i - t.buttonIdx) % n + n) % n
		}
	}
	return -1
}

// AdvanceButton moves the button to the next active seat clockwise.
func (t *Table) AdvanceButton() {
	n := len(t.seatOrder)
	for i := 1; i <= n; i++ {
		idx := (t.buttonIdx + i) % n
		if t.players[t.seatOrder[idx]].IsActive {
			t.buttonIdx = idx
			return
		}
	}
}

// AssignPositions assigns BUTTON/SMALL_BLIND/BIG_BLIND per spec §4.4.
func (t *Table) AssignPositions() {
	active := t.ActivePlayers()
	for _, p := range active {
		p.Positions = make(map[PositionTag]bool)
	}
	switch len(active) {
	case 0, 1:
		// no positions assigned
	case 2:
		active[0].Positions[Button] = true
		active[0].Positions[SmallBlind] = true
		active[1].Positions[BigBlind] = true
	default:
		active[0].Positions[Button] = true
		active[1].Positions[SmallBlind] = true
		active[2].Positions[BigBlind] = true
	}
}

// ResetForHand clears all per-hand state: player hands/betting state,
// the community hand, the discard pile, and rebuilds+shuffles a fresh
// deck. This is the "scoped reset-on-hand-start discipline" spec §5
// requires so a prior hand's partial failure cannot leak cards.
func (t *Table) ResetForHand(rng deck.Rand, shuffle bool) error {
	d, err := deck.New(t.deckVariant, t.deckJokerCount)
	if err != nil {
		return err
	}
	if shuffle {
		d.Shuffle(rng)
	}
	t.Deck = d
	t.Community.Clear()
	t.Discard = nil
	for _, p := range t.players {
		p.ResetForHand()
	}
	return nil
}

// TotalChips sums every seated player's stack plus everything already
// committed to the pot this hand (TotalBet), used by chip-conservation
// checks (spec §8 invariant 1).
func (t *Table) TotalChips() int {
	total := 0
	for _, p := range t.players {
		total += p.Stack + p.TotalBet
	}
	return total
}

// AllCards returns every card currently accounted for: the deck, the
// community hand, every player's hand, and the discard pile - used by
// the card-conservation check (spec §8 invariant 8).
func (t *Table) AllCards() []card.Card {
	var out []card.Card
	if t.Deck != nil {
		out = append(out, t.Deck.Cards()...)
	}
	out = append(out, t.Community.Cards()...)
	for _, p := range t.players {
		out = append(out, p.Hand.Cards()...)
	}
	out = append(out, t.Discard...)
	return out
}
