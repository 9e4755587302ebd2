// Package interpreter implements component H: the step-runner state
// machine that drives one hand from forced bets through showdown (spec
// §4.7), dispatching each gamePlay step by its parsed Kind and wiring
// together table.Table, betting.Round/BuildPots, and showdown.Resolve.
// Grounded in shape on the teacher's internal/game engine.go (GameEngine
// hand loop: current player -> valid actions -> apply decision -> advance
// -> check round/hand completion), generalized from a fixed four-street
// Hold'em loop to an arbitrary variant-driven step sequence.
package interpreter

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/result"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/showdown"
	"github.com/lox/pokerengine/internal/table"
)

// Phase is the coarse state machine spec §4.7 describes: WAITING (before
// a hand starts), BETTING, DEALING (includes draw/discard/expose/pass/
// separate/declare/choose/replace_community/remove/roll_die - every step
// kind that isn't itself a bet or the terminal showdown), SHOWDOWN, and
// COMPLETE.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseBetting
	PhaseDealing
	PhaseShowdown
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "WAITING"
	case PhaseBetting:
		return "BETTING"
	case PhaseDealing:
		return "DEALING"
	case PhaseShowdown:
		return "SHOWDOWN"
	case PhaseComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// StateError reports an illegal call against the current phase/step
// (spec §7's "state errors": illegal call given current phase).
type StateError string

func (e StateError) Error() string { return string(e) }

const (
	ErrNoHandInProgress StateError = "interpreter: no hand in progress"
	ErrHandAlreadyDone  StateError = "interpreter: hand already complete"
	ErrNotExpectingThat StateError = "interpreter: current step does not expect that action"
)

// Game drives a single table through repeated hands under one fixed set
// of rules (spec §5: a Rules value is immutable and shared; Game is the
// per-table mutable driver around it).
type Game struct {
	Rules *rules.Rules
	Table *table.Table
	rng   deck.Rand
	log   *log.Logger

	forced      betting.ForcedBetConfig
	bringInRule betting.CardRule

	phase   Phase
	steps   []rules.Step
	stepIdx int
	groupIdx int // index within a groupedActions step's children, -1 when not inside one

	round        *betting.Round
	roundNumber  int // how many betting rounds have started this hand, for bring-in subsequent-round rule
	actOrder     []string
	actIdx       int

	communitySubsets map[string]bool // every community subset named by a Deal step this hand
	activeConditions map[string]bool

	pending *pendingStep // non-nil while a non-betting interactive step awaits responses

	declarations map[string]string // playerID -> raw declare-step claim ("high" | "low" | "both"), declare-mode variants only

	handResult *result.GameResult

	// maxRaisesPerRound caps Limit-structure raises per betting round
	// (spec §9 open question: no canonical count is named, so the
	// engine defaults to 4 bets-or-raises per round - a voluntary
	// opening bet counts toward it, posted blinds do not - and exposes
	// it for callers that need a different table rule).
	maxRaisesPerRound int
}

// SetMaxRaisesPerRound overrides the Limit-structure raise cap (0 means
// uncapped). Must be called before StartHand to take effect.
func (g *Game) SetMaxRaisesPerRound(n int) { g.maxRaisesPerRound = n }

// pendingStep tracks a draw/discard/expose/pass/separate/declare/choose
// step collecting one response per active player before it completes.
type pendingStep struct {
	kind     rules.StepKind
	step     *rules.Step
	order    []string
	idx      int
	declared map[string]string // playerID -> declared claim, for StepDeclare
}

// NewGame wires a parsed Rules document to a fresh table.
func NewGame(r *rules.Rules, t *table.Table, rng deck.Rand, forced betting.ForcedBetConfig, bringInRule betting.CardRule, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Game{
		Rules:             r,
		Table:             t,
		rng:               rng,
		log:               logger,
		forced:            forced,
		bringInRule:       bringInRule,
		phase:             PhaseWaiting,
		maxRaisesPerRound: 4,
	}
}

// Phase returns the current coarse state.
func (g *Game) Phase() Phase { return g.phase }

// StartHand resets the table, assigns positions, posts forced bets, and
// begins running gamePlay steps (spec §4.7 step 1-2). It runs every
// automatic step immediately and stops at the first step awaiting player
// input (a bet step, or any of the generic draw/discard/expose/pass/
// separate/declare/choose steps), or completes the hand outright if none
// of the gamePlay steps need player input (degenerate single-step
// variants used in tests).
func (g *Game) StartHand() error {
	if err := g.Table.ResetForHand(g.rng, true); err != nil {
		return fmt.Errorf("interpreter: %w", err)
	}
	g.Table.AssignPositions()

	g.steps = g.Rules.GamePlay
	g.stepIdx = 0
	g.groupIdx = -1
	g.roundNumber = 0
	g.communitySubsets = make(map[string]bool)
	g.activeConditions = make(map[string]bool)
	g.pending = nil
	g.handResult = nil
	g.round = nil
	g.declarations = make(map[string]string)

	switch g.Rules.ForcedBets.Style {
	case "blinds":
		betting.PostBlinds(g.Table, g.forced)
	case "antes_only":
		betting.PostAntes(g.Table.ActivePlayers(), g.forced)
	case "bring-in":
		betting.PostAntes(g.Table.ActivePlayers(), g.forced)
	}

	g.log.Debug("hand started", "game", g.Rules.Game, "players", len(g.Table.ActivePlayers()))
	g.phase = PhaseDealing
	return g.advance()
}

// currentStep returns the step the driver is positioned at, descending
// into a groupedActions step's children when mid-group.
func (g *Game) currentStep() *rules.Step {
	if g.stepIdx >= len(g.steps) {
		return nil
	}
	s := &g.steps[g.stepIdx]
	if s.Kind == rules.StepGrouped && g.groupIdx >= 0 && g.groupIdx < len(s.GroupedActions) {
		return &s.GroupedActions[g.groupIdx]
	}
	return s
}

// advanceStepCursor moves the cursor to the next step, including walking
// out of a groupedActions step once all of its children have run.
func (g *Game) advanceStepCursor() {
	s := &g.steps[g.stepIdx]
	if s.Kind == rules.StepGrouped {
		if g.groupIdx < 0 {
			g.groupIdx = 0
			return
		}
		g.groupIdx++
		if g.groupIdx < len(s.GroupedActions) {
			return
		}
		g.groupIdx = -1
	}
	g.stepIdx++
}

// advance runs automatic steps until the hand completes or an
// interactive step is reached and awaits a response.
func (g *Game) advance() error {
	for {
		step := g.currentStep()
		if step == nil {
			g.phase = PhaseComplete
			return nil
		}
		switch step.Kind {
		case rules.StepBet:
			if g.onlyOnePlayerLeft() {
				g.advanceStepCursor()
				continue
			}
			g.startBettingRound(step)
			g.phase = PhaseBetting
			return nil
		case rules.StepDeal:
			if err := g.runDeal(step.Deal); err != nil {
				return err
			}
			g.advanceStepCursor()
		case rules.StepReplaceCommunity:
			g.runReplaceCommunity(step.ReplaceCommunity)
			g.advanceStepCursor()
		case rules.StepRemove:
			g.runRemove(step.Remove)
			g.advanceStepCursor()
		case rules.StepRollDie:
			// Die outcome is variant-specific flavor (e.g. choosing a
			// wild suit); no die is rolled and nothing is recorded.
			// Nothing else in the generalized engine depends on it.
			g.advanceStepCursor()
		case rules.StepDraw, rules.StepDiscard, rules.StepExpose, rules.StepPass,
			rules.StepSeparate, rules.StepDeclare, rules.StepChoose:
			if g.onlyOnePlayerLeft() {
				g.advanceStepCursor()
				continue
			}
			g.startPending(step)
			g.phase = PhaseDealing
			return nil
		case rules.StepShowdown:
			gr, err := g.runShowdown()
			if err != nil {
				return err
			}
			g.handResult = gr
			g.phase = PhaseComplete
			g.advanceStepCursor()
			return nil
		case rules.StepGrouped:
			g.advanceStepCursor()
		default:
			g.advanceStepCursor()
		}

		if g.onlyOnePlayerLeft() {
			winner := g.lastActivePlayerID()
			gr := showdown.ResolveFoldWin(g.currentPots(), winner)
			g.payOutFoldWin(&gr, winner)
			g.handResult = &gr
			g.phase = PhaseComplete
			return nil
		}
	}
}

func (g *Game) onlyOnePlayerLeft() bool {
	n := 0
	for _, p := range g.Table.ActivePlayers() {
		if !p.Folded {
			n++
		}
	}
	return n <= 1
}

func (g *Game) lastActivePlayerID() string {
	for _, p := range g.Table.ActivePlayers() {
		if !p.Folded {
			return p.ID
		}
	}
	return ""
}

// payOutFoldWin credits the sole remaining player's stack with every
// pot - needed since ResolveFoldWin only produces the result shape, it
// never touches chips itself.
func (g *Game) payOutFoldWin(gr *result.GameResult, winnerID string) {
	p, ok := g.Table.Player(winnerID)
	if !ok {
		return
	}
	p.Stack += gr.TotalPot()
}

// currentPots rebuilds the pot structure from every seated player's
// cumulative contribution this hand (spec §4.6 steps 1-3).
func (g *Game) currentPots() []betting.Pot {
	var contribs []betting.Contribution
	for _, p := range g.Table.OrderedPlayers() {
		contribs = append(contribs, betting.Contribution{PlayerID: p.ID, Total: p.TotalBet, Folded: p.Folded})
	}
	return betting.BuildPots(contribs)
}

// GetValidActions returns the legal action set for playerID under the
// current step (spec §4.6/§6 get_valid_actions). Non-betting steps
// return a small fixed set describing what the step expects.
func (g *Game) GetValidActions(playerID string) ([]betting.ValidAction, error) {
	if g.phase == PhaseComplete || g.phase == PhaseWaiting {
		return nil, ErrNoHandInProgress
	}
	p, ok := g.Table.Player(playerID)
	if !ok {
		return nil, betting.ErrUnknownPlayer
	}
	if g.phase == PhaseBetting && g.round != nil {
		if g.currentActor() != playerID {
			return nil, betting.ErrNotPlayersTurn
		}
		return g.round.ValidActions(p), nil
	}
	if g.phase == PhaseDealing && g.pending != nil {
		if g.currentPendingActor() != playerID {
			return nil, betting.ErrNotPlayersTurn
		}
		return pendingValidActions(g.pending.kind), nil
	}
	return nil, ErrNotExpectingThat
}

func pendingValidActions(kind rules.StepKind) []betting.ValidAction {
	switch kind {
	case rules.StepDiscard:
		return []betting.ValidAction{{Action: betting.Discard, Min: 0, Max: 0}}
	case rules.StepDraw:
		return []betting.ValidAction{{Action: betting.Draw, Min: 0, Max: 0}}
	case rules.StepExpose:
		return []betting.ValidAction{{Action: betting.Expose, Min: 0, Max: 0}}
	case rules.StepPass:
		return []betting.ValidAction{{Action: betting.Pass, Min: 0, Max: 0}}
	case rules.StepSeparate:
		return []betting.ValidAction{{Action: betting.Separate, Min: 0, Max: 0}}
	case rules.StepDeclare:
		return []betting.ValidAction{{Action: betting.Declare, Min: 0, Max: 0}}
	case rules.StepChoose:
		return []betting.ValidAction{{Action: betting.Choose, Min: 0, Max: 0}}
	default:
		return nil
	}
}

// currentActor returns the seat positioned at actIdx, wrapping around
// actOrder - a betting round can require several orbits of the table
// once a raise reopens the action for everyone who already acted.
func (g *Game) currentActor() string {
	if len(g.actOrder) == 0 {
		return ""
	}
	return g.actOrder[g.actIdx%len(g.actOrder)]
}

func (g *Game) currentPendingActor() string {
	if g.pending == nil || g.pending.idx >= len(g.pending.order) {
		return ""
	}
	return g.pending.order[g.pending.idx]
}
