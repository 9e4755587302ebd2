// Package enginepkg wires rules, table, betting, and interpreter into
// the single top-level surface spec §6 names: load_rules, new_game,
// add_player, remove_player, start_hand, get_valid_actions,
// player_action, get_hand_results, get_game_description. Grounded in
// shape on the teacher's internal/game.GameEngine constructor/lifecycle
// split (NewGameEngine wraps a *Table the way Game here wraps an
// *interpreter.Game), generalized since most per-hand state-machine
// logic already lives in package interpreter.
package enginepkg

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/gamedesc"
	"github.com/lox/pokerengine/internal/interpreter"
	"github.com/lox/pokerengine/internal/result"
	"github.com/lox/pokerengine/internal/rules"
	"github.com/lox/pokerengine/internal/table"
)

// LoadRules parses a variant description document (spec §6 load_rules).
func LoadRules(doc []byte) (*rules.Rules, error) {
	return rules.Load(doc)
}

// Game is the process-facing handle a host (CLI, server, simulator)
// drives: seat/unseat players between hands, then start_hand/
// get_valid_actions/player_action/get_hand_results per hand.
type Game struct {
	Rules       *rules.Rules
	Table       *table.Table
	forced      betting.ForcedBetConfig
	bringInRule betting.CardRule
	structure   betting.Structure
	smallBlind  int
	bigBlind    int
	logger      *log.Logger
	rand        deck.Rand

	hand *interpreter.Game
}

// Config collects the stakes/structure/forced-bet settings NewGame
// needs beyond the parsed rules document itself - these are table/host
// concerns (spec §5), not part of the variant description.
type Config struct {
	Structure   betting.Structure
	Forced      betting.ForcedBetConfig
	BringInRule betting.CardRule
	DeckJokers  int
	Logger      *log.Logger
	Rand        deck.Rand // shuffle source; callers own determinism (e.g. seeded for tests)
}

// NewGame creates a table for r's deck variant and returns a Game ready
// for players to be seated (spec §6 new_game).
func NewGame(r *rules.Rules, cfg Config) (*Game, error) {
	variant, err := deckVariant(r.Deck.Type)
	if err != nil {
		return nil, err
	}
	return &Game{
		Rules:       r,
		Table:       table.New(variant, r.Deck.Jokers),
		forced:      cfg.Forced,
		bringInRule: cfg.BringInRule,
		structure:   cfg.Structure,
		smallBlind:  cfg.Forced.SmallBlind,
		bigBlind:    cfg.Forced.BigBlind,
		logger:      cfg.Logger,
		rand:        cfg.Rand,
	}, nil
}

func deckVariant(deckType string) (deck.Variant, error) {
	switch deckType {
	case "", "standard":
		return deck.Standard52, nil
	default:
		return deck.Standard52, fmt.Errorf("enginepkg: unrecognized deck type %q", deckType)
	}
}

// AddPlayer seats a new player (spec §6 add_player).
func (g *Game) AddPlayer(id, displayName string, stack int) error {
	return g.Table.Seat(table.NewPlayer(id, displayName, stack))
}

// RemovePlayer removes a seated player (spec §6 remove_player). It is
// only valid between hands; callers must not call it while a hand is in
// progress.
func (g *Game) RemovePlayer(id string) {
	g.Table.Remove(id)
}

// StartHand begins a new hand, advancing the button from any prior
// hand and running gamePlay until the first point that needs a player
// decision or the hand completes outright (spec §6 start_hand).
func (g *Game) StartHand() error {
	if g.hand != nil && g.Table.ButtonPlayer() != "" {
		g.Table.AdvanceButton()
	}
	g.hand = interpreter.NewGame(g.Rules, g.Table, g.rand, g.forced, g.bringInRule, g.logger)
	return g.hand.StartHand()
}

// GetValidActions returns the legal actions for playerID right now
// (spec §6 get_valid_actions).
func (g *Game) GetValidActions(playerID string) ([]betting.ValidAction, error) {
	if g.hand == nil {
		return nil, fmt.Errorf("enginepkg: no hand in progress")
	}
	return g.hand.GetValidActions(playerID)
}

// PlayerAction applies one player's decision and advances the state
// machine as far as it can go without further input (spec §6
// player_action/next_step - next_step is implicit here, since every
// automatic step already runs to completion inside PlayerAction/
// StartHand before control returns to the caller).
func (g *Game) PlayerAction(playerID string, action betting.ActionKind, amount int) error {
	if g.hand == nil {
		return fmt.Errorf("enginepkg: no hand in progress")
	}
	return g.hand.PlayerAction(playerID, action, amount)
}

// GetHandResults returns the completed hand's result, or nil if the
// hand is still in progress (spec §6 get_hand_results).
func (g *Game) GetHandResults() *result.GameResult {
	if g.hand == nil {
		return nil
	}
	return g.hand.GetHandResult()
}

// GetGameDescription returns the variant's title and subtitle tags
// (spec §6 get_game_description, component L).
func (g *Game) GetGameDescription() (title string, tags []string) {
	return gamedesc.Describe(g.Rules, g.structure, g.smallBlind, g.bigBlind), gamedesc.SubtitleTags(g.Rules)
}
