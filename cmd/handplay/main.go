// Command handplay is a small example consumer of package enginepkg: it
// loads a variant description file, seats a handful of "first legal
// action" bots, plays one hand to completion, and prints the result.
// Not part of the core engine - mirrors the teacher's cmd/pokerforbots
// kong-based command tree as the external-collaborator surface spec §1
// describes.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerengine/internal/betting"
	"github.com/lox/pokerengine/internal/enginepkg"
)

var version = "dev"

// CLI is the top-level command tree.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play one hand with first-legal-action bots"`
}

// PlayCmd loads a variant description and plays a single hand.
type PlayCmd struct {
	Rules      string `arg:"" help:"Path to a variant description JSON file"`
	Players    string `default:"p1,p2" help:"Comma-separated player ids"`
	Stack      int    `default:"200" help:"Starting stack per player"`
	SmallBlind int    `default:"1" help:"Small blind / ante amount"`
	BigBlind   int    `default:"2" help:"Big blind amount"`
	Seed       int64  `default:"1" help:"Deck shuffle seed"`
}

func (c *PlayCmd) Run() error {
	logger := log.New(os.Stderr)

	doc, err := os.ReadFile(c.Rules)
	if err != nil {
		return fmt.Errorf("handplay: reading %s: %w", c.Rules, err)
	}
	r, err := enginepkg.LoadRules(doc)
	if err != nil {
		return fmt.Errorf("handplay: loading rules: %w", err)
	}

	forced := betting.ForcedBetConfig{SmallBlind: c.SmallBlind, BigBlind: c.BigBlind}
	if r.ForcedBets.Style == "bring-in" {
		forced = betting.ForcedBetConfig{Ante: c.SmallBlind, UsesBringIn: true, BringInAmount: c.BigBlind}
	}

	g, err := enginepkg.NewGame(r, enginepkg.Config{
		Structure:   firstStructure(r.BettingStructures),
		Forced:      forced,
		BringInRule: betting.LowCard,
		Logger:      logger,
		Rand:        rand.New(rand.NewSource(c.Seed)),
	})
	if err != nil {
		return err
	}

	ids := strings.Split(c.Players, ",")
	for _, id := range ids {
		if err := g.AddPlayer(id, id, c.Stack); err != nil {
			return fmt.Errorf("handplay: seating %s: %w", id, err)
		}
	}

	title, tags := g.GetGameDescription()
	logger.Info("starting hand", "game", title, "tags", strings.Join(tags, ", "))

	if err := g.StartHand(); err != nil {
		return fmt.Errorf("handplay: starting hand: %w", err)
	}

	for g.GetHandResults() == nil {
		actor, valid, err := firstActionableSeat(g, ids)
		if err != nil {
			return err
		}
		decision := valid[0]
		for _, va := range valid {
			if va.Action == betting.Check || va.Action == betting.Call {
				decision = va
				break
			}
		}
		logger.Debug("player action", "player", actor, "action", decision.Action, "amount", decision.Min)
		if err := g.PlayerAction(actor, decision.Action, decision.Min); err != nil {
			return fmt.Errorf("handplay: applying action for %s: %w", actor, err)
		}
	}

	gr := g.GetHandResults()
	logger.Info("hand complete", "totalPot", gr.TotalPot(), "winners", gr.Winners())
	return nil
}

// firstActionableSeat finds whichever seated player currently has a
// legal action, since enginepkg.Game doesn't expose "whose turn is it"
// directly - a host only ever needs to try its own seated ids.
func firstActionableSeat(g *enginepkg.Game, ids []string) (string, []betting.ValidAction, error) {
	for _, id := range ids {
		valid, err := g.GetValidActions(id)
		if err == nil && len(valid) > 0 {
			return id, valid, nil
		}
	}
	return "", nil, fmt.Errorf("handplay: no seated player has a legal action")
}

func firstStructure(structures []string) betting.Structure {
	if len(structures) == 0 {
		return betting.NoLimit
	}
	switch structures[0] {
	case "Limit":
		return betting.Limit
	case "Pot Limit":
		return betting.PotLimit
	default:
		return betting.NoLimit
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handplay"),
		kong.Description("Play a single hand of a variant description against first-legal-action bots"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
