package rules

import (
	"encoding/json"
	"fmt"
)

// document is the raw JSON shape the variant description decodes into
// before validation; field names mirror spec §6's wire vocabulary
// directly since this layer's only job is syntax, not semantics.
type document struct {
	Game              string                     `json:"game"`
	Players           struct{ Min, Max int }     `json:"players"`
	Deck              DeckSpec                   `json:"deck"`
	BettingStructures []string                   `json:"bettingStructures"`
	ForcedBets        jForcedBets                `json:"forcedBets"`
	BettingOrder      jBettingOrder              `json:"bettingOrder"`
	GamePlay          []json.RawMessage          `json:"gamePlay"`
	Showdown          jShowdown                  `json:"showdown"`
	NamedBets         map[string]NamedBet        `json:"namedBets"`
}

type jConditionalString struct {
	Static      string `json:"static"`
	Conditional []struct {
		Condition string `json:"condition"`
		Value     string `json:"value"`
	} `json:"conditionalOrders"`
	Default string `json:"default"`
}

func (j jConditionalString) toDomain() ConditionalString {
	cs := ConditionalString{Static: j.Static, Default: j.Default}
	for _, c := range j.Conditional {
		cs.Conditional = append(cs.Conditional, ConditionalCase{Condition: c.Condition, Value: c.Value})
	}
	return cs
}

type jForcedBets struct {
	Style         string              `json:"style"`
	Rule          jConditionalString  `json:"rule"`
	Ante          int                 `json:"ante"`
	SmallBlind    int                 `json:"smallBlind"`
	BigBlind      int                 `json:"bigBlind"`
	DealerBlind   int                 `json:"dealerBlind"`
	BringInAmount int                 `json:"bringInAmount"`
}

type jBettingOrder struct {
	Initial    jConditionalString `json:"initial"`
	Subsequent jConditionalString `json:"subsequent"`
}

type jCardUsage struct {
	HoleCards      json.RawMessage `json:"holeCards"`
	CommunityCards json.RawMessage `json:"communityCards"`
	AnyCards       json.RawMessage `json:"anyCards"`
}

func (j jCardUsage) toDomain() (CardUsage, error) {
	switch {
	case j.HoleCards != nil:
		counts, err := decodeCounts(j.HoleCards)
		return CardUsage{Kind: "holeCards", Counts: counts}, err
	case j.CommunityCards != nil:
		counts, err := decodeCounts(j.CommunityCards)
		return CardUsage{Kind: "communityCards", Counts: counts}, err
	case j.AnyCards != nil:
		counts, err := decodeCounts(j.AnyCards)
		return CardUsage{Kind: "anyCards", Counts: counts}, err
	default:
		return CardUsage{}, ConfigError("rules: bestHand entry has no card usage spec")
	}
}

// decodeCounts accepts either a single integer or a list of integers,
// per spec §6: "holeCards: [2,3] means use exactly 2 or exactly 3".
func decodeCounts(raw json.RawMessage) ([]int, error) {
	var single int
	if err := json.Unmarshal(raw, &single); err == nil {
		return []int{single}, nil
	}
	var list []int
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, ConfigError(fmt.Sprintf("rules: malformed card-count spec: %s", raw))
	}
	return list, nil
}

type jQualifier struct {
	MaxCategoryRank int `json:"maxCategoryRank"`
	MaxOrderedRank  int `json:"maxOrderedRank"`
}

type jWildClause struct {
	Kind string `json:"kind"`
	Rank string `json:"rank"`
}

type jBestHand struct {
	Name           string          `json:"name"`
	EvaluationType string          `json:"evaluationType"`
	jCardUsage
	Qualifier     *jQualifier   `json:"qualifier"`
	Subset        string        `json:"subset"`
	HoleSubset    string        `json:"holeSubset"`
	DefaultAction string        `json:"defaultAction"`
	WildClauses   []jWildClause `json:"wildClauses"`
}

func (j jBestHand) toDomain() (BestHandSpec, error) {
	usage, err := j.jCardUsage.toDomain()
	if err != nil {
		return BestHandSpec{}, err
	}
	if j.EvaluationType == "" {
		return BestHandSpec{}, ConfigError("rules: bestHand entry missing evaluationType")
	}
	spec := BestHandSpec{
		Name:           j.Name,
		EvaluationType: j.EvaluationType,
		CardsRequired:  usage,
		Subset:         j.Subset,
		HoleSubset:     j.HoleSubset,
		DefaultAction:  j.DefaultAction,
	}
	if j.Qualifier != nil {
		spec.Qualifier = &QualifierSpec{MaxCategoryRank: j.Qualifier.MaxCategoryRank, MaxOrderedRank: j.Qualifier.MaxOrderedRank}
	}
	for _, w := range j.WildClauses {
		spec.WildClauses = append(spec.WildClauses, WildClause{Kind: w.Kind, Rank: w.Rank})
	}
	return spec, nil
}

type jShowdown struct {
	RevealOrder     string      `json:"revealOrder"`
	DeclarationMode string      `json:"declarationMode"`
	BestHand        []jBestHand `json:"bestHand"`
	ConditionalHands []struct {
		Condition string      `json:"condition"`
		BestHand  []jBestHand `json:"bestHand"`
	} `json:"conditionalBestHand"`
	DefaultBestHand     []jBestHand `json:"defaultBestHand"`
	GlobalDefaultAction string      `json:"globalDefaultAction"`
}

func fromDocument(doc document) (*Rules, error) {
	if doc.Game == "" {
		return nil, ConfigError("rules: missing required field \"game\"")
	}
	if doc.Players.Min <= 0 || doc.Players.Max < doc.Players.Min {
		return nil, ConfigError("rules: invalid players.min/max")
	}
	if doc.Deck.Type == "" {
		return nil, ConfigError("rules: missing required field \"deck.type\"")
	}
	if len(doc.BettingStructures) == 0 {
		return nil, ConfigError("rules: bettingStructures must list at least one structure")
	}

	steps, err := parseSteps(doc.GamePlay)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ConfigError("rules: gamePlay must contain at least one step")
	}

	bestHand := make([]BestHandSpec, 0, len(doc.Showdown.BestHand))
	for _, b := range doc.Showdown.BestHand {
		spec, err := b.toDomain()
		if err != nil {
			return nil, err
		}
		bestHand = append(bestHand, spec)
	}
	defaultBestHand := make([]BestHandSpec, 0, len(doc.Showdown.DefaultBestHand))
	for _, b := range doc.Showdown.DefaultBestHand {
		spec, err := b.toDomain()
		if err != nil {
			return nil, err
		}
		defaultBestHand = append(defaultBestHand, spec)
	}
	var conditionalHands []ConditionalBestHand
	for _, c := range doc.Showdown.ConditionalHands {
		var specs []BestHandSpec
		for _, b := range c.BestHand {
			spec, err := b.toDomain()
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
		conditionalHands = append(conditionalHands, ConditionalBestHand{Condition: c.Condition, BestHand: specs})
	}
	if len(bestHand) == 0 && len(conditionalHands) == 0 {
		return nil, ConfigError("rules: showdown must declare at least one bestHand entry")
	}

	r := &Rules{
		Game:              doc.Game,
		PlayersMin:        doc.Players.Min,
		PlayersMax:        doc.Players.Max,
		Deck:              doc.Deck,
		BettingStructures: doc.BettingStructures,
		ForcedBets: ForcedBets{
			Style:         doc.ForcedBets.Style,
			Rule:          doc.ForcedBets.Rule.toDomain(),
			Ante:          doc.ForcedBets.Ante,
			SmallBlind:    doc.ForcedBets.SmallBlind,
			BigBlind:      doc.ForcedBets.BigBlind,
			DealerBlind:   doc.ForcedBets.DealerBlind,
			BringInAmount: doc.ForcedBets.BringInAmount,
		},
		BettingOrder: BettingOrder{
			Initial:    doc.BettingOrder.Initial.toDomain(),
			Subsequent: doc.BettingOrder.Subsequent.toDomain(),
		},
		GamePlay: steps,
		Showdown: ShowdownSpec{
			RevealOrder:         doc.Showdown.RevealOrder,
			DeclarationMode:     doc.Showdown.DeclarationMode,
			BestHand:            bestHand,
			ConditionalHands:    conditionalHands,
			DefaultBestHand:     defaultBestHand,
			GlobalDefaultAction: doc.Showdown.GlobalDefaultAction,
		},
		NamedBets: doc.NamedBets,
	}

	switch r.ForcedBets.Style {
	case "blinds", "bring-in", "antes_only":
	default:
		return nil, ConfigError(fmt.Sprintf("rules: unknown forcedBets.style %q", r.ForcedBets.Style))
	}

	if err := validateSubsetReferences(r); err != nil {
		return nil, err
	}

	return r, nil
}

// validateSubsetReferences checks that every subset name the showdown
// config references (`subset`/`holeSubset`) is produced by some
// gamePlay Separate/Deal step - spec §7: "gameplay references an
// invalid subset" is a configuration error caught at load time.
func validateSubsetReferences(r *Rules) error {
	known := map[string]bool{"": true, "default": true}
	for _, s := range r.GamePlay {
		switch s.Kind {
		case StepDeal:
			for _, c := range s.Deal.Cards {
				if c.Subset != "" {
					known[c.Subset] = true
				}
			}
		case StepSeparate:
			for _, n := range s.Separate.SubsetNames {
				known[n] = true
			}
		case StepReplaceCommunity:
			known[s.ReplaceCommunity.Subset] = true
		}
	}
	check := func(name string) error {
		if name != "" && !known[name] {
			return ConfigError(fmt.Sprintf("rules: showdown references undefined subset %q", name))
		}
		return nil
	}
	all := append(append([]BestHandSpec{}, r.Showdown.BestHand...), r.Showdown.DefaultBestHand...)
	for _, c := range r.Showdown.ConditionalHands {
		all = append(all, c.BestHand...)
	}
	for _, b := range all {
		if err := check(b.Subset); err != nil {
			return err
		}
		if err := check(b.HoleSubset); err != nil {
			return err
		}
	}
	return nil
}
