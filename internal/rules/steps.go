package rules

import (
	"encoding/json"
	"fmt"
)

// rawStep mirrors every possible step key so we can detect which one is
// present (spec §6: "tagged by the first recognized key"), deferring the
// real per-kind decode to a second pass.
type rawStep struct {
	Name string `json:"name"`

	Bet              json.RawMessage `json:"bet"`
	Deal             json.RawMessage `json:"deal"`
	Draw             json.RawMessage `json:"draw"`
	Discard          json.RawMessage `json:"discard"`
	Expose           json.RawMessage `json:"expose"`
	Pass             json.RawMessage `json:"pass"`
	Separate         json.RawMessage `json:"separate"`
	Declare          json.RawMessage `json:"declare"`
	Choose           json.RawMessage `json:"choose"`
	ReplaceCommunity json.RawMessage `json:"replace_community"`
	Remove           json.RawMessage `json:"remove"`
	RollDie          json.RawMessage `json:"roll_die"`
	Showdown         json.RawMessage `json:"showdown"`
	GroupedActions   json.RawMessage `json:"groupedActions"`
}

// keyOrder is the precedence spec §6 establishes for step-kind
// detection: "tagged by the first recognized key" - so this order
// matters when (malformed) input sets more than one.
var keyOrder = []StepKind{
	StepBet, StepDeal, StepDraw, StepDiscard, StepExpose, StepPass,
	StepSeparate, StepDeclare, StepChoose, StepReplaceCommunity,
	StepRemove, StepRollDie, StepShowdown, StepGrouped,
}

func parseSteps(raws []json.RawMessage) ([]Step, error) {
	steps := make([]Step, 0, len(raws))
	for i, raw := range raws {
		s, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("rules: gamePlay[%d]: %w", i, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(raw json.RawMessage) (Step, error) {
	var rs rawStep
	if err := json.Unmarshal(raw, &rs); err != nil {
		return Step{}, ConfigError(fmt.Sprintf("malformed step: %v", err))
	}

	present := map[StepKind]json.RawMessage{
		StepBet: rs.Bet, StepDeal: rs.Deal, StepDraw: rs.Draw,
		StepDiscard: rs.Discard, StepExpose: rs.Expose, StepPass: rs.Pass,
		StepSeparate: rs.Separate, StepDeclare: rs.Declare, StepChoose: rs.Choose,
		StepReplaceCommunity: rs.ReplaceCommunity, StepRemove: rs.Remove,
		StepRollDie: rs.RollDie, StepShowdown: rs.Showdown, StepGrouped: rs.GroupedActions,
	}

	var kind StepKind
	var body json.RawMessage
	for _, k := range keyOrder {
		if present[k] != nil {
			kind = k
			body = present[k]
			break
		}
	}
	if kind == "" {
		return Step{}, ConfigError("step has no recognized kind key")
	}

	step := Step{Name: rs.Name, Kind: kind}
	switch kind {
	case StepBet:
		var b struct {
			Size string `json:"size"`
		}
		if err := json.Unmarshal(body, &b); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed bet step: %v", err))
		}
		step.Bet = &BetStep{BetSize: b.Size}

	case StepDeal:
		var d struct {
			Target string `json:"target"`
			Cards  []struct {
				Number           int    `json:"number"`
				State            string `json:"state"`
				Subset           string `json:"subset"`
				PreserveState    bool   `json:"preserve_state"`
				ConditionalState string `json:"conditional_state"`
			} `json:"cards"`
		}
		if err := json.Unmarshal(body, &d); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed deal step: %v", err))
		}
		ds := &DealStep{Target: d.Target}
		for _, c := range d.Cards {
			ds.Cards = append(ds.Cards, DealCardDescriptor{
				Number:           c.Number,
				FaceUp:           c.State == "face up",
				Subset:           c.Subset,
				PreserveState:    c.PreserveState,
				ConditionalState: c.ConditionalState,
			})
		}
		step.Deal = ds

	case StepDraw, StepDiscard, StepExpose, StepPass:
		var d struct {
			Min int `json:"min"`
			Max int `json:"max"`
		}
		if err := json.Unmarshal(body, &d); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed %s step: %v", kind, err))
		}
		ds := &DrawStep{Min: d.Min, Max: d.Max}
		switch kind {
		case StepDraw:
			step.Draw = ds
		case StepDiscard:
			step.Discard = ds
		case StepExpose:
			step.Expose = ds
		case StepPass:
			step.Pass = ds
		}

	case StepSeparate:
		var s struct {
			SubsetNames []string `json:"subsetNames"`
		}
		if err := json.Unmarshal(body, &s); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed separate step: %v", err))
		}
		step.Separate = &SeparateStep{SubsetNames: s.SubsetNames}

	case StepDeclare:
		var d struct {
			Options []string `json:"options"`
		}
		if err := json.Unmarshal(body, &d); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed declare step: %v", err))
		}
		step.Declare = &DeclareStep{Options: d.Options}

	case StepChoose:
		var c struct {
			Options []string `json:"options"`
		}
		if err := json.Unmarshal(body, &c); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed choose step: %v", err))
		}
		step.Choose = &ChooseStep{Options: c.Options}

	case StepReplaceCommunity:
		var r struct {
			Subset string `json:"subset"`
			Number int    `json:"number"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed replace_community step: %v", err))
		}
		step.ReplaceCommunity = &ReplaceCommunityStep{Subset: r.Subset, Number: r.Number}

	case StepRemove:
		var r struct {
			Subset string `json:"subset"`
			Number int    `json:"number"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed remove step: %v", err))
		}
		step.Remove = &RemoveStep{Subset: r.Subset, Number: r.Number}

	case StepRollDie:
		step.RollDie = &RollDieStep{}

	case StepShowdown:
		step.Showdown = &ShowdownStep{}

	case StepGrouped:
		var raws []json.RawMessage
		if err := json.Unmarshal(body, &raws); err != nil {
			return Step{}, ConfigError(fmt.Sprintf("malformed groupedActions step: %v", err))
		}
		sub, err := parseSteps(raws)
		if err != nil {
			return Step{}, err
		}
		step.GroupedActions = sub
	}

	return step, nil
}
