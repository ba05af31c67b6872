package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Stage is the phase a hand of Texas Hold'em is in
type Stage int

// stages, in the order a hand moves through them
const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
	StageFinished
)

// String returns the string representation of the stage
func (s Stage) String() string {
	switch s {
	case StagePreflop:
		return "preflop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	case StageFinished:
		return "finished"
	default:
		panic(fmt.Sprintf("unknown stage: %d", int(s)))
	}
}

// StageFromString parses a stage by name
func StageFromString(name string) (Stage, error) {
	for s := StagePreflop; s <= StageFinished; s++ {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, newError("%s is not a valid stage", name)
}

// MarshalJSON encodes the stage by name
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a stage from its name
func (s *Stage) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	stage, err := StageFromString(name)
	if err != nil {
		return err
	}

	*s = stage
	return nil
}

// isBetting returns true if the stage accepts betting actions
func (s Stage) isBetting() bool {
	return s >= StagePreflop && s <= StageRiver
}

// next returns the stage that follows s
func (s Stage) next() Stage {
	if s >= StageFinished {
		return StageFinished
	}

	return s + 1
}
