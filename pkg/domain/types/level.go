package types

import "github.com/m-mizutani/goerr/v2"

// All is the selection sentinel meaning "no constraint" at any filter level.
const All = "All"

// Level identifies one tier of the risk category hierarchy.
type Level string

const (
	LevelRiskTypes Level = "risk_types"
	LevelRisk      Level = "risk"
	LevelLevel3    Level = "level3"
)

// AllLevels returns the hierarchy from the top tier down.
func AllLevels() []Level {
	return []Level{
		LevelRiskTypes,
		LevelRisk,
		LevelLevel3,
	}
}

// IsValid checks if the level is one of the three hierarchy tiers
func (l Level) IsValid() bool {
	switch l {
	case LevelRiskTypes,
		LevelRisk,
		LevelLevel3:
		return true
	default:
		return false
	}
}

// Parent returns the tier above l. The top tier has no parent.
func (l Level) Parent() (Level, bool) {
	switch l {
	case LevelRisk:
		return LevelRiskTypes, true
	case LevelLevel3:
		return LevelRisk, true
	default:
		return "", false
	}
}

// Child returns the tier below l. level3 is terminal.
func (l Level) Child() (Level, bool) {
	switch l {
	case LevelRiskTypes:
		return LevelRisk, true
	case LevelRisk:
		return LevelLevel3, true
	default:
		return "", false
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", goerr.New("invalid hierarchy level", goerr.V("level", s))
	}
	return level, nil
}
