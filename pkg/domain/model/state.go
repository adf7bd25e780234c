package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// DashboardState is the complete filter and navigation state of one dashboard session.
// Every string selection is either a concrete value or types.All.
type DashboardState struct {
	RiskTypes    string      `json:"risk_types"`
	Risk         string      `json:"risk"`
	Level3       string      `json:"level3"`
	BusinessUnit string      `json:"business_unit"`
	Tab          types.TabID `json:"tab"`
}

// NewDashboardState returns the initial state: nothing selected, overview tab.
func NewDashboardState() DashboardState {
	return DashboardState{
		RiskTypes:    types.All,
		Risk:         types.All,
		Level3:       types.All,
		BusinessUnit: types.All,
		Tab:          types.TabOverview,
	}
}

// Normalize fills empty selections with types.All and an empty tab with the overview.
func (s DashboardState) Normalize() DashboardState {
	orAll := func(v string) string {
		if v == "" {
			return types.All
		}
		return v
	}
	return DashboardState{
		RiskTypes:    orAll(s.RiskTypes),
		Risk:         orAll(s.Risk),
		Level3:       orAll(s.Level3),
		BusinessUnit: orAll(s.BusinessUnit),
		Tab:          s.Tab.Normalize(),
	}
}

// Selection returns the selected value at a hierarchy level
func (s DashboardState) Selection(level types.Level) string {
	switch level {
	case types.LevelRiskTypes:
		return s.RiskTypes
	case types.LevelRisk:
		return s.Risk
	case types.LevelLevel3:
		return s.Level3
	default:
		return types.All
	}
}

// WithSelection returns a copy of s with the value at level replaced
func (s DashboardState) WithSelection(level types.Level, value string) DashboardState {
	switch level {
	case types.LevelRiskTypes:
		s.RiskTypes = value
	case types.LevelRisk:
		s.Risk = value
	case types.LevelLevel3:
		s.Level3 = value
	}
	return s
}

// HierarchyVisible reports whether the level 2 and level 3 selectors are shown
func (s DashboardState) HierarchyVisible() bool {
	return s.RiskTypes != types.All
}

// EventType is a discrete UI interaction
type EventType string

const (
	EventSelectRiskTypes    EventType = "select_risk_types"
	EventSelectRisk         EventType = "select_risk"
	EventSelectLevel3       EventType = "select_level3"
	EventSelectBusinessUnit EventType = "select_business_unit"
	EventSelectTab          EventType = "select_tab"
)

// Level returns the hierarchy level a selection event targets
func (e EventType) Level() (types.Level, bool) {
	switch e {
	case EventSelectRiskTypes:
		return types.LevelRiskTypes, true
	case EventSelectRisk:
		return types.LevelRisk, true
	case EventSelectLevel3:
		return types.LevelLevel3, true
	default:
		return "", false
	}
}

// Event is one UI interaction with its selected value
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value"`
}

// ErrInvalidEvent is returned for unknown event types or values
var ErrInvalidEvent = goerr.New("invalid dashboard event")

// Validate checks the event type and, for tab events, the value
func (e Event) Validate() error {
	switch e.Type {
	case EventSelectRiskTypes, EventSelectRisk, EventSelectLevel3, EventSelectBusinessUnit:
		return nil
	case EventSelectTab:
		if _, err := types.ParseTabID(e.Value); err != nil {
			return goerr.Wrap(ErrInvalidEvent, "invalid tab", goerr.V("tab", e.Value))
		}
		return nil
	default:
		return goerr.Wrap(ErrInvalidEvent, "unknown event type", goerr.V("type", e.Type))
	}
}
