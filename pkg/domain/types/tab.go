package types

import "github.com/m-mizutani/goerr/v2"

// TabID identifies the active dashboard view
type TabID string

const (
	TabOverview TabID = "overview"
	TabTable    TabID = "table"
)

// AllTabs returns all valid tabs in display order
func AllTabs() []TabID {
	return []TabID{
		TabOverview,
		TabTable,
	}
}

// IsValid checks if the tab is known
func (t TabID) IsValid() bool {
	switch t {
	case TabOverview, TabTable:
		return true
	default:
		return false
	}
}

// Normalize returns the tab, treating empty as TabOverview.
func (t TabID) Normalize() TabID {
	if t == "" {
		return TabOverview
	}
	return t
}

// String returns the string representation of the tab
func (t TabID) String() string {
	return string(t)
}

// ParseTabID parses a string into a TabID. Empty input yields TabOverview.
func ParseTabID(s string) (TabID, error) {
	tab := TabID(s).Normalize()
	if !tab.IsValid() {
		return "", goerr.New("invalid tab", goerr.V("tab", s))
	}
	return tab, nil
}
