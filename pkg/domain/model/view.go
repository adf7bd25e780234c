package model

import "github.com/secmon-lab/raca/pkg/domain/types"

// OptionSet is the cascaded option list of one hierarchy selector
type OptionSet struct {
	Level    types.Level `json:"level"`
	Parent   string      `json:"parent,omitempty"`
	Selected string      `json:"selected"`
	Options  []string    `json:"options"`
}

// Visibility tells the UI which blocks to show for a state
type Visibility struct {
	Hierarchy           bool `json:"hierarchy"`
	BusinessUnit        bool `json:"business_unit"`
	BusinessUnitEnabled bool `json:"business_unit_enabled"`
	Legend              bool `json:"legend"`
}

// ChartPoint is one labelled value of a chart series
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []ChartPoint `json:"points"`
}

// Chart is the render-ready payload of one overview chart
type Chart struct {
	ID     types.ChartID   `json:"id"`
	Kind   types.ChartKind `json:"kind"`
	Title  string          `json:"title"`
	XLabel string          `json:"x_label,omitempty"`
	YLabel string          `json:"y_label,omitempty"`
	Series []ChartSeries   `json:"series"`
}

// IsEmpty reports whether the chart has no points to draw
func (c *Chart) IsEmpty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// TableRow is one row of the risk table
type TableRow struct {
	RiskDescription string       `json:"risk_description"`
	RiskID          string       `json:"risk_id"`
	RiskOwner       string       `json:"risk_owner"`
	RiskTitle       string       `json:"risk_title"`
	RiskTypes       string       `json:"risk_types"`
	Risk            string       `json:"risk"`
	Level3          string       `json:"level3"`
	GrossRisk       *float64     `json:"gross_risk"`
	NetRisk         *float64     `json:"net_risk"`
	BusinessUnit    string       `json:"business_unit,omitempty"`
	GrossRating     types.Rating `json:"gross_rating,omitempty"`
	NetRating       types.Rating `json:"net_rating,omitempty"`
}

// DashboardView is the full render of a state over a dataset
type DashboardView struct {
	Title         string         `json:"title"`
	Snapshot      Snapshot       `json:"snapshot"`
	State         DashboardState `json:"state"`
	Visibility    Visibility     `json:"visibility"`
	RiskTypes     OptionSet      `json:"risk_types"`
	Risk          OptionSet      `json:"risk"`
	Level3        OptionSet      `json:"level3"`
	BusinessUnits []string       `json:"business_units"`
	Charts        []Chart        `json:"charts,omitempty"`
	Table         []TableRow     `json:"table,omitempty"`
}
