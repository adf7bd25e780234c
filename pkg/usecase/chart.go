package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

const (
	colorGross = "#00DEFF"
	colorNet   = "#0082FF"

	axisBusinessFunction = "Business Function"
)

// Charts builds the four overview charts of a state. All of them are projections of a
// single aggregate of the dataset.
func Charts(ds *model.Dataset, state model.DashboardState) []model.Chart {
	stats := Aggregate(ds)
	charts := make([]model.Chart, 0, len(types.AllCharts()))
	for _, id := range types.AllCharts() {
		charts = append(charts, buildChart(id, stats, state))
	}
	return charts
}

// BuildChart builds one overview chart of a state
func BuildChart(id types.ChartID, ds *model.Dataset, state model.DashboardState) (*model.Chart, error) {
	if !id.IsValid() {
		return nil, goerr.New("unknown chart", goerr.V("chart", id))
	}
	chart := buildChart(id, Aggregate(ds), state)
	return &chart, nil
}

func buildChart(id types.ChartID, stats []model.UnitStats, state model.DashboardState) model.Chart {
	switch id {
	case types.ChartRiskCount:
		if state.RiskTypes == types.All || state.RiskTypes == "" {
			return riskCountBar(stats)
		}
		return grossRiskLine(stats)
	case types.ChartGrossVsNet:
		return grossVsNetBar(stats)
	case types.ChartRiskCountShare:
		return riskCountPie(stats)
	case types.ChartNetRiskShare:
		return netRiskPie(stats)
	default:
		return model.Chart{ID: id}
	}
}

func riskCountPoints(stats []model.UnitStats) []model.ChartPoint {
	counts := RiskCounts(stats)
	points := make([]model.ChartPoint, len(counts))
	for i, c := range counts {
		points[i] = model.ChartPoint{Label: c.BusinessUnit, Value: float64(c.RiskCount)}
	}
	return points
}

func riskCountBar(stats []model.UnitStats) model.Chart {
	return model.Chart{
		ID:     types.ChartRiskCount,
		Kind:   types.ChartKindBar,
		Title:  "Total Number of Risks by Business Function",
		XLabel: axisBusinessFunction,
		YLabel: "Number of Risks",
		Series: []model.ChartSeries{
			{Name: "Risks", Color: colorGross, Points: riskCountPoints(stats)},
		},
	}
}

// grossRiskLine replaces the count bars once a risk type is selected. The hierarchy
// selection does not narrow it.
func grossRiskLine(stats []model.UnitStats) model.Chart {
	pairs := GrossNetPairs(stats)
	points := make([]model.ChartPoint, len(pairs))
	for i, p := range pairs {
		points[i] = model.ChartPoint{Label: p.BusinessUnit, Value: p.AvgGrossRisk}
	}
	return model.Chart{
		ID:     types.ChartRiskCount,
		Kind:   types.ChartKindLine,
		Title:  "Gross Risk by Business Function",
		XLabel: axisBusinessFunction,
		YLabel: "Gross Risk Score",
		Series: []model.ChartSeries{
			{Name: "Gross Risk", Color: colorGross, Points: points},
		},
	}
}

func grossVsNetBar(stats []model.UnitStats) model.Chart {
	pairs := GrossNetPairs(stats)
	gross := make([]model.ChartPoint, len(pairs))
	net := make([]model.ChartPoint, len(pairs))
	for i, p := range pairs {
		gross[i] = model.ChartPoint{Label: p.BusinessUnit, Value: p.AvgGrossRisk}
		net[i] = model.ChartPoint{Label: p.BusinessUnit, Value: p.AvgNetRisk}
	}
	return model.Chart{
		ID:     types.ChartGrossVsNet,
		Kind:   types.ChartKindGroupedBar,
		Title:  "Comparison of Gross and Net Risk by Business Function",
		XLabel: axisBusinessFunction,
		YLabel: "Risk Score",
		Series: []model.ChartSeries{
			{Name: "Gross Risk", Color: colorGross, Points: gross},
			{Name: "Net Risk", Color: colorNet, Points: net},
		},
	}
}

func riskCountPie(stats []model.UnitStats) model.Chart {
	return model.Chart{
		ID:    types.ChartRiskCountShare,
		Kind:  types.ChartKindPie,
		Title: "Total Number of Risks by Business Function",
		Series: []model.ChartSeries{
			{Name: "Risks", Points: riskCountPoints(stats)},
		},
	}
}

func netRiskPie(stats []model.UnitStats) model.Chart {
	pairs := GrossNetPairs(stats)
	points := make([]model.ChartPoint, len(pairs))
	for i, p := range pairs {
		points[i] = model.ChartPoint{Label: p.BusinessUnit, Value: p.AvgNetRisk}
	}
	return model.Chart{
		ID:    types.ChartNetRiskShare,
		Kind:  types.ChartKindPie,
		Title: "Net Risk Score by Business Function",
		Series: []model.ChartSeries{
			{Name: "Net Risk", Points: points},
		},
	}
}
