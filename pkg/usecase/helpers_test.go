package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/model/config"
	"github.com/secmon-lab/raca/pkg/usecase"
)

type mockSource struct {
	table *model.Table
	err   error
	calls []string
}

func (m *mockSource) Load(ctx context.Context, uri string) (*model.Table, error) {
	m.calls = append(m.calls, uri)
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

var sheetHeaders = []string{
	"Risk ID",
	"Risk(Title)",
	"Risk Owner",
	"Risk Description",
	"Risk Category 1",
	"Risk Category 2",
	"Risk Category 3",
	"I",
	"L",
	"Control ID",
	"Control Owner",
	"I",
	"L",
}

func testConfig() *config.DashboardConfig {
	return &config.DashboardConfig{
		Title: "Test Dashboard",
		BusinessUnits: []config.BusinessUnit{
			{Code: "DP", Name: "Data Privacy"},
			{Code: "AP", Name: "Accounts Payable"},
			{Code: "BP", Name: "British Petroleum"},
			{Code: "CP", Name: "Client Profile"},
		},
		Columns: []config.Column{
			{Source: "Risk ID", Field: "risk_id"},
			{Source: "Risk(Title)", Field: "risk_title"},
			{Source: "Risk Owner", Field: "risk_owner"},
			{Source: "Risk Description", Field: "risk_description"},
			{Source: "Risk Category 1", Field: "risk_types"},
			{Source: "Risk Category 2", Field: "risk"},
			{Source: "Risk Category 3", Field: "level3"},
			{Source: "I", Field: "gross_impact"},
			{Source: "L", Field: "gross_likelihood"},
			{Source: "Control ID", Field: "control_id"},
			{Source: "I.1", Field: "net_impact"},
			{Source: "L.1", Field: "net_likelihood"},
		},
	}
}

// row builds a sheet row in sheetHeaders order
func row(id, l1, l2, l3, gi, gl, ni, nl string) []string {
	return []string{id, "Title of " + id, "Owner", "Description of " + id, l1, l2, l3, gi, gl, "C-" + id, "Control Owner", ni, nl}
}

func loadDataset(t *testing.T, rows ...[]string) *model.Dataset {
	t.Helper()
	uc := usecase.New(&mockSource{table: &model.Table{Headers: sheetHeaders, Rows: rows}},
		usecase.WithDashboardConfig(testConfig()))
	ds, err := uc.LoadDataset(context.Background(), "mem://sheet.xlsx")
	gt.NoError(t, err).Required()
	return ds
}

// sampleDataset is a small register spanning three business units and two risk types
func sampleDataset(t *testing.T) *model.Dataset {
	return loadDataset(t,
		row("DP-P01-R01", "Operational", "People", "Key person", "4", "5", "2", "2"),
		row("DP-P01-R02", "Operational", "Process", "Manual error", "2", "2", "1", "2"),
		row("DP-P01-R02", "Operational", "Process", "Manual error", "2", "2", "1", "2"),
		row("AP-P02-R01", "Financial", "Fraud", "Invoice fraud", "5", "5", "3", "3"),
		row("AP-P02-R02", "Financial", "Liquidity", "Late payment", "3", "3", "", "2"),
		row("CP-P03-R01", "Operational", "People", "Attrition", "3", "4", "2", "3"),
		row("ZZ-P09-R01", "Compliance", "Regulatory", "Licence", "1", "1", "1", "1"),
	)
}

func ptr(v float64) *float64 { return &v }
