package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/usecase"
)

func TestNormalize(t *testing.T) {
	table := &model.Table{
		Headers: sheetHeaders,
		Rows: [][]string{
			row("DP-P01-R01", "Operational", "People", "Key person", "4", "5", "2", " 3 "),
			row(" AP-P02-R01 ", "Financial", "Fraud", "Invoice fraud", "", "5", "3", "3"),
		},
	}

	records, diags, err := usecase.Normalize(context.Background(), table, testConfig().Columns)
	gt.NoError(t, err).Required()
	gt.Array(t, diags).Length(0)
	gt.Array(t, records).Length(2)

	r := records[0]
	gt.Value(t, r.Row).Equal(1)
	gt.Value(t, r.RiskID).Equal("DP-P01-R01")
	gt.Value(t, r.RiskTitle).Equal("Title of DP-P01-R01")
	gt.Value(t, r.RiskTypes).Equal("Operational")
	gt.Value(t, r.Risk).Equal("People")
	gt.Value(t, r.Level3).Equal("Key person")
	gt.Value(t, r.ControlID).Equal("C-DP-P01-R01")
	gt.Value(t, *r.GrossImpact).Equal(4.0)
	gt.Value(t, *r.GrossLikelihood).Equal(5.0)
	gt.Value(t, *r.NetImpact).Equal(2.0)
	gt.Value(t, *r.NetLikelihood).Equal(3.0)
	gt.Value(t, *r.GrossRisk).Equal(20.0)
	gt.Value(t, *r.NetRisk).Equal(6.0)

	// unmapped "Control Owner" column is dropped
	gt.Value(t, r.ControlOwner).Equal("")

	r = records[1]
	gt.Value(t, r.RiskID).Equal("AP-P02-R01")
	gt.Value(t, r.GrossImpact).Nil()
	gt.Value(t, r.GrossRisk).Nil()
	gt.Value(t, *r.NetRisk).Equal(9.0)
}

func TestNormalize_NonNumericScore(t *testing.T) {
	table := &model.Table{
		Headers: sheetHeaders,
		Rows: [][]string{
			row("DP-P01-R01", "Operational", "People", "Key person", "high", "5", "2", "2"),
		},
	}

	records, diags, err := usecase.Normalize(context.Background(), table, testConfig().Columns)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1)
	gt.Value(t, records[0].GrossImpact).Nil()
	gt.Value(t, records[0].GrossRisk).Nil()
	gt.Value(t, *records[0].NetRisk).Equal(4.0)

	gt.Array(t, diags).Length(1)
	gt.Value(t, diags[0].Kind).Equal(model.DiagnosticNonNumericScore)
	gt.Value(t, diags[0].Row).Equal(1)
	gt.Value(t, diags[0].RiskID).Equal("DP-P01-R01")
	gt.Value(t, diags[0].Field).Equal("gross_impact")
	gt.Value(t, diags[0].Value).Equal("high")
}

func TestNormalize_SkipsBlankAndPadsShortRows(t *testing.T) {
	table := &model.Table{
		Headers: sheetHeaders,
		Rows: [][]string{
			{"", " ", ""},
			{"CP-P03-R01", "Short row"},
		},
	}

	records, diags, err := usecase.Normalize(context.Background(), table, testConfig().Columns)
	gt.NoError(t, err).Required()
	gt.Array(t, diags).Length(0)
	gt.Array(t, records).Length(1)
	gt.Value(t, records[0].Row).Equal(2)
	gt.Value(t, records[0].RiskID).Equal("CP-P03-R01")
	gt.Value(t, records[0].RiskTitle).Equal("Short row")
	gt.Value(t, records[0].NetRisk).Nil()
}

func TestNormalize_NoMappedColumns(t *testing.T) {
	table := &model.Table{
		Headers: []string{"Foo", "Bar"},
		Rows:    [][]string{{"1", "2"}},
	}

	_, _, err := usecase.Normalize(context.Background(), table, testConfig().Columns)
	gt.Value(t, err).NotNil()
	gt.Error(t, err).Is(usecase.ErrNoMappedColumns)

	_, _, err = usecase.Normalize(context.Background(), nil, testConfig().Columns)
	gt.Error(t, err).Is(usecase.ErrNoMappedColumns)
}

func TestDisambiguateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "repeated impact and likelihood",
			headers: []string{"Risk ID", "I", "L", "Control ID", "I", "L"},
			want:    []string{"Risk ID", "I", "L", "Control ID", "I.1", "L.1"},
		},
		{
			name:    "third occurrence",
			headers: []string{"I", "I", "I"},
			want:    []string{"I", "I.1", "I.2"},
		},
		{
			name:    "surrounding whitespace",
			headers: []string{" I", "I "},
			want:    []string{"I", "I.1"},
		},
		{
			name:    "suffix already taken",
			headers: []string{"I", "I.1", "I"},
			want:    []string{"I", "I.1", "I.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.DisambiguateHeaders(tt.headers)).Equal(tt.want)
		})
	}
}

func TestParseScore(t *testing.T) {
	v, ok := usecase.ParseScore("3.5")
	gt.Bool(t, ok).True()
	gt.Value(t, *v).Equal(3.5)

	v, ok = usecase.ParseScore("")
	gt.Bool(t, ok).True()
	gt.Value(t, v).Nil()

	for _, bad := range []string{"n/a", "NaN", "Inf", "4 out of 5"} {
		v, ok = usecase.ParseScore(bad)
		gt.Bool(t, ok).False()
		gt.Value(t, v).Nil()
	}
}
