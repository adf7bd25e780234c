package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
	"github.com/secmon-lab/raca/pkg/usecase"
)

func TestProject_FirstOccurrenceWins(t *testing.T) {
	ds := loadDataset(t,
		row("AP-P01-R01", "Financial", "Fraud", "Invoice fraud", "5", "5", "3", "3"),
		row("AP-P01-R02", "Financial", "Liquidity", "Late payment", "1", "1", "1", "1"),
		row("AP-P01-R01", "Operational", "People", "Key person", "1", "1", "1", "1"),
	)

	records := usecase.Project(ds)
	gt.Array(t, records).Length(2)
	gt.Value(t, records[0].RiskID).Equal("AP-P01-R01")
	gt.Value(t, records[0].RiskTypes).Equal("Financial")
	gt.Value(t, records[0].Row).Equal(1)
	gt.Value(t, records[1].RiskID).Equal("AP-P01-R02")

	// dataset itself is untouched
	gt.Value(t, ds.Len()).Equal(3)
}

func TestProject_Idempotent(t *testing.T) {
	ds := sampleDataset(t)

	once := usecase.Project(ds)
	twice := usecase.Project(model.NewDataset(ds.Source(), once, nil))
	gt.Value(t, twice).Equal(once)
}

func TestProject_KeepsUnclassified(t *testing.T) {
	records := usecase.Project(sampleDataset(t))

	var found bool
	for _, r := range records {
		if r.RiskID == "ZZ-P09-R01" {
			found = true
			gt.Value(t, r.BusinessUnit).Equal("")
		}
	}
	gt.Bool(t, found).True()
}

func TestTableRows(t *testing.T) {
	rows := usecase.TableRows([]model.RiskRecord{
		{
			RiskID:          "DP-P01-R01",
			RiskDescription: "desc",
			RiskOwner:       "owner",
			RiskTitle:       "title",
			RiskTypes:       "Operational",
			Risk:            "People",
			Level3:          "Key person",
			GrossRisk:       ptr(20),
			NetRisk:         ptr(4),
			BusinessUnit:    "Data Privacy",
		},
		{RiskID: "ZZ-P01-R01"},
	})

	gt.Array(t, rows).Length(2)
	gt.Value(t, rows[0].RiskDescription).Equal("desc")
	gt.Value(t, rows[0].Level3).Equal("Key person")
	gt.Value(t, *rows[0].GrossRisk).Equal(20.0)
	gt.Value(t, rows[0].GrossRating).Equal(types.RatingVeryHigh)
	gt.Value(t, rows[0].NetRating).Equal(types.RatingLow)
	gt.Value(t, rows[1].GrossRating).Equal(types.RatingNone)
}

func TestTable_FilterByBusinessUnit(t *testing.T) {
	ds := sampleDataset(t)

	all := usecase.Table(ds, types.All)
	gt.Array(t, all).Length(6)

	dp := usecase.Table(ds, "Data Privacy")
	gt.Array(t, dp).Length(2)
	for _, r := range dp {
		gt.Value(t, r.BusinessUnit).Equal("Data Privacy")
	}

	none := usecase.Table(ds, "Unknown Unit")
	gt.Bool(t, none != nil).True()
	gt.Array(t, none).Length(0)
}
