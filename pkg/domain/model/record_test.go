package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

func ptr(v float64) *float64 { return &v }

func TestRiskRecord_SetText(t *testing.T) {
	var r model.RiskRecord

	for _, f := range types.AllFieldNames() {
		if f.IsNumeric() {
			gt.Bool(t, r.SetText(f, "x")).False()
			continue
		}
		gt.Bool(t, r.SetText(f, "value of "+f.String())).True()
		gt.Value(t, r.Text(f)).Equal("value of " + f.String())
	}

	gt.Bool(t, r.SetText("gross_risk", "x")).False()
	gt.Value(t, r.RiskID).Equal("value of risk_id")
	gt.Value(t, r.Level3).Equal("value of level3")
}

func TestRiskRecord_SetScore(t *testing.T) {
	var r model.RiskRecord
	gt.Bool(t, r.SetScore(types.FieldGrossImpact, ptr(4))).True()
	gt.Bool(t, r.SetScore(types.FieldGrossLikelihood, ptr(5))).True()
	gt.Bool(t, r.SetScore(types.FieldNetImpact, ptr(2))).True()
	gt.Bool(t, r.SetScore(types.FieldNetLikelihood, ptr(3))).True()
	gt.Bool(t, r.SetScore(types.FieldRiskOwner, ptr(1))).False()

	r.DeriveScores()
	gt.Value(t, *r.GrossRisk).Equal(20.0)
	gt.Value(t, *r.NetRisk).Equal(6.0)
}

func TestRiskRecord_DeriveScores_MissingFactor(t *testing.T) {
	r := model.RiskRecord{
		GrossImpact:   ptr(4),
		NetImpact:     ptr(2),
		NetLikelihood: ptr(2),
	}
	r.DeriveScores()
	gt.Value(t, r.GrossRisk).Nil()
	gt.Value(t, *r.NetRisk).Equal(4.0)
}

func TestRiskRecord_LevelValue(t *testing.T) {
	r := model.RiskRecord{RiskTypes: "Operational", Risk: "People", Level3: "Key person"}
	gt.Value(t, r.LevelValue(types.LevelRiskTypes)).Equal("Operational")
	gt.Value(t, r.LevelValue(types.LevelRisk)).Equal("People")
	gt.Value(t, r.LevelValue(types.LevelLevel3)).Equal("Key person")
	gt.Value(t, r.LevelValue("unknown")).Equal("")
}
