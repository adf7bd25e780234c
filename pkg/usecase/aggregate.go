package usecase

import (
	"slices"
	"strings"

	"github.com/secmon-lab/raca/pkg/domain/model"
)

type unitAccumulator struct {
	riskIDs  map[string]struct{}
	grossSum float64
	netSum   float64
}

// Aggregate computes per business unit statistics over the whole dataset. Records without
// a business unit are excluded. RiskCount is the number of distinct non-empty risk
// identifiers; the averages divide the sum of every present score of the unit, repeated
// identifiers included, by RiskCount. Units with no identifier are omitted.
// The result is sorted by business unit name.
func Aggregate(ds *model.Dataset) []model.UnitStats {
	units := make(map[string]*unitAccumulator)

	for record := range ds.All() {
		if record.BusinessUnit == "" {
			continue
		}
		acc, ok := units[record.BusinessUnit]
		if !ok {
			acc = &unitAccumulator{riskIDs: make(map[string]struct{})}
			units[record.BusinessUnit] = acc
		}
		if record.RiskID != "" {
			acc.riskIDs[record.RiskID] = struct{}{}
		}
		if record.GrossRisk != nil {
			acc.grossSum += *record.GrossRisk
		}
		if record.NetRisk != nil {
			acc.netSum += *record.NetRisk
		}
	}

	stats := make([]model.UnitStats, 0, len(units))
	for name, acc := range units {
		count := len(acc.riskIDs)
		if count == 0 {
			continue
		}
		stats = append(stats, model.UnitStats{
			BusinessUnit: name,
			RiskCount:    count,
			AvgGrossRisk: acc.grossSum / float64(count),
			AvgNetRisk:   acc.netSum / float64(count),
		})
	}

	slices.SortFunc(stats, func(a, b model.UnitStats) int {
		return strings.Compare(a.BusinessUnit, b.BusinessUnit)
	})
	return stats
}

// RiskCounts projects the risk count of each unit
func RiskCounts(stats []model.UnitStats) []model.RiskCountPoint {
	points := make([]model.RiskCountPoint, len(stats))
	for i, s := range stats {
		points[i] = model.RiskCountPoint{
			BusinessUnit: s.BusinessUnit,
			RiskCount:    s.RiskCount,
		}
	}
	return points
}

// GrossNetPairs projects the average gross and net risk of each unit
func GrossNetPairs(stats []model.UnitStats) []model.GrossNetPoint {
	points := make([]model.GrossNetPoint, len(stats))
	for i, s := range stats {
		points[i] = model.GrossNetPoint{
			BusinessUnit: s.BusinessUnit,
			AvgGrossRisk: s.AvgGrossRisk,
			AvgNetRisk:   s.AvgNetRisk,
		}
	}
	return points
}
