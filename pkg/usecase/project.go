package usecase

import (
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// Project returns the records of the risk table: one record per risk identifier, the first
// occurrence in source order winning. No hierarchy filter is applied.
func Project(ds *model.Dataset) []model.RiskRecord {
	seen := make(map[string]struct{})
	records := []model.RiskRecord{}
	for record := range ds.All() {
		if _, ok := seen[record.RiskID]; ok {
			continue
		}
		seen[record.RiskID] = struct{}{}
		records = append(records, record)
	}
	return records
}

// TableRows converts records into the display rows of the risk table
func TableRows(records []model.RiskRecord) []model.TableRow {
	rows := make([]model.TableRow, len(records))
	for i, r := range records {
		rows[i] = model.TableRow{
			RiskDescription: r.RiskDescription,
			RiskID:          r.RiskID,
			RiskOwner:       r.RiskOwner,
			RiskTitle:       r.RiskTitle,
			RiskTypes:       r.RiskTypes,
			Risk:            r.Risk,
			Level3:          r.Level3,
			GrossRisk:       r.GrossRisk,
			NetRisk:         r.NetRisk,
			BusinessUnit:    r.BusinessUnit,
			GrossRating:     types.RatingOf(r.GrossRisk),
			NetRating:       types.RatingOf(r.NetRisk),
		}
	}
	return rows
}

// FilterRows keeps the rows of one business unit. types.All keeps every row.
func FilterRows(rows []model.TableRow, businessUnit string) []model.TableRow {
	if businessUnit == "" || businessUnit == types.All {
		return rows
	}
	filtered := []model.TableRow{}
	for _, row := range rows {
		if row.BusinessUnit == businessUnit {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Table returns the deduplicated risk table rows of one business unit
func Table(ds *model.Dataset, businessUnit string) []model.TableRow {
	return FilterRows(TableRows(Project(ds)), businessUnit)
}
