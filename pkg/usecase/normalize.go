package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/model/config"
	"github.com/secmon-lab/raca/pkg/domain/types"
	"github.com/secmon-lab/raca/pkg/utils/logging"
)

type columnBinding struct {
	index int
	field types.FieldName
}

// Normalize maps the raw sheet onto canonical risk records. Unmapped columns are dropped,
// impact and likelihood cells are coerced to numbers and the gross and net scores are derived.
// Row-level problems are returned as diagnostics; only a sheet with no mapped column fails.
func Normalize(ctx context.Context, table *model.Table, columns []config.Column) ([]model.RiskRecord, []model.Diagnostic, error) {
	if table == nil {
		return nil, nil, goerr.Wrap(ErrNoMappedColumns, "table is nil")
	}

	mapping := make(map[string]types.FieldName, len(columns))
	for _, c := range columns {
		mapping[strings.TrimSpace(c.Source)] = c.Field
	}

	var bindings []columnBinding
	for i, header := range disambiguateHeaders(table.Headers) {
		if field, ok := mapping[header]; ok {
			bindings = append(bindings, columnBinding{index: i, field: field})
		}
	}
	if len(bindings) == 0 {
		return nil, nil, goerr.Wrap(ErrNoMappedColumns, "failed to map sheet headers",
			goerr.V(HeadersKey, table.Headers))
	}

	logger := logging.From(ctx)
	records := make([]model.RiskRecord, 0, len(table.Rows))
	var diagnostics []model.Diagnostic

	for i, row := range table.Rows {
		if isBlankRow(row) {
			continue
		}

		record := model.RiskRecord{Row: i + 1}
		var rowDiags []model.Diagnostic

		for _, b := range bindings {
			var value string
			if b.index < len(row) {
				value = strings.TrimSpace(row[b.index])
			}

			if !b.field.IsNumeric() {
				record.SetText(b.field, value)
				continue
			}

			score, ok := parseScore(value)
			if !ok {
				rowDiags = append(rowDiags, model.Diagnostic{
					Row:     record.Row,
					Kind:    model.DiagnosticNonNumericScore,
					Field:   b.field.String(),
					Value:   value,
					Message: "score is not numeric",
				})
			}
			record.SetScore(b.field, score)
		}

		// risk_id may come after the score columns
		for _, d := range rowDiags {
			d.RiskID = record.RiskID
			logger.Warn(d.Message,
				"row", d.Row,
				"risk_id", d.RiskID,
				"field", d.Field,
				"value", d.Value,
			)
			diagnostics = append(diagnostics, d)
		}

		record.DeriveScores()
		records = append(records, record)
	}

	return records, diagnostics, nil
}

// disambiguateHeaders trims headers and suffixes repeated names with ".1", ".2" and so on,
// so the second "I" and "L" columns of the sheet become "I.1" and "L.1".
func disambiguateHeaders(headers []string) []string {
	result := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	counts := make(map[string]int, len(headers))

	for i, h := range headers {
		name := strings.TrimSpace(h)
		candidate := name
		for used[candidate] {
			counts[name]++
			candidate = name + "." + strconv.Itoa(counts[name])
		}
		used[candidate] = true
		result[i] = candidate
	}
	return result
}

// parseScore returns nil for an empty cell and reports false for a non-numeric one.
func parseScore(value string) (*float64, bool) {
	if value == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
