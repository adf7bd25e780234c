package usecase

import (
	"context"
	"regexp"

	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
	"github.com/secmon-lab/raca/pkg/utils/logging"
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z]+`)

// PrefixCode returns the leading run of letters of a risk identifier, e.g. "DP" for
// "DP-P01-R01". It is empty when the identifier does not start with a letter.
func PrefixCode(riskID string) types.BusinessUnitCode {
	return types.BusinessUnitCode(prefixPattern.FindString(riskID))
}

// Classify sets the business unit of each record from the prefix of its risk identifier.
// Records whose prefix is not registered keep an empty business unit and yield a diagnostic.
func Classify(ctx context.Context, records []model.RiskRecord, registry *model.BusinessUnitRegistry) []model.Diagnostic {
	logger := logging.From(ctx)
	var diagnostics []model.Diagnostic

	for i := range records {
		record := &records[i]
		code := PrefixCode(record.RiskID)

		name, err := registry.Lookup(code)
		if err != nil {
			record.BusinessUnit = ""
			logger.Warn(model.ErrBusinessUnitNotRegistered.Error(),
				"row", record.Row,
				"risk_id", record.RiskID,
				"code", code,
			)
			diagnostics = append(diagnostics, model.Diagnostic{
				Row:     record.Row,
				RiskID:  record.RiskID,
				Kind:    model.DiagnosticUnregisteredBusinessUnit,
				Field:   types.FieldRiskID.String(),
				Value:   code.String(),
				Message: model.ErrBusinessUnitNotRegistered.Error(),
			})
			continue
		}
		record.BusinessUnit = name
	}

	return diagnostics
}
