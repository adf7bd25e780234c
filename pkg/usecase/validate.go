package usecase

import (
	"context"

	"github.com/secmon-lab/raca/pkg/domain/model"
)

// ValidationIssue represents a single data-quality issue found in a dataset
type ValidationIssue struct {
	Row      int
	RiskID   string
	Kind     model.DiagnosticKind
	Field    string
	Message  string
	Expected string
	Actual   string
}

// ValidationResult holds the results of dataset validation
type ValidationResult struct {
	Source       string
	SnapshotID   model.SnapshotID
	Records      int
	Unclassified int
	Units        []model.UnitStats
	Issues       []ValidationIssue
}

// HasIssues returns true if there are any validation issues
func (r *ValidationResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// AddIssue adds a validation issue to the result
func (r *ValidationResult) AddIssue(issue ValidationIssue) {
	r.Issues = append(r.Issues, issue)
}

// ValidateDataset loads the dataset at uri and reports its diagnostics together with the
// per business unit statistics. It fails only when the dataset cannot be loaded at all.
func (uc *UseCases) ValidateDataset(ctx context.Context, uri string) (*ValidationResult, error) {
	ds, err := uc.LoadDataset(ctx, uri)
	if err != nil {
		return nil, err
	}
	return Inspect(ds), nil
}

// Inspect converts the diagnostics of a loaded dataset into a validation result
func Inspect(ds *model.Dataset) *ValidationResult {
	result := &ValidationResult{
		Source:     ds.Source(),
		SnapshotID: ds.ID(),
		Records:    ds.Len(),
		Units:      Aggregate(ds),
	}

	for record := range ds.All() {
		if record.BusinessUnit == "" {
			result.Unclassified++
		}
	}

	for _, d := range ds.Diagnostics() {
		result.AddIssue(ValidationIssue{
			Row:      d.Row,
			RiskID:   d.RiskID,
			Kind:     d.Kind,
			Field:    d.Field,
			Message:  d.Message,
			Expected: expectedValue(d.Kind),
			Actual:   d.Value,
		})
	}

	return result
}

func expectedValue(kind model.DiagnosticKind) string {
	switch kind {
	case model.DiagnosticNonNumericScore:
		return "number or empty cell"
	case model.DiagnosticUnregisteredBusinessUnit:
		return "registered business unit code"
	default:
		return ""
	}
}
