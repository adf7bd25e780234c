package model

// DiagnosticKind classifies a row-level data-quality issue
type DiagnosticKind string

const (
	DiagnosticUnregisteredBusinessUnit DiagnosticKind = "unregistered_business_unit"
	DiagnosticNonNumericScore          DiagnosticKind = "non_numeric_score"
)

// Diagnostic records a non-fatal issue found while loading one row
type Diagnostic struct {
	Row     int            `json:"row"`
	RiskID  string         `json:"risk_id"`
	Kind    DiagnosticKind `json:"kind"`
	Field   string         `json:"field,omitempty"`
	Value   string         `json:"value,omitempty"`
	Message string         `json:"message"`
}
