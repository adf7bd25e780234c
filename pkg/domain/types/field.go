package types

// FieldName is the canonical name of a risk record column
type FieldName string

const (
	FieldProcessTitle             FieldName = "process_title"
	FieldProcessDescription       FieldName = "process_description"
	FieldRiskID                   FieldName = "risk_id"
	FieldRiskOwner                FieldName = "risk_owner"
	FieldRiskTitle                FieldName = "risk_title"
	FieldRiskDescription          FieldName = "risk_description"
	FieldRiskTypes                FieldName = "risk_types"
	FieldRisk                     FieldName = "risk"
	FieldLevel3                   FieldName = "level3"
	FieldAssociatedKRIs           FieldName = "associated_kris"
	FieldGrossImpact              FieldName = "gross_impact"
	FieldGrossLikelihood          FieldName = "gross_likelihood"
	FieldControlID                FieldName = "control_id"
	FieldControlOwner             FieldName = "control_owner"
	FieldControlTitle             FieldName = "control_title"
	FieldControlDescription       FieldName = "control_description"
	FieldControlActivity          FieldName = "control_activity"
	FieldControlType              FieldName = "control_type"
	FieldControlFrequency         FieldName = "control_frequency"
	FieldDEOE                     FieldName = "de_oe"
	FieldDEOECommentary           FieldName = "de_oe_commentary"
	FieldNetImpact                FieldName = "net_impact"
	FieldNetLikelihood            FieldName = "net_likelihood"
	FieldNetRiskAssessmentComment FieldName = "net_risk_assesment_commentary"
	FieldRiskDecision             FieldName = "risk_decision"
	FieldIssueDescription         FieldName = "issue_description"
	FieldActionDescription        FieldName = "action_description"
	FieldActionOwner              FieldName = "action_owner"
	FieldActionDueDate            FieldName = "action_due_date"
	FieldCompletionDate           FieldName = "completion_date"
	FieldActionID                 FieldName = "action_id"
)

// AllFieldNames returns every canonical source field in sheet order
func AllFieldNames() []FieldName {
	return []FieldName{
		FieldProcessTitle,
		FieldProcessDescription,
		FieldRiskID,
		FieldRiskOwner,
		FieldRiskTitle,
		FieldRiskDescription,
		FieldRiskTypes,
		FieldRisk,
		FieldLevel3,
		FieldAssociatedKRIs,
		FieldGrossImpact,
		FieldGrossLikelihood,
		FieldControlID,
		FieldControlOwner,
		FieldControlTitle,
		FieldControlDescription,
		FieldControlActivity,
		FieldControlType,
		FieldControlFrequency,
		FieldDEOE,
		FieldDEOECommentary,
		FieldNetImpact,
		FieldNetLikelihood,
		FieldNetRiskAssessmentComment,
		FieldRiskDecision,
		FieldIssueDescription,
		FieldActionDescription,
		FieldActionOwner,
		FieldActionDueDate,
		FieldCompletionDate,
		FieldActionID,
	}
}

// IsValid checks if the field is a canonical source field
func (f FieldName) IsValid() bool {
	for _, name := range AllFieldNames() {
		if f == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the field holds an impact or likelihood score
func (f FieldName) IsNumeric() bool {
	switch f {
	case FieldGrossImpact,
		FieldGrossLikelihood,
		FieldNetImpact,
		FieldNetLikelihood:
		return true
	default:
		return false
	}
}

// String returns the string representation of the field name
func (f FieldName) String() string {
	return string(f)
}
