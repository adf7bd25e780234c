package model

import "github.com/secmon-lab/raca/pkg/domain/types"

// RiskRecord is one row of the risk and controls assessment sheet after normalization.
// Records are built once at load and never modified afterwards.
type RiskRecord struct {
	// Row is the 1-based position in the source sheet, header excluded
	Row int `json:"row"`

	ProcessTitle       string `json:"process_title"`
	ProcessDescription string `json:"process_description"`

	RiskID          string `json:"risk_id"`
	RiskOwner       string `json:"risk_owner"`
	RiskTitle       string `json:"risk_title"`
	RiskDescription string `json:"risk_description"`
	RiskTypes       string `json:"risk_types"`
	Risk            string `json:"risk"`
	Level3          string `json:"level3"`
	AssociatedKRIs  string `json:"associated_kris"`

	GrossImpact     *float64 `json:"gross_impact"`
	GrossLikelihood *float64 `json:"gross_likelihood"`
	NetImpact       *float64 `json:"net_impact"`
	NetLikelihood   *float64 `json:"net_likelihood"`

	ControlID          string `json:"control_id"`
	ControlOwner       string `json:"control_owner"`
	ControlTitle       string `json:"control_title"`
	ControlDescription string `json:"control_description"`
	ControlActivity    string `json:"control_activity"`
	ControlType        string `json:"control_type"`
	ControlFrequency   string `json:"control_frequency"`
	DEOE               string `json:"de_oe"`
	DEOECommentary     string `json:"de_oe_commentary"`

	NetRiskAssessmentCommentary string `json:"net_risk_assesment_commentary"`
	RiskDecision                string `json:"risk_decision"`
	IssueDescription            string `json:"issue_description"`

	ActionDescription string `json:"action_description"`
	ActionOwner       string `json:"action_owner"`
	ActionDueDate     string `json:"action_due_date"`
	CompletionDate    string `json:"completion_date"`
	ActionID          string `json:"action_id"`

	// Derived at load
	GrossRisk    *float64 `json:"gross_risk"`
	NetRisk      *float64 `json:"net_risk"`
	BusinessUnit string   `json:"business_unit,omitempty"`
}

// SetText assigns a descriptive field by its canonical name. It reports false for
// numeric or unknown fields.
func (r *RiskRecord) SetText(field types.FieldName, value string) bool {
	if p := r.textField(field); p != nil {
		*p = value
		return true
	}
	return false
}

// SetScore assigns an impact or likelihood field. It reports false for non-numeric fields.
func (r *RiskRecord) SetScore(field types.FieldName, value *float64) bool {
	switch field {
	case types.FieldGrossImpact:
		r.GrossImpact = value
	case types.FieldGrossLikelihood:
		r.GrossLikelihood = value
	case types.FieldNetImpact:
		r.NetImpact = value
	case types.FieldNetLikelihood:
		r.NetLikelihood = value
	default:
		return false
	}
	return true
}

// Text returns a descriptive field by its canonical name, or "" for numeric or unknown fields.
func (r *RiskRecord) Text(field types.FieldName) string {
	if p := r.textField(field); p != nil {
		return *p
	}
	return ""
}

// LevelValue returns the category of the record at a hierarchy tier
func (r *RiskRecord) LevelValue(level types.Level) string {
	switch level {
	case types.LevelRiskTypes:
		return r.RiskTypes
	case types.LevelRisk:
		return r.Risk
	case types.LevelLevel3:
		return r.Level3
	default:
		return ""
	}
}

// DeriveScores recomputes GrossRisk and NetRisk from their impact and likelihood pairs.
func (r *RiskRecord) DeriveScores() {
	r.GrossRisk = product(r.GrossImpact, r.GrossLikelihood)
	r.NetRisk = product(r.NetImpact, r.NetLikelihood)
}

func product(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := *a * *b
	return &v
}

func (r *RiskRecord) textField(field types.FieldName) *string {
	switch field {
	case types.FieldProcessTitle:
		return &r.ProcessTitle
	case types.FieldProcessDescription:
		return &r.ProcessDescription
	case types.FieldRiskID:
		return &r.RiskID
	case types.FieldRiskOwner:
		return &r.RiskOwner
	case types.FieldRiskTitle:
		return &r.RiskTitle
	case types.FieldRiskDescription:
		return &r.RiskDescription
	case types.FieldRiskTypes:
		return &r.RiskTypes
	case types.FieldRisk:
		return &r.Risk
	case types.FieldLevel3:
		return &r.Level3
	case types.FieldAssociatedKRIs:
		return &r.AssociatedKRIs
	case types.FieldControlID:
		return &r.ControlID
	case types.FieldControlOwner:
		return &r.ControlOwner
	case types.FieldControlTitle:
		return &r.ControlTitle
	case types.FieldControlDescription:
		return &r.ControlDescription
	case types.FieldControlActivity:
		return &r.ControlActivity
	case types.FieldControlType:
		return &r.ControlType
	case types.FieldControlFrequency:
		return &r.ControlFrequency
	case types.FieldDEOE:
		return &r.DEOE
	case types.FieldDEOECommentary:
		return &r.DEOECommentary
	case types.FieldNetRiskAssessmentComment:
		return &r.NetRiskAssessmentCommentary
	case types.FieldRiskDecision:
		return &r.RiskDecision
	case types.FieldIssueDescription:
		return &r.IssueDescription
	case types.FieldActionDescription:
		return &r.ActionDescription
	case types.FieldActionOwner:
		return &r.ActionOwner
	case types.FieldActionDueDate:
		return &r.ActionDueDate
	case types.FieldCompletionDate:
		return &r.CompletionDate
	case types.FieldActionID:
		return &r.ActionID
	default:
		return nil
	}
}
