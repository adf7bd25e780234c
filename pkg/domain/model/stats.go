package model

// UnitStats is the aggregate of one business unit
type UnitStats struct {
	BusinessUnit string  `json:"business_unit"`
	RiskCount    int     `json:"risk_count"`
	AvgGrossRisk float64 `json:"avg_gross_risk"`
	AvgNetRisk   float64 `json:"avg_net_risk"`
}

// RiskCountPoint is one slice of the risk count bar and pie charts
type RiskCountPoint struct {
	BusinessUnit string `json:"business_unit"`
	RiskCount    int    `json:"risk_count"`
}

// GrossNetPoint is one group of the gross-versus-net comparison chart
type GrossNetPoint struct {
	BusinessUnit string  `json:"business_unit"`
	AvgGrossRisk float64 `json:"avg_gross_risk"`
	AvgNetRisk   float64 `json:"avg_net_risk"`
}
