package config

import "github.com/secmon-lab/raca/pkg/domain/types"

// BusinessUnit maps a risk identifier prefix code to a display name
type BusinessUnit struct {
	Code types.BusinessUnitCode
	Name string
}

// Column maps a source sheet header to a canonical record field
type Column struct {
	Source string
	Field  types.FieldName
}

// DashboardConfig holds the data configuration of the dashboard
type DashboardConfig struct {
	Title         string
	BusinessUnits []BusinessUnit
	Columns       []Column
}
