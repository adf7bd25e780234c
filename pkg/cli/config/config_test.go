package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/cli/config"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

const minimalConfig = `
title = "Minimal"

[[business_unit]]
code = "DP"
name = "Data Privacy"

[[column]]
source = "Risk ID"
field = "risk_id"
`

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "minimal configuration",
			content: minimalConfig,
		},
		{
			name:    "config file not found",
			content: "", // Won't create the file
			wantErr: config.ErrConfigNotFound,
		},
		{
			name:    "broken TOML",
			content: `title = "unterminated`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "duplicate business unit code (case-insensitive)",
			content: `
[[business_unit]]
code = "DP"
name = "Data Privacy"

[[business_unit]]
code = "dp"
name = "Duplicate"

[[column]]
source = "Risk ID"
field = "risk_id"
`,
			wantErr: config.ErrDuplicateBusinessUnit,
		},
		{
			name: "invalid business unit code",
			content: `
[[business_unit]]
code = "D1"
name = "Digits"

[[column]]
source = "Risk ID"
field = "risk_id"
`,
			wantErr: config.ErrInvalidBusinessUnitCode,
		},
		{
			name: "missing business unit name",
			content: `
[[business_unit]]
code = "DP"

[[column]]
source = "Risk ID"
field = "risk_id"
`,
			wantErr: config.ErrMissingName,
		},
		{
			name: "unknown record field",
			content: `
[[column]]
source = "Risk ID"
field = "risk_identifier"
`,
			wantErr: config.ErrInvalidColumnField,
		},
		{
			name: "empty column source",
			content: `
[[column]]
source = "  "
field = "risk_id"
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "duplicate column source",
			content: `
[[column]]
source = "Risk ID"
field = "risk_id"

[[column]]
source = "Risk ID "
field = "risk_title"
`,
			wantErr: config.ErrDuplicateColumnSource,
		},
		{
			name: "duplicate column field",
			content: `
[[column]]
source = "Risk ID"
field = "risk_id"

[[column]]
source = "ID"
field = "risk_id"
`,
			wantErr: config.ErrDuplicateColumnField,
		},
		{
			name: "missing risk_id mapping",
			content: `
[[column]]
source = "Risk Title"
field = "risk_title"
`,
			wantErr: config.ErrMissingRiskIDColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if tt.content != "" {
				gt.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600)).Required()
			}

			file, err := config.LoadFile(path)
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
				gt.Value(t, file).Nil()
				return
			}

			gt.NoError(t, err).Required()
			gt.Value(t, file).NotNil()
		})
	}
}

func TestLoadDefault(t *testing.T) {
	file, err := config.LoadFile("")
	gt.NoError(t, err).Required()

	gt.Value(t, file.Title).Equal("Risk and Controls Assessments")
	gt.Array(t, file.BusinessUnits).Length(4)
	gt.Array(t, file.Columns).Length(len(types.AllFieldNames()))

	cfg := file.ToDomainDashboardConfig()
	sources := make(map[types.FieldName]string)
	for _, col := range cfg.Columns {
		sources[col.Field] = col.Source
	}
	gt.Value(t, sources[types.FieldGrossImpact]).Equal("I")
	gt.Value(t, sources[types.FieldGrossLikelihood]).Equal("L")
	gt.Value(t, sources[types.FieldNetImpact]).Equal("I.1")
	gt.Value(t, sources[types.FieldNetLikelihood]).Equal("L.1")

	names := make(map[types.BusinessUnitCode]string)
	for _, unit := range cfg.BusinessUnits {
		names[unit.Code] = unit.Name
	}
	gt.Value(t, names["DP"]).Equal("Data Privacy")
	gt.Value(t, names["AP"]).Equal("Accounts Payable")
	gt.Value(t, names["BP"]).Equal("British Petroleum")
	gt.Value(t, names["CP"]).Equal("Client Profile")
}

func TestAppConfigConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600)).Required()

	t.Run("title from file", func(t *testing.T) {
		cfg, err := config.NewAppConfigForTest(path, "").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Title).Equal("Minimal")
		gt.Array(t, cfg.BusinessUnits).Length(1)
		gt.Array(t, cfg.Columns).Length(1)
	})

	t.Run("title overridden by flag", func(t *testing.T) {
		cfg, err := config.NewAppConfigForTest(path, "Quarterly Review").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Title).Equal("Quarterly Review")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewAppConfigForTest(filepath.Join(t.TempDir(), "none.toml"), "").Configure()
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("console to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "raca.log")
		closer, err := config.NewLoggerForTest("debug", "console", path).Configure()
		gt.NoError(t, err).Required()
		closer()

		_, err = os.Stat(path)
		gt.NoError(t, err)
	})

	t.Run("json to stderr", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("warn", "json", "stderr").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "yaml", "stdout").Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogFormat)
	})
}

func TestDatasetValidate(t *testing.T) {
	gt.Error(t, config.NewDatasetForTest("", "", 0).Validate()).Is(config.ErrDatasetRequired)
	gt.NoError(t, config.NewDatasetForTest("risks.xlsx", "", 0).Validate())

	ds := config.NewDatasetForTest("gs://bucket/risks.xlsx", "Register", 0)
	gt.Value(t, ds.URI()).Equal("gs://bucket/risks.xlsx")
	gt.Value(t, ds.Configure()).NotNil()
}
