package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/raca/pkg/domain/model/config"
	"github.com/secmon-lab/raca/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

//go:embed default.toml
var defaultConfig []byte

// File represents the dashboard configuration file
type File struct {
	Title         string         `toml:"title"`
	BusinessUnits []BusinessUnit `toml:"business_unit"`
	Columns       []Column       `toml:"column"`
}

// BusinessUnit represents a prefix code to business unit mapping
type BusinessUnit struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

// Validate checks if the BusinessUnit is valid
func (b *BusinessUnit) Validate() error {
	if err := types.BusinessUnitCode(b.Code).Validate(); err != nil {
		return goerr.Wrap(ErrInvalidBusinessUnitCode, err.Error(), goerr.V(CodeKey, b.Code))
	}
	if strings.TrimSpace(b.Name) == "" {
		return goerr.Wrap(ErrMissingName, "business unit name is required", goerr.V(CodeKey, b.Code))
	}
	return nil
}

// Column represents a sheet header to record field mapping
type Column struct {
	Source string `toml:"source"`
	Field  string `toml:"field"`
}

// Validate checks if the Column is valid
func (c *Column) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return goerr.Wrap(ErrInvalidConfig, "column source header is required", goerr.V(FieldKey, c.Field))
	}
	if !types.FieldName(c.Field).IsValid() {
		return goerr.Wrap(ErrInvalidColumnField, "unknown record field",
			goerr.V(SourceKey, c.Source),
			goerr.V(FieldKey, c.Field))
	}
	return nil
}

// Validate checks if the File is valid
func (f *File) Validate() error {
	codes := make(map[string]bool)
	for i, unit := range f.BusinessUnits {
		if err := unit.Validate(); err != nil {
			return goerr.Wrap(err, "invalid business unit", goerr.V(UnitIndexKey, i))
		}
		key := types.BusinessUnitCode(unit.Code).Key()
		if codes[key] {
			return goerr.Wrap(ErrDuplicateBusinessUnit, "business unit code is already defined",
				goerr.V(CodeKey, unit.Code))
		}
		codes[key] = true
	}

	sources := make(map[string]bool)
	fields := make(map[string]bool)
	for i, col := range f.Columns {
		if err := col.Validate(); err != nil {
			return goerr.Wrap(err, "invalid column", goerr.V(ColumnIndexKey, i))
		}
		source := strings.TrimSpace(col.Source)
		if sources[source] {
			return goerr.Wrap(ErrDuplicateColumnSource, "column source is already mapped",
				goerr.V(SourceKey, col.Source))
		}
		sources[source] = true
		if fields[col.Field] {
			return goerr.Wrap(ErrDuplicateColumnField, "record field is already mapped",
				goerr.V(FieldKey, col.Field))
		}
		fields[col.Field] = true
	}

	if !fields[types.FieldRiskID.String()] {
		return goerr.Wrap(ErrMissingRiskIDColumn, "column mapping has no risk_id")
	}

	return nil
}

// ParseFile decodes and validates a TOML configuration
func ParseFile(data []byte) (*File, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, err.Error())
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed")
	}

	return &file, nil
}

// LoadFile loads the configuration from a TOML file. An empty path loads the
// built-in default.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return ParseFile(defaultConfig)
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	file, err := ParseFile(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config", goerr.V(ConfigPathKey, path))
	}
	return file, nil
}

// ToDomainDashboardConfig converts File to domain DashboardConfig
func (f *File) ToDomainDashboardConfig() *domainConfig.DashboardConfig {
	units := make([]domainConfig.BusinessUnit, len(f.BusinessUnits))
	for i, unit := range f.BusinessUnits {
		units[i] = domainConfig.BusinessUnit{
			Code: types.BusinessUnitCode(unit.Code),
			Name: unit.Name,
		}
	}

	columns := make([]domainConfig.Column, len(f.Columns))
	for i, col := range f.Columns {
		columns[i] = domainConfig.Column{
			Source: col.Source,
			Field:  types.FieldName(col.Field),
		}
	}

	return &domainConfig.DashboardConfig{
		Title:         f.Title,
		BusinessUnits: units,
		Columns:       columns,
	}
}

// AppConfig holds the CLI flags of the dashboard configuration
type AppConfig struct {
	path  string
	title string
}

func (x *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration of business units and column mapping (built-in default if omitted)",
			Category:    "Dashboard",
			Destination: &x.path,
			Sources:     cli.EnvVars("RACA_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Dashboard title, overrides the title of the configuration file",
			Category:    "Dashboard",
			Destination: &x.title,
			Sources:     cli.EnvVars("RACA_TITLE"),
		},
	}
}

func (x AppConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.path),
		slog.String("title", x.title),
	)
}

// Configure loads the configuration file and applies flag overrides
func (x *AppConfig) Configure() (*domainConfig.DashboardConfig, error) {
	file, err := LoadFile(x.path)
	if err != nil {
		return nil, err
	}

	cfg := file.ToDomainDashboardConfig()
	if x.title != "" {
		cfg.Title = x.title
	}
	return cfg, nil
}
