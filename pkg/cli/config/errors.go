package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound          = goerr.New("configuration file not found")
	ErrInvalidConfig           = goerr.New("invalid configuration")
	ErrDuplicateBusinessUnit   = goerr.New("duplicate business unit code")
	ErrInvalidBusinessUnitCode = goerr.New("invalid business unit code")
	ErrDuplicateColumnSource   = goerr.New("duplicate column source header")
	ErrDuplicateColumnField    = goerr.New("duplicate column field")
	ErrInvalidColumnField      = goerr.New("invalid column field")
	ErrMissingName             = goerr.New("name is required")
	ErrMissingRiskIDColumn     = goerr.New("risk_id column mapping is required")
	ErrInvalidLogLevel         = goerr.New("invalid log level")
	ErrInvalidLogFormat        = goerr.New("invalid log format")
	ErrDatasetRequired         = goerr.New("dataset URI is required")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	CodeKey        = "code"
	SourceKey      = "source"
	FieldKey       = "field"
	UnitIndexKey   = "unit_index"
	ColumnIndexKey = "column_index"
)
