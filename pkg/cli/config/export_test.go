package config

import "time"

// NewAppConfigForTest creates an AppConfig for testing purposes
func NewAppConfigForTest(path, title string) *AppConfig {
	return &AppConfig{path: path, title: title}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewDatasetForTest creates a Dataset config for testing purposes
func NewDatasetForTest(uri, sheet string, loadTimeout time.Duration) *Dataset {
	return &Dataset{uri: uri, sheet: sheet, loadTimeout: loadTimeout}
}
