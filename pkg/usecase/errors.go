package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Load errors
	ErrNoMappedColumns = errors.New("no column of the sheet matches the column mapping")
	ErrEmptyDatasetURI = errors.New("dataset URI is empty")

	// Dashboard errors
	ErrDatasetNotLoaded = errors.New("dataset is not loaded")
)

// Context keys for error values
const (
	DatasetURIKey = "dataset_uri"
	HeadersKey    = "headers"
)
