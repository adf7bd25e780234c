package source

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
)

// Format is the encoding of a dataset file
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat returns the format of a file from its extension
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "unknown file extension", goerr.V("name", name))
	}
}

// ParseOptions configures Parse
type ParseOptions struct {
	// Sheet is the spreadsheet tab to read. Empty means the first tab. Ignored for CSV.
	Sheet string
}

// Parse decodes a dataset file. The first row is the header row.
func Parse(name string, data []byte, opts ParseOptions) (*model.Table, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(data, opts.Sheet)
	case FormatCSV:
		rows, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, goerr.Wrap(ErrEmptySheet, "failed to parse dataset", goerr.V("name", name))
	}

	return &model.Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
