package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/service/source"
	"github.com/secmon-lab/raca/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Dataset holds the flags locating the risk register sheet
type Dataset struct {
	uri            string
	sheet          string
	loadTimeout    time.Duration
	gcsCredentials string
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Aliases:     []string{"d"},
			Usage:       "Risk register sheet: local path, file:// or gs://bucket/object (.xlsx or .csv)",
			Category:    "Dataset",
			Destination: &x.uri,
			Sources:     cli.EnvVars("RACA_DATASET"),
		},
		&cli.StringFlag{
			Name:        "sheet",
			Usage:       "Spreadsheet tab to read (first tab if omitted)",
			Category:    "Dataset",
			Destination: &x.sheet,
			Sources:     cli.EnvVars("RACA_SHEET"),
		},
		&cli.DurationFlag{
			Name:        "load-timeout",
			Usage:       "Timeout of fetching and parsing the dataset",
			Category:    "Dataset",
			Value:       usecase.DefaultLoadTimeout,
			Destination: &x.loadTimeout,
			Sources:     cli.EnvVars("RACA_LOAD_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Service account key file for gs:// datasets (application default credentials if omitted)",
			Category:    "Dataset",
			Destination: &x.gcsCredentials,
			Sources:     cli.EnvVars("RACA_GCS_CREDENTIALS"),
		},
	}
}

func (x Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("uri", x.uri),
		slog.String("sheet", x.sheet),
		slog.Duration("load_timeout", x.loadTimeout),
		slog.Bool("gcs_credentials", x.gcsCredentials != ""),
	)
}

// URI returns the dataset location
func (x *Dataset) URI() string {
	return x.uri
}

// LoadTimeout returns the timeout of the load step
func (x *Dataset) LoadTimeout() time.Duration {
	return x.loadTimeout
}

// Validate checks that a dataset is given
func (x *Dataset) Validate() error {
	if x.uri == "" {
		return goerr.Wrap(ErrDatasetRequired, "--dataset is not set")
	}
	return nil
}

// Configure creates the source service reading the dataset
func (x *Dataset) Configure() *source.Service {
	var opts []source.Option
	if x.sheet != "" {
		opts = append(opts, source.WithSheet(x.sheet))
	}
	if x.gcsCredentials != "" {
		opts = append(opts, source.WithGCSCredentialsFile(x.gcsCredentials))
	}
	return source.New(opts...)
}
