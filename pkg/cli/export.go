package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/cli/config"
	"github.com/secmon-lab/raca/pkg/domain/types"
	"github.com/secmon-lab/raca/pkg/usecase"
	"github.com/secmon-lab/raca/pkg/utils/logging"
	"github.com/secmon-lab/raca/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var output string
	var businessUnit string
	var appCfg config.AppConfig
	var datasetCfg config.Dataset

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "CSV output path, '-' for stdout",
			Value:       "-",
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "business-unit",
			Aliases:     []string{"b"},
			Usage:       "Export only the risks of this business unit",
			Value:       types.All,
			Destination: &businessUnit,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Write the deduplicated risk table as CSV",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := datasetCfg.Validate(); err != nil {
				return err
			}

			uc, src, err := newUseCases(&appCfg, &datasetCfg)
			if err != nil {
				return err
			}
			defer src.Close(ctx)

			ds, err := uc.LoadDataset(ctx, datasetCfg.URI())
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}

			rows := usecase.Table(ds, businessUnit)

			var w io.Writer = c.Root().Writer
			if output != "-" {
				f, err := os.Create(filepath.Clean(output))
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			if err := usecase.WriteTableCSV(w, rows); err != nil {
				return goerr.Wrap(err, "failed to export risk table", goerr.V("path", output))
			}

			logging.Default().Info("Risk table exported",
				"rows", len(rows),
				"business_unit", businessUnit,
				"output", output,
			)
			return nil
		},
	}
}
