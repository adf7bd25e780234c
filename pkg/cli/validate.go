package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/cli/config"
	"github.com/secmon-lab/raca/pkg/usecase"
	"github.com/secmon-lab/raca/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentValidations = 4

// ErrValidationIssues is returned in strict mode when any dataset has diagnostics
var ErrValidationIssues = goerr.New("dataset validation found issues")

func cmdValidate() *cli.Command {
	var strict bool
	var appCfg config.AppConfig
	var datasetCfg config.Dataset

	var flags []cli.Flag
	flags = append(flags, &cli.BoolFlag{
		Name:        "strict",
		Usage:       "Fail when any dataset has row-level issues",
		Sources:     cli.EnvVars("RACA_STRICT"),
		Destination: &strict,
	})
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate the configuration and report row-level issues of datasets",
		ArgsUsage: "[dataset ...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			var uris []string
			if datasetCfg.URI() != "" {
				uris = append(uris, datasetCfg.URI())
			}
			uris = append(uris, c.Args().Slice()...)
			if len(uris) == 0 {
				return goerr.Wrap(config.ErrDatasetRequired, "no dataset to validate")
			}

			uc, src, err := newUseCases(&appCfg, &datasetCfg)
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}
			defer src.Close(ctx)

			logger.Info("Configuration validation passed",
				"business_unit_count", len(uc.BusinessUnits()),
				"dataset_count", len(uris),
			)

			// Each dataset is loaded into its own snapshot
			results := make([]*usecase.ValidationResult, len(uris))
			eg, egCtx := errgroup.WithContext(ctx)
			eg.SetLimit(maxConcurrentValidations)
			for i, uri := range uris {
				eg.Go(func() error {
					result, err := uc.ValidateDataset(egCtx, uri)
					if err != nil {
						return goerr.Wrap(err, "dataset validation failed", goerr.V(usecase.DatasetURIKey, uri))
					}
					results[i] = result
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			issues := 0
			for _, result := range results {
				printValidationResult(c.Root().Writer, result)
				issues += len(result.Issues)
			}

			if issues > 0 {
				logger.Warn("Dataset validation found issues", "issue_count", issues, "strict", strict)
				if strict {
					return goerr.Wrap(ErrValidationIssues, "strict validation failed", goerr.V("issue_count", issues))
				}
				return nil
			}

			logger.Info("Dataset validation passed")
			return nil
		},
	}
}

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	labelColor = color.New(color.FgCyan)
	faintColor = color.New(color.Faint)
)

func printValidationResult(w io.Writer, result *usecase.ValidationResult) {
	status := okColor.Sprint("OK")
	if result.HasIssues() {
		status = warnColor.Sprintf("%d issue(s)", len(result.Issues))
	}

	fmt.Fprintf(w, "%s  %s\n", labelColor.Sprint(result.Source), status)
	fmt.Fprintf(w, "  %s records=%d unclassified=%d\n",
		faintColor.Sprint(result.SnapshotID), result.Records, result.Unclassified)

	for _, unit := range result.Units {
		fmt.Fprintf(w, "  %-24s risks=%-4d avg_gross=%-8.2f avg_net=%.2f\n",
			unit.BusinessUnit, unit.RiskCount, unit.AvgGrossRisk, unit.AvgNetRisk)
	}

	for _, issue := range result.Issues {
		fmt.Fprintf(w, "  %s row %d %s %s: %s (%s=%q, expected %s)\n",
			warnColor.Sprint("!"),
			issue.Row,
			issue.RiskID,
			issue.Kind,
			issue.Message,
			issue.Field,
			issue.Actual,
			issue.Expected,
		)
	}
}
