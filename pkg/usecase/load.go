package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/utils/logging"
)

// LoadDataset reads the sheet at uri, normalizes and classifies its rows and freezes the
// result. The whole step runs under the load timeout.
func (uc *UseCases) LoadDataset(ctx context.Context, uri string) (*model.Dataset, error) {
	if uri == "" {
		return nil, goerr.Wrap(ErrEmptyDatasetURI, "failed to load dataset")
	}

	if uc.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.loadTimeout)
		defer cancel()
	}

	logger := logging.From(ctx).With("dataset_uri", uri)
	ctx = logging.With(ctx, logger)

	table, err := uc.source.Load(ctx, uri)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset", goerr.V(DatasetURIKey, uri))
	}

	records, diagnostics, err := Normalize(ctx, table, uc.dashboard.Columns)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to normalize dataset", goerr.V(DatasetURIKey, uri))
	}
	diagnostics = append(diagnostics, Classify(ctx, records, uc.registry)...)

	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "dataset load timed out", goerr.V(DatasetURIKey, uri))
	}

	ds := model.NewDataset(uri, records, diagnostics)
	logger.Info("dataset loaded",
		"snapshot_id", ds.ID(),
		"records", ds.Len(),
		"diagnostics", len(diagnostics),
	)
	return ds, nil
}
