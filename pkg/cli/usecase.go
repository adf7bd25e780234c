package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/cli/config"
	"github.com/secmon-lab/raca/pkg/service/source"
	"github.com/secmon-lab/raca/pkg/usecase"
)

// newUseCases builds the use cases shared by the commands from the dashboard and dataset
// flags. The caller owns the returned source service and must close it.
func newUseCases(appCfg *config.AppConfig, datasetCfg *config.Dataset) (*usecase.UseCases, *source.Service, error) {
	dashboard, err := appCfg.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load dashboard configuration")
	}

	src := datasetCfg.Configure()
	uc := usecase.New(src,
		usecase.WithDashboardConfig(dashboard),
		usecase.WithLoadTimeout(datasetCfg.LoadTimeout()),
	)
	return uc, src, nil
}
