package usecase

import (
	"time"

	"github.com/secmon-lab/raca/pkg/domain/interfaces"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/model/config"
)

// DefaultLoadTimeout bounds fetching and parsing the dataset at startup
const DefaultLoadTimeout = 30 * time.Second

// DefaultTitle is shown in the navbar when no title is configured
const DefaultTitle = "Risk and Controls Assessments"

type UseCases struct {
	source      interfaces.TableSource
	dashboard   *config.DashboardConfig
	registry    *model.BusinessUnitRegistry
	loadTimeout time.Duration
}

type Option func(*UseCases)

func WithDashboardConfig(cfg *config.DashboardConfig) Option {
	return func(uc *UseCases) {
		if cfg != nil {
			uc.dashboard = cfg
		}
	}
}

func WithLoadTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.loadTimeout = d
	}
}

func New(source interfaces.TableSource, opts ...Option) *UseCases {
	uc := &UseCases{
		source:      source,
		dashboard:   &config.DashboardConfig{},
		loadTimeout: DefaultLoadTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	dashboard := *uc.dashboard
	if dashboard.Title == "" {
		dashboard.Title = DefaultTitle
	}
	uc.dashboard = &dashboard
	uc.registry = model.NewBusinessUnitRegistry(uc.dashboard.BusinessUnits)

	return uc
}

// Title returns the dashboard title
func (uc *UseCases) Title() string {
	return uc.dashboard.Title
}

// BusinessUnits returns the configured prefix code to name table
func (uc *UseCases) BusinessUnits() []config.BusinessUnit {
	return uc.registry.Units()
}
