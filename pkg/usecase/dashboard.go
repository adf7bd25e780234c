package usecase

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// Apply returns the state after one UI event. A new hierarchy selection resets the
// selections below it that are no longer options under their parent.
func Apply(ds *model.Dataset, state model.DashboardState, event model.Event) (model.DashboardState, error) {
	if err := event.Validate(); err != nil {
		return state, goerr.Wrap(err, "failed to apply dashboard event")
	}

	next := state.Normalize()
	value := event.Value
	if value == "" {
		value = types.All
	}

	switch event.Type {
	case model.EventSelectTab:
		tab, err := types.ParseTabID(event.Value)
		if err != nil {
			return state, goerr.Wrap(err, "failed to parse tab")
		}
		next.Tab = tab

	case model.EventSelectBusinessUnit:
		next.BusinessUnit = value

	default:
		level, ok := event.Type.Level()
		if !ok {
			return state, goerr.Wrap(model.ErrInvalidEvent, "event has no hierarchy level", goerr.V("type", event.Type))
		}
		next = cascade(ds, next.WithSelection(level, value), level)
	}

	return next, nil
}

// cascade resets the selections below level. Once a level is reset, every level under
// it is reset too, so no selection outlives the parent it was made under.
func cascade(ds *model.Dataset, state model.DashboardState, level types.Level) model.DashboardState {
	reset := false
	for child, ok := level.Child(); ok; child, ok = child.Child() {
		selected := state.Selection(child)
		if selected == types.All {
			continue
		}
		parent, _ := child.Parent()
		if reset || !slices.Contains(Children(child, state.Selection(parent), ds), selected) {
			state = state.WithSelection(child, types.All)
			reset = true
		}
	}
	return state
}

// Options returns the selector of one hierarchy level, constrained by the selection of
// its parent level and led by types.All.
func Options(ds *model.Dataset, state model.DashboardState, level types.Level) model.OptionSet {
	set := model.OptionSet{
		Level:    level,
		Selected: state.Selection(level),
	}

	parent := types.All
	if parentLevel, ok := level.Parent(); ok {
		parent = state.Selection(parentLevel)
		set.Parent = parent
	}

	set.Options = append([]string{types.All}, Children(level, parent, ds)...)
	return set
}

// BusinessUnitOptions returns the business units present in the dataset, led by types.All
func BusinessUnitOptions(ds *model.Dataset) []string {
	var names []string
	for record := range ds.All() {
		if record.BusinessUnit != "" && !slices.Contains(names, record.BusinessUnit) {
			names = append(names, record.BusinessUnit)
		}
	}
	slices.Sort(names)
	return append([]string{types.All}, names...)
}

// Render projects a state over the dataset. The overview tab carries the charts and the
// table tab carries the risk table filtered by the selected business unit.
func (uc *UseCases) Render(ds *model.Dataset, state model.DashboardState) (*model.DashboardView, error) {
	if ds == nil {
		return nil, goerr.Wrap(ErrDatasetNotLoaded, "failed to render dashboard")
	}

	state = state.Normalize()
	onTable := state.Tab == types.TabTable

	view := &model.DashboardView{
		Title:    uc.dashboard.Title,
		Snapshot: ds.Snapshot(),
		State:    state,
		Visibility: model.Visibility{
			Hierarchy:           state.HierarchyVisible(),
			BusinessUnit:        true,
			BusinessUnitEnabled: onTable,
			Legend:              onTable,
		},
		RiskTypes:     Options(ds, state, types.LevelRiskTypes),
		Risk:          Options(ds, state, types.LevelRisk),
		Level3:        Options(ds, state, types.LevelLevel3),
		BusinessUnits: BusinessUnitOptions(ds),
	}

	if onTable {
		view.Table = Table(ds, state.BusinessUnit)
	} else {
		view.Charts = Charts(ds, state)
	}

	return view, nil
}
