package usecase

import (
	"slices"

	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// Children returns the distinct values of level among records whose parent level equals
// parent, sorted ascending. types.All as parent matches every record, and the top level
// has no parent so it always resolves over the whole dataset. Empty values are not options.
// No match yields an empty, non-nil slice.
func Children(level types.Level, parent string, ds *model.Dataset) []string {
	parentLevel, hasParent := level.Parent()
	constrained := hasParent && parent != types.All

	seen := make(map[string]struct{})
	options := []string{}
	for record := range ds.All() {
		if constrained && record.LevelValue(parentLevel) != parent {
			continue
		}
		value := record.LevelValue(level)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}

	slices.Sort(options)
	return options
}
