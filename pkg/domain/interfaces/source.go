package interfaces

import (
	"context"

	"github.com/secmon-lab/raca/pkg/domain/model"
)

// TableSource reads the raw risk sheet behind a dataset URI
type TableSource interface {
	// Load fetches the object at uri and parses it into a table
	Load(ctx context.Context, uri string) (*model.Table, error)
}
