package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model/config"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// ErrBusinessUnitNotRegistered is returned when a prefix code has no registered business unit
var ErrBusinessUnitNotRegistered = goerr.New("business unit code has not been registered")

// BusinessUnitRegistry resolves risk identifier prefix codes to business unit names.
// Lookups are case-insensitive. It is built once from configuration and read-only afterwards.
type BusinessUnitRegistry struct {
	names map[string]string
	order []config.BusinessUnit // preserves registration order
}

// NewBusinessUnitRegistry builds a registry from configured units. A later unit with the
// same code replaces the name of an earlier one.
func NewBusinessUnitRegistry(units []config.BusinessUnit) *BusinessUnitRegistry {
	r := &BusinessUnitRegistry{
		names: make(map[string]string, len(units)),
	}
	for _, u := range units {
		key := u.Code.Key()
		if _, exists := r.names[key]; exists {
			for i := range r.order {
				if r.order[i].Code.Key() == key {
					r.order[i].Name = u.Name
				}
			}
		} else {
			r.order = append(r.order, u)
		}
		r.names[key] = u.Name
	}
	return r
}

// Lookup returns the business unit name for code
func (r *BusinessUnitRegistry) Lookup(code types.BusinessUnitCode) (string, error) {
	if code == "" {
		return "", goerr.Wrap(ErrBusinessUnitNotRegistered, "empty business unit code")
	}
	name, ok := r.names[code.Key()]
	if !ok {
		return "", goerr.Wrap(ErrBusinessUnitNotRegistered, "unknown business unit code",
			goerr.V("code", code))
	}
	return name, nil
}

// Units returns the registered business units in registration order
func (r *BusinessUnitRegistry) Units() []config.BusinessUnit {
	result := make([]config.BusinessUnit, len(r.order))
	copy(result, r.order)
	return result
}
