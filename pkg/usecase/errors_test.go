package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/usecase"
)

func TestErrors_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNoMappedColumns", usecase.ErrNoMappedColumns},
		{"ErrEmptyDatasetURI", usecase.ErrEmptyDatasetURI},
		{"ErrDatasetNotLoaded", usecase.ErrDatasetNotLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.err).NotNil()
		})
	}
}

func TestErrors_ErrorsAreDistinct(t *testing.T) {
	gt.Bool(t, errors.Is(usecase.ErrNoMappedColumns, usecase.ErrEmptyDatasetURI)).False()
	gt.Bool(t, errors.Is(usecase.ErrEmptyDatasetURI, usecase.ErrDatasetNotLoaded)).False()
}
