package model

import (
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
)

// SnapshotID identifies one loaded dataset
type SnapshotID string

// NewSnapshotID generates a new time-ordered SnapshotID
func NewSnapshotID() SnapshotID {
	return SnapshotID(uuid.Must(uuid.NewV7()).String())
}

// Dataset is the frozen record set of one load. It is safe for concurrent readers:
// records are copied in at construction and handed out by value.
type Dataset struct {
	id          SnapshotID
	source      string
	loadedAt    time.Time
	records     []RiskRecord
	diagnostics []Diagnostic
}

// NewDataset freezes records and diagnostics into a Dataset
func NewDataset(source string, records []RiskRecord, diagnostics []Diagnostic) *Dataset {
	return &Dataset{
		id:          NewSnapshotID(),
		source:      source,
		loadedAt:    time.Now().UTC(),
		records:     slices.Clone(records),
		diagnostics: slices.Clone(diagnostics),
	}
}

// ID returns the snapshot identifier
func (d *Dataset) ID() SnapshotID { return d.id }

// Source returns the URI the dataset was loaded from
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was frozen
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// All iterates over the records in source order
func (d *Dataset) All() iter.Seq[RiskRecord] {
	return func(yield func(RiskRecord) bool) {
		if d == nil {
			return
		}
		for _, r := range d.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the records in source order
func (d *Dataset) Records() []RiskRecord {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Diagnostics returns a copy of the load diagnostics
func (d *Dataset) Diagnostics() []Diagnostic {
	if d == nil {
		return nil
	}
	return slices.Clone(d.diagnostics)
}

// Snapshot describes a loaded dataset for the UI
type Snapshot struct {
	ID          SnapshotID `json:"id"`
	Source      string     `json:"source"`
	LoadedAt    time.Time  `json:"loaded_at"`
	Records     int        `json:"records"`
	Diagnostics int        `json:"diagnostics"`
}

// Snapshot returns the metadata of the dataset
func (d *Dataset) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id,
		Source:      d.source,
		LoadedAt:    d.loadedAt,
		Records:     len(d.records),
		Diagnostics: len(d.diagnostics),
	}
}
