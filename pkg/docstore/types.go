// Package docstore stores semi-structured documents in an embedded pebble
// database, organized into named collections, and applies batch update
// entries through the value-model mutation helpers.
package docstore

import "fmt"

// UpdateType identifies the kind of change an UpdateEntry performs.
type UpdateType string

const (
	// UpdateTypeUpdate modifies (or creates) a document's properties.
	UpdateTypeUpdate UpdateType = "UPDATE"
	// UpdateTypeDelete deletes a document, leaving a tombstone.
	UpdateTypeDelete UpdateType = "DELETE"
	// UpdateTypePurge erases a document outright, tombstone included.
	UpdateTypePurge UpdateType = "PURGE"
)

// UpdateEntry is a single change in a batch update. For UPDATE entries,
// UpdatedProperties is an ordered list of keypath-keyed update sets applied
// first, then RemovedProperties deletes the listed key paths.
type UpdateEntry struct {
	Type              UpdateType       `json:"type"`
	ID                string           `json:"documentID"`
	UpdatedProperties []map[string]any `json:"updatedProperties,omitempty"`
	RemovedProperties []string         `json:"removedProperties,omitempty"`
}

// Validate reports whether the entry is well formed. DELETE and PURGE
// entries only need a document ID; an UPDATE entry must change at least one
// property.
func (e *UpdateEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("docstore: update entry has no document ID")
	}
	switch e.Type {
	case UpdateTypeDelete, UpdateTypePurge:
		return nil
	case UpdateTypeUpdate:
		if len(e.UpdatedProperties) == 0 && len(e.RemovedProperties) == 0 {
			return fmt.Errorf("docstore: UPDATE entry for %q changes nothing", e.ID)
		}
		return nil
	default:
		return fmt.Errorf("docstore: unknown update type %q", e.Type)
	}
}

// Errors
var (
	ErrDocNotFound       = &StoreError{"document not found"}
	ErrStoreClosed       = &StoreError{"store is closed"}
	ErrCorruptDocument   = &StoreError{"document corruption detected"}
	ErrInvalidCollection = &StoreError{"invalid collection name"}
)

// StoreError represents a document store error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
