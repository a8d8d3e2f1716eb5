package models

import (
	"encoding/json"
	"time"
)

// State is a saved application snapshot (e.g. a fretboard diagram) that
// belongs to exactly one directory of its owner.
//
// Payload is opaque to the server: it is stored and returned byte for byte.
type State struct {
	ID          string          `json:"id"`
	DirectoryID string          `json:"directoryId"`
	Timestamp   int64           `json:"timestamp"` // epoch milliseconds
	Name        string          `json:"name"`
	Thumbnail   *string         `json:"thumbnail,omitempty"`
	Payload     json.RawMessage `json:"state"`
}

// TableName returns the name of the database table
// associated with the State model.
func (s State) TableName() string {
	return "states"
}

// CreatedTime derives the creation time of the state from its timestamp.
func (s State) CreatedTime() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// StatePatch is a partial update of a state. Only non-nil fields are applied.
// Setting DirectoryID moves the state to another directory of the same owner.
type StatePatch struct {
	DirectoryID *string         `json:"directoryId,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Timestamp   *int64          `json:"timestamp,omitempty"`
	Thumbnail   *string         `json:"thumbnail,omitempty"`
	Payload     json.RawMessage `json:"state,omitempty"`
}

// IsEmpty reports whether the patch carries no field to update.
func (p StatePatch) IsEmpty() bool {
	return p.DirectoryID == nil &&
		p.Name == nil &&
		p.Timestamp == nil &&
		p.Thumbnail == nil &&
		len(p.Payload) == 0
}
