package models

import "time"

// Directory is a named group of states owned by one user.
//
// ID is supplied by the client and is unique only within the owner's data:
// two users may both own a directory with the same ID.
type Directory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
	IsDefault bool   `json:"isDefault"`
}

// TableName returns the name of the database table
// associated with the Directory model.
func (d Directory) TableName() string {
	return "directories"
}

// CreatedTime converts the client supplied epoch milliseconds to a UTC time.
func (d Directory) CreatedTime() time.Time {
	return time.UnixMilli(d.CreatedAt).UTC()
}

// DirectoryPatch is a partial update of a directory.
// Only non-nil fields are applied.
type DirectoryPatch struct {
	Name      *string `json:"name,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// IsEmpty reports whether the patch carries no field to update.
func (p DirectoryPatch) IsEmpty() bool {
	return p.Name == nil && p.IsDefault == nil
}
