package models

import "errors"

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// WriteResult is the acknowledgement of a mutating store call. A zero
// Matched or Deleted count is a normal outcome, not an error.
type WriteResult struct {
	Matched    int64  `json:"matched_count"`
	Modified   int64  `json:"modified_count"`
	Deleted    int64  `json:"deleted_count"`
	Upserted   int64  `json:"upserted_count"`
	InsertedID string `json:"inserted_id,omitempty"`
}
