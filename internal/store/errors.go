package store

import "errors"

var (
	// ErrNotFound is returned by Get when no record exists for the id.
	ErrNotFound = errors.New("record not found")
	// ErrDecode is returned when a record file does not parse into the
	// store's element type.
	ErrDecode = errors.New("record decode failed")
	// ErrEmptyID is returned by Insert when the item's key is empty.
	ErrEmptyID = errors.New("entity id is empty")
)
