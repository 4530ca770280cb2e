package domain

// Entity constrains stored types to those that expose a string storage key.
// The key identifies the record: inserting two values with the same key
// keeps only the latest one.
type Entity interface {
	// EntityID returns the record's storage key. It must be non-empty for
	// the record to be insertable.
	EntityID() string
}
