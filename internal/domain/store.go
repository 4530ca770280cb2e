package domain

// Reader is the read capability of a keyed store. A caller holding only a
// Reader cannot insert.
type Reader[T Entity] interface {
	// Get returns the record stored under id.
	Get(id string) (T, error)
	// GetAll returns every stored record. Order is unspecified.
	GetAll() ([]T, error)
}

// Writer is the write capability of a keyed store. A caller holding only a
// Writer cannot read or list.
type Writer[T Entity] interface {
	// Insert stores item under its own key, overwriting any previous record
	// with the same key.
	Insert(item T) error
}

// ReadWriter combines both capabilities. Unlike the split interfaces it
// supports neither direction of element-type substitution, so callers should
// depend on Reader or Writer alone whenever one suffices.
type ReadWriter[T Entity] interface {
	Reader[T]
	Writer[T]
}
