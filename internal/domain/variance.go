package domain

// Go's type parameters are invariant: a Reader[RemoteEmployee] is not a
// Reader[Employee], even though every remote employee is an employee. The
// adapters below recover the two safe substitution directions explicitly.
//
// Reads are covariant: a reader of a specific type can serve as a reader of
// a more general one, since everything it produces is also a General.
// Writes are contravariant: a writer of a general type can serve as a writer
// of a more specific one, since everything a Specific caller hands it is
// also a General.

// ReadAs adapts a reader of Specific into a reader of General. widen maps
// each stored record to its general form; errors pass through unchanged.
func ReadAs[Specific, General Entity](r Reader[Specific], widen func(Specific) General) Reader[General] {
	return readAs[Specific, General]{r: r, widen: widen}
}

// WriteAs adapts a writer of General into a writer of Specific. narrow maps
// each incoming record to the general form the underlying writer stores.
func WriteAs[General, Specific Entity](w Writer[General], narrow func(Specific) General) Writer[Specific] {
	return writeAs[General, Specific]{w: w, narrow: narrow}
}

type readAs[S, G Entity] struct {
	r     Reader[S]
	widen func(S) G
}

func (a readAs[S, G]) Get(id string) (G, error) {
	item, err := a.r.Get(id)
	if err != nil {
		var zero G
		return zero, err
	}
	return a.widen(item), nil
}

func (a readAs[S, G]) GetAll() ([]G, error) {
	items, err := a.r.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]G, 0, len(items))
	for _, item := range items {
		out = append(out, a.widen(item))
	}
	return out, nil
}

type writeAs[G, S Entity] struct {
	w      Writer[G]
	narrow func(S) G
}

func (a writeAs[G, S]) Insert(item S) error {
	return a.w.Insert(a.narrow(item))
}
