package view

// A table view is the pairing of a FontData with a shape: the per-type
// record of where each field's bytes live. Concrete table types own their
// shape (a small struct of Regions and cached counts) and borrow their
// FontData; neither owns the underlying buffer.
//
// A conventional table type looks like
//
//	type ScoreTable struct {
//		data          view.FontData
//		versionRange  view.Region
//		entriesRange  view.Region
//	}
//
//	func (t *ScoreTable) ReadFrom(data view.FontData) error {
//		c := data.Cursor()
//		t.versionRange, _ = c.FieldU16()
//		_, count := c.FieldU16()
//		t.entriesRange = c.FieldArray(int(count), 4)
//		if err := c.Finish(); err != nil {
//			return err
//		}
//		t.data = data
//		return nil
//	}
//
// Getters then decode straight from the stored regions, on every call.
// Views are plain values: copying one is cheap, and two goroutines may read
// the same view (or overlapping views) without synchronization since the
// underlying bytes are never mutated.

// Region is the byte range of one field within a table's data,
// half-open [Start, End).
type Region struct {
	Start, End int
}

// Len returns the region's length in bytes.
func (r Region) Len() int {
	return r.End - r.Start
}

// In returns the sub-segment of d the region describes.
func (r Region) In(d FontData) (FontData, error) {
	return d.Slice(r.Start, r.End)
}

// TableType is the validation entry point each concrete table type
// implements, by hand or through a schema tool. ReadFrom must run the full
// cursor-based layout for the type and fail without leaving any state
// behind that a getter could misread: on error the receiver is considered
// garbage and is discarded by Interpret.
type TableType interface {
	// ReadFrom validates data as this table type and records the shape.
	ReadFrom(data FontData) error
}

// tablePtr constrains P to be a pointer to a table type T.
type tablePtr[T any] interface {
	*T
	TableType
}

// Interpret attempts to read the given bytes as table type T.
//
// On success all of the view's own fixed-position fields are known to be
// in bounds. Offsets the table contains are NOT pre-validated; they are
// checked on every resolution.
func Interpret[T any, P tablePtr[T]](data FontData) (T, error) {
	var t T
	if err := P(&t).ReadFrom(data); err != nil {
		var zero T
		return zero, err
	}
	return t, nil
}

// InterpretAt is Interpret starting at byte position start of data.
func InterpretAt[T any, P tablePtr[T]](data FontData, start int) (T, error) {
	sub, err := data.SplitOff(start)
	if err != nil {
		var zero T
		return zero, err
	}
	return Interpret[T, P](sub)
}

// Materializer is implemented by views that can be converted into an
// owned, mutable representation of type T, for use by a write path outside
// this package. Materializing copies; the view itself stays zero-copy.
type Materializer[T any] interface {
	Materialize() T
}
