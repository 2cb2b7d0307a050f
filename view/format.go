package view

import "fmt"

// Multi-format tables are tagged unions: a fixed-position format code
// selects the concrete layout. A FormatDispatcher maps codes to variant
// readers. Dispatchers are built once, as package-level values next to the
// variant types (schema time), and are read-only afterwards, so parsing
// through them allocates nothing.

// VariantReader validates a byte segment as one variant of union type T.
type VariantReader[T any] func(data FontData) (T, error)

// FormatDispatcher resolves a format-tagged union into one of its
// registered variants.
type FormatDispatcher[T any] struct {
	at      int // byte position of the format code within the table
	readers map[uint16]VariantReader[T]
}

// NewFormatDispatcher returns a dispatcher expecting the format code at
// byte position 0, the common case.
func NewFormatDispatcher[T any]() *FormatDispatcher[T] {
	return NewFormatDispatcherAt[T](0)
}

// NewFormatDispatcherAt returns a dispatcher reading the format code at
// the given byte position, for tables where the code is not the first field.
func NewFormatDispatcherAt[T any](at int) *FormatDispatcher[T] {
	if at < 0 {
		panic("format dispatcher: negative code position")
	}
	return &FormatDispatcher[T]{at: at, readers: make(map[uint16]VariantReader[T])}
}

// Register binds a format code to a variant reader and returns the
// dispatcher for chaining. Two variants of one union must never share a
// code; that is a schema defect, so Register panics on duplicates rather
// than returning an error.
func (d *FormatDispatcher[T]) Register(code uint16, read VariantReader[T]) *FormatDispatcher[T] {
	if _, dup := d.readers[code]; dup {
		panic(fmt.Sprintf("format dispatcher: duplicate variant for code %d", code))
	}
	d.readers[code] = read
	return d
}

// Read reads the format code and delegates to the matching variant's own
// validation. The variant is resolved exactly once, here; the returned
// value's identity is the validated variant and is never re-tagged.
//
// An unknown code yields a FormatError carrying the code; a segment too
// short to even hold the code yields ErrOutOfBounds.
func (d *FormatDispatcher[T]) Read(data FontData) (T, error) {
	code, err := data.U16At(d.at)
	if err != nil {
		var zero T
		return zero, err
	}
	read, ok := d.readers[code]
	if !ok {
		var zero T
		return zero, FormatError{Code: code}
	}
	return read(data)
}
