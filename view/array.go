package view

import "iter"

// Three array representations, picked per field at schema time by what is
// statically knowable about the element:
//
//   - RecordArray: element width is a compile-time constant. O(1) access,
//     one total-length bounds check at construction, no per-element work.
//   - ComputedArray: element width is uniform but only known at run time
//     (it depends on values stored elsewhere in the font). Still O(1)
//     access once the shared width is computed.
//   - VarArray: each element carries its own length. Sequential iteration
//     only; there is no way to find element i without walking 0…i-1.
//
// All three hold just a byte segment plus small scalar state; elements are
// decoded on access and never cached.

// --- Fixed-stride arrays -------------------------------------------------------

// fixedRecordPtr constrains P to a pointer to a record type with a
// compile-time-constant encoded size. RecordSize must not depend on the
// record's contents.
type fixedRecordPtr[T any] interface {
	*T
	ReadFrom(data FontData) error
	RecordSize() int
}

// RecordArray is a fixed-stride sequence of records over a contiguous
// sub-segment.
type RecordArray[T any, P fixedRecordPtr[T]] struct {
	data   FontData
	stride int
	count  int
}

// ReadRecordArray validates that data holds count records and returns the
// array view. Only the total length is checked here; element contents are
// decoded on access.
func ReadRecordArray[T any, P fixedRecordPtr[T]](data FontData, count int) (RecordArray[T, P], error) {
	var probe T
	stride := P(&probe).RecordSize()
	if stride <= 0 || count < 0 {
		return RecordArray[T, P]{}, ErrOutOfBounds
	}
	total, err := checkedMul(count, stride)
	if err != nil || total > len(data) {
		return RecordArray[T, P]{}, ErrOutOfBounds
	}
	return RecordArray[T, P]{data: data[:total], stride: stride, count: count}, nil
}

// Len returns the number of records.
func (a RecordArray[T, P]) Len() int {
	return a.count
}

// Get decodes record i.
func (a RecordArray[T, P]) Get(i int) (T, error) {
	var t T
	if i < 0 || i >= a.count {
		return t, ErrOutOfBounds
	}
	if err := P(&t).ReadFrom(a.data[i*a.stride:]); err != nil {
		var zero T
		return zero, err
	}
	return t, nil
}

// Range iterates the records in order. Iteration stops at the first
// record that fails to decode; for plain scalar records within the
// validated extent that cannot happen.
func (a RecordArray[T, P]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			t, err := a.Get(i)
			if err != nil {
				return
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// U16Array is a fixed-stride array of big-endian uint16 values, the most
// common array element in font tables (glyph IDs, class values, indices).
type U16Array struct {
	data  FontData
	count int
}

// ReadU16Array validates that data holds count uint16 values.
func ReadU16Array(data FontData, count int) (U16Array, error) {
	total, err := checkedMul(count, SizeU16)
	if err != nil || count < 0 || total > len(data) {
		return U16Array{}, ErrOutOfBounds
	}
	return U16Array{data: data[:total], count: count}, nil
}

// Len returns the number of values.
func (a U16Array) Len() int {
	return a.count
}

// Get decodes value i.
func (a U16Array) Get(i int) (uint16, error) {
	if i < 0 || i >= a.count {
		return 0, ErrOutOfBounds
	}
	return a.data.U16At(i * SizeU16)
}

// Range iterates the values in order.
func (a U16Array) Range() iter.Seq2[int, uint16] {
	return func(yield func(int, uint16) bool) {
		for i := 0; i < a.count; i++ {
			v, err := a.Get(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Offset16Array is a fixed-stride array of 16-bit offsets, e.g. a
// subtable offset list. Each element is resolved individually by the
// caller, against whatever base the schema prescribes.
type Offset16Array struct {
	values U16Array
}

// ReadOffset16Array validates that data holds count 16-bit offsets.
func ReadOffset16Array(data FontData, count int) (Offset16Array, error) {
	values, err := ReadU16Array(data, count)
	if err != nil {
		return Offset16Array{}, err
	}
	return Offset16Array{values: values}, nil
}

// Len returns the number of offsets.
func (a Offset16Array) Len() int {
	return a.values.Len()
}

// Get decodes offset i.
func (a Offset16Array) Get(i int) (Offset16, error) {
	v, err := a.values.Get(i)
	return Offset16(v), err
}

// Range iterates the offsets in order.
func (a Offset16Array) Range() iter.Seq2[int, Offset16] {
	return func(yield func(int, Offset16) bool) {
		for i, v := range a.values.Range() {
			if !yield(i, Offset16(v)) {
				return
			}
		}
	}
}

// --- Computed-stride arrays ----------------------------------------------------

// computedRecordPtr constrains P to a pointer to a record type whose
// encoded size is uniform across an array but only computable at run time,
// from arguments stored elsewhere in the font. SizeWithArgs must be a pure
// function of args.
type computedRecordPtr[T, A any] interface {
	*T
	ReadWithArgs(data FontData, args A) error
	SizeWithArgs(args A) int
}

// ComputedArray is a uniform-stride sequence of records whose stride is
// computed once, at construction, from the shared args.
type ComputedArray[T, A any, P computedRecordPtr[T, A]] struct {
	data   FontData
	args   A
	stride int
	count  int
}

// ReadComputedArray computes the element width from args, validates the
// total length, and returns the array view.
func ReadComputedArray[T, A any, P computedRecordPtr[T, A]](data FontData, count int, args A) (ComputedArray[T, A, P], error) {
	var probe T
	stride := P(&probe).SizeWithArgs(args)
	if stride <= 0 || count < 0 {
		return ComputedArray[T, A, P]{}, ErrOutOfBounds
	}
	total, err := checkedMul(count, stride)
	if err != nil || total > len(data) {
		return ComputedArray[T, A, P]{}, ErrOutOfBounds
	}
	return ComputedArray[T, A, P]{data: data[:total], args: args, stride: stride, count: count}, nil
}

// Len returns the number of records.
func (a ComputedArray[T, A, P]) Len() int {
	return a.count
}

// Stride returns the shared per-record byte width.
func (a ComputedArray[T, A, P]) Stride() int {
	return a.stride
}

// Get decodes record i. The stride is uniform, so no preceding element is
// touched.
func (a ComputedArray[T, A, P]) Get(i int) (T, error) {
	var t T
	if i < 0 || i >= a.count {
		return t, ErrOutOfBounds
	}
	if err := P(&t).ReadWithArgs(a.data[i*a.stride:], a.args); err != nil {
		var zero T
		return zero, err
	}
	return t, nil
}

// Range iterates the records in order, decoding each on demand.
func (a ComputedArray[T, A, P]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			t, err := a.Get(i)
			if err != nil {
				return
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// --- Variable-length arrays ----------------------------------------------------

// varRecordPtr constrains P to a pointer to a record type that encodes its
// own length, typically in a leading count field. ByteSize reports the
// record's total encoded length and is only meaningful after a successful
// ReadFrom.
type varRecordPtr[T any] interface {
	*T
	ReadFrom(data FontData) error
	ByteSize() int
}

// VarArray is a sequence of records of non-uniform length. Elements cannot
// be randomly indexed without scanning from the start, so the type only
// offers sequential iteration. Iteration is restartable — every Range call
// walks the same bytes from the beginning — and finite, bounded by the
// containing table's remaining length.
type VarArray[T any, P varRecordPtr[T]] struct {
	data FontData
}

// ReadVarArray wraps the segment as a lazy var-length sequence. Nothing is
// validated up front; a record that would read past the end of the
// segment simply ends the iteration early, as a partial result.
func ReadVarArray[T any, P varRecordPtr[T]](data FontData) VarArray[T, P] {
	return VarArray[T, P]{data: data}
}

// Range iterates the records from the start of the segment.
func (a VarArray[T, P]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		pos := 0
		for pos < len(a.data) {
			var t T
			if err := P(&t).ReadFrom(a.data[pos:]); err != nil {
				return
			}
			size := P(&t).ByteSize()
			if size <= 0 {
				return
			}
			if !yield(t) {
				return
			}
			pos = saturatingAdd(pos, size)
		}
	}
}
