package view

import "math"

// FontData is a segment of a font's binary data. It is the one data type
// every view in this package borrows from: slicing a FontData never copies
// bytes, and a FontData is never written to.
//
// All reads are bounds-checked and report ErrOutOfBounds instead of
// panicking, whatever the requested position.
type FontData []byte

// EmptyData is a zero-length segment, useful in tests and as a null base.
var EmptyData = FontData{}

// Len returns the length of the segment in bytes.
func (d FontData) Len() int {
	return len(d)
}

// IsEmpty reports whether the segment has length zero.
func (d FontData) IsEmpty() bool {
	return len(d) == 0
}

// Bytes returns the underlying bytes. Clients must treat them as read-only;
// they are a window into the original font buffer.
func (d FontData) Bytes() []byte {
	return d
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of d.
func (d FontData) view(offset, n int) (FontData, error) {
	if offset < 0 || n < 0 || n > len(d) || offset > len(d)-n {
		return nil, ErrOutOfBounds
	}
	return d[offset : offset+n], nil
}

// SplitOff returns the segment d[pos:].
func (d FontData) SplitOff(pos int) (FontData, error) {
	if pos < 0 || pos > len(d) {
		return nil, ErrOutOfBounds
	}
	return d[pos:], nil
}

// Slice returns the sub-segment d[from:to].
func (d FontData) Slice(from, to int) (FontData, error) {
	if from < 0 || to < from || to > len(d) {
		return nil, ErrOutOfBounds
	}
	return d[from:to], nil
}

// --- Typed reads at fixed positions ----------------------------------------

// U8At returns the byte at offset i.
func (d FontData) U8At(i int) (uint8, error) {
	buf, err := d.view(i, SizeU8)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// U16At returns the uint16 in d at offset i.
func (d FontData) U16At(i int) (uint16, error) {
	buf, err := d.view(i, SizeU16)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// U24At returns the 24-bit unsigned integer in d at offset i,
// zero-extended to 32 bits.
func (d FontData) U24At(i int) (uint32, error) {
	buf, err := d.view(i, SizeU24)
	if err != nil {
		return 0, err
	}
	return u24(buf), nil
}

// U32At returns the uint32 in d at offset i.
func (d FontData) U32At(i int) (uint32, error) {
	buf, err := d.view(i, SizeU32)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// U64At returns the uint64 in d at offset i.
func (d FontData) U64At(i int) (uint64, error) {
	buf, err := d.view(i, SizeU64)
	if err != nil {
		return 0, err
	}
	return u64(buf), nil
}

// I8At returns the signed byte at offset i.
func (d FontData) I8At(i int) (int8, error) {
	v, err := d.U8At(i)
	return int8(v), err
}

// I16At returns the int16 in d at offset i.
func (d FontData) I16At(i int) (int16, error) {
	v, err := d.U16At(i)
	return int16(v), err
}

// I32At returns the int32 in d at offset i.
func (d FontData) I32At(i int) (int32, error) {
	v, err := d.U32At(i)
	return int32(v), err
}

// I64At returns the int64 in d at offset i.
func (d FontData) I64At(i int) (int64, error) {
	v, err := d.U64At(i)
	return int64(v), err
}

// TagAt returns the 4-byte tag in d at offset i.
func (d FontData) TagAt(i int) (Tag, error) {
	v, err := d.U32At(i)
	return Tag(v), err
}

// GlyphIDAt returns the glyph index in d at offset i.
func (d FontData) GlyphIDAt(i int) (GlyphID, error) {
	v, err := d.U16At(i)
	return GlyphID(v), err
}

// FixedAt returns the 16.16 fixed-point number in d at offset i.
func (d FontData) FixedAt(i int) (Fixed, error) {
	v, err := d.U32At(i)
	return Fixed(v), err
}

// F2Dot14At returns the 2.14 fixed-point number in d at offset i.
func (d FontData) F2Dot14At(i int) (F2Dot14, error) {
	v, err := d.U16At(i)
	return F2Dot14(v), err
}

// Offset16At returns the 16-bit offset value in d at offset i.
func (d FontData) Offset16At(i int) (Offset16, error) {
	v, err := d.U16At(i)
	return Offset16(v), err
}

// Offset24At returns the 24-bit offset value in d at offset i.
func (d FontData) Offset24At(i int) (Offset24, error) {
	v, err := d.U24At(i)
	return Offset24(v), err
}

// Offset32At returns the 32-bit offset value in d at offset i.
func (d FontData) Offset32At(i int) (Offset32, error) {
	v, err := d.U32At(i)
	return Offset32(v), err
}

// --- Checked arithmetic ------------------------------------------------------

// Counts and sizes multiplied together come straight from untrusted bytes,
// so every size computation has to be overflow-checked.

// checkedMul checks for overflow in multiplication of two non-negative integers.
func checkedMul(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrOutOfBounds
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOutOfBounds
	}
	return a * b, nil
}

// checkedAdd checks for overflow in addition of two non-negative integers.
func checkedAdd(a, b int) (int, error) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, ErrOutOfBounds
	}
	return a + b, nil
}

// saturatingAdd adds non-negative integers, clamping at MaxInt.
func saturatingAdd(a, b int) int {
	if s, err := checkedAdd(a, b); err == nil {
		return s
	}
	return math.MaxInt
}
