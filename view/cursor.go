package view

// Cursor walks a byte segment field by field while a table view is being
// validated. Reads advance the position and decode big-endian scalars;
// Field and FieldArray advance without decoding and hand back the byte
// region a getter will later read from.
//
// The cursor is sticky: the first out-of-bounds condition is latched and
// every later operation is a no-op returning zero values. Callers check
// once, by calling Finish (or Err), after laying out all fields. Until
// Finish has been consulted no view may be handed out, so a failed layout
// never becomes observable as a partial table.
type Cursor struct {
	data FontData
	pos  int
	err  error
}

// Cursor returns a cursor positioned at the start of d.
func (d FontData) Cursor() Cursor {
	return Cursor{data: d}
}

func (c *Cursor) fail() {
	if c.err == nil {
		c.err = ErrOutOfBounds
	}
}

// Err returns the first error the cursor ran into, or nil.
func (c *Cursor) Err() error {
	return c.err
}

// Position returns the current byte position, or ErrOutOfBounds if the
// cursor has been advanced past the end of the segment.
func (c *Cursor) Position() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if c.pos > len(c.data) {
		return 0, ErrOutOfBounds
	}
	return c.pos, nil
}

// Remaining returns the number of bytes between the current position and
// the end of the segment.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

// Advance moves the cursor forward by n bytes without decoding anything.
func (c *Cursor) Advance(n int) {
	if n < 0 {
		c.fail()
		return
	}
	c.pos = saturatingAdd(c.pos, n)
}

// Finish performs the final length check: the total extent the cursor has
// walked must not exceed the segment. A table view may only be constructed
// after Finish returned nil.
func (c *Cursor) Finish() error {
	if c.err != nil {
		return c.err
	}
	if c.pos > len(c.data) {
		return ErrOutOfBounds
	}
	return nil
}

// --- Regions ----------------------------------------------------------------

// Field reserves the next n bytes as a field region and advances past it.
// The region's validity is established by Finish, not here.
func (c *Cursor) Field(n int) Region {
	if n < 0 {
		c.fail()
		return Region{}
	}
	start := c.pos
	c.pos = saturatingAdd(c.pos, n)
	return Region{Start: start, End: c.pos}
}

// FieldArray reserves count records of recordSize bytes each. The byte
// length is overflow-checked; a count that cannot fit trips the cursor.
func (c *Cursor) FieldArray(count, recordSize int) Region {
	n, err := checkedMul(count, recordSize)
	if err != nil {
		c.fail()
		return Region{}
	}
	return c.Field(n)
}

// FieldRemaining reserves everything from the current position to the end
// of the segment, for trailing fields with implicit length. A cursor that
// already walked past the end stays failed; the position must never move
// backwards, or Finish would accept a layout whose earlier regions exceed
// the segment.
func (c *Cursor) FieldRemaining() Region {
	if c.pos > len(c.data) {
		c.fail()
		return Region{}
	}
	start := c.pos
	c.pos = len(c.data)
	return Region{Start: start, End: c.pos}
}

// --- Decoding reads -----------------------------------------------------------

// ReadU8 decodes the byte at the current position and advances.
func (c *Cursor) ReadU8() uint8 {
	v, err := c.data.U8At(c.pos)
	if err != nil {
		c.fail()
	}
	c.Advance(SizeU8)
	return v
}

// ReadU16 decodes a big-endian uint16 at the current position and advances.
func (c *Cursor) ReadU16() uint16 {
	v, err := c.data.U16At(c.pos)
	if err != nil {
		c.fail()
	}
	c.Advance(SizeU16)
	return v
}

// ReadU24 decodes a 24-bit unsigned integer and advances.
func (c *Cursor) ReadU24() uint32 {
	v, err := c.data.U24At(c.pos)
	if err != nil {
		c.fail()
	}
	c.Advance(SizeU24)
	return v
}

// ReadU32 decodes a big-endian uint32 at the current position and advances.
func (c *Cursor) ReadU32() uint32 {
	v, err := c.data.U32At(c.pos)
	if err != nil {
		c.fail()
	}
	c.Advance(SizeU32)
	return v
}

// ReadU64 decodes a big-endian uint64 at the current position and advances.
func (c *Cursor) ReadU64() uint64 {
	v, err := c.data.U64At(c.pos)
	if err != nil {
		c.fail()
	}
	c.Advance(SizeU64)
	return v
}

// ReadI16 decodes a big-endian int16 at the current position and advances.
func (c *Cursor) ReadI16() int16 {
	return int16(c.ReadU16())
}

// ReadI32 decodes a big-endian int32 at the current position and advances.
func (c *Cursor) ReadI32() int32 {
	return int32(c.ReadU32())
}

// ReadTag decodes a 4-byte tag and advances.
func (c *Cursor) ReadTag() Tag {
	return Tag(c.ReadU32())
}

// ReadGlyphID decodes a glyph index and advances.
func (c *Cursor) ReadGlyphID() GlyphID {
	return GlyphID(c.ReadU16())
}

// ReadFixed decodes a 16.16 fixed-point number and advances.
func (c *Cursor) ReadFixed() Fixed {
	return Fixed(c.ReadU32())
}

// ReadF2Dot14 decodes a 2.14 fixed-point number and advances.
func (c *Cursor) ReadF2Dot14() F2Dot14 {
	return F2Dot14(c.ReadU16())
}

// ReadOffset16 decodes a 16-bit offset value and advances.
func (c *Cursor) ReadOffset16() Offset16 {
	return Offset16(c.ReadU16())
}

// ReadOffset24 decodes a 24-bit offset value and advances.
func (c *Cursor) ReadOffset24() Offset24 {
	return Offset24(c.ReadU24())
}

// ReadOffset32 decodes a 32-bit offset value and advances.
func (c *Cursor) ReadOffset32() Offset32 {
	return Offset32(c.ReadU32())
}

// FieldU16 decodes a uint16, advancing, and additionally returns the
// field's region. For fields whose value later fields' layout depends on.
func (c *Cursor) FieldU16() (Region, uint16) {
	start := c.pos
	v := c.ReadU16()
	return Region{Start: start, End: c.pos}, v
}

// FieldU32 decodes a uint32, advancing, and additionally returns the
// field's region.
func (c *Cursor) FieldU32() (Region, uint32) {
	start := c.pos
	v := c.ReadU32()
	return Region{Start: start, End: c.pos}, v
}
