package view

// Scalar codecs for the fixed-width, big-endian value types used throughout
// OpenType tables. Decoding never fails: every bit pattern is a value of
// the decoded type. Rejecting semantically invalid values (unknown format
// codes, enum discriminants) is the job of higher layers.

// On-disk byte widths of the scalar types.
const (
	SizeU8      = 1
	SizeU16     = 2
	SizeU24     = 3
	SizeU32     = 4
	SizeU64     = 8
	SizeTag     = 4
	SizeGlyphID = 2
	SizeFixed   = 4
	SizeF2Dot14 = 2
)

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])<<0
}

func u32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func u64(b []byte) uint64 {
	_ = b[7]
	return uint64(u32(b))<<32 | uint64(u32(b[4:]))
}

// DecodeU16 decodes a big-endian uint16 from the first 2 bytes of b.
func DecodeU16(b []byte) uint16 { return u16(b) }

// DecodeU24 decodes a big-endian 24-bit unsigned integer from the first
// 3 bytes of b, zero-extended to 32 bits.
func DecodeU24(b []byte) uint32 { return u24(b) }

// DecodeU32 decodes a big-endian uint32 from the first 4 bytes of b.
func DecodeU32(b []byte) uint32 { return u32(b) }

// DecodeU64 decodes a big-endian uint64 from the first 8 bytes of b.
func DecodeU64(b []byte) uint64 { return u64(b) }

// EncodeU16 returns the big-endian encoding of v.
func EncodeU16(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// EncodeU24 returns the big-endian 3-byte encoding of the low 24 bits of v.
func EncodeU24(v uint32) [3]byte {
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// EncodeU32 returns the big-endian encoding of v.
func EncodeU32(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// EncodeU64 returns the big-endian encoding of v.
func EncodeU64(v uint64) [8]byte {
	hi, lo := EncodeU32(uint32(v>>32)), EncodeU32(uint32(v))
	return [8]byte{hi[0], hi[1], hi[2], hi[3], lo[0], lo[1], lo[2], lo[3]}
}

// GlyphID is a glyph index in a font.
type GlyphID uint16

// --- Tag -------------------------------------------------------------------

// Tag is a 4-byte identifier for a table, design-variation axis, script,
// language system, feature, or baseline, stored as a big-endian uint32.
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("cmap"))
//
// Shorter input (nil included) is zero-padded from the left, longer input
// is cut to the first 4 bytes.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns the Tag for a 4-letter string. Shorter strings are padded with
// trailing spaces, the convention for short OpenType tags; longer strings
// are cut to the first 4 letters.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Fixed-point -----------------------------------------------------------

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// Float returns the value scaled by 1/65536.
func (f Fixed) Float() float64 {
	return float64(f) / 65536.0
}

// FixedFromFloat rounds v to the nearest representable 16.16 value.
func FixedFromFloat(v float64) Fixed {
	if v < 0 {
		return Fixed(v*65536.0 - 0.5)
	}
	return Fixed(v*65536.0 + 0.5)
}

// F2Dot14 is a signed 2.14 fixed-point number, used for unit vectors and
// variation coordinates.
type F2Dot14 int16

// Float returns the value scaled by 1/16384.
func (f F2Dot14) Float() float64 {
	return float64(f) / 16384.0
}

// --- Offsets ---------------------------------------------------------------

// Offset16 is a 16-bit unsigned byte displacement from some base.
type Offset16 uint16

// Offset24 is a 24-bit unsigned byte displacement from some base.
type Offset24 uint32

// Offset32 is a 32-bit unsigned byte displacement from some base.
type Offset32 uint32
