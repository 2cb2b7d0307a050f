package view

// Versioned tables keep a single shape per type: the version scalar is
// read first, and every later field carries a minimum compatible version.
// Presence of a gated field is decided exactly once, while the cursor lays
// the table out; getters for absent fields return None.

// Version16 is a plain single-integer table version. A candidate version
// is compatible with a threshold iff candidate >= threshold.
type Version16 uint16

// Compatible reports whether a table with version v carries fields
// introduced at the threshold version.
func (v Version16) Compatible(threshold Version16) bool {
	return v >= threshold
}

// MajorMinor is a version split into major and minor parts, stored as two
// consecutive uint16 fields.
type MajorMinor struct {
	Major, Minor uint16
}

// Compatible reports whether a table with version v carries fields
// introduced at the threshold version. Majors must match exactly: a higher
// major version is NOT compatible with fields added under a lower major
// version — a major bump introduces an entirely new field set. (This rule
// is deliberate and long-documented; keep it even where it surprises.)
func (v MajorMinor) Compatible(threshold MajorMinor) bool {
	return v.Major == threshold.Major && v.Minor >= threshold.Minor
}

// ReadMajorMinor decodes a major, minor version pair and advances.
func (c *Cursor) ReadMajorMinor() MajorMinor {
	major := c.ReadU16()
	minor := c.ReadU16()
	return MajorMinor{Major: major, Minor: minor}
}

// FieldMajorMinor decodes a major, minor version pair, advancing, and
// additionally returns the 4-byte field region.
func (c *Cursor) FieldMajorMinor() (Region, MajorMinor) {
	start := c.pos
	v := c.ReadMajorMinor()
	return Region{Start: start, End: c.pos}, v
}

// Version16Dot16 is the legacy packed 32-bit version encoding, where the
// minor version lives in the upper nibble of the low half (version 0.5 is
// 0x00005000).
type Version16Dot16 uint32

// MakeVersion16Dot16 packs a major and minor version.
// The minor version must be in the range 0…9.
func MakeVersion16Dot16(major, minor uint16) Version16Dot16 {
	if minor > 9 {
		panic("version16dot16: minor version out of range 0…9")
	}
	return Version16Dot16(uint32(major)<<16 | uint32(minor)<<12)
}

// MajorMinor unpacks the version into its major and minor parts.
func (v Version16Dot16) MajorMinor() MajorMinor {
	return MajorMinor{
		Major: uint16(v >> 16),
		Minor: uint16(v&0xffff) >> 12,
	}
}

// Compatible applies the MajorMinor compatibility rule to the unpacked
// version parts.
func (v Version16Dot16) Compatible(threshold Version16Dot16) bool {
	return v.MajorMinor().Compatible(threshold.MajorMinor())
}

// ReadVersion16Dot16 decodes a packed legacy version and advances.
func (c *Cursor) ReadVersion16Dot16() Version16Dot16 {
	return Version16Dot16(c.ReadU32())
}

// FieldVersion16Dot16 decodes a packed legacy version, advancing, and
// additionally returns the field region.
func (c *Cursor) FieldVersion16Dot16() (Region, Version16Dot16) {
	start := c.pos
	v := c.ReadVersion16Dot16()
	return Region{Start: start, End: c.pos}, v
}

// VersionedField reserves the next n bytes as a field region if present is
// true, advancing past them; otherwise the cursor stays put and the field
// is absent. Presence is the caller's version check, evaluated once during
// layout.
func (c *Cursor) VersionedField(present bool, n int) Option[Region] {
	if !present {
		return None[Region]()
	}
	return Some(c.Field(n))
}

// VersionedFieldArray is VersionedField for an array of count records.
func (c *Cursor) VersionedFieldArray(present bool, count, recordSize int) Option[Region] {
	if !present {
		return None[Region]()
	}
	return Some(c.FieldArray(count, recordSize))
}
