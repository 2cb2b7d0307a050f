package view

// Hand-written stand-ins for schema-generated table types. They exist so
// the engine can be exercised without dragging real font tables in, and
// they follow the layout conventions a schema tool would emit: a shape of
// Regions filled in by ReadFrom, getters that decode per call.

import "iter"

// --- scoreTable: a versioned table ------------------------------------------
//
// version      MajorMinor
// baseScore    uint16
// bonusScore   uint16   (since 1,1)
// penalty      uint32   (since 2,0)

type scoreTable struct {
	data       FontData
	version    Region
	baseScore  Region
	bonusScore Option[Region]
	penalty    Option[Region]
}

func (t *scoreTable) ReadFrom(data FontData) error {
	c := data.Cursor()
	region, v := c.FieldMajorMinor()
	t.version = region
	t.baseScore = c.Field(SizeU16)
	t.bonusScore = c.VersionedField(v.Compatible(MajorMinor{Major: 1, Minor: 1}), SizeU16)
	t.penalty = c.VersionedField(v.Compatible(MajorMinor{Major: 2, Minor: 0}), SizeU32)
	if err := c.Finish(); err != nil {
		return err
	}
	t.data = data
	return nil
}

func (t scoreTable) Version() MajorMinor {
	major, _ := t.data.U16At(t.version.Start)
	minor, _ := t.data.U16At(t.version.Start + SizeU16)
	return MajorMinor{Major: major, Minor: minor}
}

func (t scoreTable) BaseScore() uint16 {
	v, _ := t.data.U16At(t.baseScore.Start)
	return v
}

func (t scoreTable) BonusScore() Option[uint16] {
	region, ok := t.bonusScore.Unwrap()
	if !ok {
		return None[uint16]()
	}
	v, _ := t.data.U16At(region.Start)
	return Some(v)
}

func (t scoreTable) Penalty() Option[uint32] {
	region, ok := t.penalty.Unwrap()
	if !ok {
		return None[uint32]()
	}
	v, _ := t.data.U32At(region.Start)
	return Some(v)
}

func (t scoreTable) TableName() string {
	return "scoreTable"
}

func (t scoreTable) Fields() iter.Seq[Field] {
	return FieldSeq(
		Field{Name: "version", Value: t.Version()},
		Field{Name: "baseScore", Value: t.BaseScore()},
		Field{Name: "bonusScore", Value: t.BonusScore()},
		Field{Name: "penalty", Value: t.Penalty()},
	)
}

// --- shade: a format-tagged union ---------------------------------------------
//
// format 1 (solid):     format uint16, value uint16
// format 2 (gradient):  format uint16, stopCount uint16, stops uint16[stopCount]

type shade interface {
	ShadeFormat() uint16
}

type solidShade struct {
	data   FontData
	format Region
	value  Region
}

func (t *solidShade) ReadFrom(data FontData) error {
	c := data.Cursor()
	t.format = c.Field(SizeU16)
	t.value = c.Field(SizeU16)
	if err := c.Finish(); err != nil {
		return err
	}
	t.data = data
	return nil
}

func (t solidShade) ShadeFormat() uint16 { return 1 }

func (t solidShade) Value() uint16 {
	v, _ := t.data.U16At(t.value.Start)
	return v
}

type gradientShade struct {
	data      FontData
	format    Region
	stopCount Region
	stops     Region
	count     int
}

func (t *gradientShade) ReadFrom(data FontData) error {
	c := data.Cursor()
	t.format = c.Field(SizeU16)
	var n uint16
	t.stopCount, n = c.FieldU16()
	t.count = int(n)
	t.stops = c.FieldArray(t.count, SizeU16)
	if err := c.Finish(); err != nil {
		return err
	}
	t.data = data
	return nil
}

func (t gradientShade) ShadeFormat() uint16 { return 2 }

func (t gradientShade) Stops() U16Array {
	seg, err := t.stops.In(t.data)
	if err != nil {
		return U16Array{}
	}
	arr, err := ReadU16Array(seg, t.count)
	if err != nil {
		return U16Array{}
	}
	return arr
}

var shadeDispatch = NewFormatDispatcher[shade]().
	Register(1, func(data FontData) (shade, error) {
		return Interpret[solidShade](data)
	}).
	Register(2, func(data FontData) (shade, error) {
		return Interpret[gradientShade](data)
	})

// --- chainTable: offset-linked list -------------------------------------------
//
// label  uint16
// next   Offset16 (nullable) -> chainTable

type chainTable struct {
	data  FontData
	label Region
	next  Region
}

func (t *chainTable) ReadFrom(data FontData) error {
	c := data.Cursor()
	t.label = c.Field(SizeU16)
	t.next = c.Field(SizeU16)
	if err := c.Finish(); err != nil {
		return err
	}
	t.data = data
	return nil
}

func (t chainTable) Label() uint16 {
	v, _ := t.data.U16At(t.label.Start)
	return v
}

func (t chainTable) NextOffset() Offset16 {
	v, _ := t.data.Offset16At(t.next.Start)
	return v
}

func (t chainTable) Next() (Option[chainTable], error) {
	return ResolveNullable[chainTable](t.NextOffset(), t.data)
}

// --- pointRecord: fixed-size record for RecordArray ----------------------------

type pointRecord struct {
	X, Y int16
}

func (r *pointRecord) ReadFrom(data FontData) error {
	c := data.Cursor()
	r.X = c.ReadI16()
	r.Y = c.ReadI16()
	return c.Finish()
}

func (r *pointRecord) RecordSize() int {
	return 2 * SizeU16
}

// --- tupleRecord: computed-size record for ComputedArray -----------------------
//
// id      uint16
// coords  uint16[axisCount]     axisCount supplied externally

type tupleRecord struct {
	id     uint16
	coords U16Array
}

func (r *tupleRecord) ReadWithArgs(data FontData, axisCount uint16) error {
	c := data.Cursor()
	r.id = c.ReadU16()
	region := c.FieldArray(int(axisCount), SizeU16)
	if err := c.Finish(); err != nil {
		return err
	}
	seg, err := region.In(data)
	if err != nil {
		return err
	}
	r.coords, err = ReadU16Array(seg, int(axisCount))
	return err
}

func (r *tupleRecord) SizeWithArgs(axisCount uint16) int {
	return SizeU16 + int(axisCount)*SizeU16
}

// --- blobRecord: variable-length record for VarArray ---------------------------
//
// length   uint8
// payload  uint8[length]

type blobRecord struct {
	payload FontData
	size    int
}

func (r *blobRecord) ReadFrom(data FontData) error {
	c := data.Cursor()
	n := c.ReadU8()
	region := c.Field(int(n))
	if err := c.Finish(); err != nil {
		return err
	}
	payload, err := region.In(data)
	if err != nil {
		return err
	}
	r.payload = payload
	r.size = SizeU8 + int(n)
	return nil
}

func (r *blobRecord) ByteSize() int {
	return r.size
}
