package otview

import (
	"fmt"
	"iter"

	"github.com/npillmayer/otview/view"
)

// Code comments will occasionally cite the OpenType specification
// version 1.8.4; see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// SFNT version values this package accepts.
// OpenType fonts that contain TrueType outlines use the value 0x00010000,
// fonts containing CFF data use 0x4F54544F ('OTTO'). The Apple
// specification additionally allows 'true'.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionCFF      = 0x4f54544f // 'OTTO'
	sfntVersionAppleTT  = 0x74727565 // 'true'
)

// tableRecordSize is the encoded size of one directory entry:
// tag, checksum, offset and length, 4 bytes each.
const tableRecordSize = 16

// --- Table record ------------------------------------------------------------

// TableRecord is one entry of the table directory. It is a record, not a
// table: its position comes from the enclosing array, and its offset
// resolves against an externally supplied base (the whole font file).
type TableRecord struct {
	TableTag view.Tag      // table name
	Checksum uint32        // checksum of the table bytes
	Offset   view.Offset32 // displacement from the beginning of the font file
	Length   uint32        // table length in bytes
}

// ReadFrom decodes one directory entry from the front of data.
func (r *TableRecord) ReadFrom(data view.FontData) error {
	c := data.Cursor()
	r.TableTag = c.ReadTag()
	r.Checksum = c.ReadU32()
	r.Offset = c.ReadOffset32()
	r.Length = c.ReadU32()
	return c.Finish()
}

// RecordSize returns the constant encoded size of a table record.
func (r *TableRecord) RecordSize() int {
	return tableRecordSize
}

// TableData resolves the record against the font file bytes and returns
// the table's segment, trimmed to the record's length. Resolution is
// checked on every call; a record whose extent leaves the file yields
// view.ErrOutOfBounds. Directory offsets are never nullable — offset 0 is
// where the directory itself lives — so a zero offset is a bounds defect,
// not an absent table.
func (r TableRecord) TableData(base view.FontData) (view.FontData, error) {
	if r.Offset.IsNull() {
		return nil, view.ErrOutOfBounds
	}
	seg, err := view.Target(r.Offset, base)
	if err != nil {
		return nil, err
	}
	if int64(r.Length) > int64(seg.Len()) {
		return nil, view.ErrOutOfBounds
	}
	return seg.Slice(0, int(r.Length))
}

// TableName implements view.Walker.
func (r TableRecord) TableName() string {
	return "TableRecord"
}

// Fields implements view.Walker.
func (r TableRecord) Fields() iter.Seq[view.Field] {
	return view.FieldSeq(
		view.Field{Name: "tableTag", Value: r.TableTag},
		view.Field{Name: "checksum", Value: r.Checksum},
		view.Field{Name: "offset", Value: r.Offset},
		view.Field{Name: "length", Value: r.Length},
	)
}

// --- Table directory -----------------------------------------------------------

// TableDirectory is the view of the font's top-level directory: the SFNT
// header followed by one record per table.
// "The Offset Table is followed immediately by the Table Record entries …
// sorted in ascending order by tag", 16 bytes each.
type TableDirectory struct {
	data view.FontData

	sfntVersion  view.Region
	numTables    view.Region
	binarySearch view.Region // searchRange, entrySelector, rangeShift
	records      view.Region

	tableCount int
}

// ReadFrom validates the directory header and measures the record array.
func (d *TableDirectory) ReadFrom(data view.FontData) error {
	c := data.Cursor()
	var version uint32
	d.sfntVersion, version = c.FieldU32()
	var count uint16
	d.numTables, count = c.FieldU16()
	d.tableCount = int(count)
	d.binarySearch = c.Field(3 * view.SizeU16)
	d.records = c.FieldArray(d.tableCount, tableRecordSize)
	if err := c.Finish(); err != nil {
		return err
	}
	switch version {
	case sfntVersionTrueType, sfntVersionCFF, sfntVersionAppleTT:
	default:
		return view.DiscriminantError{Field: "sfntVersion", Value: int64(version)}
	}
	d.data = data
	return nil
}

// SfntVersion returns the font type discriminant from the header.
func (d TableDirectory) SfntVersion() uint32 {
	v, _ := d.data.U32At(d.sfntVersion.Start)
	return v
}

// NumTables returns the number of table records.
func (d TableDirectory) NumTables() int {
	return d.tableCount
}

// Records returns the directory's record array.
func (d TableDirectory) Records() view.RecordArray[TableRecord, *TableRecord] {
	seg, err := d.records.In(d.data)
	if err != nil {
		return view.RecordArray[TableRecord, *TableRecord]{}
	}
	arr, err := view.ReadRecordArray[TableRecord](seg, d.tableCount)
	if err != nil {
		return view.RecordArray[TableRecord, *TableRecord]{}
	}
	return arr
}

// TableName implements view.Walker.
func (d TableDirectory) TableName() string {
	return "TableDirectory"
}

// Fields implements view.Walker.
func (d TableDirectory) Fields() iter.Seq[view.Field] {
	records := make([]view.Walker, 0, d.tableCount)
	for _, rec := range d.Records().Range() {
		records = append(records, rec)
	}
	return view.FieldSeq(
		view.Field{Name: "sfntVersion", Value: d.SfntVersion()},
		view.Field{Name: "numTables", Value: uint16(d.tableCount)},
		view.Field{Name: "tableRecords", Value: records},
	)
}

// --- FontRef ---------------------------------------------------------------------

// FontRef gives access to the tables of a single parsed font. It borrows
// the font bytes handed to Parse; they are assumed immutable while the
// FontRef remains in use.
type FontRef struct {
	data        view.FontData
	dir         TableDirectory
	sorted      bool // record tags in ascending order, binary search allowed
	diagnostics []FontError
}

// Parse reads the table directory of a single OpenType font.
//
// The header and directory extent are validated here; the extent of each
// individual table is checked lazily, when the table is requested. Spec
// infringements that fonts in the wild commonly get away with (unsorted
// or misaligned table records) are collected as diagnostics instead of
// failing the parse.
func Parse(font []byte) (*FontRef, error) {
	data := view.FontData(font)
	dir, err := view.Interpret[TableDirectory](data)
	if err != nil {
		return nil, fmt.Errorf("font table directory: %w", err)
	}
	tracer().Debugf("font with %d tables, type = %s", dir.NumTables(), view.Tag(dir.SfntVersion()))
	f := &FontRef{data: data, dir: dir, sorted: true}
	prev := view.Tag(0)
	for i, rec := range dir.Records().Range() {
		if i > 0 && rec.TableTag < prev {
			f.sorted = false
			f.remark(rec.TableTag, "table records not in ascending tag order", SeverityMajor, 0)
		}
		prev = rec.TableTag
		// "all tables must begin on four byte boundries"
		if rec.Offset.Raw()&3 != 0 {
			f.remark(rec.TableTag, "table offset not 4-byte aligned", SeverityMinor, rec.Offset.Raw())
		}
		if _, err := rec.TableData(data); err != nil {
			f.remark(rec.TableTag,
				fmt.Sprintf("extent [%d:+%d] exceeds font size %d", rec.Offset.Raw(), rec.Length, len(font)),
				SeverityMajor, rec.Offset.Raw())
		}
	}
	return f, nil
}

func (f *FontRef) remark(tag view.Tag, issue string, sev Severity, offset uint32) {
	tracer().Infof("font directory: [%s] %s: %s", sev, tag, issue)
	f.diagnostics = append(f.diagnostics, FontError{
		Table:    tag,
		Issue:    issue,
		Severity: sev,
		Offset:   offset,
	})
}

// Directory returns the font's table directory view.
func (f *FontRef) Directory() TableDirectory {
	return f.dir
}

// NumTables returns the number of tables in the font.
func (f *FontRef) NumTables() int {
	return f.dir.NumTables()
}

// Diagnostics returns the spec infringements found in the table
// directory. They did not prevent parsing; clients decide whether the
// font is still acceptable for their use case.
func (f *FontRef) Diagnostics() []FontError {
	return f.diagnostics
}

// Record returns the directory record for a table, if present.
func (f *FontRef) Record(tag view.Tag) (TableRecord, bool) {
	records := f.dir.Records()
	if f.sorted {
		lo, hi := 0, records.Len()
		for lo < hi {
			mid := (lo + hi) / 2
			rec, err := records.Get(mid)
			if err != nil {
				return TableRecord{}, false
			}
			switch {
			case rec.TableTag == tag:
				return rec, true
			case rec.TableTag < tag:
				lo = mid + 1
			default:
				hi = mid
			}
		}
		return TableRecord{}, false
	}
	for _, rec := range records.Range() {
		if rec.TableTag == tag {
			return rec, true
		}
	}
	return TableRecord{}, false
}

// Table returns the byte segment of the table with the given tag. The
// segment borrows from the font bytes; clients must treat it as read-only.
//
// Table tag names are case-sensitive, following the names in the OpenType
// specification, e.g. 'cmap', 'head', 'OS/2', 'GSUB'.
func (f *FontRef) Table(tag view.Tag) (view.FontData, error) {
	rec, ok := f.Record(tag)
	if !ok {
		return nil, TableMissingError{Tag: tag}
	}
	return rec.TableData(f.data)
}

// TableTags returns the tags of all tables in the font, in directory order.
func (f *FontRef) TableTags() []view.Tag {
	tags := make([]view.Tag, 0, f.dir.NumTables())
	for _, rec := range f.dir.Records().Range() {
		tags = append(tags, rec.TableTag)
	}
	return tags
}
