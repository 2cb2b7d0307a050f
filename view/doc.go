/*
Package view interprets raw OpenType font bytes as typed, read-only views.

OpenType tables are deeply nested binary structures linked by byte offsets,
and they arrive from sources we cannot trust: downloaded font files,
embedded subsets, memory-mapped system fonts. This package provides the
generic machinery for imposing table structure onto such bytes without
copying them and without allocating:

▪︎ FontData is a bounds-known window onto the input buffer; every derived
view borrows from the same underlying bytes.

▪︎ Cursor walks a table's fields during validation, measuring each field's
byte region and failing with ErrOutOfBounds instead of panicking when the
data runs short.

▪︎ Table views pair a FontData with a per-type shape (the byte region of
every field, computed once during validation). Field getters decode on
demand; nothing is cached and views are cheap to copy.

▪︎ Offsets, format-tagged unions, version-gated fields and the three array
flavours (fixed stride, computed stride, variable length) round out the
toolkit that concrete table types are built from.

Package view does not know any specific font table. Concrete table types —
whether written by hand or emitted by a schema tool — implement TableType
on top of these primitives; the sister package otview does exactly that
for the SFNT table directory.

A note on safety: any byte pattern, including an adversarial one, must
produce either a valid view or a typed error. There is no panic path for
malformed input, and no read ever leaves the original buffer.

# Status

Font collections and the mutable write-path are not covered; views are
strictly read-only and a compiled font has to be produced elsewhere.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package view

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.otview'
func tracer() tracing.Trace {
	return tracing.Select("font.otview")
}
