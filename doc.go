/*
Package otview opens OpenType font files as zero-copy table views.

The package sits at the container level of a font file: it validates the
SFNT table directory and hands out the byte segments of individual tables
by tag. Interpreting a table's interior is the job of table types built on
the sister package view, which carries the generic parsing machinery
(bounds-checked segments, shapes, offsets, format dispatch, lazy arrays).

Typical use:

	font, err := otview.Parse(fontBytes)
	if err != nil { … }
	gsub, err := font.Table(view.T("GSUB"))

The returned segment borrows from fontBytes, which must stay immutable and
alive while any view derived from it is in use.

# Status

Single fonts only; font collections (TTC) are not supported yet. The
mutable write path lives outside this module.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otview

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.otview'
func tracer() tracing.Trace {
	return tracing.Select("font.otview")
}
