package view

// Offset fields store a byte displacement from a defined base. For a field
// inside a table the base is, by convention, the start of that table's own
// data; a table needing a different base exposes a custom accessor.
// Records do not carry a base at all — their offset getters take the
// parent table's data as an explicit argument.
//
// Resolution is lazy and re-checked on every access; results are never
// cached. A displacement of zero is "absent" for fields the schema marks
// nullable, and a validation error everywhere else.

// Offset is any of the stored offset value types.
type Offset interface {
	Raw() uint32    // the stored displacement
	IsNull() bool   // true iff the displacement is zero
}

func (o Offset16) Raw() uint32  { return uint32(o) }
func (o Offset16) IsNull() bool { return o == 0 }

func (o Offset24) Raw() uint32  { return uint32(o) }
func (o Offset24) IsNull() bool { return o == 0 }

func (o Offset32) Raw() uint32  { return uint32(o) }
func (o Offset32) IsNull() bool { return o == 0 }

// Target returns the segment of base the offset points to, i.e.
// base[displacement:]. A null offset yields ErrNullOffset, a displacement
// past the end of base yields ErrOutOfBounds.
func Target(o Offset, base FontData) (FontData, error) {
	if o.IsNull() {
		return nil, ErrNullOffset
	}
	disp := int(o.Raw())
	if disp < 0 || disp > len(base) {
		return nil, ErrOutOfBounds
	}
	return base[disp:], nil
}

// Resolve reinterprets the bytes the offset points to, relative to base,
// as a table view of type T. A null offset is an error here; use
// ResolveNullable for fields the schema marks nullable.
func Resolve[T any, P tablePtr[T]](o Offset, base FontData) (T, error) {
	target, err := Target(o, base)
	if err != nil {
		var zero T
		return zero, err
	}
	return Interpret[T, P](target)
}

// ResolveNullable resolves a nullable offset. A null offset is the None
// outcome, not an error, and triggers no byte read at all.
func ResolveNullable[T any, P tablePtr[T]](o Offset, base FontData) (Option[T], error) {
	if o.IsNull() {
		return None[T](), nil
	}
	t, err := Resolve[T, P](o, base)
	if err != nil {
		return None[T](), err
	}
	return Some(t), nil
}

// --- Recursion budget ---------------------------------------------------------

// DepthGuard is an opt-in budget for offset-chain depth. The core does not
// track resolution depth itself: every resolution consumes part of a
// finite buffer, so shape-valid chains cannot loop forever, but they can
// legitimately be very deep. A consumer walking an untrusted graph
// recursively threads a guard through its own calls:
//
//	func walk(t SomeTable, g view.DepthGuard) error {
//		g, err := g.Descend()
//		if err != nil {
//			return err
//		}
//		…
//	}
type DepthGuard int

// Descend consumes one level of the budget. An exhausted guard returns
// ErrDepthExceeded.
func (g DepthGuard) Descend() (DepthGuard, error) {
	if g <= 0 {
		tracer().Errorf("offset chain deeper than allotted budget")
		return 0, ErrDepthExceeded
	}
	return g - 1, nil
}
