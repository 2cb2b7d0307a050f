package view

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTargetResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	base := FontData{0x00, 0x01, 0x02, 0x03}
	seg, err := Target(Offset16(2), base)
	if err != nil || seg.Len() != 2 || seg[0] != 0x02 {
		t.Errorf("target of displacement 2 = %v (err %v)", seg, err)
	}
	if _, err := Target(Offset16(0), base); err != ErrNullOffset {
		t.Errorf("null offset: err = %v, want ErrNullOffset", err)
	}
	if _, err := Target(Offset16(5), base); err != ErrOutOfBounds {
		t.Errorf("displacement past end: err = %v, want ErrOutOfBounds", err)
	}
	// a displacement of exactly len(base) yields an empty segment, which
	// then fails any actual table read
	seg, err = Target(Offset32(4), base)
	if err != nil || seg.Len() != 0 {
		t.Errorf("target at end = %v (err %v)", seg, err)
	}
}

// Two chain links: the table at 0 points at the table at 4, whose next
// offset is null.
var chainBytes = FontData{
	0x00, 0x01, 0x00, 0x04, // label 1, next -> 4
	0x00, 0x02, 0x00, 0x00, // label 2, next null
}

func TestResolveOffsetChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	head, err := Interpret[chainTable](chainBytes)
	if err != nil {
		t.Fatalf("cannot interpret chain head: %v", err)
	}
	if head.Label() != 1 {
		t.Errorf("head label = %d, want 1", head.Label())
	}
	next, err := head.Next()
	if err != nil {
		t.Fatalf("resolving head's next link: %v", err)
	}
	second, ok := next.Unwrap()
	if !ok {
		t.Fatalf("head's next link resolved to None")
	}
	if second.Label() != 2 {
		t.Errorf("second label = %d, want 2", second.Label())
	}
	// the chain ends with a null offset: None, not an error
	tail, err := second.Next()
	if err != nil || tail.IsSome() {
		t.Errorf("chain tail = %v (err %v), want None", tail, err)
	}
}

// A null nullable offset yields None without touching any byte — an empty
// base must not matter.
func TestResolveNullableSkipsRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	opt, err := ResolveNullable[chainTable](Offset16(0), EmptyData)
	if err != nil || opt.IsSome() {
		t.Errorf("null against empty base = %v (err %v), want None", opt, err)
	}
	// a non-null offset against the same base is a bounds error
	if _, err := ResolveNullable[chainTable](Offset16(1), EmptyData); err != ErrOutOfBounds {
		t.Errorf("non-null against empty base: err = %v, want ErrOutOfBounds", err)
	}
}

func TestResolveRejectsBadTargets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	if _, err := Resolve[chainTable](Offset16(0), chainBytes); err != ErrNullOffset {
		t.Errorf("null offset through Resolve: err = %v, want ErrNullOffset", err)
	}
	// in bounds as a displacement, but too close to the end for the table
	if _, err := Resolve[chainTable](Offset16(6), chainBytes); err != ErrOutOfBounds {
		t.Errorf("target too short for table: err = %v, want ErrOutOfBounds", err)
	}
}

// Resolution never caches: the same offset resolved twice yields two
// independent, equal views.
func TestResolutionIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	head, err := Interpret[chainTable](chainBytes)
	if err != nil {
		t.Fatal(err)
	}
	first, err1 := head.Next()
	second, err2 := head.Next()
	if err1 != nil || err2 != nil {
		t.Fatalf("resolution errors: %v / %v", err1, err2)
	}
	if first.MustUnwrap().Label() != second.MustUnwrap().Label() {
		t.Errorf("repeated resolutions disagree")
	}
}

func TestDepthGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	g := DepthGuard(2)
	g, err := g.Descend()
	if err != nil {
		t.Fatalf("first descent: %v", err)
	}
	g, err = g.Descend()
	if err != nil {
		t.Fatalf("second descent: %v", err)
	}
	if _, err = g.Descend(); err != ErrDepthExceeded {
		t.Errorf("exhausted guard: err = %v, want ErrDepthExceeded", err)
	}
}
