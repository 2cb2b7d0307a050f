package view

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWalkTableFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	table, err := Interpret[scoreTable](scoreV11)
	if err != nil {
		t.Fatal(err)
	}
	var w Walker = table
	if w.TableName() != "scoreTable" {
		t.Errorf("table name = %s", w.TableName())
	}
	var names []string
	values := make(map[string]any)
	for f := range w.Fields() {
		names = append(names, f.Name)
		values[f.Name] = f.Value
	}
	want := []string{"version", "baseScore", "bonusScore", "penalty"}
	if len(names) != len(want) {
		t.Fatalf("walked %d fields, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("field %d = %s, want %s (declaration order)", i, names[i], name)
		}
	}
	if v, ok := values["baseScore"].(uint16); !ok || v != 42 {
		t.Errorf("walked baseScore = %v", values["baseScore"])
	}
	// gated fields walk as Options, absent ones included
	if bonus, ok := values["bonusScore"].(Option[uint16]); !ok || bonus.Or(0) != 7 {
		t.Errorf("walked bonusScore = %v", values["bonusScore"])
	}
	if penalty, ok := values["penalty"].(Option[uint32]); !ok || penalty.IsSome() {
		t.Errorf("walked penalty = %v, want None", values["penalty"])
	}
}

func TestWalkStopsOnYieldFalse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otview")
	defer teardown()
	//
	seq := FieldSeq(
		Field{Name: "a", Value: 1},
		Field{Name: "b", Value: 2},
		Field{Name: "c", Value: 3},
	)
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("broke after %d fields, want 2", count)
	}
}
