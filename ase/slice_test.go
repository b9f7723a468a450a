package ase

import (
	"testing"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func TestSlices(t *testing.T) {
	key := ttesting.SliceKeySpec{
		Frame: 1, X: -2, Y: 3, W: 10, H: 20,
		Patch:  [4]int32{1, 2, 8, 16},
		PivotX: 5, PivotY: -6,
	}
	b := ttesting.NewBuilder(1, 1, 32)
	b.Frame(10).
		Slice("plain", 0, key).
		Slice("nine", 1, key, key).
		Slice("pivot", 2, key).
		Slice("both", 3, key).
		Layer(visible)

	doc, err := DecodeBytes(b.Bytes())
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	ttesting.AssertEqualInt(t, "slices", len(doc.Slices), 4)
	ttesting.AssertEqualInt(t, "still aligned afterwards", len(doc.Layers), 1)

	plain := doc.Slices[0]
	if plain.Has9Slice || plain.HasPivot {
		t.Errorf("plain slice has flags set")
	}
	k := plain.Keys[0]
	if k.Frame != 1 || k.Bounds != (Rect{X: -2, Y: 3, Width: 10, Height: 20}) {
		t.Errorf("got key %+v", k)
	}
	if k.Patch != nil || k.Pivot != nil {
		t.Errorf("plain slice key carries patch or pivot")
	}

	nine := doc.Slices[1]
	ttesting.AssertEqualInt(t, "nine keys", len(nine.Keys), 2)
	if !nine.Has9Slice || nine.Keys[1].Patch == nil || *nine.Keys[1].Patch != (Rect{X: 1, Y: 2, Width: 8, Height: 16}) {
		t.Errorf("got 9-slice %+v", nine)
	}
	if nine.Keys[1].Pivot != nil {
		t.Errorf("9-slice key carries a pivot")
	}

	pivot := doc.Slices[2].Keys[0]
	if pivot.Patch != nil || pivot.Pivot == nil || *pivot.Pivot != (Point{X: 5, Y: -6}) {
		t.Errorf("got pivot key %+v", pivot)
	}

	both := doc.Slices[3]
	ttesting.AssertEqualString(t, "name", both.Name, "both")
	if both.Keys[0].Patch == nil || both.Keys[0].Pivot == nil {
		t.Errorf("slice with both flags lacks patch or pivot")
	}
	if got := both.Keys[0].Bounds.Rectangle(); got.Dx() != 10 || got.Dy() != 20 {
		t.Errorf("got rectangle %v", got)
	}
}
