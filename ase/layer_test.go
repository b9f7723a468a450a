package ase

import (
	"testing"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func TestLayerHierarchy(t *testing.T) {
	b := ttesting.NewBuilder(1, 1, 32)
	b.Frame(10).
		Layer(ttesting.LayerSpec{Name: "root", Kind: 1, Depth: 0, Flags: 1}).
		Layer(ttesting.LayerSpec{Name: "group", Kind: 1, Depth: 1, Flags: 1}).
		Layer(ttesting.LayerSpec{Name: "leaf", Depth: 2, Flags: 1, Blend: 2, Opacity: 77}).
		Layer(ttesting.LayerSpec{Name: "sibling", Depth: 1, Flags: 1})

	doc, err := DecodeBytes(b.Bytes())
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	root, group, leaf, sibling := doc.Layers[0], doc.Layers[1], doc.Layers[2], doc.Layers[3]

	ttesting.AssertEqualInt(t, "root has no parent", int(root.Parent), int(NoLayer))
	ttesting.AssertEqualInt(t, "group under root", int(group.Parent), 0)
	ttesting.AssertEqualInt(t, "leaf under group", int(leaf.Parent), 1)
	ttesting.AssertEqualInt(t, "sibling under root, not leaf", int(sibling.Parent), 0)

	ttesting.AssertEqualInt(t, "root children", len(root.Children), 2)
	ttesting.AssertEqualInt(t, "group children", len(group.Children), 1)
	ttesting.AssertEqualInt(t, "group's child is leaf", int(group.Children[0]), 2)
	ttesting.AssertEqualInt(t, "root's second child is sibling", int(root.Children[1]), 3)

	ttesting.AssertEqualString(t, "group kind", group.Kind.String(), "group")
	ttesting.AssertEqualString(t, "leaf blend mode", leaf.BlendMode.String(), "multiply")
	ttesting.AssertEqualInt(t, "leaf opacity", int(leaf.Opacity), 77)
	ttesting.AssertEqualInt(t, "leaf depth", leaf.Depth, 2)
}

func TestLayerWithoutParent(t *testing.T) {
	b := ttesting.NewBuilder(1, 1, 32)
	b.Frame(10).
		Layer(ttesting.LayerSpec{Name: "root", Depth: 0}).
		Layer(ttesting.LayerSpec{Name: "orphan", Depth: 2})

	_, err := DecodeBytes(b.Bytes())
	ttesting.AssertErrorIs(t, "orphan layer", err, ErrInvalidReference)
}

func TestBlendModeNames(t *testing.T) {
	for mode, want := range map[BlendMode]string{
		BlendNormal:     "normal",
		BlendColorBurn:  "color-burn",
		BlendAddition:   "addition",
		BlendDivide:     "divide",
		BlendLuminosity: "luminosity",
		BlendMode(19):   "BlendMode(19)",
	} {
		ttesting.AssertEqualString(t, want, mode.String(), want)
	}
}

func TestLayerVisibility(t *testing.T) {
	b := ttesting.NewBuilder(1, 1, 32)
	b.Frame(10).
		Layer(ttesting.LayerSpec{Name: "hidden group", Kind: 1}).
		Layer(ttesting.LayerSpec{Name: "child", Depth: 1, Flags: 1}).
		Layer(ttesting.LayerSpec{Name: "shown", Flags: 1})

	doc, err := DecodeBytes(b.Bytes())
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if doc.LayerVisible(1) {
		t.Errorf("child of hidden group reported visible")
	}
	if !doc.LayerVisible(2) {
		t.Errorf("visible top-level layer reported hidden")
	}
}
