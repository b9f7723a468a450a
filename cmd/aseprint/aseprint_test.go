package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func testSprite() []byte {
	b := ttesting.NewBuilder(2, 2, 32)
	b.Frame(100).
		Layer(ttesting.LayerSpec{Name: "Group", Kind: 1, Flags: 1, Opacity: 255}).
		Layer(ttesting.LayerSpec{Name: "Child", Depth: 1, Flags: 1, Opacity: 255}).
		Layer(ttesting.LayerSpec{Name: "Hidden", Opacity: 255, Blend: 2}).
		RawCel(ttesting.CelSpec{Layer: 1, Opacity: 255}, 1, 1, []byte{255, 0, 0, 255}).
		Tags(ttesting.TagSpec{Name: "idle", From: 0, To: 1, Direction: 2, Repeat: 3}).
		Slice("hitbox", 0, ttesting.SliceKeySpec{W: 2, H: 1}).
		Palette(0, []color.NRGBA{{R: 255, A: 255}, {A: 255}}, nil)
	b.Frame(50)
	return b.Bytes()
}

func writeSprites(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, testSprite(), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestDecodeAllKeepsOrder(t *testing.T) {
	paths := writeSprites(t, "a.aseprite", "b.aseprite", "c.aseprite")
	sprites, err := decodeAll(paths)
	if err != nil {
		t.Fatalf("decodeAll: %v", err)
	}
	ttesting.AssertEqualInt(t, "sprites", len(sprites), 3)
	for i, s := range sprites {
		ttesting.AssertEqualString(t, "name", s.name, paths[i])
		ttesting.AssertEqualInt(t, "frames", len(s.doc.Frames), 2)
	}
}

func TestDecodeAllReportsMissing(t *testing.T) {
	paths := writeSprites(t, "a.aseprite")
	paths = append(paths, filepath.Join(t.TempDir(), "nope.aseprite"))
	if _, err := decodeAll(paths); err == nil {
		t.Errorf("decodeAll succeeded with a missing file")
	}
}

func TestPrintSummary(t *testing.T) {
	paths := writeSprites(t, "s.aseprite")
	doc, err := decodeFile(paths[0])
	if err != nil {
		t.Fatalf("decodeFile: %v", err)
	}

	var buf bytes.Buffer
	printSummary(&buf, "s", doc, false)
	got := buf.String()

	for _, want := range []string{
		"s: 2x2, 32 bpp, 2 frames, pixel ratio 1\n",
		"Tags:\n  idle: frames 0-1, pingpong x3\n",
		"Layers:\n  Group (group)\n    Child (normal)\n  Hidden (normal, multiply, hidden)\n",
		"Slices:\n  hitbox: [0] (0,0)-(2,1)\n",
		"Palette: 2 colors\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary lacks %q; got:\n%s", want, got)
		}
	}
}

func TestFramesToPrint(t *testing.T) {
	paths := writeSprites(t, "s.aseprite")
	doc, err := decodeFile(paths[0])
	if err != nil {
		t.Fatalf("decodeFile: %v", err)
	}

	*tagName = "idle"
	defer func() { *tagName = "" }()
	frames, err := framesToPrint(doc)
	if err != nil {
		t.Fatalf("framesToPrint: %v", err)
	}
	ttesting.AssertEqualInt(t, "pingpong over two frames", len(frames), 2)

	*tagName = "run"
	if _, err := framesToPrint(doc); err == nil {
		t.Errorf("unknown tag accepted")
	}
}
