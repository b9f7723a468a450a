package main

import (
	"fmt"
	"io"

	"github.com/bradfitz/iter"

	"badc0de.net/pkg/go-aseprite/ase"
	"badc0de.net/pkg/go-aseprite/imageprint"
)

// printSummary writes a textual overview of doc to w. With swatches set, tag
// colors are drawn through imageprint, which always writes to imageprint.Out.
func printSummary(w io.Writer, name string, doc *ase.Document, swatches bool) {
	fmt.Fprintf(w, "%s: %dx%d, %d bpp, %d frames, pixel ratio %g\n",
		name, doc.Width, doc.Height, doc.ColorDepth, len(doc.Frames), doc.PixelRatio)

	if len(doc.Tags) > 0 {
		fmt.Fprintf(w, "Tags:\n")
		for _, t := range doc.Tags {
			label := fmt.Sprintf("%s: frames %d-%d, %v", t.Name, t.From, t.To, t.Direction)
			if t.Repeat > 0 {
				label += fmt.Sprintf(" x%d", t.Repeat)
			}
			if swatches {
				imageprint.PrintSwatch(t.Color, label)
			} else {
				fmt.Fprintf(w, "  %s\n", label)
			}
		}
	}

	fmt.Fprintf(w, "Layers:\n")
	for i, l := range doc.Layers {
		fmt.Fprintf(w, "  ")
		for range iter.N(l.Depth) {
			fmt.Fprintf(w, "  ")
		}
		fmt.Fprintf(w, "%s (%v", l.Name, l.Kind)
		if l.BlendMode != ase.BlendNormal {
			fmt.Fprintf(w, ", %v", l.BlendMode)
		}
		if !doc.LayerVisible(ase.LayerIndex(i)) {
			fmt.Fprintf(w, ", hidden")
		}
		fmt.Fprintf(w, ")\n")
	}

	if len(doc.Slices) > 0 {
		fmt.Fprintf(w, "Slices:\n")
		for _, s := range doc.Slices {
			fmt.Fprintf(w, "  %s:", s.Name)
			for _, k := range s.Keys {
				fmt.Fprintf(w, " [%d] %v", k.Frame, k.Bounds.Rectangle())
			}
			fmt.Fprintf(w, "\n")
		}
	}

	fmt.Fprintf(w, "Palette: %d colors\n", len(doc.Palette.Colors))
}
