// Command aseprint summarizes .aseprite files and previews their frames on
// the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-aseprite/ase"
	"badc0de.net/pkg/go-aseprite/imageprint"
	"badc0de.net/pkg/go-aseprite/paths"
)

var (
	frameIdx = flag.Int("frame", -1, "frame to print; -1 prints none")
	tagName  = flag.String("tag", "", "print all frames of this tag in playback order")
	banner   = flag.Bool("banner", false, "print each file name as a banner")
	palette  = flag.Bool("palette", true, "print palette swatches")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with rasterm (kitty, iterm, sixel)")
	col      = flag.Bool("col", true, "whether to use color escape codes at all")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", false, "whether to fit images to the terminal")
	dataURL  = flag.Bool("dataurl", false, "print rendered frames as PNG data URLs instead of drawing them")
)

type sprite struct {
	name string
	doc  *ase.Document
}

func decodeFile(name string) (*ase.Document, error) {
	path := name
	if _, err := os.Stat(name); err != nil {
		path = paths.Find(name)
	}
	if path == "" {
		return nil, errors.Errorf("%s: not found", name)
	}
	f, err := paths.NoFindOpen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()

	doc, err := ase.DecodeAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	return doc, nil
}

// decodeAll decodes all named files concurrently. The result keeps the order
// of names.
func decodeAll(names []string) ([]sprite, error) {
	sprites := make([]sprite, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := decodeFile(name)
			if err != nil {
				return err
			}
			sprites[i] = sprite{name: name, doc: doc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sprites, nil
}

func framesToPrint(doc *ase.Document) ([]ase.FrameIndex, error) {
	var frames []ase.FrameIndex
	if *frameIdx >= 0 {
		if *frameIdx >= len(doc.Frames) {
			return nil, errors.Errorf("frame %d out of range; sprite has %d", *frameIdx, len(doc.Frames))
		}
		frames = append(frames, ase.FrameIndex(*frameIdx))
	}
	if *tagName != "" {
		ti, ok := doc.TagByName(*tagName)
		if !ok {
			return nil, errors.Errorf("no tag %q", *tagName)
		}
		frames = append(frames, doc.Tags[ti].Sequence()...)
	}
	return frames, nil
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.aseprite...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	sprites, err := decodeAll(flag.Args())
	if err != nil {
		glog.Exitf("%v", err)
	}

	for _, s := range sprites {
		if *banner {
			figure.NewFigure(s.name, "", false).Print()
		}
		printSummary(imageprint.Out, s.name, s.doc, *col)
		if *palette && len(s.doc.Palette.Colors) > 0 {
			imageprint.PrintPalette(s.doc.Palette, 16)
		}

		frames, err := framesToPrint(s.doc)
		if err != nil {
			glog.Errorf("%s: %v", s.name, err)
			continue
		}
		for _, fi := range frames {
			img, err := s.doc.FrameImage(fi)
			if err != nil {
				glog.Errorf("%s: rendering frame %d: %v", s.name, fi, err)
				continue
			}
			fmt.Fprintf(imageprint.Out, "frame %d (%v):\n", fi, s.doc.Frames[fi].Duration)
			out(img)
		}
	}
}
