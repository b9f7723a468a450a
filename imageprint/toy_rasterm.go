//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

func isTermItermWez() bool {
	return rasterm.IsTermItermWez()
}

// sixelColors is how many colors sixel output is reduced to. Sprites rarely
// use more.
const sixelColors = 64

// PrintRasTerm draws an image using the first graphics protocol the terminal
// supports: kitty, then iTerm/WezTerm, then sixel.
func PrintRasTerm(i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(Out, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(Out, i)
	default:
		capable, serr := rasterm.IsSixelCapable()
		if serr != nil || !capable {
			return errors.New("imageprint: terminal supports neither kitty, iterm nor sixel graphics")
		}
		p, ok := i.(*image.Paletted)
		if !ok || len(p.Palette) > sixelColors {
			p = image.NewPaletted(i.Bounds(), nil)
			quantizer := gogif.MedianCutQuantizer{NumColor: sixelColors}
			quantizer.Quantize(p, i.Bounds(), i, i.Bounds().Min)
		}
		err = rasterm.Settings{}.SixelWriteImage(Out, p)
	}
	if err != nil {
		return errors.Wrap(err, "imageprint: writing terminal graphics")
	}
	fmt.Fprintf(Out, "\n")
	return nil
}
