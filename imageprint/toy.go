// Package imageprint prints sprites on terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"os"

	"github.com/gookit/color"

	"badc0de.net/pkg/go-aseprite/ase"
)

// Out is where everything is printed.
var Out io.Writer = os.Stdout

type dumper interface {
	Printf(s string, arg ...interface{})
}
type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Fprintf(Out, s, arg...)
}

var fmtDumper fmtDumperT

func shade(col ic.Color, escapesTrueColor, blanks, noColor bool) {
	nc := ic.NRGBAModel.Convert(col).(ic.NRGBA)
	if nc.A == 0 {
		if noColor {
			fmt.Fprintf(Out, "  ")
		} else {
			fmt.Fprintf(Out, "\x1b[0m  ")
		}
		return
	}
	var d dumper
	if noColor {
		d = &fmtDumper
	} else if escapesTrueColor {
		fmt.Fprintf(Out, "\x1b[48;2;%d;%d;%dm", nc.R, nc.G, nc.B)
		d = &fmtDumper
	} else {
		d = color.RGB(nc.R, nc.G, nc.B, true)
	}
	if blanks {
		d.Printf("  ")
	} else {
		switch a := (int(nc.R) + int(nc.G) + int(nc.B)) / 3; {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}
	if escapesTrueColor && !noColor {
		fmt.Fprintf(Out, "\x1b[0m")
	}
}

func printImage(i image.Image, trueColor, blanks, noColor bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(i.At(x, y), trueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprintf(Out, "\x1b[0m")
		}
		fmt.Fprintf(Out, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(i image.Image, blanks bool) {
	printImage(i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(i image.Image, blanks bool) {
	printImage(i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false.
func PrintNoColor(i image.Image, blanks bool) {
	printImage(i, true, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(i image.Image, fn string) {
	if !isTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Fprintf(Out, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, len(b.String()), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}

// PrintPalette draws one 24bit swatch per palette entry, wrapping every
// perRow entries. Fully transparent entries print as blanks.
func PrintPalette(p ase.Palette, perRow int) {
	for i, c := range p.Colors {
		if perRow > 0 && i > 0 && i%perRow == 0 {
			fmt.Fprintf(Out, "\n")
		}
		shade(c, true, true, false)
	}
	fmt.Fprintf(Out, "\n")
}

// PrintSwatch draws a single 24bit swatch followed by label.
func PrintSwatch(c ase.Color, label string) {
	// Tag colors carry no alpha.
	c.A = 0xFF
	shade(c, true, true, false)
	fmt.Fprintf(Out, " %s\n", label)
}
