package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-aseprite/imageprint"
)

func out(img image.Image) {
	if *dataURL {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			glog.Errorf("encoding png: %v", err)
			return
		}
		fmt.Fprintf(imageprint.Out, "%s\n", dataurl.New(buf.Bytes(), "image/png").String())
		return
	}

	if *downsize {
		termSize, err := getTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (*rasterm || *iterm) {
				// Native size if the terminal draws real images rather than cells.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.NearestNeighbor)
			} else {
				// Each pixel takes two columns.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
			}
		} else {
			glog.V(1).Infof("no terminal size: %v", err)
		}
	}

	if *rasterm {
		if err := imageprint.PrintRasTerm(img); err != nil {
			glog.Errorf("%v", err)
		}
	} else if !*col {
		imageprint.PrintNoColor(img, *blanks)
	} else if *iterm {
		imageprint.PrintITerm(img, "frame.png")
	} else if *col256 {
		imageprint.Print256Color(img, *blanks)
	} else {
		imageprint.Print24bit(img, *blanks)
	}
}
