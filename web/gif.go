package web

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"net/http"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-aseprite/ase"
)

// playback lists the frames of the animation and how often the GIF should
// loop, in image/gif's LoopCount terms.
func playback(doc *ase.Document, tag string) ([]ase.FrameIndex, int, error) {
	if tag == "" {
		frames := make([]ase.FrameIndex, len(doc.Frames))
		for i := range frames {
			frames[i] = ase.FrameIndex(i)
		}
		return frames, 0, nil
	}
	ti, ok := doc.TagByName(tag)
	if !ok {
		return nil, 0, errors.Errorf("no tag %q", tag)
	}
	t := &doc.Tags[ti]
	loop := 0
	switch {
	case t.Repeat == 1:
		loop = -1
	case t.Repeat > 1:
		loop = t.Repeat - 1
	}
	return t.Sequence(), loop, nil
}

// sharedPalette quantizes all images together so every GIF frame uses the
// same colors. The first entry is fully transparent.
func sharedPalette(imgs []*image.NRGBA) color.Palette {
	if len(imgs) == 0 {
		return color.Palette{color.Transparent}
	}
	b := imgs[0].Bounds()
	strip := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()*len(imgs)))
	for i, img := range imgs {
		draw.Draw(strip, b.Add(image.Pt(0, b.Dy()*i)), img, b.Min, draw.Src)
	}

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pal := q.Quantize(make(color.Palette, 0, 256), strip)
	if len(pal) > 256 {
		pal = pal[:256]
	}
	for i, c := range pal {
		if _, _, _, a := c.RGBA(); a == 0 {
			pal[0], pal[i] = pal[i], pal[0]
			return pal
		}
	}
	if len(pal) == 256 {
		pal = pal[:255]
	}
	return append(color.Palette{color.Transparent}, pal...)
}

// encodeGIF renders frames into an animation with per-frame delays.
func encodeGIF(doc *ase.Document, frames []ase.FrameIndex, loop int) (*gif.GIF, error) {
	rendered := make(map[ase.FrameIndex]*image.NRGBA)
	var distinct []*image.NRGBA
	for _, fi := range frames {
		if _, ok := rendered[fi]; ok {
			continue
		}
		img, err := doc.FrameImage(fi)
		if err != nil {
			return nil, err
		}
		rendered[fi] = img
		distinct = append(distinct, img)
	}
	pal := sharedPalette(distinct)

	g := &gif.GIF{LoopCount: loop, BackgroundIndex: 0}
	for _, fi := range frames {
		img := rendered[fi]
		p := image.NewPaletted(img.Bounds(), pal)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, img.Bounds().Min)

		delay := int(doc.Frames[fi].Duration.Milliseconds() / 10)
		if delay < 1 {
			delay = 1
		}
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return g, nil
}

func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	name, doc, modTime, ok := h.loadOrFail(w, r)
	if !ok {
		return
	}
	tag := r.URL.Query().Get("tag")
	frames, loop, err := playback(doc, tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if len(frames) == 0 {
		http.Error(w, "sprite has no frames", http.StatusNotFound)
		return
	}

	mime := "image/gif"
	etag := spriteETag("gif", name, modTime, "tag="+tag, mime)
	if notModified(w, r, etag, modTime) {
		return
	}

	g, err := encodeGIF(doc, frames, loop)
	if err != nil {
		glog.Errorf("error rendering %s as gif: %v", name, err)
		http.Error(w, "failed to render animation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := gif.EncodeAll(w, g); err != nil {
		glog.Errorf("error encoding gif: %v", err)
	}
}
