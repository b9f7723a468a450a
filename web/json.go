package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-aseprite/ase"
)

type spriteJSON struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	ColorDepth int         `json:"colorDepth"`
	PixelRatio float64     `json:"pixelRatio"`
	Layers     []layerJSON `json:"layers"`
	Frames     []frameJSON `json:"frames"`
	Tags       []tagJSON   `json:"tags"`
	Slices     []sliceJSON `json:"slices"`
	Palette    []string    `json:"palette"`
}

type layerJSON struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Visible   bool   `json:"visible"`
	Opacity   uint8  `json:"opacity"`
	BlendMode string `json:"blendMode"`
	Parent    int    `json:"parent"`
	Children  []int  `json:"children,omitempty"`
}

type frameJSON struct {
	DurationMS int64  `json:"durationMs"`
	Cels       []int  `json:"cels"`
	Tags       []int  `json:"tags,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

type tagJSON struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Direction string `json:"direction"`
	Repeat    int    `json:"repeat"`
	Frames    []int  `json:"frames"`
}

type sliceKeyJSON struct {
	Frame  int     `json:"frame"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Patch  *[4]int `json:"patch,omitempty"`
	Pivot  *[2]int `json:"pivot,omitempty"`
}

type sliceJSON struct {
	Name string         `json:"name"`
	Keys []sliceKeyJSON `json:"keys"`
}

func hexColor(c ase.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func frameInts(fs []ase.FrameIndex) []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(f)
	}
	return out
}

// documentJSON flattens doc into its wire form. References between records
// stay numeric indices; -1 marks an absent cel or parent.
func documentJSON(name string, doc *ase.Document) *spriteJSON {
	s := &spriteJSON{
		Name:       name,
		Width:      doc.Width,
		Height:     doc.Height,
		ColorDepth: doc.ColorDepth,
		PixelRatio: doc.PixelRatio,
		Layers:     []layerJSON{},
		Frames:     []frameJSON{},
		Tags:       []tagJSON{},
		Slices:     []sliceJSON{},
		Palette:    []string{},
	}
	for i, l := range doc.Layers {
		lj := layerJSON{
			Name:      l.Name,
			Kind:      l.Kind.String(),
			Visible:   doc.LayerVisible(ase.LayerIndex(i)),
			Opacity:   l.Opacity,
			BlendMode: l.BlendMode.String(),
			Parent:    int(l.Parent),
		}
		for _, c := range l.Children {
			lj.Children = append(lj.Children, int(c))
		}
		s.Layers = append(s.Layers, lj)
	}
	for _, f := range doc.Frames {
		fj := frameJSON{DurationMS: f.Duration.Milliseconds(), Cels: make([]int, len(f.Cels))}
		for i, c := range f.Cels {
			fj.Cels[i] = int(c)
		}
		for _, t := range f.Tags {
			fj.Tags = append(fj.Tags, int(t))
		}
		s.Frames = append(s.Frames, fj)
	}
	for _, t := range doc.Tags {
		s.Tags = append(s.Tags, tagJSON{
			Name:      t.Name,
			Color:     hexColor(t.Color),
			Direction: t.Direction.String(),
			Repeat:    t.Repeat,
			Frames:    frameInts(t.Frames),
		})
	}
	for _, sl := range doc.Slices {
		sj := sliceJSON{Name: sl.Name}
		for _, k := range sl.Keys {
			kj := sliceKeyJSON{Frame: k.Frame, X: k.Bounds.X, Y: k.Bounds.Y, Width: k.Bounds.Width, Height: k.Bounds.Height}
			if k.Patch != nil {
				kj.Patch = &[4]int{k.Patch.X, k.Patch.Y, k.Patch.Width, k.Patch.Height}
			}
			if k.Pivot != nil {
				kj.Pivot = &[2]int{k.Pivot.X, k.Pivot.Y}
			}
			sj.Keys = append(sj.Keys, kj)
		}
		s.Slices = append(s.Slices, sj)
	}
	for _, c := range doc.Palette.Colors {
		s.Palette = append(s.Palette, hexColor(c))
	}
	return s
}

func (h *Handler) jsonHandler(w http.ResponseWriter, r *http.Request) {
	name, doc, modTime, ok := h.loadOrFail(w, r)
	if !ok {
		return
	}
	thumbs := r.URL.Query().Get("thumbs") == "1"

	mime := "application/json"
	etag := spriteETag("json", name, modTime, fmt.Sprintf("thumbs=%t", thumbs), mime)
	if notModified(w, r, etag, modTime) {
		return
	}

	s := documentJSON(name, doc)
	if thumbs {
		for i := range s.Frames {
			img, err := doc.FrameImage(ase.FrameIndex(i))
			if err != nil {
				glog.Errorf("error rendering %s frame %d: %v", name, i, err)
				http.Error(w, "failed to render frame", http.StatusInternalServerError)
				return
			}
			if s.Frames[i].Thumbnail, err = pngDataURL(img); err != nil {
				http.Error(w, "failed to encode frame", http.StatusInternalServerError)
				return
			}
		}
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		glog.Errorf("error encoding json: %v", err)
	}
}
