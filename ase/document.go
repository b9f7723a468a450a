package ase

// Indices into the slices owned by a Document.
type (
	FrameIndex int
	LayerIndex int
	CelIndex   int
	TagIndex   int
)

// Sentinels for absent references.
const (
	NoFrame FrameIndex = -1
	NoLayer LayerIndex = -1
	NoCel   CelIndex   = -1
)

// Document is a fully decoded sprite file.
//
// The header fields are promoted from the embedded Header. All other records
// live in the slices below and refer to one another by index.
type Document struct {
	Header

	Frames  []Frame
	Layers  []Layer
	Cels    []Cel
	Tags    []Tag
	Slices  []Slice
	Palette Palette
}

// FrameCel returns the cel stored in frame f at layer slot l, if any.
func (d *Document) FrameCel(f FrameIndex, l LayerIndex) (CelIndex, bool) {
	if f < 0 || int(f) >= len(d.Frames) {
		return NoCel, false
	}
	cels := d.Frames[f].Cels
	if l < 0 || int(l) >= len(cels) || cels[l] == NoCel {
		return NoCel, false
	}
	return cels[l], true
}

// TagByName returns the first tag with the given name.
func (d *Document) TagByName(name string) (TagIndex, bool) {
	for i := range d.Tags {
		if d.Tags[i].Name == name {
			return TagIndex(i), true
		}
	}
	return -1, false
}

// LayerVisible reports whether l and all of its ancestors are visible.
func (d *Document) LayerVisible(l LayerIndex) bool {
	for l != NoLayer {
		if d.Layers[l].Flags&LayerVisible == 0 {
			return false
		}
		l = d.Layers[l].Parent
	}
	return true
}
