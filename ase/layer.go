package ase

import "fmt"

// LayerKind tells ordinary layers from groups.
type LayerKind uint16

const (
	LayerNormal  LayerKind = 0
	LayerGroup   LayerKind = 1
	LayerTilemap LayerKind = 2
)

func (k LayerKind) String() string {
	switch k {
	case LayerNormal:
		return "normal"
	case LayerGroup:
		return "group"
	case LayerTilemap:
		return "tilemap"
	}
	return fmt.Sprintf("LayerKind(%d)", uint16(k))
}

// LayerFlags is the layer flag word.
type LayerFlags uint16

const (
	LayerVisible        LayerFlags = 1 << 0
	LayerEditable       LayerFlags = 1 << 1
	LayerLockMove       LayerFlags = 1 << 2
	LayerBackground     LayerFlags = 1 << 3
	LayerPreferLinked   LayerFlags = 1 << 4
	LayerGroupCollapsed LayerFlags = 1 << 5
	LayerReference      LayerFlags = 1 << 6
)

// BlendMode is the compositing operator of a layer.
type BlendMode uint16

const (
	BlendNormal BlendMode = iota
	BlendDarken
	BlendMultiply
	BlendColorBurn
	BlendLighten
	BlendScreen
	BlendColorDodge
	BlendAddition
	BlendOverlay
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendSubtract
	BlendDivide
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	"normal", "darken", "multiply", "color-burn",
	"lighten", "screen", "color-dodge", "addition",
	"overlay", "soft-light", "hard-light",
	"difference", "exclusion", "subtract", "divide",
	"hue", "saturation", "color", "luminosity",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint16(m))
}

// Layer is one entry of the layer stack. Layers keep the order in which they
// appear in the file, bottom-most first.
type Layer struct {
	Name      string
	Kind      LayerKind
	Flags     LayerFlags
	Opacity   uint8
	BlendMode BlendMode

	// Depth is the nesting level; 0 for top-level layers.
	Depth    int
	Parent   LayerIndex
	Children []LayerIndex

	DefaultWidth, DefaultHeight int
}

// layerTracker remembers the most recent layer seen at each nesting depth.
type layerTracker map[int]LayerIndex

func (d *decoder) parseLayer(start int) error {
	c := &d.c

	flags := c.u16()
	kind := c.u16()
	depth := int(c.u16())
	defaultWidth := c.u16()
	defaultHeight := c.u16()
	blend := c.u16()
	opacity := c.u32()
	name := c.str()
	if c.err != nil {
		return c.err
	}

	idx := LayerIndex(len(d.doc.Layers))
	l := Layer{
		Name:          name,
		Kind:          LayerKind(kind),
		Flags:         LayerFlags(flags),
		Opacity:       uint8(opacity),
		BlendMode:     BlendMode(blend),
		Depth:         depth,
		Parent:        NoLayer,
		DefaultWidth:  int(defaultWidth),
		DefaultHeight: int(defaultHeight),
	}
	if depth > 0 {
		parent, ok := d.layers[depth-1]
		if !ok {
			return newError(ErrInvalidReference, start, "layer %q at depth %d has no parent at depth %d", name, depth, depth-1)
		}
		l.Parent = parent
		d.doc.Layers[parent].Children = append(d.doc.Layers[parent].Children, idx)
	}
	d.doc.Layers = append(d.doc.Layers, l)

	if d.layers == nil {
		d.layers = layerTracker{}
	}
	d.layers[depth] = idx
	return nil
}
