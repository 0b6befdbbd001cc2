package pixedit

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/pixedit/internal/blend"
)

// BlendMode defines how a layer's pixels are combined with the layers
// below it during compositing.
type BlendMode = blend.Mode

// Re-exported blend modes.
const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal = blend.ModeNormal
	// BlendMultiply multiplies source and destination colors.
	BlendMultiply = blend.ModeMultiply
	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen = blend.ModeScreen
	// BlendOverlay combines multiply and screen based on destination brightness.
	BlendOverlay = blend.ModeOverlay
)

// Layer is a single raster layer: an owned pixel surface plus the
// metadata the compositor consults when flattening.
type Layer struct {
	surface     *Pixmap
	visible     bool
	opacity     float64
	blend       BlendMode
	clipToBelow bool
	name        string
	id          uint64 // stable identifier, assigned at creation, never reused
}

// Surface returns the layer's pixel surface. Tools write to it directly
// inside a stroke transaction.
func (l *Layer) Surface() *Pixmap { return l.surface }

// Visible reports whether the layer participates in compositing.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible toggles the layer's participation in compositing.
func (l *Layer) SetVisible(v bool) { l.visible = v }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// SetOpacity sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetOpacity(o float64) {
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	l.opacity = o
}

// Blend returns the layer's blend mode.
func (l *Layer) Blend() BlendMode { return l.blend }

// SetBlend sets the layer's blend mode.
func (l *Layer) SetBlend(m BlendMode) { l.blend = m }

// ClipToBelow reports whether the layer is masked by the alpha coverage
// of the layer immediately below it.
func (l *Layer) ClipToBelow() bool { return l.clipToBelow }

// SetClipToBelow toggles clip-to-below masking.
func (l *Layer) SetClipToBelow(c bool) { l.clipToBelow = c }

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// Rename sets the layer's display name.
func (l *Layer) Rename(name string) { l.name = name }

// ID returns the layer's stable identifier. IDs are assigned at creation
// and never reused or reassigned, so they outlive index shuffles.
func (l *Layer) ID() uint64 { return l.id }

// LayerStack is an ordered list of layers plus the active-layer cursor.
// The stack always contains at least one layer, and the active index is
// always valid. Structural mutations (add, delete, move) go through the
// stack's own operations, which keep the history's patch layer indices
// consistent.
type LayerStack struct {
	width   int
	height  int
	layers  []*Layer
	active  int
	history *History
	nextID  uint64

	// Restructure hooks, invoked after a successful delete or move so
	// other index-carrying state (the engine's open stroke transaction)
	// stays consistent. Either may be nil.
	onDelete func(index int)
	onMove   func(from, to int)
}

// NewLayerStack creates a stack with a single background layer cleared to
// the given color. The history is consulted for re-indexing whenever the
// stack is restructured.
func NewLayerStack(width, height int, background RGBA, history *History) *LayerStack {
	s := &LayerStack{
		width:   width,
		height:  height,
		history: history,
	}
	bg := s.newLayer("Background")
	bg.surface.Clear(background)
	s.layers = append(s.layers, bg)
	return s
}

// newLayer allocates a transparent layer with a fresh stable ID.
func (s *LayerStack) newLayer(name string) *Layer {
	s.nextID++
	return &Layer{
		surface: NewPixmap(s.width, s.height),
		visible: true,
		opacity: 1.0,
		blend:   BlendNormal,
		name:    name,
		id:      s.nextID,
	}
}

// Len returns the number of layers.
func (s *LayerStack) Len() int { return len(s.layers) }

// Width returns the surface width shared by all layers.
func (s *LayerStack) Width() int { return s.width }

// Height returns the surface height shared by all layers.
func (s *LayerStack) Height() int { return s.height }

// Layer returns the layer at index, or nil if the index is out of range.
func (s *LayerStack) Layer(index int) *Layer {
	if index < 0 || index >= len(s.layers) {
		return nil
	}
	return s.layers[index]
}

// Active returns the active layer.
func (s *LayerStack) Active() *Layer { return s.layers[s.active] }

// ActiveIndex returns the index of the active layer.
func (s *LayerStack) ActiveIndex() int { return s.active }

// SetActive selects the layer tools draw on.
func (s *LayerStack) SetActive(index int) error {
	if index < 0 || index >= len(s.layers) {
		return ErrLayerIndex
	}
	s.active = index
	return nil
}

// AddLayer inserts a new transparent layer directly above afterIndex and
// makes it active.
func (s *LayerStack) AddLayer(afterIndex int) (*Layer, error) {
	if afterIndex < 0 || afterIndex >= len(s.layers) {
		return nil, ErrLayerIndex
	}
	l := s.newLayer(fmt.Sprintf("Layer %d", s.nextID))
	at := afterIndex + 1
	s.layers = append(s.layers, nil)
	copy(s.layers[at+1:], s.layers[at:])
	s.layers[at] = l
	s.active = at
	return l, nil
}

// DeleteLayer removes the layer at index. The last remaining layer cannot
// be deleted. Every history patch belonging to the layer is dropped and
// the remaining patches are re-indexed.
func (s *LayerStack) DeleteLayer(index int) error {
	if index < 0 || index >= len(s.layers) {
		return ErrLayerIndex
	}
	if len(s.layers) == 1 {
		Logger().Warn("refusing to delete the last remaining layer")
		return ErrLastLayer
	}
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
	if s.active > index || s.active == len(s.layers) {
		s.active--
	}
	s.history.dropLayer(index)
	if s.onDelete != nil {
		s.onDelete(index)
	}
	return nil
}

// MoveLayer relocates the layer at from to position to, remapping every
// history patch so undo/redo stays correct after the reorder.
func (s *LayerStack) MoveLayer(from, to int) error {
	if from < 0 || from >= len(s.layers) || to < 0 || to >= len(s.layers) {
		return ErrLayerIndex
	}
	if from == to {
		return nil
	}
	l := s.layers[from]
	if from < to {
		copy(s.layers[from:], s.layers[from+1:to+1])
	} else {
		copy(s.layers[to+1:], s.layers[to:from])
	}
	s.layers[to] = l

	switch {
	case s.active == from:
		s.active = to
	case from < to && s.active > from && s.active <= to:
		s.active--
	case from > to && s.active >= to && s.active < from:
		s.active++
	}

	s.history.remapForMove(from, to)
	if s.onMove != nil {
		s.onMove(from, to)
	}
	Logger().Debug("layer moved", slog.Int("from", from), slog.Int("to", to))
	return nil
}

// Flatten composites all layers bottom-to-top into dst, which must have
// the stack's dimensions. Hidden layers are skipped. A layer with
// ClipToBelow set (and not at the bottom) contributes only where the
// layer immediately below it has alpha coverage.
func (s *LayerStack) Flatten(dst *Pixmap) {
	dst.Clear(Transparent)
	for i, l := range s.layers {
		if !l.visible || l.opacity == 0 {
			continue
		}
		var below *Pixmap
		if l.clipToBelow && i > 0 {
			below = s.layers[i-1].surface
		}
		compositeLayer(dst, l, below)
	}
}

// compositeLayer blends one layer onto the accumulator, applying opacity
// and optional clip-to-below alpha masking.
func compositeLayer(dst *Pixmap, l *Layer, below *Pixmap) {
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sr, sg, sb, sa := l.surface.GetPixelRGBA(x, y)
			if sa == 0 {
				continue
			}
			if below != nil {
				_, _, _, ba := below.GetPixelRGBA(x, y)
				sa = uint8(int(sa) * int(ba) / 255)
				if sa == 0 {
					continue
				}
			}
			if l.opacity < 1.0 {
				sa = uint8(float64(sa) * l.opacity)
				if sa == 0 {
					continue
				}
			}
			dr, dg, db, da := dst.GetPixelRGBA(x, y)
			r, g, b, a := blend.Pixel(sr, sg, sb, sa, dr, dg, db, da, l.blend)
			dst.SetPixelRGBA(x, y, r, g, b, a)
		}
	}
}
