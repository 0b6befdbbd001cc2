package pixedit

// Patch is an atomic, reversible record of a pixel-region change.
// Before and After hold the pixel content of Rect prior to and following
// the edit; both always have dimensions exactly Rect.W x Rect.H.
// Applying After and then Before to the same region round-trips: Before
// undoes the edit, After redoes it.
type Patch struct {
	// LayerIndex identifies the layer the edit belongs to. It is kept
	// current by the history re-indexing pass whenever layers are moved
	// or deleted.
	LayerIndex int

	// Rect is the bounding box of the change in layer coordinates.
	Rect Rect

	// Before holds the original pixels of Rect.
	Before *Pixmap

	// After holds the edited pixels of Rect.
	After *Pixmap
}

// newPatch builds a patch by extracting the r window from a before and an
// after full-layer surface. Returns nil when the window is empty.
func newPatch(layerIndex int, r Rect, before, after *Pixmap) *Patch {
	if r.Empty() {
		return nil
	}
	return &Patch{
		LayerIndex: layerIndex,
		Rect:       r,
		Before:     before.CopyRect(r),
		After:      after.CopyRect(r),
	}
}

// applyBefore restores the patch's original pixels onto dst (undo).
func (p *Patch) applyBefore(dst *Pixmap) {
	dst.DrawRect(p.Rect, p.Before)
}

// applyAfter writes the patch's edited pixels onto dst (redo).
func (p *Patch) applyAfter(dst *Pixmap) {
	dst.DrawRect(p.Rect, p.After)
}
