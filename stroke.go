package pixedit

import "log/slog"

// strokeTx is the transient state of one open stroke transaction.
// At most one exists per engine at a time: the "before" baseline would be
// corrupted if a second gesture snapshotted mid-stroke.
type strokeTx struct {
	snapshot   *Pixmap // full copy of the active layer at begin time
	layerIndex int
}

// BeginStrokeSnapshot opens a stroke transaction: it snapshots the full
// content of the active layer and resets the pending dirty region. Every
// direct pixel write the tool performs until commit/cancel belongs to
// this transaction.
//
// Returns ErrStrokeOpen if a transaction is already open; the existing
// transaction is left untouched.
func (e *Engine) BeginStrokeSnapshot() error {
	if e.stroke != nil {
		Logger().Warn("stroke transaction already open")
		return ErrStrokeOpen
	}
	e.stroke = &strokeTx{
		snapshot:   e.layers.Active().Surface().Clone(),
		layerIndex: e.layers.ActiveIndex(),
	}
	e.dirty.Reset()
	return nil
}

// CommitStrokeSnapshot closes the open stroke transaction. The pending
// dirty region, clipped to the surface, determines the patch window: the
// "before" pixels come from the begin-time snapshot and the "after"
// pixels from the live layer. The patch is pushed onto the history and a
// repaint is requested.
//
// An empty dirty region is a successful no-op: the snapshot is discarded
// and no history entry is created. Returns ErrNoStroke when no
// transaction is open.
func (e *Engine) CommitStrokeSnapshot() (*Patch, error) {
	if e.stroke == nil {
		return nil, ErrNoStroke
	}
	tx := e.stroke
	e.stroke = nil

	r := e.dirty.Current().Clip(e.layers.Width(), e.layers.Height())
	e.dirty.Reset()
	if r.Empty() {
		return nil, nil
	}

	layer := e.layers.Layer(tx.layerIndex)
	p := newPatch(tx.layerIndex, r, tx.snapshot, layer.Surface())
	e.history.Push(p)
	e.RequestRepaint()
	return p, nil
}

// FinishStrokeToHistory is an alias for CommitStrokeSnapshot kept for
// tools that name the gesture end after its effect.
func (e *Engine) FinishStrokeToHistory() (*Patch, error) {
	return e.CommitStrokeSnapshot()
}

// CancelStrokeSnapshot discards the open stroke transaction and its dirty
// state without inspecting pixels or touching the history. Used when a
// gesture is aborted (for example by Escape); tools that also want the
// written pixels erased restore them from their own state before
// cancelling.
//
// Returns ErrNoStroke when no transaction is open.
func (e *Engine) CancelStrokeSnapshot() error {
	if e.stroke == nil {
		return ErrNoStroke
	}
	e.stroke = nil
	e.dirty.Reset()
	return nil
}

// strokeLayerDeleted keeps the open transaction consistent after a layer
// delete. Deleting the transaction's own layer cancels it — its snapshot
// has no layer to diff against anymore; deleting a layer below it shifts
// the recorded index down, matching the history re-indexing.
func (e *Engine) strokeLayerDeleted(index int) {
	if e.stroke == nil {
		return
	}
	if e.stroke.layerIndex == index {
		Logger().Warn("open stroke cancelled: its layer was deleted",
			slog.Int("layer", index))
		e.stroke = nil
		e.dirty.Reset()
		return
	}
	if e.stroke.layerIndex > index {
		e.stroke.layerIndex--
	}
}

// strokeLayerMoved remaps the open transaction's layer index after a
// reorder, using the same rules as the history patches: the moved layer's
// transaction follows it, indices strictly between the two positions
// shift one step the other way.
func (e *Engine) strokeLayerMoved(from, to int) {
	if e.stroke == nil {
		return
	}
	switch i := e.stroke.layerIndex; {
	case i == from:
		e.stroke.layerIndex = to
	case from < to && i > from && i <= to:
		e.stroke.layerIndex--
	case from > to && i >= to && i < from:
		e.stroke.layerIndex++
	}
}

// StrokeOpen reports whether a stroke transaction is currently open.
func (e *Engine) StrokeOpen() bool {
	return e.stroke != nil
}

// ExpandPendingRect grows the pending dirty region by a square of the
// given radius centered on (x, y). Tools call this for every stamp they
// place between BeginStrokeSnapshot and CommitStrokeSnapshot.
func (e *Engine) ExpandPendingRect(x, y, radius int) {
	e.dirty.ExpandByPoint(x, y, radius)
}

// ExpandPendingRectByRect grows the pending dirty region by an arbitrary
// rectangle.
func (e *Engine) ExpandPendingRectByRect(x, y, w, h int) {
	e.dirty.ExpandByRect(x, y, w, h)
}

// PendingRect returns the dirty region accumulated so far.
func (e *Engine) PendingRect() Rect {
	return e.dirty.Current()
}
