package pixedit

import (
	"log/slog"
	"time"
)

// EditMode selects how edits interact with the active selection.
type EditMode int

const (
	// EditFree lets edits touch any pixel of the active layer.
	EditFree EditMode = iota

	// EditInsideSelection confines edits to the selection rectangle;
	// pixels a fill touches outside it are reverted before the edit is
	// committed.
	EditInsideSelection
)

// Selection is an axis-aligned selection rectangle plus an optional
// floating surface carrying pixels lifted off a layer.
type Selection struct {
	Rect  Rect
	Float *Pixmap
}

// Engine is one raster editing session: a layer stack, its undo/redo
// history, the single stroke-transaction slot, the selection state and
// the coalescing repaint scheduler. All state is per-instance; two
// engines never share anything.
//
// All methods must be called from the same goroutine. The repaint
// callback reads layer pixels, so it runs either synchronously inside
// FlushRepaint or wherever the host's injected schedule func places it;
// hosts that schedule it elsewhere must keep it off the edit goroutine's
// in-progress writes.
type Engine struct {
	layers        *LayerStack
	history       *History
	scheduler     *repaintScheduler
	composite     *Pixmap
	frameInterval time.Duration

	dirty     dirtyRegion
	stroke    *strokeTx
	selection *Selection
	editMode  EditMode
	present   func(*Pixmap)
}

// NewEngine creates an editing session with a single background layer of
// the given dimensions.
func NewEngine(width, height int, opts ...EngineOption) *Engine {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}

	e := &Engine{
		history:       NewHistory(),
		composite:     NewPixmap(width, height),
		frameInterval: options.frameInterval,
		present:       options.present,
	}
	e.layers = NewLayerStack(width, height, options.background, e.history)
	e.layers.onDelete = e.strokeLayerDeleted
	e.layers.onMove = e.strokeLayerMoved
	e.scheduler = newRepaintScheduler(options.schedule, e.repaint)
	return e
}

// Layers returns the session's layer stack.
func (e *Engine) Layers() *LayerStack { return e.layers }

// History returns the session's undo/redo history.
func (e *Engine) History() *History { return e.history }

// RequestRepaint asks for the composite to be rebuilt. Repeated calls
// while a repaint is pending coalesce into a single recomposition. The
// rebuild runs via the injected schedule func, or — when none was given —
// at the next FlushRepaint, which the host calls once per frame.
func (e *Engine) RequestRepaint() {
	e.scheduler.Request()
}

// FlushRepaint runs any pending repaint immediately.
func (e *Engine) FlushRepaint() {
	e.scheduler.Flush()
}

// FrameInterval returns the display-refresh cadence configured at
// construction. Hosts driving repaints themselves tick FlushRepaint at
// this rate.
func (e *Engine) FrameInterval() time.Duration {
	return e.frameInterval
}

// repaint is the scheduler's callback: flatten once, then hand the
// composite to the host.
func (e *Engine) repaint() {
	e.layers.Flatten(e.composite)
	if e.present != nil {
		e.present(e.composite)
	}
}

// Flatten composites all layers now and returns the output surface. The
// returned pixmap is owned by the engine and rewritten on every repaint;
// callers that keep it across edits should Clone it.
func (e *Engine) Flatten() *Pixmap {
	e.layers.Flatten(e.composite)
	return e.composite
}

// PushPatch records an already-applied patch on the history and requests
// a repaint. Self-contained operations like flood fill produce a ready
// patch; this is how it enters the undo stack.
func (e *Engine) PushPatch(p *Patch) {
	if p == nil {
		return
	}
	e.history.Push(p)
	e.RequestRepaint()
}

// Undo reverts the most recent edit by writing its "before" pixels back
// onto the owning layer. Returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	p := e.history.Undo()
	if p == nil {
		return false
	}
	p.applyBefore(e.layers.Layer(p.LayerIndex).Surface())
	e.RequestRepaint()
	return true
}

// Redo re-applies the most recently undone edit by writing its "after"
// pixels back onto the owning layer. Returns false when there is nothing
// to redo.
func (e *Engine) Redo() bool {
	p := e.history.Redo()
	if p == nil {
		return false
	}
	p.applyAfter(e.layers.Layer(p.LayerIndex).Surface())
	e.RequestRepaint()
	return true
}

// FloodFill bucket-fills the active layer from the seed (x, y) and
// records the change on the history. The fill is already atomic, so no
// stroke transaction is involved.
//
// When a selection exists and the edit mode is EditInsideSelection, any
// filled pixel outside the selection rectangle is reverted to its
// original value; if no pixel inside the selection ends up changed the
// whole fill is a no-op and nothing is committed.
//
// Returns the recorded patch, or nil for a no-op (out-of-bounds seed,
// already-filled region, or a fill entirely masked out by the selection).
func (e *Engine) FloodFill(x, y int, fill RGBA, tolerance int) *Patch {
	layer := e.layers.Active()
	surface := layer.Surface()

	before, bounds, ok := floodFillCore(surface, x, y, fill, tolerance)
	if !ok {
		return nil
	}

	window := bounds
	if e.editMode == EditInsideSelection && e.selection != nil {
		window = e.confineToSelection(surface, before, bounds)
	}

	changed := changedRect(before, surface, window)
	if changed.Empty() {
		return nil
	}

	p := newPatch(e.layers.ActiveIndex(), changed, before, surface)
	e.history.Push(p)
	e.RequestRepaint()
	Logger().Debug("flood fill committed",
		slog.Int("x", changed.X), slog.Int("y", changed.Y),
		slog.Int("w", changed.W), slog.Int("h", changed.H))
	return p
}

// confineToSelection reverts every filled pixel outside the selection
// rectangle to its before-fill value and returns the window that may
// still contain changes. The reverted value is taken from the fill
// snapshot; there is no older state to restore to.
func (e *Engine) confineToSelection(surface, before *Pixmap, bounds Rect) Rect {
	sel := e.selection.Rect
	src := before.Data()
	dst := surface.Data()
	w := surface.Width()
	for py := bounds.Y; py < bounds.Y+bounds.H; py++ {
		for px := bounds.X; px < bounds.X+bounds.W; px++ {
			if sel.Contains(px, py) {
				continue
			}
			o := (py*w + px) * 4
			copy(dst[o:o+4], src[o:o+4])
		}
	}
	return bounds.Intersect(sel)
}

// Selection returns the current selection, or nil when none exists.
func (e *Engine) Selection() *Selection { return e.selection }

// SetSelection replaces the current selection.
func (e *Engine) SetSelection(r Rect, float *Pixmap) {
	e.selection = &Selection{Rect: r, Float: float}
}

// ClearSelection removes the selection.
func (e *Engine) ClearSelection() {
	e.selection = nil
}

// EditMode returns the current edit mode.
func (e *Engine) EditMode() EditMode { return e.editMode }

// SetEditMode sets how edits interact with the selection.
func (e *Engine) SetEditMode(m EditMode) { e.editMode = m }
