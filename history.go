package pixedit

import "log/slog"

// History is an ordered stack of patches with an undo/redo cursor.
//
// The cursor index points at the most recently applied patch; -1 means
// "before the first edit". Invariant: -1 <= index < len(stack). Pushing
// while the cursor is not at the end truncates the redoable tail first.
type History struct {
	stack []*Patch
	index int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Len returns the number of recorded patches.
func (h *History) Len() int {
	return len(h.stack)
}

// Index returns the cursor position (-1 when no patch is applied).
func (h *History) Index() int {
	return h.index
}

// Stack returns the underlying patch list. It is exposed for the layer
// stack's re-indexing pass; callers must not mutate it otherwise.
func (h *History) Stack() []*Patch {
	return h.stack
}

// Push appends a patch, discarding any redoable entries first, and moves
// the cursor to the new last position.
func (h *History) Push(p *Patch) {
	if p == nil {
		return
	}
	if h.index < len(h.stack)-1 {
		dropped := len(h.stack) - 1 - h.index
		h.stack = h.stack[:h.index+1]
		Logger().Debug("history truncated", slog.Int("dropped", dropped))
	}
	h.stack = append(h.stack, p)
	h.index = len(h.stack) - 1
}

// Undo returns the patch at the cursor and steps the cursor back.
// Returns nil when there is nothing to undo. The caller applies the
// patch's Before buffer to the owning layer.
func (h *History) Undo() *Patch {
	if h.index == -1 {
		return nil
	}
	p := h.stack[h.index]
	h.index--
	return p
}

// Redo steps the cursor forward and returns the patch it now points to.
// Returns nil when there is nothing to redo. The caller applies the
// patch's After buffer to the owning layer.
func (h *History) Redo() *Patch {
	if h.index == len(h.stack)-1 {
		return nil
	}
	h.index++
	return h.stack[h.index]
}

// remapForMove rewrites patch layer indices after a layer moved from one
// stack position to another. The moved layer's patches follow it; patches
// strictly between the two positions shift by one in the opposite
// direction of the move.
func (h *History) remapForMove(from, to int) {
	if from == to {
		return
	}
	for _, p := range h.stack {
		switch {
		case p.LayerIndex == from:
			p.LayerIndex = to
		case from < to && p.LayerIndex > from && p.LayerIndex <= to:
			p.LayerIndex--
		case from > to && p.LayerIndex >= to && p.LayerIndex < from:
			p.LayerIndex++
		}
	}
}

// dropLayer removes every patch belonging to the deleted layer, shifts
// the indices of patches on layers above it down by one, and recomputes
// the cursor: it decreases by the number of dropped patches that sat at
// or before it, then is clamped to the valid range.
func (h *History) dropLayer(index int) {
	kept := h.stack[:0]
	droppedBeforeCursor := 0
	for i, p := range h.stack {
		if p.LayerIndex == index {
			if i <= h.index {
				droppedBeforeCursor++
			}
			continue
		}
		if p.LayerIndex > index {
			p.LayerIndex--
		}
		kept = append(kept, p)
	}
	// Zero the tail so dropped patches are collectable.
	for i := len(kept); i < len(h.stack); i++ {
		h.stack[i] = nil
	}
	removed := len(h.stack) - len(kept)
	h.stack = kept
	h.index -= droppedBeforeCursor
	if h.index < -1 {
		h.index = -1
	}
	if h.index > len(h.stack)-1 {
		h.index = len(h.stack) - 1
	}
	if removed > 0 {
		Logger().Debug("history re-indexed after layer delete",
			slog.Int("layer", index), slog.Int("removed", removed))
	}
}
