package pixedit

import "testing"

// newTestEngine builds an engine whose repaints run synchronously, so
// tests never depend on a host flush.
func newTestEngine(w, h int, opts ...EngineOption) (*Engine, *int) {
	paints := new(int)
	opts = append(opts,
		WithScheduleFunc(func(fire func()) { fire() }),
		WithPresent(func(*Pixmap) { *paints++ }),
	)
	return NewEngine(w, h, opts...), paints
}

func TestStroke_CommitProducesOnePatch(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	surface := e.Layers().Active().Surface()

	if err := e.BeginStrokeSnapshot(); err != nil {
		t.Fatalf("BeginStrokeSnapshot failed: %v", err)
	}

	// Two stamps far apart; the patch must cover their union.
	surface.SetPixel(1, 1, Black)
	e.ExpandPendingRect(1, 1, 0)
	surface.SetPixel(8, 8, Black)
	e.ExpandPendingRect(8, 8, 0)

	p, err := e.CommitStrokeSnapshot()
	if err != nil {
		t.Fatalf("CommitStrokeSnapshot failed: %v", err)
	}
	if p == nil {
		t.Fatal("commit returned no patch")
	}

	want := Rect{X: 1, Y: 1, W: 8, H: 8}
	if p.Rect != want {
		t.Errorf("patch rect = %+v, want %+v", p.Rect, want)
	}
	if e.History().Len() != 1 {
		t.Errorf("history length = %d, want 1", e.History().Len())
	}

	// Before reflects the snapshot, after the live pixels.
	if got := p.Before.GetPixel(0, 0); got != White {
		t.Errorf("before (1,1) = %+v, want white", got)
	}
	if got := p.After.GetPixel(0, 0); got != Black {
		t.Errorf("after (1,1) = %+v, want black", got)
	}
}

func TestStroke_BeginWhileOpenFails(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	if err := e.BeginStrokeSnapshot(); err != nil {
		t.Fatalf("first begin failed: %v", err)
	}
	if err := e.BeginStrokeSnapshot(); err != ErrStrokeOpen {
		t.Errorf("second begin = %v, want ErrStrokeOpen", err)
	}
	if !e.StrokeOpen() {
		t.Error("rejected begin closed the open transaction")
	}
}

func TestStroke_CommitWithoutBeginFails(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	if _, err := e.CommitStrokeSnapshot(); err != ErrNoStroke {
		t.Errorf("commit without begin = %v, want ErrNoStroke", err)
	}
	if err := e.CancelStrokeSnapshot(); err != ErrNoStroke {
		t.Errorf("cancel without begin = %v, want ErrNoStroke", err)
	}
}

// TestStroke_EmptyCommitIsNoOp verifies that committing with an empty
// dirty region produces no history entry.
func TestStroke_EmptyCommitIsNoOp(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	e.BeginStrokeSnapshot()

	p, err := e.CommitStrokeSnapshot()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if p != nil {
		t.Errorf("empty commit returned %+v, want nil", p)
	}
	if e.History().Len() != 0 {
		t.Errorf("history length = %d, want 0", e.History().Len())
	}
	if e.StrokeOpen() {
		t.Error("transaction still open after commit")
	}
}

func TestStroke_CancelDiscards(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	e.BeginStrokeSnapshot()
	e.Layers().Active().Surface().SetPixel(2, 2, Black)
	e.ExpandPendingRect(2, 2, 1)

	if err := e.CancelStrokeSnapshot(); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if e.History().Len() != 0 {
		t.Errorf("cancel pushed history: len = %d", e.History().Len())
	}
	if !e.PendingRect().Empty() {
		t.Errorf("cancel left dirty region: %+v", e.PendingRect())
	}

	// A fresh transaction starts clean.
	if err := e.BeginStrokeSnapshot(); err != nil {
		t.Fatalf("begin after cancel failed: %v", err)
	}
}

// TestStroke_DirtyRectClippedToSurface verifies off-canvas stamp reports
// are clamped when the patch window is extracted.
func TestStroke_DirtyRectClippedToSurface(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	e.BeginStrokeSnapshot()

	e.Layers().Active().Surface().SetPixel(0, 0, Black)
	e.ExpandPendingRect(0, 0, 3) // extends past the top-left corner

	p, err := e.CommitStrokeSnapshot()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	want := Rect{X: 0, Y: 0, W: 4, H: 4}
	if p.Rect != want {
		t.Errorf("patch rect = %+v, want %+v", p.Rect, want)
	}
}

func TestStroke_ExpandByRect(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	e.BeginStrokeSnapshot()
	e.ExpandPendingRectByRect(2, 3, 4, 2)
	want := Rect{X: 2, Y: 3, W: 4, H: 2}
	if got := e.PendingRect(); got != want {
		t.Errorf("pending rect = %+v, want %+v", got, want)
	}
	e.CancelStrokeSnapshot()
}

// TestStroke_DeleteOpenStrokeLayerCancels: deleting the layer an open
// transaction was begun on cancels the transaction; a later commit
// reports ErrNoStroke instead of touching a layer that no longer exists.
func TestStroke_DeleteOpenStrokeLayerCancels(t *testing.T) {
	e, _ := newTestEngine(8, 8)
	if _, err := e.Layers().AddLayer(0); err != nil {
		t.Fatalf("AddLayer failed: %v", err)
	}

	e.BeginStrokeSnapshot()
	e.Layers().Active().Surface().SetPixel(2, 2, Black)
	e.ExpandPendingRect(2, 2, 0)

	if err := e.Layers().DeleteLayer(1); err != nil {
		t.Fatalf("DeleteLayer failed: %v", err)
	}
	if e.StrokeOpen() {
		t.Error("transaction survived deletion of its layer")
	}
	if !e.PendingRect().Empty() {
		t.Errorf("cancelled transaction left dirty region: %+v", e.PendingRect())
	}
	if _, err := e.CommitStrokeSnapshot(); err != ErrNoStroke {
		t.Errorf("commit after delete = %v, want ErrNoStroke", err)
	}
	if e.History().Len() != 0 {
		t.Errorf("history length = %d, want 0", e.History().Len())
	}
}

// TestStroke_DeleteBelowLayerShiftsOpenStroke: deleting a layer below the
// one being stroked shifts the transaction's recorded index down, so the
// committed patch lands on (and undoes from) the right layer.
func TestStroke_DeleteBelowLayerShiftsOpenStroke(t *testing.T) {
	e, _ := newTestEngine(8, 8)
	if _, err := e.Layers().AddLayer(0); err != nil {
		t.Fatalf("AddLayer failed: %v", err)
	}

	e.BeginStrokeSnapshot()
	e.Layers().Active().Surface().SetPixel(4, 4, Black)
	e.ExpandPendingRect(4, 4, 0)

	if err := e.Layers().DeleteLayer(0); err != nil {
		t.Fatalf("DeleteLayer failed: %v", err)
	}

	p, err := e.CommitStrokeSnapshot()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if p.LayerIndex != 0 {
		t.Errorf("patch layer index = %d, want 0", p.LayerIndex)
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if got := e.Layers().Layer(0).Surface().GetPixel(4, 4); got != Transparent {
		t.Errorf("undone pixel = %+v, want transparent", got)
	}
}

// TestStroke_MoveLayerRemapsOpenStroke: reordering layers mid-stroke
// remaps the transaction's layer index the same way history patches are
// remapped, so the patch follows the layer it was begun on.
func TestStroke_MoveLayerRemapsOpenStroke(t *testing.T) {
	e, _ := newTestEngine(8, 8)
	e.Layers().AddLayer(0)
	e.Layers().AddLayer(1) // three layers, top one active

	e.BeginStrokeSnapshot()
	e.Layers().Active().Surface().SetPixel(1, 1, Black)
	e.ExpandPendingRect(1, 1, 0)

	if err := e.Layers().MoveLayer(2, 0); err != nil {
		t.Fatalf("MoveLayer failed: %v", err)
	}

	p, err := e.CommitStrokeSnapshot()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if p.LayerIndex != 0 {
		t.Errorf("patch layer index = %d, want 0", p.LayerIndex)
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if got := e.Layers().Layer(0).Surface().GetPixel(1, 1); got != Transparent {
		t.Errorf("undone pixel = %+v, want transparent", got)
	}
}
