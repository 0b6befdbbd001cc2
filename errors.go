package pixedit

import "errors"

// Sentinel errors for programmer-contract violations. These are returned,
// never panicked: a rejected operation leaves the engine state unchanged.
var (
	// ErrStrokeOpen is returned by BeginStrokeSnapshot while another
	// stroke transaction is still open.
	ErrStrokeOpen = errors.New("pixedit: stroke transaction already open")

	// ErrNoStroke is returned by CommitStrokeSnapshot or
	// CancelStrokeSnapshot when no stroke transaction is open.
	ErrNoStroke = errors.New("pixedit: no stroke transaction open")

	// ErrLastLayer is returned by DeleteLayer when only one layer remains.
	ErrLastLayer = errors.New("pixedit: cannot delete the last remaining layer")

	// ErrLayerIndex is returned when a layer index is out of range.
	ErrLayerIndex = errors.New("pixedit: layer index out of range")
)
